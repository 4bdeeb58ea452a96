// Package render groups the output backends for laid-out tag clouds.
//
// Rendering is a pure function of a finished layout: the sink subpackage
// takes a sink.Cloud (canvas size, background and placed tags) and
// produces bytes in one of three formats:
//
//   - SVG via sink.RenderSVG, text anchored at each tag's measured box
//   - PNG via sink.RenderPNG, rasterized with golang.org/x/image fonts
//   - JSON via sink.RenderJSON, which sink.ReadJSON reads back for caching
//
// sink.RenderOverlapPNG draws a rectangle set with one offending pair
// highlighted. Layout tests use it to dump a picture when two tags collide.
package render
