// Package sink renders a laid-out tag cloud.
//
// # Overview
//
// A "sink" turns a [Cloud] (canvas size, background and positioned tags)
// into an output format:
//
//   - SVG: vector output, one <text> element per tag
//   - PNG: raster output drawn with the embedded Go font
//   - JSON: layout data for external tools and for caching
//
// Basic usage:
//
//	svg := sink.RenderSVG(cloud, sink.WithBoxes())
//	png, err := sink.RenderPNG(cloud)
//	data, err := sink.RenderJSON(cloud, sink.WithJSONSeed(42))
//
// # Diagnostics
//
// [RenderOverlapPNG] draws bare rectangles with one pair filled in red. Tests
// write it to disk when a non-overlap check fails.
package sink

import (
	"github.com/matzehuels/tagcloud/pkg/geom"
	"github.com/matzehuels/tagcloud/pkg/tags"
)

// Cloud is a rendered-ready tag cloud.
type Cloud struct {
	Width, Height int
	Background    string // hex color; empty means transparent
	Tags          []tags.Tag
}

// Bounds returns the canvas rectangle.
func (c Cloud) Bounds() geom.Rect {
	return geom.Rect{W: c.Width, H: c.Height}
}
