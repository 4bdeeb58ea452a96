package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/tagcloud/pkg/fonts"
	"github.com/matzehuels/tagcloud/pkg/tags"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	boxes      bool
	fontFamily string
}

// WithBoxes outlines every tag box.
func WithBoxes() SVGOption { return func(r *svgRenderer) { r.boxes = true } }

// WithFontFamily overrides the CSS font-family of tag text.
func WithFontFamily(family string) SVGOption {
	return func(r *svgRenderer) { r.fontFamily = family }
}

// RenderSVG renders c as a standalone SVG document.
func RenderSVG(c Cloud, opts ...SVGOption) []byte {
	r := svgRenderer{fontFamily: fonts.FallbackFontFamily}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		c.Width, c.Height, c.Width, c.Height)

	if c.Background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(c.Background))
	}

	fmt.Fprintf(&buf, `  <g font-family="%s" text-anchor="middle" dominant-baseline="central">`+"\n", escapeXML(r.fontFamily))
	for _, t := range c.Tags {
		if r.boxes {
			renderBox(&buf, t)
		}
		renderText(&buf, t)
	}
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBox(buf *bytes.Buffer, t tags.Tag) {
	fmt.Fprintf(buf, `    <rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="%s" stroke-width="1" opacity="0.5"/>`+"\n",
		t.Box.X, t.Box.Y, t.Box.W, t.Box.H, escapeXML(t.Style.Color))
}

func renderText(buf *bytes.Buffer, t tags.Tag) {
	cx := float64(t.Box.X) + float64(t.Box.W)/2
	cy := float64(t.Box.Y) + float64(t.Box.H)/2
	fmt.Fprintf(buf, `    <text class="tag tag-%s" x="%.1f" y="%.1f" font-size="%.1f" fill="%s">%s</text>`+"\n",
		t.Kind, cx, cy, t.Style.FontSize, escapeXML(t.Style.Color), escapeXML(t.Text))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
