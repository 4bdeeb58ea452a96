package sink

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/matzehuels/tagcloud/pkg/geom"
)

const (
	overlapPadding = 10
	overlapMaxSide = 2000
)

var (
	overlapBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	overlapOutline    = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	overlapHighlight  = color.NRGBA{R: 0xe0, G: 0x20, B: 0x20, A: 0x90}
)

// RenderOverlapPNG draws rects as outlines fitted into the image, filling
// rects[pair[0]] and rects[pair[1]] in translucent red. Out-of-range indices
// are ignored. Large extents are scaled down to keep the image small.
func RenderOverlapPNG(rects []geom.Rect, pair [2]int) ([]byte, error) {
	bounds := geom.Bounds(rects)
	if bounds.Empty() {
		bounds = geom.Rect{W: 1, H: 1}
	}

	scale := 1.0
	if side := max(bounds.W, bounds.H); side > overlapMaxSide {
		scale = float64(overlapMaxSide) / float64(side)
	}
	project := func(r geom.Rect) geom.Rect {
		return geom.Rect{
			X: int(float64(r.X-bounds.X)*scale) + overlapPadding,
			Y: int(float64(r.Y-bounds.Y)*scale) + overlapPadding,
			W: max(1, int(float64(r.W)*scale)),
			H: max(1, int(float64(r.H)*scale)),
		}
	}

	w := int(float64(bounds.W)*scale) + 2*overlapPadding
	h := int(float64(bounds.H)*scale) + 2*overlapPadding
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(overlapBackground), image.Point{}, draw.Src)

	for _, r := range rects {
		strokeRect(img, project(r), overlapOutline)
	}
	for _, i := range pair {
		if i < 0 || i >= len(rects) {
			continue
		}
		draw.Draw(img, project(rects[i]).Image(), image.NewUniform(overlapHighlight), image.Point{}, draw.Over)
	}

	return encodePNG(img)
}
