package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	tcerrors "github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/fonts"
	"github.com/matzehuels/tagcloud/pkg/geom"
	"github.com/matzehuels/tagcloud/pkg/tags"
)

// FaceFunc returns a font face at a pixel size.
type FaceFunc func(size float64) (font.Face, error)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	boxes bool
	face  FaceFunc
}

// WithPNGBoxes outlines every tag box.
func WithPNGBoxes() PNGOption { return func(r *pngRenderer) { r.boxes = true } }

// WithFace overrides how faces are created (default fonts.NewFace).
func WithFace(fn FaceFunc) PNGOption { return func(r *pngRenderer) { r.face = fn } }

// RenderPNG rasterizes c. Faces are created per call, one per font size,
// and closed before it returns.
func RenderPNG(c Cloud, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{face: fonts.NewFace}
	for _, opt := range opts {
		opt(&r)
	}
	if err := tcerrors.ValidateDimensions(c.Width, c.Height); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	if c.Background != "" {
		bg, err := tags.ParseColor(c.Background)
		if err != nil {
			return nil, err
		}
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	faces := make(map[float64]font.Face)
	defer func() {
		for _, f := range faces {
			_ = f.Close()
		}
	}()
	for _, t := range c.Tags {
		col := t.Style.RGBA()
		if r.boxes {
			strokeRect(img, t.Box, color.NRGBA{R: col.R, G: col.G, B: col.B, A: 0x80})
		}
		face, ok := faces[t.Style.FontSize]
		if !ok {
			var err error
			if face, err = r.face(t.Style.FontSize); err != nil {
				return nil, tcerrors.Wrap(tcerrors.ErrCodeInternal, err, "create face for %q", t.Text)
			}
			faces[t.Style.FontSize] = face
		}
		drawText(img, face, t, col)
	}

	return encodePNG(img)
}

// drawText draws t's text horizontally centered in its box with the
// baseline one ascent below the box top.
func drawText(dst draw.Image, face font.Face, t tags.Tag, col color.Color) {
	adv := font.MeasureString(face, t.Text)
	x := fixed.I(t.Box.X) + (fixed.I(t.Box.W)-adv)/2
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: fixed.I(t.Box.Y) + face.Metrics().Ascent},
	}
	d.DrawString(t.Text)
}

// strokeRect draws a one pixel outline of r.
func strokeRect(dst draw.Image, r geom.Rect, col color.Color) {
	if r.Empty() {
		return
	}
	src := image.NewUniform(col)
	edges := []image.Rectangle{
		image.Rect(r.X, r.Y, r.Right(), r.Y+1),
		image.Rect(r.X, r.Bottom()-1, r.Right(), r.Bottom()),
		image.Rect(r.X, r.Y, r.X+1, r.Bottom()),
		image.Rect(r.Right()-1, r.Y, r.Right(), r.Bottom()),
	}
	for _, e := range edges {
		draw.Draw(dst, e, src, image.Point{}, draw.Over)
	}
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, tcerrors.Wrap(tcerrors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}
