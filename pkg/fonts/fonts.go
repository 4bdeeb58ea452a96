// Package fonts provides the embedded Go Regular font for measuring and
// drawing tags.
//
// The font data ships with golang.org/x/image, so no system fonts are needed.
// Faces are created per size; a [Measurer] caches them and serializes access
// because opentype faces are not safe for concurrent use.
package fonts

import (
	"math"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/matzehuels/tagcloud/pkg/geom"
)

// DPI is the resolution faces are created at; font sizes equal pixels.
const DPI = 72

// FontFamily is the CSS font-family name matching the embedded font.
const FontFamily = "Go"

// FallbackFontFamily lists fallbacks for SVG viewers without the Go font.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`

// Estimates used when no face can be created.
const (
	fallbackCharWidth  = 0.55
	fallbackLineHeight = 1.2
)

var (
	regular     *opentype.Font
	regularErr  error
	regularOnce sync.Once
)

// Regular returns the parsed Go Regular font. It is parsed once.
func Regular() (*opentype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// NewFace returns a new face of Go Regular at the given size in pixels.
func NewFace(size float64) (font.Face, error) {
	f, err := Regular()
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     DPI,
		Hinting: font.HintingNone,
	})
}

// Measurer measures text with cached faces. It is safe for concurrent use.
type Measurer struct {
	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewMeasurer returns an empty Measurer.
func NewMeasurer() *Measurer {
	return &Measurer{faces: make(map[float64]font.Face)}
}

// Measure returns the pixel box of text at fontSize: the advance width by
// the line's ascent plus descent, rounded up. Both dimensions are at least 1.
func (m *Measurer) Measure(text string, fontSize float64) geom.Size {
	m.mu.Lock()
	defer m.mu.Unlock()

	face, err := m.face(fontSize)
	if err != nil {
		return estimate(text, fontSize)
	}
	metrics := face.Metrics()
	w := font.MeasureString(face, text).Ceil()
	h := (metrics.Ascent + metrics.Descent).Ceil()
	return geom.Sz(max(1, w), max(1, h))
}

func (m *Measurer) face(size float64) (font.Face, error) {
	if f, ok := m.faces[size]; ok {
		return f, nil
	}
	f, err := NewFace(size)
	if err != nil {
		return nil, err
	}
	m.faces[size] = f
	return f, nil
}

// estimate sizes text from average glyph proportions.
func estimate(text string, fontSize float64) geom.Size {
	n := utf8.RuneCountInString(text)
	w := int(math.Ceil(float64(n) * fontSize * fallbackCharWidth))
	h := int(math.Ceil(fontSize * fallbackLineHeight))
	return geom.Sz(max(1, w), max(1, h))
}
