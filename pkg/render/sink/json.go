package sink

import (
	"encoding/json"
	"io"

	tcerrors "github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
	"github.com/matzehuels/tagcloud/pkg/tags"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	id    string
	style string
	seed  uint64
}

// WithJSONID records an identifier for the cloud.
func WithJSONID(id string) JSONOption { return func(r *jsonRenderer) { r.id = id } }

// WithJSONStyle records the theme name used for the cloud.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONSeed records the shuffle seed, enabling reproducible re-rendering.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

type jsonOutput struct {
	ID         string    `json:"id,omitempty"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Background string    `json:"background,omitempty"`
	Style      string    `json:"style,omitempty"`
	Seed       uint64    `json:"seed,omitempty"`
	Tags       []jsonTag `json:"tags"`
}

type jsonTag struct {
	Text     string  `json:"text"`
	Kind     string  `json:"kind"`
	Color    string  `json:"color"`
	FontSize float64 `json:"font_size"`
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
}

// RenderJSON encodes c with indentation.
func RenderJSON(c Cloud, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		ID:         r.id,
		Width:      c.Width,
		Height:     c.Height,
		Background: c.Background,
		Style:      r.style,
		Seed:       r.seed,
		Tags:       make([]jsonTag, len(c.Tags)),
	}
	for i, t := range c.Tags {
		out.Tags[i] = jsonTag{
			Text:     t.Text,
			Kind:     t.Kind.String(),
			Color:    t.Style.Color,
			FontSize: t.Style.FontSize,
			X:        t.Box.X,
			Y:        t.Box.Y,
			Width:    t.Box.W,
			Height:   t.Box.H,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

// ReadJSON decodes a cloud written by RenderJSON.
func ReadJSON(rd io.Reader) (Cloud, error) {
	var in jsonOutput
	if err := json.NewDecoder(rd).Decode(&in); err != nil {
		return Cloud{}, tcerrors.Wrap(tcerrors.ErrCodeInvalidInput, err, "decode cloud json")
	}

	c := Cloud{
		Width:      in.Width,
		Height:     in.Height,
		Background: in.Background,
		Tags:       make([]tags.Tag, len(in.Tags)),
	}
	for i, t := range in.Tags {
		kind, ok := tags.ParseKind(t.Kind)
		if !ok {
			return Cloud{}, tcerrors.New(tcerrors.ErrCodeInvalidInput, "tag %d: unknown kind %q", i, t.Kind)
		}
		c.Tags[i] = tags.Tag{
			Text:  t.Text,
			Kind:  kind,
			Style: tags.Style{Color: t.Color, FontSize: t.FontSize},
			Box:   geom.Rect{X: t.X, Y: t.Y, W: t.Width, H: t.Height},
		}
	}
	return c, nil
}
