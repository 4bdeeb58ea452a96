package tags

import (
	"image/color"
	"maps"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	tcerrors "github.com/matzehuels/tagcloud/pkg/errors"
)

// Style is how a kind of tag is drawn.
type Style struct {
	Color    string  `json:"color" toml:"color"`         // hex, e.g. "#FF6600"
	FontSize float64 `json:"font_size" toml:"font_size"` // points at 72 dpi
}

// RGBA parses Color. Unparsable colors render black.
func (s Style) RGBA() color.RGBA {
	c, err := ParseColor(s.Color)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}

// ParseColor parses a "#rrggbb" or "#rgb" hex color.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, tcerrors.Wrap(tcerrors.ErrCodeInvalidStyle, err, "invalid color %q", hex)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Styles maps every kind to its style.
type Styles map[Kind]Style

// Validate requires a style with a parsable color and a positive font size
// for every kind.
func (s Styles) Validate() error {
	for _, k := range Kinds {
		st, ok := s[k]
		if !ok {
			return tcerrors.New(tcerrors.ErrCodeInvalidStyle, "missing style for %s tags", k)
		}
		if !(st.FontSize > 0) {
			return tcerrors.New(tcerrors.ErrCodeInvalidStyle, "%s font size must be positive, got %v", k, st.FontSize)
		}
		if _, err := ParseColor(st.Color); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns an independent copy.
func (s Styles) Clone() Styles { return maps.Clone(s) }

// Theme is a named style table with its background.
type Theme struct {
	Name       string
	Background string
	Styles     Styles
}

// Built-in theme names.
const (
	ThemeWeb  = "web"
	ThemeMono = "mono"
)

var themes = map[string]Theme{
	ThemeWeb: {
		Name:       ThemeWeb,
		Background: "#1E1E1E",
		Styles: Styles{
			Central: {Color: "#FFFFFF", FontSize: 60},
			Large:   {Color: "#FF6600", FontSize: 22},
			Medium:  {Color: "#D45500", FontSize: 18},
			Small:   {Color: "#A05A2C", FontSize: 13},
		},
	},
	ThemeMono: {
		Name:       ThemeMono,
		Background: "#FFFFFF",
		Styles: Styles{
			Central: {Color: "#111111", FontSize: 56},
			Large:   {Color: "#333333", FontSize: 24},
			Medium:  {Color: "#555555", FontSize: 18},
			Small:   {Color: "#777777", FontSize: 12},
		},
	},
}

// LookupTheme returns a copy of a built-in theme.
func LookupTheme(name string) (Theme, error) {
	th, ok := themes[name]
	if !ok {
		return Theme{}, tcerrors.New(tcerrors.ErrCodeInvalidStyle, "unknown style %q (available: %v)", name, ThemeNames())
	}
	th.Styles = th.Styles.Clone()
	return th, nil
}

// ThemeNames returns the sorted names of the built-in themes.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(themes))
}
