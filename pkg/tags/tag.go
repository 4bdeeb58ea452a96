// Package tags turns words into positioned, styled tags.
//
// Each word gets a [Kind] from its position in the list, a [Style] from an
// explicit [Styles] table, a size from a [Measurer], and a box from a
// [Placer] (normally a *layout.Layouter).
package tags

import (
	"context"
	"fmt"

	"github.com/matzehuels/tagcloud/pkg/geom"
)

// Kind ranks a tag's visual weight.
type Kind int

const (
	Small Kind = iota
	Medium
	Large
	Central
)

// Kinds lists every kind from heaviest to lightest.
var Kinds = []Kind{Central, Large, Medium, Small}

const (
	largeFrequency  = 8
	mediumFrequency = 3
)

// KindFor classifies the word at index i: the first word is central, every
// eighth word large, every third medium and the rest small.
func KindFor(i int) Kind {
	switch {
	case i == 0:
		return Central
	case i%largeFrequency == 0:
		return Large
	case i%mediumFrequency == 0:
		return Medium
	}
	return Small
}

func (k Kind) String() string {
	switch k {
	case Central:
		return "central"
	case Large:
		return "large"
	case Medium:
		return "medium"
	case Small:
		return "small"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Tag is a word with its style and final box.
type Tag struct {
	Text  string
	Kind  Kind
	Style Style
	Box   geom.Rect
}

// Measurer measures the box a text needs at a font size.
type Measurer interface {
	Measure(text string, fontSize float64) geom.Size
}

// Placer assigns a final rectangle to a size.
type Placer interface {
	Place(size geom.Size) (geom.Rect, error)
}

// Factory builds tags with a style table and a measurer.
type Factory struct {
	Styles   Styles
	Measurer Measurer
}

// Build measures and places every word in order. It stops at the first
// placement error or when ctx is cancelled.
func (f Factory) Build(ctx context.Context, words []string, p Placer) ([]Tag, error) {
	if err := f.Styles.Validate(); err != nil {
		return nil, err
	}
	out := make([]Tag, 0, len(words))
	for i, w := range words {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		kind := KindFor(i)
		style := f.Styles[kind]
		size := f.Measurer.Measure(w, style.FontSize)
		box, err := p.Place(size)
		if err != nil {
			return nil, fmt.Errorf("place %q: %w", w, err)
		}
		out = append(out, Tag{Text: w, Kind: kind, Style: style, Box: box})
	}
	return out, nil
}

// Boxes returns the boxes of tags in order.
func Boxes(tags []Tag) []geom.Rect {
	out := make([]geom.Rect, len(tags))
	for i, t := range tags {
		out[i] = t.Box
	}
	return out
}
