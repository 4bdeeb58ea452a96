package layout

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	tcerrors "github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
	"github.com/matzehuels/tagcloud/pkg/spiral"
)

// ErrInvalidSize is matched by errors.Is for sizes that are not strictly
// positive in both dimensions.
var ErrInvalidSize = errors.New("invalid size")

// Option configures a Layouter.
type Option func(*Layouter)

// WithStep sets the angular step of the search spiral in radians.
func WithStep(step float64) Option {
	return func(l *Layouter) { l.spiral = spiral.New(step) }
}

// WithLogger enables debug traces of each placement.
func WithLogger(logger *log.Logger) Option {
	return func(l *Layouter) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Layouter is a circular cloud layouter. The zero value is not usable; create
// one with New.
type Layouter struct {
	center geom.Point
	rects  []geom.Rect
	spiral *spiral.Spiral
	logger *log.Logger
}

// New returns a Layouter that centers the cloud on center.
func New(center geom.Point, opts ...Option) *Layouter {
	l := &Layouter{
		center: center,
		spiral: spiral.New(spiral.DefaultStep),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Center returns the configured center.
func (l *Layouter) Center() geom.Point { return l.center }

// Len returns the number of placed rectangles.
func (l *Layouter) Len() int { return len(l.rects) }

// Rects returns a copy of the placed rectangles in placement order,
// translated to the caller's frame.
func (l *Layouter) Rects() []geom.Rect {
	out := make([]geom.Rect, len(l.rects))
	for i, r := range l.rects {
		out[i] = r.Add(l.center)
	}
	return out
}

// Place finds a position for a rectangle of the given size, records it and
// returns it in the caller's frame. The returned rectangle always has exactly
// the requested size. Place fails only for non-positive sizes, in which case
// the Layouter is left untouched.
func (l *Layouter) Place(size geom.Size) (geom.Rect, error) {
	if err := tcerrors.ValidateSize(size.W, size.H); err != nil {
		return geom.Rect{}, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}

	start := l.spiral.Index()
	candidate := l.search(size)
	placed := Compact(candidate, l.rects)
	l.rects = append(l.rects, placed)

	l.logger.Debug("placed rectangle",
		"n", len(l.rects),
		"size", size,
		"candidate", candidate.Location(),
		"compacted", placed.Location(),
		"spiral_steps", l.spiral.Index()-start)

	return placed.Add(l.center), nil
}

// search returns the first free candidate along the spiral.
func (l *Layouter) search(size geom.Size) geom.Rect {
	if len(l.rects) == 0 {
		return geom.CenteredAt(l.spiral.Next(), size)
	}
	for p := range l.spiral.Points() {
		r := geom.R(p, size)
		if !r.IntersectsAny(l.rects) {
			return r
		}
		// anchor by the bottom-right corner on the left half so the cloud
		// stays balanced
		if p.X <= 0 {
			r = r.Add(geom.Pt(-size.W, -size.H))
			if !r.IntersectsAny(l.rects) {
				return r
			}
		}
	}
	panic("unreachable")
}
