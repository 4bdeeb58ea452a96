// Package spiral generates candidate positions on an Archimedean spiral.
//
// A [Spiral] is a cursor over an unbounded sequence of integer points whose
// radius grows linearly with the angle (r = k·θ). The sequence starts at the
// origin and only moves outwards; consuming it never rewinds the cursor, so a
// single long-lived Spiral explores each radius once across many searches.
//
//	s := spiral.New(spiral.DefaultStep)
//	for p := range s.Points() {
//	    if fits(p) {
//	        break // the next range over s.Points() resumes after p
//	    }
//	}
package spiral

import (
	"iter"
	"math"

	"github.com/matzehuels/tagcloud/pkg/geom"
)

// DefaultStep is the default angular step in radians (10 degrees).
const DefaultStep = math.Pi / 18

// Spiral is a restartable-on-construction cursor over spiral points.
// It is not safe for concurrent use.
type Spiral struct {
	step float64
	n    int
}

// New returns a spiral advancing by step radians per point. Non-positive or
// non-finite steps fall back to DefaultStep.
func New(step float64) *Spiral {
	if !(step > 0) || math.IsInf(step, 0) {
		step = DefaultStep
	}
	return &Spiral{step: step}
}

// Step returns the angular step in radians.
func (s *Spiral) Step() float64 { return s.step }

// Index returns the number of points produced so far.
func (s *Spiral) Index() int { return s.n }

// Next returns the point at the current cursor and advances it.
func (s *Spiral) Next() geom.Point {
	p := s.at(s.n)
	s.n++
	return p
}

// Points yields points starting at the current cursor. Breaking out of the
// loop leaves the cursor just past the last point received.
func (s *Spiral) Points() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for {
			if !yield(s.Next()) {
				return
			}
		}
	}
}

// Radius returns the continuous radius of the i-th point.
func (s *Spiral) Radius(i int) float64 {
	return s.step * s.angle(i)
}

func (s *Spiral) angle(i int) float64 { return float64(i) * s.step }

func (s *Spiral) at(i int) geom.Point {
	theta := s.angle(i)
	r := s.step * theta
	return geom.Point{
		X: int(math.Round(r * math.Cos(theta))),
		Y: int(math.Round(r * math.Sin(theta))),
	}
}
