package spiral

import (
	"math"
	"testing"

	"github.com/matzehuels/tagcloud/pkg/geom"
)

func TestFirstPointIsOrigin(t *testing.T) {
	s := New(DefaultStep)
	if p := s.Next(); p != (geom.Point{}) {
		t.Errorf("first point = %v, want origin", p)
	}
	if s.Index() != 1 {
		t.Errorf("Index() = %d, want 1", s.Index())
	}
}

func TestNewFallsBackToDefaultStep(t *testing.T) {
	for _, step := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if got := New(step).Step(); got != DefaultStep {
			t.Errorf("New(%v).Step() = %v, want %v", step, got, DefaultStep)
		}
	}
	if got := New(0.5).Step(); got != 0.5 {
		t.Errorf("New(0.5).Step() = %v", got)
	}
}

func TestRadiusNonDecreasing(t *testing.T) {
	s := New(DefaultStep)
	prev := -1.0
	for i := range 5000 {
		p := s.Next()
		r := s.Radius(i)
		if r < prev {
			t.Fatalf("radius decreased at %d: %v < %v", i, r, prev)
		}
		prev = r
		// rounding moves a point at most sqrt(2)/2 from the curve
		d := math.Hypot(float64(p.X), float64(p.Y))
		if math.Abs(d-r) > 0.7072 {
			t.Fatalf("point %d = %v at distance %v, radius %v", i, p, d, r)
		}
	}
}

func TestPointsContinuesAfterBreak(t *testing.T) {
	s := New(DefaultStep)
	ref := New(DefaultStep)

	var got []geom.Point
	for p := range s.Points() {
		got = append(got, p)
		if len(got) == 10 {
			break
		}
	}
	if s.Index() != 10 {
		t.Fatalf("Index() after break = %d, want 10", s.Index())
	}
	for p := range s.Points() {
		got = append(got, p)
		if len(got) == 25 {
			break
		}
	}

	for i, p := range got {
		if want := ref.Next(); p != want {
			t.Fatalf("point %d = %v, want %v", i, p, want)
		}
	}
}

func TestDeterministic(t *testing.T) {
	a, b := New(0.3), New(0.3)
	for i := range 1000 {
		if pa, pb := a.Next(), b.Next(); pa != pb {
			t.Fatalf("point %d differs: %v vs %v", i, pa, pb)
		}
	}
}

func TestIndependentSpirals(t *testing.T) {
	a, b := New(DefaultStep), New(DefaultStep)
	for range 100 {
		a.Next()
	}
	if b.Index() != 0 {
		t.Errorf("advancing one spiral moved another: Index() = %d", b.Index())
	}
	if p := b.Next(); p != (geom.Point{}) {
		t.Errorf("fresh spiral first point = %v", p)
	}
}

func TestSpiralGrowsOutward(t *testing.T) {
	s := New(DefaultStep)
	// 36 steps per turn at the default step
	turns := 10
	var last geom.Point
	for range turns * 36 {
		last = s.Next()
	}
	want := DefaultStep * float64(turns*36-1) * DefaultStep
	if d := math.Hypot(float64(last.X), float64(last.Y)); math.Abs(d-want) > 1 {
		t.Errorf("distance after %d turns = %v, want ~%v", turns, d, want)
	}
}
