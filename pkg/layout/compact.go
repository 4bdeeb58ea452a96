package layout

import "github.com/matzehuels/tagcloud/pkg/geom"

// compactPasses is the number of x-then-y sweeps Compact performs.
const compactPasses = 2

// Compact slides r towards the origin while it stays clear of placed and
// returns the result. It is pure: neither r nor placed is modified.
//
// The direction per axis is fixed up front from the sign of r's center. Each
// pass moves r one unit at a time along x until blocked, then along y. A move
// is rejected when it would intersect a placed rectangle or when it would put
// the center on the moving axis exactly at zero. A rectangle that already
// contains the origin is returned unchanged.
func Compact(r geom.Rect, placed []geom.Rect) geom.Rect {
	if r.Contains(geom.Point{}) {
		return r
	}

	c := r.Center()
	steps := make([]geom.Point, 0, 2)
	if dx := -geom.Sign(c.X); dx != 0 {
		steps = append(steps, geom.Pt(dx, 0))
	}
	if dy := -geom.Sign(c.Y); dy != 0 {
		steps = append(steps, geom.Pt(0, dy))
	}

	for range compactPasses {
		for _, step := range steps {
			r = slide(r, step, placed)
		}
	}
	return r
}

// slide moves r by step until the next move is blocked.
func slide(r geom.Rect, step geom.Point, placed []geom.Rect) geom.Rect {
	for {
		moved := r.Add(step)
		c := moved.Center()
		if step.X != 0 && c.X == 0 || step.Y != 0 && c.Y == 0 {
			return r
		}
		if moved.IntersectsAny(placed) {
			return r
		}
		r = moved
	}
}
