// Package geom provides the integer plane geometry shared by the spiral
// generator, the layout engine and the render sinks.
//
// All values are small value types. Rectangles are axis aligned and anchored
// at their top-left corner; the Y axis grows downwards as in image space.
package geom

import (
	"fmt"
	"image"
)

// Point is a location in the integer plane.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Size is the extent of a rectangle.
type Size struct {
	W, H int
}

// Sz is shorthand for Size{W: w, H: h}.
func Sz(w, h int) Size { return Size{W: w, H: h} }

// Valid reports whether both dimensions are strictly positive.
func (s Size) Valid() bool { return s.W > 0 && s.H > 0 }

// Half returns the size halved per axis with Go integer division.
func (s Size) Half() Point { return Point{X: s.W / 2, Y: s.H / 2} }

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// Rect is an axis-aligned rectangle with its top-left corner at (X, Y).
type Rect struct {
	X, Y, W, H int
}

// R builds a rectangle from a location and a size.
func R(loc Point, size Size) Rect {
	return Rect{X: loc.X, Y: loc.Y, W: size.W, H: size.H}
}

// CenteredAt returns a rectangle of the given size whose Center is p.
func CenteredAt(p Point, size Size) Rect {
	return R(p.Sub(size.Half()), size)
}

// Location returns the top-left corner.
func (r Rect) Location() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the extent of r.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the location offset by half the size, truncated towards the
// top-left corner.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Add returns r translated by p.
func (r Rect) Add(p Point) Rect {
	r.X += p.X
	r.Y += p.Y
	return r
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return r.X <= p.X && p.X < r.X+r.W &&
		r.Y <= p.Y && p.Y < r.Y+r.H
}

// Intersects reports whether r and o share a non-zero area. Rectangles that
// only touch along an edge or a corner do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// IntersectsAny reports whether r intersects any rectangle in rects.
func (r Rect) IntersectsAny(rects []Rect) bool {
	for _, o := range rects {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}

// Union returns the smallest rectangle containing both r and o. An empty
// operand is ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

func (r Rect) String() string {
	return fmt.Sprintf("%s+%s", r.Location(), r.Size())
}

// Bounds returns the union of all rects, or the zero Rect for none.
func Bounds(rects []Rect) Rect {
	var b Rect
	for _, r := range rects {
		b = b.Union(r)
	}
	return b
}

// FirstIntersecting returns the indices of the first pair of intersecting
// rectangles, scanning in order, and ok=false when all pairs are disjoint.
func FirstIntersecting(rects []Rect) (i, j int, ok bool) {
	for i = range rects {
		for j = i + 1; j < len(rects); j++ {
			if rects[i].Intersects(rects[j]) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// Sign returns -1, 0 or +1 according to the sign of v.
func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
