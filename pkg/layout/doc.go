// Package layout places rectangles around a center point without overlap.
//
// A [Layouter] receives rectangle sizes one at a time and returns each
// rectangle at its final position. Placement walks a single shared
// Archimedean spiral (see package spiral) until a free spot is found, then
// slides the rectangle towards the center until it is blocked. Placed
// rectangles never move again, so the returned positions are final.
//
// # Coordinates
//
// Internally every rectangle lives in origin-centered coordinates. The
// center passed to [New] is added to each rectangle before it is returned,
// so callers work in their own frame (typically image pixels).
//
// # Placement
//
// For each size:
//
//  1. The first rectangle is centered on the spiral's first point, the origin.
//  2. Later rectangles take the first spiral point P whose rectangle anchored
//     at P is free. When P lies on the left half (P.X <= 0) and the anchored
//     rectangle is blocked, the rectangle ending at P is tried as well.
//  3. [Compact] slides the winner towards the origin, one unit at a time,
//     x axis then y axis, twice.
//
// The spiral cursor is shared across calls and never rewinds, so later
// rectangles search radii the earlier ones did not reach.
//
// # Concurrency
//
// A Layouter is not safe for concurrent use. Guard Place with a mutex or give
// each goroutine its own Layouter.
package layout
