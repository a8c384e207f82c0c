// Package geom holds the integer rectangle and float vector types shared by
// the physics and scene packages, plus the small set of angle and segment
// helpers the physics solver is built on.
package geom

import "math"

// Vec2 is a 2D vector used for positions, forces, and directions.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Rect is an axis-aligned integer rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward. Right and Bottom are
// exclusive.
type Rect struct {
	X, Y, Width, Height int
}

// Left returns the X coordinate of the left edge.
func (r Rect) Left() int { return r.X }

// Right returns the X coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() int { return r.Y }

// Bottom returns the Y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Center returns the centre point using integer halves, so a 3-wide
// rectangle at X=0 has its centre at 1.
func (r Rect) Center() Vec2 {
	return Vec2{float64(r.X + r.Width/2), float64(r.Y + r.Height/2)}
}

// IsEmpty reports whether r is the zero rectangle.
func (r Rect) IsEmpty() bool { return r == Rect{} }

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{r.X + dx, r.Y + dy, r.Width, r.Height}
}

// Contains reports whether the point (x, y) lies inside r. Left and top
// edges are inside, right and bottom edges are not.
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.X+r.Width &&
		r.Y <= y && y < r.Y+r.Height
}

// Intersects reports whether r and o overlap with a non-zero area.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return o.Left() < r.Right() && r.Left() < o.Right() &&
		o.Top() < r.Bottom() && r.Top() < o.Bottom()
}

// Intersect returns the overlapping area of a and b, or the empty
// rectangle when they do not overlap.
func Intersect(a, b Rect) Rect {
	left := max(a.Left(), b.Left())
	top := max(a.Top(), b.Top())
	right := min(a.Right(), b.Right())
	bottom := min(a.Bottom(), b.Bottom())
	if right > left && bottom > top {
		return Rect{left, top, right - left, bottom - top}
	}
	return Rect{}
}
