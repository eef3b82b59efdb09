package entity

import "math"

// Vec2 is a 2D point or direction in world pixels
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Rect is an axis-aligned bounding box (top-left corner plus size)
type Rect struct {
	X, Y float64
	W, H float64
}

// Left returns the x coordinate of the left edge
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// BottomCenter returns the middle of the bottom edge
func (r Rect) BottomCenter() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H}
}

// Contains reports whether p lies inside r.
// Left and top edges are inclusive, right and bottom edges exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Overlaps reports whether two boxes share a region of positive area
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// IntersectionDepth returns the signed penetration of a into b along each axis.
// Each component is the smaller of the two possible push-outs, signed so that
// adding it to a's position separates the boxes. Both components are zero when
// the boxes do not overlap.
func IntersectionDepth(a, b Rect) (dx, dy float64) {
	if !a.Overlaps(b) {
		return 0, 0
	}

	pushRight := b.Right() - a.Left()
	pushLeft := a.Right() - b.Left()
	if pushRight < pushLeft {
		dx = pushRight
	} else {
		dx = -pushLeft
	}

	pushDown := b.Bottom() - a.Top()
	pushUp := a.Bottom() - b.Top()
	if pushDown < pushUp {
		dy = pushDown
	} else {
		dy = -pushUp
	}

	return dx, dy
}

// Circle is a bounding circle
type Circle struct {
	Center Vec2
	Radius float64
}

// IntersectsRect reports whether the circle touches or overlaps r.
// A circle exactly touching an edge counts as intersecting.
func (c Circle) IntersectsRect(r Rect) bool {
	nearestX := clamp(c.Center.X, r.Left(), r.Right())
	nearestY := clamp(c.Center.Y, r.Top(), r.Bottom())
	dx := c.Center.X - nearestX
	dy := c.Center.Y - nearestY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Bounds returns the smallest box enclosing the circle
func (c Circle) Bounds() Rect {
	return Rect{
		X: c.Center.X - c.Radius,
		Y: c.Center.Y - c.Radius,
		W: c.Radius * 2,
		H: c.Radius * 2,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
