// Package aabb holds the axis-aligned box math used by level collision:
// strict intersection, per-axis direction classification and exact
// resolution.
package aabb

// Rect is an axis-aligned box in pixel space. X/Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether r and o overlap. Boxes that only share an edge
// do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// InsideX reports whether r lies horizontally within o.
func (r Rect) InsideX(o Rect) bool {
	return r.Left() >= o.Left() && r.Right() <= o.Right()
}
