// Package core provides fundamental types and utilities shared by the simulation
// and its hosts. It contains no external dependencies (especially no Bubble Tea) to
// keep game logic pure and testable.
package core

// RectF is an axis-aligned rectangle in screen-pixel space.
// Edges are stored explicitly because entities move one edge and derive the other.
type RectF struct {
	Left, Top, Right, Bottom float64
}

// NewRectF creates a rectangle from its top-left corner and size.
func NewRectF(left, top, w, h float64) RectF {
	return RectF{Left: left, Top: top, Right: left + w, Bottom: top + h}
}

// Width returns the horizontal extent.
func (r RectF) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r RectF) Height() float64 {
	return r.Bottom - r.Top
}

// CenterX returns the x-coordinate of the horizontal midpoint.
func (r RectF) CenterX() float64 {
	return r.Left + r.Width()/2
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect.
func (r RectF) Intersects(other RectF) bool {
	return r.Left < other.Right && r.Right > other.Left &&
		r.Top < other.Bottom && r.Bottom > other.Top
}

// Rect is an integer rectangle in terminal cell space.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
