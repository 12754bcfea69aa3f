package model

import "math"

// Rect represents a rectangle by its edges, in page-relative measurement
// units. Top is smaller than Bottom: the vertical axis grows downward,
// matching rendered content flow.
type Rect struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// NewRect creates a rectangle from its edges.
func NewRect(top, bottom, left, right float64) Rect {
	return Rect{Top: top, Bottom: bottom, Left: left, Right: right}
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// IsValid returns true if the rectangle has non-negative extents.
// Caret rectangles may legitimately have zero width.
func (r Rect) IsValid() bool {
	return r.Bottom >= r.Top && r.Right >= r.Left
}

// Intersects checks if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return !(r.Right < other.Left ||
		r.Left > other.Right ||
		r.Bottom < other.Top ||
		r.Top > other.Bottom)
}

// Union returns the smallest rectangle covering both rectangles.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Top:    math.Min(r.Top, other.Top),
		Bottom: math.Max(r.Bottom, other.Bottom),
		Left:   math.Min(r.Left, other.Left),
		Right:  math.Max(r.Right, other.Right),
	}
}
