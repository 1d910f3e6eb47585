// Package core provides fundamental types and utilities shared by the
// simulation and the terminal shell. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Rect is an integer rectangle in screen cells, used for drawing.
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

// RectF is an axis-aligned rectangle in play-field units.
// Y grows downward, so Top < Bottom.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRectF creates a field rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r RectF) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r RectF) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether two rectangles intersect.
// Boundaries are inclusive: rectangles that merely touch count as overlapping,
// matching the wall and paddle contact rules.
func (r RectF) Overlaps(other RectF) bool {
	if r.Right() < other.Left() || other.Right() < r.Left() {
		return false
	}
	if r.Bottom() < other.Top() || other.Bottom() < r.Top() {
		return false
	}
	return true
}

// ContainsPoint reports whether (x, y) lies inside the rectangle.
// The top-left edges are inclusive and the bottom-right edges exclusive, so a
// point on a shared edge belongs to exactly one of two adjacent rectangles.
func (r RectF) ContainsPoint(x, y float64) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// Overlaps is the free-function form of RectF.Overlaps.
func Overlaps(a, b RectF) bool {
	return a.Overlaps(b)
}

// PointInside is the free-function form of RectF.ContainsPoint.
func PointInside(r RectF, x, y float64) bool {
	return r.ContainsPoint(x, y)
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
