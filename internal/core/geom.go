// Package core provides fundamental types and utilities for the arkanoid
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Vec2 represents a 2D velocity or displacement in world units.
// The sign of each component encodes travel direction.
type Vec2 struct {
	X, Y float64
}

// Scale returns the vector with both components multiplied by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Rect represents an axis-aligned bounding box used for collision detection.
// Position is the top-left corner; width and height are expected positive.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the x-coordinate of the rectangle's center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the y-coordinate of the rectangle's center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// SetLeft moves the rectangle so its left edge is at x. Size is unchanged.
func (r *Rect) SetLeft(x float64) { r.X = x }

// SetRight moves the rectangle so its right edge is at x. Size is unchanged.
func (r *Rect) SetRight(x float64) { r.X = x - r.W }

// SetTop moves the rectangle so its top edge is at y. Size is unchanged.
func (r *Rect) SetTop(y float64) { r.Y = y }

// SetBottom moves the rectangle so its bottom edge is at y. Size is unchanged.
func (r *Rect) SetBottom(y float64) { r.Y = y - r.H }

// SetCenterX moves the rectangle so its horizontal center is at x.
func (r *Rect) SetCenterX(x float64) { r.X = x - r.W/2 }

// Intersects returns true if this rectangle overlaps another with positive
// area. Touching edges do not count: collision resolution snaps entities to
// be exactly edge-adjacent, and a re-test against the same obstacle must
// come back false.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
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
