// Package core holds the platform-neutral building blocks shared by the
// games: geometry, the cell screen, input frames, events and runtime config.
// Nothing here imports Bubble Tea.
package core

// Point is a cell position or a width/height pair.
type Point struct {
	X, Y int
}

// Rect represents an axis-aligned area of the screen, used for widget
// layout and pointer hit-testing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredAt returns a w x h rectangle whose center is (cx, cy).
func CenteredAt(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
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
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Scale returns a rectangle with the same center and dimensions multiplied
// by f. Dimensions never drop below one cell.
func (r Rect) Scale(f float64) Rect {
	w := max(1, int(float64(r.W)*f))
	h := max(1, int(float64(r.H)*f))
	cx, cy := r.Center()
	return CenteredAt(cx, cy, w, h)
}

// ClampPoint moves (x, y) to the nearest cell inside r.
func (r Rect) ClampPoint(x, y int) Point {
	return Point{
		X: Clamp(x, r.X, r.Right()-1),
		Y: Clamp(y, r.Y, r.Bottom()-1),
	}
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
