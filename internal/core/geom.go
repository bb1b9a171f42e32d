// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Box is an axis-aligned bounding box described by its center and full size.
// Simulation entities are positioned by their center, so collision works on Boxes.
type Box struct {
	X, Y float64 // Center position
	W, H float64 // Full width and height (sign is ignored)
}

// NewBox creates a box centered at (x, y) with the given size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// HalfW returns half of the box width as a positive value.
func (b Box) HalfW() float64 {
	return math.Abs(b.W) / 2
}

// HalfH returns half of the box height as a positive value.
func (b Box) HalfH() float64 {
	return math.Abs(b.H) / 2
}

// Overlaps reports whether two boxes overlap.
// Uses standard AABB collision detection with strict inequalities,
// so boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	if math.Abs(b.X-other.X) >= b.HalfW()+other.HalfW() {
		return false
	}
	if math.Abs(b.Y-other.Y) >= b.HalfH()+other.HalfH() {
		return false
	}
	return true
}

// Rect represents an integer axis-aligned rectangle used for screen layout.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampF restricts a float64 value to be within [min, max].
// Use math.Inf(1) for an open upper bound.
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
