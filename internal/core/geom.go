// Package core provides the fundamental types shared by every game: geometry
// and collision tests, grids, the input latch, session status values and the
// screen buffer used as the render projection. It has no external
// dependencies so game logic stays pure and testable.
package core

import "math"

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Vec is a 2D float vector used for positions and velocities.
type Vec struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Dist returns the euclidean distance between v and w.
func (v Vec) Dist(w Vec) float64 {
	return math.Hypot(v.X-w.X, v.Y-w.Y)
}

// Rect represents an axis-aligned bounding box on the integer grid.
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

// Intersects reports whether r and other overlap.
// The inequalities are strict: boxes sharing only an edge do not collide.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RectF is the float counterpart of Rect, used by games that integrate
// sub-cell positions.
type RectF struct {
	X, Y, W, H float64
}

// Intersects is the strict AABB test for float boxes.
func (r RectF) Intersects(other RectF) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Circle is a collision circle.
type Circle struct {
	Center Vec
	Radius float64
}

// Overlaps reports whether the two circles overlap. Touching circles
// (distance exactly equal to the radius sum) do not overlap.
func (c Circle) Overlaps(other Circle) bool {
	return c.Center.Dist(other.Center) < c.Radius+other.Radius
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
