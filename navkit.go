package navkit

import "math"

// Vec2 is a 2D vector used for world positions, offsets, sizes, and
// directions throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// Bounds returns a zero-sized rectangle at the point. A Vec2 used as a
// Shape covers exactly one spatial index cell.
func (v Vec2) Bounds() Rect { return Rect{X: v.X, Y: v.Y} }

// Tile is an integer tile coordinate within a Mesh. Tiles with negative
// components are valid values but always lie outside any mesh.
type Tile struct {
	X, Y int
}

// Add returns the tile offset by (dx, dy).
func (t Tile) Add(dx, dy int) Tile { return Tile{t.X + dx, t.Y + dy} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Bounds returns r itself.
func (r Rect) Bounds() Rect { return r }

// Min returns the top-left corner.
func (r Rect) Min() Vec2 { return Vec2{r.X, r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return Vec2{r.X + r.Width, r.Y + r.Height} }

// Circle is a circle given by its center and radius.
type Circle struct {
	X, Y, Radius float64
}

// Center returns the circle's center point.
func (c Circle) Center() Vec2 { return Vec2{c.X, c.Y} }

// Bounds returns the square enclosing the circle.
func (c Circle) Bounds() Rect {
	return Rect{X: c.X - c.Radius, Y: c.Y - c.Radius, Width: 2 * c.Radius, Height: 2 * c.Radius}
}

// Shape is anything the spatial index can register: it only needs an
// axis-aligned bounding box. Vec2, Rect, and Circle implement Shape and are
// also understood by Collides for exact tests.
type Shape interface {
	Bounds() Rect
}
