package navkit

import "fmt"

// Coord is the set of coordinate types a Navpoint can carry.
type Coord interface {
	Tile | Vec2
}

// Navpoint is a single point of a path. Value is an opaque payload that
// pathfinding never inspects; games use it for things like trigger ids.
type Navpoint[C Coord] struct {
	Coord C
	Value uint32
}

// TileNavpoint is a navpoint in tile coordinates.
type TileNavpoint = Navpoint[Tile]

// WorldNavpoint is a navpoint in world coordinates.
type WorldNavpoint = Navpoint[Vec2]

// Path is an ordered list of points consumed one at a time. The cursor starts
// at the first point; Advance moves to the next one. A non-looping path is
// traversed once the cursor moves past the last point. A looping path wraps
// back to the first point and is never traversed.
type Path[T any] struct {
	points  []T
	looping bool
	cursor  int
}

// NewPath creates a path over a copy of points.
func NewPath[T any](points []T, looping bool) *Path[T] {
	p := &Path[T]{looping: looping}
	if len(points) > 0 {
		p.points = make([]T, len(points))
		copy(p.points, points)
	}
	return p
}

// IsTraversed reports whether every point has been consumed. An empty
// non-looping path is traversed from the start.
func (p *Path[T]) IsTraversed() bool {
	if p.looping && len(p.points) > 0 {
		return false
	}
	return p.cursor >= len(p.points)
}

// IsLooping reports whether the path wraps around at its end.
func (p *Path[T]) IsLooping() bool { return p.looping }

// CurrentPoint returns the point under the cursor. It panics if the path is
// traversed.
func (p *Path[T]) CurrentPoint() T {
	if p.IsTraversed() {
		panic(fmt.Sprintf("navkit: CurrentPoint on traversed path (len %d)", len(p.points)))
	}
	return p.points[p.cursor]
}

// Advance moves the cursor to the next point. Advancing a traversed path is
// a no-op.
func (p *Path[T]) Advance() {
	if p.IsTraversed() {
		return
	}
	p.cursor++
	if p.looping && p.cursor >= len(p.points) {
		p.cursor = 0
	}
}

// Len returns the number of points in the path, regardless of the cursor.
func (p *Path[T]) Len() int { return len(p.points) }

// Reset moves the cursor back to the first point.
func (p *Path[T]) Reset() { p.cursor = 0 }

// Points returns a copy of all points, including the ones already consumed.
func (p *Path[T]) Points() []T {
	out := make([]T, len(p.points))
	copy(out, p.points)
	return out
}

// Remaining returns a copy of the points from the cursor onward.
func (p *Path[T]) Remaining() []T {
	if p.IsTraversed() {
		return nil
	}
	out := make([]T, len(p.points)-p.cursor)
	copy(out, p.points[p.cursor:])
	return out
}

// Clone returns an independent copy of the path, cursor included.
func (p *Path[T]) Clone() *Path[T] {
	c := NewPath(p.points, p.looping)
	c.cursor = p.cursor
	return c
}
