package navkit

import "github.com/jakecoffman/cp"

// bb converts r to a chipmunk bounding box. navkit's Y axis grows downward,
// so the box's B edge is the rectangle's top.
func bb(r Rect) cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}

func cpVec(v Vec2) cp.Vector { return cp.Vector{X: v.X, Y: v.Y} }

// Collides reports whether two shapes overlap. Touching edges count as
// overlapping. Vec2, Rect, and Circle are tested exactly in every
// combination; any other Shape is approximated by its bounding box.
func Collides(a, b Shape) bool {
	switch a := a.(type) {
	case Rect:
		return rectCollides(a, b)
	case Circle:
		return circleCollides(a, b)
	case Vec2:
		return pointCollides(a, b)
	}
	return rectCollides(a.Bounds(), b)
}

func rectCollides(r Rect, other Shape) bool {
	box := bb(r)
	switch o := other.(type) {
	case Vec2:
		return box.ContainsVect(cpVec(o))
	case Circle:
		return circleRect(o, box)
	case Rect:
		return box.Intersects(bb(o))
	}
	return box.Intersects(bb(other.Bounds()))
}

func circleCollides(c Circle, other Shape) bool {
	switch o := other.(type) {
	case Vec2:
		return cpVec(c.Center()).DistanceSq(cpVec(o)) <= c.Radius*c.Radius
	case Circle:
		r := c.Radius + o.Radius
		return cpVec(c.Center()).DistanceSq(cpVec(o.Center())) <= r*r
	case Rect:
		return circleRect(c, bb(o))
	}
	return circleRect(c, bb(other.Bounds()))
}

func pointCollides(p Vec2, other Shape) bool {
	switch o := other.(type) {
	case Vec2:
		return p == o
	case Circle:
		return circleCollides(o, p)
	case Rect:
		return bb(o).ContainsVect(cpVec(p))
	}
	return bb(other.Bounds()).ContainsVect(cpVec(p))
}

// circleRect clamps the circle's center into the box and compares the
// distance to the clamped point with the radius.
func circleRect(c Circle, box cp.BB) bool {
	center := cpVec(c.Center())
	nearest := box.ClampVect(&center)
	return center.DistanceSq(nearest) <= c.Radius*c.Radius
}
