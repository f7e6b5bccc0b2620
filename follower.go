package navkit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PathFollower moves a point along a world path at constant speed, easing
// each segment between consecutive navpoints with a gween tween. Call Update
// once per frame; read Position afterwards.
//
// Reaching an intermediate point emits NavEventWaypoint to Sink, reaching the
// last point emits NavEventArrived and sets Done. A looping path never
// finishes.
type PathFollower struct {
	Position Vec2
	Speed    float64 // world units per second
	Ease     ease.TweenFunc
	Sink     EventSink
	Agent    uint64 // copied into emitted events
	Done     bool

	path     *Path[WorldNavpoint]
	segStart Vec2
	tween    *gween.Tween // progress 0..1 along the current segment
}

// NewPathFollower starts following path from start. A nil ease function
// means linear motion. A non-positive speed yields a follower that is
// already done.
func NewPathFollower(start Vec2, path *Path[WorldNavpoint], speed float64, fn ease.TweenFunc) *PathFollower {
	if fn == nil {
		fn = ease.Linear
	}
	return &PathFollower{
		Position: start,
		Speed:    speed,
		Ease:     fn,
		Done:     speed <= 0 || path == nil,
		path:     path,
	}
}

// Path returns the path being followed. Its cursor points at the next
// navpoint to reach.
func (f *PathFollower) Path() *Path[WorldNavpoint] { return f.path }

// Update advances the follower by dt seconds. Time left over after reaching
// a navpoint carries into the next segment.
func (f *PathFollower) Update(dt float32) {
	for steps := 0; !f.Done && steps <= f.path.Len(); steps++ {
		if f.tween == nil && !f.beginSegment() {
			return
		}
		t, finished := f.tween.Update(dt)
		target := f.path.CurrentPoint()
		if !finished {
			f.Position = lerp(f.segStart, target.Coord, float64(t))
			return
		}

		dt = f.tween.Overflow
		f.tween = nil
		f.Position = target.Coord
		f.path.Advance()
		if f.path.IsTraversed() {
			f.finish(target)
			return
		}
		f.emit(NavEventWaypoint, target)
		if dt <= 0 {
			return
		}
	}
}

// beginSegment sets up the tween towards the current navpoint. It reports
// false and finishes the follower when nothing is left to follow.
func (f *PathFollower) beginSegment() bool {
	if f.path.IsTraversed() {
		f.finish(WorldNavpoint{Coord: f.Position})
		return false
	}
	target := f.path.CurrentPoint().Coord
	f.segStart = f.Position
	duration := f.Position.Dist(target) / f.Speed
	f.tween = gween.New(0, 1, float32(duration), f.Ease)
	return true
}

func (f *PathFollower) finish(at WorldNavpoint) {
	f.Done = true
	f.emit(NavEventArrived, at)
}

func (f *PathFollower) emit(typ NavEventType, p WorldNavpoint) {
	if f.Sink == nil {
		return
	}
	f.Sink.EmitNavEvent(NavEvent{Type: typ, Agent: f.Agent, Point: p})
}

func lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}
