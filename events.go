package navkit

// NavEventType identifies a kind of navigation event.
type NavEventType uint8

const (
	NavEventWaypoint NavEventType = iota // a path point other than the last was reached
	NavEventArrived                      // the final point of a path was reached
)

// NavEvent reports progress of a PathFollower.
type NavEvent struct {
	Type  NavEventType
	Agent uint64 // PathFollower.Agent, set by the caller to tell followers apart
	Point WorldNavpoint
}

// EventSink receives navigation events. The ecs package provides a sink
// that publishes them into a Donburi world.
type EventSink interface {
	EmitNavEvent(event NavEvent)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(NavEvent)

// EmitNavEvent calls f(event).
func (f EventSinkFunc) EmitNavEvent(event NavEvent) { f(event) }
