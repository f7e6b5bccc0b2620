package ecs

import (
	"github.com/phanxgames/navkit"
	"github.com/tanema/gween/ease"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// AgentEvent is a navkit.NavEvent tagged with the entity whose follower
// produced it.
type AgentEvent struct {
	Entity donburi.Entity
	navkit.NavEvent
}

// NavEventType is the Donburi event type for navigation progress. Events are
// queued; call ProcessEvents to deliver them to subscribers.
var NavEventType = events.NewEventType[AgentEvent]()

// NavAgentData is the state of a path-following entity.
type NavAgentData struct {
	Position navkit.Vec2
	Speed    float64 // world units per second
	Ease     ease.TweenFunc
	Follower *navkit.PathFollower // nil while idle
}

// NavAgent is the component type for path-following entities.
var NavAgent = donburi.NewComponentType[NavAgentData]()

var agentQuery = donburi.NewQuery(filter.Contains(NavAgent))

type donburiSink struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiSink returns an EventSink that publishes every event to
// NavEventType, tagged with entity.
func NewDonburiSink(world donburi.World, entity donburi.Entity) navkit.EventSink {
	return &donburiSink{world: world, entity: entity}
}

func (s *donburiSink) EmitNavEvent(event navkit.NavEvent) {
	NavEventType.Publish(s.world, AgentEvent{Entity: s.entity, NavEvent: event})
}

// Navigate plans a path from the agent's current position to `to` and starts
// following it. It reports false, leaving the agent idle, when no path
// exists.
func Navigate(world donburi.World, entry *donburi.Entry, nav *navkit.WorldNavMesh, to navkit.Vec2) bool {
	agent := NavAgent.Get(entry)
	path, ok := nav.ComputePath(agent.Position, to)
	if !ok {
		agent.Follower = nil
		return false
	}
	f := navkit.NewPathFollower(agent.Position, path, agent.Speed, agent.Ease)
	f.Sink = NewDonburiSink(world, entry.Entity())
	agent.Follower = f
	return true
}

// Stop drops the agent's current path.
func Stop(entry *donburi.Entry) {
	NavAgent.Get(entry).Follower = nil
}

// UpdateAgents advances every moving agent by dt seconds and releases the
// followers that have finished.
func UpdateAgents(world donburi.World, dt float32) {
	agentQuery.Each(world, func(entry *donburi.Entry) {
		agent := NavAgent.Get(entry)
		if agent.Follower == nil {
			return
		}
		agent.Follower.Update(dt)
		agent.Position = agent.Follower.Position
		if agent.Follower.Done {
			agent.Follower = nil
		}
	})
}
