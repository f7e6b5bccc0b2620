// Package ecs provides a [Donburi] adapter for navkit path following.
//
// [NavAgent] is a component holding an agent's position, speed and active
// [navkit.PathFollower]. [Navigate] plans a path for an entity and
// [UpdateAgents] moves every agent each tick. Waypoint and arrival events
// are published to [NavEventType]; subscribe to it in your systems:
//
//	ecs.NavEventType.Subscribe(world, func(w donburi.World, e ecs.AgentEvent) {
//		if e.Type == navkit.NavEventArrived {
//			log.Printf("entity %v arrived", e.Entity)
//		}
//	})
//
//	// each tick
//	ecs.UpdateAgents(world, dt)
//	ecs.NavEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
