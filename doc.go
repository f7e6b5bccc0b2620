// Package navkit provides 2D navigation and broad-phase spatial lookup for
// [Ebitengine] games.
//
// # Occupancy
//
// Everything starts from a [Mesh]: a grid of integer cells where values
// greater than zero are blocked. Build one in code with [NewMesh], from a
// YAML level file with [LoadMesh], or from a Tiled-style tile layer with
// [MeshFromTiles]:
//
//	mesh, err := navkit.LoadMesh("levels/cave.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// [WatchMesh] reloads the file whenever it changes so navmeshes can be
// rebuilt while the game runs.
//
// # Pathfinding
//
// [TileNavMesh] runs a 4-connected A* over tiles and returns one navpoint
// per step. [WorldNavMesh] precomputes a visibility graph over the concave
// corners of the grid (jump points) and returns short world-space paths that
// only turn at corners:
//
//	nav := navkit.NewWorldNavMesh(mesh)
//	path, ok := nav.ComputePath(from, to)
//	if !ok {
//		// clicked on a wall, or unreachable
//	}
//
// Both return a [Path], consumed with [Path.CurrentPoint] and [Path.Advance]
// until [Path.IsTraversed]. [PathFollower] does that for you, moving a point
// along the path at constant speed with [gween] easing and reporting
// [NavEvent]s to an [EventSink].
//
// # Spatial lookup
//
// [SpatialBuffer] stores items under stable ids and indexes their bounding
// shapes ([Vec2], [Rect], [Circle]) in a uniform grid. Per tick, take an item
// out of the lookup, query its neighbours, move it and put it back:
//
//	for id, p := range particles.All() {
//		particles.RemoveFromLookup(id, p.Body)
//		for _, other := range particles.OverlapCandidates(p.Body) {
//			if navkit.Collides(p.Body, particles.At(other).Body) {
//				// resolve
//			}
//		}
//		p.Body.X += p.VX
//		particles.ReturnToLookup(id, p.Body)
//	}
//
// # Debugging
//
// [DrawMesh], [DrawNavGraph], [DrawPath], [DrawTilePath] and
// [DrawSpatialGrid] render overlays onto an *ebiten.Image.
// [WorldNavMesh.SetDebug] prints graph and query timings to stderr.
//
// # ECS integration
//
// The navkit/ecs package provides a [Donburi] component for path-following
// agents and publishes navigation events into the world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package navkit
