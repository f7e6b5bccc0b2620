package navkit

import (
	"container/heap"
	"fmt"
	"math"
	"os"
	"slices"
	"time"
)

// Connection is a directed edge of the jump point graph.
type Connection struct {
	To       Tile
	Distance float64 // world units
}

// WorldNavMesh answers world-space path queries over a sparse visibility
// graph of jump points: passable tiles sitting at concave corners of the
// occupancy grid. The graph is built once by NewWorldNavMesh. Every query
// temporarily splices its endpoints into the graph and removes them again
// before returning.
//
// A WorldNavMesh is not safe for concurrent use; queries mutate the graph
// for their duration.
type WorldNavMesh struct {
	mesh        *Mesh
	connections map[Tile][]Connection
	buildTime   time.Duration
	debug       bool
}

// NewWorldNavMesh builds the jump point graph for a private copy of mesh.
func NewWorldNavMesh(mesh *Mesh) *WorldNavMesh {
	start := time.Now()
	n := &WorldNavMesh{
		mesh:        mesh.Clone(),
		connections: make(map[Tile][]Connection),
	}
	n.discoverJumpPoints()
	for _, jp := range n.JumpPoints() {
		n.discoverConnections(jp)
	}
	n.buildTime = time.Since(start)
	return n
}

// SetDebug enables per-query timing output on stderr. Enabling it also
// prints a one-line summary of the graph.
func (n *WorldNavMesh) SetDebug(enabled bool) {
	n.debug = enabled
	n.debugf("graph: %d jump points, %d edges, built in %v",
		len(n.connections), n.edgeCount(), n.buildTime)
}

// Mesh returns the navmesh's private copy of the occupancy grid. Treat it as
// read-only.
func (n *WorldNavMesh) Mesh() *Mesh { return n.mesh }

// TileAt returns the tile containing world point p.
func (n *WorldNavMesh) TileAt(p Vec2) Tile { return n.mesh.TileAt(p) }

// JumpPoints returns all nodes currently in the graph, sorted by row then
// column.
func (n *WorldNavMesh) JumpPoints() []Tile {
	out := make([]Tile, 0, len(n.connections))
	for t := range n.connections {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b Tile) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// IsJumpPoint reports whether t is a node of the graph.
func (n *WorldNavMesh) IsJumpPoint(t Tile) bool {
	_, ok := n.connections[t]
	return ok
}

// Connections returns a copy of the outgoing edges of t.
func (n *WorldNavMesh) Connections(t Tile) []Connection {
	return slices.Clone(n.connections[t])
}

// IsConnected reports whether the graph has an edge from a to b.
func (n *WorldNavMesh) IsConnected(a, b Tile) bool {
	return slices.ContainsFunc(n.connections[a], func(c Connection) bool { return c.To == b })
}

// isCorner reports whether the passable tile t has a blocked diagonal
// neighbour whose two adjacent orthogonal neighbours are both open.
func (n *WorldNavMesh) isCorner(t Tile) bool {
	m := n.mesh
	for _, dx := range [2]int{-1, 1} {
		for _, dy := range [2]int{-1, 1} {
			if m.Occupied(t.X+dx, t.Y+dy) &&
				!m.Occupied(t.X+dx, t.Y) &&
				!m.Occupied(t.X, t.Y+dy) {
				return true
			}
		}
	}
	return false
}

// discoverJumpPoints registers every corner tile of the mesh interior. The
// outermost ring is never a jump point.
func (n *WorldNavMesh) discoverJumpPoints() {
	m := n.mesh
	for y := 1; y < m.height-1; y++ {
		for x := 1; x < m.width-1; x++ {
			t := Tile{x, y}
			if !m.occupiedTile(t) && n.isCorner(t) {
				n.connections[t] = nil
			}
		}
	}
}

// discoverConnections links jp to the nearest jump points in each of the four
// diagonal quadrants. A cursor walks diagonally away from jp while the
// diagonal step is not cutting a corner, and at every step scans
// horizontally and vertically. The first jump point met on an axis caps how
// far that axis is scanned from later cursor positions, so a farther point
// hidden behind the same obstacle is not linked past the nearer one.
func (n *WorldNavMesh) discoverConnections(jp Tile) {
	const unlimited = math.MaxInt
	m := n.mesh
	for _, dx := range [2]int{-1, 1} {
		for _, dy := range [2]int{-1, 1} {
			limits := [2]int{unlimited, unlimited}
			axes := [2]Tile{{dx, 0}, {0, dy}}
			for p, step := jp, 0; ; step++ {
				if step > 0 {
					next := p.Add(dx, dy)
					if m.occupiedTile(next) || m.Occupied(p.X+dx, p.Y) || m.Occupied(p.X, p.Y+dy) {
						break
					}
					p = next
					if n.IsJumpPoint(p) {
						n.link(jp, p)
						break
					}
				}
				for a, axis := range axes {
					for k := 1; k <= limits[a]; k++ {
						q := p.Add(axis.X*k, axis.Y*k)
						if m.occupiedTile(q) {
							break
						}
						if n.IsJumpPoint(q) {
							n.link(jp, q)
							if limits[a] == unlimited {
								limits[a] = k
							}
							break
						}
					}
				}
			}
		}
	}
}

// link adds the symmetric edge a <-> b if the two tiles see each other.
func (n *WorldNavMesh) link(a, b Tile) {
	if a == b || !lineOfSight(n.mesh, a, b) {
		return
	}
	d := n.distance(a, b)
	if !n.IsConnected(a, b) {
		n.connections[a] = append(n.connections[a], Connection{To: b, Distance: d})
	}
	if !n.IsConnected(b, a) {
		n.connections[b] = append(n.connections[b], Connection{To: a, Distance: d})
	}
}

// distance returns the world-space distance between two tile centers.
func (n *WorldNavMesh) distance(a, b Tile) float64 {
	v := n.mesh.voxelSize
	return math.Hypot(float64(a.X-b.X)*v.X, float64(a.Y-b.Y)*v.Y)
}

// ComputePath finds a path between two world points. The returned path holds
// the centers of the intermediate jump points followed by `to` itself.
//
// ok is false when either point lies in a blocked or out-of-range tile or
// when `to` is unreachable; the path is then empty and already traversed.
// When from == to the path is empty and ok is true.
func (n *WorldNavMesh) ComputePath(from, to Vec2) (path *Path[WorldNavpoint], ok bool) {
	start := time.Now()
	src, dst := n.mesh.TileAt(from), n.mesh.TileAt(to)
	if n.mesh.occupiedTile(src) || n.mesh.occupiedTile(dst) {
		return NewPath[WorldNavpoint](nil, false), false
	}
	if from == to {
		return NewPath[WorldNavpoint](nil, false), true
	}
	if src == dst {
		return NewPath([]WorldNavpoint{{Coord: to}}, false), true
	}

	s := n.spliceEndpoints(src, dst)
	defer s.rollback()

	tiles, found := n.search(src, dst)
	n.debugf("query %v -> %v: found=%t nodes=%d in %v", src, dst, found, len(tiles), time.Since(start))
	if !found {
		return NewPath[WorldNavpoint](nil, false), false
	}
	points := make([]WorldNavpoint, 0, len(tiles))
	for _, t := range tiles[:len(tiles)-1] {
		points = append(points, WorldNavpoint{Coord: n.mesh.TileCenter(t)})
	}
	points = append(points, WorldNavpoint{Coord: to})
	return NewPath(points, false), true
}

// splice records the graph changes made for one query so they can be
// reverted exactly.
type splice struct {
	nav         *WorldNavMesh
	nodes       []Tile // nodes added to the graph
	edgeSources []Tile // nodes that received an edge to target
	target      Tile
}

// spliceEndpoints inserts src and dst into the graph unless they already are jump
// points. A spliced src gets edges to every jump point it can see; every
// node that can see a spliced dst gets an edge to it.
func (n *WorldNavMesh) spliceEndpoints(src, dst Tile) *splice {
	s := &splice{nav: n, target: dst}
	existing := n.JumpPoints()

	srcAdded := !n.IsJumpPoint(src)
	if srcAdded {
		var edges []Connection
		for _, jp := range existing {
			if lineOfSight(n.mesh, src, jp) {
				edges = append(edges, Connection{To: jp, Distance: n.distance(src, jp)})
			}
		}
		n.connections[src] = edges
		s.nodes = append(s.nodes, src)
	}

	if !n.IsJumpPoint(dst) {
		n.connections[dst] = nil
		s.nodes = append(s.nodes, dst)
		for _, jp := range existing {
			if lineOfSight(n.mesh, jp, dst) {
				n.connections[jp] = append(n.connections[jp], Connection{To: dst, Distance: n.distance(jp, dst)})
				s.edgeSources = append(s.edgeSources, jp)
			}
		}
		if srcAdded && lineOfSight(n.mesh, src, dst) {
			n.connections[src] = append(n.connections[src], Connection{To: dst, Distance: n.distance(src, dst)})
		}
	}
	return s
}

// rollback removes everything the splice added.
func (s *splice) rollback() {
	conns := s.nav.connections
	for _, from := range s.edgeSources {
		conns[from] = slices.DeleteFunc(conns[from], func(c Connection) bool { return c.To == s.target })
	}
	for _, t := range s.nodes {
		delete(conns, t)
	}
}

// search runs A* over the graph from src to dst and returns the visited
// nodes after src, ending with dst.
func (n *WorldNavMesh) search(src, dst Tile) ([]Tile, bool) {
	gScore := map[Tile]float64{src: 0}
	cameFrom := make(map[Tile]Tile)
	closed := make(map[Tile]bool)

	open := &openSet[Tile]{}
	seq := 0
	h0 := n.distance(src, dst)
	heap.Push(open, openItem[Tile]{key: src, f: h0, h: h0})

	for open.Len() > 0 {
		cur := heap.Pop(open).(openItem[Tile])
		if closed[cur.key] {
			continue
		}
		closed[cur.key] = true
		if cur.key == dst {
			var out []Tile
			for t := dst; t != src; t = cameFrom[t] {
				out = append(out, t)
			}
			slices.Reverse(out)
			return out, true
		}
		for _, c := range n.connections[cur.key] {
			g := cur.g + c.Distance
			if old, seen := gScore[c.To]; seen && g >= old {
				continue
			}
			gScore[c.To] = g
			cameFrom[c.To] = cur.key
			h := n.distance(c.To, dst)
			seq++
			heap.Push(open, openItem[Tile]{key: c.To, f: g + h, h: h, g: g, seq: seq})
		}
	}
	return nil, false
}

func (n *WorldNavMesh) edgeCount() int {
	total := 0
	for _, c := range n.connections {
		total += len(c)
	}
	return total
}

func (n *WorldNavMesh) debugf(format string, args ...any) {
	if !n.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[navkit] "+format+"\n", args...)
}
