package navkit

import (
	"container/heap"
	"math"
)

// tileDirs is the neighbour expansion order: up, left, down, right.
var tileDirs = [4]Tile{{0, -1}, {-1, 0}, {0, 1}, {1, 0}}

// TileNavMesh finds 4-connected paths between tiles of a Mesh. It holds no
// precomputed state, so it is cheap to build and always reflects the
// current contents of its mesh.
type TileNavMesh struct {
	mesh *Mesh
}

// NewTileNavMesh returns a tile pathfinder over mesh.
func NewTileNavMesh(mesh *Mesh) *TileNavMesh {
	return &TileNavMesh{mesh: mesh}
}

// Mesh returns the mesh this pathfinder searches.
func (n *TileNavMesh) Mesh() *Mesh { return n.mesh }

// ComputePath returns the shortest 4-connected path from `from` to `to`. The
// path excludes `from` and ends with `to`. When from == to the path is empty
// and already traversed.
//
// ok is false when either endpoint is blocked or out of range, or when no
// path exists. The path is then empty and already traversed.
func (n *TileNavMesh) ComputePath(from, to Tile) (path *Path[TileNavpoint], ok bool) {
	m := n.mesh
	if m.occupiedTile(from) || m.occupiedTile(to) {
		return NewPath[TileNavpoint](nil, false), false
	}
	if from == to {
		return NewPath[TileNavpoint](nil, false), true
	}

	w := m.width
	size := w * m.height
	index := func(t Tile) int { return t.Y*w + t.X }

	// cameFrom holds the tileDirs index used to enter each tile, -1 if unvisited.
	cameFrom := make([]int8, size)
	for i := range cameFrom {
		cameFrom[i] = -1
	}
	gScore := make([]float64, size)
	for i := range gScore {
		gScore[i] = math.Inf(1)
	}

	open := &openSet[Tile]{}
	seq := 0
	h0 := manhattan(from, to)
	gScore[index(from)] = 0
	heap.Push(open, openItem[Tile]{key: from, f: h0, h: h0})

	for open.Len() > 0 {
		cur := heap.Pop(open).(openItem[Tile])
		if cur.g > gScore[index(cur.key)] {
			continue
		}
		if cur.key == to {
			return NewPath(tileTrace(cameFrom, w, from, to), false), true
		}
		for d, dir := range tileDirs {
			next := cur.key.Add(dir.X, dir.Y)
			if m.occupiedTile(next) {
				continue
			}
			g := cur.g + 1
			idx := index(next)
			if g >= gScore[idx] {
				continue
			}
			gScore[idx] = g
			cameFrom[idx] = int8(d)
			h := manhattan(next, to)
			seq++
			heap.Push(open, openItem[Tile]{key: next, f: g + h, h: h, g: g, seq: seq})
		}
	}
	return NewPath[TileNavpoint](nil, false), false
}

// tileTrace walks the recorded entry directions back from `to` and returns
// the path in forward order without `from`.
func tileTrace(cameFrom []int8, w int, from, to Tile) []TileNavpoint {
	var out []TileNavpoint
	for t := to; t != from; {
		out = append(out, TileNavpoint{Coord: t})
		dir := tileDirs[cameFrom[t.Y*w+t.X]]
		t = t.Add(-dir.X, -dir.Y)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func manhattan(a, b Tile) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}
