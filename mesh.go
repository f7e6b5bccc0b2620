package navkit

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by mesh constructors and loaders.
var (
	ErrMeshSize   = errors.New("navkit: mesh data does not match dimensions")
	ErrVoxelSize  = errors.New("navkit: voxel size must be positive")
	ErrRaggedRows = errors.New("navkit: mesh rows have different lengths")
)

// Mesh is a 2D occupancy grid. A cell with a value greater than zero is
// blocked; zero (or negative) is passable. Each cell covers VoxelSize world
// units and the grid's top-left corner sits at Position in world space.
//
// Navigation meshes take a private copy of the Mesh they are built from, so
// mutating a Mesh afterwards never affects a constructed navmesh. Rebuild the
// navmesh to pick up changes.
type Mesh struct {
	data      []int
	width     int
	height    int
	voxelSize Vec2

	// Position is the world-space offset of tile (0, 0)'s top-left corner.
	Position Vec2
}

// NewMesh creates a mesh of width x height cells from row-major data. A nil
// data slice yields an all-passable mesh. The slice is copied.
func NewMesh(data []int, width, height int, voxelSize Vec2) (*Mesh, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrMeshSize, width, height)
	}
	if voxelSize.X <= 0 || voxelSize.Y <= 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrVoxelSize, voxelSize.X, voxelSize.Y)
	}
	m := &Mesh{
		data:      make([]int, width*height),
		width:     width,
		height:    height,
		voxelSize: voxelSize,
	}
	if data != nil {
		if len(data) != width*height {
			return nil, fmt.Errorf("%w: got %d cells, want %d", ErrMeshSize, len(data), width*height)
		}
		copy(m.data, data)
	}
	return m, nil
}

// Width returns the mesh width in tiles.
func (m *Mesh) Width() int { return m.width }

// Height returns the mesh height in tiles.
func (m *Mesh) Height() int { return m.height }

// VoxelSize returns the world size of one tile.
func (m *Mesh) VoxelSize() Vec2 { return m.voxelSize }

// InBounds reports whether (x, y) addresses a cell of the mesh.
func (m *Mesh) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// At returns the raw cell value at (x, y). It panics if (x, y) is out of range.
func (m *Mesh) At(x, y int) int {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("navkit: mesh index (%d, %d) out of range %dx%d", x, y, m.width, m.height))
	}
	return m.data[y*m.width+x]
}

// Set stores v at (x, y). It panics if (x, y) is out of range.
func (m *Mesh) Set(x, y, v int) {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("navkit: mesh index (%d, %d) out of range %dx%d", x, y, m.width, m.height))
	}
	m.data[y*m.width+x] = v
}

// Occupied reports whether the tile at (x, y) is blocked. Tiles outside the
// mesh count as blocked.
func (m *Mesh) Occupied(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.data[y*m.width+x] > 0
}

// occupiedTile is Occupied for a Tile.
func (m *Mesh) occupiedTile(t Tile) bool { return m.Occupied(t.X, t.Y) }

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c := *m
	c.data = make([]int, len(m.data))
	copy(c.data, m.data)
	return &c
}

// TileAt returns the tile containing the world point p. Points left of or
// above Position map to negative tiles.
func (m *Mesh) TileAt(p Vec2) Tile {
	return Tile{
		X: int(math.Floor((p.X - m.Position.X) / m.voxelSize.X)),
		Y: int(math.Floor((p.Y - m.Position.Y) / m.voxelSize.Y)),
	}
}

// TileCenter returns the world position of the center of tile t.
func (m *Mesh) TileCenter(t Tile) Vec2 {
	return Vec2{
		X: m.Position.X + (float64(t.X)+0.5)*m.voxelSize.X,
		Y: m.Position.Y + (float64(t.Y)+0.5)*m.voxelSize.Y,
	}
}

// TileRect returns the world rectangle covered by tile t.
func (m *Mesh) TileRect(t Tile) Rect {
	return Rect{
		X:      m.Position.X + float64(t.X)*m.voxelSize.X,
		Y:      m.Position.Y + float64(t.Y)*m.voxelSize.Y,
		Width:  m.voxelSize.X,
		Height: m.voxelSize.Y,
	}
}

// Bounds returns the world rectangle covered by the whole mesh.
func (m *Mesh) Bounds() Rect {
	return Rect{
		X:      m.Position.X,
		Y:      m.Position.Y,
		Width:  float64(m.width) * m.voxelSize.X,
		Height: float64(m.height) * m.voxelSize.Y,
	}
}
