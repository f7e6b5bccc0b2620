package navkit

import "fmt"

// GID flag bits (same convention as Tiled TMX format).
const (
	tileFlipH    uint32 = 1 << 31 // horizontal flip
	tileFlipV    uint32 = 1 << 30 // vertical flip
	tileFlipD    uint32 = 1 << 29 // diagonal flip (90° rotation)
	tileFlagMask uint32 = tileFlipH | tileFlipV | tileFlipD
)

// MeshFromTiles builds an occupancy mesh from a row-major layer of tile GIDs,
// as exported by Tiled. Flip flags are stripped before solid is consulted.
// GID 0 (no tile) is always passable.
func MeshFromTiles(data []uint32, width, height int, tileSize Vec2, solid func(gid uint32) bool) (*Mesh, error) {
	if len(data) != width*height {
		return nil, fmt.Errorf("%w: got %d tiles, want %d", ErrMeshSize, len(data), width*height)
	}
	cells := make([]int, len(data))
	for i, raw := range data {
		gid := raw &^ tileFlagMask
		if gid != 0 && solid(gid) {
			cells[i] = 1
		}
	}
	return NewMesh(cells, width, height, tileSize)
}
