package navkit

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// Debug overlay colors.
var (
	DebugBlockedColor    color.Color = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	DebugJumpPointColor  color.Color = colornames.Orange
	DebugConnectionColor color.Color = color.RGBA{R: 255, G: 165, B: 0, A: 90}
	DebugPathColor       color.Color = colornames.Lime
	DebugGridColor       color.Color = color.RGBA{R: 255, G: 255, B: 255, A: 40}
	DebugCellFillColor   color.Color = color.RGBA{R: 0, G: 160, B: 255, A: 48}
)

// DrawMesh fills every blocked tile of m. cam is the world position drawn at
// the screen's top-left corner.
func DrawMesh(dst *ebiten.Image, m *Mesh, cam Vec2) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if !m.Occupied(x, y) {
				continue
			}
			r := m.TileRect(Tile{x, y})
			vector.FillRect(dst, float32(r.X-cam.X), float32(r.Y-cam.Y),
				float32(r.Width), float32(r.Height), DebugBlockedColor, false)
		}
	}
}

// DrawNavGraph draws every jump point of n and its connections.
func DrawNavGraph(dst *ebiten.Image, n *WorldNavMesh, cam Vec2) {
	m := n.mesh
	radius := float32(min(m.voxelSize.X, m.voxelSize.Y) / 6)
	for _, jp := range n.JumpPoints() {
		a := m.TileCenter(jp).Sub(cam)
		for _, c := range n.connections[jp] {
			b := m.TileCenter(c.To).Sub(cam)
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
				1, DebugConnectionColor, true)
		}
		vector.FillCircle(dst, float32(a.X), float32(a.Y), radius, DebugJumpPointColor, true)
	}
}

// DrawPath draws the unvisited part of p as a polyline starting at from.
func DrawPath(dst *ebiten.Image, from Vec2, p *Path[WorldNavpoint], cam Vec2) {
	prev := from.Sub(cam)
	for _, np := range p.Remaining() {
		cur := np.Coord.Sub(cam)
		vector.StrokeLine(dst, float32(prev.X), float32(prev.Y), float32(cur.X), float32(cur.Y),
			2, DebugPathColor, true)
		vector.StrokeCircle(dst, float32(cur.X), float32(cur.Y), 3, 1, DebugPathColor, true)
		prev = cur
	}
}

// DrawTilePath outlines each tile of p on mesh m.
func DrawTilePath(dst *ebiten.Image, m *Mesh, p *Path[TileNavpoint], cam Vec2) {
	for _, np := range p.Remaining() {
		r := m.TileRect(np.Coord)
		vector.StrokeRect(dst, float32(r.X-cam.X+2), float32(r.Y-cam.Y+2),
			float32(r.Width-4), float32(r.Height-4), 2, DebugPathColor, false)
	}
}

// DrawSpatialGrid draws the cell lines of s and shades the cells holding at
// least one id.
func DrawSpatialGrid(dst *ebiten.Image, s *SpatialIndex, cam Vec2) {
	for y := 0; y < s.resolution; y++ {
		for x := 0; x < s.resolution; x++ {
			r := s.CellRect(x, y)
			rx, ry := float32(r.X-cam.X), float32(r.Y-cam.Y)
			if s.CellCount(x, y) > 0 {
				vector.FillRect(dst, rx, ry, float32(r.Width), float32(r.Height), DebugCellFillColor, false)
			}
			vector.StrokeRect(dst, rx, ry, float32(r.Width), float32(r.Height), 1, DebugGridColor, false)
		}
	}
}
