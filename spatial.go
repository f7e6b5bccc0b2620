package navkit

import (
	"slices"

	"github.com/jakecoffman/cp"
)

// SpatialIndex is a uniform-grid broad phase. It splits a fixed world
// rectangle into resolution x resolution cells and remembers, per cell, the
// ids of shapes overlapping it. It stores ids only; SpatialBuffer pairs it
// with storage for the objects themselves.
//
// Moving an object is done by bracketing the move:
//
//	idx.RemoveFromLookup(id, oldShape)
//	// query neighbours, resolve collisions, move
//	idx.ReturnToLookup(id, newShape)
//
// While removed, the object never shows up in its own candidate list.
type SpatialIndex struct {
	bounds     Rect
	resolution int
	toGridX    float64
	toGridY    float64
	cells      [][]int
}

// cellRange is an inclusive range of grid cells.
type cellRange struct {
	x1, y1, x2, y2 int
}

// NewSpatialIndex creates an index over bounds split into resolution cells
// per axis. Shapes outside bounds are clamped into the edge cells.
func NewSpatialIndex(bounds Rect, resolution int) *SpatialIndex {
	if resolution < 1 {
		resolution = 1
	}
	return &SpatialIndex{
		bounds:     bounds,
		resolution: resolution,
		toGridX:    float64(resolution) / bounds.Width,
		toGridY:    float64(resolution) / bounds.Height,
		cells:      make([][]int, resolution*resolution),
	}
}

// Bounds returns the rectangle covered by the grid.
func (s *SpatialIndex) Bounds() Rect { return s.bounds }

// Resolution returns the number of cells per axis.
func (s *SpatialIndex) Resolution() int { return s.resolution }

// ReturnToLookup registers id in every cell covered by shape. Call it after
// inserting a new id or after a matching RemoveFromLookup.
func (s *SpatialIndex) ReturnToLookup(id int, shape Shape) {
	s.eachCell(shape, func(cell int) {
		s.cells[cell] = append(s.cells[cell], id)
	})
}

// RemoveFromLookup unregisters id from every cell covered by shape. shape
// must be the one id was last registered with.
func (s *SpatialIndex) RemoveFromLookup(id int, shape Shape) {
	s.eachCell(shape, func(cell int) {
		list := s.cells[cell]
		if i := slices.Index(list, id); i >= 0 {
			last := len(list) - 1
			list[i] = list[last]
			s.cells[cell] = list[:last]
		}
	})
}

// OverlapCandidates returns the sorted, deduplicated ids registered in any
// cell covered by shape. A shape entirely outside the index bounds yields
// nil. Candidates still need a narrow-phase test such as Collides.
func (s *SpatialIndex) OverlapCandidates(shape Shape) []int {
	if !Collides(s.bounds, shape) {
		return nil
	}
	var out []int
	s.eachCell(shape, func(cell int) {
		out = append(out, s.cells[cell]...)
	})
	if len(out) == 0 {
		return nil
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Clear removes every id from every cell.
func (s *SpatialIndex) Clear() {
	for i := range s.cells {
		s.cells[i] = s.cells[i][:0]
	}
}

// CellCount returns the number of ids registered in cell (x, y). Used by
// debug drawing.
func (s *SpatialIndex) CellCount(x, y int) int {
	if x < 0 || y < 0 || x >= s.resolution || y >= s.resolution {
		return 0
	}
	return len(s.cells[y*s.resolution+x])
}

// CellRect returns the world rectangle of cell (x, y).
func (s *SpatialIndex) CellRect(x, y int) Rect {
	w := s.bounds.Width / float64(s.resolution)
	h := s.bounds.Height / float64(s.resolution)
	return Rect{X: s.bounds.X + float64(x)*w, Y: s.bounds.Y + float64(y)*h, Width: w, Height: h}
}

// gridCoord maps a world point to its clamped cell coordinate.
func (s *SpatialIndex) gridCoord(p Vec2) (int, int) {
	maxCell := float64(s.resolution - 1)
	x := cp.Clamp((p.X-s.bounds.X)*s.toGridX, 0, maxCell)
	y := cp.Clamp((p.Y-s.bounds.Y)*s.toGridY, 0, maxCell)
	return int(x), int(y)
}

func (s *SpatialIndex) cellsOf(shape Shape) cellRange {
	r := shape.Bounds()
	x1, y1 := s.gridCoord(r.Min())
	x2, y2 := s.gridCoord(r.Max())
	return cellRange{x1, y1, x2, y2}
}

func (s *SpatialIndex) eachCell(shape Shape, fn func(cell int)) {
	cr := s.cellsOf(shape)
	for y := cr.y1; y <= cr.y2; y++ {
		for x := cr.x1; x <= cr.x2; x++ {
			fn(y*s.resolution + x)
		}
	}
}
