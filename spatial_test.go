package navkit

import (
	"slices"
	"testing"
)

func TestSpatialIndexQuery(t *testing.T) {
	idx := NewSpatialIndex(Rect{Width: 100, Height: 100}, 10)
	idx.ReturnToLookup(0, Rect{X: 5, Y: 5, Width: 2, Height: 2})
	idx.ReturnToLookup(1, Rect{X: 50, Y: 50, Width: 30, Height: 30})
	idx.ReturnToLookup(2, Circle{X: 95, Y: 5, Radius: 3})

	tests := []struct {
		name  string
		shape Shape
		want  []int
	}{
		{"near first", Vec2{6, 6}, []int{0}},
		{"inside large", Rect{X: 60, Y: 60, Width: 1, Height: 1}, []int{1}},
		{"corner", Circle{X: 97, Y: 2, Radius: 1}, []int{2}},
		{"empty region", Vec2{30, 80}, nil},
		{"whole world", Rect{Width: 100, Height: 100}, []int{0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.OverlapCandidates(tt.shape); !slices.Equal(got, tt.want) {
				t.Errorf("OverlapCandidates = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpatialIndexDeduplicates(t *testing.T) {
	idx := NewSpatialIndex(Rect{Width: 100, Height: 100}, 10)
	// Spans many cells.
	idx.ReturnToLookup(3, Rect{X: 0, Y: 0, Width: 55, Height: 55})
	got := idx.OverlapCandidates(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	if !slices.Equal(got, []int{3}) {
		t.Errorf("OverlapCandidates = %v, want [3]", got)
	}
}

func TestSpatialIndexRemoveReturn(t *testing.T) {
	idx := NewSpatialIndex(Rect{Width: 64, Height: 64}, 4)
	shape := Circle{X: 20, Y: 20, Radius: 10}
	idx.ReturnToLookup(0, shape)
	idx.ReturnToLookup(1, shape)

	idx.RemoveFromLookup(0, shape)
	if got := idx.OverlapCandidates(shape); !slices.Equal(got, []int{1}) {
		t.Errorf("after remove = %v, want [1]", got)
	}

	moved := Circle{X: 50, Y: 50, Radius: 4}
	idx.ReturnToLookup(0, moved)
	if got := idx.OverlapCandidates(shape); !slices.Equal(got, []int{1}) {
		t.Errorf("old position = %v, want [1]", got)
	}
	if got := idx.OverlapCandidates(moved); !slices.Equal(got, []int{0}) {
		t.Errorf("new position = %v, want [0]", got)
	}

	// Removing an id that is not registered is harmless.
	idx.RemoveFromLookup(7, shape)
	if got := idx.OverlapCandidates(shape); !slices.Equal(got, []int{1}) {
		t.Errorf("after stray remove = %v, want [1]", got)
	}
}

func TestSpatialIndexOutOfBounds(t *testing.T) {
	idx := NewSpatialIndex(Rect{X: 100, Y: 100, Width: 100, Height: 100}, 4)
	// Registered partly outside: clamped into the edge cell.
	idx.ReturnToLookup(0, Rect{X: 90, Y: 90, Width: 15, Height: 15})
	if got := idx.OverlapCandidates(Vec2{101, 101}); !slices.Equal(got, []int{0}) {
		t.Errorf("edge query = %v, want [0]", got)
	}
	if got := idx.OverlapCandidates(Rect{X: 0, Y: 0, Width: 50, Height: 50}); got != nil {
		t.Errorf("query outside bounds = %v, want nil", got)
	}
	if got := idx.OverlapCandidates(Vec2{500, 150}); got != nil {
		t.Errorf("point outside bounds = %v, want nil", got)
	}
}

func TestSpatialIndexClear(t *testing.T) {
	idx := NewSpatialIndex(Rect{Width: 10, Height: 10}, 2)
	idx.ReturnToLookup(0, Rect{Width: 10, Height: 10})
	if idx.CellCount(1, 1) != 1 {
		t.Fatalf("CellCount(1, 1) = %d, want 1", idx.CellCount(1, 1))
	}
	idx.Clear()
	if got := idx.OverlapCandidates(Rect{Width: 10, Height: 10}); got != nil {
		t.Errorf("after Clear = %v, want nil", got)
	}
}

func TestSpatialIndexCellRect(t *testing.T) {
	idx := NewSpatialIndex(Rect{X: 10, Y: 20, Width: 100, Height: 50}, 5)
	if got, want := idx.CellRect(2, 3), (Rect{X: 50, Y: 50, Width: 20, Height: 10}); got != want {
		t.Errorf("CellRect(2, 3) = %v, want %v", got, want)
	}
	if idx.CellCount(-1, 0) != 0 || idx.CellCount(0, 5) != 0 {
		t.Error("CellCount out of range should be 0")
	}
}

func TestSpatialIndexMinResolution(t *testing.T) {
	idx := NewSpatialIndex(Rect{Width: 10, Height: 10}, 0)
	if idx.Resolution() != 1 {
		t.Errorf("Resolution() = %d, want 1", idx.Resolution())
	}
	idx.ReturnToLookup(4, Vec2{9, 9})
	if got := idx.OverlapCandidates(Vec2{1, 1}); !slices.Equal(got, []int{4}) {
		t.Errorf("single cell = %v, want [4]", got)
	}
}

type crate struct {
	Box  Rect
	Name string
}

func TestSpatialBuffer(t *testing.T) {
	buf := NewSpatialBuffer[crate](Rect{Width: 256, Height: 256}, 8)
	a := buf.Insert(crate{Box: Rect{X: 10, Y: 10, Width: 8, Height: 8}, Name: "a"}, Rect{X: 10, Y: 10, Width: 8, Height: 8})
	b := buf.Insert(crate{Box: Rect{X: 14, Y: 14, Width: 8, Height: 8}, Name: "b"}, Rect{X: 14, Y: 14, Width: 8, Height: 8})
	buf.Insert(crate{Box: Rect{X: 200, Y: 200, Width: 8, Height: 8}, Name: "c"}, Rect{X: 200, Y: 200, Width: 8, Height: 8})

	if buf.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", buf.Len())
	}

	// Self-exclusion via remove/return bracket.
	box := buf.At(a).Box
	buf.RemoveFromLookup(a, box)
	var hits []string
	for _, id := range buf.OverlapCandidates(box) {
		if Collides(box, buf.At(id).Box) {
			hits = append(hits, buf.At(id).Name)
		}
	}
	buf.ReturnToLookup(a, box)
	if !slices.Equal(hits, []string{"b"}) {
		t.Errorf("hits = %v, want [b]", hits)
	}

	buf.Erase(b, buf.At(b).Box)
	if buf.IsIndexValid(b) {
		t.Error("erased id still valid")
	}
	if got := buf.OverlapCandidates(box); !slices.Equal(got, []int{a}) {
		t.Errorf("after erase = %v, want [%d]", got, a)
	}

	var names []string
	for _, it := range buf.All() {
		names = append(names, it.Name)
	}
	if !slices.Equal(names, []string{"a", "c"}) {
		t.Errorf("All() names = %v, want [a c]", names)
	}
	if buf.Index().Resolution() != 8 {
		t.Errorf("Index().Resolution() = %d, want 8", buf.Index().Resolution())
	}
}
