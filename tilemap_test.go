package navkit

import (
	"errors"
	"testing"
)

func TestMeshFromTiles(t *testing.T) {
	solid := func(gid uint32) bool { return gid == 5 }
	data := []uint32{
		0, 5, 3,
		5 | tileFlipH, 5 | tileFlipV | tileFlipD, 0 | tileFlipH,
	}
	m, err := MeshFromTiles(data, 3, 2, Vec2{16, 16}, solid)
	if err != nil {
		t.Fatalf("MeshFromTiles: %v", err)
	}
	want := [][]bool{
		{false, true, false},
		{true, true, false},
	}
	for y, row := range want {
		for x, blocked := range row {
			if got := m.Occupied(x, y); got != blocked {
				t.Errorf("Occupied(%d, %d) = %v, want %v", x, y, got, blocked)
			}
		}
	}
	if m.VoxelSize() != (Vec2{16, 16}) {
		t.Errorf("VoxelSize = %v", m.VoxelSize())
	}
}

func TestMeshFromTilesEmptyIsOpen(t *testing.T) {
	calls := 0
	m, err := MeshFromTiles(make([]uint32, 4), 2, 2, Vec2{1, 1}, func(uint32) bool {
		calls++
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Errorf("solid called %d times for empty tiles", calls)
	}
	if m.Occupied(0, 0) {
		t.Error("empty tile reported occupied")
	}
}

func TestMeshFromTilesSizeMismatch(t *testing.T) {
	_, err := MeshFromTiles(make([]uint32, 3), 2, 2, Vec2{1, 1}, func(uint32) bool { return true })
	if !errors.Is(err, ErrMeshSize) {
		t.Errorf("err = %v, want ErrMeshSize", err)
	}
}
