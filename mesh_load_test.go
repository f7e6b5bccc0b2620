package navkit

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseMeshRows(t *testing.T) {
	m, err := ParseMesh([]byte(`
voxel: {width: 32, height: 16}
origin: {x: 10, y: 20}
rows:
  - "#####"
  - "#. 3#"
  - "#####"
`))
	if err != nil {
		t.Fatalf("ParseMesh: %v", err)
	}
	if m.Width() != 5 || m.Height() != 3 {
		t.Fatalf("size = %dx%d, want 5x3", m.Width(), m.Height())
	}
	if m.Position != (Vec2{10, 20}) {
		t.Errorf("Position = %v, want (10, 20)", m.Position)
	}
	if m.VoxelSize() != (Vec2{32, 16}) {
		t.Errorf("VoxelSize = %v, want (32, 16)", m.VoxelSize())
	}
	if m.Occupied(1, 1) || m.Occupied(2, 1) {
		t.Error("'.' and ' ' should be open")
	}
	if m.At(3, 1) != 3 {
		t.Errorf("At(3, 1) = %d, want 3", m.At(3, 1))
	}
	if m.At(0, 0) != 1 {
		t.Errorf("At(0, 0) = %d, want 1", m.At(0, 0))
	}
}

func TestParseMeshData(t *testing.T) {
	m, err := ParseMesh([]byte(`
voxel: {width: 1, height: 1}
width: 3
height: 2
data: [0, 1, 0,
       0, 0, 0]
`))
	if err != nil {
		t.Fatalf("ParseMesh: %v", err)
	}
	if !m.Occupied(1, 0) || m.Occupied(1, 1) {
		t.Error("data cells decoded incorrectly")
	}
}

func TestParseMeshErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		is   error
		msg  string
	}{
		{"ragged", "voxel: {width: 1, height: 1}\nrows: [\"...\", \"..\"]\n", ErrRaggedRows, "row 1"},
		{"bad voxel", "voxel: {width: 0, height: 1}\nrows: [\"...\"]\n", ErrVoxelSize, ""},
		{"missing voxel", "rows: [\"...\"]\n", ErrVoxelSize, ""},
		{"data size", "voxel: {width: 1, height: 1}\nwidth: 2\nheight: 2\ndata: [0]\n", ErrMeshSize, ""},
		{"no grid", "voxel: {width: 1, height: 1}\n", ErrMeshSize, ""},
		{"unknown cell", "voxel: {width: 1, height: 1}\nrows: [\"..x\"]\n", nil, "unknown mesh cell 'x'"},
		{"bad yaml", "voxel: [", nil, "unmarshal mesh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMesh([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("err = %v, want %v", err, tt.is)
			}
			if tt.msg != "" && !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("err = %q, want it to contain %q", err, tt.msg)
			}
		})
	}
}

func TestLoadMesh(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.yaml")
	src := "voxel: {width: 8, height: 8}\nrows:\n  - \"..#\"\n  - \"...\"\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadMesh(path)
	if err != nil {
		t.Fatalf("LoadMesh: %v", err)
	}
	if !m.Occupied(2, 0) || m.Width() != 3 {
		t.Errorf("loaded mesh mismatch: %dx%d", m.Width(), m.Height())
	}
}

func TestLoadMeshErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadMesh(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("voxel: {width: 1, height: 1}\nrows: [\"..\", \".\"]\n"), 0o644)
	_, err := LoadMesh(bad)
	if !errors.Is(err, ErrRaggedRows) {
		t.Errorf("err = %v, want ErrRaggedRows", err)
	}
	if err != nil && !strings.Contains(err.Error(), "bad.yaml") {
		t.Errorf("err = %q, want file name", err)
	}
}
