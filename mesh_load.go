package navkit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MeshSpec is the YAML form of a Mesh. The grid comes either from Rows, one
// string per row where '#' and '1'-'9' are blocked and '.', ' ' and '0' are
// open, or from Width, Height and row-major Data.
//
//	voxel: {width: 32, height: 32}
//	origin: {x: 0, y: 0}
//	rows:
//	  - "#####"
//	  - "#...#"
//	  - "#####"
type MeshSpec struct {
	Voxel  SizeSpec  `yaml:"voxel"`
	Origin PointSpec `yaml:"origin"`
	Rows   []string  `yaml:"rows"`
	Width  int       `yaml:"width"`
	Height int       `yaml:"height"`
	Data   []int     `yaml:"data"`
}

// SizeSpec is a width/height pair in YAML.
type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PointSpec is an x/y pair in YAML.
type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LoadMesh reads and parses a YAML mesh file.
func LoadMesh(filename string) (*Mesh, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("navkit: load %s: %w", filename, err)
	}
	m, err := ParseMesh(data)
	if err != nil {
		return nil, fmt.Errorf("navkit: parse %s: %w", filename, err)
	}
	return m, nil
}

// ParseMesh builds a Mesh from YAML bytes.
func ParseMesh(data []byte) (*Mesh, error) {
	var spec MeshSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal mesh: %w", err)
	}
	return spec.Build()
}

// Build converts the spec into a Mesh.
func (s MeshSpec) Build() (*Mesh, error) {
	voxel := Vec2{s.Voxel.Width, s.Voxel.Height}
	var (
		m   *Mesh
		err error
	)
	if len(s.Rows) > 0 {
		m, err = meshFromRows(s.Rows, voxel)
	} else {
		m, err = NewMesh(s.Data, s.Width, s.Height, voxel)
	}
	if err != nil {
		return nil, err
	}
	m.Position = Vec2{s.Origin.X, s.Origin.Y}
	return m, nil
}

func meshFromRows(rows []string, voxel Vec2) (*Mesh, error) {
	width := len(rows[0])
	data := make([]int, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, len(row), width)
		}
		for x := 0; x < len(row); x++ {
			v, err := cellValue(row[x])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			data = append(data, v)
		}
	}
	return NewMesh(data, width, len(rows), voxel)
}

func cellValue(c byte) (int, error) {
	switch {
	case c == '.' || c == ' ':
		return 0, nil
	case c == '#':
		return 1, nil
	case c >= '0' && c <= '9':
		return int(c - '0'), nil
	}
	return 0, fmt.Errorf("unknown mesh cell %q", c)
}
