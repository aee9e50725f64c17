// Package geometry holds CPU-side mesh data and the builders for static scene geometry.
package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MeshData holds vertex streams and triangle indices ready for GPU upload.
// Normals, UVs and Colors are optional; when present they match Positions in length.
type MeshData struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Colors    []mgl32.Vec3
	Indices   []uint32
}

// ParsedMesh is one sub-mesh as produced by a model-file loader.
type ParsedMesh struct {
	Name      string
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *MeshData) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of indexed triangles.
func (m *MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks stream lengths and index bounds.
func (m *MeshData) Validate() error {
	n := len(m.Positions)
	if n == 0 {
		return fmt.Errorf("mesh has no vertices")
	}
	if len(m.Normals) != 0 && len(m.Normals) != n {
		return fmt.Errorf("normal count %d does not match vertex count %d", len(m.Normals), n)
	}
	if len(m.UVs) != 0 && len(m.UVs) != n {
		return fmt.Errorf("uv count %d does not match vertex count %d", len(m.UVs), n)
	}
	if len(m.Colors) != 0 && len(m.Colors) != n {
		return fmt.Errorf("color count %d does not match vertex count %d", len(m.Colors), n)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("index %d at position %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the positions.
func (m *MeshData) Bounds() (min, max mgl32.Vec3) {
	if len(m.Positions) == 0 {
		return
	}
	min, max = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return min, max
}

// FromParsed wraps a loader sub-mesh 1:1 into MeshData. No topology work is done.
func FromParsed(p ParsedMesh) (*MeshData, error) {
	m := &MeshData{
		Positions: p.Positions,
		Normals:   p.Normals,
		UVs:       p.UVs,
		Indices:   p.Indices,
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("mesh %q: %w", p.Name, err)
	}
	return m, nil
}
