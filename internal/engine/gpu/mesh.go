// Package gpu uploads CPU-side meshes and images into OpenGL objects.
package gpu

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/terrain-scene/internal/engine/geometry"
)

// Vertex attribute locations shared by every shader.
const (
	AttribPosition = 0
	AttribExtra    = 1 // colour when the mesh has colours, otherwise normal
	AttribUV       = 2
)

// FloatsPerVertex is the interleaved stride in floats: position(3) extra(3) uv(2).
const FloatsPerVertex = 8

// Mesh holds the GL objects for one uploaded mesh.
type Mesh struct {
	VAO   uint32
	VBO   uint32
	EBO   uint32
	Count int32 // index count for DrawElements
}

// Interleave packs a mesh into the single vertex stream UploadMesh expects.
// Missing optional streams are written as zeros.
func Interleave(m *geometry.MeshData) []float32 {
	extra := m.Colors
	if len(extra) == 0 {
		extra = m.Normals
	}

	out := make([]float32, 0, len(m.Positions)*FloatsPerVertex)
	for i, p := range m.Positions {
		out = append(out, p[0], p[1], p[2])
		if i < len(extra) {
			out = append(out, extra[i][0], extra[i][1], extra[i][2])
		} else {
			out = append(out, 0, 0, 0)
		}
		if i < len(m.UVs) {
			out = append(out, m.UVs[i][0], m.UVs[i][1])
		} else {
			out = append(out, 0, 0)
		}
	}
	return out
}

// UploadMesh validates m and creates its vertex array, vertex buffer and element buffer.
// Requires a current GL context.
func UploadMesh(m *geometry.MeshData) (*Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if len(m.Indices) == 0 {
		return nil, fmt.Errorf("mesh has no triangles")
	}

	vertices := Interleave(m)
	out := &Mesh{Count: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &out.VAO)
	gl.BindVertexArray(out.VAO)

	gl.GenBuffers(1, &out.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, out.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(FloatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(AttribPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(AttribPosition)
	gl.VertexAttribPointerWithOffset(AttribExtra, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(AttribExtra)
	gl.VertexAttribPointerWithOffset(AttribUV, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(AttribUV)

	gl.GenBuffers(1, &out.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, out.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return out, nil
}

// Delete releases the GL objects.
func (m *Mesh) Delete() {
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
		m.VAO = 0
	}
	if m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
		m.VBO = 0
	}
	if m.EBO != 0 {
		gl.DeleteBuffers(1, &m.EBO)
		m.EBO = 0
	}
}
