package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/terrain-scene/internal/engine/geometry"
	"github.com/Faultbox/terrain-scene/internal/engine/gpu"
)

// Mesh is one drawable part of a model. The owning Model releases it.
type Mesh struct {
	GPU     *gpu.Mesh
	Texture *gpu.Texture // nil for untextured meshes
	Face    geometry.Face
}

// TextureID returns the GL texture name, or 0 when the mesh is untextured.
func (m *Mesh) TextureID() uint32 {
	if m.Texture == nil {
		return 0
	}
	return m.Texture.ID
}

// Placement is a model's fixed world transform: scale first applied to the translation,
// as in scale(S) * translate(T).
type Placement struct {
	Scale     float32
	Translate mgl32.Vec3
}

// Matrix returns scale(S) * translate(T). A zero scale means 1.
func (p Placement) Matrix() mgl32.Mat4 {
	s := p.Scale
	if s == 0 {
		s = 1
	}
	return mgl32.Scale3D(s, s, s).Mul4(mgl32.Translate3D(p.Translate[0], p.Translate[1], p.Translate[2]))
}

// Model is a named, categorised list of meshes.
type Model struct {
	Name      string
	Category  Category
	Meshes    []*Mesh
	Placement Placement
	Spin      *Spin // only for spinning models
}
