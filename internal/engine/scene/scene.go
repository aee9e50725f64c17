// Package scene holds the models drawn each frame and builds them during initialization.
package scene

import (
	"github.com/Faultbox/terrain-scene/internal/engine/gpu"
)

// Scene is the ordered list of models, built once and read-only while rendering.
// Only the renderer advances model Spin state.
type Scene struct {
	Models []*Model

	uploader gpu.Uploader
}

// New creates an empty scene whose resources are released through up.
func New(up gpu.Uploader) *Scene {
	return &Scene{uploader: up}
}

// Add appends a model. Models draw in insertion order.
func (s *Scene) Add(m *Model) {
	s.Models = append(s.Models, m)
}

// Find returns the first model with the given name.
func (s *Scene) Find(name string) (*Model, bool) {
	for _, m := range s.Models {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// MeshCount returns the number of meshes across all models.
func (s *Scene) MeshCount() int {
	n := 0
	for _, m := range s.Models {
		n += len(m.Meshes)
	}
	return n
}

// Destroy releases every mesh and texture. Textures shared between meshes are released once.
func (s *Scene) Destroy() {
	released := make(map[*gpu.Texture]bool)
	for _, m := range s.Models {
		for _, mesh := range m.Meshes {
			if mesh.GPU != nil {
				s.uploader.DeleteMesh(mesh.GPU)
				mesh.GPU = nil
			}
			if mesh.Texture != nil && !released[mesh.Texture] {
				s.uploader.DeleteTexture(mesh.Texture)
				released[mesh.Texture] = true
			}
			mesh.Texture = nil
		}
	}
	s.Models = nil
}
