package gpu

import (
	"image"

	"github.com/Faultbox/terrain-scene/internal/engine/geometry"
)

// Uploader creates and releases GPU resources during the init and teardown phases.
type Uploader interface {
	UploadMesh(m *geometry.MeshData) (*Mesh, error)
	UploadTexture(img *image.RGBA, wrap Wrap) *Texture
	DeleteMesh(m *Mesh)
	DeleteTexture(t *Texture)
}

// GL is the Uploader backed by the current OpenGL context.
type GL struct{}

// UploadMesh implements Uploader.
func (GL) UploadMesh(m *geometry.MeshData) (*Mesh, error) { return UploadMesh(m) }

// UploadTexture implements Uploader.
func (GL) UploadTexture(img *image.RGBA, wrap Wrap) *Texture { return UploadTexture(img, wrap) }

// DeleteMesh implements Uploader.
func (GL) DeleteMesh(m *Mesh) { m.Delete() }

// DeleteTexture implements Uploader.
func (GL) DeleteTexture(t *Texture) { t.Delete() }
