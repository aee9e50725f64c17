// Package terrain builds heightmap-driven grid meshes.
package terrain

import (
	"errors"

	"github.com/Faultbox/terrain-scene/internal/engine/geometry"
)

var (
	// ErrEmptyHeightmap is returned for a heightmap with no pixels or a short buffer.
	ErrEmptyHeightmap = errors.New("empty heightmap")
	// ErrInvalidGrid is returned for non-positive cell counts or cell size.
	ErrInvalidGrid = errors.New("invalid terrain grid")
)

// HeightmapImage is a read-only pixel buffer with a 4-byte stride per pixel.
// Only the first channel of each pixel is used as elevation.
type HeightmapImage struct {
	Width  int
	Height int
	Pixels []byte
}

// Grid describes the terrain resolution and scale.
type Grid struct {
	CellsX      int
	CellsZ      int
	CellSize    float32 // world units per cell side
	HeightScale float32 // multiplier applied to the raw 0-255 texel value
}

// NumVertX returns the number of vertices along X.
func (g Grid) NumVertX() int { return g.CellsX + 1 }

// NumVertZ returns the number of vertices along Z.
func (g Grid) NumVertZ() int { return g.CellsZ + 1 }

// Mesh holds the terrain mesh data ready for GPU upload.
type Mesh struct {
	geometry.MeshData
	Grid Grid
}
