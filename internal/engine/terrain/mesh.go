package terrain

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-scene/internal/engine/geometry"
	"github.com/Faultbox/terrain-scene/internal/logger"
)

// BuildMesh creates a triangulated terrain mesh from a heightmap.
//
// Vertex (row, col) sits at (col*CellSize, height, row*CellSize). Each cell is split into two
// triangles; the diagonal alternates per cell and again per row, giving a diamond pattern.
// All triangles wind counter-clockwise seen from above, so a flat grid has +Y normals.
func BuildMesh(img *HeightmapImage, grid Grid) (*Mesh, error) {
	if grid.CellsX <= 0 || grid.CellsZ <= 0 || grid.CellSize <= 0 {
		return nil, fmt.Errorf("%w: %dx%d cells of size %g", ErrInvalidGrid, grid.CellsX, grid.CellsZ, grid.CellSize)
	}
	nx, nz := grid.NumVertX(), grid.NumVertZ()
	if uint64(nx)*uint64(nz) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %dx%d vertices exceed 32-bit indices", ErrInvalidGrid, nx, nz)
	}

	heights, err := SampleHeights(img, nx, nz, grid.HeightScale)
	if err != nil {
		return nil, fmt.Errorf("sampling heightmap: %w", err)
	}

	mesh := &Mesh{Grid: grid}
	mesh.Positions = make([]mgl32.Vec3, 0, nx*nz)
	mesh.UVs = make([]mgl32.Vec2, 0, nx*nz)
	for row := range nz {
		for col := range nx {
			mesh.Positions = append(mesh.Positions, mgl32.Vec3{
				float32(col) * grid.CellSize,
				heights[row*nx+col],
				float32(row) * grid.CellSize,
			})
			mesh.UVs = append(mesh.UVs, mgl32.Vec2{
				float32(col) / float32(grid.CellsX),
				float32(row) / float32(grid.CellsZ),
			})
		}
	}

	mesh.Indices = triangulate(grid)
	mesh.Normals = geometry.AccumulateNormals(mesh.Positions, mesh.Indices)

	logger.Named("terrain").Info("terrain mesh built",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("heightmapWidth", img.Width),
		zap.Int("heightmapHeight", img.Height))

	return mesh, nil
}

// triangulate emits two triangles per cell, flipping the diagonal every cell and again at the
// end of every row.
func triangulate(grid Grid) []uint32 {
	nx := uint32(grid.NumVertX())
	indices := make([]uint32, 0, grid.CellsX*grid.CellsZ*6)

	diamond := true
	for row := range grid.CellsZ {
		for col := range grid.CellsX {
			s := uint32(row)*nx + uint32(col)
			if diamond {
				// diagonal s -> s+nx+1
				indices = append(indices,
					s, s+nx+1, s+1,
					s, s+nx, s+nx+1,
				)
			} else {
				// diagonal s+1 -> s+nx
				indices = append(indices,
					s, s+nx, s+1,
					s+1, s+nx, s+nx+1,
				)
			}
			diamond = !diamond
		}
		diamond = !diamond
	}
	return indices
}
