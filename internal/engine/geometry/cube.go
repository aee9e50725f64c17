package geometry

import "github.com/go-gl/mathgl/mgl32"

// Cube face colours, in face order front, back, left, right, top, bottom.
var cubeFaceColors = [6]mgl32.Vec3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 0},
	{0, 1, 1},
	{1, 1, 1},
}

var cubeFaceNormals = [6]mgl32.Vec3{
	{0, 0, 1},
	{0, 0, -1},
	{-1, 0, 0},
	{1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
}

// Four unshared corners per face so every face keeps hard edges.
var cubeCorners = [24]mgl32.Vec3{
	// front (z = +10)
	{-10, -10, 10}, {10, -10, 10}, {-10, 10, 10}, {10, 10, 10},
	// back (z = -10)
	{-10, -10, -10}, {10, -10, -10}, {-10, 10, -10}, {10, 10, -10},
	// left (x = -10)
	{-10, -10, 10}, {-10, 10, 10}, {-10, -10, -10}, {-10, 10, -10},
	// right (x = +10)
	{10, -10, 10}, {10, 10, 10}, {10, -10, -10}, {10, 10, -10},
	// top (y = +10)
	{-10, 10, 10}, {10, 10, 10}, {-10, 10, -10}, {10, 10, -10},
	// bottom (y = -10)
	{-10, -10, 10}, {10, -10, 10}, {-10, -10, -10}, {10, -10, -10},
}

// Counter-clockwise seen from outside the cube.
var cubeIndices = [36]uint32{
	0, 1, 2, 1, 3, 2,
	6, 5, 4, 7, 5, 6,
	9, 10, 8, 9, 11, 10,
	12, 14, 13, 14, 15, 13,
	16, 17, 18, 17, 19, 18,
	22, 21, 20, 22, 23, 21,
}

var cubeFaceUVs = [4]mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// CubeIndexCount is the element count of the cube mesh.
const CubeIndexCount = len(cubeIndices)

// Cube builds the 20-unit cube centred on the origin with one flat colour per face.
func Cube() *MeshData {
	m := &MeshData{
		Positions: make([]mgl32.Vec3, len(cubeCorners)),
		Normals:   make([]mgl32.Vec3, len(cubeCorners)),
		UVs:       make([]mgl32.Vec2, len(cubeCorners)),
		Colors:    make([]mgl32.Vec3, len(cubeCorners)),
		Indices:   make([]uint32, len(cubeIndices)),
	}
	copy(m.Positions, cubeCorners[:])
	copy(m.Indices, cubeIndices[:])
	for i := range cubeCorners {
		face := i / 4
		m.Normals[i] = cubeFaceNormals[face]
		m.Colors[i] = cubeFaceColors[face]
		m.UVs[i] = cubeFaceUVs[i%4]
	}
	return m
}
