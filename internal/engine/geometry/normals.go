package geometry

import "github.com/go-gl/mathgl/mgl32"

// AccumulateNormals adds each triangle's unnormalized face normal to its three vertices and
// normalizes the sums, so larger triangles weigh more. Vertices no triangle references keep
// a zero normal.
func AccumulateNormals(positions []mgl32.Vec3, indices []uint32) []mgl32.Vec3 {
	normals := make([]mgl32.Vec3, len(positions))
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		p0 := positions[a]
		face := positions[b].Sub(p0).Cross(positions[c].Sub(p0))
		normals[a] = normals[a].Add(face)
		normals[b] = normals[b].Add(face)
		normals[c] = normals[c].Add(face)
	}
	for i, n := range normals {
		if l := n.Len(); l > 0 {
			normals[i] = n.Mul(1 / l)
		}
	}
	return normals
}
