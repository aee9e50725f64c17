package geometry

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCubeShape(t *testing.T) {
	m := Cube()

	if m.VertexCount() != 24 {
		t.Errorf("expected 24 vertices, got %d", m.VertexCount())
	}
	if m.TriangleCount() != 12 {
		t.Errorf("expected 12 triangles, got %d", m.TriangleCount())
	}
	if len(m.Indices) != CubeIndexCount {
		t.Errorf("expected %d indices, got %d", CubeIndexCount, len(m.Indices))
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("cube should validate: %v", err)
	}
}

func TestCubeTrianglesFaceOutward(t *testing.T) {
	m := Cube()
	for tri := 0; tri < m.TriangleCount(); tri++ {
		a := m.Positions[m.Indices[tri*3]]
		b := m.Positions[m.Indices[tri*3+1]]
		c := m.Positions[m.Indices[tri*3+2]]

		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		if n.Dot(centroid) <= 0 {
			t.Errorf("triangle %d faces inward: normal %v centroid %v", tri, n, centroid)
		}

		// The stored face normal must agree with the winding.
		if n.Normalize().Dot(m.Normals[m.Indices[tri*3]]) < 0.999 {
			t.Errorf("triangle %d winding disagrees with face normal %v", tri, m.Normals[m.Indices[tri*3]])
		}
	}
}

func TestCubeFlatFaceColors(t *testing.T) {
	m := Cube()
	want := []mgl32.Vec3{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 0}, {0, 1, 1}, {1, 1, 1},
	}
	for face, c := range want {
		for v := face * 4; v < face*4+4; v++ {
			if m.Colors[v] != c {
				t.Errorf("vertex %d: expected colour %v, got %v", v, c, m.Colors[v])
			}
		}
	}

	// Each triangle lies entirely inside one face.
	for tri := 0; tri < m.TriangleCount(); tri++ {
		face := m.Indices[tri*3] / 4
		for k := 1; k < 3; k++ {
			if m.Indices[tri*3+k]/4 != face {
				t.Errorf("triangle %d spans faces", tri)
			}
		}
	}
}

func TestFromParsed(t *testing.T) {
	p := ParsedMesh{
		Name:      "quad",
		Positions: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 0, 1}, {1, 0, 1}},
		Normals:   []mgl32.Vec3{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}, {0, 1, 0}},
		UVs:       []mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		Indices:   []uint32{0, 2, 1, 1, 2, 3},
	}

	m, err := FromParsed(p)
	if err != nil {
		t.Fatalf("FromParsed failed: %v", err)
	}
	if m.VertexCount() != 4 || m.TriangleCount() != 2 {
		t.Errorf("unexpected counts %d/%d", m.VertexCount(), m.TriangleCount())
	}
	if &m.Positions[0] != &p.Positions[0] {
		t.Error("expected positions to be wrapped, not copied")
	}
}

func TestFromParsedRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		mesh ParsedMesh
	}{
		{"empty", ParsedMesh{}},
		{"index out of range", ParsedMesh{
			Positions: []mgl32.Vec3{{}, {}, {}},
			Indices:   []uint32{0, 1, 3},
		}},
		{"partial triangle", ParsedMesh{
			Positions: []mgl32.Vec3{{}, {}, {}},
			Indices:   []uint32{0, 1},
		}},
		{"normal count mismatch", ParsedMesh{
			Positions: []mgl32.Vec3{{}, {}, {}},
			Normals:   []mgl32.Vec3{{}},
			Indices:   []uint32{0, 1, 2},
		}},
		{"uv count mismatch", ParsedMesh{
			Positions: []mgl32.Vec3{{}, {}, {}},
			UVs:       []mgl32.Vec2{{}, {}},
			Indices:   []uint32{0, 1, 2},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromParsed(tt.mesh); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBounds(t *testing.T) {
	min, max := Cube().Bounds()
	if min != (mgl32.Vec3{-10, -10, -10}) || max != (mgl32.Vec3{10, 10, 10}) {
		t.Errorf("unexpected cube bounds %v %v", min, max)
	}
}

func triangle(name string) ParsedMesh {
	return ParsedMesh{
		Name:      name,
		Positions: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Indices:   []uint32{0, 1, 2},
	}
}

func TestPairSkyboxFaces(t *testing.T) {
	names := []string{"m0", "m1", "m2", "m3", "m4", "m5"}
	var meshes []ParsedMesh
	for _, n := range names {
		meshes = append(meshes, triangle(n))
	}
	textures := []string{"top.png", "right.png", "left.png", "front.png", "back.png", "bottom.png"}

	faces, err := PairSkyboxFaces(meshes, textures)
	if err != nil {
		t.Fatalf("PairSkyboxFaces failed: %v", err)
	}

	wantFaces := []Face{FaceTop, FaceRight, FaceLeft, FaceFront, FaceBack, FaceBottom}
	for i, f := range faces {
		if f.Face != wantFaces[i] {
			t.Errorf("face %d: expected %s, got %s", i, wantFaces[i], f.Face)
		}
		if f.Texture != textures[i] {
			t.Errorf("face %d: expected texture %s, got %s", i, textures[i], f.Texture)
		}
		if &f.Mesh.Positions[0] != &meshes[i].Positions[0] {
			t.Errorf("face %d: paired with the wrong sub-mesh", i)
		}
		if f.Face.String()+".png" != f.Texture {
			t.Errorf("face %d: tag %s does not match texture %s", i, f.Face, f.Texture)
		}
	}
}

func TestPairSkyboxFacesCount(t *testing.T) {
	six := []string{"a", "b", "c", "d", "e", "f"}
	five := []ParsedMesh{triangle("0"), triangle("1"), triangle("2"), triangle("3"), triangle("4")}

	if _, err := PairSkyboxFaces(five, six); !errors.Is(err, ErrSkyboxFaceCount) {
		t.Errorf("expected ErrSkyboxFaceCount for five meshes, got %v", err)
	}

	meshes := append(five, triangle("5"))
	if _, err := PairSkyboxFaces(meshes, six[:4]); !errors.Is(err, ErrSkyboxFaceCount) {
		t.Errorf("expected ErrSkyboxFaceCount for four textures, got %v", err)
	}

	blank := []string{"a", "b", "", "d", "e", "f"}
	if _, err := PairSkyboxFaces(meshes, blank); err == nil {
		t.Error("expected error for missing face texture")
	}
}

func TestAccumulateNormals(t *testing.T) {
	// Two triangles folded along the x axis: one flat, one tilted up by 90 degrees.
	positions := []mgl32.Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 0, -1}, {0, 1, 0}, {5, 5, 5},
	}
	indices := []uint32{0, 1, 2, 0, 1, 3}

	normals := AccumulateNormals(positions, indices)

	// Vertex 2 only touches the flat triangle.
	if !normals[2].ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5) {
		t.Errorf("vertex 2: expected +Y, got %v", normals[2])
	}
	// Vertices 0 and 1 average +Y and +Z.
	want := mgl32.Vec3{0, 1, 1}.Normalize()
	for _, v := range []int{0, 1} {
		if !normals[v].ApproxEqualThreshold(want, 1e-5) {
			t.Errorf("vertex %d: expected %v, got %v", v, want, normals[v])
		}
	}
	// Unreferenced vertex stays zero rather than NaN.
	if normals[4] != (mgl32.Vec3{}) {
		t.Errorf("unreferenced vertex: expected zero, got %v", normals[4])
	}
}
