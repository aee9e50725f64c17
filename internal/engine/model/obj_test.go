package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const quadOBJ = `
o ground
v 0 0 0
v 1 0 0
v 1 0 -1
v 0 0 -1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 1 0
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestDecodeOBJQuad(t *testing.T) {
	meshes, err := DecodeOBJ(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("DecodeOBJ failed: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(meshes))
	}

	m := meshes[0]
	if m.Name != "ground" {
		t.Errorf("expected name ground, got %q", m.Name)
	}
	if len(m.Positions) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(m.Positions))
	}
	if len(m.Indices) != 6 {
		t.Fatalf("expected 2 triangles, got %d indices", len(m.Indices))
	}
	want := []uint32{0, 1, 2, 0, 2, 3}
	for i := range want {
		if m.Indices[i] != want[i] {
			t.Errorf("index %d: expected %d, got %d", i, want[i], m.Indices[i])
		}
	}
	if m.Positions[2] != (mgl32.Vec3{1, 0, -1}) {
		t.Errorf("unexpected position %v", m.Positions[2])
	}
	if m.UVs[2] != (mgl32.Vec2{1, 1}) {
		t.Errorf("unexpected uv %v", m.UVs[2])
	}
	for i, n := range m.Normals {
		if n != (mgl32.Vec3{0, 1, 0}) {
			t.Errorf("vertex %d: unexpected normal %v", i, n)
		}
	}
}

const sixFaceOBJ = `
v -1 1 -1
v 1 1 -1
v 1 1 1
o top
f 1 2 3
o right
f 1 2 3
o left
f 1 2 3
o front
f 1 2 3
o back
f 1 2 3
o bottom
f 1 2 3
`

func TestDecodeOBJKeepsObjectOrder(t *testing.T) {
	meshes, err := DecodeOBJ(strings.NewReader(sixFaceOBJ))
	if err != nil {
		t.Fatalf("DecodeOBJ failed: %v", err)
	}
	want := []string{"top", "right", "left", "front", "back", "bottom"}
	if len(meshes) != len(want) {
		t.Fatalf("expected %d meshes, got %d", len(want), len(meshes))
	}
	for i, m := range meshes {
		if m.Name != want[i] {
			t.Errorf("mesh %d: expected %s, got %s", i, want[i], m.Name)
		}
		if m.UVs != nil {
			t.Errorf("mesh %d: expected no uvs", i)
		}
		// Normals are generated when the file has none.
		if len(m.Normals) != 3 || !m.Normals[0].ApproxEqualThreshold(mgl32.Vec3{0, -1, 0}, 1e-5) {
			t.Errorf("mesh %d: unexpected generated normals %v", i, m.Normals)
		}
	}
}

func TestDecodeOBJNoFaces(t *testing.T) {
	if _, err := DecodeOBJ(strings.NewReader("v 0 0 0\n")); err == nil {
		t.Error("expected error for OBJ without faces")
	}
}

type mapLoader map[string]string

var errMissing = errors.New("missing")

func (m mapLoader) Load(name string) ([]byte, error) {
	if s, ok := m[name]; ok {
		return []byte(s), nil
	}
	return nil, errMissing
}

func TestLoad(t *testing.T) {
	l := mapLoader{"models/quad.obj": quadOBJ}

	meshes, err := Load(l, "models/quad.obj")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(meshes) != 1 {
		t.Errorf("expected 1 mesh, got %d", len(meshes))
	}

	if _, err := Load(l, "models/none.obj"); !errors.Is(err, errMissing) {
		t.Errorf("expected loader error, got %v", err)
	}
}
