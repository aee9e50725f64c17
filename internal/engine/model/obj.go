// Package model loads Wavefront OBJ files into parsed sub-meshes.
package model

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-scene/internal/engine/geometry"
	"github.com/Faultbox/terrain-scene/internal/logger"
)

// Loader returns the raw bytes of a named asset.
type Loader interface {
	Load(name string) ([]byte, error)
}

// Load reads a named OBJ asset and returns one ParsedMesh per object, in file order.
func Load(l Loader, name string) ([]geometry.ParsedMesh, error) {
	data, err := l.Load(name)
	if err != nil {
		return nil, err
	}
	meshes, err := DecodeOBJ(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	logger.Named("model").Info("model loaded",
		zap.String("path", name),
		zap.Int("meshes", len(meshes)))
	return meshes, nil
}

// DecodeOBJ parses OBJ geometry. Materials are ignored; textures are assigned by the scene.
// Polygons are fan-triangulated and identical position/uv/normal corners share a vertex.
func DecodeOBJ(r io.Reader) ([]geometry.ParsedMesh, error) {
	dec, err := obj.DecodeReader(r, strings.NewReader(""))
	if err != nil {
		return nil, err
	}

	var meshes []geometry.ParsedMesh
	for i := range dec.Objects {
		o := &dec.Objects[i]
		if len(o.Faces) == 0 {
			continue
		}
		m, err := buildMesh(dec, o)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", o.Name, err)
		}
		meshes = append(meshes, m)
	}
	if len(meshes) == 0 {
		return nil, fmt.Errorf("no faces")
	}
	return meshes, nil
}

type corner struct {
	v, uv, n int
}

type meshBuilder struct {
	dec       *obj.Decoder
	mesh      geometry.ParsedMesh
	lookup    map[corner]uint32
	hasUV     bool
	hasNormal bool
}

func buildMesh(dec *obj.Decoder, o *obj.Object) (geometry.ParsedMesh, error) {
	b := &meshBuilder{
		dec:    dec,
		mesh:   geometry.ParsedMesh{Name: o.Name},
		lookup: make(map[corner]uint32),
	}

	for fi := range o.Faces {
		f := &o.Faces[fi]
		if len(f.Vertices) < 3 {
			continue
		}
		ids := make([]uint32, len(f.Vertices))
		for k := range f.Vertices {
			c := corner{v: f.Vertices[k], uv: -1, n: -1}
			if k < len(f.Uvs) && validIndex(f.Uvs[k], len(dec.Uvs)/2) {
				c.uv = f.Uvs[k]
			}
			if k < len(f.Normals) && validIndex(f.Normals[k], len(dec.Normals)/3) {
				c.n = f.Normals[k]
			}
			id, err := b.vertex(c)
			if err != nil {
				return geometry.ParsedMesh{}, fmt.Errorf("face %d: %w", fi, err)
			}
			ids[k] = id
		}
		for k := 1; k+1 < len(ids); k++ {
			b.mesh.Indices = append(b.mesh.Indices, ids[0], ids[k], ids[k+1])
		}
	}

	if !b.hasUV {
		b.mesh.UVs = nil
	}
	if !b.hasNormal {
		b.mesh.Normals = geometry.AccumulateNormals(b.mesh.Positions, b.mesh.Indices)
	}
	return b.mesh, nil
}

// vertex returns the index of corner c, appending it on first use.
func (b *meshBuilder) vertex(c corner) (uint32, error) {
	if id, ok := b.lookup[c]; ok {
		return id, nil
	}
	if !validIndex(c.v, len(b.dec.Vertices)/3) {
		return 0, fmt.Errorf("vertex index %d out of range", c.v)
	}

	v := b.dec.Vertices
	b.mesh.Positions = append(b.mesh.Positions, mgl32.Vec3{v[3*c.v], v[3*c.v+1], v[3*c.v+2]})

	var uv mgl32.Vec2
	if c.uv >= 0 {
		uv = mgl32.Vec2{b.dec.Uvs[2*c.uv], b.dec.Uvs[2*c.uv+1]}
		b.hasUV = true
	}
	b.mesh.UVs = append(b.mesh.UVs, uv)

	var n mgl32.Vec3
	if c.n >= 0 {
		nv := b.dec.Normals
		n = mgl32.Vec3{nv[3*c.n], nv[3*c.n+1], nv[3*c.n+2]}
		b.hasNormal = true
	}
	b.mesh.Normals = append(b.mesh.Normals, n)

	id := uint32(len(b.mesh.Positions) - 1)
	b.lookup[c] = id
	return id, nil
}

func validIndex(i, count int) bool {
	return i >= 0 && i < count
}
