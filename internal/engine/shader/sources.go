package shader

import (
	_ "embed"
	"fmt"
)

// Uniform names shared by every program.
const (
	UniformCombined = "combined_xform"
	UniformModel    = "model_xform"
	UniformSampler  = "sampler_tex"
)

// Source is a vertex/fragment shader pair.
type Source struct {
	Vertex   string
	Fragment string
}

//go:embed glsl/default.vert
var defaultVertex string

//go:embed glsl/default.frag
var defaultFragment string

//go:embed glsl/cube.vert
var cubeVertex string

//go:embed glsl/cube.frag
var cubeFragment string

//go:embed glsl/skybox.vert
var skyboxVertex string

//go:embed glsl/skybox.frag
var skyboxFragment string

// Default lights a textured mesh with one fixed directional light.
var Default = Source{Vertex: defaultVertex, Fragment: defaultFragment}

// Cube draws per-vertex colours streamed on attribute 1.
var Cube = Source{Vertex: cubeVertex, Fragment: cubeFragment}

// Skybox draws an unlit textured mesh.
var Skybox = Source{Vertex: skyboxVertex, Fragment: skyboxFragment}

// Loader returns the raw bytes of a named asset.
type Loader interface {
	Load(name string) ([]byte, error)
}

// Override replaces stages of base with files named by vertexPath and fragmentPath.
// An empty path keeps the corresponding embedded stage.
func Override(l Loader, base Source, vertexPath, fragmentPath string) (Source, error) {
	src := base
	if vertexPath != "" {
		data, err := l.Load(vertexPath)
		if err != nil {
			return Source{}, fmt.Errorf("vertex shader %s: %w", vertexPath, err)
		}
		src.Vertex = string(data)
	}
	if fragmentPath != "" {
		data, err := l.Load(fragmentPath)
		if err != nil {
			return Source{}, fmt.Errorf("fragment shader %s: %w", fragmentPath, err)
		}
		src.Fragment = string(data)
	}
	return src, nil
}
