package shader

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedSources(t *testing.T) {
	tests := []struct {
		name     string
		src      Source
		uniforms []string
		inputs   []string
	}{
		{"default", Default, []string{UniformCombined, UniformModel, UniformSampler}, []string{"location = 0", "location = 1", "location = 2"}},
		{"cube", Cube, []string{UniformCombined, UniformModel}, []string{"location = 0", "location = 1"}},
		{"skybox", Skybox, []string{UniformCombined, UniformModel, UniformSampler}, []string{"location = 0", "location = 2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.HasPrefix(tt.src.Vertex, "#version 410 core") || !strings.HasPrefix(tt.src.Fragment, "#version 410 core") {
				t.Error("expected GLSL 4.10 core sources")
			}
			both := tt.src.Vertex + tt.src.Fragment
			for _, u := range tt.uniforms {
				if !strings.Contains(both, "uniform") || !strings.Contains(both, u) {
					t.Errorf("missing uniform %s", u)
				}
			}
			for _, in := range tt.inputs {
				if !strings.Contains(tt.src.Vertex, in) {
					t.Errorf("vertex shader missing %q", in)
				}
			}
		})
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

func TestOverride(t *testing.T) {
	l := mapLoader{"custom.frag": "#version 410 core\nvoid main() {}\n"}

	src, err := Override(l, Default, "", "custom.frag")
	if err != nil {
		t.Fatalf("Override failed: %v", err)
	}
	if src.Vertex != Default.Vertex {
		t.Error("empty vertex path should keep the embedded stage")
	}
	if !strings.Contains(src.Fragment, "void main() {}") {
		t.Error("fragment stage was not replaced")
	}

	same, err := Override(l, Cube, "", "")
	if err != nil || same != Cube {
		t.Errorf("expected unchanged source, got err=%v", err)
	}

	if _, err := Override(l, Default, "missing.vert", ""); !errors.Is(err, errMissing) {
		t.Errorf("expected loader error, got %v", err)
	}
}
