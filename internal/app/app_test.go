package app

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/terrain-scene/internal/config"
	"github.com/Faultbox/terrain-scene/internal/engine/geometry"
)

func TestSceneConfigFromDefaults(t *testing.T) {
	cfg := config.Default()
	sc := SceneConfig(cfg)

	if sc.Terrain.CellsX != 250 || sc.Terrain.CellsZ != 250 || sc.Terrain.CellSize != 8 || sc.Terrain.HeightScale != 0.5 {
		t.Errorf("Terrain = %+v, want 250x250 cells of 8 with scale 0.5", sc.Terrain)
	}
	if sc.Heightmap != cfg.Terrain.Heightmap || sc.TerrainTex != cfg.Terrain.Texture {
		t.Errorf("terrain paths = %q, %q", sc.Heightmap, sc.TerrainTex)
	}
	if sc.Noise.Seed != cfg.Terrain.Perlin.Seed || sc.Noise.Size != cfg.Terrain.Perlin.Size {
		t.Errorf("Noise = %+v, want from %+v", sc.Noise, cfg.Terrain.Perlin)
	}
	if want := (mgl32.Vec3{2000, 10, 2500}); sc.Vehicle.Translate != want || sc.Vehicle.Scale != 0.5 {
		t.Errorf("Vehicle = %+v", sc.Vehicle)
	}
	if want := (mgl32.Vec3{100, 25, 0}); sc.Cube.Translate != want || sc.Cube.Scale != 10 {
		t.Errorf("Cube = %+v", sc.Cube)
	}
	if d := sc.CubeSpinStep - 0.001; d > 1e-9 || d < -1e-9 {
		t.Errorf("CubeSpinStep = %v, want 0.001", sc.CubeSpinStep)
	}
	if len(sc.SkyboxFaces) != len(geometry.SkyboxFaceOrder) {
		t.Fatalf("SkyboxFaces = %d, want %d", len(sc.SkyboxFaces), len(geometry.SkyboxFaceOrder))
	}
	if sc.SkyboxFaces[0] != cfg.Models.Skybox.Faces.Top || sc.SkyboxFaces[5] != cfg.Models.Skybox.Faces.Bottom {
		t.Errorf("SkyboxFaces = %v, want top first and bottom last", sc.SkyboxFaces)
	}
}

func TestSceneConfigEmptyHeightmapGenerates(t *testing.T) {
	cfg := config.Default()
	cfg.Terrain.Heightmap = ""
	if sc := SceneConfig(cfg); sc.Heightmap != "" {
		t.Errorf("Heightmap = %q, want empty", sc.Heightmap)
	}
}

func TestRenderConfig(t *testing.T) {
	tests := []struct {
		name      string
		graphics  config.GraphicsConfig
		fov       float32
		near, far float32
		wire      bool
	}{
		{"configured", config.GraphicsConfig{FOVDegrees: 60, Near: 1, Far: 100, Wireframe: true}, 60, 1, 100, true},
		{"zero falls back", config.GraphicsConfig{}, 45, 0.1, 4000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Graphics = tt.graphics
			rc := RenderConfig(cfg)
			if rc.FOVDegrees != tt.fov || rc.Near != tt.near || rc.Far != tt.far || rc.Wireframe != tt.wire {
				t.Errorf("RenderConfig() = %+v", rc)
			}
		})
	}
}

func TestNewCamera(t *testing.T) {
	c := NewCamera(config.CameraConfig{
		Position: [3]float32{1, 2, 3},
		Look:     [3]float32{0, 0, -1},
		Speed:    50,
	})
	if c.Position() != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Position() = %v", c.Position())
	}
	if !c.Look().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("Look() = %v", c.Look())
	}
	if c.Speed != 50 {
		t.Errorf("Speed = %v, want 50", c.Speed)
	}
	if c.Sensitivity <= 0 {
		t.Errorf("Sensitivity = %v, want default", c.Sensitivity)
	}
}
