package scene

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-scene/internal/engine/geometry"
	"github.com/Faultbox/terrain-scene/internal/engine/gpu"
	"github.com/Faultbox/terrain-scene/internal/engine/model"
	"github.com/Faultbox/terrain-scene/internal/engine/terrain"
	"github.com/Faultbox/terrain-scene/internal/engine/texture"
	"github.com/Faultbox/terrain-scene/internal/logger"
)

// Model names used by the builder.
const (
	NameSkybox  = "skybox"
	NameTerrain = "terrain"
	NameVehicle = "jeep"
	NameCube    = "cube"
)

// ErrInvalidSpinStep is returned when the cube spin step is not positive.
var ErrInvalidSpinStep = errors.New("cube spin step must be positive")

// Loader returns the raw bytes of a named asset.
type Loader interface {
	Load(name string) ([]byte, error)
}

// Config contains scene construction options.
type Config struct {
	Terrain      terrain.Grid
	Heightmap    string // empty generates one from Noise
	Noise        terrain.NoiseParams
	TerrainTex   string
	VehicleOBJ   string
	VehicleTex   string
	Vehicle      Placement
	SkyboxOBJ    string
	SkyboxFaces  []string // in geometry.SkyboxFaceOrder
	Cube         Placement
	CubeSpinStep float64
}

// DefaultConfig returns a default scene configuration.
func DefaultConfig() Config {
	return Config{
		Terrain:      terrain.Grid{CellsX: 250, CellsZ: 250, CellSize: 8, HeightScale: 0.5},
		Noise:        terrain.NoiseParams{Seed: 1, Alpha: 2, Beta: 2, Octaves: 3, Size: 256, Scale: 0.02},
		Vehicle:      Placement{Scale: 0.5, Translate: mgl32.Vec3{2000, 10, 2500}},
		Cube:         Placement{Scale: 10, Translate: mgl32.Vec3{100, 25, 0}},
		CubeSpinStep: 0.001,
	}
}

// Builder runs the initialization phase: load assets, build meshes, upload them.
// It must finish before the first frame is rendered.
type Builder struct {
	cfg    Config
	assets Loader
	up     gpu.Uploader
	log    *zap.Logger

	scene       *Scene
	placeholder *gpu.Texture

	// Everything uploaded by this build, released if the build fails.
	meshes   []*gpu.Mesh
	textures []*gpu.Texture
}

// NewBuilder creates a builder reading assets through l and uploading through up.
func NewBuilder(cfg Config, l Loader, up gpu.Uploader) *Builder {
	return &Builder{
		cfg:    cfg,
		assets: l,
		up:     up,
		log:    logger.Named("scene"),
	}
}

// Build creates the scene in draw order skybox, terrain, vehicle, cube.
// On failure everything uploaded so far is released and no scene is returned.
func (b *Builder) Build() (*Scene, error) {
	b.scene = New(b.up)

	steps := []struct {
		name  string
		build func() (*Model, error)
	}{
		{NameSkybox, b.buildSkybox},
		{NameTerrain, b.buildTerrain},
		{NameVehicle, b.buildVehicle},
		{NameCube, b.buildCube},
	}
	for _, step := range steps {
		m, err := step.build()
		if err != nil {
			b.abort()
			return nil, fmt.Errorf("building %s: %w", step.name, err)
		}
		b.scene.Add(m)
	}

	b.log.Info("scene built",
		zap.Int("models", len(b.scene.Models)),
		zap.Int("meshes", b.scene.MeshCount()))

	s := b.scene
	b.scene = nil
	b.meshes, b.textures = nil, nil
	return s, nil
}

func (b *Builder) abort() {
	for _, m := range b.meshes {
		b.up.DeleteMesh(m)
	}
	for _, t := range b.textures {
		b.up.DeleteTexture(t)
	}
	b.meshes, b.textures = nil, nil
	b.placeholder = nil
	b.scene = nil
}

func (b *Builder) uploadMesh(m *geometry.MeshData) (*gpu.Mesh, error) {
	mesh, err := b.up.UploadMesh(m)
	if err != nil {
		return nil, err
	}
	b.meshes = append(b.meshes, mesh)
	return mesh, nil
}

func (b *Builder) uploadTexture(img *image.RGBA, wrap gpu.Wrap) *gpu.Texture {
	t := b.up.UploadTexture(img, wrap)
	b.textures = append(b.textures, t)
	return t
}

func (b *Builder) buildSkybox() (*Model, error) {
	parsed, err := model.Load(b.assets, b.cfg.SkyboxOBJ)
	if err != nil {
		return nil, err
	}
	faces, err := geometry.PairSkyboxFaces(parsed, b.cfg.SkyboxFaces)
	if err != nil {
		return nil, err
	}

	m := &Model{Name: NameSkybox, Category: CategorySkybox}
	for _, f := range faces {
		img, err := texture.Load(b.assets, f.Texture)
		if err != nil {
			return nil, fmt.Errorf("%s face texture: %w", f.Face, err)
		}
		texture.FlipVertical(img)
		tex := b.uploadTexture(img, gpu.WrapClamp)
		mesh, err := b.uploadMesh(f.Mesh)
		if err != nil {
			return nil, fmt.Errorf("%s face mesh: %w", f.Face, err)
		}
		m.Meshes = append(m.Meshes, &Mesh{GPU: mesh, Texture: tex, Face: f.Face})
	}
	return m, nil
}

func (b *Builder) buildTerrain() (*Model, error) {
	hm, err := b.heightmap()
	if err != nil {
		return nil, err
	}
	tm, err := terrain.BuildMesh(hm, b.cfg.Terrain)
	if err != nil {
		return nil, err
	}
	mesh, err := b.uploadMesh(&tm.MeshData)
	if err != nil {
		return nil, err
	}
	return &Model{
		Name:     NameTerrain,
		Category: CategoryDefault,
		Meshes:   []*Mesh{{GPU: mesh, Texture: b.optionalTexture(b.cfg.TerrainTex, false)}},
	}, nil
}

func (b *Builder) heightmap() (*terrain.HeightmapImage, error) {
	if b.cfg.Heightmap == "" {
		b.log.Info("generating heightmap", zap.Int64("seed", b.cfg.Noise.Seed), zap.Int("size", b.cfg.Noise.Size))
		return terrain.GenerateHeightmap(b.cfg.Noise)
	}
	img, err := texture.Load(b.assets, b.cfg.Heightmap)
	if err != nil {
		return nil, fmt.Errorf("heightmap: %w", err)
	}
	return terrain.FromRGBA(img), nil
}

func (b *Builder) buildVehicle() (*Model, error) {
	parsed, err := model.Load(b.assets, b.cfg.VehicleOBJ)
	if err != nil {
		return nil, err
	}

	m := &Model{Name: NameVehicle, Category: CategoryVehicle, Placement: b.cfg.Vehicle}
	tex := b.optionalTexture(b.cfg.VehicleTex, true)
	for _, p := range parsed {
		data, err := geometry.FromParsed(p)
		if err != nil {
			return nil, err
		}
		mesh, err := b.uploadMesh(data)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", p.Name, err)
		}
		m.Meshes = append(m.Meshes, &Mesh{GPU: mesh, Texture: tex})
	}
	return m, nil
}

func (b *Builder) buildCube() (*Model, error) {
	// A non-positive step would never complete a turn, so the axis would never flip.
	if b.cfg.CubeSpinStep <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSpinStep, b.cfg.CubeSpinStep)
	}
	mesh, err := b.uploadMesh(geometry.Cube())
	if err != nil {
		return nil, err
	}
	return &Model{
		Name:      NameCube,
		Category:  CategoryCube,
		Meshes:    []*Mesh{{GPU: mesh}},
		Placement: b.cfg.Cube,
		Spin:      NewSpin(b.cfg.CubeSpinStep),
	}, nil
}

// optionalTexture loads a repeat-wrapped texture, substituting a shared white placeholder
// when the file is missing or corrupt.
func (b *Builder) optionalTexture(name string, flip bool) *gpu.Texture {
	img, err := texture.Load(b.assets, name)
	if err != nil {
		b.log.Warn("texture unavailable, using placeholder", zap.String("path", name), zap.Error(err))
		return b.placeholderTexture()
	}
	if flip {
		texture.FlipVertical(img)
	}
	return b.uploadTexture(img, gpu.WrapRepeat)
}

func (b *Builder) placeholderTexture() *gpu.Texture {
	if b.placeholder == nil {
		b.placeholder = b.uploadTexture(texture.Placeholder(), gpu.WrapRepeat)
	}
	return b.placeholder
}
