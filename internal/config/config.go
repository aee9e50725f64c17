// Package config handles scene configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Models   ModelsConfig   `yaml:"models"`
	Shaders  ShadersConfig  `yaml:"shaders"`
	Camera   CameraConfig   `yaml:"camera"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DataConfig holds asset search roots, tried in order.
type DataConfig struct {
	Roots []string `yaml:"roots"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Fullscreen    bool    `yaml:"fullscreen"`
	VSync         bool    `yaml:"vsync"`
	Wireframe     bool    `yaml:"wireframe"`
	FOVDegrees    float32 `yaml:"fov_degrees"`
	Near          float32 `yaml:"near"`
	Far           float32 `yaml:"far"`
	ScreenshotDir string  `yaml:"screenshot_dir"` // F12 captures
}

// TerrainConfig controls heightmap sampling and grid resolution.
type TerrainConfig struct {
	CellsX      int          `yaml:"cells_x"`
	CellsZ      int          `yaml:"cells_z"`
	CellSize    float32      `yaml:"cell_size"`
	HeightScale float32      `yaml:"height_scale"`
	Heightmap   string       `yaml:"heightmap"` // empty means generate with Perlin noise
	Texture     string       `yaml:"texture"`
	Perlin      PerlinConfig `yaml:"perlin"`
}

// PerlinConfig parameterises the generated heightmap.
type PerlinConfig struct {
	Seed    int64   `yaml:"seed"`
	Alpha   float64 `yaml:"alpha"`
	Beta    float64 `yaml:"beta"`
	Octaves int32   `yaml:"octaves"`
	Size    int     `yaml:"size"`
	Scale   float64 `yaml:"scale"`
}

// ModelsConfig lists the externally loaded models and the cube placement.
type ModelsConfig struct {
	Vehicle VehicleConfig `yaml:"vehicle"`
	Skybox  SkyboxConfig  `yaml:"skybox"`
	Cube    CubeConfig    `yaml:"cube"`
}

// VehicleConfig places the vehicle model on the terrain.
type VehicleConfig struct {
	OBJ       string     `yaml:"obj"`
	Texture   string     `yaml:"texture"`
	Scale     float32    `yaml:"scale"`
	Translate [3]float32 `yaml:"translate"`
}

// SkyboxConfig names the skybox model and its six face textures.
type SkyboxConfig struct {
	OBJ   string      `yaml:"obj"`
	Faces SkyboxFaces `yaml:"faces"`
}

// SkyboxFaces holds one texture path per face.
type SkyboxFaces struct {
	Top    string `yaml:"top"`
	Right  string `yaml:"right"`
	Left   string `yaml:"left"`
	Front  string `yaml:"front"`
	Back   string `yaml:"back"`
	Bottom string `yaml:"bottom"`
}

// Ordered returns the face paths in top, right, left, front, back, bottom order.
func (f SkyboxFaces) Ordered() []string {
	return []string{f.Top, f.Right, f.Left, f.Front, f.Back, f.Bottom}
}

// CubeConfig controls the spinning cube.
type CubeConfig struct {
	Scale     float32    `yaml:"scale"`
	Translate [3]float32 `yaml:"translate"`
	SpinStep  float32    `yaml:"spin_step"` // radians per frame
}

// ShadersConfig holds optional on-disk overrides for the embedded programs.
type ShadersConfig struct {
	Default ShaderPaths `yaml:"default"`
	Cube    ShaderPaths `yaml:"cube"`
	Skybox  ShaderPaths `yaml:"skybox"`
}

// ShaderPaths names a vertex/fragment pair. Empty fields use the embedded source.
type ShaderPaths struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// CameraConfig holds the starting camera pose and movement tuning.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Look        [3]float32 `yaml:"look"`
	Speed       float32    `yaml:"speed"`       // world units per second
	Sensitivity float32    `yaml:"sensitivity"` // radians per pixel of mouse motion
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			Wireframe:     false,
			FOVDegrees:    45,
			Near:          0.1,
			Far:           4000,
			ScreenshotDir: "screenshots",
		},
		Terrain: TerrainConfig{
			CellsX:      250,
			CellsZ:      250,
			CellSize:    8,
			HeightScale: 0.5,
			Heightmap:   "textures/heightmap.png",
			Texture:     "textures/terrain.png",
			Perlin: PerlinConfig{
				Seed:    1,
				Alpha:   2,
				Beta:    2,
				Octaves: 3,
				Size:    256,
				Scale:   0.02,
			},
		},
		Models: ModelsConfig{
			Vehicle: VehicleConfig{
				OBJ:       "models/jeep.obj",
				Texture:   "textures/jeep.png",
				Scale:     0.5,
				Translate: [3]float32{2000, 10, 2500},
			},
			Skybox: SkyboxConfig{
				OBJ: "models/skybox.obj",
				Faces: SkyboxFaces{
					Top:    "textures/skybox/top.png",
					Right:  "textures/skybox/right.png",
					Left:   "textures/skybox/left.png",
					Front:  "textures/skybox/front.png",
					Back:   "textures/skybox/back.png",
					Bottom: "textures/skybox/bottom.png",
				},
			},
			Cube: CubeConfig{
				Scale:     10,
				Translate: [3]float32{100, 25, 0},
				SpinStep:  0.001,
			},
		},
		Camera: CameraConfig{
			Position:    [3]float32{1000, 300, 1000},
			Look:        [3]float32{1, -0.3, 1},
			Speed:       200,
			Sensitivity: 0.003,
		},
		Data: DataConfig{
			Roots: []string{"content", "."},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
