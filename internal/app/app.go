// Package app wires the window, scene and renderer into the main loop.
package app

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-scene/internal/assets"
	"github.com/Faultbox/terrain-scene/internal/config"
	"github.com/Faultbox/terrain-scene/internal/engine/camera"
	"github.com/Faultbox/terrain-scene/internal/engine/debug"
	"github.com/Faultbox/terrain-scene/internal/engine/gpu"
	"github.com/Faultbox/terrain-scene/internal/engine/input"
	"github.com/Faultbox/terrain-scene/internal/engine/render"
	"github.com/Faultbox/terrain-scene/internal/engine/scene"
	"github.com/Faultbox/terrain-scene/internal/engine/shader"
	"github.com/Faultbox/terrain-scene/internal/engine/window"
	"github.com/Faultbox/terrain-scene/internal/logger"
)

const windowTitle = "Terrain Scene"

// App is the running application.
type App struct {
	cfg     *config.Config
	running atomic.Bool

	window      *window.Window
	assets      *assets.Manager
	dispatcher  *render.Dispatcher
	scene       *scene.Scene
	camera      *camera.FlyCamera
	input       *input.Input
	screenshots *debug.Screenshots

	width, height int
}

// New runs the initialization phase: window and context, shaders, and the scene.
// Any failure releases what was created and returns an error; the frame loop is never entered.
// Must be called on the OS thread that will run the loop.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The device needs the context created by the window.
	dev, err := render.NewGLDevice()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create render device: %w", err)
	}
	a.dispatcher = render.NewDispatcher(dev, RenderConfig(cfg))

	a.assets = assets.NewManager(cfg.Data.Roots...)

	if err := a.buildPrograms(); err != nil {
		a.Close()
		return nil, err
	}

	a.scene, err = scene.NewBuilder(SceneConfig(cfg), a.assets, gpu.GL{}).Build()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	a.camera = NewCamera(cfg.Camera)
	a.input = input.New()
	a.screenshots = debug.NewScreenshots(cfg.Graphics.ScreenshotDir, "terrainscene")

	a.width, a.height = a.window.DrawableSize()
	a.dispatcher.Resize(a.width, a.height)

	logger.Info("initialized", zap.Int("models", len(a.scene.Models)), zap.Int("meshes", a.scene.MeshCount()))
	return a, nil
}

func (a *App) buildPrograms() error {
	programs := []struct {
		key   render.ProgramKey
		base  shader.Source
		paths config.ShaderPaths
	}{
		{render.ProgramDefault, shader.Default, a.cfg.Shaders.Default},
		{render.ProgramCube, shader.Cube, a.cfg.Shaders.Cube},
		{render.ProgramSkybox, shader.Skybox, a.cfg.Shaders.Skybox},
	}
	for _, p := range programs {
		src, err := shader.Override(a.assets, p.base, p.paths.Vertex, p.paths.Fragment)
		if err != nil {
			return fmt.Errorf("%s program: %w", p.key, err)
		}
		prog, err := shader.Build(p.key.String(), src)
		if err != nil {
			return fmt.Errorf("%s program: %w", p.key, err)
		}
		a.dispatcher.Register(p.key, prog)
	}
	return nil
}

// Run drives the frame loop until the window closes or Stop is called.
func (a *App) Run() error {
	a.running.Store(true)

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for a.running.Load() {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		frame := a.input.Update()
		if frame.Quit {
			break
		}
		if frame.Resized {
			// Window events carry window coordinates; the viewport needs pixels.
			a.width, a.height = a.window.DrawableSize()
			a.dispatcher.Resize(a.width, a.height)
		}
		if frame.ToggleWireframe {
			logger.Debug("wireframe toggled", zap.Bool("on", a.dispatcher.ToggleWireframe()))
		}

		a.camera.HandleMouse(frame.MouseDX, frame.MouseDY)
		forward, right, up := a.input.Movement()
		a.camera.HandleMovement(forward, right, up, float32(dt))

		if err := a.dispatcher.Render(a.scene, a.camera, a.width, a.height); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if frame.Screenshot {
			a.screenshot()
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// screenshot saves the frame just drawn. Failures are logged and never stop the loop.
func (a *App) screenshot() {
	path, err := a.screenshots.Save(a.dispatcher.ReadPixels(a.width, a.height), a.width, a.height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Stop makes Run return after the current frame. Safe to call from any goroutine.
func (a *App) Stop() {
	a.running.Store(false)
}

// Close releases GPU resources, assets and the window. Safe to call on a partially built App.
func (a *App) Close() {
	logger.Info("closing")

	if a.scene != nil {
		a.scene.Destroy()
		a.scene = nil
	}
	if a.dispatcher != nil {
		a.dispatcher.Destroy()
		a.dispatcher = nil
	}
	if a.assets != nil {
		a.assets.Close()
		a.assets = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}

// SceneConfig maps the application config onto scene construction options.
func SceneConfig(cfg *config.Config) scene.Config {
	t := cfg.Terrain
	m := cfg.Models
	sc := scene.DefaultConfig()

	sc.Terrain.CellsX = t.CellsX
	sc.Terrain.CellsZ = t.CellsZ
	sc.Terrain.CellSize = t.CellSize
	sc.Terrain.HeightScale = t.HeightScale
	sc.Heightmap = t.Heightmap
	sc.Noise.Seed = t.Perlin.Seed
	sc.Noise.Alpha = t.Perlin.Alpha
	sc.Noise.Beta = t.Perlin.Beta
	sc.Noise.Octaves = t.Perlin.Octaves
	sc.Noise.Size = t.Perlin.Size
	sc.Noise.Scale = t.Perlin.Scale
	sc.TerrainTex = t.Texture

	sc.VehicleOBJ = m.Vehicle.OBJ
	sc.VehicleTex = m.Vehicle.Texture
	sc.Vehicle = scene.Placement{Scale: m.Vehicle.Scale, Translate: mgl32.Vec3(m.Vehicle.Translate)}

	sc.SkyboxOBJ = m.Skybox.OBJ
	sc.SkyboxFaces = m.Skybox.Faces.Ordered()

	sc.Cube = scene.Placement{Scale: m.Cube.Scale, Translate: mgl32.Vec3(m.Cube.Translate)}
	sc.CubeSpinStep = float64(m.Cube.SpinStep)
	return sc
}

// RenderConfig maps the graphics section onto dispatcher options.
func RenderConfig(cfg *config.Config) render.Config {
	rc := render.DefaultConfig()
	g := cfg.Graphics
	if g.FOVDegrees > 0 {
		rc.FOVDegrees = g.FOVDegrees
	}
	if g.Near > 0 {
		rc.Near = g.Near
	}
	if g.Far > 0 {
		rc.Far = g.Far
	}
	rc.Wireframe = g.Wireframe
	return rc
}

// NewCamera creates the free-fly camera from its configured pose.
func NewCamera(cfg config.CameraConfig) *camera.FlyCamera {
	c := camera.New(mgl32.Vec3(cfg.Position), mgl32.Vec3(cfg.Look))
	if cfg.Speed > 0 {
		c.Speed = cfg.Speed
	}
	if cfg.Sensitivity > 0 {
		c.Sensitivity = cfg.Sensitivity
	}
	return c
}
