package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-scene/internal/engine/scene"
	"github.com/Faultbox/terrain-scene/internal/engine/shader"
	"github.com/Faultbox/terrain-scene/internal/logger"
)

// ErrUnknownProgram is returned when a model's policy names a program that was never registered.
var ErrUnknownProgram = errors.New("unknown shader program")

// Camera exposes the pose the view matrix is built from.
type Camera interface {
	Position() mgl32.Vec3
	Look() mgl32.Vec3
	Up() mgl32.Vec3
}

// Config holds projection and state settings.
type Config struct {
	FOVDegrees float32
	Near       float32
	Far        float32
	Wireframe  bool
	ClearColor mgl32.Vec4
}

// DefaultConfig returns a 45 degree projection from 0.1 to 4000 with a black clear colour.
func DefaultConfig() Config {
	return Config{FOVDegrees: 45, Near: 0.1, Far: 4000}
}

// Dispatcher draws a scene once per frame, choosing program, depth state and transforms
// from each model's category.
type Dispatcher struct {
	dev      Device
	cfg      Config
	programs map[ProgramKey]*shader.Program
	log      *zap.Logger
}

// NewDispatcher creates a dispatcher driving dev.
func NewDispatcher(dev Device, cfg Config) *Dispatcher {
	return &Dispatcher{
		dev:      dev,
		cfg:      cfg,
		programs: make(map[ProgramKey]*shader.Program),
		log:      logger.Named("render"),
	}
}

// Register makes a linked program available under key.
func (d *Dispatcher) Register(key ProgramKey, p *shader.Program) {
	d.programs[key] = p
	d.log.Debug("program registered", zap.Stringer("key", key), zap.Uint32("id", p.ID))
}

// Wireframe reports whether polygons are drawn as lines.
func (d *Dispatcher) Wireframe() bool { return d.cfg.Wireframe }

// SetWireframe switches between filled and line polygons from the next frame.
func (d *Dispatcher) SetWireframe(on bool) { d.cfg.Wireframe = on }

// ToggleWireframe flips the polygon mode and returns the new state.
func (d *Dispatcher) ToggleWireframe() bool {
	d.cfg.Wireframe = !d.cfg.Wireframe
	return d.cfg.Wireframe
}

// Projection returns the perspective matrix for a viewport.
func (d *Dispatcher) Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(d.cfg.FOVDegrees), aspect, d.cfg.Near, d.cfg.Far)
}

// Render draws every model of s in order. It is synchronous and must run on the thread that
// owns the graphics context. Spinning models advance one step per call.
func (d *Dispatcher) Render(s *scene.Scene, cam Camera, width, height int) error {
	d.dev.SetDepthTest(true)
	d.dev.SetDepthWrite(true)
	d.dev.SetCullFace(true)
	d.dev.SetWireframe(d.cfg.Wireframe)
	c := d.cfg.ClearColor
	d.dev.Clear(c[0], c[1], c[2], c[3])

	projection := d.Projection(width, height)
	pos := cam.Position()
	view := mgl32.LookAtV(pos, pos.Add(cam.Look()), cam.Up())

	for _, m := range s.Models {
		if err := d.drawModel(m, projection, view); err != nil {
			// Leave the pipeline in its default state for whoever draws next.
			d.dev.SetDepthTest(true)
			d.dev.SetDepthWrite(true)
			return err
		}
	}

	d.dev.SetDepthTest(true)
	d.dev.SetDepthWrite(true)
	return nil
}

func (d *Dispatcher) drawModel(m *scene.Model, projection, view mgl32.Mat4) error {
	policy := PolicyFor(m.Category)
	prog, ok := d.programs[policy.Program]
	if !ok {
		return fmt.Errorf("%w: %s for model %q", ErrUnknownProgram, policy.Program, m.Name)
	}

	d.dev.SetDepthTest(policy.Depth)
	d.dev.SetDepthWrite(policy.Depth)
	d.dev.UseProgram(prog.ID)

	combined := projection.Mul4(viewMatrix(view, policy.View))
	model := modelMatrix(m, policy.Transform)

	for _, mesh := range m.Meshes {
		if mesh.GPU == nil {
			return fmt.Errorf("model %q has a released mesh", m.Name)
		}
		d.dev.UniformMat4(prog.Combined, combined)
		d.dev.UniformMat4(prog.Model, model)
		d.dev.BindTexture(0, mesh.TextureID())
		d.dev.UniformInt(prog.Sampler, 0)
		d.dev.DrawElements(mesh.GPU.VAO, mesh.GPU.Count)
	}
	return nil
}

// Resize updates the viewport after the drawable size changes.
func (d *Dispatcher) Resize(width, height int) {
	d.dev.Viewport(width, height)
	d.log.Debug("viewport resized", zap.Int("width", width), zap.Int("height", height))
}

// ReadPixels captures the frame just drawn. Call it before the buffers are swapped.
func (d *Dispatcher) ReadPixels(width, height int) []byte {
	return d.dev.ReadPixels(width, height)
}

// Destroy releases every registered program.
func (d *Dispatcher) Destroy() {
	for key, p := range d.programs {
		if p.ID != 0 {
			d.dev.DeleteProgram(p.ID)
			p.ID = 0
		}
		delete(d.programs, key)
	}
}
