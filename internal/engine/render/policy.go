package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/terrain-scene/internal/engine/scene"
)

// ProgramKey names a registered shader program.
type ProgramKey int

const (
	ProgramDefault ProgramKey = iota
	ProgramCube
	ProgramSkybox
)

func (k ProgramKey) String() string {
	switch k {
	case ProgramDefault:
		return "default"
	case ProgramCube:
		return "cube"
	case ProgramSkybox:
		return "skybox"
	default:
		return "unknown"
	}
}

// ViewMode selects which part of the camera view applies to a model.
type ViewMode int

const (
	// ViewFull uses the complete view matrix.
	ViewFull ViewMode = iota
	// ViewRotationOnly strips the translation so the model stays centred on the camera.
	ViewRotationOnly
)

// TransformMode selects how a model matrix is derived.
type TransformMode int

const (
	TransformIdentity TransformMode = iota
	TransformPlaced                 // scale(S) * translate(T)
	TransformSpinning               // scale(S) * translate(T) * rotate(spin)
)

// Policy is the draw state for one model category.
type Policy struct {
	Program   ProgramKey
	Depth     bool // depth test and depth write
	View      ViewMode
	Transform TransformMode
}

var policies = map[scene.Category]Policy{
	scene.CategoryDefault: {Program: ProgramDefault, Depth: true, View: ViewFull, Transform: TransformIdentity},
	scene.CategoryVehicle: {Program: ProgramDefault, Depth: true, View: ViewFull, Transform: TransformPlaced},
	scene.CategorySkybox:  {Program: ProgramSkybox, Depth: false, View: ViewRotationOnly, Transform: TransformIdentity},
	scene.CategoryCube:    {Program: ProgramCube, Depth: true, View: ViewFull, Transform: TransformSpinning},
}

// PolicyFor returns the draw policy for a category. Unknown categories draw like the terrain.
func PolicyFor(c scene.Category) Policy {
	if p, ok := policies[c]; ok {
		return p
	}
	return policies[scene.CategoryDefault]
}

// viewMatrix applies a view mode to the camera view.
func viewMatrix(view mgl32.Mat4, mode ViewMode) mgl32.Mat4 {
	if mode == ViewRotationOnly {
		return view.Mat3().Mat4()
	}
	return view
}

// modelMatrix computes a model's transform for this frame, advancing its spin if it has one.
func modelMatrix(m *scene.Model, mode TransformMode) mgl32.Mat4 {
	switch mode {
	case TransformPlaced:
		return m.Placement.Matrix()
	case TransformSpinning:
		base := m.Placement.Matrix()
		if m.Spin == nil {
			return base
		}
		angle, axis := m.Spin.Advance()
		return base.Mul4(mgl32.HomogRotate3D(angle, axis))
	default:
		return mgl32.Ident4()
	}
}
