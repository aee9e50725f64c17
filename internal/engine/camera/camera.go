// Package camera provides a free-fly camera for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// FlyCamera moves freely through the scene. Orientation is kept as yaw and pitch
// so the look vector never rolls.
type FlyCamera struct {
	Pos mgl32.Vec3

	// Orientation (radians). Yaw 0 looks down -Z.
	Yaw   float32
	Pitch float32

	// Constraints
	MaxPitch float32

	// Units per second and radians per pixel of mouse motion
	Speed       float32
	Sensitivity float32
}

// New creates a camera at pos looking along look. A zero look vector faces -Z.
func New(pos, look mgl32.Vec3) *FlyCamera {
	c := &FlyCamera{
		Pos:         pos,
		MaxPitch:    1.5, // just under 90 degrees
		Speed:       200,
		Sensitivity: 0.003,
	}
	c.SetLook(look)
	return c
}

// SetLook points the camera along dir.
func (c *FlyCamera) SetLook(dir mgl32.Vec3) {
	if dir.Len() == 0 {
		c.Yaw, c.Pitch = 0, 0
		return
	}
	d := dir.Normalize()
	c.Yaw = float32(gomath.Atan2(float64(d.X()), float64(-d.Z())))
	c.Pitch = float32(gomath.Asin(float64(mgl32.Clamp(d.Y(), -1, 1))))
	c.clampPitch()
}

// Position returns the camera position in world space.
func (c *FlyCamera) Position() mgl32.Vec3 {
	return c.Pos
}

// Look returns the unit view direction.
func (c *FlyCamera) Look() mgl32.Vec3 {
	cp := gomath.Cos(float64(c.Pitch))
	return mgl32.Vec3{
		float32(cp * gomath.Sin(float64(c.Yaw))),
		float32(gomath.Sin(float64(c.Pitch))),
		float32(-cp * gomath.Cos(float64(c.Yaw))),
	}
}

// Up returns the world up vector.
func (c *FlyCamera) Up() mgl32.Vec3 {
	return mgl32.Vec3{0, 1, 0}
}

// Right returns the unit right vector on the XZ plane.
func (c *FlyCamera) Right() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(gomath.Cos(float64(c.Yaw))),
		0,
		float32(gomath.Sin(float64(c.Yaw))),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Pos, c.Pos.Add(c.Look()), c.Up())
}

// HandleMouse turns the camera by a mouse motion delta in pixels.
func (c *FlyCamera) HandleMouse(deltaX, deltaY float32) {
	c.Yaw += deltaX * c.Sensitivity
	c.Pitch -= deltaY * c.Sensitivity
	c.clampPitch()
}

// HandleMovement moves the camera. forward follows the look vector, right strafes
// and up moves along world Y. Each axis is in [-1, 1]; dt is in seconds.
func (c *FlyCamera) HandleMovement(forward, right, up, dt float32) {
	step := c.Speed * dt
	move := c.Look().Mul(forward).Add(c.Right().Mul(right)).Add(c.Up().Mul(up))
	c.Pos = c.Pos.Add(move.Mul(step))
}

func (c *FlyCamera) clampPitch() {
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
	if c.Pitch < -c.MaxPitch {
		c.Pitch = -c.MaxPitch
	}
}
