// Package render issues the per-frame draw calls for a scene.
package render

import "github.com/go-gl/mathgl/mgl32"

// Device is the slice of the graphics API the dispatcher drives.
// The GL implementation assumes its context is current on the calling thread.
type Device interface {
	SetDepthTest(enabled bool)
	SetDepthWrite(enabled bool)
	SetCullFace(enabled bool)
	SetWireframe(enabled bool)
	Clear(r, g, b, a float32)
	Viewport(width, height int)

	UseProgram(program uint32)
	UniformMat4(location int32, m mgl32.Mat4)
	UniformInt(location int32, v int32)
	BindTexture(unit uint32, texture uint32)
	DrawElements(vao uint32, count int32)

	// ReadPixels returns the back buffer as bottom-up RGBA rows.
	ReadPixels(width, height int) []byte

	DeleteProgram(program uint32)
}
