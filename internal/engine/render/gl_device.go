package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-scene/internal/logger"
)

// GLDevice implements Device on OpenGL 4.1 core.
type GLDevice struct{}

// NewGLDevice loads GL function pointers and logs driver information.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func NewGLDevice() (*GLDevice, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.DepthFunc(gl.LESS)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	return &GLDevice{}, nil
}

func setCap(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// SetDepthTest implements Device.
func (*GLDevice) SetDepthTest(enabled bool) { setCap(gl.DEPTH_TEST, enabled) }

// SetDepthWrite implements Device.
func (*GLDevice) SetDepthWrite(enabled bool) { gl.DepthMask(enabled) }

// SetCullFace implements Device.
func (*GLDevice) SetCullFace(enabled bool) { setCap(gl.CULL_FACE, enabled) }

// SetWireframe implements Device.
func (*GLDevice) SetWireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Clear implements Device.
func (*GLDevice) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Viewport implements Device.
func (*GLDevice) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// UseProgram implements Device.
func (*GLDevice) UseProgram(program uint32) { gl.UseProgram(program) }

// UniformMat4 implements Device.
func (*GLDevice) UniformMat4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

// UniformInt implements Device.
func (*GLDevice) UniformInt(location int32, v int32) { gl.Uniform1i(location, v) }

// BindTexture implements Device.
func (*GLDevice) BindTexture(unit uint32, texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

// DrawElements implements Device.
func (*GLDevice) DrawElements(vao uint32, count int32) {
	gl.BindVertexArray(vao)
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// ReadPixels implements Device.
func (*GLDevice) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// DeleteProgram implements Device.
func (*GLDevice) DeleteProgram(program uint32) { gl.DeleteProgram(program) }
