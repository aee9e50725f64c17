// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-scene/internal/logger"
)

// Program is a linked program with the locations of the shared uniforms.
// A location of -1 means the uniform is absent or optimised away; GL ignores writes to it.
type Program struct {
	Name     string
	ID       uint32
	Combined int32
	Model    int32
	Sampler  int32
}

// Build compiles and links src and looks up the shared uniforms.
// Missing uniforms are reported once here rather than silently every frame.
func Build(name string, src Source) (*Program, error) {
	id, err := CompileProgram(src.Vertex, src.Fragment)
	if err != nil {
		return nil, fmt.Errorf("%s program: %w", name, err)
	}

	p := &Program{
		Name:     name,
		ID:       id,
		Combined: GetUniform(id, UniformCombined),
		Model:    GetUniform(id, UniformModel),
		Sampler:  GetUniform(id, UniformSampler),
	}

	log := logger.Named("shader")
	for uniform, loc := range map[string]int32{
		UniformCombined: p.Combined,
		UniformModel:    p.Model,
		UniformSampler:  p.Sampler,
	} {
		if loc < 0 {
			log.Warn("uniform not found", zap.String("program", name), zap.String("uniform", uniform))
		}
	}
	log.Debug("program linked", zap.String("program", name), zap.Uint32("id", id))
	return p, nil
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", msg)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", stage, msg)
	}

	return shader, nil
}

func infoLog(obj uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var logLen int32
	getiv(obj, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return "(no info log)"
	}
	buf := make([]byte, logLen)
	getLog(obj, logLen, nil, &buf[0])
	return string(buf[:len(buf)-1])
}

// GetUniform returns the uniform location for the given name, or -1.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
