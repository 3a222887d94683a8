package rend

import (
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program is a linked vertex and fragment shader pair.
type Program struct {
	id uint32

	uniforms map[string]int32
}

// NewProgram compiles and links a vertex and a fragment shader.
// Failures are reported as *ShaderError.
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	return NewProgramWithGeometry(vertexSource, fragmentSource, "")
}

// NewProgramWithGeometry is NewProgram with an optional geometry stage.
func NewProgramWithGeometry(vertexSource, fragmentSource, geometrySource string) (*Program, error) {
	stages := []struct {
		stage  ShaderStage
		kind   uint32
		source string
	}{
		{StageVertex, gl.VERTEX_SHADER, vertexSource},
		{StageFragment, gl.FRAGMENT_SHADER, fragmentSource},
		{StageGeometry, gl.GEOMETRY_SHADER, geometrySource},
	}

	var shaders []uint32
	defer func() {
		for _, shader := range shaders {
			gl.DeleteShader(shader)
		}
	}()

	for _, s := range stages {
		if s.stage == StageGeometry && s.source == "" {
			continue
		}
		shader, err := compileShader(s.source, s.kind, s.stage)
		if err != nil {
			return nil, err
		}
		shaders = append(shaders, shader)
	}

	program := gl.CreateProgram()
	if program == 0 {
		return nil, &ShaderError{Stage: StageLink, Log: "unable to create program object"}
	}

	for _, shader := range shaders {
		gl.AttachShader(program, shader)
	}
	bindDefaultAttribs(program)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return nil, &ShaderError{Stage: StageLink, Log: trimInfoLog(log)}
	}

	for _, shader := range shaders {
		gl.DetachShader(program, shader)
	}

	Logger().Debug("program linked", slog.Uint64("id", uint64(program)), slog.Int("stages", len(shaders)))

	return &Program{
		id:       program,
		uniforms: make(map[string]int32),
	}, nil
}

func compileShader(source string, shaderType uint32, stage ShaderStage) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	if shader == 0 {
		return 0, &ShaderError{Stage: stage, Log: "unable to create shader object"}
	}

	csources, free := gl.Strs(terminate(source))
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, &ShaderError{Stage: stage, Log: trimInfoLog(log)}
	}

	return shader, nil
}

// terminate appends the NUL the C API expects, unless it is already there.
func terminate(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// bindDefaultAttribs pins the mesh attribute names to the locations
// Mesh uses, so any program following the naming works with any mesh.
func bindDefaultAttribs(program uint32) {
	for _, attrib := range meshAttribs {
		gl.BindAttribLocation(program, attrib.location, gl.Str(terminate(attrib.name)))
	}
}

func (program *Program) ID() uint32 { return program.id }

func (program *Program) Bind()   { gl.UseProgram(program.id) }
func (program *Program) Unbind() { gl.UseProgram(0) }

// Delete releases the program, it must not be used afterwards.
func (program *Program) Delete() {
	if program.id == 0 {
		return
	}
	gl.DeleteProgram(program.id)
	program.id = 0
	program.uniforms = nil
}

// AttribLocation looks up a vertex attribute, ok is false when the linker
// removed or never saw it.
func (program *Program) AttribLocation(name string) (location uint32, ok bool) {
	loc := gl.GetAttribLocation(program.id, gl.Str(terminate(name)))
	if loc < 0 {
		return 0, false
	}
	return uint32(loc), true
}
