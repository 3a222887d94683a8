package rend

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrWindowCreation = errors.New("failed to create window")
	ErrContext        = errors.New("failed to initialize OpenGL context")
	ErrShader         = errors.New("shader error")
	ErrTexture        = errors.New("invalid texture")
	ErrMesh           = errors.New("invalid mesh")
)

// ShaderStage names the step that failed while building a program.
type ShaderStage string

const (
	StageVertex   ShaderStage = "vertex"
	StageFragment ShaderStage = "fragment"
	StageGeometry ShaderStage = "geometry"
	StageLink     ShaderStage = "link"
)

// ShaderError carries the driver info log of a failed compile or link.
type ShaderError struct {
	Stage ShaderStage
	Log   string
}

func (err *ShaderError) Error() string {
	if err.Stage == StageLink {
		return fmt.Sprintf("failed to link program: %v", err.Log)
	}
	return fmt.Sprintf("failed to compile %v shader: %v", err.Stage, err.Log)
}

func (err *ShaderError) Is(target error) bool { return target == ErrShader }

// trimInfoLog drops the terminating NULs and trailing whitespace drivers
// leave in info logs.
func trimInfoLog(log string) string {
	if i := strings.IndexByte(log, 0); i >= 0 {
		log = log[:i]
	}
	log = strings.TrimRight(log, " \t\r\n")
	if log == "" {
		return "no info log"
	}
	return log
}

// GLError is an error code reported by glGetError.
type GLError uint32

func (code GLError) Error() string {
	if name, ok := glErrorNames[uint32(code)]; ok {
		return "gl: " + name
	}
	return fmt.Sprintf("gl: error 0x%04X", uint32(code))
}

var glErrorNames = map[uint32]string{
	0x0500: "invalid enum",
	0x0501: "invalid value",
	0x0502: "invalid operation",
	0x0503: "stack overflow",
	0x0504: "stack underflow",
	0x0505: "out of memory",
	0x0506: "invalid framebuffer operation",
}
