package rend

import (
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/adinfit/rend/geom"
)

// Uniform returns the location of a uniform, -1 when it does not exist.
// Locations are cached per program.
func (program *Program) Uniform(name string) int32 {
	location, ok := program.uniforms[name]
	if !ok {
		location = gl.GetUniformLocation(program.id, gl.Str(terminate(name)))
		if location < 0 {
			Logger().Debug("uniform not found", slog.String("name", name))
		}
		if program.uniforms == nil {
			program.uniforms = make(map[string]int32)
		}
		program.uniforms[name] = location
	}
	return location
}

// The setters bind the program first and ignore unknown uniforms.

func (program *Program) SetUniformFloat(name string, v float32) {
	location := program.use(name)
	if location < 0 {
		return
	}
	gl.Uniform1f(location, v)
}

func (program *Program) SetUniformInt(name string, v int32) {
	location := program.use(name)
	if location < 0 {
		return
	}
	gl.Uniform1i(location, v)
}

func (program *Program) SetUniformVec2(name string, v geom.Vec2) {
	location := program.use(name)
	if location < 0 {
		return
	}
	gl.Uniform2fv(location, 1, &v[0])
}

func (program *Program) SetUniformVec3(name string, v geom.Vec3) {
	location := program.use(name)
	if location < 0 {
		return
	}
	gl.Uniform3fv(location, 1, &v[0])
}

func (program *Program) SetUniformVec4(name string, v geom.Vec4) {
	location := program.use(name)
	if location < 0 {
		return
	}
	gl.Uniform4fv(location, 1, &v[0])
}

// SetUniformVector uploads len(values)/size vectors of size components.
func (program *Program) SetUniformVector(name string, size int, values []float32) {
	count, ok := vectorCount(size, len(values))
	if !ok {
		Logger().Warn("bad uniform vector", slog.String("name", name), slog.Int("size", size), slog.Int("len", len(values)))
		return
	}
	location := program.use(name)
	if location < 0 {
		return
	}
	switch size {
	case 1:
		gl.Uniform1fv(location, count, &values[0])
	case 2:
		gl.Uniform2fv(location, count, &values[0])
	case 3:
		gl.Uniform3fv(location, count, &values[0])
	case 4:
		gl.Uniform4fv(location, count, &values[0])
	}
}

func vectorCount(size, n int) (int32, bool) {
	if size < 1 || size > 4 || n == 0 || n%size != 0 {
		return 0, false
	}
	return int32(n / size), true
}

func (program *Program) SetUniformMatrix(name string, v geom.Mat4) {
	location := program.use(name)
	if location < 0 {
		return
	}
	gl.UniformMatrix4fv(location, 1, false, &v[0])
}

func (program *Program) use(name string) int32 {
	gl.UseProgram(program.id)
	return program.Uniform(name)
}
