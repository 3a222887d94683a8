package rend

import (
	"fmt"

	m "github.com/go-gl/mathgl/mgl32"

	"github.com/adinfit/rend/geom"
	"github.com/adinfit/rend/scene"
)

// Context owns the default program: a model/view/projection transform,
// vertex colors multiplied by a texture, and an ambient light.
type Context struct {
	program *Program
}

// NewContext compiles the default program and binds it. All matrices start
// as identity and ambient lighting is off.
func NewContext() (*Context, error) {
	program, err := NewProgram(defaultVertexShader, defaultFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("default program: %w", err)
	}

	ctx := &Context{program: program}
	ctx.Bind()

	identity := m.Ident4()
	ctx.SetProjection(identity)
	ctx.SetView(identity)
	ctx.SetModel(identity)
	ctx.SetAmbientLight(scene.NoAmbient)
	program.SetUniformInt("tex", 0)

	return ctx, nil
}

func (ctx *Context) Program() *Program { return ctx.program }

func (ctx *Context) Bind() { ctx.program.Bind() }

func (ctx *Context) SetProjection(v geom.Mat4) { ctx.program.SetUniformMatrix("projection", v) }
func (ctx *Context) SetView(v geom.Mat4)       { ctx.program.SetUniformMatrix("view", v) }
func (ctx *Context) SetModel(v geom.Mat4)      { ctx.program.SetUniformMatrix("model", v) }

// SetAmbientLight scales every fragment by strength * color. A strength of
// zero or less turns the light off.
func (ctx *Context) SetAmbientLight(light scene.Ambient) {
	ctx.program.SetUniformVec4("ambient_light_color", light.Color.Vec4())
	ctx.program.SetUniformFloat("ambient_light_strength", light.Strength)
}

// Apply uploads the camera, projection and ambient light of a world.
func (ctx *Context) Apply(world *scene.World) {
	ctx.SetProjection(world.ProjectionMatrix)
	ctx.SetView(world.ViewMatrix)
	ctx.SetAmbientLight(world.Ambient)
}

func (ctx *Context) Delete() { ctx.program.Delete() }

const defaultVertexShader = `
#version 330 core

uniform mat4 projection;
uniform mat4 view;
uniform mat4 model;

in vec3 position;
in vec4 color;
in vec2 texcoords;

out vec4 frag_color;
out vec2 frag_texcoords;

void main() {
	gl_Position = projection * view * model * vec4(position, 1.0);

	frag_color = color;
	frag_texcoords = texcoords;
}
`

const defaultFragmentShader = `
#version 330 core

uniform sampler2D tex;

uniform vec4 ambient_light_color;
uniform float ambient_light_strength;

in vec4 frag_color;
in vec2 frag_texcoords;

out vec4 out_color;

void main() {
	vec4 obj_color = texture(tex, frag_texcoords) * frag_color;

	if (ambient_light_strength > 0.0) {
		out_color = ambient_light_strength * ambient_light_color * obj_color;
	} else {
		out_color = obj_color;
	}
}
`
