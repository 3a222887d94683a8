package rend

import (
	"errors"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/adinfit/rend/geom"
)

// SetClearColor sets the color Clear fills the screen with.
func SetClearColor(c geom.Color) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

// Clear clears the color and depth buffers and binds the blank texture, so
// untextured meshes render with their vertex colors.
func Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	BlankTexture().Bind(0)
}

// EnableDepthTest keeps the nearest fragment.
func EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
}

func EnableCulling() {
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
}

// EnableBlending enables standard alpha blending.
func EnableBlending() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// SetWireframe switches between line and filled polygon rasterization.
func SetWireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// maxQueuedErrors bounds CheckError in case a broken context keeps
// reporting the same error.
const maxQueuedErrors = 16

// CheckError drains the OpenGL error queue and returns what it found.
func CheckError() error {
	var errs []error
	for i := 0; i < maxQueuedErrors; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		err := GLError(code)
		Logger().Warn("opengl error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
