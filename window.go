package rend

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwUsers counts live windows, glfw is terminated with the last one.
var glfwUsers int

func acquireGLFW() error {
	if glfwUsers == 0 {
		if err := glfw.Init(); err != nil {
			return fmt.Errorf("%w: glfw.Init failed: %w", ErrWindowCreation, err)
		}
	}
	glfwUsers++
	return nil
}

func releaseGLFW() {
	glfwUsers--
	if glfwUsers == 0 {
		glfw.Terminate()
	}
}

// Window is an OS window with an OpenGL context.
type Window struct {
	Title string

	window *glfw.Window
	events eventQueue

	width, height int
	aspect        float32
}

// NewWindow opens a window, makes its context current and loads OpenGL.
func NewWindow(title string, width, height int, opts ...WindowOption) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrWindowCreation, width, height)
	}
	o := applyWindowOptions(opts)

	if err := acquireGLFW(); err != nil {
		return nil, err
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfwBool(o.resizable))
	glfw.WindowHint(glfw.Visible, glfwBool(o.visible))
	glfw.WindowHint(glfw.Samples, o.samples)

	glfw.WindowHint(glfw.ContextVersionMajor, o.contextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, o.contextMinor)

	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		releaseGLFW()
		return nil, fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		releaseGLFW()
		return nil, fmt.Errorf("%w: gl.Init failed: %w", ErrContext, err)
	}

	if o.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{
		Title:  title,
		window: window,
	}
	w.width, w.height = window.GetFramebufferSize()
	w.aspect = aspectOf(w.width, w.height, 1)
	gl.Viewport(0, 0, int32(w.width), int32(w.height))
	w.setCallbacks()

	Logger().Info("window created",
		slog.String("title", title),
		slog.Int("width", w.width),
		slog.Int("height", w.height),
		slog.String("gl", gl.GoStr(gl.GetString(gl.VERSION))),
		slog.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	return w, nil
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

func (w *Window) setCallbacks() {
	w.window.SetCloseCallback(func(_ *glfw.Window) {
		w.events.push(CloseEvent{})
	})
	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.events.push(ResizeEvent{Width: width, Height: height})
	})
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		w.events.push(KeyEvent{Key: key, Action: action, Mods: mods})
	})
	w.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		w.events.push(MouseButtonEvent{Button: button, Action: action, Mods: mods})
	})
	w.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.events.push(CursorEvent{X: x, Y: y})
	})
	w.window.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		w.events.push(ScrollEvent{DX: dx, DY: dy})
	})
}

// HandleEvents polls the window system and calls fn for each pending event.
// Resizes update the viewport before fn sees them.
func (w *Window) HandleEvents(fn func(Event)) {
	glfw.PollEvents()
	w.events.drain(func(ev Event) {
		if resize, ok := ev.(ResizeEvent); ok {
			w.resize(resize.Width, resize.Height)
		}
		if fn != nil {
			fn(ev)
		}
	})
}

func (w *Window) resize(width, height int) {
	if width == w.width && height == w.height {
		return
	}
	w.width, w.height = width, height
	w.aspect = aspectOf(width, height, w.aspect)
	gl.Viewport(0, 0, int32(width), int32(height))
	Logger().Debug("viewport resized", slog.Int("width", width), slog.Int("height", height))
}

// ShouldClose reports whether the window has been asked to close.
func (w *Window) ShouldClose() bool { return w.window.ShouldClose() }

// Close asks the render loop to stop, the window stays valid until Destroy.
func (w *Window) Close() { w.window.SetShouldClose(true) }

func (w *Window) SwapBuffers() { w.window.SwapBuffers() }

// Size is the framebuffer size in pixels.
func (w *Window) Size() (width, height int) { return w.width, w.height }

// Aspect is width/height of the framebuffer. A minimized window keeps the
// last non-zero aspect.
func (w *Window) Aspect() float32 { return w.aspect }

func aspectOf(width, height int, previous float32) float32 {
	if width <= 0 || height <= 0 {
		return previous
	}
	return float32(width) / float32(height)
}

// Time is the number of seconds since the window system was initialized.
func (w *Window) Time() float64 { return glfw.GetTime() }

func (w *Window) SetTitle(title string) {
	w.Title = title
	w.window.SetTitle(title)
}

// GLFW exposes the underlying window.
func (w *Window) GLFW() *glfw.Window { return w.window }

// Destroy closes the window and releases its context.
func (w *Window) Destroy() {
	if w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
	// textures die with the context
	blank = nil
	releaseGLFW()
}
