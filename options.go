package rend

// WindowOption configures a Window during creation.
//
//	window, err := rend.NewWindow("Scene", 1280, 720,
//		rend.WithVSync(false),
//		rend.WithSamples(4),
//	)
type WindowOption func(*windowOptions)

type windowOptions struct {
	vsync        bool
	resizable    bool
	visible      bool
	samples      int
	contextMajor int
	contextMinor int
}

func defaultWindowOptions() windowOptions {
	return windowOptions{
		vsync:        true,
		resizable:    true,
		visible:      true,
		samples:      2,
		contextMajor: 4,
		contextMinor: 1,
	}
}

func applyWindowOptions(opts []WindowOption) windowOptions {
	o := defaultWindowOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithVSync waits for the vertical blank when swapping buffers.
func WithVSync(enabled bool) WindowOption {
	return func(o *windowOptions) { o.vsync = enabled }
}

func WithResizable(resizable bool) WindowOption {
	return func(o *windowOptions) { o.resizable = resizable }
}

// WithSamples sets the number of multisampling samples, 0 disables it.
func WithSamples(samples int) WindowOption {
	return func(o *windowOptions) {
		if samples < 0 {
			samples = 0
		}
		o.samples = samples
	}
}

// WithContextVersion requests a specific OpenGL core context. The bundled
// bindings need at least 4.1, so lower versions are raised to it.
func WithContextVersion(major, minor int) WindowOption {
	return func(o *windowOptions) {
		if major < 4 || major == 4 && minor < 1 {
			major, minor = 4, 1
		}
		o.contextMajor, o.contextMinor = major, minor
	}
}

// WithHidden creates the window without showing it.
func WithHidden() WindowOption {
	return func(o *windowOptions) { o.visible = false }
}
