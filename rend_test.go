package rend

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"testing"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adinfit/rend/geom"
)

func TestWindowOptions(t *testing.T) {
	o := applyWindowOptions(nil)
	assert.Equal(t, defaultWindowOptions(), o)
	assert.True(t, o.vsync)
	assert.Equal(t, 4, o.contextMajor)
	assert.Equal(t, 1, o.contextMinor)

	o = applyWindowOptions([]WindowOption{
		WithVSync(false),
		WithResizable(false),
		WithSamples(-3),
		WithHidden(),
		nil,
		WithContextVersion(3, 3),
	})
	assert.False(t, o.vsync)
	assert.False(t, o.resizable)
	assert.False(t, o.visible)
	assert.Zero(t, o.samples)
	assert.Equal(t, 4, o.contextMajor)
	assert.Equal(t, 1, o.contextMinor)

	o = applyWindowOptions([]WindowOption{WithContextVersion(4, 6), WithSamples(8)})
	assert.Equal(t, 6, o.contextMinor)
	assert.Equal(t, 8, o.samples)
}

func TestEventQueueDrainsInOrder(t *testing.T) {
	var queue eventQueue
	queue.push(ResizeEvent{Width: 10, Height: 20})
	queue.push(KeyEvent{Key: KeyEscape, Action: Press})
	queue.push(CloseEvent{})

	var got []Event
	queue.drain(func(ev Event) { got = append(got, ev) })
	assert.Equal(t, []Event{
		ResizeEvent{Width: 10, Height: 20},
		KeyEvent{Key: KeyEscape, Action: Press},
		CloseEvent{},
	}, got)
	assert.Zero(t, queue.len())

	queue.drain(func(ev Event) { t.Errorf("unexpected event %#v", ev) })
}

func TestEventQueueDeliversEventsPushedWhileDraining(t *testing.T) {
	var queue eventQueue
	queue.push(CursorEvent{X: 1, Y: 2})

	var got []Event
	queue.drain(func(ev Event) {
		got = append(got, ev)
		if _, ok := ev.(CursorEvent); ok {
			queue.push(ScrollEvent{DY: 1})
		}
	})
	assert.Equal(t, []Event{CursorEvent{X: 1, Y: 2}, ScrollEvent{DY: 1}}, got)
	assert.Zero(t, queue.len())
}

func TestEventQueueNilHandler(t *testing.T) {
	var queue eventQueue
	queue.push(CloseEvent{})
	queue.drain(nil)
	assert.Zero(t, queue.len())
}

func TestShaderError(t *testing.T) {
	var err error = &ShaderError{Stage: StageFragment, Log: "0:3: syntax error"}
	assert.True(t, errors.Is(err, ErrShader))
	assert.Equal(t, "failed to compile fragment shader: 0:3: syntax error", err.Error())

	err = &ShaderError{Stage: StageLink, Log: "missing main"}
	assert.Equal(t, "failed to link program: missing main", err.Error())

	var shaderErr *ShaderError
	require.True(t, errors.As(errors.Join(errors.New("other"), err), &shaderErr))
	assert.Equal(t, StageLink, shaderErr.Stage)
}

func TestTrimInfoLog(t *testing.T) {
	assert.Equal(t, "ERROR: 0:1", trimInfoLog("ERROR: 0:1\n\x00\x00"))
	assert.Equal(t, "no info log", trimInfoLog(strings.Repeat("\x00", 4)))
	assert.Equal(t, "no info log", trimInfoLog(""))
}

func TestTerminate(t *testing.T) {
	assert.Equal(t, "name\x00", terminate("name"))
	assert.Equal(t, "name\x00", terminate("name\x00"))
}

func TestGLError(t *testing.T) {
	assert.Equal(t, "gl: invalid operation", GLError(gl.INVALID_OPERATION).Error())
	assert.Equal(t, "gl: error 0x1234", GLError(0x1234).Error())
}

func TestPlanMesh(t *testing.T) {
	plan, err := planMesh(geom.Triangles, 3, nil)
	require.NoError(t, err)
	assert.False(t, plan.indexed)
	assert.EqualValues(t, 3, plan.count)
	assert.Equal(t, geom.Triangles, plan.mode)

	plan, err = planMesh(geom.Lines, 4, []uint32{0, 1, 1, 2, 2, 3})
	require.NoError(t, err)
	assert.True(t, plan.indexed)
	assert.EqualValues(t, 6, plan.count)
	assert.Equal(t, geom.Lines, plan.mode)
}

func TestPlanMeshQuads(t *testing.T) {
	plan, err := planMesh(geom.Quads, 4, nil)
	require.NoError(t, err)
	assert.True(t, plan.indexed)
	assert.Equal(t, geom.Triangles, plan.mode)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, plan.indices)
	assert.EqualValues(t, 6, plan.count)

	box := geom.Box(geom.Vec3{1, 1, 1}, geom.White)
	plan, err = planMesh(box.Primitive, len(box.Vertices), box.Indices)
	require.NoError(t, err)
	assert.EqualValues(t, 36, plan.count)
}

func TestPlanMeshErrors(t *testing.T) {
	cases := []struct {
		name      string
		primitive geom.Primitive
		vertices  int
		indices   []uint32
	}{
		{"no vertices", geom.Triangles, 0, nil},
		{"partial triangle", geom.Triangles, 4, nil},
		{"partial indexed triangle", geom.Triangles, 4, []uint32{0, 1}},
		{"index out of range", geom.Triangles, 3, []uint32{0, 1, 3}},
		{"partial quad", geom.Quads, 6, nil},
		{"unknown primitive", geom.Primitive(99), 3, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := planMesh(tc.primitive, tc.vertices, tc.indices)
			assert.ErrorIs(t, err, ErrMesh)
		})
	}
}

func TestGLMode(t *testing.T) {
	assert.EqualValues(t, gl.POINTS, glMode(geom.Points))
	assert.EqualValues(t, gl.LINE_LOOP, glMode(geom.LineLoop))
	assert.EqualValues(t, gl.TRIANGLE_FAN, glMode(geom.TriangleFan))
	assert.EqualValues(t, gl.TRIANGLES, glMode(geom.Triangles))
}

func TestMeshAttribsMatchVertex(t *testing.T) {
	end := 0
	for i, attrib := range meshAttribs {
		assert.EqualValues(t, i, attrib.location)
		assert.Equal(t, end, attrib.offset, attrib.name)
		end = attrib.offset + int(attrib.size)*4
	}
	assert.EqualValues(t, geom.VertexStride, end)
}

func TestVectorCount(t *testing.T) {
	n, ok := vectorCount(4, 8)
	assert.True(t, ok)
	assert.EqualValues(t, 2, n)

	_, ok = vectorCount(3, 4)
	assert.False(t, ok)
	_, ok = vectorCount(5, 5)
	assert.False(t, ok)
	_, ok = vectorCount(2, 0)
	assert.False(t, ok)
}

func TestCheckPixels(t *testing.T) {
	assert.NoError(t, checkPixels(2, 2, make([]byte, 16)))
	assert.ErrorIs(t, checkPixels(2, 2, make([]byte, 15)), ErrTexture)
	assert.ErrorIs(t, checkPixels(0, 2, nil), ErrTexture)
	assert.ErrorIs(t, checkPixels(2, -1, nil), ErrTexture)
}

func TestToRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.Set(2, 1, color.NRGBA{R: 0xFF, A: 0xFF})

	// a sub image keeps its offset in the parent, the texture must not
	sub := src.SubImage(image.Rect(2, 1, 4, 3))
	rgba, err := toRGBA(sub)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), rgba.Rect)
	assert.Equal(t, 2*4, rgba.Stride)
	assert.Equal(t, color.RGBA{R: 0xFF, A: 0xFF}, rgba.RGBAAt(0, 0))
	require.NoError(t, checkPixels(rgba.Rect.Dx(), rgba.Rect.Dy(), rgba.Pix))

	same := image.NewRGBA(image.Rect(0, 0, 3, 3))
	got, err := toRGBA(same)
	require.NoError(t, err)
	assert.Same(t, same, got)

	_, err = toRGBA(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, ErrTexture)
}

func TestFrameTimer(t *testing.T) {
	timer := NewFrameTimer()
	timer.Smoothing = 0.5

	s := timer.span("render")
	timer.record(s, 10*time.Millisecond)
	assert.Equal(t, 10*time.Millisecond, timer.Average("render"))
	timer.record(s, 20*time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, timer.Last("render"))
	assert.Equal(t, 15*time.Millisecond, timer.Average("render"))

	assert.Zero(t, timer.Average("missing"))

	elapsed := timer.Measure("sim", func() {})
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))
	assert.Equal(t, []string{"render", "sim"}, timer.order)
	assert.True(t, strings.HasPrefix(timer.String(), "render:\t15ms\tsim:\t"), timer.String())
}

func TestFrameTimerStopWithoutStart(t *testing.T) {
	timer := NewFrameTimer()
	timer.record(timer.span("render"), 10*time.Millisecond)

	assert.Zero(t, timer.Stop("render"))
	assert.Zero(t, timer.Stop("missing"))
	assert.Equal(t, 10*time.Millisecond, timer.Average("render"))
	assert.Equal(t, 10*time.Millisecond, timer.Last("render"))
	assert.Equal(t, []string{"render"}, timer.order)

	timer.Start("render")
	timer.Stop("render")
	assert.Zero(t, timer.Stop("render"), "second Stop records nothing")
	assert.Equal(t, 2, timer.spans["render"].samples)
}

func TestNewInstanceBufferRejectsLayout(t *testing.T) {
	type instance struct {
		Offset [3]float32
		Scale  float32
	}
	stride := int(unsafe.Sizeof(instance{}))

	_, err := NewInstanceBuffer(nil, nil, 0)
	assert.ErrorIs(t, err, ErrMesh)

	for _, attrib := range []InstanceAttrib{
		{Name: "empty", Size: 0},
		{Name: "wide", Size: 5},
		{Name: "overflow", Size: 3, Offset: 8},
	} {
		_, err := NewInstanceBuffer(nil, nil, stride, attrib)
		assert.ErrorIs(t, err, ErrMesh, attrib.Name)
	}
}

func TestUploadInstancesRejectsStride(t *testing.T) {
	buffer := &InstanceBuffer{stride: 8, count: 3}
	err := UploadInstances(buffer, []float32{1})
	assert.ErrorIs(t, err, ErrMesh)
	assert.Equal(t, 3, buffer.Count())
}

func TestAspectOf(t *testing.T) {
	assert.Equal(t, float32(2), aspectOf(800, 400, 1))
	assert.Equal(t, float32(2), aspectOf(800, 0, 2), "minimized keeps previous")
	assert.Equal(t, float32(1.5), aspectOf(0, 0, 1.5))
}

func TestTextureUnit(t *testing.T) {
	unit, ok := textureUnit(0)
	assert.True(t, ok)
	assert.Equal(t, uint32(gl.TEXTURE0), unit)

	unit, ok = textureUnit(3)
	assert.True(t, ok)
	assert.Equal(t, uint32(gl.TEXTURE0+3), unit)

	_, ok = textureUnit(-1)
	assert.False(t, ok)
}

func TestLoggerDefaultSilent(t *testing.T) {
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Logger().Debug("mesh uploaded", "vertices", 3)
	assert.Contains(t, buf.String(), "mesh uploaded")

	SetLogger(nil)
	require.NotNil(t, Logger())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
