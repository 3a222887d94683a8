package scene

import "github.com/adinfit/rend/geom"

// World tracks time and screen size between frames and keeps the camera
// matrices in sync with them.
type World struct {
	ScreenSize geom.Vec2
	Camera     Camera
	Projection Projection
	Ambient    Ambient

	ProjectionMatrix geom.Mat4
	ViewMatrix       geom.Mat4

	Time      float64
	DeltaTime float32

	started bool
}

func NewWorld(camera *Camera) *World {
	world := &World{}
	world.Camera = *camera
	world.Projection = DefaultProjection()
	world.Ambient = NoAmbient
	world.ProjectionMatrix = geom.Perspective(world.Projection.FOV, 1, world.Projection.Near, world.Projection.Far)
	world.ViewMatrix = camera.ViewMatrix()
	return world
}

// Aspect is width over height, 1 until the screen has a height.
func (world *World) Aspect() float32 {
	if world.ScreenSize.Y() <= 0 {
		return 1
	}
	return world.ScreenSize.X() / world.ScreenSize.Y()
}

// NextFrame advances the clock to now and recomputes the matrices.
// It reports whether the screen size changed.
func (world *World) NextFrame(screenSize geom.Vec2, now float64) (resized bool) {
	// minimized windows report a zero height
	resized = world.ScreenSize != screenSize && screenSize.Y() > 0
	if resized {
		world.ScreenSize = screenSize
	}

	if world.started {
		world.DeltaTime = float32(now - world.Time)
	}
	world.started = true
	world.Time = now

	world.UpdateMatrices()
	return resized
}

func (world *World) UpdateMatrices() {
	world.ProjectionMatrix = world.Projection.Matrix(world.Aspect())
	world.ViewMatrix = world.Camera.ViewMatrix()
}
