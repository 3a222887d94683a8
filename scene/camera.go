// Package scene holds the per-frame state a renderer feeds into its shaders:
// the camera, the projection and the lights.
package scene

import (
	m "github.com/go-gl/mathgl/mgl32"

	"github.com/adinfit/rend/geom"
)

// Camera is a position with a viewing direction.
//
// Target is relative to Position, so moving the camera does not change
// where it is looking.
type Camera struct {
	Position geom.Vec3
	Target   geom.Vec3
	Up       geom.Vec3
}

// NewCamera returns a camera at p looking towards negative z.
func NewCamera(p geom.Vec3) *Camera {
	return &Camera{
		Position: p,
		Target:   geom.Vec3{0, 0, -1},
		Up:       geom.Vec3{0, 1, 0},
	}
}

// LookAt points the camera at a world position.
func (camera *Camera) LookAt(point geom.Vec3) {
	camera.Target = point.Sub(camera.Position)
}

func (camera *Camera) Move(delta geom.Vec3) {
	camera.Position = camera.Position.Add(delta)
}

func (camera *Camera) ViewMatrix() geom.Mat4 {
	return m.LookAtV(camera.Position, camera.Position.Add(camera.Target), camera.Up)
}

// Projection describes a perspective frustum, FOV is vertical and in degrees.
type Projection struct {
	FOV       float32
	Near, Far float32
}

func DefaultProjection() Projection {
	return Projection{FOV: 70, Near: 0.1, Far: 100}
}

func (projection Projection) Matrix(aspect float32) geom.Mat4 {
	return geom.Perspective(projection.FOV, aspect, projection.Near, projection.Far)
}
