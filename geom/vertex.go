// Package geom contains the CPU side of meshes: vertex layout, primitive
// topologies and a few procedural shapes. Nothing here touches the GPU.
package geom

import (
	"unsafe"

	m "github.com/go-gl/mathgl/mgl32"
)

type (
	Vec2 = m.Vec2
	Vec3 = m.Vec3
	Vec4 = m.Vec4
	Mat4 = m.Mat4
)

// Vertex is uploaded as-is, fields must stay float32 and tightly packed.
type Vertex struct {
	Position  [3]float32
	Color     Color
	TexCoords [2]float32
}

const (
	VertexStride    = int32(unsafe.Sizeof(Vertex{}))
	PositionOffset  = int(unsafe.Offsetof(Vertex{}.Position))
	ColorOffset     = int(unsafe.Offsetof(Vertex{}.Color))
	TexCoordsOffset = int(unsafe.Offsetof(Vertex{}.TexCoords))
)

// V returns a white vertex at x, y, z.
func V(x, y, z float32) Vertex {
	return Vertex{
		Position: [3]float32{x, y, z},
		Color:    White,
	}
}

func VertexAt(p Vec3) Vertex { return V(p[0], p[1], p[2]) }

func (v Vertex) WithColor(r, g, b, a float32) Vertex {
	v.Color = RGBA(r, g, b, a)
	return v
}

func (v Vertex) WithTexCoords(u, t float32) Vertex {
	v.TexCoords = [2]float32{u, t}
	return v
}

func (v Vertex) Pos() Vec3 { return Vec3(v.Position) }
