package geom

import (
	"math"

	m "github.com/go-gl/mathgl/mgl32"
)

// MeshData is a mesh that has not been uploaded yet.
type MeshData struct {
	Primitive Primitive
	Vertices  []Vertex
	Indices   []uint32
}

// Vertex appends v with a cylindrical UV and returns its index.
func (mesh *MeshData) Vertex(v Vec3) uint32 {
	p := uint32(len(mesh.Vertices))
	theta := float32(math.Atan2(float64(v.Y()), float64(v.X())))
	pt := theta*0.5/math.Pi + 0.5
	mesh.Vertices = append(mesh.Vertices, VertexAt(v).WithTexCoords(v.Z()/3+0.4, pt))
	return p
}

func (mesh *MeshData) Triangle(a, b, c uint32) {
	mesh.Indices = append(mesh.Indices, a, b, c)
}

func (mesh *MeshData) Quad(a, b, c, d uint32) {
	mesh.Indices = append(mesh.Indices, a, b, c, d)
}

// Paint sets the color of every vertex.
func (mesh *MeshData) Paint(c Color) {
	for i := range mesh.Vertices {
		mesh.Vertices[i].Color = c
	}
}

// Lathe revolves fn around the z axis. t goes from 0 to 1 along the axis,
// phase goes around it. Capped lathes close both ends with a fan.
func Lathe(depth, corners int, capped bool, fn func(t, phase float32) Vec3) MeshData {
	mesh := MeshData{Primitive: Triangles}
	if depth < 2 || corners < 3 {
		return mesh
	}

	var headAverage Vec3
	lastLayer, nextLayer := make([]uint32, corners), make([]uint32, corners)
	for pi := 0; pi < corners; pi++ {
		p := float32(pi) * math.Pi * 2 / float32(corners)
		v := fn(0, p)
		lastLayer[pi] = mesh.Vertex(v)
		headAverage = headAverage.Add(v)
	}

	if capped {
		headAverage = headAverage.Mul(1 / float32(corners))
		z0 := mesh.Vertex(headAverage)
		for pi := 0; pi < corners; pi++ {
			a, b := lastLayer[pi], lastLayer[(pi+1)%corners]
			mesh.Triangle(z0, a, b)
		}
	}

	var tailAverage Vec3
	for ti := 1; ti < depth; ti++ {
		t := float32(ti) / float32(depth-1)
		for pi := 0; pi < corners; pi++ {
			p := float32(pi) * math.Pi * 2 / float32(corners)
			v := fn(t, p)
			nextLayer[pi] = mesh.Vertex(v)
			if ti == depth-1 {
				tailAverage = tailAverage.Add(v)
			}
		}

		for pi := 0; pi < corners; pi++ {
			a, b := lastLayer[pi], lastLayer[(pi+1)%corners]
			c, d := nextLayer[pi], nextLayer[(pi+1)%corners]
			mesh.Triangle(a, c, d)
			mesh.Triangle(a, d, b)
		}

		lastLayer, nextLayer = nextLayer, lastLayer
	}

	if capped {
		tailAverage = tailAverage.Mul(1 / float32(corners))
		zt := mesh.Vertex(tailAverage)
		for pi := 0; pi < corners; pi++ {
			a, b := lastLayer[pi], lastLayer[(pi+1)%corners]
			mesh.Triangle(a, zt, b)
		}
	}

	return mesh
}

// Impulse rises quickly and falls off slowly, peaking at x = 1/k.
func Impulse(k, x float32) float32 {
	h := k * x
	return h * float32(math.Exp(float64(1-h)))
}

// Box is an indexed quad list centered at the origin.
func Box(size Vec3, c Color) MeshData {
	h := size.Mul(0.5)
	corners := [8]Vec3{
		{-h[0], -h[1], h[2]},
		{-h[0], h[1], h[2]},
		{h[0], h[1], h[2]},
		{h[0], -h[1], h[2]},
		{-h[0], -h[1], -h[2]},
		{-h[0], h[1], -h[2]},
		{h[0], h[1], -h[2]},
		{h[0], -h[1], -h[2]},
	}

	mesh := MeshData{Primitive: Quads}
	for _, p := range corners {
		v := VertexAt(p)
		v.Color = c
		mesh.Vertices = append(mesh.Vertices, v)
	}

	// counter-clockwise seen from outside
	mesh.Quad(3, 2, 1, 0)
	mesh.Quad(4, 5, 6, 7)
	mesh.Quad(0, 1, 5, 4)
	mesh.Quad(7, 6, 2, 3)
	mesh.Quad(0, 4, 7, 3)
	mesh.Quad(1, 2, 6, 5)
	return mesh
}

// Plane is a single quad on the xz plane facing up.
func Plane(width, depth float32, c Color) MeshData {
	w, d := width/2, depth/2
	mesh := MeshData{Primitive: Quads}
	for _, p := range []Vec3{{-w, 0, d}, {w, 0, d}, {w, 0, -d}, {-w, 0, -d}} {
		v := VertexAt(p)
		v.Color = c
		mesh.Vertices = append(mesh.Vertices, v)
	}
	mesh.Vertices[0].TexCoords = [2]float32{0, 0}
	mesh.Vertices[1].TexCoords = [2]float32{1, 0}
	mesh.Vertices[2].TexCoords = [2]float32{1, 1}
	mesh.Vertices[3].TexCoords = [2]float32{0, 1}
	return mesh
}

// Perspective builds a projection matrix, fovy is in degrees.
func Perspective(fovy, aspect, near, far float32) Mat4 {
	return m.Perspective(m.DegToRad(fovy), aspect, near, far)
}
