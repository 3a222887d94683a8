package rend

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/adinfit/rend/geom"
)

type vertexAttrib struct {
	name     string
	location uint32
	size     int32
	offset   int
}

// meshAttribs is the fixed layout of geom.Vertex. Programs get these names
// bound to these locations before linking.
var meshAttribs = [...]vertexAttrib{
	{name: "position", location: 0, size: 3, offset: geom.PositionOffset},
	{name: "color", location: 1, size: 4, offset: geom.ColorOffset},
	{name: "texcoords", location: 2, size: 2, offset: geom.TexCoordsOffset},
}

// Mesh is vertex data, and optionally indices, living on the GPU.
type Mesh struct {
	primitive geom.Primitive
	mode      uint32

	VAO uint32
	VBO uint32
	IBO uint32

	vertices int
	count    int32
}

// meshPlan is what ends up on the GPU for a given input.
type meshPlan struct {
	mode    geom.Primitive
	indices []uint32
	indexed bool
	count   int32
}

func planMesh(primitive geom.Primitive, vertexCount int, indices []uint32) (meshPlan, error) {
	if !primitive.Valid() {
		return meshPlan{}, fmt.Errorf("%w: unknown primitive %v", ErrMesh, primitive)
	}
	if vertexCount == 0 {
		return meshPlan{}, fmt.Errorf("%w: no vertices", ErrMesh)
	}

	plan := meshPlan{mode: primitive, indices: indices, indexed: indices != nil}
	if plan.indexed {
		if err := geom.CheckIndices(indices, vertexCount); err != nil {
			return meshPlan{}, fmt.Errorf("%w: %w", ErrMesh, err)
		}
		if err := primitive.CheckCount(len(indices)); err != nil {
			return meshPlan{}, fmt.Errorf("%w: %w", ErrMesh, err)
		}
	} else if err := primitive.CheckCount(vertexCount); err != nil {
		return meshPlan{}, fmt.Errorf("%w: %w", ErrMesh, err)
	}

	if primitive == geom.Quads {
		var err error
		if plan.indexed {
			plan.indices, err = geom.TriangulateQuads(indices)
		} else {
			plan.indices, err = geom.QuadIndices(vertexCount)
		}
		if err != nil {
			return meshPlan{}, fmt.Errorf("%w: %w", ErrMesh, err)
		}
		plan.mode = geom.Triangles
		plan.indexed = true
	}

	if plan.indexed {
		plan.count = int32(len(plan.indices))
	} else {
		plan.count = int32(vertexCount)
	}
	return plan, nil
}

func glMode(p geom.Primitive) uint32 {
	switch p {
	case geom.Points:
		return gl.POINTS
	case geom.Lines:
		return gl.LINES
	case geom.LineStrip:
		return gl.LINE_STRIP
	case geom.LineLoop:
		return gl.LINE_LOOP
	case geom.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case geom.TriangleFan:
		return gl.TRIANGLE_FAN
	default:
		return gl.TRIANGLES
	}
}

// NewMesh uploads vertices and, when not nil, indices.
//
// Quads are split into triangles before upload.
func NewMesh(primitive geom.Primitive, vertices []geom.Vertex, indices []uint32) (*Mesh, error) {
	plan, err := planMesh(primitive, len(vertices), indices)
	if err != nil {
		return nil, err
	}

	mesh := &Mesh{
		primitive: primitive,
		mode:      glMode(plan.mode),
		vertices:  len(vertices),
		count:     plan.count,
	}

	gl.GenVertexArrays(1, &mesh.VAO)
	gl.BindVertexArray(mesh.VAO)

	gl.GenBuffers(1, &mesh.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(geom.VertexStride), gl.Ptr(vertices), gl.STATIC_DRAW)

	for _, attrib := range meshAttribs {
		gl.EnableVertexAttribArray(attrib.location)
		gl.VertexAttribPointer(attrib.location, attrib.size, gl.FLOAT, false, geom.VertexStride, gl.PtrOffset(attrib.offset))
	}

	if plan.indexed {
		gl.GenBuffers(1, &mesh.IBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.IBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(plan.indices), gl.Ptr(plan.indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	Logger().Debug("mesh uploaded",
		slog.String("primitive", primitive.String()),
		slog.Int("vertices", len(vertices)),
		slog.Int("indices", len(plan.indices)),
		slog.Int("bytes", len(vertices)*int(geom.VertexStride)+4*len(plan.indices)),
	)

	return mesh, nil
}

// NewMeshFromData uploads procedurally built mesh data.
func NewMeshFromData(data geom.MeshData) (*Mesh, error) {
	return NewMesh(data.Primitive, data.Vertices, data.Indices)
}

func (mesh *Mesh) Primitive() geom.Primitive { return mesh.primitive }

// Count is the number of vertices or indices one draw call consumes.
func (mesh *Mesh) Count() int { return int(mesh.count) }

func (mesh *Mesh) Indexed() bool { return mesh.IBO != 0 }

// Render draws the whole mesh with the currently bound program.
func (mesh *Mesh) Render() {
	gl.BindVertexArray(mesh.VAO)
	if mesh.Indexed() {
		gl.DrawElements(mesh.mode, mesh.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(mesh.mode, 0, mesh.count)
	}
	gl.BindVertexArray(0)
}

// RenderInstanced draws the mesh instances times, see InstanceBuffer.
func (mesh *Mesh) RenderInstanced(instances int) {
	if instances <= 0 {
		return
	}
	gl.BindVertexArray(mesh.VAO)
	if mesh.Indexed() {
		gl.DrawElementsInstanced(mesh.mode, mesh.count, gl.UNSIGNED_INT, gl.PtrOffset(0), int32(instances))
	} else {
		gl.DrawArraysInstanced(mesh.mode, 0, mesh.count, int32(instances))
	}
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers.
func (mesh *Mesh) Delete() {
	if mesh.IBO != 0 {
		gl.DeleteBuffers(1, &mesh.IBO)
		mesh.IBO = 0
	}
	if mesh.VBO != 0 {
		gl.DeleteBuffers(1, &mesh.VBO)
		mesh.VBO = 0
	}
	if mesh.VAO != 0 {
		gl.DeleteVertexArrays(1, &mesh.VAO)
		mesh.VAO = 0
	}
}
