package rend

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// InstanceAttrib is a float vector attribute inside an instance struct.
type InstanceAttrib struct {
	Name   string
	Size   int32
	Offset uintptr
}

// InstanceBuffer holds per-instance attributes of a mesh. Each attribute
// advances once per instance instead of once per vertex.
type InstanceBuffer struct {
	VBO uint32

	stride int
	bytes  int
	count  int
}

// NewInstanceBuffer attaches a dynamic buffer to mesh. stride is the size of
// one instance struct, attribs are looked up in program by name.
func NewInstanceBuffer(program *Program, mesh *Mesh, stride int, attribs ...InstanceAttrib) (*InstanceBuffer, error) {
	if stride <= 0 {
		return nil, fmt.Errorf("%w: invalid instance stride %d", ErrMesh, stride)
	}
	for _, attrib := range attribs {
		if attrib.Size < 1 || attrib.Size > 4 || int(attrib.Offset)+int(attrib.Size)*4 > stride {
			return nil, fmt.Errorf("%w: attribute %q does not fit instance of %d bytes", ErrMesh, attrib.Name, stride)
		}
	}

	buffer := &InstanceBuffer{stride: stride}

	gl.BindVertexArray(mesh.VAO)
	gl.GenBuffers(1, &buffer.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer.VBO)

	for _, attrib := range attribs {
		location, ok := program.AttribLocation(attrib.Name)
		if !ok {
			Logger().Warn("instance attribute not found", slog.String("name", attrib.Name))
			continue
		}
		gl.EnableVertexAttribArray(location)
		gl.VertexAttribPointer(location, attrib.Size, gl.FLOAT, false, int32(stride), gl.PtrOffset(int(attrib.Offset)))
		gl.VertexAttribDivisor(location, 1)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return buffer, nil
}

// Count is the number of instances uploaded last.
func (buffer *InstanceBuffer) Count() int { return buffer.count }

// UploadInstances replaces the buffer contents. T must be the instance
// struct the buffer was created for.
func UploadInstances[T any](buffer *InstanceBuffer, instances []T) error {
	var zero T
	if size := int(unsafe.Sizeof(zero)); size != buffer.stride {
		return fmt.Errorf("%w: instance is %d bytes, buffer expects %d", ErrMesh, size, buffer.stride)
	}
	buffer.count = len(instances)
	if len(instances) == 0 {
		return nil
	}

	size := len(instances) * buffer.stride
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer.VBO)
	if size > buffer.bytes {
		gl.BufferData(gl.ARRAY_BUFFER, size, unsafe.Pointer(&instances[0]), gl.DYNAMIC_DRAW)
		buffer.bytes = size
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&instances[0]))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

func (buffer *InstanceBuffer) Delete() {
	if buffer.VBO != 0 {
		gl.DeleteBuffers(1, &buffer.VBO)
		buffer.VBO = 0
	}
}
