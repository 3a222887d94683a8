package geom

import (
	"errors"
	"fmt"
)

// Primitive is how a sequence of vertices is interpreted for rasterization.
type Primitive uint8

const (
	Points Primitive = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
	// Quads are emulated by splitting every quad into two triangles.
	Quads
)

var primitiveNames = [...]string{
	Points:        "points",
	Lines:         "lines",
	LineStrip:     "line-strip",
	LineLoop:      "line-loop",
	Triangles:     "triangles",
	TriangleStrip: "triangle-strip",
	TriangleFan:   "triangle-fan",
	Quads:         "quads",
}

func (p Primitive) String() string {
	if p.Valid() {
		return primitiveNames[p]
	}
	return fmt.Sprintf("Primitive(%d)", uint8(p))
}

func (p Primitive) Valid() bool { return int(p) < len(primitiveNames) }

// ErrCount is returned when a vertex or index count does not form whole primitives.
var ErrCount = errors.New("invalid element count")

// group returns the number of elements per primitive and the minimum count.
func (p Primitive) group() (size, least int) {
	switch p {
	case Points:
		return 1, 1
	case Lines:
		return 2, 2
	case LineStrip, LineLoop:
		return 1, 2
	case Triangles:
		return 3, 3
	case TriangleStrip, TriangleFan:
		return 1, 3
	case Quads:
		return 4, 4
	}
	return 0, 0
}

// CheckCount verifies that n elements form whole primitives.
func (p Primitive) CheckCount(n int) error {
	if !p.Valid() {
		return fmt.Errorf("unknown primitive %v", p)
	}
	size, least := p.group()
	if n < least {
		return fmt.Errorf("%w: %v needs at least %d, got %d", ErrCount, p, least, n)
	}
	if n%size != 0 {
		return fmt.Errorf("%w: %v needs a multiple of %d, got %d", ErrCount, p, size, n)
	}
	return nil
}

// TriangulateQuads splits every quad a b c d into a b c and a c d.
func TriangulateQuads(indices []uint32) ([]uint32, error) {
	if len(indices)%4 != 0 {
		return nil, fmt.Errorf("%w: quads need a multiple of 4, got %d", ErrCount, len(indices))
	}
	out := make([]uint32, 0, len(indices)/4*6)
	for i := 0; i < len(indices); i += 4 {
		a, b, c, d := indices[i], indices[i+1], indices[i+2], indices[i+3]
		out = append(out, a, b, c, a, c, d)
	}
	return out, nil
}

// QuadIndices triangulates an unindexed quad list of vertexCount vertices.
func QuadIndices(vertexCount int) ([]uint32, error) {
	implicit := make([]uint32, vertexCount)
	for i := range implicit {
		implicit[i] = uint32(i)
	}
	return TriangulateQuads(implicit)
}

// CheckIndices verifies every index refers to one of vertexCount vertices.
func CheckIndices(indices []uint32, vertexCount int) error {
	for i, index := range indices {
		if int(index) >= vertexCount {
			return fmt.Errorf("index %d at %d out of range [0, %d)", index, i, vertexCount)
		}
	}
	return nil
}
