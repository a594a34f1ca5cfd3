package core

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/1siamBot/arc-engine/engine/gem"
)

// VertexStride is the packed size of one Vertex: 8 float32, no padding
const VertexStride = 8 * 4

// Vertex is one record of a generated mesh
type Vertex struct {
	Position gem.Vec3f
	Normal   gem.Vec3f
	UV       gem.Vec2f
}

// Mesh is an indexed triangle list
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Triangle returns the vertices of triangle i
func (m *Mesh) Triangle(i int) (a, b, c Vertex) {
	return m.Vertices[m.Indices[3*i]], m.Vertices[m.Indices[3*i+1]], m.Vertices[m.Indices[3*i+2]]
}

// Validate checks every index refers to a vertex
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh: %d indices is not a triangle list", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("mesh: index %d at %d out of range (%d vertices)", idx, i, len(m.Vertices))
		}
	}
	return nil
}

// PackVertices encodes vs as little-endian float32 records:
// position xyz, normal xyz, uv.
func PackVertices(vs []Vertex) []byte {
	buf := make([]byte, len(vs)*VertexStride)
	off := 0
	put := func(f float64) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(float32(f)))
		off += 4
	}
	for _, v := range vs {
		put(v.Position[0])
		put(v.Position[1])
		put(v.Position[2])
		put(v.Normal[0])
		put(v.Normal[1])
		put(v.Normal[2])
		put(v.UV[0])
		put(v.UV[1])
	}
	return buf
}

// UnpackVertices decodes records written by PackVertices
func UnpackVertices(b []byte) ([]Vertex, error) {
	if len(b)%VertexStride != 0 {
		return nil, fmt.Errorf("mesh: %d bytes is not a multiple of the %d byte vertex stride", len(b), VertexStride)
	}
	vs := make([]Vertex, len(b)/VertexStride)
	off := 0
	get := func() float64 {
		f := math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
		off += 4
		return float64(f)
	}
	for i := range vs {
		vs[i].Position = gem.V3(get(), get(), get())
		vs[i].Normal = gem.V3(get(), get(), get())
		vs[i].UV = gem.V2(get(), get())
	}
	return vs, nil
}
