package hexmesh

import (
	"fmt"

	"github.com/Faultbox/hexterrain/pkg/math"
)

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

// Check verifies the buffer invariants: one color per vertex, whole
// triangles only, and indices within the vertex buffer.
func (m *Mesh) Check() error {
	if len(m.Colors) != len(m.Vertices) {
		return fmt.Errorf("mesh has %d colors for %d vertices", len(m.Colors), len(m.Vertices))
	}
	if len(m.Triangles)%3 != 0 {
		return fmt.Errorf("mesh index count %d is not a multiple of 3", len(m.Triangles))
	}
	for i, idx := range m.Triangles {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("index %d at %d out of range (%d vertices)", idx, i, len(m.Vertices))
		}
	}
	return nil
}

// Clone returns a deep copy that survives the next triangulation pass.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Vertices:  append([]math.Vec3(nil), m.Vertices...),
		Triangles: append([]uint32(nil), m.Triangles...),
		Colors:    append([]math.Color(nil), m.Colors...),
	}
}

// Normals returns one flat normal per vertex. Since vertices are not
// shared, each vertex takes the normal of the triangle that owns it.
func (m *Mesh) Normals() []math.Vec3 {
	normals := make([]math.Vec3, len(m.Vertices))
	for i := 0; i+2 < len(m.Triangles); i += 3 {
		a, b, c := m.Triangles[i], m.Triangles[i+1], m.Triangles[i+2]
		n := faceNormal(m.Vertices[a], m.Vertices[b], m.Vertices[c])
		normals[a] = n
		normals[b] = n
		normals[c] = n
	}
	return normals
}

// Bounds returns the axis-aligned bounding box. An empty mesh yields a zero box.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		updateBounds(&b, v)
	}
	return b
}

// faceNormal points up for triangles wound clockwise when seen from above.
func faceNormal(a, b, c math.Vec3) math.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	if n == (math.Vec3{}) {
		return math.Vec3{Y: 1}
	}
	return n
}

func updateBounds(b *Bounds, p math.Vec3) {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Min.Z = min(b.Min.Z, p.Z)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	b.Max.Z = max(b.Max.Z, p.Z)
}
