package hexmesh

import "github.com/Faultbox/hexterrain/pkg/math"

// Builder owns the growing vertex, index and color buffers.
// Geometry and colors are appended separately, so each Add* call for
// positions must be matched by the colors for the same vertices.
type Builder struct {
	vertices  []math.Vec3
	triangles []uint32
	colors    []math.Color
}

// NewBuilder creates a builder with room for the given number of vertices.
func NewBuilder(vertexCapacity int) *Builder {
	return &Builder{
		vertices:  make([]math.Vec3, 0, vertexCapacity),
		triangles: make([]uint32, 0, vertexCapacity),
		colors:    make([]math.Color, 0, vertexCapacity),
	}
}

// Reset empties the buffers and keeps their capacity.
func (b *Builder) Reset() {
	b.vertices = b.vertices[:0]
	b.triangles = b.triangles[:0]
	b.colors = b.colors[:0]
}

// AddTriangle appends three vertices wound in the given order. Callers pass
// them clockwise as seen from +Y.
func (b *Builder) AddTriangle(v1, v2, v3 math.Vec3) {
	base := uint32(len(b.vertices))
	b.vertices = append(b.vertices, v1, v2, v3)
	b.triangles = append(b.triangles, base, base+1, base+2)
}

// AddQuad appends a quad whose near edge is v1-v2 and far edge v3-v4:
//
//	v3----v4
//	| \    |
//	|   \  |
//	v1----v2
//
// It is split along v3-v2 into (v1, v3, v2) and (v2, v3, v4).
func (b *Builder) AddQuad(v1, v2, v3, v4 math.Vec3) {
	base := uint32(len(b.vertices))
	b.vertices = append(b.vertices, v1, v2, v3, v4)
	b.triangles = append(b.triangles,
		base, base+2, base+1,
		base+1, base+2, base+3,
	)
}

// AddTriangleColor colors the last triangle with a single color.
func (b *Builder) AddTriangleColor(c math.Color) {
	b.colors = append(b.colors, c, c, c)
}

// AddTriangleColors colors the last triangle per vertex.
func (b *Builder) AddTriangleColors(c1, c2, c3 math.Color) {
	b.colors = append(b.colors, c1, c2, c3)
}

// AddQuadColors colors the last quad: c1 on the near edge, c2 on the far edge.
func (b *Builder) AddQuadColors(c1, c2 math.Color) {
	b.colors = append(b.colors, c1, c1, c2, c2)
}

// Mesh returns a view of the current buffers. The slices are reused by the
// next Reset, so callers that keep them across passes must copy.
func (b *Builder) Mesh() *Mesh {
	return &Mesh{
		Vertices:  b.vertices,
		Triangles: b.triangles,
		Colors:    b.colors,
	}
}
