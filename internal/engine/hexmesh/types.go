// Package hexmesh triangulates hex grid cells into a colored terrain mesh.
package hexmesh

import "github.com/Faultbox/hexterrain/pkg/math"

// Mesh holds the index-aligned output buffers of one triangulation pass.
// Vertices are never shared: every triangle and quad appends its own.
type Mesh struct {
	Vertices  []math.Vec3
	Triangles []uint32 // three indices per triangle
	Colors    []math.Color
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Stats counts what one triangulation pass emitted.
type Stats struct {
	Cells     int
	Fans      int // solid triangles
	Strips    int // terraced border strips
	Corners   int // corner-fill triangles
	Triangles int
	Vertices  int
}
