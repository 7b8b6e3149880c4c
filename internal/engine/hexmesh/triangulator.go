package hexmesh

import (
	"github.com/Faultbox/hexterrain/pkg/hex"
	"github.com/Faultbox/hexterrain/pkg/math"
)

// Triangulator turns cells into mesh buffers.
//
// A Triangulator is not safe for concurrent use. The mesh returned by
// Triangulate aliases internal buffers that the next call overwrites.
type Triangulator struct {
	metrics *hex.Metrics
	builder *Builder
	stats   Stats
}

// New creates a triangulator. A nil metrics uses hex.DefaultMetrics.
func New(metrics *hex.Metrics) *Triangulator {
	if metrics == nil {
		metrics = hex.DefaultMetrics()
	}
	return &Triangulator{
		metrics: metrics,
		builder: NewBuilder(0),
	}
}

// Metrics returns the geometry used by the triangulator.
func (t *Triangulator) Metrics() *hex.Metrics {
	return t.metrics
}

// LastStats returns the counters of the most recent pass.
func (t *Triangulator) LastStats() Stats {
	return t.stats
}

// Triangulate rebuilds the mesh for all cells. Every cell of the grid must
// appear exactly once. Cells are not validated; see Validate.
func (t *Triangulator) Triangulate(cells []hex.Cell) *Mesh {
	t.builder.Reset()
	t.stats = Stats{Cells: len(cells)}

	for _, cell := range cells {
		t.triangulateCell(cell)
	}

	t.stats.Vertices = len(t.builder.vertices)
	t.stats.Triangles = len(t.builder.triangles) / 3
	return t.builder.Mesh()
}

func (t *Triangulator) triangulateCell(cell hex.Cell) {
	for _, d := range hex.Directions() {
		t.triangulateDirection(d, cell)
	}
}

//	  v3---v4
//	   |   |
//	  v1---v2
//	    \ /
//	   center
func (t *Triangulator) triangulateDirection(d hex.Direction, cell hex.Cell) {
	center := cell.Position()
	v1 := center.Add(t.metrics.FirstSolidCorner(d))
	v2 := center.Add(t.metrics.SecondSolidCorner(d))

	t.builder.AddTriangle(center, v1, v2)
	t.builder.AddTriangleColor(cell.Color())
	t.stats.Fans++

	if d.IsCanonicalConnection() {
		t.triangulateConnection(d, cell, v1, v2)
	}
}

func (t *Triangulator) triangulateConnection(d hex.Direction, cell hex.Cell, v1, v2 math.Vec3) {
	neighbor, ok := cell.Neighbor(d)
	if !ok {
		return
	}

	bridge := t.metrics.Bridge(d)
	v3 := v1.Add(bridge)
	v4 := v2.Add(bridge)
	v3.Y = t.metrics.ElevationHeight(neighbor.Elevation())
	v4.Y = v3.Y

	t.triangulateEdgeTerraces(v1, v2, cell.Color(), v3, v4, neighbor.Color())
	t.stats.Strips++

	if !d.IsCanonicalCorner() {
		return
	}
	next, ok := cell.Neighbor(d.Next())
	if !ok {
		return
	}

	v5 := v2.Add(t.metrics.Bridge(d.Next()))
	v5.Y = t.metrics.ElevationHeight(next.Elevation())

	t.builder.AddTriangle(v2, v4, v5)
	t.builder.AddTriangleColors(cell.Color(), neighbor.Color(), next.Color())
	t.stats.Corners++
}

// triangulateEdgeTerraces emits TerraceSteps cross-sections from the near
// edge (beginLeft, beginRight) to the far edge (endLeft, endRight), one quad
// between each consecutive pair.
func (t *Triangulator) triangulateEdgeTerraces(
	beginLeft, beginRight math.Vec3, beginColor math.Color,
	endLeft, endRight math.Vec3, endColor math.Color,
) {
	left, right, color := beginLeft, beginRight, beginColor

	for step := 1; step < t.metrics.TerraceSteps(); step++ {
		nextLeft := t.metrics.TerraceLerp(beginLeft, endLeft, step)
		nextRight := t.metrics.TerraceLerp(beginRight, endRight, step)
		nextColor := t.metrics.TerraceColorLerp(beginColor, endColor, step)

		t.builder.AddQuad(left, right, nextLeft, nextRight)
		t.builder.AddQuadColors(color, nextColor)

		left, right, color = nextLeft, nextRight, nextColor
	}
}
