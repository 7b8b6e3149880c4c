package hex

import "github.com/Faultbox/hexterrain/pkg/math"

// Cell is a read-only view of one grid tile.
//
// Implementations must not change while a triangulation pass is running.
// The neighbor relation is expected to be symmetric: if A reports B in
// direction d, B reports A in d.Opposite().
type Cell interface {
	// Position is the local-space center; Y already includes the elevation.
	Position() math.Vec3
	Elevation() int
	Color() math.Color
	// Neighbor returns the adjacent cell in d, or false at the grid border.
	Neighbor(d Direction) (Cell, bool)
}
