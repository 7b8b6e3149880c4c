// Package world provides the hex grid that feeds the terrain mesh.
package world

import (
	"github.com/Faultbox/hexterrain/pkg/hex"
	"github.com/Faultbox/hexterrain/pkg/math"
)

// Cell is one tile of a Grid. It implements hex.Cell.
type Cell struct {
	X, Z int // offset coordinates

	position  math.Vec3
	elevation int
	color     math.Color
	neighbors [hex.DirectionCount]*Cell
}

// Position returns the cell center including its elevation height.
func (c *Cell) Position() math.Vec3 { return c.position }

// Elevation returns the elevation level.
func (c *Cell) Elevation() int { return c.elevation }

// Color returns the cell color.
func (c *Cell) Color() math.Color { return c.color }

// Neighbor returns the adjacent cell in d. Out-of-range directions have no neighbor.
func (c *Cell) Neighbor(d hex.Direction) (hex.Cell, bool) {
	if !d.Valid() {
		return nil, false
	}
	n := c.neighbors[d]
	if n == nil {
		return nil, false
	}
	return n, true
}

// setNeighbor links both sides.
func (c *Cell) setNeighbor(d hex.Direction, n *Cell) {
	c.neighbors[d] = n
	n.neighbors[d.Opposite()] = c
}
