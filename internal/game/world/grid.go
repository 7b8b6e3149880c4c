package world

import (
	"errors"
	"fmt"

	"github.com/Faultbox/hexterrain/pkg/hex"
	"github.com/Faultbox/hexterrain/pkg/math"
)

// ErrInvalidGridSize is returned for grids without cells.
var ErrInvalidGridSize = errors.New("grid width and height must be positive")

// Grid is a rectangular hex grid in offset coordinates: rows run along X,
// row z sits at Z = z * 1.5 * outer radius, and odd rows shift half a cell east.
type Grid struct {
	Width  int
	Height int

	metrics *hex.Metrics
	cells   []*Cell
}

// NewGrid creates a grid of flat cells at elevation 0.
func NewGrid(width, height int, metrics *hex.Metrics, defaultColor math.Color) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGridSize, width, height)
	}
	if metrics == nil {
		metrics = hex.DefaultMetrics()
	}

	g := &Grid{
		Width:   width,
		Height:  height,
		metrics: metrics,
		cells:   make([]*Cell, 0, width*height),
	}
	for z := range height {
		for x := range width {
			g.createCell(x, z, defaultColor)
		}
	}
	return g, nil
}

func (g *Grid) createCell(x, z int, color math.Color) {
	cell := &Cell{
		X:        x,
		Z:        z,
		position: g.metrics.CenterOffset(x, z),
		color:    color,
	}
	i := len(g.cells)
	g.cells = append(g.cells, cell)

	if x > 0 {
		cell.setNeighbor(hex.W, g.cells[i-1])
	}
	if z == 0 {
		return
	}
	// The row below is shifted the other way, so the diagonal links differ.
	if z%2 == 0 {
		cell.setNeighbor(hex.SE, g.cells[i-g.Width])
		if x > 0 {
			cell.setNeighbor(hex.SW, g.cells[i-g.Width-1])
		}
	} else {
		cell.setNeighbor(hex.SW, g.cells[i-g.Width])
		if x < g.Width-1 {
			cell.setNeighbor(hex.SE, g.cells[i-g.Width+1])
		}
	}
}

// Metrics returns the metrics used to place cells.
func (g *Grid) Metrics() *hex.Metrics {
	return g.metrics
}

// CellAt returns the cell at offset coordinates, or nil when out of range.
func (g *Grid) CellAt(x, z int) *Cell {
	if x < 0 || z < 0 || x >= g.Width || z >= g.Height {
		return nil
	}
	return g.cells[z*g.Width+x]
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []hex.Cell {
	out := make([]hex.Cell, len(g.cells))
	for i, c := range g.cells {
		out[i] = c
	}
	return out
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// SetElevation sets a cell's elevation and moves its center to the matching height.
func (g *Grid) SetElevation(c *Cell, level int) {
	c.elevation = level
	c.position.Y = g.metrics.ElevationHeight(level)
}

// SetColor sets a cell's color.
func (g *Grid) SetColor(c *Cell, color math.Color) {
	c.color = color
}
