package hex

import (
	"errors"
	"fmt"

	"github.com/Faultbox/hexterrain/pkg/math"
)

// Default metric values.
const (
	DefaultOuterRadius      float32 = 10
	DefaultSolidFactor      float32 = 0.75
	DefaultElevationStep    float32 = 3
	DefaultTerracesPerSlope         = 2
)

// innerToOuter is sqrt(3)/2, the apothem of a unit hexagon.
const innerToOuter = 0.866025404

// Metric errors.
var (
	ErrInvalidRadius        = errors.New("outer radius must be positive")
	ErrInvalidSolidFactor   = errors.New("solid factor must be in (0, 1)")
	ErrInvalidElevationStep = errors.New("elevation step must be non-negative")
	ErrInvalidTerraces      = errors.New("terraces per slope must be at least 1")
)

// Metrics holds hexagon dimensions and the terrace configuration.
// A Metrics value is immutable after construction and safe to share.
type Metrics struct {
	outerRadius      float32
	innerRadius      float32
	solidFactor      float32
	elevationStep    float32
	terracesPerSlope int
	terraceSteps     int
	horizontalStep   float32
	verticalStep     float32
	corners          [DirectionCount]math.Vec3
}

// NewMetrics validates the parameters and precomputes the corner table.
func NewMetrics(outerRadius, solidFactor, elevationStep float32, terracesPerSlope int) (*Metrics, error) {
	switch {
	case !(outerRadius > 0):
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, outerRadius)
	case !(solidFactor > 0 && solidFactor < 1):
		return nil, fmt.Errorf("%w: %v", ErrInvalidSolidFactor, solidFactor)
	case !(elevationStep >= 0):
		return nil, fmt.Errorf("%w: %v", ErrInvalidElevationStep, elevationStep)
	case terracesPerSlope < 1:
		return nil, fmt.Errorf("%w: %d", ErrInvalidTerraces, terracesPerSlope)
	}

	m := &Metrics{
		outerRadius:      outerRadius,
		innerRadius:      outerRadius * innerToOuter,
		solidFactor:      solidFactor,
		elevationStep:    elevationStep,
		terracesPerSlope: terracesPerSlope,
		terraceSteps:     terracesPerSlope*2 + 1,
	}
	// Cross-sections run 0..terraceSteps-1, so the last one is 2*terracesPerSlope.
	m.horizontalStep = 1 / float32(m.terraceSteps-1)
	m.verticalStep = 1 / float32(terracesPerSlope)

	// Pointy-top: corner 0 is the north tip, then clockwise every 60 degrees.
	r, h := m.outerRadius, m.innerRadius
	m.corners = [DirectionCount]math.Vec3{
		{X: 0, Z: r},
		{X: h, Z: 0.5 * r},
		{X: h, Z: -0.5 * r},
		{X: 0, Z: -r},
		{X: -h, Z: -0.5 * r},
		{X: -h, Z: 0.5 * r},
	}
	return m, nil
}

// DefaultMetrics returns metrics built from the Default* constants.
func DefaultMetrics() *Metrics {
	m, err := NewMetrics(DefaultOuterRadius, DefaultSolidFactor, DefaultElevationStep, DefaultTerracesPerSlope)
	if err != nil {
		panic(err)
	}
	return m
}

// OuterRadius returns the center-to-corner distance.
func (m *Metrics) OuterRadius() float32 { return m.outerRadius }

// InnerRadius returns the center-to-edge distance.
func (m *Metrics) InnerRadius() float32 { return m.innerRadius }

// SolidFactor returns the inset of the solid region.
func (m *Metrics) SolidFactor() float32 { return m.solidFactor }

// BlendFactor returns the share of the radius given to border strips.
func (m *Metrics) BlendFactor() float32 { return 1 - m.solidFactor }

// ElevationStep returns the world height of one elevation level.
func (m *Metrics) ElevationStep() float32 { return m.elevationStep }

// TerracesPerSlope returns the number of flat treads on a slope.
func (m *Metrics) TerracesPerSlope() int { return m.terracesPerSlope }

// TerraceSteps returns the number of cross-sections in a terrace strip,
// always odd. A strip has TerraceSteps()-1 quads.
func (m *Metrics) TerraceSteps() int { return m.terraceSteps }

// ElevationHeight converts an elevation level to a world height.
func (m *Metrics) ElevationHeight(level int) float32 {
	return float32(level) * m.elevationStep
}

// Corner returns the i-th hexagon corner offset. i wraps modulo 6.
func (m *Metrics) Corner(i int) math.Vec3 {
	i %= DirectionCount
	if i < 0 {
		i += DirectionCount
	}
	return m.corners[i]
}

// FirstCorner returns the corner where the edge facing d starts.
func (m *Metrics) FirstCorner(d Direction) math.Vec3 {
	return m.Corner(int(d))
}

// SecondCorner returns the corner where the edge facing d ends.
func (m *Metrics) SecondCorner(d Direction) math.Vec3 {
	return m.Corner(int(d) + 1)
}

// FirstSolidCorner returns FirstCorner pulled in to the solid hexagon.
func (m *Metrics) FirstSolidCorner(d Direction) math.Vec3 {
	return m.FirstCorner(d).Scale(m.solidFactor)
}

// SecondSolidCorner returns SecondCorner pulled in to the solid hexagon.
func (m *Metrics) SecondSolidCorner(d Direction) math.Vec3 {
	return m.SecondCorner(d).Scale(m.solidFactor)
}

// Bridge returns the offset from a solid corner facing d to the matching
// solid corner of the neighbor in d.
func (m *Metrics) Bridge(d Direction) math.Vec3 {
	return m.FirstCorner(d).Add(m.SecondCorner(d)).Scale(m.BlendFactor())
}

// TerraceLerp returns cross-section step (0..TerraceSteps()-1) of a terrace
// strip from a to b. X and Z advance linearly with every step; Y only rises
// on odd steps, so even steps end a flat tread.
func (m *Metrics) TerraceLerp(a, b math.Vec3, step int) math.Vec3 {
	switch {
	case step <= 0:
		return a
	case step >= m.terraceSteps-1:
		return b
	}
	h := float32(step) * m.horizontalStep
	a.X += (b.X - a.X) * h
	a.Z += (b.Z - a.Z) * h
	v := float32((step+1)/2) * m.verticalStep
	a.Y += (b.Y - a.Y) * v
	return a
}

// TerraceColorLerp blends colors linearly over the terrace cross-sections.
func (m *Metrics) TerraceColorLerp(a, b math.Color, step int) math.Color {
	switch {
	case step <= 0:
		return a
	case step >= m.terraceSteps-1:
		return b
	}
	return a.Lerp(b, float32(step)*m.horizontalStep)
}

// CenterOffset returns the center of the cell at offset coordinates (x, z).
// Odd rows are shifted east by half a cell.
func (m *Metrics) CenterOffset(x, z int) math.Vec3 {
	return math.Vec3{
		X: (float32(x) + float32(z)*0.5 - float32(z/2)) * m.innerRadius * 2,
		Z: float32(z) * m.outerRadius * 1.5,
	}
}
