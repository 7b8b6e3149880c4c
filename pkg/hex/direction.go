// Package hex provides hexagon geometry for terrain meshes: the six neighbor
// directions, the cell contract consumed by the triangulator and the metrics
// that turn directions into corner, bridge and terrace offsets.
package hex

import "fmt"

// Direction identifies one of the six neighbors of a pointy-top hexagon.
// Values are ordered clockwise starting at north-east.
type Direction int

// Direction constants.
const (
	NE Direction = iota
	E
	SE
	SW
	W
	NW
)

// DirectionCount is the number of hexagon directions.
const DirectionCount = 6

var directionNames = [DirectionCount]string{"NE", "E", "SE", "SW", "W", "NW"}

// Directions returns all directions in ascending order, NE to NW.
func Directions() [DirectionCount]Direction {
	return [DirectionCount]Direction{NE, E, SE, SW, W, NW}
}

// Valid reports whether d is one of the six defined directions.
func (d Direction) Valid() bool {
	return d >= NE && d <= NW
}

// Next returns the direction one step clockwise.
func (d Direction) Next() Direction {
	return d.add(1)
}

// Previous returns the direction one step counter-clockwise.
func (d Direction) Previous() Direction {
	return d.add(-1)
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return d.add(3)
}

func (d Direction) add(n int) Direction {
	v := (int(d) + n) % DirectionCount
	if v < 0 {
		v += DirectionCount
	}
	return Direction(v)
}

// IsCanonicalConnection reports whether the border strip in direction d is
// built by the cell looking that way. Only NE, E and SE qualify; the
// neighbor sees the same edge from SW, W or NW and skips it.
func (d Direction) IsCanonicalConnection() bool {
	return d >= NE && d <= SE
}

// IsCanonicalCorner reports whether the junction between d and d.Next() is
// filled by the cell looking that way. Only NE and E qualify: each junction
// is seen by its three cells at three different corners, exactly one of
// which lies between NE/E or E/SE.
func (d Direction) IsCanonicalCorner() bool {
	return d == NE || d == E
}

// String returns the compass name.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}
