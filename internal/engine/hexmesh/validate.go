package hexmesh

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/Faultbox/hexterrain/pkg/hex"
)

// Validation errors.
var (
	ErrAsymmetricNeighbor = errors.New("asymmetric neighbor link")
	ErrNegativeElevation  = errors.New("negative elevation")
	ErrColorOutOfRange    = errors.New("color channel out of range")
	ErrDuplicateCell      = errors.New("cell listed more than once")
	ErrNilCell            = errors.New("nil cell")
)

// Validate checks the preconditions Triangulate relies on and returns every
// violation joined into one error, or nil. Triangulate does not call it.
//
// Neighbor symmetry and duplicate detection compare cells by identity and
// are skipped for cell types that are not comparable.
func Validate(cells []hex.Cell) error {
	var errs []error
	seen := make(map[hex.Cell]int, len(cells))

	for i, cell := range cells {
		if isNil(cell) {
			errs = append(errs, fmt.Errorf("cell %d: %w", i, ErrNilCell))
			continue
		}
		if isComparable(cell) {
			if j, dup := seen[cell]; dup {
				errs = append(errs, fmt.Errorf("cell %d: %w (first at %d)", i, ErrDuplicateCell, j))
			} else {
				seen[cell] = i
			}
		}

		if e := cell.Elevation(); e < 0 {
			errs = append(errs, fmt.Errorf("cell %d: %w: %d", i, ErrNegativeElevation, e))
		}
		if c := cell.Color(); !c.InRange() {
			errs = append(errs, fmt.Errorf("cell %d: %w: %+v", i, ErrColorOutOfRange, c))
		}

		for _, d := range hex.Directions() {
			neighbor, ok := cell.Neighbor(d)
			if !ok {
				continue
			}
			if isNil(neighbor) {
				errs = append(errs, fmt.Errorf("cell %d: %w: %s neighbor", i, ErrNilCell, d))
				continue
			}
			back, ok := neighbor.Neighbor(d.Opposite())
			if !ok || !sameCell(back, cell) {
				errs = append(errs, fmt.Errorf("cell %d: %w: %s neighbor does not link back %s",
					i, ErrAsymmetricNeighbor, d, d.Opposite()))
			}
		}
	}
	return errors.Join(errs...)
}

// isNil also catches typed nil pointers stored in the interface.
func isNil(c hex.Cell) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func isComparable(c hex.Cell) bool {
	return c != nil && reflect.TypeOf(c).Comparable()
}

func sameCell(a, b hex.Cell) bool {
	if !isComparable(a) || !isComparable(b) {
		return true
	}
	return a == b
}
