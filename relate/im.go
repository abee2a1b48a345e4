// Package relate implements spec.md §4.7: the DE-9IM predicate engine.
// Like RelateNG, it computes the matrix with a topology-computer pass
// over a single noded graph of both inputs (relate/topology.go), reusing
// the overlay engine's own labeller to resolve every edge's and vertex's
// location directly, rather than reading cell dimensions off a series of
// overlay result geometries.
package relate

import (
	"strings"

	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/gerr"
)

// IntersectionMatrix is the 3x3 DE-9IM matrix (spec.md §3 GLOSSARY,
// §4.7). Cell values are -1 (F, empty), 0, 1 or 2 (dimension of the
// corresponding intersection), indexed [rowLocation][colLocation] with
// Interior=0, Boundary=1, Exterior=2 (geom.Location's own ordering minus
// LocationNone).
type IntersectionMatrix struct {
	cells [3][3]int8
}

func locIndex(l geom.Location) int {
	switch l {
	case geom.Interior:
		return 0
	case geom.Boundary:
		return 1
	case geom.Exterior:
		return 2
	default:
		panic("relate: LocationNone has no IM index")
	}
}

func newFMatrix() *IntersectionMatrix {
	m := &IntersectionMatrix{}
	for i := range m.cells {
		for j := range m.cells[i] {
			m.cells[i][j] = -1
		}
	}
	return m
}

func (m *IntersectionMatrix) set(row, col geom.Location, dim int) {
	if dim > int(m.cells[locIndex(row)][locIndex(col)]) {
		m.cells[locIndex(row)][locIndex(col)] = int8(dim)
	}
}

// Get returns the cell for (row, col): -1 for F, else 0/1/2.
func (m *IntersectionMatrix) Get(row, col geom.Location) int {
	return int(m.cells[locIndex(row)][locIndex(col)])
}

// String renders the matrix as the standard 9-character DE-9IM pattern:
// II IB IE BI BB BE EI EB EE, each cell as F/0/1/2.
func (m *IntersectionMatrix) String() string {
	var b strings.Builder
	for _, row := range m.cells {
		for _, v := range row {
			if v < 0 {
				b.WriteByte('F')
			} else {
				b.WriteByte(byte('0' + v))
			}
		}
	}
	return b.String()
}

// Matches reports whether the matrix satisfies pattern, a 9-character
// DE-9IM template using T (any non-F), F, 0, 1, 2 or * (any) per cell, in
// the same II IB IE BI BB BE EI EB EE order as String (spec.md §4.7
// "user-supplied DE-9IM pattern strings").
func (m *IntersectionMatrix) Matches(pattern string) (bool, error) {
	if len(pattern) != 9 {
		return false, gerr.NewInvalidArgumentError("relate: pattern %q must be exactly 9 characters", pattern)
	}
	i := 0
	for _, row := range m.cells {
		for _, v := range row {
			if !matchCell(pattern[i], v) {
				return false, nil
			}
			i++
		}
	}
	return true, nil
}

func matchCell(p byte, v int8) bool {
	switch p {
	case '*':
		return true
	case 'T':
		return v >= 0
	case 'F':
		return v < 0
	case '0', '1', '2':
		return v == int8(p-'0')
	default:
		return false
	}
}
