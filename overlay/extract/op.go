// Package extract implements spec.md §4.6: the result extractor that
// turns a labelled overlay graph into a result geometry by marking,
// linking, orienting, assigning holes and emitting.
package extract

import (
	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/overlay/edge"
)

// Op is the overlay operation code (spec.md §6).
type Op int8

const (
	Intersection Op = iota + 1
	Union
	Difference
	SymmetricDifference
)

func (op Op) String() string {
	switch op {
	case Intersection:
		return "Intersection"
	case Union:
		return "Union"
	case Difference:
		return "Difference"
	case SymmetricDifference:
		return "SymmetricDifference"
	default:
		return "Unknown"
	}
}

// MarkTest implements spec.md §4.6's inclusion rules, given the resolved
// interior/exterior status for each input, reused by the top-level
// overlay package's point-only and mixed-points dispatch paths (which
// never build a graph, so have no half-edge to route through markArea).
func MarkTest(op Op, a, b bool) bool {
	return markTest(op, a, b)
}

func markTest(op Op, a, b bool) bool {
	switch op {
	case Intersection:
		return a && b
	case Union:
		return a || b
	case Difference:
		return a && !b
	case SymmetricDifference:
		return a != b
	default:
		return false
	}
}

// sideLocation reports whether in's relevant side (the area side for an
// area-dimension contribution, the line location otherwise) is Interior,
// treating Boundary as Interior per spec.md §4.6.
func sideLocation(in edge.InputLabel) bool {
	if in.Dim == edge.DimArea {
		return edge.ResolvedSide(in.Right) == geom.Interior
	}
	return edge.ResolvedSide(in.On) == geom.Interior
}
