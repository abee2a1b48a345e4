// Package edge implements spec.md §4.3: turning noded substrings into
// merged edges carrying a per-input topology label, directly generalizing
// the teacher's halfEdgeRecord/edgeLabel uint8 bitmask (geom/dcel.go) into
// the full per-input label the overlay labeller and extractor consume.
package edge

import "github.com/danielcohen/geomkernel/geom"

// Dim is an input's contributed dimension for one merged edge.
type Dim int8

const (
	DimUnknown Dim = iota
	DimLine
	DimArea
)

// Role distinguishes which ring an area edge came from, needed by the
// labeller's Step B (collapsed edges take their location from their
// parent ring's role).
type Role int8

const (
	RoleNone Role = iota
	RoleShell
	RoleHole
)

// InputLabel is one input's contribution to a merged edge's label
// (spec.md §3 TopologyLabel, one slot per input).
type InputLabel struct {
	Contributed bool
	Dim         Dim
	Role        Role

	// DepthDelta is the signed sum spec.md §4.3 describes: "+1 when the
	// edge is canonically oriented (exterior left, interior right), else
	// -1", summed across equally-oriented contributions and subtracted
	// across oppositely-oriented ones. Meaningful only while merging;
	// consumed to resolve Left/Right below.
	DepthDelta int

	// Left, Right are the resolved area-side locations (set once
	// DepthDelta is folded). On is the edge-as-a-whole location used for
	// line inputs and assigned by the labeller (spec.md §4.5); LocationNone
	// until assigned.
	Left, Right geom.Location
	On          geom.Location
}

// Label is the full two-input topology label of a merged edge.
type Label struct {
	In [2]InputLabel
}

// ResolvedSide returns the location of the given side, treating Boundary
// as Interior per spec.md §4.6's mark-step rule ("Boundary locations are
// treated as Interior for these tests").
func ResolvedSide(loc geom.Location) geom.Location {
	if loc == geom.Boundary {
		return geom.Interior
	}
	return loc
}
