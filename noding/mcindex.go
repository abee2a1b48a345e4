package noding

import (
	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/index"
	"github.com/danielcohen/geomkernel/predicate"
)

// Noder is the contract spec.md §4.2 describes: a bag of input
// SegmentStrings in, a set of noded Substrings out.
type Noder interface {
	Node(inputs []*SegmentString) ([]Substring, error)
}

// segRef identifies one segment (a consecutive coordinate pair) within one
// of the input strings, the unit the spatial index operates over — the
// concrete stand-in for spec.md's "monotone chain" (each chain here is a
// single segment; see DESIGN.md for why this simplification still meets
// the noder's contract).
type segRef struct {
	stringIdx int
	segIdx    int
}

// MCIndexNoder is the floating-point noder of spec.md §4.2: it builds a
// spatial index over all input segments and, for each pair whose
// envelopes intersect, runs a robust segment intersector that adds
// proper-interior intersection points to both segments' node lists.
type MCIndexNoder struct{}

func NewMCIndexNoder() *MCIndexNoder { return &MCIndexNoder{} }

func (m *MCIndexNoder) Node(inputs []*SegmentString) ([]Substring, error) {
	strings := make([]*NodedSegmentString, 0, len(inputs))
	for _, in := range inputs {
		if len(dedupeConsecutive(in.Coords)) < 2 {
			continue
		}
		strings = append(strings, newNodedSegmentString(in))
	}
	if len(strings) == 0 {
		return nil, nil
	}

	var items []index.Item
	refs := make(map[int]segRef)
	id := 0
	for si, s := range strings {
		for seg := 0; seg+1 < len(s.orig.Coords); seg++ {
			a, b := s.orig.Coords[seg], s.orig.Coords[seg+1]
			if a.Equals(b) {
				continue
			}
			env := geom.NewEnvelope(a).ExpandToInclude(b)
			items = append(items, index.Item{Box: env, RecordID: id})
			refs[id] = segRef{stringIdx: si, segIdx: seg}
			id++
		}
	}
	tree := index.BulkLoad(items)

	for _, it := range items {
		r1 := refs[it.RecordID]
		s1 := strings[r1.stringIdx]
		a1, b1 := s1.orig.Coords[r1.segIdx], s1.orig.Coords[r1.segIdx+1]

		tree.Query(it.Box, func(recordID int) error {
			if recordID <= it.RecordID {
				// Each unordered pair is processed once, when visited
				// from the lower id's query.
				return nil
			}
			r2 := refs[recordID]
			s2 := strings[r2.stringIdx]
			a2, b2 := s2.orig.Coords[r2.segIdx], s2.orig.Coords[r2.segIdx+1]

			res := predicate.Intersect(a1, b1, a2, b2)
			switch res.Kind {
			case predicate.PointIntersection:
				addNodeIfInterior(s1, r1.segIdx, a1, b1, res.Point)
				addNodeIfInterior(s2, r2.segIdx, a2, b2, res.Point)
			case predicate.CollinearIntersection:
				addNodeIfInterior(s1, r1.segIdx, a1, b1, res.A)
				addNodeIfInterior(s1, r1.segIdx, a1, b1, res.B)
				addNodeIfInterior(s2, r2.segIdx, a2, b2, res.A)
				addNodeIfInterior(s2, r2.segIdx, a2, b2, res.B)
			}
			return nil
		})
	}

	var out []Substring
	for _, s := range strings {
		out = append(out, s.Substrings()...)
	}
	return out, nil
}

// addNodeIfInterior records xy as a node of segment segIdx of s if xy is
// not already one of the segment's own endpoints (spec.md §4.2: "adds
// proper-interior intersection points").
func addNodeIfInterior(s *NodedSegmentString, segIdx int, a, b, xy geom.XY) {
	if xy.Equals(a) || xy.Equals(b) {
		return
	}
	frac := fractionAlong(a, b, xy)
	s.addNode(segIdx, frac, xy)
}

// fractionAlong returns xy's position along a-b as a value in (0,1),
// assuming xy lies on the segment.
func fractionAlong(a, b, xy geom.XY) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx*dx > dy*dy {
		if dx == 0 {
			return 0.5
		}
		return (xy.X - a.X) / dx
	}
	if dy == 0 {
		return 0.5
	}
	return (xy.Y - a.Y) / dy
}
