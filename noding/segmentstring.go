// Package noding implements spec.md §4.2: given a bag of input segment
// strings, produce a fully noded set where every interior intersection has
// become a shared vertex. Two algorithms are provided (MCIndexNoder,
// SnapRoundingNoder) plus a ValidatingNoder wrapper, matching spec.md's
// "two noder variants" and "validation mode".
package noding

import (
	"sort"

	"github.com/danielcohen/geomkernel/geom"
)

// nodeParam is a split position along a segment string: a segment index
// plus a fractional offset within that segment (spec.md §3
// NodedSegmentString).
type nodeParam struct {
	segIndex int
	frac     float64
	xy       geom.XY
}

// SegmentString is an indexable vertex sequence carrying arbitrary user
// data, the noder's input unit (spec.md §4.2).
type SegmentString struct {
	Coords []geom.XY
	Data   any
}

// NodedSegmentString is a SegmentString plus the immutable set of node
// positions collected for it during noding (spec.md §3).
type NodedSegmentString struct {
	orig  *SegmentString
	nodes []nodeParam
}

func newNodedSegmentString(s *SegmentString) *NodedSegmentString {
	n := &NodedSegmentString{orig: s}
	// Every original vertex is implicitly a node boundary.
	for i := range s.Coords {
		n.nodes = append(n.nodes, nodeParam{segIndex: i, frac: 0, xy: s.Coords[i]})
	}
	return n
}

func (n *NodedSegmentString) addNode(segIndex int, frac float64, xy geom.XY) {
	n.nodes = append(n.nodes, nodeParam{segIndex: segIndex, frac: frac, xy: xy})
}

// Substrings splits the string at every collected node, producing the
// output edges the overlay consumes. Zero-length substrings are dropped
// (spec.md §4.2 contract: "zero-length segments are dropped").
func (n *NodedSegmentString) Substrings() []Substring {
	sort.Slice(n.nodes, func(i, j int) bool {
		a, b := n.nodes[i], n.nodes[j]
		if a.segIndex != b.segIndex {
			return a.segIndex < b.segIndex
		}
		return a.frac < b.frac
	})

	uniq := dedupeNodes(n.nodes)

	var out []Substring
	for i := 0; i+1 < len(uniq); i++ {
		a, b := uniq[i], uniq[i+1]
		coords := []geom.XY{a.xy}
		for segIdx := a.segIndex + 1; segIdx <= b.segIndex && segIdx < len(n.orig.Coords); segIdx++ {
			if segIdx == b.segIndex && b.frac == 0 {
				break
			}
			coords = append(coords, n.orig.Coords[segIdx])
		}
		coords = append(coords, b.xy)
		coords = dedupeConsecutive(coords)
		if len(coords) < 2 {
			continue
		}
		out = append(out, Substring{Coords: coords, Data: n.orig.Data})
	}
	return out
}

func dedupeNodes(nodes []nodeParam) []nodeParam {
	var out []nodeParam
	for _, n := range nodes {
		if len(out) > 0 {
			last := out[len(out)-1]
			if last.segIndex == n.segIndex && last.frac == n.frac {
				continue
			}
			if last.xy.Equals(n.xy) && last.segIndex == n.segIndex {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

func dedupeConsecutive(xys []geom.XY) []geom.XY {
	var out []geom.XY
	for _, xy := range xys {
		if len(out) > 0 && out[len(out)-1].Equals(xy) {
			continue
		}
		out = append(out, xy)
	}
	return out
}

// Substring is one noded output edge: a coordinate run with no interior
// intersections against any other emitted substring, plus the user data
// carried through from its originating SegmentString (spec.md §4.2
// contract: "Attached user data is preserved on each substring").
type Substring struct {
	Coords []geom.XY
	Data   any
}

// Envelope returns the substring's bounding envelope.
func (s Substring) Envelope() geom.Envelope {
	env := geom.EmptyEnvelope()
	for _, xy := range s.Coords {
		env = env.ExpandToInclude(xy)
	}
	return env
}
