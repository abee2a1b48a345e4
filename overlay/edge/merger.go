package edge

import (
	"strconv"
	"strings"

	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/gerr"
	"github.com/danielcohen/geomkernel/noding"
)

// Merge implements spec.md §4.3's merger: noded substrings are grouped by
// equivalent coordinate sequence modulo direction, and within each group
// the contributing inputs' labels are folded (dimensions combine, depth
// deltas sum or subtract by relative orientation).
func Merge(subs []noding.Substring) ([]*Edge, error) {
	groups := make(map[string][]noding.Substring)
	var order []string
	for _, s := range subs {
		if len(s.Coords) < 2 {
			continue
		}
		key, _ := canonicalKey(s.Coords)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], s)
	}

	edges := make([]*Edge, 0, len(order))
	for _, key := range order {
		group := groups[key]
		canon, _ := canonicalDirection(group[0].Coords)

		var lbl Label
		contribCount := [2]int{}
		for _, s := range group {
			tag, ok := s.Data.(*segTag)
			if !ok || tag == nil {
				continue
			}
			sign := 1
			if !sameDirection(canon, s.Coords) {
				sign = -1
			}
			in := &lbl.In[tag.input]
			in.Contributed = true
			switch tag.dim {
			case DimArea:
				if in.Dim != DimArea {
					in.Dim = DimArea
				}
				in.Role = tag.role
				in.DepthDelta += sign * tag.depthDelta
				contribCount[tag.input]++
			case DimLine:
				if in.Dim == DimUnknown {
					in.Dim = DimLine
				}
			}
		}

		for i := range lbl.In {
			in := &lbl.In[i]
			if in.Dim != DimArea {
				continue
			}
			if contribCount[i] > 0 && abs(in.DepthDelta) > contribCount[i] {
				return nil, gerr.NewTopologyError(canon[0],
					"edge merge: input %d depth delta %d inconsistent with %d contributions", i, in.DepthDelta, contribCount[i])
			}
			switch {
			case in.DepthDelta > 0:
				in.Left, in.Right = geom.Exterior, geom.Interior
			case in.DepthDelta < 0:
				in.Left, in.Right = geom.Interior, geom.Exterior
			default:
				// Net area contribution cancels: this input's occurrence of
				// the edge collapses to a line (spec.md §4.3: "An edge whose
				// combined depth delta is zero ... becomes a collapsed line
				// edge").
				in.Dim = DimLine
			}
		}

		if !lbl.In[0].Contributed && !lbl.In[1].Contributed {
			continue
		}
		edges = append(edges, &Edge{Coords: canon, Label: lbl})
	}
	return edges, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// canonicalKey returns a direction-independent string key for coords,
// grouping a substring with its reverse.
func canonicalKey(coords []geom.XY) (string, bool) {
	canon, reversed := canonicalDirection(coords)
	var b strings.Builder
	for _, xy := range canon {
		b.WriteString(strconv.FormatFloat(xy.X, 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(xy.Y, 'g', -1, 64))
		b.WriteByte(';')
	}
	return b.String(), reversed
}

// canonicalDirection returns coords in whichever of its two directions
// sorts lexicographically first, plus whether that required reversing.
func canonicalDirection(coords []geom.XY) ([]geom.XY, bool) {
	rev := make([]geom.XY, len(coords))
	for i, xy := range coords {
		rev[len(coords)-1-i] = xy
	}
	if lessSeq(rev, coords) {
		return rev, true
	}
	return coords, false
}

func sameDirection(canon, other []geom.XY) bool {
	if len(canon) != len(other) {
		return false
	}
	for i := range canon {
		if !canon[i].Equals(other[i]) {
			return false
		}
	}
	return true
}

func lessSeq(a, b []geom.XY) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].X != b[i].X {
			return a[i].X < b[i].X
		}
		if a[i].Y != b[i].Y {
			return a[i].Y < b[i].Y
		}
	}
	return len(a) < len(b)
}
