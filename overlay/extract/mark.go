package extract

import (
	"github.com/danielcohen/geomkernel/overlay/edge"
	"github.com/danielcohen/geomkernel/overlay/graph"
)

// markArea implements spec.md §4.6's mark step for area inclusion: each
// merged edge's forward/reverse half-edge pair is tested independently;
// if both sides mark true (a zero-width sliver), both are unmarked
// (dimensional collapse). Graph.Build always appends a half-edge's
// forward and symmetric twin consecutively, so half-edges are processed
// in (2k, 2k+1) pairs.
func markArea(g *graph.Graph, op Op) {
	for i := 0; i+1 < len(g.HalfEdges); i += 2 {
		fwd := &g.HalfEdges[i]
		rev := &g.HalfEdges[i+1]

		mf := markTest(op, sideLocation(fwd.Label.In[0]), sideLocation(fwd.Label.In[1]))
		mr := markTest(op, sideLocation(rev.Label.In[0]), sideLocation(rev.Label.In[1]))
		if mf && mr {
			mf, mr = false, false
		}
		fwd.Marked, fwd.InResultArea = mf, mf
		rev.Marked, rev.InResultArea = mr, mr
	}
}

func hasLineContribution(he *graph.HalfEdge) bool {
	return he.Label.In[0].Dim == edge.DimLine || he.Label.In[1].Dim == edge.DimLine
}

// markLines implements the line-build predicate of spec.md §4.6: an edge
// contributed as a line by at least one input is a candidate result line
// edge under the same op inclusion test, provided it is not already part
// of the result area boundary. No strict-mode filtering is applied: a
// marked line edge is kept whether or not it lies inside the built result
// area.
func markLines(g *graph.Graph, op Op) {
	for i := 0; i+1 < len(g.HalfEdges); i += 2 {
		fwd := &g.HalfEdges[i]
		rev := &g.HalfEdges[i+1]
		if fwd.InResultArea || rev.InResultArea {
			continue
		}
		if !hasLineContribution(fwd) {
			continue
		}
		include := markTest(op, sideLocation(fwd.Label.In[0]), sideLocation(fwd.Label.In[1]))
		fwd.InResultLine = include
		rev.InResultLine = include
	}
}
