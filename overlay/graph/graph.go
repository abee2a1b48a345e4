// Package graph implements spec.md §4.4: the overlay graph built from
// merged edges. It adapts the teacher's doublyConnectedEdgeList/
// halfEdgeRecord arena (geom/dcel.go) almost directly — same "ids not
// pointers" shape (spec.md §9 design note) so half-edges never form
// reference cycles — generalized from the teacher's single ring-of-two
// polygon boundary linking to the general CCW-around-origin threading a
// multi-input overlay graph needs.
package graph

import (
	"sort"

	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/overlay/edge"
)

type VertexID int32
type HalfEdgeID int32

const noEdge HalfEdgeID = -1

// Vertex is a node of the graph: a coordinate plus the ring of half-edges
// originating there, in CCW rotational order (spec.md §4.4 "Node
// construction").
type Vertex struct {
	Coord     geom.XY
	Incidents []HalfEdgeID
}

// HalfEdge is one directed traversal of a merged edge. Label is the edge's
// label as seen from this half-edge's origin (the reverse half-edge has
// its Left/Right swapped, per spec.md §4.4).
type HalfEdge struct {
	Origin, Dest VertexID
	Intermediate []geom.XY
	Twin         HalfEdgeID
	Next, Prev   HalfEdgeID
	Label        edge.Label

	// Marked, InResultArea, InResultLine, Visited are scratch flags
	// written by the extractor (spec.md §4.6).
	Marked       bool
	InResultArea bool
	InResultLine bool
	Visited      bool
}

// Graph is the arena holding every vertex and half-edge of one overlay
// operation. Vertices and half-edges are referenced by index, not pointer,
// so the structure is trivially copyable/serializable and cannot form a
// reference cycle (spec.md §9).
type Graph struct {
	Vertices  []Vertex
	HalfEdges []HalfEdge

	index map[geom.XY]VertexID
}

// Build constructs the graph from a set of merged edges: allocates a
// forward/symmetric half-edge pair per edge, then threads each vertex's
// incident half-edges into CCW order and derives Next/Prev per the
// standard half-edge algebra (spec.md §4.4 invariants).
func Build(edges []*edge.Edge) *Graph {
	g := &Graph{index: make(map[geom.XY]VertexID)}
	for _, e := range edges {
		g.addEdge(e)
	}
	g.threadNodes()
	return g
}

func (g *Graph) vertexFor(xy geom.XY) VertexID {
	if id, ok := g.index[xy]; ok {
		return id
	}
	id := VertexID(len(g.Vertices))
	g.Vertices = append(g.Vertices, Vertex{Coord: xy})
	g.index[xy] = id
	return id
}

func (g *Graph) addEdge(e *edge.Edge) {
	origin := e.Origin()
	dest := e.Destination()
	vO := g.vertexFor(origin)
	vD := g.vertexFor(dest)

	interFwd := e.Coords[1 : len(e.Coords)-1]
	interRev := make([]geom.XY, len(interFwd))
	for i, xy := range interFwd {
		interRev[len(interFwd)-1-i] = xy
	}

	fwdID := HalfEdgeID(len(g.HalfEdges))
	revID := fwdID + 1

	revLabel := e.Label
	for i := range revLabel.In {
		revLabel.In[i].Left, revLabel.In[i].Right = revLabel.In[i].Right, revLabel.In[i].Left
	}

	g.HalfEdges = append(g.HalfEdges,
		HalfEdge{Origin: vO, Dest: vD, Intermediate: interFwd, Twin: revID, Label: e.Label},
		HalfEdge{Origin: vD, Dest: vO, Intermediate: interRev, Twin: fwdID, Label: revLabel},
	)

	g.Vertices[vO].Incidents = append(g.Vertices[vO].Incidents, fwdID)
	g.Vertices[vD].Incidents = append(g.Vertices[vD].Incidents, revID)
}

// threadNodes sorts every vertex's incident half-edges into CCW rotational
// order (quadrant then cross product, sign-exact per spec.md §4.4) and
// derives Next/Prev so that Next(e) == NextCCW(Twin(e)) and
// Prev(e) == Twin(PrevCCW(e)) — the standard half-edge algebra the
// invariant "prev = sym.next_ccw_around_origin.sym" describes.
func (g *Graph) threadNodes() {
	for vi := range g.Vertices {
		v := &g.Vertices[vi]
		sort.Slice(v.Incidents, func(i, j int) bool {
			return lessCCW(g.direction(v.Incidents[i]), g.direction(v.Incidents[j]))
		})
	}
	// Classic DCEL construction: for consecutive CCW-sorted edges e_i,
	// e_{i+1} originating at v, twin(e_i).next = e_{i+1} and
	// e_{i+1}.prev = twin(e_i) — the half-edge algebra spec.md §4.4
	// states abstractly as "prev = sym.next_ccw_around_origin.sym".
	for vi := range g.Vertices {
		v := &g.Vertices[vi]
		n := len(v.Incidents)
		for i, cur := range v.Incidents {
			nxt := v.Incidents[(i+1)%n]
			twinCur := g.HalfEdges[cur].Twin
			g.HalfEdges[twinCur].Next = nxt
			g.HalfEdges[nxt].Prev = twinCur
		}
	}
}

func (g *Graph) direction(id HalfEdgeID) geom.XY {
	he := g.HalfEdges[id]
	if len(he.Intermediate) > 0 {
		return he.Intermediate[0].Sub(g.Vertices[he.Origin].Coord)
	}
	return g.Vertices[he.Dest].Coord.Sub(g.Vertices[he.Origin].Coord)
}

// lessCCW orders direction vectors by polar angle starting at the
// positive x-axis, without trigonometry: first by quadrant, then by the
// sign of the cross product within a quadrant (spec.md §4.4: "a comparator
// that is sign-exact (quadrant then cross-product)").
func lessCCW(a, b geom.XY) bool {
	qa, qb := quadrant(a), quadrant(b)
	if qa != qb {
		return qa < qb
	}
	cross := a.Cross(b)
	return cross > 0
}

func quadrant(v geom.XY) int {
	switch {
	case v.X > 0 && v.Y >= 0:
		return 0
	case v.X <= 0 && v.Y > 0:
		return 1
	case v.X < 0 && v.Y <= 0:
		return 2
	default:
		return 3
	}
}

// HalfEdgeAt returns the half-edge with the given id.
func (g *Graph) HalfEdgeAt(id HalfEdgeID) *HalfEdge { return &g.HalfEdges[id] }

// ForEachHalfEdge visits every half-edge once, in id order.
func (g *Graph) ForEachHalfEdge(fn func(id HalfEdgeID, he *HalfEdge)) {
	for i := range g.HalfEdges {
		fn(HalfEdgeID(i), &g.HalfEdges[i])
	}
}
