package relate

import (
	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/noding"
	"github.com/danielcohen/geomkernel/overlay/edge"
	"github.com/danielcohen/geomkernel/overlay/graph"
	"github.com/danielcohen/geomkernel/overlay/label"
)

// computeGraphIM is the topology computer spec.md §4.7 describes for two
// non-puntal inputs: node both inputs into one merged graph, reuse the
// overlay engine's own labeller (overlay/label) to resolve every edge's
// and vertex's Interior/Boundary/Exterior location against both inputs,
// then read the DE-9IM cells straight off those resolved locations. No
// overlay.Overlay call happens anywhere in this path — a merged edge with
// In[i].Dim == DimArea literally IS input i's boundary ring, and every
// other edge's In[i].On has already been fully resolved to Interior or
// Exterior by the labeller's steps B through D, whether or not input i
// contributed that particular edge.
func computeGraphIM(a, b geom.Geometry, rule BoundaryNodeRule) (*IntersectionMatrix, error) {
	var inputs []*noding.SegmentString
	inputs = append(inputs, edge.BuildInputSegmentStrings(a, 0)...)
	inputs = append(inputs, edge.BuildInputSegmentStrings(b, 1)...)

	noder := noding.NewValidatingNoder(noding.NewMCIndexNoder())
	subs, err := noder.Node(inputs)
	if err != nil {
		return nil, err
	}
	edges, err := edge.Merge(subs)
	if err != nil {
		return nil, err
	}
	g := graph.Build(edges)

	lbl := label.New(g, a, b)
	if err := lbl.Label(); err != nil {
		return nil, err
	}

	hasArea := [2]bool{geom.HasArea(a), geom.HasArea(b)}
	var locators [2]*label.AreaLocator
	if hasArea[0] {
		locators[0] = label.NewAreaLocator(a)
	}
	if hasArea[1] {
		locators[1] = label.NewAreaLocator(b)
	}
	boundarySets := [2]map[geom.XY]bool{boundaryPointSet(a, rule), boundaryPointSet(b, rule)}

	m := newFMatrix()
	m.set(geom.Exterior, geom.Exterior, 2)

	// faceLocation locates the face on one side of an edge for one input:
	// the input's own ring edge carries its side locations, any other edge
	// of an areal input lies wholly inside or outside it, and an input with
	// no area has no face in its interior.
	faceLocation := func(he *graph.HalfEdge, input int, left bool) geom.Location {
		in := he.Label.In[input]
		switch {
		case in.Dim == edge.DimArea && left:
			return in.Left
		case in.Dim == edge.DimArea:
			return in.Right
		case hasArea[input]:
			return in.On
		}
		return geom.Exterior
	}

	// Half-edges are allocated in mutual-twin pairs (id, id+1) by
	// graph.Build; visiting one of each pair is enough to see every
	// merged edge exactly once.
	for i := 0; i+1 < len(g.HalfEdges); i += 2 {
		he := g.HalfEdgeAt(graph.HalfEdgeID(i))
		locA := edgeLocation(he, 0)
		locB := edgeLocation(he, 1)
		m.set(locA, locB, 1)
		for _, left := range []bool{true, false} {
			m.set(faceLocation(he, 0, left), faceLocation(he, 1, left), 2)
		}
	}

	for vi := range g.Vertices {
		v := &g.Vertices[vi]
		locA := vertexLocation(g, v, 0, hasArea[0], locators[0], boundarySets[0])
		locB := vertexLocation(g, v, 1, hasArea[1], locators[1], boundarySets[1])
		m.set(locA, locB, 0)
	}

	return m, nil
}

func edgeLocation(he *graph.HalfEdge, input int) geom.Location {
	in := he.Label.In[input]
	if in.Dim == edge.DimArea {
		return geom.Boundary
	}
	return in.On
}

// vertexLocation locates a graph vertex with respect to one input. Area
// inputs are located with the same indexed locator the labeller itself
// uses. Lineal inputs are boundary iff the vertex's coordinate is one of
// the input's own qualifying endpoints (spec.md §4.7's BoundaryNodeRule,
// computed directly from the original geometry since subdividing a line
// during noding never moves its endpoints); otherwise the vertex is
// interior iff some incident edge is a contributed line edge of that
// input, else exterior.
func vertexLocation(g *graph.Graph, v *graph.Vertex, input int, hasArea bool, locator *label.AreaLocator, boundarySet map[geom.XY]bool) geom.Location {
	if hasArea {
		return locator.Locate(v.Coord)
	}
	if boundarySet[v.Coord] {
		return geom.Boundary
	}
	for _, eid := range v.Incidents {
		in := g.HalfEdgeAt(eid).Label.In[input]
		if in.Dim == edge.DimLine && in.Contributed {
			return geom.Interior
		}
	}
	return geom.Exterior
}
