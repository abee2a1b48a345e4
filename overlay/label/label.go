// Package label implements spec.md §4.5: assigning a complete Location to
// every half-edge and half-edge side, for both inputs, via the four-step
// process (propagate area locations, label collapsed edges, propagate line
// locations, locate disconnected edges).
package label

import (
	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/gerr"
	"github.com/danielcohen/geomkernel/overlay/edge"
	"github.com/danielcohen/geomkernel/overlay/graph"
)

// Labeller drives the four steps of spec.md §4.5 over a built graph.
type Labeller struct {
	g       *graph.Graph
	inputs  [2]geom.Geometry
	locator [2]*AreaLocator
}

// New builds a Labeller for g, given the two original input geometries
// (needed by Step D's indexed point-in-area locator).
func New(g *graph.Graph, a, b geom.Geometry) *Labeller {
	l := &Labeller{g: g, inputs: [2]geom.Geometry{a, b}}
	l.locator[0] = NewAreaLocator(a)
	l.locator[1] = NewAreaLocator(b)
	return l
}

// Label runs steps A through D in order, returning a *gerr.TopologyError
// if a side-location conflict or unattachable disconnected edge is found.
func (l *Labeller) Label() error {
	if err := l.stepA(); err != nil {
		return err
	}
	l.stepB()
	l.stepC()
	l.stepD()
	return nil
}

// stepA propagates area locations around each node: for each input that
// contributes area edges at the node, walk the CCW ring, flip the current
// location at each area-edge crossing, and stamp any line/unknown edge of
// the same input with the current location (spec.md §4.5 Step A).
func (l *Labeller) stepA() error {
	for vi := range l.g.Vertices {
		v := &l.g.Vertices[vi]
		n := len(v.Incidents)
		if n == 0 {
			continue
		}
		for input := 0; input < 2; input++ {
			start := -1
			for i, eid := range v.Incidents {
				if l.g.HalfEdgeAt(eid).Label.In[input].Dim == edge.DimArea {
					start = i
					break
				}
			}
			if start == -1 {
				continue
			}
			current := geom.LocationNone
			for k := 0; k < n; k++ {
				he := l.g.HalfEdgeAt(v.Incidents[(start+k)%n])
				in := &he.Label.In[input]
				switch in.Dim {
				case edge.DimArea:
					if current != geom.LocationNone && in.Right != current {
						return gerr.NewTopologyError(v.Coord,
							"labeller: side location conflict for input %d", input)
					}
					current = in.Left
				default:
					if current != geom.LocationNone && in.On == geom.LocationNone {
						in.On = current
					}
				}
			}
			first := l.g.HalfEdgeAt(v.Incidents[start])
			if current != geom.LocationNone && first.Label.In[input].Right != current {
				return gerr.NewTopologyError(v.Coord,
					"labeller: side location conflict for input %d", input)
			}
		}
	}
	return nil
}

// stepB labels collapsed ring edges (area dimension downgraded to line
// during merge, spec.md §4.3) from their parent ring's role: a collapsed
// shell edge has no interior left, so it sits in the exterior; a collapsed
// hole edge leaves the shell's interior intact, so it sits in the
// interior (spec.md §4.5 Step B). It also stamps edges an input
// contributed directly as a line (no ring role) as belonging to that
// input's interior, since such an edge literally is part of the input's
// linework rather than something to locate against it.
func (l *Labeller) stepB() {
	l.g.ForEachHalfEdge(func(_ graph.HalfEdgeID, he *graph.HalfEdge) {
		for input := range he.Label.In {
			in := &he.Label.In[input]
			if in.Dim != edge.DimLine || in.On != geom.LocationNone {
				continue
			}
			switch in.Role {
			case edge.RoleShell:
				in.On = geom.Exterior
			case edge.RoleHole:
				in.On = geom.Interior
			case edge.RoleNone:
				if in.Contributed {
					in.On = geom.Interior
				}
			}
		}
	})
}

// stepC propagates line locations through connected components: starting
// from every half-edge with a known line-location, push its symmetric
// partner and visit every unknown-location half-edge at the same node,
// assigning them the known location (spec.md §4.5 Step C). For an input
// with no area, only an Exterior location is propagated.
func (l *Labeller) stepC() {
	type work struct {
		vertex graph.VertexID
		input  int
		loc    geom.Location
	}
	var queue []work

	seed := func(id graph.HalfEdgeID, he *graph.HalfEdge) {
		for input := range he.Label.In {
			in := &he.Label.In[input]
			known := in.On != geom.LocationNone
			if in.Dim == edge.DimArea {
				// An area edge's own sides are already resolved; its
				// contribution to propagation is the "right" side when it
				// is NOT otherwise known to the other input, handled via
				// the On-setting at stepA for mixed-dim same-input nodes.
				continue
			}
			if known && (l.locator[input] != nil || in.On == geom.Exterior) {
				queue = append(queue, work{vertex: he.Dest, input: input, loc: in.On})
			}
		}
	}
	l.g.ForEachHalfEdge(seed)

	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]
		v := &l.g.Vertices[w.vertex]
		for _, eid := range v.Incidents {
			he := l.g.HalfEdgeAt(eid)
			in := &he.Label.In[w.input]
			if in.Dim == edge.DimArea || in.On != geom.LocationNone {
				continue
			}
			in.On = w.loc
			twin := l.g.HalfEdgeAt(he.Twin)
			tin := &twin.Label.In[w.input]
			if tin.Dim != edge.DimArea && tin.On == geom.LocationNone {
				tin.On = w.loc
				queue = append(queue, work{vertex: twin.Origin, input: w.input, loc: w.loc})
			}
		}
	}
}

// stepD locates every still-unknown edge location by testing its origin
// point against the corresponding input's area with the indexed locator;
// if the input has no area, disconnected line edges default to exterior
// (spec.md §4.5 Step D).
func (l *Labeller) stepD() {
	l.g.ForEachHalfEdge(func(_ graph.HalfEdgeID, he *graph.HalfEdge) {
		for input := range he.Label.In {
			in := &he.Label.In[input]
			if in.Dim == edge.DimArea || in.On != geom.LocationNone {
				continue
			}
			if l.locator[input] == nil {
				in.On = geom.Exterior
				continue
			}
			in.On = edge.ResolvedSide(l.locator[input].Locate(l.g.Vertices[he.Origin].Coord))
		}
	})
}
