package edge

import "github.com/danielcohen/geomkernel/geom"

// Edge is one merged, fully-noded edge: a coordinate run with no interior
// intersections against any other edge, plus the folded per-input label
// spec.md §4.3 describes. Coords is always in the merge's chosen canonical
// direction; In[i] describes input i's contribution in that direction.
type Edge struct {
	Coords []geom.XY
	Label  Label
}

// Reversed returns e's coordinate run reversed with left/right sides
// swapped per input (spec.md §4.4: "for the reverse half-edge, left/right
// sides are swapped").
func (e *Edge) Reversed() *Edge {
	n := len(e.Coords)
	rev := make([]geom.XY, n)
	for i, xy := range e.Coords {
		rev[n-1-i] = xy
	}
	lbl := e.Label
	for i := range lbl.In {
		lbl.In[i].Left, lbl.In[i].Right = lbl.In[i].Right, lbl.In[i].Left
	}
	return &Edge{Coords: rev, Label: lbl}
}

func (e *Edge) Origin() geom.XY      { return e.Coords[0] }
func (e *Edge) Destination() geom.XY { return e.Coords[len(e.Coords)-1] }

// DirectionVector is the direction of the edge's first segment, used by
// the graph's CCW-around-origin comparator (spec.md §4.4).
func (e *Edge) DirectionVector() geom.XY {
	return e.Coords[1].Sub(e.Coords[0])
}

func (e *Edge) Envelope() geom.Envelope {
	env := geom.NewEnvelope(e.Coords[0])
	for _, xy := range e.Coords[1:] {
		env = env.ExpandToInclude(xy)
	}
	return env
}
