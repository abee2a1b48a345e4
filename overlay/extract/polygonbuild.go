package extract

import (
	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/gerr"
	"github.com/danielcohen/geomkernel/index"
	"github.com/danielcohen/geomkernel/overlay/graph"
	"github.com/danielcohen/geomkernel/predicate"
)

// BuildPolygons implements spec.md §4.6's polygon build: link marked
// half-edges into maximal rings, decompose self-touching maximal rings
// into minimal rings, orient, assign holes to shells, and emit. Exported
// for reuse by valid.MakeValid's BuildArea-style polygonization, which
// marks every half-edge of a self-noded boundary rather than routing
// through an overlay op's mark step.
func BuildPolygons(g *graph.Graph, pm geom.PrecisionModel) (geom.MultiPolygon, error) {
	maximal := traceMaximalRings(g)

	var shells, holes []geom.LinearRing
	for _, ring := range maximal {
		for _, minimal := range decomposeRing(ring) {
			minimal = dedupeClosedRing(minimal)
			if len(minimal) < 4 {
				continue
			}
			lr, err := geom.NewLinearRing(geom.NewSequenceXY(minimal).MakePrecise(pm))
			if err != nil {
				continue
			}
			if !lr.IsCCW() {
				shells = append(shells, lr)
			} else {
				holes = append(holes, lr)
			}
		}
	}

	if len(shells) == 0 {
		return geom.NewMultiPolygon(nil), nil
	}

	shellIdx := index.NewDynamic()
	for i, s := range shells {
		shellIdx.Insert(index.Item{Box: s.Envelope(), RecordID: i})
	}

	assigned := make([][]geom.LinearRing, len(shells))
	for _, h := range holes {
		best := -1
		var bestArea float64
		p := h.Coordinates().GetXY(0)
		shellIdx.Query(geom.NewEnvelope(p), func(recordID int) error {
			s := shells[recordID]
			if !s.Envelope().Contains(p) {
				return nil
			}
			if predicate.PointInRing(p, s.Coordinates().XYs()) == geom.Exterior {
				return nil
			}
			area := s.Envelope().MaxX - s.Envelope().MinX
			area *= s.Envelope().MaxY - s.Envelope().MinY
			if best == -1 || area < bestArea {
				best, bestArea = recordID, area
			}
			return nil
		})
		if best == -1 {
			return geom.MultiPolygon{}, gerr.NewTopologyError(p, "extractor: hole could not be assigned to any shell")
		}
		assigned[best] = append(assigned[best], h)
	}

	polys := make([]geom.Polygon, len(shells))
	for i, s := range shells {
		polys[i] = geom.NewPolygon(s, assigned[i])
	}
	return geom.NewMultiPolygon(polys), nil
}

// traceMaximalRings follows Next pointers among marked half-edges, each
// starting from an unvisited marked half-edge, wrapping around to a
// maximal ring whose interior lies on the right, so shells come out
// clockwise and holes counter-clockwise (spec.md §4.6 step 1).
func traceMaximalRings(g *graph.Graph) [][]geom.XY {
	visited := make([]bool, len(g.HalfEdges))
	var rings [][]geom.XY

	for start := range g.HalfEdges {
		if !g.HalfEdges[start].Marked || visited[start] {
			continue
		}
		var coords []geom.XY
		cur := graph.HalfEdgeID(start)
		for {
			visited[cur] = true
			he := g.HalfEdgeAt(cur)
			coords = append(coords, g.Vertices[he.Origin].Coord)
			coords = append(coords, he.Intermediate...)

			nxt := nextMarkedAtNode(g, he)
			if nxt < 0 {
				break
			}
			cur = nxt
			if visited[cur] && cur == graph.HalfEdgeID(start) {
				break
			}
			if visited[cur] {
				// Revisiting a different already-traced edge indicates a
				// malformed marking; stop rather than loop forever.
				break
			}
		}
		coords = append(coords, coords[0])
		rings = append(rings, coords)
	}
	return rings
}

// nextMarkedAtNode finds the next marked outgoing half-edge at he's
// destination, in CCW order starting just after he's arrival direction
// (spec.md §4.6: "at each node, choosing at each incoming marked half-edge
// the next outgoing marked half-edge in CCW order").
func nextMarkedAtNode(g *graph.Graph, he *graph.HalfEdge) graph.HalfEdgeID {
	v := &g.Vertices[he.Dest]
	n := len(v.Incidents)
	pos := -1
	for i, id := range v.Incidents {
		if id == he.Twin {
			pos = i
			break
		}
	}
	if pos == -1 {
		return -1
	}
	for k := 1; k <= n; k++ {
		cand := v.Incidents[(pos+k)%n]
		if g.HalfEdgeAt(cand).Marked {
			return cand
		}
	}
	return -1
}

// decomposeRing splits a maximal ring with repeated vertices into simple
// minimal rings (spec.md §4.6 step 2), using a stack-based loop-extraction
// pass: each time a coordinate repeats a vertex still on the stack, the
// loop between the two occurrences is popped off as its own ring.
func decomposeRing(coords []geom.XY) [][]geom.XY {
	if len(coords) < 2 {
		return nil
	}
	open := coords[:len(coords)-1] // drop the duplicated closing point

	var stack []geom.XY
	pos := make(map[geom.XY]int)
	var rings [][]geom.XY

	for _, p := range open {
		if idx, ok := pos[p]; ok {
			loop := append([]geom.XY{}, stack[idx:]...)
			loop = append(loop, p)
			rings = append(rings, loop)
			for _, q := range stack[idx+1:] {
				delete(pos, q)
			}
			stack = stack[:idx+1]
			continue
		}
		pos[p] = len(stack)
		stack = append(stack, p)
	}
	if len(stack) >= 3 {
		loop := append([]geom.XY{}, stack...)
		loop = append(loop, stack[0])
		rings = append(rings, loop)
	}
	return rings
}

func dedupeClosedRing(coords []geom.XY) []geom.XY {
	var out []geom.XY
	for _, xy := range coords {
		if len(out) > 0 && out[len(out)-1].Equals(xy) {
			continue
		}
		out = append(out, xy)
	}
	return out
}
