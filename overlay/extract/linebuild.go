package extract

import (
	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/overlay/graph"
)

// buildLines implements spec.md §4.6's line build: chain InResultLine
// half-edges end to end through nodes where exactly one other
// InResultLine half-edge continues, stopping at branch points and
// dangling ends, and emit each chain once.
func buildLines(g *graph.Graph) geom.MultiLineString {
	visited := make([]bool, len(g.HalfEdges))
	var lines []geom.LineString

	for start := range g.HalfEdges {
		he := &g.HalfEdges[start]
		if !he.InResultLine || visited[start] {
			continue
		}
		if visited[he.Twin] {
			continue
		}

		coords := chainFrom(g, graph.HalfEdgeID(start), visited)
		if len(coords) < 2 {
			continue
		}
		ls, err := geom.NewLineString(geom.NewSequenceXY(coords))
		if err != nil {
			continue
		}
		lines = append(lines, ls)
	}
	return geom.NewMultiLineString(lines)
}

// chainFrom walks forward from id through lineContinuation nodes,
// marking every half-edge (and its twin) visited as it goes, and
// returns the resulting coordinate sequence.
func chainFrom(g *graph.Graph, id graph.HalfEdgeID, visited []bool) []geom.XY {
	he := g.HalfEdgeAt(id)
	coords := []geom.XY{g.Vertices[he.Origin].Coord}

	cur := id
	for {
		he := g.HalfEdgeAt(cur)
		visited[cur] = true
		visited[he.Twin] = true
		coords = append(coords, he.Intermediate...)
		coords = append(coords, g.Vertices[he.Dest].Coord)

		nxt := lineContinuation(g, he)
		if nxt < 0 || visited[nxt] {
			break
		}
		cur = nxt
	}
	return coords
}

// lineContinuation returns the other InResultLine half-edge at he's
// destination, if exactly one exists besides he's own twin — i.e. the
// node has degree exactly two within the result-line subgraph, so the
// chain continues straight through rather than branching.
func lineContinuation(g *graph.Graph, he *graph.HalfEdge) graph.HalfEdgeID {
	v := &g.Vertices[he.Dest]
	var found graph.HalfEdgeID = -1
	count := 0
	for _, id := range v.Incidents {
		if id == he.Twin {
			continue
		}
		if g.HalfEdgeAt(id).InResultLine {
			found = id
			count++
		}
	}
	if count != 1 {
		return -1
	}
	return found
}
