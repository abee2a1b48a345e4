package valid

import (
	"fmt"

	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/noding"
	"github.com/danielcohen/geomkernel/overlay/edge"
	"github.com/danielcohen/geomkernel/overlay/extract"
	"github.com/danielcohen/geomkernel/overlay/graph"
)

// MakeValid repairs g into a valid geometry (spec.md §4.8 "MakeValid...
// fully noded boundary → area from BuildArea polygonisation → residual
// cut edges and collapsed points recombined into a geometry collection
// of the same overall dimension"), grounded on GEOS's MakeValid.cpp.
//
// MakeValid returns an error only when noding, edge merging or polygon
// building fails. A fully degenerate input (e.g. a ring collapsed to a
// single point) repairs down to an empty geometry of the appropriate
// dimension.
func MakeValid(g geom.Geometry, pm geom.PrecisionModel) (geom.Geometry, error) {
	if geom.IsPuntal(g) {
		// Points have no boundary to renode and no area to build; a
		// puntal input is always already valid.
		return g, nil
	}

	inputs := edge.BuildInputSegmentStrings(g, 0)
	if len(inputs) == 0 {
		return emptyOfDimension(g), nil
	}

	noder := noding.NewMCIndexNoder()
	subs, err := noder.Node(inputs)
	if err != nil {
		return nil, err
	}
	edges, err := edge.Merge(subs)
	if err != nil {
		return nil, err
	}

	g2 := graph.Build(edges)
	for i := range g2.HalfEdges {
		g2.HalfEdges[i].Marked = true
	}

	var area geom.MultiPolygon
	if geom.HasArea(g) {
		area, err = extract.BuildPolygons(g2, pm)
		if err != nil {
			return nil, err
		}
	}

	residual := residualLines(edges, area)

	switch {
	case area.NumGeometries() > 0 && len(residual) > 0:
		return geom.NewGeometryCollection([]geom.Geometry{area, geom.NewMultiLineString(residual)}), nil
	case area.NumGeometries() > 0:
		return area, nil
	case len(residual) > 0:
		return geom.NewMultiLineString(residual), nil
	default:
		return emptyOfDimension(g), nil
	}
}

// residualLines returns, as standalone linestrings, every merged edge
// that the area build did not consume into a kept polygon ring — a
// dangling spur off a ring, or a cut edge left over from a
// self-intersecting boundary once it is resolved into disjoint area
// pieces.
func residualLines(edges []*edge.Edge, area geom.MultiPolygon) []geom.LineString {
	covered := make(map[string]bool)
	for i := 0; i < area.NumPolygons(); i++ {
		markRingSegments(area.PolygonN(i).ExteriorRing(), covered)
		for h := 0; h < area.PolygonN(i).NumInteriorRings(); h++ {
			markRingSegments(area.PolygonN(i).InteriorRingN(h), covered)
		}
	}

	var out []geom.LineString
	seen := make(map[string]bool)
	for _, e := range edges {
		if len(e.Coords) < 2 {
			continue
		}
		key := segmentKey(e.Coords[0], e.Coords[len(e.Coords)-1])
		if covered[key] || seen[key] {
			continue
		}
		seen[key] = true
		ls, err := geom.NewLineString(geom.NewSequenceXY(e.Coords))
		if err == nil && !ls.IsEmpty() {
			out = append(out, ls)
		}
	}
	return out
}

func markRingSegments(r geom.LinearRing, covered map[string]bool) {
	xys := r.Coordinates().XYs()
	for i := 0; i+1 < len(xys); i++ {
		covered[segmentKey(xys[i], xys[i+1])] = true
	}
}

func segmentKey(a, b geom.XY) string {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return fmt.Sprintf("%g,%g-%g,%g", a.X, a.Y, b.X, b.Y)
}

func emptyOfDimension(g geom.Geometry) geom.Geometry {
	switch g.Dimension() {
	case 2:
		return geom.NewMultiPolygon(nil)
	case 1:
		return geom.NewMultiLineString(nil)
	default:
		return geom.NewMultiPoint(nil)
	}
}
