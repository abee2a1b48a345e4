package relate

import (
	"github.com/danielcohen/geomkernel/geom"
)

// BoundaryNodeRule decides which line endpoints count as boundary points
// (spec.md §4.7 "boundaries follow the configured BoundaryNodeRule").
type BoundaryNodeRule int8

const (
	// Mod2Rule (the OGC default): an endpoint is boundary iff it is
	// shared by an odd number of linestring ends.
	Mod2Rule BoundaryNodeRule = iota
	// EndpointRule: every linestring endpoint is boundary, regardless
	// of how many lines share it.
	EndpointRule
)

// boundaryOf returns g's boundary as a geometry: a MultiLineString of
// ring coordinates for areal input, a MultiPoint of qualifying
// linestring endpoints for lineal input, or an empty MultiPoint for
// puntal input (points have no boundary).
func boundaryOf(g geom.Geometry, rule BoundaryNodeRule) geom.Geometry {
	switch {
	case geom.HasArea(g):
		var lines []geom.LineString
		for _, seq := range geom.AreaRings(g) {
			ls, err := geom.NewLineString(seq)
			if err == nil {
				lines = append(lines, ls)
			}
		}
		return geom.NewMultiLineString(lines)
	case geom.IsLineal(g):
		return geom.NewMultiPoint(lineBoundaryPoints(g, rule))
	default:
		return geom.NewMultiPoint(nil)
	}
}

func lineBoundaryPoints(g geom.Geometry, rule BoundaryNodeRule) []geom.Point {
	counts := make(map[geom.XY]int)
	var order []geom.XY
	walkLines(g, func(seq geom.Sequence) {
		if seq.Length() < 2 {
			return
		}
		for _, end := range []geom.XY{seq.GetXY(0), seq.GetXY(seq.Length() - 1)} {
			if _, ok := counts[end]; !ok {
				order = append(order, end)
			}
			counts[end]++
		}
	})

	var pts []geom.Point
	for _, xy := range order {
		n := counts[xy]
		switch rule {
		case EndpointRule:
			pts = append(pts, geom.NewPoint(xy))
		default:
			if n%2 == 1 {
				pts = append(pts, geom.NewPoint(xy))
			}
		}
	}
	return pts
}

func walkLines(g geom.Geometry, fn func(geom.Sequence)) {
	switch t := g.(type) {
	case geom.LineString:
		fn(t.Coordinates())
	case geom.MultiLineString:
		for i := 0; i < t.NumLineStrings(); i++ {
			fn(t.LineStringN(i).Coordinates())
		}
	case geom.GeometryCollection:
		for i := 0; i < t.NumGeometries(); i++ {
			walkLines(t.GeometryN(i), fn)
		}
	}
}
