package extract

import (
	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/overlay/graph"
)

// Run implements spec.md §4.6 end to end over an already-labelled graph:
// mark half-edges for area and line inclusion, trace and emit result
// polygons, then result lines, combining them into one result geometry.
// A result with no area and no lines is an empty MultiPolygon: point
// results are never produced here (spec.md §4.6 "Point build. For
// intersection only..." is handled entirely by the top-level overlay
// package's mixed-points dispatch, since point inputs never enter the
// noded edge graph in the first place).
func Run(g *graph.Graph, op Op, pm geom.PrecisionModel) (geom.Geometry, error) {
	markArea(g, op)
	markLines(g, op)

	polys, err := BuildPolygons(g, pm)
	if err != nil {
		return nil, err
	}
	lines := buildLines(g)

	switch {
	case polys.NumGeometries() > 0 && lines.NumGeometries() > 0:
		return geom.NewGeometryCollection([]geom.Geometry{polys, lines}), nil
	case polys.NumGeometries() > 0:
		return polys, nil
	case lines.NumGeometries() > 0:
		return lines, nil
	default:
		return polys, nil
	}
}
