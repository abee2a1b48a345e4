package edge

import (
	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/noding"
)

// segTag rides as a noding.SegmentString's Data payload, carrying enough of
// the edge label to reconstruct it once the noder has split the string at
// every intersection (spec.md §4.3: each noded substring inherits its
// parent's partial label).
type segTag struct {
	input      int
	dim        Dim
	role       Role
	depthDelta int
}

// BuildInputSegmentStrings walks g (input index 0 or 1) and returns one
// noding.SegmentString per ring/linestring, tagged with the partial label
// the merger needs: dimension, ring role and the canonical-orientation
// depth delta (spec.md §4.3's "canonical ring orientation is shell=
// clockwise, hole=counterclockwise").
func BuildInputSegmentStrings(g geom.Geometry, input int) []*noding.SegmentString {
	var out []*noding.SegmentString
	walkLeaves(g, func(leaf geom.Geometry) {
		switch t := leaf.(type) {
		case geom.Polygon:
			appendPolygon(&out, t, input)
		case geom.MultiPolygon:
			for i := 0; i < t.NumPolygons(); i++ {
				appendPolygon(&out, t.PolygonN(i), input)
			}
		case geom.LineString:
			appendLine(&out, t, input)
		case geom.MultiLineString:
			for i := 0; i < t.NumLineStrings(); i++ {
				appendLine(&out, t.LineStringN(i), input)
			}
		}
	})
	return out
}

func walkLeaves(g geom.Geometry, fn func(geom.Geometry)) {
	if gc, ok := g.(geom.GeometryCollection); ok {
		for i := 0; i < gc.NumGeometries(); i++ {
			walkLeaves(gc.GeometryN(i), fn)
		}
		return
	}
	fn(g)
}

func appendPolygon(out *[]*noding.SegmentString, poly geom.Polygon, input int) {
	if poly.IsEmpty() {
		return
	}
	// Canonical: shell clockwise (not CCW), holes counter-clockwise.
	canon := poly.ForceOrientation(false)
	*out = append(*out, ringToSegmentString(canon.ExteriorRing(), input, RoleShell))
	for i := 0; i < canon.NumInteriorRings(); i++ {
		*out = append(*out, ringToSegmentString(canon.InteriorRingN(i), input, RoleHole))
	}
}

func ringToSegmentString(ring geom.LinearRing, input int, role Role) *noding.SegmentString {
	return &noding.SegmentString{
		Coords: ring.Coordinates().XYs(),
		Data:   &segTag{input: input, dim: DimArea, role: role, depthDelta: 1},
	}
}

func appendLine(out *[]*noding.SegmentString, ls geom.LineString, input int) {
	if ls.IsEmpty() {
		return
	}
	*out = append(*out, &noding.SegmentString{
		Coords: ls.Coordinates().XYs(),
		Data:   &segTag{input: input, dim: DimLine, role: RoleNone},
	})
}
