package overlay

import (
	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/overlay/extract"
	"github.com/danielcohen/geomkernel/overlay/label"
	"github.com/danielcohen/geomkernel/predicate"
)

// walkPoints visits every coordinate of g's point members, recursing into
// GeometryCollection members.
func walkPoints(g geom.Geometry, visit func(geom.XY)) {
	switch t := g.(type) {
	case geom.Point:
		if xy, present := t.XY(); present {
			visit(xy)
		}
	case geom.MultiPoint:
		for _, xy := range t.XYs() {
			visit(xy)
		}
	case geom.GeometryCollection:
		for i := 0; i < t.NumGeometries(); i++ {
			walkPoints(t.GeometryN(i), visit)
		}
	}
}

func collectPoints(g geom.Geometry) []geom.XY {
	var pts []geom.XY
	walkPoints(g, func(xy geom.XY) { pts = append(pts, xy) })
	return pts
}

// pointOnlyOverlay implements spec.md §4.6 step 2: set operations on the
// two inputs' coordinate multisets, with duplicates within a side
// collapsed (a point geometry has no multiplicity).
func pointOnlyOverlay(a, b geom.Geometry, op extract.Op) geom.Geometry {
	setA := dedupeXY(collectPoints(a))
	setB := dedupeXY(collectPoints(b))
	inB := make(map[geom.XY]bool, len(setB))
	for _, p := range setB {
		inB[p] = true
	}
	inA := make(map[geom.XY]bool, len(setA))
	for _, p := range setA {
		inA[p] = true
	}

	var out []geom.Point
	switch op {
	case extract.Intersection:
		for _, p := range setA {
			if inB[p] {
				out = append(out, geom.NewPoint(p))
			}
		}
	case extract.Union:
		seen := make(map[geom.XY]bool)
		for _, p := range append(append([]geom.XY{}, setA...), setB...) {
			if !seen[p] {
				seen[p] = true
				out = append(out, geom.NewPoint(p))
			}
		}
	case extract.Difference:
		for _, p := range setA {
			if !inB[p] {
				out = append(out, geom.NewPoint(p))
			}
		}
	case extract.SymmetricDifference:
		for _, p := range setA {
			if !inB[p] {
				out = append(out, geom.NewPoint(p))
			}
		}
		for _, p := range setB {
			if !inA[p] {
				out = append(out, geom.NewPoint(p))
			}
		}
	}
	return geom.NewMultiPoint(out)
}

func dedupeXY(xys []geom.XY) []geom.XY {
	seen := make(map[geom.XY]bool, len(xys))
	var out []geom.XY
	for _, p := range xys {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// mixedPointsOverlay implements spec.md §4.6 step 3: one side is pure
// point geometry, the other is area and/or line. Only point-in-area and
// point-on-line tests are needed; no noding or graph construction runs.
// puntalIsA reports which side holds the points, so the inclusion rule
// (spec.md §4.6 mark step) is evaluated with the correct operand order.
func mixedPointsOverlay(puntal, other geom.Geometry, op extract.Op, puntalIsA bool) geom.Geometry {
	pts := dedupeXY(collectPoints(puntal))
	locator := label.NewAreaLocator(other)

	var outPts []geom.Point
	for _, p := range pts {
		in := locatePoint(other, locator, p)
		var a, b bool
		if puntalIsA {
			a, b = true, in
		} else {
			a, b = in, true
		}
		if extract.MarkTest(op, a, b) {
			outPts = append(outPts, geom.NewPoint(p))
		}
	}
	pointResult := geom.NewMultiPoint(outPts)

	switch op {
	case extract.Intersection:
		return pointResult
	case extract.Difference:
		if puntalIsA {
			return pointResult
		}
		return other
	case extract.Union, extract.SymmetricDifference:
		return combine(other, pointResult)
	default:
		return pointResult
	}
}

func locatePoint(g geom.Geometry, areaLoc *label.AreaLocator, p geom.XY) bool {
	if areaLoc != nil {
		switch areaLoc.Locate(p) {
		case geom.Interior, geom.Boundary:
			return true
		default:
			return false
		}
	}
	if geom.IsLineal(g) {
		return pointOnLines(g, p)
	}
	return false
}

func pointOnLines(g geom.Geometry, p geom.XY) bool {
	for _, seq := range g.AsLines() {
		xys := seq.XYs()
		for i := 0; i+1 < len(xys); i++ {
			if onSegment(p, xys[i], xys[i+1]) {
				return true
			}
		}
	}
	return false
}

func onSegment(p, a, b geom.XY) bool {
	if predicate.Orientation(a, b, p) != 0 {
		return false
	}
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

// combine wraps a non-point result together with leftover points into a
// GeometryCollection, the natural container for a heterogeneous union
// result (spec.md §4.6 "Post-processing").
func combine(g geom.Geometry, pts geom.MultiPoint) geom.Geometry {
	if pts.NumGeometries() == 0 {
		return g
	}
	if g.IsEmpty() {
		return pts
	}
	return geom.NewGeometryCollection([]geom.Geometry{g, pts})
}
