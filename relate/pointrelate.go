package relate

import (
	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/overlay/label"
	"github.com/danielcohen/geomkernel/predicate"
)

// Points are architecturally excluded from the noded edge graph (they
// carry no edges to merge), so point-point and point-vs-other relate
// queries get their own dispatch here, mirroring the split
// overlay.Overlay makes between pointOnlyOverlay and mixedPointsOverlay —
// except these compute IntersectionMatrix cells directly rather than a
// result geometry.

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

func collectPointsXY(g geom.Geometry) []geom.XY {
	var pts []geom.XY
	walkPoints(g, func(xy geom.XY) { pts = append(pts, xy) })
	return pts
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

// computePointPointIM relates two puntal geometries: the only possible
// cells are II (shared coordinates), IE/EI (coordinates unique to one
// side) and EE, all of dimension 0 or F.
func computePointPointIM(a, b geom.Geometry) *IntersectionMatrix {
	m := newFMatrix()
	m.set(geom.Exterior, geom.Exterior, 2)

	setA := dedupeXY(collectPointsXY(a))
	setB := dedupeXY(collectPointsXY(b))
	inA := make(map[geom.XY]bool, len(setA))
	for _, p := range setA {
		inA[p] = true
	}
	inB := make(map[geom.XY]bool, len(setB))
	for _, p := range setB {
		inB[p] = true
	}

	for _, p := range setA {
		if inB[p] {
			m.set(geom.Interior, geom.Interior, 0)
		} else {
			m.set(geom.Interior, geom.Exterior, 0)
		}
	}
	for _, p := range setB {
		if !inA[p] {
			m.set(geom.Exterior, geom.Interior, 0)
		}
	}
	return m
}

// computeMixedPointIM relates a puntal geometry against a non-puntal one.
// puntalIsA reports which side the points are on, so cells land in the
// right row/column.
func computeMixedPointIM(puntal, other geom.Geometry, puntalIsA bool, rule BoundaryNodeRule) *IntersectionMatrix {
	m := newFMatrix()
	m.set(geom.Exterior, geom.Exterior, 2)

	setCell := func(puntalLoc, otherLoc geom.Location, dim int) {
		if puntalIsA {
			m.set(puntalLoc, otherLoc, dim)
		} else {
			m.set(otherLoc, puntalLoc, dim)
		}
	}

	hasArea := geom.HasArea(other)
	isLineal := geom.IsLineal(other)
	var locator *label.AreaLocator
	if hasArea {
		locator = label.NewAreaLocator(other)
	}
	boundarySet := boundaryPointSet(other, rule)

	for _, p := range dedupeXY(collectPointsXY(puntal)) {
		loc := geom.Exterior
		switch {
		case hasArea:
			loc = locator.Locate(p)
		case isLineal:
			if boundarySet[p] {
				loc = geom.Boundary
			} else if pointOnLines(other, p) {
				loc = geom.Interior
			}
		}
		setCell(geom.Interior, loc, 0)
	}

	// Removing a finite set of points from a continuum never lowers its
	// dimension or empties it, so other's interior/boundary sit entirely
	// in the puntal side's exterior at their own dimension.
	if !other.IsEmpty() {
		if hasArea || isLineal {
			setCell(geom.Exterior, geom.Interior, other.Dimension())
		}
		if hasArea {
			setCell(geom.Exterior, geom.Boundary, 1)
		} else if len(boundarySet) > 0 {
			setCell(geom.Exterior, geom.Boundary, 0)
		}
	}

	return m
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

func boundaryPointSet(g geom.Geometry, rule BoundaryNodeRule) map[geom.XY]bool {
	set := make(map[geom.XY]bool)
	if !geom.IsLineal(g) {
		return set
	}
	for _, pt := range lineBoundaryPoints(g, rule) {
		if xy, ok := pt.XY(); ok {
			set[xy] = true
		}
	}
	return set
}
