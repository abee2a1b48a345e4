package predicate

import (
	"math"

	"github.com/danielcohen/geomkernel/geom"
)

// IntersectionKind classifies the result of intersecting two closed
// segments (spec.md §4.1 lineIntersector).
type IntersectionKind int8

const (
	NoIntersection IntersectionKind = iota
	PointIntersection
	CollinearIntersection
)

// IntersectionResult is the outcome of Intersect.
type IntersectionResult struct {
	Kind IntersectionKind
	// Point is valid when Kind == PointIntersection.
	Point geom.XY
	// A, B are valid when Kind == CollinearIntersection: the two
	// endpoints of the overlap region, ordered canonically (lexically
	// smallest first).
	A, B geom.XY
}

// Intersect classifies the intersection of closed segments p1-p2 and
// q1-q2. On a single point of intersection, the point is computed by
// translating to a local origin, solving, and translating back, then
// snapped to whichever segment endpoint it is within float64 ulp of — the
// numerically stable recipe spec.md §4.1 calls for.
func Intersect(p1, p2, q1, q2 geom.XY) IntersectionResult {
	o1 := Orientation(p1, p2, q1)
	o2 := Orientation(p1, p2, q2)
	o3 := Orientation(q1, q2, p1)
	o4 := Orientation(q1, q2, p2)

	if o1 == Collinear && o2 == Collinear && o3 == Collinear && o4 == Collinear {
		return intersectCollinear(p1, p2, q1, q2)
	}

	if o1 != o2 && o3 != o4 {
		pt := computeIntersectionPoint(p1, p2, q1, q2)
		pt = snapToEndpoint(pt, p1, p2, q1, q2)
		return IntersectionResult{Kind: PointIntersection, Point: pt}
	}

	// Endpoint-touching non-crossing cases (one orientation is collinear,
	// meaning an endpoint of one segment lies on the other's line).
	if o1 == Collinear && onSegment(q1, p1, p2) {
		return IntersectionResult{Kind: PointIntersection, Point: q1}
	}
	if o2 == Collinear && onSegment(q2, p1, p2) {
		return IntersectionResult{Kind: PointIntersection, Point: q2}
	}
	if o3 == Collinear && onSegment(p1, q1, q2) {
		return IntersectionResult{Kind: PointIntersection, Point: p1}
	}
	if o4 == Collinear && onSegment(p2, q1, q2) {
		return IntersectionResult{Kind: PointIntersection, Point: p2}
	}

	return IntersectionResult{Kind: NoIntersection}
}

func computeIntersectionPoint(p1, p2, q1, q2 geom.XY) geom.XY {
	// Translate so p1 is the local origin, improving numerical stability
	// for segments far from (0,0).
	origin := p1
	a := p2.Sub(origin)
	c := q1.Sub(origin)
	d := q2.Sub(origin)

	denom := a.X*(d.Y-c.Y) - a.Y*(d.X-c.X)
	if denom == 0 {
		// Shouldn't happen given the orientation pre-check, but fall back
		// to the midpoint of the overlap rather than divide by zero.
		return p1.Midpoint(p2)
	}
	t := (c.X*(d.Y-c.Y) - c.Y*(d.X-c.X)) / denom
	local := a.Scale(t)
	return local.Add(origin)
}

// snapToEndpoint returns pt unless it is within 1 ulp of one of the four
// segment endpoints, in which case that endpoint is returned exactly
// (spec.md §4.1: "snap to an endpoint if within 1 ulp").
func snapToEndpoint(pt, p1, p2, q1, q2 geom.XY) geom.XY {
	for _, ep := range [4]geom.XY{p1, p2, q1, q2} {
		if withinULP(pt.X, ep.X) && withinULP(pt.Y, ep.Y) {
			return ep
		}
	}
	return pt
}

func withinULP(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	ulp := math.Nextafter(b, math.Inf(1)) - b
	if ulp == 0 {
		ulp = math.Nextafter(b, math.Inf(-1)) - b
		ulp = -ulp
	}
	return diff <= ulp
}

func intersectCollinear(p1, p2, q1, q2 geom.XY) IntersectionResult {
	// The overlap of [p1,p2] and [q1,q2] (both already known collinear) is
	// the intersection of their bounding intervals along the shared line,
	// as long as the two segments actually overlap.
	pMin, pMax := orderedPair(p1, p2)
	qMin, qMax := orderedPair(q1, q2)

	lo := maxPoint(pMin, qMin)
	hi := minPoint(pMax, qMax)
	if greaterPoint(lo, hi) {
		return IntersectionResult{Kind: NoIntersection}
	}
	if lo.Equals(hi) {
		return IntersectionResult{Kind: PointIntersection, Point: lo}
	}
	return IntersectionResult{Kind: CollinearIntersection, A: lo, B: hi}
}

func orderedPair(a, b geom.XY) (geom.XY, geom.XY) {
	if lessPoint(a, b) {
		return a, b
	}
	return b, a
}

func lessPoint(a, b geom.XY) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func greaterPoint(a, b geom.XY) bool { return lessPoint(b, a) }

func maxPoint(a, b geom.XY) geom.XY {
	if lessPoint(a, b) {
		return b
	}
	return a
}

func minPoint(a, b geom.XY) geom.XY {
	if lessPoint(a, b) {
		return a
	}
	return b
}
