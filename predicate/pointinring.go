package predicate

import (
	"github.com/danielcohen/geomkernel/geom"
)

// PointInRing implements spec.md §4.1's pointInRing: ray-crossing count
// with the robust orientation predicate deciding crossings, returning
// geom.Boundary if p lies on the ring, geom.Interior on an odd crossing
// count, else geom.Exterior. ring must be closed (first == last).
func PointInRing(p geom.XY, ring []geom.XY) geom.Location {
	n := len(ring)
	if n < 4 {
		return geom.LocationNone
	}

	crossings := 0
	for i := 0; i < n-1; i++ {
		a := ring[i]
		b := ring[i+1]

		if onSegment(p, a, b) {
			return geom.Boundary
		}

		// Only consider edges that straddle p's y coordinate, using a
		// half-open test on y to avoid double-counting shared vertices.
		if (a.Y > p.Y) != (b.Y > p.Y) {
			// x coordinate of the edge/horizontal-ray intersection at
			// height p.Y, compared against p.X using the orientation
			// predicate rather than a division so the test stays exact.
			side := Orientation(a, b, p)
			upward := b.Y > a.Y
			if (side == CounterClockwise) == upward {
				crossings++
			}
		}
	}

	if crossings%2 == 1 {
		return geom.Interior
	}
	return geom.Exterior
}

// onSegment reports whether p lies on the closed segment a-b.
func onSegment(p, a, b geom.XY) bool {
	if Orientation(a, b, p) != Collinear {
		return false
	}
	return p.X >= minF(a.X, b.X) && p.X <= maxF(a.X, b.X) &&
		p.Y >= minF(a.Y, b.Y) && p.Y <= maxF(a.Y, b.Y)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
