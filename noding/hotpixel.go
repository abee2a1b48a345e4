package noding

import (
	"math"

	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/predicate"
)

// HotPixel is the square neighborhood around a fixed-precision grid point
// that snap-rounding tests segments against (spec.md §4.2 "hot pixel
// scan-line test"). Its side length is one precision grid unit, centered on
// the rounded coordinate.
type HotPixel struct {
	center     geom.XY
	halfWidth  float64
	minX, maxX float64
	minY, maxY float64
}

// NewHotPixel builds the pixel for center under pm. For a floating
// precision model (scale 0) the pixel degenerates to a single point,
// matching exactly rather than by scan-line intersection.
func NewHotPixel(center geom.XY, pm geom.PrecisionModel) *HotPixel {
	scale := pm.Scale()
	half := 0.5
	if scale > 0 {
		half = 0.5 / scale
	} else {
		half = 0
	}
	return &HotPixel{
		center:    center,
		halfWidth: half,
		minX:      center.X - half,
		maxX:      center.X + half,
		minY:      center.Y - half,
		maxY:      center.Y + half,
	}
}

// Coordinate returns the pixel's center, the coordinate segments get
// snapped to when they intersect the pixel.
func (h *HotPixel) Coordinate() geom.XY { return h.center }

// Intersects reports whether the closed segment p-q passes through the
// pixel's square neighborhood. A degenerate (zero-width) pixel intersects
// only segments passing exactly through its center.
func (h *HotPixel) Intersects(p, q geom.XY) bool {
	if h.halfWidth == 0 {
		return (predicate.Orientation(p, q, h.center) == predicate.Collinear && onSegment(h.center, p, q)) ||
			p.Equals(h.center) || q.Equals(h.center)
	}

	env := geom.NewEnvelope(p).ExpandToInclude(q)
	if env.MaxX < h.minX || env.MinX > h.maxX || env.MaxY < h.minY || env.MinY > h.maxY {
		return false
	}
	if h.containsPoint(p) || h.containsPoint(q) {
		return true
	}

	corners := [4]geom.XY{
		{X: h.minX, Y: h.minY},
		{X: h.maxX, Y: h.minY},
		{X: h.maxX, Y: h.maxY},
		{X: h.minX, Y: h.maxY},
	}
	for i := 0; i < 4; i++ {
		a, b := corners[i], corners[(i+1)%4]
		if segmentsProperlyOrTouchingIntersect(p, q, a, b) {
			return true
		}
	}
	return false
}

func (h *HotPixel) containsPoint(p geom.XY) bool {
	return p.X >= h.minX && p.X <= h.maxX && p.Y >= h.minY && p.Y <= h.maxY
}

func segmentsProperlyOrTouchingIntersect(p1, p2, q1, q2 geom.XY) bool {
	o1 := predicate.Orientation(p1, p2, q1)
	o2 := predicate.Orientation(p1, p2, q2)
	o3 := predicate.Orientation(q1, q2, p1)
	o4 := predicate.Orientation(q1, q2, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == predicate.Collinear && onSegment(q1, p1, p2) {
		return true
	}
	if o2 == predicate.Collinear && onSegment(q2, p1, p2) {
		return true
	}
	if o3 == predicate.Collinear && onSegment(p1, q1, q2) {
		return true
	}
	if o4 == predicate.Collinear && onSegment(p2, q1, q2) {
		return true
	}
	return false
}

func onSegment(p, a, b geom.XY) bool {
	return math.Min(a.X, b.X)-1e-9 <= p.X && p.X <= math.Max(a.X, b.X)+1e-9 &&
		math.Min(a.Y, b.Y)-1e-9 <= p.Y && p.Y <= math.Max(a.Y, b.Y)+1e-9
}
