// Package geom provides the planar geometry model (points, line strings,
// polygons and their collections) used as the data API by the overlay and
// predicate kernels. It is a thin, concrete stand-in for the geometry model
// that spec.md treats as an external collaborator: factories, coordinate
// sequences and envelopes only, with no dependency on the overlay/relate/
// noding packages that consume it.
package geom

import (
	"fmt"
	"math"
)

// XY is a single 2D coordinate. Equality is always 2D: any Z/M value is
// carried separately in Coordinates and never affects XY comparisons.
type XY struct {
	X, Y float64
}

// IsValid reports whether both ordinates are finite.
func (w XY) IsValid() bool {
	return !math.IsNaN(w.X) && !math.IsInf(w.X, 0) &&
		!math.IsNaN(w.Y) && !math.IsInf(w.Y, 0)
}

func (w XY) Equals(o XY) bool {
	return w.X == o.X && w.Y == o.Y
}

func (w XY) Sub(o XY) XY {
	return XY{w.X - o.X, w.Y - o.Y}
}

func (w XY) Add(o XY) XY {
	return XY{w.X + o.X, w.Y + o.Y}
}

func (w XY) Scale(s float64) XY {
	return XY{w.X * s, w.Y * s}
}

// Cross gives the z-component of the 3D cross product of w and o, treated as
// vectors in the z=0 plane. Its sign is the basis of orientationIndex.
func (w XY) Cross(o XY) float64 {
	return w.X*o.Y - w.Y*o.X
}

func (w XY) Dot(o XY) float64 {
	return w.X*o.X + w.Y*o.Y
}

func (w XY) Length() float64 {
	return math.Hypot(w.X, w.Y)
}

func (w XY) Midpoint(o XY) XY {
	return w.Add(o).Scale(0.5)
}

func (w XY) String() string {
	return fmt.Sprintf("%v %v", w.X, w.Y)
}

// Envelope is an axis-aligned bounding rectangle. An empty envelope is
// represented by MinX > MaxX (spec.md §3).
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewEnvelope returns the envelope of a single point.
func NewEnvelope(xy XY) Envelope {
	return Envelope{xy.X, xy.Y, xy.X, xy.Y}
}

// EmptyEnvelope returns the canonical empty envelope.
func EmptyEnvelope() Envelope {
	return Envelope{MinX: 1, MaxX: 0}
}

func (e Envelope) IsEmpty() bool {
	return e.MinX > e.MaxX
}

func (e Envelope) Contains(xy XY) bool {
	if e.IsEmpty() {
		return false
	}
	return xy.X >= e.MinX && xy.X <= e.MaxX && xy.Y >= e.MinY && xy.Y <= e.MaxY
}

// ContainsEnvelope reports whether e fully contains o.
func (e Envelope) ContainsEnvelope(o Envelope) bool {
	if o.IsEmpty() {
		return true
	}
	if e.IsEmpty() {
		return false
	}
	return o.MinX >= e.MinX && o.MaxX <= e.MaxX && o.MinY >= e.MinY && o.MaxY <= e.MaxY
}

// Intersects reports whether e and o overlap or touch.
func (e Envelope) Intersects(o Envelope) bool {
	if e.IsEmpty() || o.IsEmpty() {
		return false
	}
	return e.MinX <= o.MaxX && e.MaxX >= o.MinX && e.MinY <= o.MaxY && e.MaxY >= o.MinY
}

// Union returns the smallest envelope containing both e and o.
func (e Envelope) Union(o Envelope) Envelope {
	if e.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return e
	}
	return Envelope{
		MinX: math.Min(e.MinX, o.MinX),
		MinY: math.Min(e.MinY, o.MinY),
		MaxX: math.Max(e.MaxX, o.MaxX),
		MaxY: math.Max(e.MaxY, o.MaxY),
	}
}

// ExpandToInclude returns e grown to include xy.
func (e Envelope) ExpandToInclude(xy XY) Envelope {
	return e.Union(NewEnvelope(xy))
}

// Distance gives the closest distance between e and o, 0 if they intersect.
func (e Envelope) Distance(o Envelope) float64 {
	if e.Intersects(o) {
		return 0
	}
	dx := math.Max(0, math.Max(e.MinX-o.MaxX, o.MinX-e.MaxX))
	dy := math.Max(0, math.Max(e.MinY-o.MaxY, o.MinY-e.MaxY))
	return math.Hypot(dx, dy)
}
