package geom

import "math"

// Coordinates is a single coordinate, possibly carrying Z and/or M values
// alongside the 2D XY (spec.md §3). Equality on Coordinates as a whole is
// still 2D-only; Z/M are payload, never part of topology.
type Coordinates struct {
	XY
	Z, M       float64
	HasZ, HasM bool
}

// Sequence is a read-only view over a run of coordinates, the interface
// spec.md §6 calls out as the only thing the overlay/relate core needs from
// the geometry model's traversal API.
type Sequence struct {
	coords []Coordinates
}

// NewSequence builds a Sequence from a coordinate slice. The slice is
// copied so the Sequence owns its data (spec.md §3 lifecycle: "The result
// geometry owns fresh coordinate sequences").
func NewSequence(coords []Coordinates) Sequence {
	cp := make([]Coordinates, len(coords))
	copy(cp, coords)
	return Sequence{cp}
}

// NewSequenceXY builds a Sequence from plain XYs (no Z/M).
func NewSequenceXY(xys []XY) Sequence {
	cs := make([]Coordinates, len(xys))
	for i, xy := range xys {
		cs[i] = Coordinates{XY: xy}
	}
	return Sequence{cs}
}

func (s Sequence) Length() int { return len(s.coords) }

func (s Sequence) IsEmpty() bool { return len(s.coords) == 0 }

func (s Sequence) GetXY(i int) XY { return s.coords[i].XY }

func (s Sequence) Get(i int) Coordinates { return s.coords[i] }

// XYs returns the XY-only view of the sequence, as a fresh slice.
func (s Sequence) XYs() []XY {
	out := make([]XY, len(s.coords))
	for i, c := range s.coords {
		out[i] = c.XY
	}
	return out
}

// IsClosed reports whether the first and last coordinates coincide (2D).
func (s Sequence) IsClosed() bool {
	n := len(s.coords)
	return n > 0 && s.coords[0].XY.Equals(s.coords[n-1].XY)
}

// Reversed returns a new Sequence with coordinate order reversed.
func (s Sequence) Reversed() Sequence {
	n := len(s.coords)
	out := make([]Coordinates, n)
	for i, c := range s.coords {
		out[n-1-i] = c
	}
	return Sequence{out}
}

// Envelope computes the bounding envelope of the sequence.
func (s Sequence) Envelope() Envelope {
	if s.IsEmpty() {
		return EmptyEnvelope()
	}
	env := NewEnvelope(s.coords[0].XY)
	for _, c := range s.coords[1:] {
		env = env.ExpandToInclude(c.XY)
	}
	return env
}

// WithoutRepeatedPoints drops consecutive duplicate coordinates, enforcing
// the Edge invariant from spec.md §3 ("no two consecutive equal points").
func (s Sequence) WithoutRepeatedPoints() Sequence {
	if len(s.coords) == 0 {
		return s
	}
	out := make([]Coordinates, 0, len(s.coords))
	out = append(out, s.coords[0])
	for _, c := range s.coords[1:] {
		if !c.XY.Equals(out[len(out)-1].XY) {
			out = append(out, c)
		}
	}
	return Sequence{out}
}

// MakePrecise applies pm.MakePrecise to every coordinate in the sequence.
func (s Sequence) MakePrecise(pm PrecisionModel) Sequence {
	out := make([]Coordinates, len(s.coords))
	for i, c := range s.coords {
		c.XY = pm.MakePrecise(c.XY)
		out[i] = c
	}
	return Sequence{out}
}

func finiteXY(xy XY) bool {
	return !math.IsNaN(xy.X) && !math.IsNaN(xy.Y) && !math.IsInf(xy.X, 0) && !math.IsInf(xy.Y, 0)
}

// AllFinite reports whether every coordinate in the sequence is finite
// (spec.md §4.8 check 1).
func (s Sequence) AllFinite() bool {
	for _, c := range s.coords {
		if !finiteXY(c.XY) {
			return false
		}
	}
	return true
}
