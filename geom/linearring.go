package geom

import "fmt"

// LinearRing is a closed, simple LineString with 4 or more points
// (spec.md GLOSSARY; simplicity is checked by the validator, not here).
type LinearRing struct {
	seq Sequence
}

// NewLinearRing validates the closing and minimum-point-count invariants
// from spec.md §4.8 checks 2-3 and wraps seq as a LinearRing.
func NewLinearRing(seq Sequence) (LinearRing, error) {
	if seq.IsEmpty() {
		return LinearRing{}, nil
	}
	if !seq.IsClosed() {
		return LinearRing{}, fmt.Errorf("geom: ring is not closed")
	}
	if seq.Length() < 4 {
		return LinearRing{}, fmt.Errorf("geom: ring has %d points, need at least 4", seq.Length())
	}
	return LinearRing{seq}, nil
}

func (r LinearRing) Type() GeometryType { return TypeLinearRing }

func (r LinearRing) IsEmpty() bool { return r.seq.IsEmpty() }

func (r LinearRing) Dimension() int { return 1 }

func (r LinearRing) BoundaryDimension() int { return -1 }

func (r LinearRing) Envelope() Envelope { return r.seq.Envelope() }

func (r LinearRing) NumGeometries() int { return 1 }

func (r LinearRing) GeometryN(i int) Geometry {
	if i != 0 {
		panic(fmt.Sprintf("geom: LinearRing.GeometryN(%d) out of range", i))
	}
	return r
}

func (r LinearRing) AsLines() []Sequence {
	if r.IsEmpty() {
		return nil
	}
	return []Sequence{r.seq}
}

func (r LinearRing) Coordinates() Sequence { return r.seq }

func (r LinearRing) AsLineString() LineString { return LineString{r.seq} }

// SignedArea returns the signed area of the ring (positive if CCW).
// Used to decide canonical shell/hole orientation (spec.md §4.3).
func (r LinearRing) SignedArea() float64 {
	n := r.seq.Length()
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n-1; i++ {
		a := r.seq.GetXY(i)
		b := r.seq.GetXY(i + 1)
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// IsCCW reports whether the ring is wound counter-clockwise.
func (r LinearRing) IsCCW() bool { return r.SignedArea() > 0 }

// Reversed returns the ring with reversed winding order.
func (r LinearRing) Reversed() LinearRing {
	return LinearRing{r.seq.Reversed()}
}

func (r LinearRing) AppendWKT(dst []byte) []byte {
	if r.IsEmpty() {
		return append(dst, "LINEARRING EMPTY"...)
	}
	dst = append(dst, "LINEARRING"...)
	return appendWKTSeq(dst, r.seq)
}
