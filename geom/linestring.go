package geom

import (
	"fmt"
	"strconv"
)

// LineString is a 1-dimensional geometry made up of 2 or more points joined
// by straight segments.
type LineString struct {
	seq Sequence
}

// NewLineString creates a LineString from a sequence. The sequence must
// have 0 (empty) or 2+ points.
func NewLineString(seq Sequence) (LineString, error) {
	if seq.Length() == 1 {
		return LineString{}, fmt.Errorf("geom: LineString must have 0 or 2+ points, got 1")
	}
	return LineString{seq}, nil
}

func (l LineString) Type() GeometryType { return TypeLineString }

func (l LineString) IsEmpty() bool { return l.seq.IsEmpty() }

func (l LineString) Dimension() int { return 1 }

func (l LineString) BoundaryDimension() int {
	if l.IsEmpty() || l.seq.IsClosed() {
		return -1
	}
	return 0
}

func (l LineString) Envelope() Envelope { return l.seq.Envelope() }

func (l LineString) NumGeometries() int { return 1 }

func (l LineString) GeometryN(i int) Geometry {
	if i != 0 {
		panic(fmt.Sprintf("geom: LineString.GeometryN(%d) out of range", i))
	}
	return l
}

func (l LineString) AsLines() []Sequence {
	if l.IsEmpty() {
		return nil
	}
	return []Sequence{l.seq}
}

func (l LineString) Coordinates() Sequence { return l.seq }

func (l LineString) IsClosed() bool { return l.seq.IsClosed() }

// AsLinearRing converts l to a LinearRing; it must be closed and have 4+
// points.
func (l LineString) AsLinearRing() (LinearRing, error) {
	return NewLinearRing(l.seq)
}

// StartEnd returns the first and last coordinates of a non-empty,
// non-closed line string — its boundary points (spec.md §4.5 line-end
// visits).
func (l LineString) StartEnd() (XY, XY) {
	n := l.seq.Length()
	return l.seq.GetXY(0), l.seq.GetXY(n - 1)
}

func (l LineString) AppendWKT(dst []byte) []byte {
	dst = append(dst, "LINESTRING"...)
	if l.IsEmpty() {
		return append(dst, " EMPTY"...)
	}
	return appendWKTSeq(dst, l.seq)
}

func (l LineString) AsText() string { return string(l.AppendWKT(nil)) }

func appendWKTSeq(dst []byte, seq Sequence) []byte {
	dst = append(dst, '(')
	for i := 0; i < seq.Length(); i++ {
		if i > 0 {
			dst = append(dst, ',')
		}
		xy := seq.GetXY(i)
		dst = strconv.AppendFloat(dst, xy.X, 'f', -1, 64)
		dst = append(dst, ' ')
		dst = strconv.AppendFloat(dst, xy.Y, 'f', -1, 64)
	}
	return append(dst, ')')
}
