package geom

import (
	"fmt"
	"strconv"
)

// Point is a 0-dimensional geometry representing a single location, or the
// empty point.
type Point struct {
	coords Coordinates
	empty  bool
}

// NewPoint creates a point from an XY.
func NewPoint(xy XY) Point {
	return Point{coords: Coordinates{XY: xy}}
}

// NewPointFromCoords creates a point from full Coordinates (possibly
// carrying Z/M).
func NewPointFromCoords(c Coordinates) Point {
	return Point{coords: c}
}

// NewEmptyPoint returns the empty point (POINT EMPTY).
func NewEmptyPoint() Point {
	return Point{empty: true}
}

func (p Point) Type() GeometryType { return TypePoint }

func (p Point) IsEmpty() bool { return p.empty }

func (p Point) Dimension() int { return 0 }

func (p Point) BoundaryDimension() int { return -1 }

func (p Point) Envelope() Envelope {
	if p.empty {
		return EmptyEnvelope()
	}
	return NewEnvelope(p.coords.XY)
}

func (p Point) NumGeometries() int { return 1 }

func (p Point) GeometryN(i int) Geometry {
	if i != 0 {
		panic(fmt.Sprintf("geom: Point.GeometryN(%d) out of range", i))
	}
	return p
}

func (p Point) AsLines() []Sequence { return nil }

// XY returns the point's coordinate and whether it is non-empty.
func (p Point) XY() (XY, bool) {
	if p.empty {
		return XY{}, false
	}
	return p.coords.XY, true
}

func (p Point) Coordinates() Coordinates { return p.coords }

func (p Point) AppendWKT(dst []byte) []byte {
	dst = append(dst, "POINT"...)
	if p.empty {
		return append(dst, " EMPTY"...)
	}
	dst = append(dst, '(')
	dst = strconv.AppendFloat(dst, p.coords.X, 'f', -1, 64)
	dst = append(dst, ' ')
	dst = strconv.AppendFloat(dst, p.coords.Y, 'f', -1, 64)
	return append(dst, ')')
}

func (p Point) AsText() string { return string(p.AppendWKT(nil)) }
