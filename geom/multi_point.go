package geom

// MultiPoint is a 0-dimensional collection of points, not connected or
// ordered (adapted from the teacher's geom/type_multi_point.go).
type MultiPoint struct {
	pts []Point
}

func NewMultiPoint(pts []Point) MultiPoint {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return MultiPoint{cp}
}

func (m MultiPoint) Type() GeometryType { return TypeMultiPoint }

func (m MultiPoint) IsEmpty() bool {
	for _, p := range m.pts {
		if !p.IsEmpty() {
			return false
		}
	}
	return true
}

func (m MultiPoint) Dimension() int { return 0 }

func (m MultiPoint) BoundaryDimension() int { return -1 }

func (m MultiPoint) Envelope() Envelope {
	env := EmptyEnvelope()
	for _, p := range m.pts {
		env = env.Union(p.Envelope())
	}
	return env
}

func (m MultiPoint) NumGeometries() int { return len(m.pts) }

func (m MultiPoint) GeometryN(i int) Geometry { return m.pts[i] }

func (m MultiPoint) NumPoints() int { return len(m.pts) }

func (m MultiPoint) PointN(i int) Point { return m.pts[i] }

func (m MultiPoint) AsLines() []Sequence { return nil }

// XYs returns the non-empty points' coordinates.
func (m MultiPoint) XYs() []XY {
	out := make([]XY, 0, len(m.pts))
	for _, p := range m.pts {
		if xy, ok := p.XY(); ok {
			out = append(out, xy)
		}
	}
	return out
}

func (m MultiPoint) AppendWKT(dst []byte) []byte {
	dst = append(dst, "MULTIPOINT"...)
	if m.IsEmpty() {
		return append(dst, " EMPTY"...)
	}
	dst = append(dst, '(')
	first := true
	for _, p := range m.pts {
		if xy, ok := p.XY(); ok {
			if !first {
				dst = append(dst, ',')
			}
			first = false
			dst = appendWKTSeq(dst, NewSequenceXY([]XY{xy}))
		}
	}
	return append(dst, ')')
}
