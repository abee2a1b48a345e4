package geom

// MultiPolygon is a 2-dimensional collection of polygons whose interiors
// do not overlap and whose shells touch at most at points (spec.md §4.8
// check 7 enforces the latter).
type MultiPolygon struct {
	polys []Polygon
}

func NewMultiPolygon(polys []Polygon) MultiPolygon {
	cp := make([]Polygon, len(polys))
	copy(cp, polys)
	return MultiPolygon{cp}
}

func (m MultiPolygon) Type() GeometryType { return TypeMultiPolygon }

func (m MultiPolygon) IsEmpty() bool {
	for _, p := range m.polys {
		if !p.IsEmpty() {
			return false
		}
	}
	return true
}

func (m MultiPolygon) Dimension() int { return 2 }

func (m MultiPolygon) BoundaryDimension() int {
	if m.IsEmpty() {
		return -1
	}
	return 1
}

func (m MultiPolygon) Envelope() Envelope {
	env := EmptyEnvelope()
	for _, p := range m.polys {
		env = env.Union(p.Envelope())
	}
	return env
}

func (m MultiPolygon) NumGeometries() int { return len(m.polys) }

func (m MultiPolygon) GeometryN(i int) Geometry { return m.polys[i] }

func (m MultiPolygon) NumPolygons() int { return len(m.polys) }

func (m MultiPolygon) PolygonN(i int) Polygon { return m.polys[i] }

func (m MultiPolygon) AsLines() []Sequence {
	var out []Sequence
	for _, p := range m.polys {
		out = append(out, p.AsLines()...)
	}
	return out
}

// Rings implements hasArea, flattening every polygon's rings.
func (m MultiPolygon) Rings() []Sequence { return m.AsLines() }

// ForceCCW returns m with every shell wound CCW and every hole CW
// (adapted from the teacher's geom/dcel.go newDCELFromMultiPolygon, which
// calls mp.ForceCCW() before building a DCEL).
func (m MultiPolygon) ForceCCW() MultiPolygon {
	out := make([]Polygon, len(m.polys))
	for i, p := range m.polys {
		out[i] = p.ForceOrientation(true)
	}
	return MultiPolygon{out}
}

// Boundary returns the MultiLineString made of every polygon's rings.
func (m MultiPolygon) Boundary() MultiLineString {
	var lss []LineString
	for _, p := range m.polys {
		b := p.Boundary()
		for i := 0; i < b.NumLineStrings(); i++ {
			lss = append(lss, b.LineStringN(i))
		}
	}
	return NewMultiLineString(lss)
}

func (m MultiPolygon) AppendWKT(dst []byte) []byte {
	dst = append(dst, "MULTIPOLYGON"...)
	if m.IsEmpty() {
		return append(dst, " EMPTY"...)
	}
	dst = append(dst, '(')
	for i, p := range m.polys {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = append(dst, '(')
		dst = appendWKTSeq(dst, p.ExteriorRing().Coordinates())
		for _, h := range p.holes {
			dst = append(dst, ',')
			dst = appendWKTSeq(dst, h.Coordinates())
		}
		dst = append(dst, ')')
	}
	return append(dst, ')')
}
