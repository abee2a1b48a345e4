package geom

// MultiLineString is a 1-dimensional collection of line strings.
type MultiLineString struct {
	lines []LineString
}

func NewMultiLineString(lines []LineString) MultiLineString {
	cp := make([]LineString, len(lines))
	copy(cp, lines)
	return MultiLineString{cp}
}

func (m MultiLineString) Type() GeometryType { return TypeMultiLineString }

func (m MultiLineString) IsEmpty() bool {
	for _, l := range m.lines {
		if !l.IsEmpty() {
			return false
		}
	}
	return true
}

func (m MultiLineString) Dimension() int { return 1 }

// BoundaryDimension is 0 unless every component is closed (mod-2 boundary
// rule collapses entirely, spec.md §4.7 BoundaryNodeRule).
func (m MultiLineString) BoundaryDimension() int {
	for _, l := range m.lines {
		if !l.IsEmpty() && !l.IsClosed() {
			return 0
		}
	}
	return -1
}

func (m MultiLineString) Envelope() Envelope {
	env := EmptyEnvelope()
	for _, l := range m.lines {
		env = env.Union(l.Envelope())
	}
	return env
}

func (m MultiLineString) NumGeometries() int { return len(m.lines) }

func (m MultiLineString) GeometryN(i int) Geometry { return m.lines[i] }

func (m MultiLineString) NumLineStrings() int { return len(m.lines) }

func (m MultiLineString) LineStringN(i int) LineString { return m.lines[i] }

func (m MultiLineString) AsLines() []Sequence {
	var out []Sequence
	for _, l := range m.lines {
		out = append(out, l.AsLines()...)
	}
	return out
}

func (m MultiLineString) AppendWKT(dst []byte) []byte {
	dst = append(dst, "MULTILINESTRING"...)
	if m.IsEmpty() {
		return append(dst, " EMPTY"...)
	}
	dst = append(dst, '(')
	for i, l := range m.lines {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendWKTSeq(dst, l.Coordinates())
	}
	return append(dst, ')')
}
