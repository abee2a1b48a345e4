package geom

import "fmt"

// Polygon is a 2-dimensional geometry bounded by one exterior ring and zero
// or more interior (hole) rings.
type Polygon struct {
	shell LinearRing
	holes []LinearRing
	empty bool
}

// NewPolygon builds a Polygon from a shell and holes. No validity checking
// beyond what NewLinearRing already enforces is performed here; deeper
// checks (holes inside shell, no nesting, connected interior) belong to
// package valid.
func NewPolygon(shell LinearRing, holes []LinearRing) Polygon {
	if shell.IsEmpty() {
		return Polygon{empty: true}
	}
	hs := make([]LinearRing, len(holes))
	copy(hs, holes)
	return Polygon{shell: shell, holes: hs}
}

// NewEmptyPolygon returns the empty polygon.
func NewEmptyPolygon() Polygon { return Polygon{empty: true} }

func (p Polygon) Type() GeometryType { return TypePolygon }

func (p Polygon) IsEmpty() bool { return p.empty }

func (p Polygon) Dimension() int { return 2 }

func (p Polygon) BoundaryDimension() int {
	if p.empty {
		return -1
	}
	return 1
}

func (p Polygon) Envelope() Envelope {
	if p.empty {
		return EmptyEnvelope()
	}
	return p.shell.Envelope()
}

func (p Polygon) NumGeometries() int { return 1 }

func (p Polygon) GeometryN(i int) Geometry {
	if i != 0 {
		panic(fmt.Sprintf("geom: Polygon.GeometryN(%d) out of range", i))
	}
	return p
}

func (p Polygon) ExteriorRing() LinearRing { return p.shell }

func (p Polygon) NumInteriorRings() int { return len(p.holes) }

func (p Polygon) InteriorRingN(i int) LinearRing { return p.holes[i] }

// ForceOrientation returns p with its shell made CCW (or CW if ccw=false)
// and its holes made the opposite winding, per spec.md §4.3's canonical
// ring orientation rule.
func (p Polygon) ForceOrientation(shellCCW bool) Polygon {
	if p.empty {
		return p
	}
	shell := p.shell
	if shell.IsCCW() != shellCCW {
		shell = shell.Reversed()
	}
	holes := make([]LinearRing, len(p.holes))
	for i, h := range p.holes {
		if h.IsCCW() == shellCCW {
			h = h.Reversed()
		}
		holes[i] = h
	}
	return Polygon{shell: shell, holes: holes}
}

func (p Polygon) AsLines() []Sequence {
	if p.empty {
		return nil
	}
	out := make([]Sequence, 0, 1+len(p.holes))
	out = append(out, p.shell.Coordinates())
	for _, h := range p.holes {
		out = append(out, h.Coordinates())
	}
	return out
}

// Rings implements the hasArea capability (spec.md §9).
func (p Polygon) Rings() []Sequence { return p.AsLines() }

// Boundary returns the MultiLineString made up of the shell and all holes.
func (p Polygon) Boundary() MultiLineString {
	if p.empty {
		return NewMultiLineString(nil)
	}
	lss := make([]LineString, 0, 1+len(p.holes))
	lss = append(lss, p.shell.AsLineString())
	for _, h := range p.holes {
		lss = append(lss, h.AsLineString())
	}
	return NewMultiLineString(lss)
}

func (p Polygon) AsMultiPolygon() MultiPolygon {
	if p.empty {
		return NewMultiPolygon(nil)
	}
	return NewMultiPolygon([]Polygon{p})
}

func (p Polygon) AppendWKT(dst []byte) []byte {
	dst = append(dst, "POLYGON"...)
	if p.empty {
		return append(dst, " EMPTY"...)
	}
	dst = append(dst, '(')
	dst = appendWKTSeq(dst, p.shell.Coordinates())
	for _, h := range p.holes {
		dst = append(dst, ',')
		dst = appendWKTSeq(dst, h.Coordinates())
	}
	return append(dst, ')')
}
