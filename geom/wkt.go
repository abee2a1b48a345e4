package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// UnmarshalWKT parses a (restricted) Well-Known Text geometry. It supports
// the 2D forms of every type this package models. This is a minimal,
// test-oriented reader: spec.md §1 places WKT parsing out of scope for the
// kernel, and this package only needs enough of it to build the coordinate
// sequences the kernel consumes.
func UnmarshalWKT(s string) (Geometry, error) {
	p := &wktParser{s: s}
	p.skipSpace()
	g, err := p.parseGeometry()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return nil, fmt.Errorf("geom: trailing WKT input: %q", p.s[p.pos:])
	}
	return g, nil
}

type wktParser struct {
	s   string
	pos int
}

func (p *wktParser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\n' || p.s[p.pos] == '\t') {
		p.pos++
	}
}

func (p *wktParser) peekWord() string {
	start := p.pos
	for p.pos < len(p.s) && isWordByte(p.s[p.pos]) {
		p.pos++
	}
	w := strings.ToUpper(p.s[start:p.pos])
	p.pos = start
	return w
}

func isWordByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func (p *wktParser) consumeWord() string {
	start := p.pos
	for p.pos < len(p.s) && isWordByte(p.s[p.pos]) {
		p.pos++
	}
	return strings.ToUpper(p.s[start:p.pos])
}

func (p *wktParser) expect(b byte) error {
	p.skipSpace()
	if p.pos >= len(p.s) || p.s[p.pos] != b {
		return fmt.Errorf("geom: expected %q at position %d in %q", b, p.pos, p.s)
	}
	p.pos++
	return nil
}

func (p *wktParser) tryEmpty() bool {
	p.skipSpace()
	if p.peekWord() == "EMPTY" {
		p.consumeWord()
		return true
	}
	return false
}

func (p *wktParser) parseGeometry() (Geometry, error) {
	p.skipSpace()
	tag := p.consumeWord()
	switch tag {
	case "POINT":
		if p.tryEmpty() {
			return NewEmptyPoint(), nil
		}
		if err := p.expect('('); err != nil {
			return nil, err
		}
		xy, err := p.parseXY()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return NewPoint(xy), nil
	case "LINESTRING":
		if p.tryEmpty() {
			return LineString{}, nil
		}
		seq, err := p.parsePointList()
		if err != nil {
			return nil, err
		}
		return NewLineString(seq)
	case "POLYGON":
		if p.tryEmpty() {
			return NewEmptyPolygon(), nil
		}
		return p.parsePolygonBody()
	case "MULTIPOINT":
		if p.tryEmpty() {
			return NewMultiPoint(nil), nil
		}
		if err := p.expect('('); err != nil {
			return nil, err
		}
		var pts []Point
		for {
			p.skipSpace()
			if p.pos < len(p.s) && p.s[p.pos] == '(' {
				seq, err := p.parsePointList()
				if err != nil {
					return nil, err
				}
				pts = append(pts, NewPoint(seq.GetXY(0)))
			} else {
				xy, err := p.parseXY()
				if err != nil {
					return nil, err
				}
				pts = append(pts, NewPoint(xy))
			}
			p.skipSpace()
			if p.pos < len(p.s) && p.s[p.pos] == ',' {
				p.pos++
				continue
			}
			break
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return NewMultiPoint(pts), nil
	case "MULTILINESTRING":
		if p.tryEmpty() {
			return NewMultiLineString(nil), nil
		}
		if err := p.expect('('); err != nil {
			return nil, err
		}
		var lss []LineString
		for {
			seq, err := p.parsePointList()
			if err != nil {
				return nil, err
			}
			ls, err := NewLineString(seq)
			if err != nil {
				return nil, err
			}
			lss = append(lss, ls)
			p.skipSpace()
			if p.pos < len(p.s) && p.s[p.pos] == ',' {
				p.pos++
				continue
			}
			break
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return NewMultiLineString(lss), nil
	case "MULTIPOLYGON":
		if p.tryEmpty() {
			return NewMultiPolygon(nil), nil
		}
		if err := p.expect('('); err != nil {
			return nil, err
		}
		var polys []Polygon
		for {
			g, err := p.parsePolygonBody()
			if err != nil {
				return nil, err
			}
			polys = append(polys, g.(Polygon))
			p.skipSpace()
			if p.pos < len(p.s) && p.s[p.pos] == ',' {
				p.pos++
				continue
			}
			break
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return NewMultiPolygon(polys), nil
	case "GEOMETRYCOLLECTION":
		if p.tryEmpty() {
			return NewGeometryCollection(nil), nil
		}
		if err := p.expect('('); err != nil {
			return nil, err
		}
		var geoms []Geometry
		for {
			g, err := p.parseGeometry()
			if err != nil {
				return nil, err
			}
			geoms = append(geoms, g)
			p.skipSpace()
			if p.pos < len(p.s) && p.s[p.pos] == ',' {
				p.pos++
				continue
			}
			break
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return NewGeometryCollection(geoms), nil
	default:
		return nil, fmt.Errorf("geom: unsupported WKT tag %q", tag)
	}
}

func (p *wktParser) parsePolygonBody() (Geometry, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	shellSeq, err := p.parsePointList()
	if err != nil {
		return nil, err
	}
	shell, err := NewLinearRing(shellSeq)
	if err != nil {
		return nil, err
	}
	var holes []LinearRing
	for {
		p.skipSpace()
		if p.pos < len(p.s) && p.s[p.pos] == ',' {
			p.pos++
			seq, err := p.parsePointList()
			if err != nil {
				return nil, err
			}
			hole, err := NewLinearRing(seq)
			if err != nil {
				return nil, err
			}
			holes = append(holes, hole)
			continue
		}
		break
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return NewPolygon(shell, holes), nil
}

func (p *wktParser) parsePointList() (Sequence, error) {
	if err := p.expect('('); err != nil {
		return Sequence{}, err
	}
	var xys []XY
	for {
		xy, err := p.parseXY()
		if err != nil {
			return Sequence{}, err
		}
		xys = append(xys, xy)
		p.skipSpace()
		if p.pos < len(p.s) && p.s[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}
	if err := p.expect(')'); err != nil {
		return Sequence{}, err
	}
	return NewSequenceXY(xys), nil
}

func (p *wktParser) parseXY() (XY, error) {
	p.skipSpace()
	x, err := p.parseFloat()
	if err != nil {
		return XY{}, err
	}
	p.skipSpace()
	y, err := p.parseFloat()
	if err != nil {
		return XY{}, err
	}
	return XY{x, y}, nil
}

func (p *wktParser) parseFloat() (float64, error) {
	start := p.pos
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E' {
			p.pos++
			continue
		}
		break
	}
	if start == p.pos {
		return 0, fmt.Errorf("geom: expected number at position %d in %q", start, p.s)
	}
	return strconv.ParseFloat(p.s[start:p.pos], 64)
}
