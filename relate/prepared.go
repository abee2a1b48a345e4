package relate

import (
	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/overlay/label"
)

// Prepared holds A's indexed area locator precomputed once, so repeated
// point-in-A queries against varying B reuse it instead of rebuilding the
// index every call (spec.md §4.7 "Prepared mode"). A full relate query
// against varying B still re-nodes A together with each B: the graph a
// topology computer needs is inherently pairwise and can't be built once
// and reused, so only the point-in-area fast path is genuinely cached
// here (see DESIGN.md).
type Prepared struct {
	g       geom.Geometry
	rule    BoundaryNodeRule
	locator *label.AreaLocator
}

// Prepare builds a Prepared view of g for repeated relate queries.
func Prepare(g geom.Geometry, opts ...Option) (*Prepared, error) {
	cfg := newConfig(opts)
	var locator *label.AreaLocator
	if geom.HasArea(g) {
		locator = label.NewAreaLocator(g)
	}
	return &Prepared{g: g, rule: cfg.rule, locator: locator}, nil
}

// Compute builds the DE-9IM matrix for the prepared A against b.
func (p *Prepared) Compute(b geom.Geometry) (*IntersectionMatrix, error) {
	return Compute(p.g, b, WithBoundaryNodeRule(p.rule))
}

// ContainsPoint answers a point-in-A query using A's cached area locator
// directly, skipping the noding/labelling pipeline entirely — the fast
// path spec.md §4.7 calls out for Prepared mode.
func (p *Prepared) ContainsPoint(pt geom.XY) bool {
	if p.locator == nil {
		return false
	}
	switch p.locator.Locate(pt) {
	case geom.Interior, geom.Boundary:
		return true
	default:
		return false
	}
}

// Intersects reports whether the prepared A intersects b.
func (p *Prepared) Intersects(b geom.Geometry) (bool, error) {
	if !p.g.Envelope().Intersects(b.Envelope()) {
		return false, nil
	}
	m, err := p.Compute(b)
	if err != nil {
		return false, err
	}
	for _, row := range []geom.Location{geom.Interior, geom.Boundary} {
		for _, col := range []geom.Location{geom.Interior, geom.Boundary} {
			if m.Get(row, col) >= 0 {
				return true, nil
			}
		}
	}
	return false, nil
}

// Contains reports whether the prepared A contains b.
func (p *Prepared) Contains(b geom.Geometry) (bool, error) {
	if !p.g.Envelope().ContainsEnvelope(b.Envelope()) {
		return false, nil
	}
	m, err := p.Compute(b)
	if err != nil {
		return false, err
	}
	if m.Get(geom.Interior, geom.Interior) < 0 {
		return false, nil
	}
	return m.Get(geom.Exterior, geom.Interior) < 0 && m.Get(geom.Exterior, geom.Boundary) < 0, nil
}
