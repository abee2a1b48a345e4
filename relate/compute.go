package relate

import (
	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/gerr"
)

type config struct {
	rule BoundaryNodeRule
}

// Option configures a call to Compute/Relate/a named predicate.
type Option func(*config)

// WithBoundaryNodeRule sets the rule used to decide which linestring
// endpoints count as boundary points (spec.md §9 "first-class Option
// with Mod2Rule and EndpointRule"). Defaults to Mod2Rule.
func WithBoundaryNodeRule(rule BoundaryNodeRule) Option {
	return func(c *config) { c.rule = rule }
}

func newConfig(opts []Option) *config {
	c := &config{rule: Mod2Rule}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compute builds the full DE-9IM matrix for a and b (spec.md §4.7) with a
// genuine topology computer over a noded graph, rather than reading cell
// dimensions off overlay result geometries: Difference cannot subtract a
// lower-dimensional boundary from its own input (Difference(line, its
// endpoints) returns the line unchanged — see overlay/points.go's
// mixedPointsOverlay Difference branch), so partitioning each input into
// interior := Difference(g, boundary(g)) conflates interior with boundary
// and corrupts every cell that depends on boundary-only contact.
// computeGraphIM instead nodes both inputs into one graph and reads
// Interior/Boundary/Exterior locations straight off the overlay
// labeller's own per-edge, per-vertex resolution — no overlay operation,
// and no result geometry, is ever built. Points never enter that graph,
// so point-point and point-vs-other inputs get their own dispatch, the
// same split overlay.Overlay makes between its point-only and
// mixed-points paths.
func Compute(a, b geom.Geometry, opts ...Option) (*IntersectionMatrix, error) {
	if a == nil || b == nil {
		return nil, gerr.NewInvalidArgumentError("relate: nil input geometry")
	}
	cfg := newConfig(opts)

	m := newFMatrix()
	m.set(geom.Exterior, geom.Exterior, 2)

	if a.IsEmpty() || b.IsEmpty() || !a.Envelope().Intersects(b.Envelope()) {
		// Nothing is shared: each non-empty input lies wholly in the
		// other's exterior.
		if !a.IsEmpty() {
			m.set(geom.Interior, geom.Exterior, a.Dimension())
			m.set(geom.Boundary, geom.Exterior, a.BoundaryDimension())
		}
		if !b.IsEmpty() {
			m.set(geom.Exterior, geom.Interior, b.Dimension())
			m.set(geom.Exterior, geom.Boundary, b.BoundaryDimension())
		}
		return m, nil
	}

	switch {
	case geom.IsPuntal(a) && geom.IsPuntal(b):
		return computePointPointIM(a, b), nil
	case geom.IsPuntal(a):
		return computeMixedPointIM(a, b, true, cfg.rule), nil
	case geom.IsPuntal(b):
		return computeMixedPointIM(b, a, false, cfg.rule), nil
	default:
		return computeGraphIM(a, b, cfg.rule)
	}
}

// Relate computes the DE-9IM pattern string for a and b (spec.md §4.7).
func Relate(a, b geom.Geometry, opts ...Option) (string, error) {
	m, err := Compute(a, b, opts...)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}
