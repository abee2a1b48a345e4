package valid

import (
	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/predicate"
)

// Result reports the outcome of a single validity check (spec.md §6
// "Error reports carry a code from a closed set and a witness
// coordinate").
type Result struct {
	Valid   bool
	Code    Code
	Witness geom.XY
}

func ok() Result { return Result{Valid: true} }

func fail(code Code, witness geom.XY) Result {
	return Result{Valid: false, Code: code, Witness: witness}
}

type config struct {
	invertedRingsAllowed bool
}

// Option configures Validate.
type Option func(*config)

// WithInvertedRingsAllowed relaxes check 9 (spec.md §4.8 "'Inverted
// rings': under relaxed validity, self-touching rings are permitted only
// when the self-touch does not disconnect the interior"). Off by
// default: a self-touching ring is rejected outright.
func WithInvertedRingsAllowed(allowed bool) Option {
	return func(c *config) { c.invertedRingsAllowed = allowed }
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validate runs the ordered checks of spec.md §4.8 against g and returns
// the first invalidity found, or a valid Result if none is found.
func Validate(g geom.Geometry, opts ...Option) Result {
	cfg := newConfig(opts)
	for _, poly := range polygonsOf(g) {
		if r := validatePolygon(poly, cfg); !r.Valid {
			return r
		}
	}
	if r := validateShellsNotNested(g); !r.Valid {
		return r
	}
	return ok()
}

// ValidateAll runs every check and returns every invalidity found,
// rather than stopping at the first (spec.md §4.8 "(optionally all
// locations)").
func ValidateAll(g geom.Geometry, opts ...Option) []Result {
	cfg := newConfig(opts)
	var out []Result
	for _, poly := range polygonsOf(g) {
		r := validatePolygon(poly, cfg)
		if !r.Valid {
			out = append(out, r)
		}
	}
	if r := validateShellsNotNested(g); !r.Valid {
		out = append(out, r)
	}
	return out
}

func polygonsOf(g geom.Geometry) []geom.Polygon {
	var polys []geom.Polygon
	switch t := g.(type) {
	case geom.Polygon:
		polys = append(polys, t)
	case geom.MultiPolygon:
		for i := 0; i < t.NumPolygons(); i++ {
			polys = append(polys, t.PolygonN(i))
		}
	case geom.GeometryCollection:
		for i := 0; i < t.NumGeometries(); i++ {
			polys = append(polys, polygonsOf(t.GeometryN(i))...)
		}
	}
	return polys
}

func validatePolygon(p geom.Polygon, cfg *config) Result {
	rings := append([]geom.LinearRing{p.ExteriorRing()}, ringsOf(p)...)
	for _, r := range rings {
		if res := validateRingCoordinates(r); !res.Valid {
			return res
		}
	}
	for _, r := range rings {
		if res := validateRingSelfIntersection(r, cfg); !res.Valid {
			return res
		}
	}
	if res := validateConsistentArea(rings); !res.Valid {
		return res
	}
	if res := validateHolesInsideShell(p); !res.Valid {
		return res
	}
	if res := validateHolesNotNested(p); !res.Valid {
		return res
	}
	if res := validateInteriorConnected(p); !res.Valid {
		return res
	}
	return ok()
}

func ringsOf(p geom.Polygon) []geom.LinearRing {
	holes := make([]geom.LinearRing, p.NumInteriorRings())
	for i := range holes {
		holes[i] = p.InteriorRingN(i)
	}
	return holes
}

// validateRingCoordinates implements checks 1-3: finite coordinates,
// ring closure, minimum vertex count.
func validateRingCoordinates(r geom.LinearRing) Result {
	seq := r.Coordinates()
	xys := seq.XYs()
	for _, xy := range xys {
		if !xy.IsValid() {
			return fail(EInvalidCoordinate, xy)
		}
	}
	if len(xys) < 2 || !xys[0].Equals(xys[len(xys)-1]) {
		var w geom.XY
		if len(xys) > 0 {
			w = xys[0]
		}
		return fail(ERingNotClosed, w)
	}
	if len(xys) < 4 {
		return fail(ETooFewPoints, xys[0])
	}
	distinct := geom.NewSequenceXY(xys[:len(xys)-1]).WithoutRepeatedPoints()
	if distinct.Length() < 3 {
		return fail(ETooFewPoints, xys[0])
	}
	return ok()
}

// validateRingSelfIntersection implements check 4 (and check 9 when
// inverted rings are disallowed): no two non-adjacent segments of the
// ring cross or overlap, via the robust segment intersector.
func validateRingSelfIntersection(r geom.LinearRing, cfg *config) Result {
	xys := r.Coordinates().XYs()
	n := len(xys) - 1 // last == first
	for i := 0; i < n; i++ {
		a1, a2 := xys[i], xys[i+1]
		for j := i + 1; j < n; j++ {
			adjacent := j == i+1 || (i == 0 && j == n-1)
			if adjacent {
				continue
			}
			b1, b2 := xys[j], xys[j+1]
			res := predicate.Intersect(a1, a2, b1, b2)
			if res.Kind == predicate.NoIntersection {
				continue
			}
			if res.Kind == predicate.PointIntersection && !cfg.invertedRingsAllowed {
				return fail(ERingSelfIntersection, res.Point)
			}
			if res.Kind == predicate.CollinearIntersection {
				return fail(ERingSelfIntersection, res.A)
			}
		}
	}
	return ok()
}

// validateConsistentArea extends check 4 across rings: no two distinct
// rings of the same polygon (shell-hole or hole-hole) may cross or
// overlap along a segment. A single shared touch point — two rings
// meeting at one vertex, or a vertex of one ring landing on the interior
// of another ring's edge — is ordinary touching and stays valid; what's
// rejected is a genuine crossing or a shell touching a hole along a
// whole segment (spec.md §8).
func validateConsistentArea(rings []geom.LinearRing) Result {
	for i := 0; i < len(rings); i++ {
		xysI := rings[i].Coordinates().XYs()
		nI := len(xysI) - 1
		for j := i + 1; j < len(rings); j++ {
			xysJ := rings[j].Coordinates().XYs()
			nJ := len(xysJ) - 1
			for si := 0; si < nI; si++ {
				a1, a2 := xysI[si], xysI[si+1]
				for sj := 0; sj < nJ; sj++ {
					b1, b2 := xysJ[sj], xysJ[sj+1]
					res := predicate.Intersect(a1, a2, b1, b2)
					switch res.Kind {
					case predicate.NoIntersection:
						continue
					case predicate.CollinearIntersection:
						return fail(ESelfIntersection, res.A)
					case predicate.PointIntersection:
						if isSegmentEndpoint(res.Point, a1, a2) || isSegmentEndpoint(res.Point, b1, b2) {
							continue
						}
						return fail(ESelfIntersection, res.Point)
					}
				}
			}
		}
	}
	return ok()
}

func isSegmentEndpoint(pt, s1, s2 geom.XY) bool {
	return pt.Equals(s1) || pt.Equals(s2)
}

// validateHolesInsideShell implements check 5: every hole vertex lies
// inside (or on the boundary of, for touching holes) the shell.
func validateHolesInsideShell(p geom.Polygon) Result {
	shell := p.ExteriorRing().Coordinates().XYs()
	for i := 0; i < p.NumInteriorRings(); i++ {
		hole := p.InteriorRingN(i).Coordinates().XYs()
		for _, v := range hole {
			if predicate.PointInRing(v, shell) == geom.Exterior {
				return fail(EHoleOutsideShell, v)
			}
		}
	}
	return ok()
}

// validateHolesNotNested implements check 6: no hole of the same
// polygon lies inside another hole.
func validateHolesNotNested(p geom.Polygon) Result {
	n := p.NumInteriorRings()
	for i := 0; i < n; i++ {
		hi := p.InteriorRingN(i).Coordinates().XYs()
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			hj := p.InteriorRingN(j).Coordinates().XYs()
			if predicate.PointInRing(hi[0], hj) == geom.Interior {
				return fail(ENestedHoles, hi[0])
			}
		}
	}
	return ok()
}

// validateShellsNotNested implements check 7: no shell of a
// multi-polygon lies inside another shell.
func validateShellsNotNested(g geom.Geometry) Result {
	mp, ok2 := g.(geom.MultiPolygon)
	if !ok2 || mp.NumPolygons() < 2 {
		return ok()
	}
	n := mp.NumPolygons()
	for i := 0; i < n; i++ {
		si := mp.PolygonN(i).ExteriorRing().Coordinates().XYs()
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			sj := mp.PolygonN(j).ExteriorRing().Coordinates().XYs()
			if predicate.PointInRing(si[0], sj) == geom.Interior {
				return fail(ENestedShells, si[0])
			}
		}
	}
	return ok()
}

// validateInteriorConnected implements check 8: the polygon interior is
// connected. A hole or chain of touching holes disconnects the shell
// when it partitions the shell's boundary into two arcs that can each
// reach the other only through the hole-touch point. Detected here only
// at shell vertices: a shell vertex that one hole passes through twice,
// or that two holes both pass through, is flagged. Hole-to-hole touches
// and touches away from shell vertices are not examined.
func validateInteriorConnected(p geom.Polygon) Result {
	touches := make(map[geom.XY]int)
	shell := p.ExteriorRing().Coordinates().XYs()
	shellSet := make(map[geom.XY]bool, len(shell))
	for _, v := range shell {
		shellSet[v] = true
	}
	for i := 0; i < p.NumInteriorRings(); i++ {
		hole := p.InteriorRingN(i).Coordinates().XYs()
		seen := make(map[geom.XY]bool)
		for _, v := range hole {
			if !shellSet[v] {
				continue
			}
			if seen[v] {
				return fail(EDisconnectedInterior, v)
			}
			seen[v] = true
			touches[v]++
			if touches[v] > 1 {
				return fail(EDisconnectedInterior, v)
			}
		}
	}
	return ok()
}
