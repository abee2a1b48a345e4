package noding

import (
	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/gerr"
	"github.com/danielcohen/geomkernel/predicate"
)

// ValidatingNoder wraps another Noder and, after noding, brute-force
// confirms the result actually has no remaining interior intersections
// (spec.md §4.2 "validation mode"). It is O(n^2) in the output substring
// count and is meant for tests and for inputs small enough that the cost
// is acceptable, not as the default production path.
type ValidatingNoder struct {
	inner Noder
}

func NewValidatingNoder(inner Noder) *ValidatingNoder {
	return &ValidatingNoder{inner: inner}
}

func (v *ValidatingNoder) Node(inputs []*SegmentString) ([]Substring, error) {
	out, err := v.inner.Node(inputs)
	if err != nil {
		return nil, err
	}
	if err := validateNoded(out); err != nil {
		return nil, err
	}
	return out, nil
}

// validateNoded checks that no two substrings' segments cross, overlap, or
// touch except at a shared endpoint of both substrings.
func validateNoded(subs []Substring) error {
	for i := 0; i < len(subs); i++ {
		for j := i + 1; j < len(subs); j++ {
			if !subs[i].Envelope().Intersects(subs[j].Envelope()) {
				continue
			}
			if xy, bad := crossesImproperly(subs[i].Coords, subs[j].Coords); bad {
				return gerr.NewTopologyError(xy, "noding: unresolved intersection between noded substrings")
			}
		}
	}
	return nil
}

// crossesImproperly reports the first point at which segment chains a and
// b meet somewhere other than a shared endpoint of the two chains.
func crossesImproperly(a, b []geom.XY) (geom.XY, bool) {
	aStart, aEnd := a[0], a[len(a)-1]
	bStart, bEnd := b[0], b[len(b)-1]

	sharedEndpoint := func(p geom.XY) bool {
		return (p.Equals(aStart) || p.Equals(aEnd)) && (p.Equals(bStart) || p.Equals(bEnd))
	}

	for ai := 0; ai+1 < len(a); ai++ {
		for bi := 0; bi+1 < len(b); bi++ {
			res := predicate.Intersect(a[ai], a[ai+1], b[bi], b[bi+1])
			switch res.Kind {
			case predicate.PointIntersection:
				if !sharedEndpoint(res.Point) {
					return res.Point, true
				}
			case predicate.CollinearIntersection:
				return res.A, true
			}
		}
	}
	return geom.XY{}, false
}
