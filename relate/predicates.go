package relate

import "github.com/danielcohen/geomkernel/geom"

// Intersects reports whether a and b share any point (spec.md §8
// "intersects(A,B) ⇔ relate(A,B) has any cell ≥ 0 in rows II,IB,BI,BB").
func Intersects(a, b geom.Geometry, opts ...Option) (bool, error) {
	if !a.Envelope().Intersects(b.Envelope()) {
		return false, nil
	}
	m, err := Compute(a, b, opts...)
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

// Disjoint reports the complement of Intersects (spec.md §8 "disjoint =
// ¬intersects").
func Disjoint(a, b geom.Geometry, opts ...Option) (bool, error) {
	ok, err := Intersects(a, b, opts...)
	return !ok, err
}

// Touches reports whether a and b intersect only at their boundaries (or
// one is a boundary-free point lying on the other's boundary), with no
// interior-interior overlap at all.
func Touches(a, b geom.Geometry, opts ...Option) (bool, error) {
	m, err := Compute(a, b, opts...)
	if err != nil {
		return false, err
	}
	if m.Get(geom.Interior, geom.Interior) >= 0 {
		return false, nil
	}
	return m.Get(geom.Interior, geom.Boundary) >= 0 ||
		m.Get(geom.Boundary, geom.Interior) >= 0 ||
		m.Get(geom.Boundary, geom.Boundary) >= 0, nil
}

// Crosses reports whether a and b intersect in a geometry of lower
// dimension than the maximum of the two inputs' dimensions, with
// interiors intersecting on both sides. Undefined (and always false) for
// two inputs of equal dimension whose intersection fills neither below
// that dimension (spec.md §4.7 "dimension comparisons cut off crosses
// between equal-dimension inputs").
func Crosses(a, b geom.Geometry, opts ...Option) (bool, error) {
	da, db := a.Dimension(), b.Dimension()
	if da == db && da != 1 {
		return false, nil
	}
	m, err := Compute(a, b, opts...)
	if err != nil {
		return false, err
	}
	ii := m.Get(geom.Interior, geom.Interior)
	if ii < 0 {
		return false, nil
	}
	switch {
	case da < db:
		return ii == da, nil
	case db < da:
		return ii == db, nil
	default: // da == db == 1 (line/line)
		return ii == 0, nil
	}
}

// Within reports whether every point of a lies in b (the converse of
// Contains).
func Within(a, b geom.Geometry, opts ...Option) (bool, error) {
	return Contains(b, a, opts...)
}

// Contains reports whether every point of b lies in a, with at least one
// point of b's interior lying in a's interior.
func Contains(a, b geom.Geometry, opts ...Option) (bool, error) {
	if !a.Envelope().ContainsEnvelope(b.Envelope()) {
		return false, nil
	}
	m, err := Compute(a, b, opts...)
	if err != nil {
		return false, err
	}
	if m.Get(geom.Interior, geom.Interior) < 0 {
		return false, nil
	}
	return m.Get(geom.Exterior, geom.Interior) < 0 && m.Get(geom.Exterior, geom.Boundary) < 0, nil
}

// Covers reports whether no point of b lies in a's exterior (spec.md §8
// "covers(A,B) ⇔ no B-point lies in A's exterior").
func Covers(a, b geom.Geometry, opts ...Option) (bool, error) {
	m, err := Compute(a, b, opts...)
	if err != nil {
		return false, err
	}
	return m.Get(geom.Exterior, geom.Interior) < 0 && m.Get(geom.Exterior, geom.Boundary) < 0, nil
}

// CoveredBy is the converse of Covers.
func CoveredBy(a, b geom.Geometry, opts ...Option) (bool, error) {
	return Covers(b, a, opts...)
}

// Overlaps reports whether a and b share an interior-interior
// intersection of the same dimension as both inputs, yet neither
// contains the other.
func Overlaps(a, b geom.Geometry, opts ...Option) (bool, error) {
	da, db := a.Dimension(), b.Dimension()
	if da != db {
		return false, nil
	}
	m, err := Compute(a, b, opts...)
	if err != nil {
		return false, err
	}
	if m.Get(geom.Interior, geom.Interior) != da {
		return false, nil
	}
	hasAExterior := m.Get(geom.Interior, geom.Exterior) >= 0 || m.Get(geom.Boundary, geom.Exterior) >= 0
	hasBExterior := m.Get(geom.Exterior, geom.Interior) >= 0 || m.Get(geom.Exterior, geom.Boundary) >= 0
	return hasAExterior && hasBExterior, nil
}

// EqualsTopo reports whether a and b occupy exactly the same point set.
func EqualsTopo(a, b geom.Geometry, opts ...Option) (bool, error) {
	m, err := Compute(a, b, opts...)
	if err != nil {
		return false, err
	}
	return m.Get(geom.Interior, geom.Exterior) < 0 &&
		m.Get(geom.Boundary, geom.Exterior) < 0 &&
		m.Get(geom.Exterior, geom.Interior) < 0 &&
		m.Get(geom.Exterior, geom.Boundary) < 0, nil
}
