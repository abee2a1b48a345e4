package relate

import (
	"testing"

	"github.com/danielcohen/geomkernel/geom"
	"github.com/teleivo/assertive/assert"
)

func TestComputeLineTJunctionMatrix(t *testing.T) {
	a := line(0, 0, 10, 0)
	b := line(5, 0, 5, 5)

	m, err := Compute(a, b)

	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.EqualValuesf(t, m.Get(geom.Interior, geom.Interior), -1, "no interior-interior overlap at a T-junction")
	assert.EqualValuesf(t, m.Get(geom.Interior, geom.Boundary), 0, "B's endpoint lies on A's interior")
}

func TestComputeOverlappingPolygonsInteriorInterior(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(5, 5, 15, 15)

	m, err := Compute(a, b)

	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.EqualValuesf(t, m.Get(geom.Interior, geom.Interior), 2, "overlapping squares share a 2D interior region")
}

func TestComputePointOnLineInterior(t *testing.T) {
	pt := geom.NewPoint(geom.XY{X: 5, Y: 0})
	l := line(0, 0, 10, 0)

	m, err := Compute(pt, l)

	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.EqualValuesf(t, m.Get(geom.Interior, geom.Interior), 0, "a midpoint lies on the line's interior")
}
