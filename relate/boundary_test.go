package relate

import (
	"testing"

	"github.com/danielcohen/geomkernel/geom"
	"github.com/teleivo/assertive/assert"
)

func TestBoundaryOfPolygonIsRing(t *testing.T) {
	p := square(0, 0, 10, 10)

	b := boundaryOf(p, Mod2Rule)

	assert.EqualValuesf(t, b.Dimension(), 1, "polygon boundary should be lineal")
	assert.Falsef(t, b.IsEmpty(), "polygon boundary should not be empty")
}

func TestBoundaryOfPointIsEmpty(t *testing.T) {
	pt := geom.NewPoint(geom.XY{X: 1, Y: 1})

	b := boundaryOf(pt, Mod2Rule)

	assert.Truef(t, b.IsEmpty(), "a point has no boundary")
}

func TestLineBoundaryMod2RuleSharedEndpointDrops(t *testing.T) {
	// Two lines sharing endpoint (10,0): under Mod2Rule, an endpoint
	// touched an even number of times is interior, not boundary.
	a := line(0, 0, 10, 0)
	b := line(10, 0, 20, 0)
	mls := geom.NewMultiLineString([]geom.LineString{a, b})

	pts := lineBoundaryPoints(mls, Mod2Rule)

	for _, p := range pts {
		xy, _ := p.XY()
		assert.Falsef(t, xy.Equals(geom.XY{X: 10, Y: 0}), "shared endpoint should not be boundary under Mod2Rule")
	}
	assert.EqualValuesf(t, len(pts), 2, "Mod2Rule should keep the two odd-multiplicity endpoints")
}

func TestLineBoundaryEndpointRuleKeepsEvery(t *testing.T) {
	a := line(0, 0, 10, 0)
	b := line(10, 0, 20, 0)
	mls := geom.NewMultiLineString([]geom.LineString{a, b})

	pts := lineBoundaryPoints(mls, EndpointRule)

	assert.EqualValuesf(t, len(pts), 3, "EndpointRule should keep every distinct endpoint")
}
