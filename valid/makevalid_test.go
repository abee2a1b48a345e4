package valid

import (
	"testing"

	"github.com/danielcohen/geomkernel/geom"
	"github.com/teleivo/assertive/assert"
)

func TestMakeValidSimpleSquareUnchanged(t *testing.T) {
	p := square(0, 0, 10, 10)

	result, err := MakeValid(p, geom.NewPrecisionModelFloating())

	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Falsef(t, result.IsEmpty(), "a valid square should repair to a non-empty result")
	assert.EqualValuesf(t, result.Dimension(), 2, "a valid square should repair to an areal result")
}

func TestMakeValidBowtieSplitsIntoTwoTriangles(t *testing.T) {
	bowtie := ring(0, 0, 10, 10, 10, 0, 0, 10, 0, 0)
	p := geom.NewPolygon(bowtie, nil)

	result, err := MakeValid(p, geom.NewPrecisionModelFloating())

	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Falsef(t, result.IsEmpty(), "a self-intersecting bowtie should repair to a non-empty area")
}

func TestMakeValidPointIsAlreadyValid(t *testing.T) {
	pt := geom.NewPoint(geom.XY{X: 1, Y: 2})

	result, err := MakeValid(pt, geom.NewPrecisionModelFloating())

	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Falsef(t, result.IsEmpty(), "a point is always already valid")
}
