package overlay

import (
	"testing"

	"github.com/danielcohen/geomkernel/geom"
	"github.com/teleivo/assertive/assert"
)

func square(minX, minY, maxX, maxY float64) geom.Polygon {
	ring, err := geom.NewLinearRing(geom.NewSequenceXY([]geom.XY{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
		{X: minX, Y: minY},
	}))
	if err != nil {
		panic(err)
	}
	return geom.NewPolygon(ring, nil)
}

func TestOverlayIntersectionOverlappingSquares(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(5, 5, 15, 15)

	result, err := Overlay(a, b, Intersection)

	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Falsef(t, result.IsEmpty(), "overlapping squares should have a non-empty intersection")
	assert.EqualValuesf(t, result.Dimension(), 2, "intersection of two squares should be areal")
}

func TestOverlayUnionDisjointSquares(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(20, 20, 30, 30)

	result, err := Overlay(a, b, Union)

	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Falsef(t, result.IsEmpty(), "union of disjoint squares should be non-empty")
	assert.EqualValuesf(t, result.NumGeometries(), 2, "union of disjoint squares should have two parts")
}

func TestOverlayDifferenceIdenticalSquaresIsEmpty(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(0, 0, 10, 10)

	result, err := Overlay(a, b, Difference)

	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Truef(t, result.IsEmpty(), "difference of identical squares should be empty")
}

func TestOverlayPointOnlyIntersection(t *testing.T) {
	a := geom.NewMultiPoint([]geom.Point{geom.NewPoint(geom.XY{X: 0, Y: 0}), geom.NewPoint(geom.XY{X: 1, Y: 1})})
	b := geom.NewMultiPoint([]geom.Point{geom.NewPoint(geom.XY{X: 1, Y: 1}), geom.NewPoint(geom.XY{X: 2, Y: 2})})

	result, err := Overlay(a, b, Intersection)

	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.EqualValuesf(t, result.NumGeometries(), 1, "shared point should be the sole intersection result")
}

func TestOverlayEmptyInputsDimensionByOp(t *testing.T) {
	emptyLine := geom.NewMultiLineString(nil)
	emptyArea := geom.NewMultiPolygon(nil)

	inter, err := Overlay(emptyLine, emptyArea, Intersection)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.EqualValuesf(t, inter.Dimension(), 1, "empty intersection should predict the lower input's dimension")

	diff, err := Overlay(emptyArea, emptyLine, Difference)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.EqualValuesf(t, diff.Dimension(), 2, "empty difference should predict the minuend's own dimension")

	diffReversed, err := Overlay(emptyLine, emptyArea, Difference)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.EqualValuesf(t, diffReversed.Dimension(), 1, "empty difference should use A's dimension even when B is higher-dimensional")

	union, err := Overlay(emptyLine, emptyArea, Union)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.EqualValuesf(t, union.Dimension(), 2, "empty union should predict the higher input's dimension")
}

func TestOverlayMixedPointInArea(t *testing.T) {
	area := square(0, 0, 10, 10)
	pts := geom.NewMultiPoint([]geom.Point{
		geom.NewPoint(geom.XY{X: 5, Y: 5}),
		geom.NewPoint(geom.XY{X: 50, Y: 50}),
	})

	result, err := Overlay(pts, area, Intersection)

	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.EqualValuesf(t, result.NumGeometries(), 1, "only the inside point should survive intersection with the area")
}
