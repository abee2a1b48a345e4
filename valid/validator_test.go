package valid

import (
	"testing"

	"github.com/danielcohen/geomkernel/geom"
	"github.com/teleivo/assertive/assert"
)

func TestValidateSimpleSquare(t *testing.T) {
	p := square(0, 0, 10, 10)

	res := Validate(p)

	assert.Truef(t, res.Valid, "simple square should be valid")
}

func TestValidateRingNotClosed(t *testing.T) {
	seq := geom.NewSequenceXY([]geom.XY{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}})
	lr, err := geom.NewLinearRing(seq)
	assert.Truef(t, err != nil, "NewLinearRing should reject an unclosed sequence")

	res := validateRingCoordinates(lr)

	assert.Falsef(t, res.Valid, "unclosed ring should be invalid")
	assert.EqualValuesf(t, res.Code, ERingNotClosed, "code")
}

func TestValidateTooFewPoints(t *testing.T) {
	lr := ring(0, 0, 10, 0, 0, 0)

	res := validateRingCoordinates(lr)

	assert.Falsef(t, res.Valid, "triangle-as-line ring should be invalid")
	assert.EqualValuesf(t, res.Code, ETooFewPoints, "code")
}

func TestValidateHoleOutsideShell(t *testing.T) {
	shell := ring(0, 0, 10, 0, 10, 10, 0, 10, 0, 0)
	hole := ring(20, 20, 25, 20, 25, 25, 20, 25, 20, 20)
	p := geom.NewPolygon(shell, []geom.LinearRing{hole})

	res := Validate(p)

	assert.Falsef(t, res.Valid, "hole outside shell should be invalid")
	assert.EqualValuesf(t, res.Code, EHoleOutsideShell, "code")
}

func TestValidateNestedHoles(t *testing.T) {
	shell := ring(0, 0, 20, 0, 20, 20, 0, 20, 0, 0)
	holeA := ring(2, 2, 15, 2, 15, 15, 2, 15, 2, 2)
	holeB := ring(4, 4, 8, 4, 8, 8, 4, 8, 4, 4)
	p := geom.NewPolygon(shell, []geom.LinearRing{holeA, holeB})

	res := Validate(p)

	assert.Falsef(t, res.Valid, "hole nested inside another hole should be invalid")
	assert.EqualValuesf(t, res.Code, ENestedHoles, "code")
}

func TestValidateNestedShells(t *testing.T) {
	outer := square(0, 0, 20, 20)
	inner := square(5, 5, 10, 10)
	mp := geom.NewMultiPolygon([]geom.Polygon{outer, inner})

	res := Validate(mp)

	assert.Falsef(t, res.Valid, "nested shells should be invalid")
	assert.EqualValuesf(t, res.Code, ENestedShells, "code")
}

func TestValidateRingSelfIntersection(t *testing.T) {
	// A classic bowtie: crosses itself between the second and fourth
	// vertices.
	bowtie := ring(0, 0, 10, 10, 10, 0, 0, 10, 0, 0)
	p := geom.NewPolygon(bowtie, nil)

	res := Validate(p)

	assert.Falsef(t, res.Valid, "self-intersecting ring should be invalid")
	assert.EqualValuesf(t, res.Code, ERingSelfIntersection, "code")
}

func TestValidateHoleCrossesShellEdge(t *testing.T) {
	shell := ring(10, 90, 50, 50, 10, 10, 10, 90)
	hole := ring(20, 50, 60, 70, 60, 30, 20, 50)
	p := geom.NewPolygon(shell, []geom.LinearRing{hole})

	res := Validate(p)

	assert.Falsef(t, res.Valid, "a hole crossing the shell boundary should be invalid")
	assert.EqualValuesf(t, res.Code, ESelfIntersection, "a shell-hole crossing is a consistent-area failure, not a containment failure")
}

func TestValidateShellTouchingHoleAlongSegmentIsInvalid(t *testing.T) {
	shell := ring(0, 0, 20, 0, 20, 20, 0, 20, 0, 0)
	// The hole's left edge runs along part of the shell's left edge
	// (0,0)-(0,20): a segment overlap, not an isolated touch point.
	hole := ring(0, 5, 10, 5, 10, 15, 0, 15, 0, 5)
	p := geom.NewPolygon(shell, []geom.LinearRing{hole})

	res := Validate(p)

	assert.Falsef(t, res.Valid, "a shell touching a hole along a segment should be invalid")
	assert.EqualValuesf(t, res.Code, ESelfIntersection, "code")
}

func TestValidateHoleTouchingShellAtSinglePointIsValid(t *testing.T) {
	shell := ring(0, 0, 20, 0, 20, 20, 0, 20, 0, 0)
	hole := ring(0, 10, 10, 5, 10, 15, 0, 10)
	p := geom.NewPolygon(shell, []geom.LinearRing{hole})

	res := Validate(p)

	assert.Truef(t, res.Valid, "a hole touching the shell at one vertex should stay valid")
}

func TestValidateDisconnectedInterior(t *testing.T) {
	shell := ring(0, 0, 20, 0, 20, 20, 0, 20, 0, 0)
	// A hole re-touching the shell corner (0,0) twice in its own walk
	// splits the interior into two lobes meeting only at that point.
	hole := ring(0, 0, 5, 5, 0, 0, 15, 5, 10, 15, 0, 0)
	p := geom.NewPolygon(shell, []geom.LinearRing{hole})

	res := validateInteriorConnected(p)

	assert.Falsef(t, res.Valid, "hole revisiting a shell vertex should disconnect the interior")
	assert.EqualValuesf(t, res.Code, EDisconnectedInterior, "code")
}
