package relate

import (
	"testing"

	"github.com/teleivo/assertive/assert"
)

func TestDisjointSquares(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(20, 20, 30, 30)

	disjoint, err := Disjoint(a, b)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Truef(t, disjoint, "far-apart squares should be disjoint")

	intersects, err := Intersects(a, b)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Falsef(t, intersects, "disjoint squares should not intersect")
}

func TestContainsSquares(t *testing.T) {
	outer := square(0, 0, 20, 20)
	inner := square(5, 5, 10, 10)

	contains, err := Contains(outer, inner)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Truef(t, contains, "outer square should contain inner square")

	within, err := Within(inner, outer)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Truef(t, within, "inner square should be within outer square")

	reverseContains, err := Contains(inner, outer)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Falsef(t, reverseContains, "inner square should not contain outer square")
}

func TestOverlapsSquares(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(5, 5, 15, 15)

	overlaps, err := Overlaps(a, b)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Truef(t, overlaps, "partially overlapping same-dimension squares should overlap")
}

func TestTouchesAdjacentSquares(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(10, 0, 20, 10)

	touches, err := Touches(a, b)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Truef(t, touches, "edge-adjacent squares should touch")

	overlaps, err := Overlaps(a, b)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Falsef(t, overlaps, "edge-adjacent squares share no interior, so should not overlap")
}

func TestEqualsTopoSameSquare(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(0, 0, 10, 10)

	eq, err := EqualsTopo(a, b)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Truef(t, eq, "identical squares should be topologically equal")
}

func TestTouchesLineTJunction(t *testing.T) {
	// B's endpoint lands on A's interior (not at one of A's own
	// endpoints): the two lines touch, they do not cross.
	a := line(0, 0, 10, 0)
	b := line(5, 0, 5, 5)

	touches, err := Touches(a, b)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Truef(t, touches, "a T-junction endpoint on the other line's interior should touch")

	crosses, err := Crosses(a, b)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Falsef(t, crosses, "a T-junction endpoint on the other line's interior should not cross")
}

func TestPreparedContainsMatchesUnprepared(t *testing.T) {
	outer := square(0, 0, 20, 20)
	inner := square(5, 5, 10, 10)

	prep, err := Prepare(outer)
	assert.Truef(t, err == nil, "unexpected error preparing: %v", err)

	contains, err := prep.Contains(inner)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Truef(t, contains, "prepared outer square should contain inner square")

	unprepared, err := Contains(outer, inner)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.EqualValuesf(t, contains, unprepared, "prepared and unprepared Contains should agree")
}
