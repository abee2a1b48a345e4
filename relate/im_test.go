package relate

import (
	"testing"

	"github.com/danielcohen/geomkernel/geom"
	"github.com/teleivo/assertive/assert"
)

func TestIntersectionMatrixStringAllFalse(t *testing.T) {
	m := newFMatrix()

	assert.EqualValuesf(t, m.String(), "FFFFFFFFF", "empty matrix string")
}

func TestIntersectionMatrixSetKeepsMax(t *testing.T) {
	m := newFMatrix()
	m.set(geom.Interior, geom.Interior, 0)
	m.set(geom.Interior, geom.Interior, 2)
	m.set(geom.Interior, geom.Interior, 1)

	assert.EqualValuesf(t, m.Get(geom.Interior, geom.Interior), 2, "cell should keep the max dimension set")
}

func TestIntersectionMatrixMatches(t *testing.T) {
	m := newFMatrix()
	m.set(geom.Interior, geom.Interior, 2)
	m.set(geom.Exterior, geom.Exterior, 2)

	ok, err := m.Matches("T********")
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Truef(t, ok, "T should match a dimension-2 cell")

	ok, err = m.Matches("F********")
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Falsef(t, ok, "F should not match a dimension-2 cell")

	ok, err = m.Matches("2********")
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Truef(t, ok, "exact digit should match")
}

func TestIntersectionMatrixMatchesBadLength(t *testing.T) {
	m := newFMatrix()

	_, err := m.Matches("TT")

	assert.Truef(t, err != nil, "short pattern should error")
}
