// Package index provides the generic "query(envelope) -> items" spatial
// index contract spec.md §9 asks the overlay/relate/valid core to treat as
// index-agnostic. Two concrete backings are provided: Static, a bulk-loaded
// STR-packed tree adapted from the teacher's rtree package (for the
// noder's monotone-chain index and nearest-neighbour distance queries),
// and Dynamic, backed by github.com/dhconnelly/rtreego (for the small,
// incrementally-built indexes the result extractor and relate's prepared
// mode need).
package index

import "github.com/danielcohen/geomkernel/geom"

// Item is a single indexed record: its bounding envelope plus an opaque
// identifier the caller assigns meaning to.
type Item struct {
	Box      geom.Envelope
	RecordID int
}

// VisitFunc is called for each candidate item whose envelope intersects
// the query envelope. Returning Stop halts the search early (used by
// nearest-neighbour style priority searches that can prove no closer
// match remains).
type VisitFunc func(recordID int) error

// Stop is a sentinel error a VisitFunc can return to end the search early
// without that being treated as a real failure.
var Stop = stopError{}

type stopError struct{}

func (stopError) Error() string { return "index: search stopped early" }
