package index

import (
	"github.com/danielcohen/geomkernel/geom"
	"github.com/dhconnelly/rtreego"
)

// Dynamic is an incrementally-built spatial index, backed by
// github.com/dhconnelly/rtreego (adapted from beetlebugorg-s57's
// pkg/s57/index.go ChartIndex, which wraps the same library behind a
// Query(Bounds) method). It is the right shape for the result extractor's
// hole→shell prefiltering and relate's prepared-mode point-in-area
// locator: both build a small index once per call and query it many
// times, with items added one at a time rather than bulk-loaded.
type Dynamic struct {
	tree *rtreego.Rtree
}

// NewDynamic creates an empty Dynamic index.
func NewDynamic() *Dynamic {
	return &Dynamic{tree: rtreego.NewTree(2, 2, 4)}
}

// dynItem adapts an Item to rtreego.Spatial, the same shape as
// beetlebugorg-s57's ChartEntry.Bounds().
type dynItem struct {
	box      geom.Envelope
	recordID int
}

func (d *dynItem) Bounds() rtreego.Rect {
	width := d.box.MaxX - d.box.MinX
	height := d.box.MaxY - d.box.MinY
	if width <= 0 {
		width = 1e-12
	}
	if height <= 0 {
		height = 1e-12
	}
	rect, err := rtreego.NewRect(rtreego.Point{d.box.MinX, d.box.MinY}, []float64{width, height})
	if err != nil {
		// Only possible if width/height are non-positive, which is
		// guarded above.
		panic(err)
	}
	return rect
}

// Insert adds an item to the index.
func (d *Dynamic) Insert(item Item) {
	d.tree.Insert(&dynItem{box: item.Box, recordID: item.RecordID})
}

// Query visits every item whose envelope intersects q.
func (d *Dynamic) Query(q geom.Envelope, visit VisitFunc) {
	qItem := &dynItem{box: q}
	results := d.tree.SearchIntersect(qItem.Bounds())
	for _, r := range results {
		di := r.(*dynItem)
		if err := visit(di.recordID); err != nil {
			return
		}
	}
}
