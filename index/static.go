package index

import (
	"math"
	"sort"

	"github.com/danielcohen/geomkernel/geom"
)

// maxChildren bounds node fanout; the bulk-load algorithm below is
// hardcoded around min/max cardinalities of 2 and 4, exactly as in the
// teacher's rtree.BulkLoad.
const maxChildren = 4

type box struct {
	MinX, MinY, MaxX, MaxY float64
}

func boxOf(e geom.Envelope) box {
	return box{e.MinX, e.MinY, e.MaxX, e.MaxY}
}

func combine(a, b box) box {
	return box{
		MinX: minF(a.MinX, b.MinX),
		MinY: minF(a.MinY, b.MinY),
		MaxX: maxF(a.MaxX, b.MaxX),
		MaxY: maxF(a.MaxY, b.MaxY),
	}
}

func (b box) intersects(o box) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX && b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

func (b box) distance(o box) float64 {
	dx := maxF(0, maxF(b.MinX-o.MaxX, o.MinX-b.MaxX))
	dy := maxF(0, maxF(b.MinY-o.MaxY, o.MinY-b.MaxY))
	return hypot(dx, dy)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func hypot(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}

type entry struct {
	box      box
	recordID int
	child    *node
}

type node struct {
	isLeaf     bool
	numEntries int
	parent     *node
	entries    [maxChildren]entry
}

func calculateBound(n *node) box {
	b := n.entries[0].box
	for _, e := range n.entries[1:n.numEntries] {
		b = combine(b, e.box)
	}
	return b
}

// Static is a bulk-loaded, read-only spatial index, the production STR
// R-tree (spec.md §9 "R-tree (STR-packed) for static collections").
type Static struct {
	root *node
}

// BulkLoad builds a Static index over items in one shot, minimizing node
// overlap for fast subsequent querying (adapted directly from the
// teacher's rtree.BulkLoad).
func BulkLoad(items []Item) *Static {
	if len(items) == 0 {
		return &Static{}
	}
	bulk := make([]bulkItem, len(items))
	for i, it := range items {
		bulk[i] = bulkItem{box: boxOf(it.Box), recordID: it.RecordID}
	}
	levels := calculateLevels(len(bulk))
	return &Static{root: bulkInsert(bulk, levels)}
}

func calculateLevels(numItems int) int {
	levels := 1
	count := maxChildren
	for count < numItems {
		count *= maxChildren
		levels++
	}
	return levels
}

type bulkItem struct {
	box      box
	recordID int
}

func bulkInsert(items []bulkItem, levels int) *node {
	if levels == 1 {
		root := &node{isLeaf: true, numEntries: len(items)}
		for i, item := range items {
			root.entries[i] = entry{box: item.box, recordID: item.recordID}
		}
		return root
	}

	if len(items) < 6 {
		first, second := splitBulkItems2Ways(items)
		return bulkNode(levels, first, second)
	}
	if len(items) < 8 {
		first, second, third := splitBulkItems3Ways(items)
		return bulkNode(levels, first, second, third)
	}
	first, second := splitBulkItems2Ways(items)
	firstA, firstB := splitBulkItems2Ways(first)
	secondA, secondB := splitBulkItems2Ways(second)
	return bulkNode(levels, firstA, firstB, secondA, secondB)
}

func bulkNode(levels int, parts ...[]bulkItem) *node {
	root := &node{numEntries: len(parts)}
	for i, part := range parts {
		child := bulkInsert(part, levels-1)
		child.parent = root
		root.entries[i].child = child
		root.entries[i].box = calculateBound(child)
	}
	return root
}

func splitBulkItems2Ways(items []bulkItem) ([]bulkItem, []bulkItem) {
	sortBulkItems(items)
	split := len(items) / 2
	return items[:split], items[split:]
}

func splitBulkItems3Ways(items []bulkItem) ([]bulkItem, []bulkItem, []bulkItem) {
	if n := len(items); n != 6 && n != 7 {
		panic("index: splitBulkItems3Ways requires 6 or 7 items")
	}
	sortBulkItems(items)
	return items[:2], items[2:4], items[4:]
}

// sortBulkItems sorts items by their midpoint along the tree's longer
// axis. A sort.Slice replaces the teacher's custom quickselect partition:
// same split points, simpler, O(n log n). The sort is not stable, so items
// with equal midpoints may come out in either order.
func sortBulkItems(items []bulkItem) {
	bnd := items[0].box
	for _, it := range items[1:] {
		bnd = combine(bnd, it.box)
	}
	horizontal := bnd.MaxX-bnd.MinX > bnd.MaxY-bnd.MinY
	sort.Slice(items, func(i, j int) bool {
		bi, bj := items[i].box, items[j].box
		if horizontal {
			return bi.MinX+bi.MaxX < bj.MinX+bj.MaxX
		}
		return bi.MinY+bi.MaxY < bj.MinY+bj.MaxY
	})
}

// Query visits every item whose envelope intersects q, in the tree's
// depth-first order, which is the same on every run over the same tree
// (spec.md §5 ordering guarantee). A visit that returns an error ends the
// whole query.
func (s *Static) Query(q geom.Envelope, visit VisitFunc) {
	if s.root == nil {
		return
	}
	qb := boxOf(q)
	stopped := false
	var walk func(n *node)
	walk = func(n *node) {
		for i := 0; i < n.numEntries && !stopped; i++ {
			e := n.entries[i]
			if !e.box.intersects(qb) {
				continue
			}
			if n.isLeaf {
				if err := visit(e.recordID); err != nil {
					stopped = true
					return
				}
				continue
			}
			walk(e.child)
		}
	}
	walk(s.root)
}

// PrioritySearch visits candidates nearest-box-first, letting the caller
// stop early once it can prove no closer match remains (index.Stop) —
// adapted from the teacher's geom/alg_distance.go usage of
// rtree.PrioritySearch for nearest-neighbour distance queries.
func (s *Static) PrioritySearch(q geom.Envelope, visit VisitFunc) {
	if s.root == nil {
		return
	}
	qb := boxOf(q)

	type candidate struct {
		dist   float64
		leaf   bool
		n      *node
		e      entry
	}
	var queue []candidate
	push := func(c candidate) {
		queue = append(queue, c)
		sort.SliceStable(queue, func(i, j int) bool { return queue[i].dist < queue[j].dist })
	}
	pop := func() candidate {
		c := queue[0]
		queue = queue[1:]
		return c
	}

	for i := 0; i < s.root.numEntries; i++ {
		e := s.root.entries[i]
		push(candidate{dist: e.box.distance(qb), e: e, leaf: s.root.isLeaf})
	}
	for len(queue) > 0 {
		c := pop()
		if c.leaf {
			if err := visit(c.e.recordID); err != nil {
				return
			}
			continue
		}
		child := c.e.child
		for i := 0; i < child.numEntries; i++ {
			e := child.entries[i]
			push(candidate{dist: e.box.distance(qb), e: e, leaf: child.isLeaf})
		}
	}
}
