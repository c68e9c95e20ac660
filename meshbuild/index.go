package meshbuild

import (
	"github.com/google/btree"

	"github.com/sbl8/meshx/core"
	"github.com/sbl8/meshx/kernels"
)

// rowIndex accumulates rows in arbitrary input order, keyed by RowKey,
// and merges intervals into the right row as "row" directives for the
// same key are seen more than once. It uses google/btree instead of a
// plain map+sort so row order falls out of an in-order traversal rather
// than a separate sort pass over the whole input at the end.
type rowIndex struct {
	tree *btree.BTree
}

const btreeDegree = 32

func newRowIndex() *rowIndex {
	return &rowIndex{tree: btree.New(btreeDegree)}
}

// rowEntry is the btree.Item stored per distinct RowKey.
type rowEntry struct {
	key       core.RowKey
	intervals []core.Interval
}

func (e *rowEntry) Less(than btree.Item) bool {
	return e.key.Less(than.(*rowEntry).key)
}

func (idx *rowIndex) addRow(key core.RowKey, intervals []core.Interval) {
	probe := &rowEntry{key: key}
	if existing := idx.tree.Get(probe); existing != nil {
		e := existing.(*rowEntry)
		e.intervals = append(e.intervals, intervals...)
		return
	}
	idx.tree.ReplaceOrInsert(&rowEntry{key: key, intervals: intervals})
}

// build drains the index in key order into a canonical Mesh: each row's
// intervals are sorted, coalesced, and laid out contiguously, and rows
// whose intervals all vanish (a row directive with no intervals at all
// is rejected earlier by the parser, so this is defensive) are skipped.
func (idx *rowIndex) build() core.Mesh {
	var rowKeys []core.RowKey
	rowPtr := []uint64{0}
	var intervals []core.Interval

	idx.tree.Ascend(func(item btree.Item) bool {
		e := item.(*rowEntry)
		sortIntervals(e.intervals)
		n := kernels.CoalesceRow(e.intervals)
		row := e.intervals[:n]
		if n == 0 {
			return true
		}
		rowKeys = append(rowKeys, e.key)
		intervals = append(intervals, row...)
		rowPtr = append(rowPtr, uint64(len(intervals)))
		return true
	})

	return core.New(rowKeys, rowPtr, intervals)
}
