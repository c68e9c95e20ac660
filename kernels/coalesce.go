package kernels

import "github.com/sbl8/meshx/core"

// CoalesceRow merges touching intervals within a single row's
// already-sorted, already-gap-or-overlap-free output slice in place and
// returns the new length. The two-pointer merge (MergeFill) can emit two
// adjacent intervals [a,b) and [b,c) when they originated from distinct
// entries on one input side; a canonical mesh never stores touching
// intervals, so this pass runs immediately after every row's fill and
// before the empty-row compaction decides which rows survive.
//
// row is compacted in place: CoalesceRow never allocates and never
// crosses the row's own boundaries, so callers do not need to repair
// row_ptr — only the row's logical length shrinks.
func CoalesceRow(row []core.Interval) int {
	if len(row) == 0 {
		return 0
	}
	w := 0
	for r := 1; r < len(row); r++ {
		if row[w].End == row[r].Begin {
			row[w].End = row[r].End
			continue
		}
		w++
		row[w] = row[r]
	}
	return w + 1
}
