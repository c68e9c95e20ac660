package runtime

import (
	"github.com/cockroachdb/errors"

	"github.com/sbl8/meshx/core"
)

// Workspace holds the scratch buffers Intersect reuses across phases —
// row-match indices, per-row counts, exclusive-scan prefixes, and the
// output interval buffer before it is known how much of it survives
// compaction. A Workspace grows its buffers on demand and never shrinks
// them, so calling Intersect repeatedly against meshes of similar size
// with the same Workspace avoids reallocating on every call.
type Workspace struct {
	matchA []int
	matchB []int

	rowCounts  []uint64
	rowOffsets []uint64

	intervalCounts  []uint64
	intervalOffsets []uint64

	scratch []core.Interval

	backend Backend
}

// NewWorkspace returns an empty Workspace. Its buffers grow lazily the
// first time Intersect needs them.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

func (w *Workspace) reset() {
	w.matchA = w.matchA[:0]
	w.matchB = w.matchB[:0]
	w.rowCounts = w.rowCounts[:0]
	w.rowOffsets = w.rowOffsets[:0]
	w.intervalCounts = w.intervalCounts[:0]
	w.intervalOffsets = w.intervalOffsets[:0]
}

func growInts(buf []int, n int) []int {
	if cap(buf) >= n {
		return buf[:n]
	}
	return core.AlignedSlice[int](n)
}

func growU64(buf []uint64, n int) []uint64 {
	if cap(buf) >= n {
		return buf[:n]
	}
	return core.AlignedSlice[uint64](n)
}

func growIntervals(buf []core.Interval, n int) []core.Interval {
	if cap(buf) >= n {
		return buf[:n]
	}
	return core.AlignedSlice[core.Interval](n)
}

// ensureMatch sizes the two row-match index buffers to hold n entries
// each, returning ErrAllocationFailure wrapped with context if n is
// negative — the only way sizing can fail, since Go slice growth itself
// cannot return an error short of an out-of-memory panic.
func (w *Workspace) ensureMatch(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrAllocationFailure, "negative row count %d", n)
	}
	w.matchA = growInts(w.matchA, n)
	w.matchB = growInts(w.matchB, n)
	return nil
}

func (w *Workspace) ensureRowScan(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrAllocationFailure, "negative row count %d", n)
	}
	w.rowCounts = growU64(w.rowCounts, n)
	w.rowOffsets = growU64(w.rowOffsets, n+1)
	return nil
}

func (w *Workspace) ensureIntervalScan(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrAllocationFailure, "negative row count %d", n)
	}
	w.intervalCounts = growU64(w.intervalCounts, n)
	w.intervalOffsets = growU64(w.intervalOffsets, n+1)
	return nil
}

func (w *Workspace) ensureScratch(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrAllocationFailure, "negative interval count %d", n)
	}
	w.scratch = growIntervals(w.scratch, n)
	return nil
}
