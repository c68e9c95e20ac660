package runtime

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/sbl8/meshx/core"
	"github.com/sbl8/meshx/kernels"
)

// serialThreshold is the driving-side row count below which Intersect
// chooses SerialBackend over PoolBackend by default — below it, goroutine
// dispatch costs more than the work it parallelizes.
const serialThreshold = 256

// SetBackend pins the Backend a Workspace's Intersect calls use. Passing
// nil restores automatic selection based on mesh size.
func (w *Workspace) SetBackend(b Backend) {
	w.backend = b
}

func (w *Workspace) resolveBackend(driveLen int) Backend {
	if w.backend != nil {
		return w.backend
	}
	if driveLen < serialThreshold {
		return SerialBackend{}
	}
	return NewPoolBackend(0)
}

// Intersect computes the CSR intersection of a and b using a fresh,
// throwaway Workspace and automatic backend selection. Callers issuing
// many intersections against similarly-sized meshes should build a
// Workspace once with NewWorkspace and call IntersectWith directly so
// its scratch buffers are reused across calls.
func Intersect(a, b core.Mesh) (core.Mesh, error) {
	return IntersectWith(context.Background(), a, b, NewWorkspace())
}

// IntersectWith runs the seven-phase intersection pipeline: row matching
// by binary search on the smaller mesh's rows (P1), a scan to compact
// matched row pairs (P2-P3), a count-only merge pass to size the output
// per matched row (P4), a scan to lay out the raw merge output (P5), a
// fill pass that merges and then coalesces touching runs per row (P6),
// and a final scan-based compaction that drops rows whose merge
// produced no surviving interval (P7) — all without an O(M²) serial
// search anywhere in the pipeline.
func IntersectWith(ctx context.Context, a, b core.Mesh, ws *Workspace) (core.Mesh, error) {
	if err := core.Validate(a); err != nil {
		return core.Empty, errors.Wrapf(ErrInvariantViolation, "mesh a: %s", err)
	}
	if err := core.Validate(b); err != nil {
		return core.Empty, errors.Wrapf(ErrInvariantViolation, "mesh b: %s", err)
	}
	if a.RowCount() == 0 || b.RowCount() == 0 {
		return core.Empty, nil
	}

	driveOnB := kernels.DriveOnB(a.RowCount(), b.RowCount())
	driveLen := a.RowCount()
	if driveOnB {
		driveLen = b.RowCount()
	}
	backend := ws.resolveBackend(driveLen)

	ws.reset()
	log.WithFields(logrusFields(a, b, driveOnB, backend)).Debug("meshx: intersect starting")

	// P1 RowMatch + P2 RowScan: binary-search the driving side's row
	// keys into the other side, then compact matched pairs with an
	// exclusive scan over a 0/1 match flag.
	driveOther := make([]int, driveLen)
	if err := ws.ensureRowScan(driveLen); err != nil {
		return core.Empty, err
	}
	driveKeys, otherKeys := a.RowKeys, b.RowKeys
	if driveOnB {
		driveKeys, otherKeys = b.RowKeys, a.RowKeys
	}
	err := backend.ParallelFor(ctx, driveLen, func(i int) {
		idx := kernels.FindRow(otherKeys, driveKeys[i])
		driveOther[i] = idx
		if idx >= 0 {
			ws.rowCounts[i] = 1
		} else {
			ws.rowCounts[i] = 0
		}
	})
	if err != nil {
		return core.Empty, errors.Wrap(err, "meshx: row match phase")
	}

	matchedRows, err := backend.ParallelExclusiveScan(ctx, ws.rowCounts[:driveLen], ws.rowOffsets[:driveLen])
	if err != nil {
		return core.Empty, errors.Wrap(err, "meshx: row scan phase")
	}
	M := int(matchedRows)
	if M == 0 {
		return core.Empty, nil
	}

	// P3 RowCompact: scatter matched (idxA, idxB) pairs into contiguous
	// arrays sized exactly M.
	if err := ws.ensureMatch(M); err != nil {
		return core.Empty, err
	}
	err = backend.ParallelFor(ctx, driveLen, func(i int) {
		if ws.rowCounts[i] == 0 {
			return
		}
		pos := int(ws.rowOffsets[i])
		if driveOnB {
			ws.matchA[pos] = driveOther[i]
			ws.matchB[pos] = i
		} else {
			ws.matchA[pos] = i
			ws.matchB[pos] = driveOther[i]
		}
	})
	if err != nil {
		return core.Empty, errors.Wrap(err, "meshx: row compact phase")
	}

	// P4 Count: count-only merge per matched row.
	if err := ws.ensureIntervalScan(M); err != nil {
		return core.Empty, err
	}
	err = backend.ParallelFor(ctx, M, func(k int) {
		rowA := a.Row(ws.matchA[k])
		rowB := b.Row(ws.matchB[k])
		ws.intervalCounts[k] = uint64(kernels.MergeCount(rowA, rowB))
	})
	if err != nil {
		return core.Empty, errors.Wrap(err, "meshx: count phase")
	}

	// P5 IntScan: lay out the raw (pre-coalesce) merge output.
	rawTotal, err := backend.ParallelExclusiveScan(ctx, ws.intervalCounts[:M], ws.intervalOffsets[:M])
	if err != nil {
		return core.Empty, errors.Wrap(err, "meshx: interval scan phase")
	}
	if rawTotal == 0 {
		return core.Empty, nil
	}
	if err := ws.ensureScratch(int(rawTotal)); err != nil {
		return core.Empty, err
	}

	// P6 Fill: merge each matched row's intervals into its scratch
	// slice, then coalesce touching runs in place.
	finalLens := make([]uint64, M)
	err = backend.ParallelFor(ctx, M, func(k int) {
		off := ws.intervalOffsets[k]
		n := ws.intervalCounts[k]
		if n == 0 {
			return
		}
		rowA := a.Row(ws.matchA[k])
		rowB := b.Row(ws.matchB[k])
		dst := ws.scratch[off : off+n]
		written := kernels.MergeFill(rowA, rowB, dst)
		finalLens[k] = uint64(kernels.CoalesceRow(dst[:written]))
	})
	if err != nil {
		return core.Empty, errors.Wrap(err, "meshx: fill phase")
	}

	// P7 RowCompact2: scan-based removal of rows whose merge produced
	// no surviving interval, using the post-coalesce lengths directly
	// as the final interval layout — zero-length rows contribute
	// nothing to the running sum, so kept rows land at the right offset
	// with no serial search.
	finalOffsets := make([]uint64, M)
	finalTotal, err := backend.ParallelExclusiveScan(ctx, finalLens, finalOffsets)
	if err != nil {
		return core.Empty, errors.Wrap(err, "meshx: final interval scan phase")
	}
	if finalTotal == 0 {
		return core.Empty, nil
	}

	keepFlags := make([]uint64, M)
	for k := range finalLens {
		if finalLens[k] > 0 {
			keepFlags[k] = 1
		}
	}
	rowIdx := make([]uint64, M)
	finalRows, err := backend.ParallelExclusiveScan(ctx, keepFlags, rowIdx)
	if err != nil {
		return core.Empty, errors.Wrap(err, "meshx: final row scan phase")
	}
	N := int(finalRows)

	rowKeys := make([]core.RowKey, N)
	rowPtr := make([]uint64, N+1)
	intervals := make([]core.Interval, finalTotal)
	rowPtr[N] = finalTotal

	err = backend.ParallelFor(ctx, M, func(k int) {
		if keepFlags[k] == 0 {
			return
		}
		ri := rowIdx[k]
		rowKeys[ri] = a.RowKeys[ws.matchA[k]]
		rowPtr[ri] = finalOffsets[k]
		rawOff := ws.intervalOffsets[k]
		copy(intervals[finalOffsets[k]:finalOffsets[k]+finalLens[k]], ws.scratch[rawOff:rawOff+finalLens[k]])
	})
	if err != nil {
		return core.Empty, errors.Wrap(err, "meshx: final copy phase")
	}

	out := core.New(rowKeys, rowPtr, intervals)
	log.WithField("rows", N).WithField("intervals", finalTotal).Debug("meshx: intersect finished")
	return out, nil
}

func logrusFields(a, b core.Mesh, driveOnB bool, backend Backend) map[string]any {
	return map[string]any{
		"rows_a":     a.RowCount(),
		"rows_b":     b.RowCount(),
		"drive_on_b": driveOnB,
		"workers":    backend.Workers(),
	}
}
