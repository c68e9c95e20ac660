package runtime

import (
	"context"
	stdruntime "runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// PoolBackend fans work out across a fixed pool of goroutines using
// errgroup for propagation of the first error and context cancellation,
// and a counting semaphore to cap how many chunks run concurrently when
// the caller wants fewer in-flight goroutines than CPUs. It is the
// general-purpose Backend for meshes large enough that per-row work
// outweighs goroutine dispatch overhead. A panic inside a worker's call
// to f is recovered and converted into ErrBackendFailure rather than
// crashing the process, the same way a panic in any one chunk of a
// caller-supplied f must not take down the other chunks still running.
type PoolBackend struct {
	workers int
	sem     *semaphore.Weighted
}

var _ Backend = (*PoolBackend)(nil)

// NewPoolBackend builds a PoolBackend with the given worker count. A
// non-positive count auto-detects from the number of logical CPUs.
func NewPoolBackend(workers int) *PoolBackend {
	if workers <= 0 {
		workers = stdruntime.NumCPU()
	}
	return &PoolBackend{
		workers: workers,
		sem:     semaphore.NewWeighted(int64(workers)),
	}
}

func (p *PoolBackend) Workers() int { return p.workers }

// chunkBounds splits [0,n) into at most p.workers contiguous ranges of
// ceil(n/workers) items each, the last one possibly shorter.
func (p *PoolBackend) chunkBounds(n int) [][2]int {
	if n <= 0 {
		return nil
	}
	workers := p.workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	bounds := make([][2]int, 0, workers)
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		bounds = append(bounds, [2]int{start, end})
	}
	return bounds
}

func (p *PoolBackend) ParallelFor(ctx context.Context, n int, f func(i int)) error {
	bounds := p.chunkBounds(n)
	if len(bounds) == 0 {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, b := range bounds {
		start, end := b[0], b[1]
		if err := p.sem.Acquire(gctx, 1); err != nil {
			return errGroupWait(g, err)
		}
		g.Go(func() (err error) {
			defer p.sem.Release(1)
			defer func() {
				if r := recover(); r != nil {
					err = errors.Wrapf(ErrBackendFailure, "worker panic: %v", r)
				}
			}()
			for i := start; i < end; i++ {
				if e := gctx.Err(); e != nil {
					return e
				}
				f(i)
			}
			return nil
		})
	}
	return g.Wait()
}

func errGroupWait(g *errgroup.Group, first error) error {
	if err := g.Wait(); err != nil {
		return err
	}
	return first
}

// ParallelExclusiveScan computes the scan in two passes: each chunk's
// local exclusive scan and total run concurrently, then a short serial
// fix-up turns the per-chunk totals into chunk base offsets, and a
// second parallel pass adds each element's chunk base to its local
// value already written in pass one.
func (p *PoolBackend) ParallelExclusiveScan(ctx context.Context, counts []uint64, out []uint64) (uint64, error) {
	if len(out) != len(counts) {
		return 0, ErrInvariantViolation
	}
	bounds := p.chunkBounds(len(counts))
	if len(bounds) == 0 {
		return 0, nil
	}
	chunkTotals := make([]uint64, len(bounds))

	g, gctx := errgroup.WithContext(ctx)
	for ci, b := range bounds {
		ci, start, end := ci, b[0], b[1]
		g.Go(func() error {
			var running uint64
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				out[i] = running
				next := running + counts[i]
				if next < running {
					return ErrOverflow
				}
				running = next
			}
			chunkTotals[ci] = running
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	baseOffsets := make([]uint64, len(bounds))
	var grandTotal uint64
	for ci, t := range chunkTotals {
		baseOffsets[ci] = grandTotal
		next := grandTotal + t
		if next < grandTotal {
			return 0, ErrOverflow
		}
		grandTotal = next
	}

	g2, gctx2 := errgroup.WithContext(ctx)
	for ci, b := range bounds {
		base, start, end := baseOffsets[ci], b[0], b[1]
		if base == 0 {
			continue
		}
		g2.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx2.Err(); err != nil {
					return err
				}
				out[i] += base
			}
			return nil
		})
	}
	if err := g2.Wait(); err != nil {
		return 0, err
	}
	return grandTotal, nil
}

func (p *PoolBackend) Barrier(ctx context.Context) error {
	return ctx.Err()
}

func (p *PoolBackend) DeepCopy(dst, src []byte) {
	copy(dst, src)
}
