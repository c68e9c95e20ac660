// Package runtime implements the pluggable parallel-execution façade the
// intersection pipeline is built on, the scratch-buffer Workspace phases
// share, and Intersect itself — the multi-phase orchestrator that ties
// row matching, interval counting, scanning, filling, and compaction
// together behind a single synchronous call.
package runtime

import "context"

// Backend supplies the four cross-worker coordination primitives every
// phase of Intersect is built from. Implementations must give ParallelFor
// no ordering guarantee between work items (item i may run concurrently
// with, before, or after item j) and must make every write performed
// inside a ParallelFor call visible to the caller once ParallelFor
// returns — the return itself is the barrier for that phase; a separate
// Barrier method exists for callers that need an explicit
// synchronization point without an accompanying parallel-for. Intersect
// itself relies only on the return of each ParallelFor and scan.
type Backend interface {
	// ParallelFor executes f(i) for i in [0,n) with no ordering
	// guarantee between calls. It returns once every call has completed
	// and its writes are visible to the caller.
	ParallelFor(ctx context.Context, n int, f func(i int)) error

	// ParallelExclusiveScan writes out[i] = sum(counts[:i]) for every i,
	// and returns the grand total sum(counts). It does not allocate out
	// itself; out must already have length len(counts).
	ParallelExclusiveScan(ctx context.Context, counts []uint64, out []uint64) (total uint64, err error)

	// Barrier blocks until all work previously submitted through this
	// Backend has completed and its memory effects are visible.
	Barrier(ctx context.Context) error

	// DeepCopy copies src into dst, which must have equal length. On
	// every backend this module ships, host and "device" storage are
	// the same address space, so this is a plain copy; a real GPU
	// backend would stage a host<->device transfer here instead.
	DeepCopy(dst, src []byte)

	// Workers reports the degree of parallelism this backend will use
	// for a ParallelFor call, for diagnostics and workspace sizing.
	// Serial backends report 1.
	Workers() int
}
