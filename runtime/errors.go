package runtime

import "github.com/cockroachdb/errors"

// Error categories the pipeline raises. Callers that need to distinguish
// a malformed-input failure from an internal one can match against these
// with errors.Is; some raise sites wrap a sentinel with context via
// errors.Wrapf, others (such as the backends' scans) return it bare.
var (
	// ErrInvariantViolation marks a failure caused by an input Mesh that
	// does not satisfy the CSR invariants (strictly increasing row keys,
	// non-overlapping non-touching intervals per row, consistent RowPtr).
	ErrInvariantViolation = errors.New("meshx: invariant violation")

	// ErrAllocationFailure marks a failure to size or grow a Workspace
	// scratch buffer for a requested phase.
	ErrAllocationFailure = errors.New("meshx: workspace allocation failure")

	// ErrOverflow marks an arithmetic overflow while accumulating a
	// scan total or a row length that would not fit the CSR index type.
	ErrOverflow = errors.New("meshx: arithmetic overflow")

	// ErrBackendFailure marks a failure raised by the parallel backend
	// itself: a PoolBackend worker goroutine panic recovered as an
	// error. A cancelled context is returned as the context's own error,
	// not wrapped in this sentinel.
	ErrBackendFailure = errors.New("meshx: backend failure")
)
