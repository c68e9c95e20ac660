// Package kernels implements the per-row work performed by the
// intersection pipeline's data-parallel phases: locating a matching row
// by key, and merging two rows' interval lists with a two-pointer sweep.
// Every function here is pure and safe to call concurrently from any
// worker — the parallelism itself lives in runtime.Backend.ParallelFor,
// not in this package.
package kernels

import "github.com/sbl8/meshx/core"

// FindRow returns the index of key within the sorted, unique rowKeys
// slice, or -1 if key is absent. It is a standard lower-bound binary
// search under the lexicographic RowKey order (core.RowKey.Compare) and
// performs no allocation, so it is safe to call from any parallel
// worker against a read-only row-key slice shared across the whole
// ParallelFor call.
func FindRow(rowKeys []core.RowKey, key core.RowKey) int {
	lo, hi := 0, len(rowKeys)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if rowKeys[mid].Less(key) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(rowKeys) && rowKeys[lo].Compare(key) == 0 {
		return lo
	}
	return -1
}
