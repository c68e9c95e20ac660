// Package meshx implements parallel intersection of sparse 3D cell
// meshes stored in compressed sparse row (CSR) form.
//
// A mesh is a sorted array of (Y,Z) row keys, a CSR offset array, and a
// flat array of half-open X intervals — each row a disjoint, sorted,
// non-touching run of intervals. Intersect computes the set
// intersection of two meshes row by row: rows present in both inputs
// have their interval lists merged with a two-pointer sweep, touching
// runs produced by that merge are coalesced, and rows whose merge
// produces no interval are dropped from the output.
//
// # Architecture Overview
//
// The intersection pipeline runs in seven data-parallel phases behind a
// pluggable runtime.Backend:
//
//   - P1 RowMatch: binary-search the smaller mesh's rows into the larger
//   - P2/P3 RowScan/RowCompact: scan-compact the matched row pairs
//   - P4 Count: count-only two-pointer merge per matched row
//   - P5 IntScan: scan the raw merge-output layout
//   - P6 Fill: merge and coalesce each row's output in place
//   - P7 RowCompact2: scan-based removal of rows with no surviving interval
//
// # Basic Usage
//
//	a, _ := meshbuild.Parse(srcA)
//	b, _ := meshbuild.Parse(srcB)
//	out, err := runtime.Intersect(a, b)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Package Structure
//
//   - core: Mesh, RowKey, Interval types and the CSR invariant checker
//   - kernels: pure per-row binary-search, merge, and coalesce functions
//   - runtime: Backend abstraction, Workspace scratch buffers, Intersect
//   - meshio: binary mesh serialization
//   - meshbuild: a small text DSL for hand-written mesh fixtures
//   - cmd: command-line tools (meshxbuild, meshxcat, meshxbench)
package meshx
