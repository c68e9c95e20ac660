package core

// Mesh is a 3D sparse cell mesh stored in compressed sparse row (CSR)
// form: a sorted, unique array of row keys, a non-decreasing offset
// array into a flat interval array, and the flat interval array itself.
//
// Row i's intervals occupy Intervals[RowPtr[i]:RowPtr[i+1]]. A Mesh owns
// all three of its backing slices; a Mesh returned by Intersect shares no
// mutable storage with its inputs.
type Mesh struct {
	RowKeys   []RowKey
	RowPtr    []uint64
	Intervals []Interval

	N int    // number of rows, == len(RowKeys) == len(RowPtr)-1
	E uint64 // total interval count, == len(Intervals) == RowPtr[N]
}

// Empty is the canonical zero-row, zero-interval mesh.
var Empty = Mesh{}

// IsEmpty reports whether the mesh has no rows.
func (m Mesh) IsEmpty() bool {
	return m.N == 0
}

// RowCount returns the number of rows in the mesh.
func (m Mesh) RowCount() int {
	return m.N
}

// IntervalCount returns the total number of stored intervals.
func (m Mesh) IntervalCount() uint64 {
	return m.E
}

// Row returns the slice of intervals belonging to row i. It panics if i
// is out of range, the same contract as indexing RowKeys directly.
func (m Mesh) Row(i int) []Interval {
	return m.Intervals[m.RowPtr[i]:m.RowPtr[i+1]]
}

// RowLen returns the number of intervals stored in row i.
func (m Mesh) RowLen(i int) uint64 {
	return m.RowPtr[i+1] - m.RowPtr[i]
}

// Clone returns a deep copy of m sharing no storage with it.
func (m Mesh) Clone() Mesh {
	if m.IsEmpty() {
		return Empty
	}
	out := Mesh{
		RowKeys:   make([]RowKey, len(m.RowKeys)),
		RowPtr:    make([]uint64, len(m.RowPtr)),
		Intervals: make([]Interval, len(m.Intervals)),
		N:         m.N,
		E:         m.E,
	}
	copy(out.RowKeys, m.RowKeys)
	copy(out.RowPtr, m.RowPtr)
	copy(out.Intervals, m.Intervals)
	return out
}

// New builds a Mesh from already-sorted, already-CSR-shaped data without
// copying. Callers that build a mesh incrementally (see the meshbuild
// package) should validate the result with Validate before returning it
// across an API boundary.
func New(rowKeys []RowKey, rowPtr []uint64, intervals []Interval) Mesh {
	n := len(rowKeys)
	var e uint64
	if len(rowPtr) > 0 {
		e = rowPtr[len(rowPtr)-1]
	}
	return Mesh{
		RowKeys:   rowKeys,
		RowPtr:    rowPtr,
		Intervals: intervals,
		N:         n,
		E:         e,
	}
}
