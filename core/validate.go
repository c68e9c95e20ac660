package core

import "github.com/cockroachdb/errors"

// Validate checks all five Mesh invariants (row keys strictly increasing
// and unique, row_ptr non-decreasing with row_ptr[N] == E, per-row
// intervals sorted/disjoint/non-touching, every interval's Begin < End,
// and no empty rows) in O(N+E) time. Callers on a hot path that trust
// their inputs (e.g. immediately after Intersect produces its own
// output) may skip it.
func Validate(m Mesh) error {
	if m.N == 0 {
		if len(m.RowKeys) != 0 || len(m.Intervals) != 0 || m.E != 0 {
			return errors.Newf("meshx: invariant violation: empty mesh with non-empty storage")
		}
		if len(m.RowPtr) != 0 && len(m.RowPtr) != 1 {
			return errors.Newf("meshx: invariant violation: len(RowPtr)=%d for an empty mesh, want 0 or 1", len(m.RowPtr))
		}
		return nil
	}
	if len(m.RowKeys) != m.N {
		return errors.Newf("meshx: invariant violation: len(RowKeys)=%d != N=%d", len(m.RowKeys), m.N)
	}
	if len(m.RowPtr) != m.N+1 {
		return errors.Newf("meshx: invariant violation: len(RowPtr)=%d != N+1=%d", len(m.RowPtr), m.N+1)
	}
	if uint64(len(m.Intervals)) != m.E {
		return errors.Newf("meshx: invariant violation: len(Intervals)=%d != E=%d", len(m.Intervals), m.E)
	}
	if m.RowPtr[0] != 0 {
		return errors.Newf("meshx: invariant violation: RowPtr[0]=%d, want 0", m.RowPtr[0])
	}
	if m.RowPtr[m.N] != m.E {
		return errors.Newf("meshx: invariant violation: RowPtr[N]=%d != E=%d", m.RowPtr[m.N], m.E)
	}

	for i := 0; i < m.N; i++ {
		if m.RowPtr[i] > m.RowPtr[i+1] {
			return errors.Newf("meshx: invariant violation: RowPtr not non-decreasing at row %d (%d > %d)", i, m.RowPtr[i], m.RowPtr[i+1])
		}
		if m.RowPtr[i] == m.RowPtr[i+1] {
			return errors.Newf("meshx: invariant violation: row %d is empty in a canonical mesh", i)
		}
		if i > 0 && !m.RowKeys[i-1].Less(m.RowKeys[i]) {
			return errors.Newf("meshx: invariant violation: RowKeys not strictly increasing at index %d (%+v >= %+v)", i, m.RowKeys[i-1], m.RowKeys[i])
		}
		if err := validateRow(m.Row(i), m.RowKeys[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateRow(row []Interval, key RowKey) error {
	for j, iv := range row {
		if iv.Begin >= iv.End {
			return errors.Newf("meshx: invariant violation: row %+v interval %d has Begin=%d >= End=%d", key, j, iv.Begin, iv.End)
		}
		if j > 0 {
			prev := row[j-1]
			if iv.Begin < prev.End {
				return errors.Newf("meshx: invariant violation: row %+v intervals %d,%d overlap (%v, %v)", key, j-1, j, prev, iv)
			}
			if iv.Begin == prev.End {
				return errors.Newf("meshx: invariant violation: row %+v intervals %d,%d touch (%v, %v), must be coalesced", key, j-1, j, prev, iv)
			}
		}
	}
	return nil
}
