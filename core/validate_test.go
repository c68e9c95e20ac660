package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsCanonicalMesh(t *testing.T) {
	m := New(
		[]RowKey{{Y: 0, Z: 0}, {Y: 1, Z: 0}},
		[]uint64{0, 2, 3},
		[]Interval{{Begin: 0, End: 5}, {Begin: 10, End: 15}, {Begin: 20, End: 25}},
	)
	require.NoError(t, Validate(m))
}

func TestValidateAcceptsEmptyMesh(t *testing.T) {
	require.NoError(t, Validate(Empty))
}

func TestValidateRejectsLengthMismatch(t *testing.T) {
	m := Mesh{
		RowKeys: []RowKey{{Y: 0, Z: 0}},
		RowPtr:  []uint64{0, 1},
		N:       2,
		E:       1,
	}
	require.Error(t, Validate(m))
}

func TestValidateRejectsBadRowPtrBounds(t *testing.T) {
	m := Mesh{
		RowKeys:   []RowKey{{Y: 0, Z: 0}},
		RowPtr:    []uint64{1, 1},
		Intervals: []Interval{},
		N:         1,
		E:         0,
	}
	require.Error(t, Validate(m))
}

func TestValidateRejectsEmptyRow(t *testing.T) {
	m := Mesh{
		RowKeys:   []RowKey{{Y: 0, Z: 0}, {Y: 1, Z: 0}},
		RowPtr:    []uint64{0, 0, 1},
		Intervals: []Interval{{Begin: 0, End: 1}},
		N:         2,
		E:         1,
	}
	require.Error(t, Validate(m))
}

func TestValidateRejectsNonIncreasingRowKeys(t *testing.T) {
	m := New(
		[]RowKey{{Y: 1, Z: 0}, {Y: 0, Z: 0}},
		[]uint64{0, 1, 2},
		[]Interval{{Begin: 0, End: 1}, {Begin: 0, End: 1}},
	)
	require.Error(t, Validate(m))
}

func TestValidateRejectsBeginGreaterEqualEnd(t *testing.T) {
	m := New(
		[]RowKey{{Y: 0, Z: 0}},
		[]uint64{0, 1},
		[]Interval{{Begin: 5, End: 5}},
	)
	require.Error(t, Validate(m))
}

func TestValidateRejectsOverlappingIntervals(t *testing.T) {
	m := New(
		[]RowKey{{Y: 0, Z: 0}},
		[]uint64{0, 2},
		[]Interval{{Begin: 0, End: 10}, {Begin: 5, End: 15}},
	)
	require.Error(t, Validate(m))
}

func TestValidateRejectsTouchingIntervals(t *testing.T) {
	m := New(
		[]RowKey{{Y: 0, Z: 0}},
		[]uint64{0, 2},
		[]Interval{{Begin: 0, End: 5}, {Begin: 5, End: 10}},
	)
	require.Error(t, Validate(m))
}
