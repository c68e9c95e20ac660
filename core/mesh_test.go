package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeshAccessors(t *testing.T) {
	m := New(
		[]RowKey{{Y: 0, Z: 0}, {Y: 1, Z: 0}},
		[]uint64{0, 2, 3},
		[]Interval{{Begin: 0, End: 5}, {Begin: 10, End: 15}, {Begin: 20, End: 25}},
	)

	require.False(t, m.IsEmpty())
	require.Equal(t, 2, m.RowCount())
	require.Equal(t, uint64(3), m.IntervalCount())
	require.Equal(t, uint64(2), m.RowLen(0))
	require.Equal(t, uint64(1), m.RowLen(1))
	require.Equal(t, []Interval{{Begin: 0, End: 5}, {Begin: 10, End: 15}}, m.Row(0))
	require.Equal(t, []Interval{{Begin: 20, End: 25}}, m.Row(1))
}

func TestEmptyMesh(t *testing.T) {
	require.True(t, Empty.IsEmpty())
	require.Equal(t, 0, Empty.RowCount())
	require.Equal(t, uint64(0), Empty.IntervalCount())
}

func TestMeshCloneIsIndependent(t *testing.T) {
	m := New(
		[]RowKey{{Y: 0, Z: 0}},
		[]uint64{0, 1},
		[]Interval{{Begin: 0, End: 5}},
	)
	clone := m.Clone()
	clone.Intervals[0].End = 99
	clone.RowKeys[0].Y = 99

	require.Equal(t, Coord(5), m.Intervals[0].End)
	require.Equal(t, Coord(0), m.RowKeys[0].Y)
}

func TestEmptyMeshCloneIsEmpty(t *testing.T) {
	require.True(t, Empty.Clone().IsEmpty())
}
