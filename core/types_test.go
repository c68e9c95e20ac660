package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntervalLen(t *testing.T) {
	require.Equal(t, int64(10), Interval{Begin: 0, End: 10}.Len())
	require.Equal(t, int64(0), Interval{Begin: 5, End: 5}.Len())
}

func TestIntervalEmpty(t *testing.T) {
	require.True(t, Interval{Begin: 5, End: 5}.Empty())
	require.True(t, Interval{Begin: 5, End: 3}.Empty())
	require.False(t, Interval{Begin: 0, End: 1}.Empty())
}

func TestIntervalOverlaps(t *testing.T) {
	require.True(t, Interval{Begin: 0, End: 10}.Overlaps(Interval{Begin: 5, End: 15}))
	require.False(t, Interval{Begin: 0, End: 5}.Overlaps(Interval{Begin: 5, End: 10}))
	require.False(t, Interval{Begin: 0, End: 5}.Overlaps(Interval{Begin: 10, End: 15}))
}

func TestIntervalTouches(t *testing.T) {
	require.True(t, Interval{Begin: 0, End: 5}.Touches(Interval{Begin: 5, End: 10}))
	require.True(t, Interval{Begin: 5, End: 10}.Touches(Interval{Begin: 0, End: 5}))
	require.False(t, Interval{Begin: 0, End: 5}.Touches(Interval{Begin: 6, End: 10}))
	require.False(t, Interval{Begin: 0, End: 10}.Touches(Interval{Begin: 2, End: 8}))
}

func TestRowKeyLess(t *testing.T) {
	require.True(t, RowKey{Y: 0, Z: 0}.Less(RowKey{Y: 1, Z: 0}))
	require.True(t, RowKey{Y: 0, Z: 0}.Less(RowKey{Y: 0, Z: 1}))
	require.False(t, RowKey{Y: 0, Z: 1}.Less(RowKey{Y: 0, Z: 0}))
	require.False(t, RowKey{Y: 0, Z: 0}.Less(RowKey{Y: 0, Z: 0}))
}

func TestRowKeyCompare(t *testing.T) {
	require.Equal(t, 0, RowKey{Y: 1, Z: 2}.Compare(RowKey{Y: 1, Z: 2}))
	require.Equal(t, -1, RowKey{Y: 1, Z: 2}.Compare(RowKey{Y: 2, Z: 0}))
	require.Equal(t, 1, RowKey{Y: 2, Z: 0}.Compare(RowKey{Y: 1, Z: 2}))
	require.Equal(t, -1, RowKey{Y: 1, Z: 1}.Compare(RowKey{Y: 1, Z: 2}))
	require.Equal(t, 1, RowKey{Y: 1, Z: 2}.Compare(RowKey{Y: 1, Z: 1}))
}
