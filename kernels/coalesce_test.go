package kernels

import (
	"testing"

	"github.com/sbl8/meshx/core"
	"github.com/stretchr/testify/require"
)

func TestCoalesceRowMergesTouchingRuns(t *testing.T) {
	row := []core.Interval{iv(0, 5), iv(5, 10), iv(20, 25)}
	n := CoalesceRow(row)
	require.Equal(t, 2, n)
	require.Equal(t, iv(0, 10), row[0])
	require.Equal(t, iv(20, 25), row[1])
}

func TestCoalesceRowNoTouching(t *testing.T) {
	row := []core.Interval{iv(0, 5), iv(10, 15)}
	n := CoalesceRow(row)
	require.Equal(t, 2, n)
}

func TestCoalesceRowEmpty(t *testing.T) {
	require.Equal(t, 0, CoalesceRow(nil))
}

func TestCoalesceRowAllTouching(t *testing.T) {
	row := []core.Interval{iv(0, 5), iv(5, 10), iv(10, 15)}
	n := CoalesceRow(row)
	require.Equal(t, 1, n)
	require.Equal(t, iv(0, 15), row[0])
}
