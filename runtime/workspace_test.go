package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkspaceBuffersGrowAndReset(t *testing.T) {
	ws := NewWorkspace()

	require.NoError(t, ws.ensureMatch(10))
	require.Len(t, ws.matchA, 10)
	require.Len(t, ws.matchB, 10)

	require.NoError(t, ws.ensureRowScan(5))
	require.Len(t, ws.rowCounts, 5)
	require.Len(t, ws.rowOffsets, 6)

	require.NoError(t, ws.ensureIntervalScan(7))
	require.Len(t, ws.intervalCounts, 7)
	require.Len(t, ws.intervalOffsets, 8)

	require.NoError(t, ws.ensureScratch(20))
	require.Len(t, ws.scratch, 20)

	ws.reset()
	require.Len(t, ws.matchA, 0)
	require.Len(t, ws.rowCounts, 0)
	require.Len(t, ws.intervalOffsets, 0)

	// growing again should reuse the existing backing arrays.
	require.NoError(t, ws.ensureMatch(3))
	require.Len(t, ws.matchA, 3)
}

func TestWorkspaceRejectsNegativeSizes(t *testing.T) {
	ws := NewWorkspace()
	require.Error(t, ws.ensureMatch(-1))
	require.Error(t, ws.ensureRowScan(-1))
	require.Error(t, ws.ensureIntervalScan(-1))
	require.Error(t, ws.ensureScratch(-1))
}

func TestWorkspaceSetBackend(t *testing.T) {
	ws := NewWorkspace()
	require.Nil(t, ws.backend)
	ws.SetBackend(SerialBackend{})
	require.Equal(t, SerialBackend{}, ws.resolveBackend(1_000_000))
	ws.SetBackend(nil)
	require.IsType(t, SerialBackend{}, ws.resolveBackend(1))
	require.IsType(t, &PoolBackend{}, ws.resolveBackend(serialThreshold+1))
}
