package kernels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDriveOnB(t *testing.T) {
	require.False(t, DriveOnB(10, 20))
	require.True(t, DriveOnB(20, 10))
	require.False(t, DriveOnB(10, 10))
}
