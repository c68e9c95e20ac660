package core

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestAlignedSize(t *testing.T) {
	require.Equal(t, uintptr(64), AlignedSize(1))
	require.Equal(t, uintptr(64), AlignedSize(64))
	require.Equal(t, uintptr(128), AlignedSize(65))
	require.Equal(t, uintptr(0), AlignedSize(0))
}

func TestIsAligned(t *testing.T) {
	require.True(t, IsAligned(0))
	require.True(t, IsAligned(128))
	require.False(t, IsAligned(65))
}

func TestAlignedBytesIsCacheAligned(t *testing.T) {
	for _, size := range []int{0, 1, 63, 64, 1000} {
		buf := AlignedBytes(size)
		require.Len(t, buf, size)
		if size == 0 {
			continue
		}
		addr := uintptr(unsafe.Pointer(&buf[0]))
		require.True(t, IsAligned(addr), "size %d: addr %x not aligned", size, addr)
	}
}

func TestAlignedSliceIsCacheAlignedAndUsable(t *testing.T) {
	require.Nil(t, AlignedSlice[uint64](0))

	ints := AlignedSlice[int](10)
	require.Len(t, ints, 10)
	addr := uintptr(unsafe.Pointer(&ints[0]))
	require.True(t, IsAligned(addr), "addr %x not aligned", addr)

	for i := range ints {
		ints[i] = i * i
	}
	for i, v := range ints {
		require.Equal(t, i*i, v)
	}

	ivs := AlignedSlice[Interval](4)
	require.Len(t, ivs, 4)
	ivs[0] = Interval{Begin: 1, End: 2}
	require.Equal(t, Interval{Begin: 1, End: 2}, ivs[0])
	require.Equal(t, Interval{}, ivs[1])
}
