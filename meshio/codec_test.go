package meshio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbl8/meshx/core"
)

func rk(y, z int32) core.RowKey    { return core.RowKey{Y: y, Z: z} }
func iv(b, e int32) core.Interval { return core.Interval{Begin: b, End: e} }

func sampleMesh() core.Mesh {
	rowKeys := []core.RowKey{rk(0, 0), rk(1, 2), rk(5, -3)}
	rowPtr := []uint64{0, 2, 3, 4}
	intervals := []core.Interval{iv(0, 10), iv(20, 30), iv(-5, 5), iv(100, 110)}
	return core.New(rowKeys, rowPtr, intervals)
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	m := sampleMesh()
	require.NoError(t, core.Validate(m))

	data, err := Serialize(m)
	require.NoError(t, err)

	got, err := Deserialize(data)
	require.NoError(t, err)
	require.Equal(t, m.RowKeys, got.RowKeys)
	require.Equal(t, m.RowPtr, got.RowPtr)
	require.Equal(t, m.Intervals, got.Intervals)
	require.Equal(t, m.N, got.N)
	require.Equal(t, m.E, got.E)
}

func TestSerializeEmptyMesh(t *testing.T) {
	data, err := Serialize(core.Empty)
	require.NoError(t, err)

	got, err := Deserialize(data)
	require.NoError(t, err)
	require.True(t, got.IsEmpty())
}

func TestDeserializeRejectsBadMagic(t *testing.T) {
	data, err := Serialize(sampleMesh())
	require.NoError(t, err)
	data[0] ^= 0xFF

	_, err = Deserialize(data)
	require.Error(t, err)
}

func TestDeserializeRejectsTruncatedData(t *testing.T) {
	data, err := Serialize(sampleMesh())
	require.NoError(t, err)

	_, err = Deserialize(data[:len(data)-4])
	require.Error(t, err)
}

func TestDeserializeRejectsTrailingData(t *testing.T) {
	data, err := Serialize(sampleMesh())
	require.NoError(t, err)
	data = append(data, 0xAA)

	_, err = Deserialize(data)
	require.Error(t, err)
}

func TestSerializeRejectsInvalidMesh(t *testing.T) {
	bad := core.Mesh{
		RowKeys:   []core.RowKey{rk(0, 0)},
		RowPtr:    []uint64{0, 1},
		Intervals: []core.Interval{iv(5, 1)},
		N:         1,
		E:         1,
	}
	_, err := Serialize(bad)
	require.Error(t, err)
}
