package ntt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
	"github.com/Eternal-Night-Archer/apfloat-10yo/storage"
)

func TestTwoPassMatchesTable(t *testing.T) {
	const n = 32
	seed := make([]uint64, n)
	for i := range seed {
		seed[i] = uint64(i*13 + 2)
	}

	tab := NewTableStrategy(modmath.Int32Kind)
	cached := storage.NewCachedFromSlice(append([]uint64{}, seed...))
	require.NoError(t, tab.Transform(cached, 0))

	two := NewTwoPassStrategy(modmath.Int32Kind)
	disk, err := storage.NewDisk(n)
	require.NoError(t, err)
	defer disk.Close()
	require.NoError(t, disk.CopyFrom(storage.NewCachedFromSlice(append([]uint64{}, seed...)), n))
	require.NoError(t, two.Transform(disk, 0))

	it, _ := disk.Iterator(storage.Read, 0, n)
	got := make([]uint64, n)
	for i := int64(0); i < n; i++ {
		v, err := it.Get()
		require.NoError(t, err)
		got[i] = v
		it.Next()
	}
	require.Equal(t, cached.Slice(), got)
}

func TestTwoPassRoundTrip(t *testing.T) {
	const n = 16
	seed := make([]uint64, n)
	for i := range seed {
		seed[i] = uint64(i + 1)
	}
	two := NewTwoPassStrategy(modmath.Int32Kind)
	disk, err := storage.NewDisk(n)
	require.NoError(t, err)
	defer disk.Close()
	require.NoError(t, disk.CopyFrom(storage.NewCachedFromSlice(append([]uint64{}, seed...)), n))

	require.NoError(t, two.Transform(disk, 0))
	require.NoError(t, two.InverseTransform(disk, 0, n))

	it, _ := disk.Iterator(storage.Read, 0, n)
	for i := int64(0); i < n; i++ {
		v, err := it.Get()
		require.NoError(t, err)
		require.Equal(t, seed[i], v)
		it.Next()
	}
}
