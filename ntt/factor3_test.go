package ntt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
	"github.com/Eternal-Night-Archer/apfloat-10yo/storage"
)

func TestFactor3RoundTrip(t *testing.T) {
	const n = 24 // 3 * 8
	f3 := NewFactor3(modmath.Int32Kind, NewTableStrategy(modmath.Int32Kind), 4)

	seed := make([]uint64, n)
	for i := range seed {
		seed[i] = uint64(i*5 + 3)
	}
	c := storage.NewCachedFromSlice(append([]uint64{}, seed...))

	require.NoError(t, f3.Transform(c, 0))
	require.NotEqual(t, seed, c.Slice())

	require.NoError(t, f3.InverseTransform(c, 0, n))
	require.Equal(t, seed, c.Slice())
}

func TestFactor3WrapsSixStep(t *testing.T) {
	const n = 48 // 3 * 16
	f3 := NewFactor3(modmath.Int32Kind, NewSixStepStrategy(modmath.Int32Kind, 4), 4)

	seed := make([]uint64, n)
	for i := range seed {
		seed[i] = uint64(i*7 + 1)
	}
	c := storage.NewCachedFromSlice(append([]uint64{}, seed...))

	require.NoError(t, f3.Transform(c, 0))
	require.NoError(t, f3.InverseTransform(c, 0, n))
	require.Equal(t, seed, c.Slice())
}
