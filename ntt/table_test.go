package ntt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
	"github.com/Eternal-Night-Archer/apfloat-10yo/storage"
)

func TestTableStrategyRoundTrip(t *testing.T) {
	s := NewTableStrategy(modmath.Int32Kind)
	const n = 16
	c := storage.NewCached(n)
	it, _ := c.Iterator(storage.Write, 0, n)
	for i := int64(0); i < n; i++ {
		require.NoError(t, it.Set(uint64(i+1)))
		it.Next()
	}
	original := append([]uint64{}, c.Slice()...)

	require.NoError(t, s.Transform(c, 0))
	require.NotEqual(t, original, c.Slice())

	require.NoError(t, s.InverseTransform(c, 0, n))
	require.Equal(t, original, c.Slice())
}

func TestTableStrategyConvolutionTheorem(t *testing.T) {
	s := NewTableStrategy(modmath.Int32Kind)
	m := s.moduli[0]
	const n = 8

	a := storage.NewCachedFromSlice([]uint64{1, 2, 3, 4, 0, 0, 0, 0})
	b := storage.NewCachedFromSlice([]uint64{5, 6, 7, 8, 0, 0, 0, 0})

	require.NoError(t, s.Transform(a, 0))
	require.NoError(t, s.Transform(b, 0))

	prod := storage.NewCached(n)
	for i := 0; i < n; i++ {
		it, _ := prod.Iterator(storage.Write, int64(i), n)
		it.Set(m.ModMultiply(a.Slice()[i], b.Slice()[i]))
	}

	require.NoError(t, s.InverseTransform(prod, 0, n))

	// Expected: cyclic convolution of [1,2,3,4,0,0,0,0] and [5,6,7,8,0,0,0,0]
	// computed directly over the integers (no wraparound occurs since the
	// inputs are zero-padded to twice their support).
	want := []uint64{5, 16, 34, 60, 61, 52, 32, 0}
	require.Equal(t, want, prod.Slice())
}

func TestBitReverse(t *testing.T) {
	data := []uint64{0, 1, 2, 3, 4, 5, 6, 7}
	bitReverse(data)
	require.Equal(t, []uint64{0, 4, 2, 6, 1, 5, 3, 7}, data)
}

func TestRound23Up(t *testing.T) {
	cases := map[int64]int64{
		1: 1, 2: 2, 3: 3, 4: 4, 5: 6, 6: 6, 7: 8, 8: 8, 9: 12, 12: 12, 13: 16,
	}
	for in, want := range cases {
		require.Equal(t, want, Round23Up(in), "Round23Up(%d)", in)
	}
}
