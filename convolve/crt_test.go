package convolve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
	"github.com/Eternal-Night-Archer/apfloat-10yo/storage"
)

func TestCarryCRTReconstructsKnownValue(t *testing.T) {
	primes := modmath.Triple(modmath.Int32Kind)
	base := primes.Base

	values := []uint64{0, 1, 12345, uint64(base - 1), 999999}
	moduli := primes.Moduli()

	r0 := storage.NewCached(int64(len(values)))
	r1 := storage.NewCached(int64(len(values)))
	r2 := storage.NewCached(int64(len(values)))
	for i, v := range values {
		it0, _ := r0.Iterator(storage.Write, int64(i), int64(len(values)))
		it0.Set(moduli[0].ModMultiply(v, 1))
		it1, _ := r1.Iterator(storage.Write, int64(i), int64(len(values)))
		it1.Set(moduli[1].ModMultiply(v, 1))
		it2, _ := r2.Iterator(storage.Write, int64(i), int64(len(values)))
		it2.Set(moduli[2].ModMultiply(v, 1))
	}

	dst := storage.NewCached(int64(len(values)))
	require.NoError(t, CarryCRT(base, primes, r0, r1, r2, int64(len(values)), dst))
	// Residues at or above base carry into the next digit:
	// 12345 = 48*256 + 57, 255 + 48 = 303 = 256 + 47, 999999 + 1 = 1000000 ≡ 64.
	require.Equal(t, []uint64{0, 1, 57, 47, 64}, dst.Slice())
}

func TestCarryCRTPropagatesCarry(t *testing.T) {
	primes := modmath.Triple(modmath.Int32Kind)
	base := primes.Base
	moduli := primes.Moduli()

	// A single position holding base*3+7 should carry into two output
	// digits: [7, 3].
	v := base*3 + 7
	r0 := storage.NewCachedFromSlice([]uint64{moduli[0].ModMultiply(v, 1)})
	r1 := storage.NewCachedFromSlice([]uint64{moduli[1].ModMultiply(v, 1)})
	r2 := storage.NewCachedFromSlice([]uint64{moduli[2].ModMultiply(v, 1)})

	dst := storage.NewCached(2)
	require.NoError(t, CarryCRT(base, primes, r0, r1, r2, 2, dst))
	require.Equal(t, []uint64{7, 3}, dst.Slice())
}

func TestNewCRTCoeffsReconstructsResidues(t *testing.T) {
	primes := modmath.Triple(modmath.Int32Kind)
	c := newCRTCoeffs(primes)

	v := new(big.Int)
	scratch := new(big.Int)
	c.combine(v, scratch, 42, 42, 42)
	require.Equal(t, big.NewInt(42), v)
}
