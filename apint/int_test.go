package apint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Eternal-Night-Archer/apfloat-10yo/ctx"
	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
)

func TestFromBigIntRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 255, 256, -123456789, 987654321} {
		x := FromBigInt(big.NewInt(v), modmath.Int32Kind)
		require.Equal(t, big.NewInt(v), x.BigInt(), "v=%d", v)
	}
}

func TestMultiplyUsesConvolutionEngine(t *testing.T) {
	c := ctx.Default()
	x := FromInt64(123456789, modmath.Int32Kind)
	y := FromInt64(987654321, modmath.Int32Kind)

	got, err := x.Multiply(c, y)
	require.NoError(t, err)
	require.Equal(t, new(big.Int).Mul(x.BigInt(), y.BigInt()), got.BigInt())
}

func TestMultiplyByZero(t *testing.T) {
	c := ctx.Default()
	x := FromInt64(42, modmath.Int32Kind)
	zero := Zero(modmath.Int32Kind)

	got, err := x.Multiply(c, zero)
	require.NoError(t, err)
	require.True(t, got.IsZero())
}

func TestAddSubtract(t *testing.T) {
	x := FromInt64(7000000000, modmath.Int32Kind)
	y := FromInt64(-1234567, modmath.Int32Kind)
	require.Equal(t, big.NewInt(7000000000-1234567), x.Add(y).BigInt())
	require.Equal(t, big.NewInt(7000000000+1234567), x.Subtract(y).BigInt())
}

func TestCompareAndSignum(t *testing.T) {
	a := FromInt64(5, modmath.Int32Kind)
	b := FromInt64(9, modmath.Int32Kind)
	require.Equal(t, -1, a.CompareTo(b))
	require.Equal(t, 1, b.CompareTo(a))
	require.Equal(t, 0, a.CompareTo(a))
	require.Equal(t, 1, a.Signum())
	require.Equal(t, -1, a.Negate().Signum())
	require.Equal(t, 0, Zero(modmath.Int32Kind).Signum())
}

func TestEqualDigits(t *testing.T) {
	radix := modmath.Triple(modmath.Int32Kind).Base
	a := FromBigInt(big.NewInt(int64(radix*radix*3+radix*7+1)), modmath.Int32Kind)
	b := FromBigInt(big.NewInt(int64(radix*radix*3+radix*7+9)), modmath.Int32Kind)
	require.Equal(t, int64(2), a.EqualDigits(b))
}

func TestTruncateKeepsMostSignificantDigits(t *testing.T) {
	x := FromInt64(123456789, modmath.Int32Kind)
	truncated := x.Truncate(1)
	require.LessOrEqual(t, truncated.Precision(), int64(1))
	// 123456789 = 0x075BCD15: the most significant base-256 digit is 7.
	require.Equal(t, big.NewInt(7), truncated.BigInt())
}

func TestEqualStructuralComparison(t *testing.T) {
	a := FromInt64(42, modmath.Int32Kind)
	b := FromInt64(42, modmath.Int32Kind)
	c := FromInt64(43, modmath.Int32Kind)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}
