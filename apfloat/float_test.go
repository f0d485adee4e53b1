package apfloat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Eternal-Night-Archer/apfloat-10yo/ctx"
	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
)

func mustParse(t *testing.T, s string, precision int64) *Float {
	t.Helper()
	f, err := NewFromString(s, precision, modmath.Int32Kind)
	require.NoError(t, err)
	return f
}

func TestParseDecimalRoundTrip(t *testing.T) {
	cases := []struct {
		lit   string
		scale int64
	}{
		{"1.5", 0},
		{"0.0015", -3},
		{"123.456", 2},
		{"-42", 1},
		{"1.23e-5", -5},
		{"1.23e10", 10},
	}
	for _, c := range cases {
		f := mustParse(t, c.lit, 50)
		require.Equal(t, c.scale, f.Scale(), "literal=%s", c.lit)
	}
}

func TestZeroLiteral(t *testing.T) {
	f := mustParse(t, "0.000", 50)
	require.True(t, f.IsZero())
}

func TestAddKnownValue(t *testing.T) {
	x := mustParse(t, "1.5", 50)
	y := mustParse(t, "2.25", 50)
	got := x.Add(y)
	require.Equal(t, mustParse(t, "3.75", 50).BigRat(), got.BigRat())
}

func TestSubtractProducesLeadingZeroCancellation(t *testing.T) {
	x := mustParse(t, "1.0", 50)
	y := mustParse(t, "0.9999", 50)
	got := x.Subtract(y)
	require.Equal(t, mustParse(t, "0.0001", 50).BigRat(), got.BigRat())
}

func TestMultiplyUsesApintConvolution(t *testing.T) {
	c := ctx.Default()
	x := mustParse(t, "1.5", 50)
	y := mustParse(t, "2.5", 50)
	got, err := x.Multiply(c, y)
	require.NoError(t, err)
	require.Equal(t, mustParse(t, "3.75", 50).BigRat(), got.BigRat())
}

func TestDivideExactQuotient(t *testing.T) {
	x := mustParse(t, "10", 50)
	y := mustParse(t, "4", 50)
	got, err := x.Divide(y)
	require.NoError(t, err)
	require.Equal(t, mustParse(t, "2.5", 50).BigRat(), got.BigRat())
}

func TestDivideByZero(t *testing.T) {
	x := mustParse(t, "10", 50)
	_, err := x.Divide(Zero(modmath.Int32Kind))
	require.Error(t, err)
}

func TestModKnownValue(t *testing.T) {
	c := ctx.Default()
	x := mustParse(t, "10", 50)
	y := mustParse(t, "3", 50)
	got, err := x.Mod(c, y)
	require.NoError(t, err)
	require.Equal(t, mustParse(t, "1", 50).BigRat(), got.BigRat())
}

func TestCompareTo(t *testing.T) {
	a := mustParse(t, "1.5", 50)
	b := mustParse(t, "2.5", 50)
	require.Equal(t, -1, a.CompareTo(b))
	require.Equal(t, 1, b.CompareTo(a))
	require.Equal(t, 0, a.CompareTo(a))
}

func TestEqualDigits(t *testing.T) {
	a := mustParse(t, "3.14159", 50)
	b := mustParse(t, "3.14160", 50)
	require.Equal(t, int64(4), a.EqualDigits(b))
}

func TestTruncateKeepsMostSignificantDigits(t *testing.T) {
	x := mustParse(t, "3.14159", 50)
	got := x.Truncate(3)
	require.LessOrEqual(t, got.Precision(), int64(3))
	require.Equal(t, 0, mustParse(t, "3.14", 50).BigRat().Cmp(got.BigRat()))
}

func TestPrecisionCapsStoredDigits(t *testing.T) {
	f := mustParse(t, "1.23456789", 4)
	require.LessOrEqual(t, int64(len(f.digits)), int64(4))
}

func TestFloat64Approximation(t *testing.T) {
	f := mustParse(t, "1.5", 50)
	require.InDelta(t, 1.5, f.Float64(), 1e-9)
}
