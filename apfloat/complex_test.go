package apfloat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Eternal-Night-Archer/apfloat-10yo/ctx"
)

func TestComplexAddSubtract(t *testing.T) {
	a := NewComplex(mustParse(t, "1", 50), mustParse(t, "2", 50))
	b := NewComplex(mustParse(t, "3", 50), mustParse(t, "-1", 50))

	sum := a.Add(b)
	require.Equal(t, mustParse(t, "4", 50).BigRat(), sum.Re.BigRat())
	require.Equal(t, mustParse(t, "1", 50).BigRat(), sum.Im.BigRat())

	diff := a.Subtract(b)
	require.Equal(t, mustParse(t, "-2", 50).BigRat(), diff.Re.BigRat())
	require.Equal(t, mustParse(t, "3", 50).BigRat(), diff.Im.BigRat())
}

func TestComplexMultiply(t *testing.T) {
	c := ctx.Default()
	// (2+3i)(4+5i) = 8+10i+12i-15 = -7+22i
	a := NewComplex(mustParse(t, "2", 50), mustParse(t, "3", 50))
	b := NewComplex(mustParse(t, "4", 50), mustParse(t, "5", 50))

	got, err := a.Multiply(c, b)
	require.NoError(t, err)
	require.Equal(t, mustParse(t, "-7", 50).BigRat(), got.Re.BigRat())
	require.Equal(t, mustParse(t, "22", 50).BigRat(), got.Im.BigRat())
}

func TestComplexDivideByConjugate(t *testing.T) {
	c := ctx.Default()
	a := NewComplex(mustParse(t, "-7", 50), mustParse(t, "22", 50))
	b := NewComplex(mustParse(t, "4", 50), mustParse(t, "5", 50))

	got, err := a.Divide(c, b)
	require.NoError(t, err)
	require.Equal(t, mustParse(t, "2", 50).BigRat(), got.Re.BigRat())
	require.Equal(t, mustParse(t, "3", 50).BigRat(), got.Im.BigRat())
}

func TestComplexAbsSquared(t *testing.T) {
	c := ctx.Default()
	z := NewComplex(mustParse(t, "3", 50), mustParse(t, "4", 50))
	got, err := z.AbsSquared(c)
	require.NoError(t, err)
	require.Equal(t, mustParse(t, "25", 50).BigRat(), got.BigRat())
}

func TestComplexRealEmbedding(t *testing.T) {
	z := ComplexReal(mustParse(t, "5", 50))
	require.True(t, z.Im.IsZero())
}
