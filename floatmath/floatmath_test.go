package floatmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Eternal-Night-Archer/apfloat-10yo/apfloat"
	"github.com/Eternal-Night-Archer/apfloat-10yo/ctx"
	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
)

func parse(t *testing.T, s string, precision int64) *apfloat.Float {
	t.Helper()
	f, err := apfloat.NewFromString(s, precision, modmath.Int32Kind)
	require.NoError(t, err)
	return f
}

func TestSqrtKnownValue(t *testing.T) {
	c := ctx.Default()
	x := parse(t, "2", 30)
	got, err := Sqrt(c, x, 30)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt2, got.Float64(), 1e-9)
}

func TestInverseRootOfZeroIsDomainError(t *testing.T) {
	c := ctx.Default()
	_, err := InverseRoot(c, apfloat.ComplexZero(modmath.Int32Kind), 2, 30)
	require.Error(t, err)
}

func TestInverseRootZerothIndexIsDomainError(t *testing.T) {
	c := ctx.Default()
	z := apfloat.ComplexReal(parse(t, "4", 30))
	_, err := InverseRoot(c, z, 0, 30)
	require.Error(t, err)
}

func TestAGMSymmetric(t *testing.T) {
	c := ctx.Default()
	a := parse(t, "1", 30)
	b := parse(t, "2", 30)
	ab, err := AGM(c, a, b, 30)
	require.NoError(t, err)
	ba, err := AGM(c, b, a, 30)
	require.NoError(t, err)
	require.InDelta(t, ab.Float64(), ba.Float64(), 1e-9)
}

func TestAGMOfEqualOperandsIsIdentity(t *testing.T) {
	c := ctx.Default()
	a := parse(t, "5", 30)
	got, err := AGM(c, a, a, 30)
	require.NoError(t, err)
	require.InDelta(t, 5.0, got.Float64(), 1e-9)
}

func TestPiBrentSalaminKnownValue(t *testing.T) {
	c := ctx.Default()
	pi, err := piBrentSalamin(c, modmath.Int32Kind, 30)
	require.NoError(t, err)
	require.InDelta(t, math.Pi, pi.Float64(), 1e-9)
}

func TestLogRealKnownValue(t *testing.T) {
	c := ctx.Default()
	x := parse(t, "2.71828182845904523536", 30)
	got, err := LogReal(c, x, 30)
	require.NoError(t, err)
	require.InDelta(t, 1.0, got.Float64(), 1e-8)
}

func TestLogRealOfNegativeIsDomainError(t *testing.T) {
	c := ctx.Default()
	x := parse(t, "-1", 30)
	_, err := LogReal(c, x, 30)
	require.Error(t, err)
}

func TestLogRealOfZeroIsDomainError(t *testing.T) {
	c := ctx.Default()
	_, err := LogReal(c, apfloat.Zero(modmath.Int32Kind), 30)
	require.Error(t, err)
}

func TestExpKnownValue(t *testing.T) {
	c := ctx.Default()
	z := apfloat.ComplexReal(parse(t, "1", 30))
	got, err := Exp(c, z, 30)
	require.NoError(t, err)
	require.InDelta(t, math.E, got.Re.Float64(), 1e-8)
	require.InDelta(t, 0.0, got.Im.Float64(), 1e-8)
}

func TestExpOfZeroIsOne(t *testing.T) {
	c := ctx.Default()
	got, err := Exp(c, apfloat.ComplexZero(modmath.Int32Kind), 30)
	require.NoError(t, err)
	require.InDelta(t, 1.0, got.Re.Float64(), 1e-12)
	require.InDelta(t, 0.0, got.Im.Float64(), 1e-12)
}

func TestLogExpRoundTrip(t *testing.T) {
	c := ctx.Default()
	x := parse(t, "1.5", 50)
	z := apfloat.ComplexReal(x)

	expZ, err := Exp(c, z, 50)
	require.NoError(t, err)
	back, err := Log(c, expZ, 50)
	require.NoError(t, err)
	require.InDelta(t, 1.5, back.Re.Float64(), 1e-8)
	require.InDelta(t, 0.0, back.Im.Float64(), 1e-8)
}

func TestLogOfNegativeRealUsesBranchBias(t *testing.T) {
	c := ctx.Default()
	z := apfloat.ComplexReal(parse(t, "-1", 30))
	got, err := Log(c, z, 30)
	require.NoError(t, err)
	require.InDelta(t, 0.0, got.Re.Float64(), 1e-8)
	require.InDelta(t, math.Pi, got.Im.Float64(), 1e-8)
}

func TestPowKnownValue(t *testing.T) {
	c := ctx.Default()
	base := apfloat.ComplexReal(parse(t, "2", 30))
	exponent := apfloat.ComplexReal(parse(t, "10", 30))
	got, err := Pow(c, base, exponent, 30)
	require.NoError(t, err)
	require.InDelta(t, 1024.0, got.Re.Float64(), 1e-6)
}

func TestCosSinPythagoreanIdentity(t *testing.T) {
	c := ctx.Default()
	z := apfloat.ComplexReal(parse(t, "0.7", 30))
	s, err := Sin(c, z, 30)
	require.NoError(t, err)
	cs, err := Cos(c, z, 30)
	require.NoError(t, err)
	require.InDelta(t, math.Sin(0.7), s.Re.Float64(), 1e-8)
	require.InDelta(t, math.Cos(0.7), cs.Re.Float64(), 1e-8)
}

func TestTanMatchesSinOverCos(t *testing.T) {
	c := ctx.Default()
	z := apfloat.ComplexReal(parse(t, "0.4", 30))
	got, err := Tan(c, z, 30)
	require.NoError(t, err)
	require.InDelta(t, math.Tan(0.4), got.Re.Float64(), 1e-7)
}

func TestCoshSinhIdentity(t *testing.T) {
	c := ctx.Default()
	z := apfloat.ComplexReal(parse(t, "0.5", 30))
	ch, err := Cosh(c, z, 30)
	require.NoError(t, err)
	sh, err := Sinh(c, z, 30)
	require.NoError(t, err)
	require.InDelta(t, math.Cosh(0.5), ch.Re.Float64(), 1e-8)
	require.InDelta(t, math.Sinh(0.5), sh.Re.Float64(), 1e-8)
}

func TestAsinInvertsSin(t *testing.T) {
	c := ctx.Default()
	z := apfloat.ComplexReal(parse(t, "0.3", 30))
	s, err := Sin(c, z, 30)
	require.NoError(t, err)
	back, err := Asin(c, s, 30)
	require.NoError(t, err)
	require.InDelta(t, 0.3, back.Re.Float64(), 1e-7)
}

func TestAtanKnownValue(t *testing.T) {
	c := ctx.Default()
	z := apfloat.ComplexReal(parse(t, "1", 30))
	got, err := Atan(c, z, 30)
	require.NoError(t, err)
	require.InDelta(t, math.Pi/4, got.Re.Float64(), 1e-7)
}

func TestAtanhInvertsTanh(t *testing.T) {
	c := ctx.Default()
	z := apfloat.ComplexReal(parse(t, "0.6", 30))
	th, err := Tanh(c, z, 30)
	require.NoError(t, err)
	back, err := Atanh(c, th, 30)
	require.NoError(t, err)
	require.InDelta(t, 0.6, back.Re.Float64(), 1e-7)
}

func TestAcoshInvertsCosh(t *testing.T) {
	c := ctx.Default()
	z := apfloat.ComplexReal(parse(t, "1.2", 30))
	ch, err := Cosh(c, z, 30)
	require.NoError(t, err)
	back, err := Acosh(c, ch, 30)
	require.NoError(t, err)
	require.InDelta(t, 1.2, back.Re.Float64(), 1e-7)
}

func TestDoublingScheduleEndsAtTargetTwice(t *testing.T) {
	sched := doublingSchedule(15, 100)
	require.GreaterOrEqual(t, len(sched), 2)
	require.Equal(t, int64(100), sched[len(sched)-1])
	require.Equal(t, int64(100), sched[len(sched)-2])
	require.Equal(t, []int64{30, 60, 100, 100}, sched)
}

func TestComplexPowUintKnownValue(t *testing.T) {
	c := ctx.Default()
	z := apfloat.ComplexReal(parse(t, "3", 30))
	got, err := complexPowUint(c, z, 4)
	require.NoError(t, err)
	require.InDelta(t, 81.0, got.Re.Float64(), 1e-9)
}
