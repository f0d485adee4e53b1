// Package floatmath implements L8 of the arithmetic kernel: the
// transcendental layer built on top of apfloat's digit-sequence real and
// complex types, per spec.md §4.7. Every transcendental reduces to two
// primitives, `InverseRoot`/`Exp` and `Log`, exactly as the original
// apfloat design does — the trig and hyperbolic set supplemented here
// (spec.md §11) are all thin reductions to those two.
package floatmath

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/Eternal-Night-Archer/apfloat-10yo/aerr"
	"github.com/Eternal-Night-Archer/apfloat-10yo/apfloat"
	"github.com/Eternal-Night-Archer/apfloat-10yo/ctx"
	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
)

// seedBits is the big.Float working precision used only to seed Newton
// iterations for operands whose magnitude overflows float64 — the
// boundary case spec.md §8 names explicitly ("operands with scale
// differences larger than a double can represent"). ALTree/bigfloat's
// Pow/Exp/Log operate on such a big.Float directly, sidestepping the
// float64 overflow a naive seed would hit.
const seedBits = 200

// EXTRA_PRECISION-equivalent guard digits added to a working precision
// before an internal computation, mirroring the apfloat original's
// fixed guard-digit constant named throughout spec.md §4.6-§4.7.
const extraPrecision = 8

func one(kind modmath.ElementKind) *apfloat.Complex { return apfloat.ComplexReal(apfloat.One(kind)) }
func two(kind modmath.ElementKind) *apfloat.Float   { return apfloat.NewFromInt64(2, kind) }
func imagUnit(kind modmath.ElementKind) *apfloat.Complex {
	return apfloat.NewComplex(apfloat.Zero(kind), apfloat.One(kind))
}

// complexPowUint raises z to the non-negative integer power n via
// square-and-multiply, the same structure intmath.powUint64 uses for
// apint.Int.
func complexPowUint(c *ctx.Context, z *apfloat.Complex, n uint64) (*apfloat.Complex, error) {
	result := one(z.Kind())
	base := z
	var err error
	for n > 0 {
		if n&1 == 1 {
			if result, err = result.Multiply(c, base); err != nil {
				return nil, err
			}
		}
		n >>= 1
		if n > 0 {
			if base, err = base.Multiply(c, base); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// doublingSchedule returns the sequence of working precisions a
// Newton iteration should run at: starting from seed, doubling each
// round until target is reached, per spec.md §4.7's "precision doubles
// every iteration" with a final repeated "precising" pass at target.
func doublingSchedule(seed, target int64) []int64 {
	if seed < 1 {
		seed = 1
	}
	var sched []int64
	p := seed
	for p*2 < target {
		p *= 2
		sched = append(sched, p)
	}
	sched = append(sched, target, target)
	return sched
}

// seedInverseRoot computes a double-precision-ish seed for z^(-1/n),
// using ALTree/bigfloat on an intermediate big.Float so the magnitude
// component never overflows float64 even when z's exact value does; the
// angle component is computed from the exact ratio Im/Re, which stays
// representable in float64 range even when the individual components
// don't.
func seedInverseRoot(z *apfloat.Complex, n int64) (re, im float64) {
	reRat, imRat := z.Re.BigRat(), z.Im.BigRat()
	magSq := new(big.Float).SetPrec(seedBits)
	reF := new(big.Float).SetPrec(seedBits).SetRat(reRat)
	imF := new(big.Float).SetPrec(seedBits).SetRat(imRat)
	magSq.Add(new(big.Float).Mul(reF, reF), new(big.Float).Mul(imF, imF))
	mag := new(big.Float).SetPrec(seedBits).Sqrt(magSq)

	exponent := new(big.Float).SetPrec(seedBits).SetFloat64(-1 / float64(n))
	magSeed := bigfloat.Pow(mag, exponent)
	magSeedF, _ := magSeed.Float64()

	var angle float64
	switch reRat.Sign() {
	case 0:
		if imRat.Sign() > 0 {
			angle = math.Pi / 2
		} else if imRat.Sign() < 0 {
			angle = -math.Pi / 2
		}
	default:
		ratio, _ := new(big.Rat).Quo(imRat, reRat).Float64()
		angle = math.Atan2(ratio, 1)
		if reRat.Sign() < 0 {
			if imRat.Sign() >= 0 {
				angle += math.Pi
			} else {
				angle -= math.Pi
			}
		}
	}
	angle = -angle / float64(n)
	return magSeedF * math.Cos(angle), magSeedF * math.Sin(angle)
}

// InverseRoot returns z^(-1/n) to precision significant digits, via
// Newton's method on f(r) = 1 - z*r^n, update r <- r + r*(1-z*r^n)/n
// (spec.md §4.7), seeded from a double-precision angle/magnitude guess
// and refined at a doubling precision schedule.
func InverseRoot(c *ctx.Context, z *apfloat.Complex, n int64, precision int64) (*apfloat.Complex, error) {
	if n == 0 {
		return nil, aerr.Domain("floatmath.InverseRoot", "zeroth inverse root")
	}
	if n < 0 {
		return nil, aerr.Domain("floatmath.InverseRoot", "negative root index")
	}
	if z.IsZero() {
		return nil, aerr.Domain("floatmath.InverseRoot", "inverse root of zero")
	}
	kind := z.Kind()
	seedRe, seedIm := seedInverseRoot(z, n)
	seedReFloat, err := apfloat.NewFromString(formatSeed(seedRe), 15, kind)
	if err != nil {
		return nil, err
	}
	seedImFloat, err := apfloat.NewFromString(formatSeed(seedIm), 15, kind)
	if err != nil {
		return nil, err
	}
	r := apfloat.NewComplex(seedReFloat, seedImFloat)

	nFloat := apfloat.NewFromInt64(n, kind)
	nInv, err := apfloat.One(kind).Divide(nFloat)
	if err != nil {
		return nil, err
	}

	for _, p := range doublingSchedule(15, precision+extraPrecision) {
		work := r.WithPrecision(p)
		zw := z.WithPrecision(p)
		rn, err := complexPowUint(c, work, uint64(n))
		if err != nil {
			return nil, err
		}
		zrn, err := zw.Multiply(c, rn)
		if err != nil {
			return nil, err
		}
		residual := one(kind).Subtract(zrn)
		step, err := work.Multiply(c, residual)
		if err != nil {
			return nil, err
		}
		stepRe, stepErr := step.Re.Multiply(c, nInv)
		if stepErr != nil {
			return nil, stepErr
		}
		stepIm, stepErr := step.Im.Multiply(c, nInv)
		if stepErr != nil {
			return nil, stepErr
		}
		r = work.Add(apfloat.NewComplex(stepRe, stepIm))
	}
	return r.WithPrecision(precision), nil
}

func formatSeed(v float64) string {
	if v == 0 {
		return "0"
	}
	return big.NewFloat(v).Text('e', 17)
}

// InverseRootReal is the real specialization of InverseRoot.
func InverseRootReal(c *ctx.Context, x *apfloat.Float, n int64, precision int64) (*apfloat.Float, error) {
	z, err := InverseRoot(c, apfloat.ComplexReal(x), n, precision)
	if err != nil {
		return nil, err
	}
	return z.Re, nil
}

// Sqrt returns sqrt(x) = x * x^(-1/2).
func Sqrt(c *ctx.Context, x *apfloat.Float, precision int64) (*apfloat.Float, error) {
	inv, err := InverseRootReal(c, x, 2, precision)
	if err != nil {
		return nil, err
	}
	return x.Multiply(c, inv)
}

// AGM iterates (a,b) <- ((a+b)/2, sqrt(a*b)) until a and b agree to
// precision/2 significant digits (spec.md §4.7), converging
// quadratically.
func AGM(c *ctx.Context, a, b *apfloat.Float, precision int64) (*apfloat.Float, error) {
	kind := a.Kind()
	target := precision / 2
	if target < 1 {
		target = 1
	}
	a, b = a.WithPrecision(precision), b.WithPrecision(precision)
	for a.EqualDigits(b) < target && a.CompareTo(b) != 0 {
		sum := a.Add(b)
		half, err := sum.Divide(two(kind))
		if err != nil {
			return nil, err
		}
		prod, err := a.Multiply(c, b)
		if err != nil {
			return nil, err
		}
		root, err := Sqrt(c, prod, precision)
		if err != nil {
			return nil, err
		}
		a, b = half.WithPrecision(precision), root.WithPrecision(precision)
	}
	return a, nil
}

// piBrentSalamin computes pi to precision significant digits via the
// Gauss-Legendre/Brent-Salamin algorithm, reusing this package's own
// Sqrt — the same AGM machinery Log's Gauss/Borwein identity depends on,
// rather than a hard-coded constant.
func piBrentSalamin(c *ctx.Context, kind modmath.ElementKind, precision int64) (*apfloat.Float, error) {
	p := precision + extraPrecision
	a := apfloat.One(kind).WithPrecision(p)
	half, err := apfloat.One(kind).Divide(two(kind))
	if err != nil {
		return nil, err
	}
	b, err := Sqrt(c, half, p)
	if err != nil {
		return nil, err
	}
	t := apfloat.NewFromInt64(1, kind)
	t, err = t.Divide(apfloat.NewFromInt64(4, kind))
	if err != nil {
		return nil, err
	}
	pw := apfloat.One(kind)

	iterations := 0
	for iterations < 64 {
		if a.EqualDigits(b) >= p-extraPrecision {
			break
		}
		sum := a.Add(b)
		nextA, err := sum.Divide(two(kind))
		if err != nil {
			return nil, err
		}
		prod, err := a.Multiply(c, b)
		if err != nil {
			return nil, err
		}
		nextB, err := Sqrt(c, prod, p)
		if err != nil {
			return nil, err
		}
		diff := a.Subtract(nextA)
		diffSq, err := diff.Multiply(c, diff)
		if err != nil {
			return nil, err
		}
		weighted, err := diffSq.Multiply(c, pw)
		if err != nil {
			return nil, err
		}
		t = t.Subtract(weighted)
		pw = pw.Add(pw)
		a, b = nextA.WithPrecision(p), nextB.WithPrecision(p)
		iterations++
	}

	sum := a.Add(b)
	numerator, err := sum.Multiply(c, sum)
	if err != nil {
		return nil, err
	}
	denom := t.Add(t).Add(t).Add(t)
	pi, err := numerator.Divide(denom)
	if err != nil {
		return nil, err
	}
	return pi.WithPrecision(precision), nil
}

// complexSqrt returns sqrt(z) = z * z^(-1/2) for complex z.
func complexSqrt(c *ctx.Context, z *apfloat.Complex, precision int64) (*apfloat.Complex, error) {
	inv, err := InverseRoot(c, z, 2, precision)
	if err != nil {
		return nil, err
	}
	return z.Multiply(c, inv)
}

// agmComplex generalizes AGM to complex operands via complexSqrt,
// the form Log's Gauss/Borwein identity needs for genuinely complex
// arguments.
func agmComplex(c *ctx.Context, a, b *apfloat.Complex, precision int64) (*apfloat.Complex, error) {
	target := precision / 2
	if target < 1 {
		target = 1
	}
	a, b = a.WithPrecision(precision), b.WithPrecision(precision)
	for (a.Re.EqualDigits(b.Re) < target && a.Re.CompareTo(b.Re) != 0) ||
		(a.Im.EqualDigits(b.Im) < target && a.Im.CompareTo(b.Im) != 0) {
		sum := a.Add(b)
		halfRe, err := sum.Re.Divide(two(a.Kind()))
		if err != nil {
			return nil, err
		}
		halfIm, err := sum.Im.Divide(two(a.Kind()))
		if err != nil {
			return nil, err
		}
		prod, err := a.Multiply(c, b)
		if err != nil {
			return nil, err
		}
		root, err := complexSqrt(c, prod, precision)
		if err != nil {
			return nil, err
		}
		a = apfloat.NewComplex(halfRe, halfIm).WithPrecision(precision)
		b = root.WithPrecision(precision)
	}
	return a, nil
}

// lnRadix returns ln(10) to precision significant digits, bootstrapped
// from Pi (computed independently via piBrentSalamin) rather than from
// Log itself: log(10^(m+1)) = (m+1)*ln(10) = pi / (2*AGM(1, 4/10^(m+1)))
// solves directly for ln(10) with no circularity, the same bootstrap
// Brent's original AGM-log algorithm uses for ln(2).
func lnRadix(c *ctx.Context, kind modmath.ElementKind, precision int64) (*apfloat.Float, error) {
	p := precision + extraPrecision
	m := p/2 + extraPrecision

	s, err := apfloat.NewFromString(scaledLiteral(m+1), p, kind)
	if err != nil {
		return nil, err
	}
	four := apfloat.NewFromInt64(4, kind)
	fourOverS, err := four.Divide(s)
	if err != nil {
		return nil, err
	}
	agmVal, err := AGM(c, apfloat.One(kind), fourOverS, p)
	if err != nil {
		return nil, err
	}
	pi, err := piBrentSalamin(c, kind, p)
	if err != nil {
		return nil, err
	}
	denom, err := agmVal.Multiply(c, two(kind))
	if err != nil {
		return nil, err
	}
	denom, err = denom.Multiply(c, apfloat.NewFromInt64(m+1, kind))
	if err != nil {
		return nil, err
	}
	ln, err := pi.Divide(denom)
	if err != nil {
		return nil, err
	}
	return ln.WithPrecision(precision), nil
}

func scaledLiteral(exp int64) string {
	return "1e" + itoa(exp)
}

func itoa(v int64) string {
	return big.NewInt(v).String()
}

// LogReal returns ln(x) for x > 0, via the Gauss/Borwein AGM identity
// ln(x) ~= pi / (2*AGM(1, 4/s)) - N*ln(10), s = x*10^N chosen large
// enough for AGM to converge quickly (spec.md §4.7).
func LogReal(c *ctx.Context, x *apfloat.Float, precision int64) (*apfloat.Float, error) {
	if x.IsZero() {
		return nil, aerr.Domain("floatmath.LogReal", "log of zero")
	}
	if x.Signum() < 0 {
		return nil, aerr.Domain("floatmath.LogReal", "log of a negative real")
	}
	kind := x.Kind()
	p := precision + extraPrecision
	target := p/2 + extraPrecision
	n := target - x.Scale()
	if n < 0 {
		n = 0
	}
	s := x
	if n != 0 {
		shift, err := apfloat.NewFromString(scaledLiteral(n), p, kind)
		if err != nil {
			return nil, err
		}
		s, err = x.Multiply(c, shift)
		if err != nil {
			return nil, err
		}
	}
	four := apfloat.NewFromInt64(4, kind)
	fourOverS, err := four.Divide(s)
	if err != nil {
		return nil, err
	}
	agmVal, err := AGM(c, apfloat.One(kind), fourOverS, p)
	if err != nil {
		return nil, err
	}
	pi, err := piBrentSalamin(c, kind, p)
	if err != nil {
		return nil, err
	}
	twoAgm, err := agmVal.Multiply(c, two(kind))
	if err != nil {
		return nil, err
	}
	term1, err := pi.Divide(twoAgm)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return term1.WithPrecision(precision), nil
	}
	ln10, err := lnRadix(c, kind, p)
	if err != nil {
		return nil, err
	}
	term2, err := ln10.Multiply(c, apfloat.NewFromInt64(n, kind))
	if err != nil {
		return nil, err
	}
	return term1.Subtract(term2).WithPrecision(precision), nil
}

// Log returns the principal branch of ln(z) for complex z, via the
// complex form of the same AGM identity LogReal uses. For Re z < 0 the
// argument is reflected through the origin first and a +-i*pi bias
// added back, the branch-cut avoidance spec.md §4.7 calls for.
func Log(c *ctx.Context, z *apfloat.Complex, precision int64) (*apfloat.Complex, error) {
	if z.IsZero() {
		return nil, aerr.Domain("floatmath.Log", "log of zero")
	}
	kind := z.Kind()
	if z.Im.IsZero() && z.Re.Signum() > 0 {
		re, err := LogReal(c, z.Re, precision)
		if err != nil {
			return nil, err
		}
		return apfloat.ComplexReal(re), nil
	}
	if z.Re.Signum() < 0 {
		reflected := z.Negate()
		inner, err := Log(c, reflected, precision)
		if err != nil {
			return nil, err
		}
		p := precision + extraPrecision
		pi, err := piBrentSalamin(c, kind, p)
		if err != nil {
			return nil, err
		}
		if z.Im.Signum() >= 0 {
			return apfloat.NewComplex(inner.Re, inner.Im.Add(pi)), nil
		}
		return apfloat.NewComplex(inner.Re, inner.Im.Subtract(pi)), nil
	}

	p := precision + extraPrecision
	magSq, err := z.AbsSquared(c)
	if err != nil {
		return nil, err
	}
	modulus, err := Sqrt(c, magSq, p)
	if err != nil {
		return nil, err
	}
	target := p/2 + extraPrecision
	n := target - modulus.Scale()
	if n < 0 {
		n = 0
	}
	s := z
	if n != 0 {
		shift, err := apfloat.NewFromString(scaledLiteral(n), p, kind)
		if err != nil {
			return nil, err
		}
		sRe, err := z.Re.Multiply(c, shift)
		if err != nil {
			return nil, err
		}
		sIm, err := z.Im.Multiply(c, shift)
		if err != nil {
			return nil, err
		}
		s = apfloat.NewComplex(sRe, sIm)
	}
	four := apfloat.NewFromInt64(4, kind)
	fourOverS, err := apfloat.ComplexReal(four).Divide(c, s)
	if err != nil {
		return nil, err
	}
	agmVal, err := agmComplex(c, one(kind), fourOverS, p)
	if err != nil {
		return nil, err
	}
	pi, err := piBrentSalamin(c, kind, p)
	if err != nil {
		return nil, err
	}
	twoAgmRe, err := agmVal.Re.Multiply(c, two(kind))
	if err != nil {
		return nil, err
	}
	twoAgmIm, err := agmVal.Im.Multiply(c, two(kind))
	if err != nil {
		return nil, err
	}
	term1, err := apfloat.ComplexReal(pi).Divide(c, apfloat.NewComplex(twoAgmRe, twoAgmIm))
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return term1.WithPrecision(precision), nil
	}
	ln10, err := lnRadix(c, kind, p)
	if err != nil {
		return nil, err
	}
	term2, err := ln10.Multiply(c, apfloat.NewFromInt64(n, kind))
	if err != nil {
		return nil, err
	}
	return apfloat.NewComplex(term1.Re.Subtract(term2), term1.Im).WithPrecision(precision), nil
}

// Exp returns e^z via Newton iteration on w -> Log(w) = z, update
// w <- w*(1+z-Log(w)) (spec.md §4.7), seeded from double/bigfloat
// cos/sin/exp on the real and imaginary parts.
func Exp(c *ctx.Context, z *apfloat.Complex, precision int64) (*apfloat.Complex, error) {
	kind := z.Kind()
	if z.IsZero() {
		return one(kind).WithPrecision(precision), nil
	}

	a := z.Re.Float64()
	b := z.Im.Float64()
	var expA float64
	if math.Abs(a) < 700 {
		expA = math.Exp(a)
	} else {
		bf := bigfloat.Exp(new(big.Float).SetPrec(seedBits).SetFloat64(a))
		expA, _ = bf.Float64()
		if math.IsInf(expA, 0) {
			return nil, aerr.Overflowf("floatmath.Exp", "operand too large to represent")
		}
	}
	seedRe := expA * math.Cos(b)
	seedIm := expA * math.Sin(b)
	seedReFloat, err := apfloat.NewFromString(formatSeed(seedRe), 15, kind)
	if err != nil {
		return nil, err
	}
	seedImFloat, err := apfloat.NewFromString(formatSeed(seedIm), 15, kind)
	if err != nil {
		return nil, err
	}
	w := apfloat.NewComplex(seedReFloat, seedImFloat)

	for _, p := range doublingSchedule(15, precision+extraPrecision) {
		work := w.WithPrecision(p)
		zw := z.WithPrecision(p)
		logW, err := Log(c, work, p)
		if err != nil {
			return nil, err
		}
		residual := one(kind).Add(zw).Subtract(logW)
		w, err = work.Multiply(c, residual)
		if err != nil {
			return nil, err
		}
	}
	return w.WithPrecision(precision), nil
}

// Pow returns z^w = exp(w*log(z)) (spec.md §4.7).
func Pow(c *ctx.Context, z, w *apfloat.Complex, precision int64) (*apfloat.Complex, error) {
	logZ, err := Log(c, z, precision+extraPrecision)
	if err != nil {
		return nil, err
	}
	exponent, err := w.Multiply(c, logZ)
	if err != nil {
		return nil, err
	}
	return Exp(c, exponent, precision)
}

func divideByTwo(c *ctx.Context, z *apfloat.Complex) (*apfloat.Complex, error) {
	re, err := z.Re.Divide(two(z.Kind()))
	if err != nil {
		return nil, err
	}
	im, err := z.Im.Divide(two(z.Kind()))
	if err != nil {
		return nil, err
	}
	return apfloat.NewComplex(re, im), nil
}

// Sin, Cos, Tan reduce to Exp via cos z = (e^{iz}+e^{-iz})/2,
// sin z = (e^{iz}-e^{-iz})/(2i), the identities spec.md §4.7 names.
func Cos(c *ctx.Context, z *apfloat.Complex, precision int64) (*apfloat.Complex, error) {
	i := imagUnit(z.Kind())
	iz, err := i.Multiply(c, z)
	if err != nil {
		return nil, err
	}
	ePos, err := Exp(c, iz, precision)
	if err != nil {
		return nil, err
	}
	eNeg, err := Exp(c, iz.Negate(), precision)
	if err != nil {
		return nil, err
	}
	return divideByTwo(c, ePos.Add(eNeg))
}

func Sin(c *ctx.Context, z *apfloat.Complex, precision int64) (*apfloat.Complex, error) {
	i := imagUnit(z.Kind())
	iz, err := i.Multiply(c, z)
	if err != nil {
		return nil, err
	}
	ePos, err := Exp(c, iz, precision)
	if err != nil {
		return nil, err
	}
	eNeg, err := Exp(c, iz.Negate(), precision)
	if err != nil {
		return nil, err
	}
	diff := ePos.Subtract(eNeg)
	twoI, err := i.Multiply(c, apfloat.ComplexReal(two(z.Kind())))
	if err != nil {
		return nil, err
	}
	return diff.Divide(c, twoI)
}

func Tan(c *ctx.Context, z *apfloat.Complex, precision int64) (*apfloat.Complex, error) {
	s, err := Sin(c, z, precision)
	if err != nil {
		return nil, err
	}
	cs, err := Cos(c, z, precision)
	if err != nil {
		return nil, err
	}
	if cs.IsZero() {
		return nil, aerr.Domain("floatmath.Tan", "cos(z) is zero")
	}
	return s.Divide(c, cs)
}

// Sinh, Cosh, Tanh reduce to Exp directly.
func Cosh(c *ctx.Context, z *apfloat.Complex, precision int64) (*apfloat.Complex, error) {
	ePos, err := Exp(c, z, precision)
	if err != nil {
		return nil, err
	}
	eNeg, err := Exp(c, z.Negate(), precision)
	if err != nil {
		return nil, err
	}
	return divideByTwo(c, ePos.Add(eNeg))
}

func Sinh(c *ctx.Context, z *apfloat.Complex, precision int64) (*apfloat.Complex, error) {
	ePos, err := Exp(c, z, precision)
	if err != nil {
		return nil, err
	}
	eNeg, err := Exp(c, z.Negate(), precision)
	if err != nil {
		return nil, err
	}
	return divideByTwo(c, ePos.Subtract(eNeg))
}

func Tanh(c *ctx.Context, z *apfloat.Complex, precision int64) (*apfloat.Complex, error) {
	s, err := Sinh(c, z, precision)
	if err != nil {
		return nil, err
	}
	cs, err := Cosh(c, z, precision)
	if err != nil {
		return nil, err
	}
	if cs.IsZero() {
		return nil, aerr.Domain("floatmath.Tanh", "cosh(z) is zero")
	}
	return s.Divide(c, cs)
}

// Asin, Acos, Atan reduce to Log via the standard inverse-trig
// identities, applied as written: each passes its argument straight to
// complexSqrt and Log, which return their principal values; no
// half-plane or branch selection is made first.
func Asin(c *ctx.Context, z *apfloat.Complex, precision int64) (*apfloat.Complex, error) {
	i := imagUnit(z.Kind())
	zz, err := z.Multiply(c, z)
	if err != nil {
		return nil, err
	}
	inner := one(z.Kind()).Subtract(zz)
	root, err := complexSqrt(c, inner, precision)
	if err != nil {
		return nil, err
	}
	iz, err := i.Multiply(c, z)
	if err != nil {
		return nil, err
	}
	logArg := iz.Add(root)
	l, err := Log(c, logArg, precision)
	if err != nil {
		return nil, err
	}
	negI := i.Negate()
	return negI.Multiply(c, l)
}

func Acos(c *ctx.Context, z *apfloat.Complex, precision int64) (*apfloat.Complex, error) {
	asin, err := Asin(c, z, precision)
	if err != nil {
		return nil, err
	}
	pi, err := piBrentSalamin(c, z.Kind(), precision+extraPrecision)
	if err != nil {
		return nil, err
	}
	halfPi, err := pi.Divide(two(z.Kind()))
	if err != nil {
		return nil, err
	}
	return apfloat.ComplexReal(halfPi).Subtract(asin), nil
}

func Atan(c *ctx.Context, z *apfloat.Complex, precision int64) (*apfloat.Complex, error) {
	i := imagUnit(z.Kind())
	iz, err := i.Multiply(c, z)
	if err != nil {
		return nil, err
	}
	num := one(z.Kind()).Add(iz)
	den := one(z.Kind()).Subtract(iz)
	if den.IsZero() {
		return nil, aerr.Domain("floatmath.Atan", "atan(-i) is undefined")
	}
	ratio, err := num.Divide(c, den)
	if err != nil {
		return nil, err
	}
	l, err := Log(c, ratio, precision)
	if err != nil {
		return nil, err
	}
	half, err := divideByTwo(c, l)
	if err != nil {
		return nil, err
	}
	return half.Multiply(c, i.Negate())
}

// Asinh, Acosh, Atanh reduce to Log directly.
func Asinh(c *ctx.Context, z *apfloat.Complex, precision int64) (*apfloat.Complex, error) {
	zz, err := z.Multiply(c, z)
	if err != nil {
		return nil, err
	}
	inner := one(z.Kind()).Add(zz)
	root, err := complexSqrt(c, inner, precision)
	if err != nil {
		return nil, err
	}
	return Log(c, z.Add(root), precision)
}

func Acosh(c *ctx.Context, z *apfloat.Complex, precision int64) (*apfloat.Complex, error) {
	zz, err := z.Multiply(c, z)
	if err != nil {
		return nil, err
	}
	inner := zz.Subtract(one(z.Kind()))
	root, err := complexSqrt(c, inner, precision)
	if err != nil {
		return nil, err
	}
	return Log(c, z.Add(root), precision)
}

func Atanh(c *ctx.Context, z *apfloat.Complex, precision int64) (*apfloat.Complex, error) {
	num := one(z.Kind()).Add(z)
	den := one(z.Kind()).Subtract(z)
	if den.IsZero() {
		return nil, aerr.Domain("floatmath.Atanh", "atanh(1) is undefined")
	}
	ratio, err := num.Divide(c, den)
	if err != nil {
		return nil, err
	}
	l, err := Log(c, ratio, precision)
	if err != nil {
		return nil, err
	}
	return divideByTwo(c, l)
}
