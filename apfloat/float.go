// Package apfloat implements the real half of the numeric façade
// (spec.md §6.4): an arbitrary-precision decimal digit-sequence number
// with sign/scale/precision/digits exactly as spec.md §3 describes,
// `Multiply` routed through apint's NTT convolution path the same way
// apint.Int routes its own Multiply, and every other operation built
// the grade-school way on top of that, mirroring apint's own layering.
package apfloat

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/Eternal-Night-Archer/apfloat-10yo/aerr"
	"github.com/Eternal-Night-Archer/apfloat-10yo/apint"
	"github.com/Eternal-Night-Archer/apfloat-10yo/ctx"
	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
)

// Infinite is the sentinel precision value meaning "exact", spec.md §3's
// "precision may be INFINITE".
const Infinite int64 = 1<<63 - 1

// decimalRadix is the presentation radix this façade operates in. apint.Int
// ties its digit storage to the NTT limb base for every element kind
// (apint/int.go); Float instead stores decimal digits, the "radix 10 for
// decimal presentation" case spec.md §3 names, and only crosses into the
// NTT limb base transiently inside Multiply, via the same big.Int
// round-trip apint.FromBigInt/BigInt already use as a base-conversion
// utility.
const decimalRadix uint64 = 10

// Float is a digit-sequence real number: sign, scale (the decimal
// exponent of the most significant digit), a requested precision, and a
// little-endian decimal mantissa trimmed so neither end holds a zero
// digit.
type Float struct {
	sign      int
	scale     int64
	precision int64
	digits    []uint64 // little-endian decimal digits
	kind      modmath.ElementKind
}

func (x *Float) Kind() modmath.ElementKind { return x.kind }

// Radix returns the presentation radix: always 10 for this façade.
func (x *Float) Radix() uint64 { return decimalRadix }

// Precision returns the requested number of significant digits, or
// Infinite for an exact value.
func (x *Float) Precision() int64 { return x.precision }

// Scale returns the base-10 exponent of the most significant digit.
func (x *Float) Scale() int64 { return x.scale }

func (x *Float) Signum() int  { return x.sign }
func (x *Float) IsZero() bool { return x.sign == 0 }

// Zero returns the zero value with infinite precision.
func Zero(kind modmath.ElementKind) *Float {
	return &Float{kind: kind, precision: Infinite}
}

// One returns the exact value 1.
func One(kind modmath.ElementKind) *Float {
	return &Float{sign: 1, digits: []uint64{1}, precision: Infinite, kind: kind}
}

// NewFromInt64 converts a native integer into an exact Float.
func NewFromInt64(v int64, kind modmath.ElementKind) *Float {
	return newFromBigInt(big.NewInt(v), Infinite, kind)
}

// NewFromString parses a decimal literal ("1.5", "-123.456", "1.23e10")
// to the requested number of significant digits, the constructor the
// literal scenario `Apfloat("1.5", 50)` (spec.md §8, S7) names.
func NewFromString(s string, precision int64, kind modmath.ElementKind) (*Float, error) {
	sign, digits, scale, err := parseDecimal(s)
	if err != nil {
		return nil, err
	}
	if sign == 0 {
		return Zero(kind), nil
	}
	return normalize(sign, digits, scale, precision, kind), nil
}

func newFromBigInt(v *big.Int, precision int64, kind modmath.ElementKind) *Float {
	sign := v.Sign()
	if sign == 0 {
		return Zero(kind)
	}
	mag := new(big.Int).Abs(v)
	digits := decimalDigitsFromBigInt(mag)
	return normalize(sign, digits, int64(len(digits))-1, precision, kind)
}

// parseDecimal splits a decimal literal into a sign, a little-endian
// significant-digit sequence and the decimal exponent of its most
// significant digit. It accepts an optional leading sign, an optional
// decimal point, and an optional exponent suffix ("e"/"E").
func parseDecimal(s string) (sign int, digits []uint64, scale int64, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil, 0, aerr.Domain("apfloat.NewFromString", "empty literal")
	}
	sign = 1
	if s[0] == '+' || s[0] == '-' {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	mantissaPart := s
	var exp int64
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissaPart = s[:i]
		expStr := s[i+1:]
		e, convErr := parseSignedInt(expStr)
		if convErr != nil {
			return 0, nil, 0, aerr.Domain("apfloat.NewFromString", "bad exponent: "+s)
		}
		exp = e
	}

	intPart, fracPart := mantissaPart, ""
	if i := strings.IndexByte(mantissaPart, '.'); i >= 0 {
		intPart, fracPart = mantissaPart[:i], mantissaPart[i+1:]
	}
	combined := intPart + fracPart
	if combined == "" {
		return 0, nil, 0, aerr.Domain("apfloat.NewFromString", "no digits: "+s)
	}
	for _, r := range combined {
		if r < '0' || r > '9' {
			return 0, nil, 0, aerr.Domain("apfloat.NewFromString", "non-digit in literal: "+s)
		}
	}

	pointPos := int64(len(intPart))
	lead := 0
	for lead < len(combined) && combined[lead] == '0' {
		lead++
	}
	if lead == len(combined) {
		return 0, nil, 0, nil
	}
	trail := len(combined)
	for trail > lead && combined[trail-1] == '0' {
		trail--
	}

	sig := combined[lead:trail]
	digits = make([]uint64, len(sig))
	for i, r := range sig {
		digits[len(sig)-1-i] = uint64(r - '0')
	}
	scale = pointPos - 1 - int64(lead) + exp
	return sign, digits, scale, nil
}

func parseSignedInt(s string) (int64, error) {
	var v big.Int
	_, ok := v.SetString(s, 10)
	if !ok {
		return 0, fmt.Errorf("bad integer: %q", s)
	}
	return v.Int64(), nil
}

// normalize trims leading/trailing zero digits (adjusting scale for any
// dropped leading zeros), then caps the digit count at precision by
// truncating least-significant digits, per spec.md §3's digit-sequence
// invariant.
func normalize(sign int, digits []uint64, scale, precision int64, kind modmath.ElementKind) *Float {
	hi := len(digits)
	for hi > 0 && digits[hi-1] == 0 {
		hi--
		scale--
	}
	if hi == 0 {
		return Zero(kind)
	}
	digits = digits[:hi]

	lo := 0
	for lo < len(digits)-1 && digits[lo] == 0 {
		lo++
	}
	digits = digits[lo:]

	if precision != Infinite && int64(len(digits)) > precision {
		drop := int64(len(digits)) - precision
		digits = digits[drop:]
		lo2 := 0
		for lo2 < len(digits)-1 && digits[lo2] == 0 {
			lo2++
		}
		digits = digits[lo2:]
	}
	return &Float{sign: sign, scale: scale, precision: precision, digits: digits, kind: kind}
}

func decimalDigitsFromBigInt(v *big.Int) []uint64 {
	ten := big.NewInt(10)
	tmp := new(big.Int).Set(v)
	q, rem := new(big.Int), new(big.Int)
	var digits []uint64
	for tmp.Sign() != 0 {
		q.DivMod(tmp, ten, rem)
		digits = append(digits, rem.Uint64())
		tmp.Set(q)
	}
	return digits
}

func bigIntFromDecimalDigits(digits []uint64) *big.Int {
	v := new(big.Int)
	ten := big.NewInt(10)
	for i := len(digits) - 1; i >= 0; i-- {
		v.Mul(v, ten)
		v.Add(v, big.NewInt(int64(digits[i])))
	}
	return v
}

// mantissaInt returns the exact integer formed by x's significant
// digits, ignoring sign and scale.
func (x *Float) mantissaInt() *big.Int { return bigIntFromDecimalDigits(x.digits) }

// lsdExponent returns the base-10 place value of the least significant
// stored digit.
func (x *Float) lsdExponent() int64 {
	if x.sign == 0 {
		return 0
	}
	return x.scale - int64(len(x.digits)) + 1
}

// BigRat returns x's exact value. Decimal digit sequences are always
// exactly rational, so this never loses information.
func (x *Float) BigRat() *big.Rat {
	if x.sign == 0 {
		return new(big.Rat)
	}
	m := x.mantissaInt()
	if x.sign < 0 {
		m.Neg(m)
	}
	lsd := x.lsdExponent()
	r := new(big.Rat).SetInt(m)
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(absInt64(lsd)), nil)
	if lsd >= 0 {
		r.Mul(r, new(big.Rat).SetInt(pow))
	} else {
		r.Quo(r, new(big.Rat).SetInt(pow))
	}
	return r
}

// Float64 returns a double-precision approximation, the seed value
// floatmath's Newton iterations start from.
func (x *Float) Float64() float64 {
	f, _ := new(big.Float).SetRat(x.BigRat()).Float64()
	return f
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func (x *Float) String() string {
	if x.sign == 0 {
		return "0"
	}
	var b strings.Builder
	if x.sign < 0 {
		b.WriteByte('-')
	}
	digitsMSDFirst := make([]byte, len(x.digits))
	for i, d := range x.digits {
		digitsMSDFirst[len(x.digits)-1-i] = byte('0' + d)
	}
	b.WriteByte(digitsMSDFirst[0])
	if len(digitsMSDFirst) > 1 {
		b.WriteByte('.')
		b.Write(digitsMSDFirst[1:])
	}
	fmt.Fprintf(&b, "e%d", x.scale)
	return b.String()
}

// Negate returns -x.
func (x *Float) Negate() *Float {
	if x.sign == 0 {
		return x
	}
	return &Float{sign: -x.sign, scale: x.scale, precision: x.precision, digits: x.digits, kind: x.kind}
}

// Abs returns |x|.
func (x *Float) Abs() *Float {
	if x.sign < 0 {
		return x.Negate()
	}
	return x
}

// Truncate keeps only the n most significant digits, per spec.md §11's
// scale-aware truncation supplement (mirrored from apint.Int.Truncate).
func (x *Float) Truncate(n int64) *Float {
	if int64(len(x.digits)) <= n {
		return x
	}
	kept := append([]uint64{}, x.digits[int64(len(x.digits))-n:]...)
	return normalize(x.sign, kept, x.scale, n, x.kind)
}

// CompareTo implements the external-interface `compareTo` operation.
func (x *Float) CompareTo(y *Float) int { return x.BigRat().Cmp(y.BigRat()) }

// EqualDigits counts matching digits from the most significant end, the
// convergence probe AGM and Newton iteration use (spec.md §4.7).
func (x *Float) EqualDigits(y *Float) int64 {
	if x.scale != y.scale || x.sign != y.sign {
		return 0
	}
	xd, yd := x.digits, y.digits
	i, j := len(xd)-1, len(yd)-1
	var count int64
	for i >= 0 && j >= 0 {
		if xd[i] != yd[j] {
			break
		}
		count++
		i--
		j--
	}
	return count
}

// WithPrecision returns x retagged to a (possibly lower) working
// precision p, without re-truncating its stored digits: the digit count
// a value actually carries and the precision later operations are
// allowed to retain are tracked separately, the same distinction
// spec.md §3 draws between "digits" and "precision".
func (x *Float) WithPrecision(p int64) *Float {
	if p == x.precision {
		return x
	}
	return &Float{sign: x.sign, scale: x.scale, precision: p, digits: x.digits, kind: x.kind}
}

func workingPrecision(a, b int64) int64 {
	if a == Infinite {
		return b
	}
	if b == Infinite {
		return a
	}
	if a < b {
		return a
	}
	return b
}

// Add returns x+y, exact when both operands are exact (decimal addition
// never needs rounding once aligned to a common least-significant-digit
// position), truncated to the working precision otherwise.
func (x *Float) Add(y *Float) *Float {
	return addSigned(x, y, 1)
}

// Subtract returns x-y.
func (x *Float) Subtract(y *Float) *Float {
	return addSigned(x, y, -1)
}

func addSigned(x, y *Float, ySign int) *Float {
	if x.IsZero() {
		if ySign < 0 {
			return y.Negate()
		}
		return y
	}
	if y.IsZero() {
		return x
	}

	lx := x.lsdExponent()
	ly := y.lsdExponent()
	common := lx
	if ly < common {
		common = ly
	}

	mx := x.mantissaInt()
	if x.sign < 0 {
		mx.Neg(mx)
	}
	my := y.mantissaInt()
	if y.sign*ySign < 0 {
		my.Neg(my)
	}

	scaleBig(mx, lx-common)
	scaleBig(my, ly-common)

	sum := new(big.Int).Add(mx, my)
	sign := sum.Sign()
	if sign == 0 {
		return Zero(x.kind)
	}
	if sign < 0 {
		sum.Neg(sum)
	}
	digits := decimalDigitsFromBigInt(sum)
	prec := workingPrecision(x.precision, y.precision)
	return normalize(sign, digits, common+int64(len(digits))-1, prec, x.kind)
}

func scaleBig(v *big.Int, shift int64) {
	if shift == 0 {
		return
	}
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(shift), nil)
	v.Mul(v, pow)
}

// Multiply returns x*y, the integer mantissa product computed by
// apint.Int.Multiply's NTT convolution path (spec.md §4.4), truncated to
// the working precision.
func (x *Float) Multiply(c *ctx.Context, y *Float) (*Float, error) {
	if x.IsZero() || y.IsZero() {
		return Zero(x.kind), nil
	}
	ax := apint.FromBigInt(x.mantissaInt(), x.kind)
	ay := apint.FromBigInt(y.mantissaInt(), x.kind)
	prod, err := ax.Multiply(c, ay)
	if err != nil {
		return nil, err
	}
	digits := decimalDigitsFromBigInt(prod.BigInt())
	sign := x.sign * y.sign
	scale := x.lsdExponent() + y.lsdExponent() + int64(len(digits)) - 1
	prec := workingPrecision(x.precision, y.precision)
	return normalize(sign, digits, scale, prec, x.kind), nil
}

// Divide returns x/y truncated to the working precision plus a small
// guard, via exact big.Int long division on the scaled mantissas —
// the same documented simplification intmath.Div makes versus the
// floating-point seed-and-correct division strategy (see DESIGN.md):
// math/big's long division already gives an exactly truncated quotient
// at any requested digit count, so there is nothing the seeded strategy
// would add here beyond performance.
func (x *Float) Divide(y *Float) (*Float, error) {
	if y.IsZero() {
		return nil, aerr.Domain("apfloat.Divide", "division by zero")
	}
	if x.IsZero() {
		return Zero(x.kind), nil
	}
	prec := workingPrecision(x.precision, y.precision)
	if prec == Infinite {
		prec = 40
	}
	guard := prec + 10

	mx := x.mantissaInt()
	my := y.mantissaInt()
	scaleBig(mx, guard)
	q := new(big.Int).Quo(mx, my)
	digits := decimalDigitsFromBigInt(q)
	sign := x.sign * y.sign
	scale := x.lsdExponent() - y.lsdExponent() - guard + int64(len(digits)) - 1
	return normalize(sign, digits, scale, prec, x.kind), nil
}

// Mod returns x - y*q where q = trunc(x/y) rounded toward zero to an
// integer, mirroring apint's div/mod sign convention (sign(r) matches
// sign(x)).
func (x *Float) Mod(c *ctx.Context, y *Float) (*Float, error) {
	if y.IsZero() {
		return nil, aerr.Domain("apfloat.Mod", "division by zero")
	}
	ratQ := new(big.Rat).Quo(x.BigRat(), y.BigRat())
	qInt := new(big.Int).Quo(ratQ.Num(), ratQ.Denom())
	q := newFromBigInt(qInt, Infinite, x.kind)
	qy, err := q.Multiply(c, y)
	if err != nil {
		return nil, err
	}
	return x.Subtract(qy), nil
}
