// Package apint implements the arbitrary-precision integer half of the
// numeric façade (spec.md §6.4): a digit-sequence number backed by a
// little-endian magnitude, with `Multiply` routed through the
// convolve.Engine three-modulus NTT pipeline and every other operation
// implemented the grade-school way apfloat's own `ApintMath` layers on
// top of its multiply primitive.
package apint

import (
	"math/big"

	"github.com/google/go-cmp/cmp"

	"github.com/Eternal-Night-Archer/apfloat-10yo/ctx"
	"github.com/Eternal-Night-Archer/apfloat-10yo/convolve"
	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
)

// Int is a digit-sequence number: sign plus a little-endian magnitude,
// trimmed so the most significant digit of a non-zero value is never
// zero; zero digits at the least significant end are kept, since they
// carry the value's place. The storage radix is
// always the element kind's NTT limb base (modmath.PrimeTriple.Base):
// digits must already be in that base for Multiply's convolution engine
// to interpret them correctly, so an Int does not accept an independent
// caller-chosen radix the way spec.md §3's radix-generic description
// otherwise allows — the presentation radix (e.g. 10 for decimal
// formatting) is a concern of the façade layer above this one, not of
// the NTT-facing digit sequence itself.
type Int struct {
	sign   int
	digits []uint64
	kind   modmath.ElementKind
}

// Radix returns the storage base digits are expressed in: the element
// kind's NTT limb base.
func (x *Int) Radix() uint64 { return modmath.Triple(x.kind).Base }

func (x *Int) Kind() modmath.ElementKind { return x.kind }

// Zero returns the zero value for kind.
func Zero(kind modmath.ElementKind) *Int {
	return &Int{kind: kind}
}

// One returns the value 1.
func One(kind modmath.ElementKind) *Int {
	return &Int{sign: 1, digits: []uint64{1}, kind: kind}
}

// FromInt64 converts a native integer into a digit-sequence value.
func FromInt64(v int64, kind modmath.ElementKind) *Int {
	return FromBigInt(big.NewInt(v), kind)
}

// FromBigInt converts an arbitrary math/big integer into a digit-sequence
// value; math/big is used here purely as a base-conversion utility, the
// same role it plays in lattigo's RNS CRT assembly (ring/rns_ring.go),
// never as a substitute for the NTT multiply path below.
func FromBigInt(v *big.Int, kind modmath.ElementKind) *Int {
	sign := v.Sign()
	if sign == 0 {
		return Zero(kind)
	}
	mag := new(big.Int).Abs(v)
	radix := modmath.Triple(kind).Base
	return &Int{sign: sign, digits: digitsFromBigInt(mag, radix), kind: kind}
}

func digitsFromBigInt(v *big.Int, radix uint64) []uint64 {
	if v.Sign() == 0 {
		return nil
	}
	baseBig := new(big.Int).SetUint64(radix)
	tmp := new(big.Int).Set(v)
	q, rem := new(big.Int), new(big.Int)
	var digits []uint64
	for tmp.Sign() != 0 {
		q.DivMod(tmp, baseBig, rem)
		digits = append(digits, rem.Uint64())
		tmp.Set(q)
	}
	return digits
}

func bigIntFromDigits(digits []uint64, radix uint64) *big.Int {
	v := new(big.Int)
	baseBig := new(big.Int).SetUint64(radix)
	for i := len(digits) - 1; i >= 0; i-- {
		v.Mul(v, baseBig)
		v.Add(v, new(big.Int).SetUint64(digits[i]))
	}
	return v
}

func trim(digits []uint64) []uint64 {
	n := len(digits)
	for n > 0 && digits[n-1] == 0 {
		n--
	}
	return digits[:n]
}

// BigInt returns x as a math/big integer, for interop and testing.
func (x *Int) BigInt() *big.Int {
	v := bigIntFromDigits(x.digits, x.Radix())
	if x.sign < 0 {
		v.Neg(v)
	}
	return v
}

func (x *Int) Signum() int  { return x.sign }
func (x *Int) IsZero() bool { return x.sign == 0 }
func (x *Int) IsEven() bool { return len(x.digits) == 0 || x.digits[0]%2 == 0 }

// Equal reports whether x and y have identical internal representation
// (sign, kind and digit sequence), the same structural equality
// lattigo's rlwe.MetaData.Equal checks for its own fields via
// cmp.Equal rather than a value-level comparison.
func (x *Int) Equal(y *Int) bool {
	return cmp.Equal(x.sign, y.sign) && cmp.Equal(x.kind, y.kind) && cmp.Equal(x.digits, y.digits)
}

// Precision returns the number of significant digits, per spec.md §3
// ("precision ≥ 1 for non-zero values").
func (x *Int) Precision() int64 { return int64(len(x.digits)) }

// Scale returns the base-radix exponent of the most significant digit.
func (x *Int) Scale() int64 {
	if x.sign == 0 {
		return 0
	}
	return int64(len(x.digits)) - 1
}

// CompareTo implements the external-interface `compareTo` operation.
func (x *Int) CompareTo(y *Int) int { return x.BigInt().Cmp(y.BigInt()) }

// EqualDigits counts the number of matching digits from the most
// significant end, the convergence probe AGM iteration uses (spec.md
// §4.7's "a.equalDigits(b) >= workingPrecision/2").
func (x *Int) EqualDigits(y *Int) int64 {
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

// Negate returns -x.
func (x *Int) Negate() *Int {
	return &Int{sign: -x.sign, digits: x.digits, kind: x.kind}
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	if x.sign < 0 {
		return x.Negate()
	}
	return x
}

// Truncate keeps only the n most significant digits, per spec.md §11's
// scale-aware truncation supplement.
func (x *Int) Truncate(n int64) *Int {
	if int64(len(x.digits)) <= n {
		return x
	}
	kept := append([]uint64{}, x.digits[int64(len(x.digits))-n:]...)
	return &Int{sign: x.sign, digits: trim(kept), kind: x.kind}
}

// Add returns x+y, by grade-school digit-wise addition or subtraction
// over the two magnitudes depending on whether the signs agree.
func (x *Int) Add(y *Int) *Int {
	radix := x.Radix()
	if x.sign == 0 {
		return y
	}
	if y.sign == 0 {
		return x
	}
	if x.sign == y.sign {
		return &Int{sign: x.sign, digits: trim(addMag(x.digits, y.digits, radix)), kind: x.kind}
	}
	switch compareMag(x.digits, y.digits) {
	case 0:
		return Zero(x.kind)
	case 1:
		return &Int{sign: x.sign, digits: trim(subMag(x.digits, y.digits, radix)), kind: x.kind}
	default:
		return &Int{sign: y.sign, digits: trim(subMag(y.digits, x.digits, radix)), kind: x.kind}
	}
}

// Subtract returns x-y.
func (x *Int) Subtract(y *Int) *Int {
	return x.Add(y.Negate())
}

// compareMag compares two little-endian magnitudes, most significant
// digit first, returning -1, 0 or 1 the way CompareTo does for signed
// values.
func compareMag(a, b []uint64) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addMag adds two little-endian magnitudes in the given radix, carrying
// into a digit beyond the longer operand when the top limbs overflow.
func addMag(a, b []uint64, radix uint64) []uint64 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint64, len(a)+1)
	var carry uint64
	for i := range a {
		s := a[i] + carry
		if i < len(b) {
			s += b[i]
		}
		out[i] = s % radix
		carry = s / radix
	}
	out[len(a)] = carry
	return out
}

// subMag subtracts b from a, both little-endian magnitudes in the given
// radix, under the precondition that a's magnitude is not smaller than
// b's.
func subMag(a, b []uint64, radix uint64) []uint64 {
	out := make([]uint64, len(a))
	var borrow int64
	for i := range a {
		var bi int64
		if i < len(b) {
			bi = int64(b[i])
		}
		d := int64(a[i]) - borrow - bi
		if d < 0 {
			d += int64(radix)
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint64(d)
	}
	return out
}

// Multiply returns x*y, computed by the three-modulus NTT convolution
// engine (spec.md §4.4) rather than grade-school multiplication.
func (x *Int) Multiply(c *ctx.Context, y *Int) (*Int, error) {
	if x.sign == 0 || y.sign == 0 {
		return Zero(x.kind), nil
	}
	e := convolve.NewEngine(c, x.kind)
	resultSize := int64(len(x.digits) + len(y.digits))
	prod, err := e.Convolute(x.digits, y.digits, resultSize)
	if err != nil {
		return nil, err
	}
	digits := trim(prod)
	if len(digits) == 0 {
		return Zero(x.kind), nil
	}
	return &Int{sign: x.sign * y.sign, digits: digits, kind: x.kind}, nil
}
