package intmath

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Eternal-Night-Archer/apfloat-10yo/apint"
	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
)

// TestDivModInvariant checks that x == q*y+r and |r| < |y| for every
// generated non-zero divisor, the quotient/remainder invariant spec.md
// §7's Div operation must hold exactly.
func TestDivModInvariant(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("x == q*y+r and |r| < |y|", prop.ForAll(
		func(a, b int64) bool {
			if b == 0 {
				b = 1
			}
			x := apint.FromInt64(a, modmath.Int32Kind)
			y := apint.FromInt64(b, modmath.Int32Kind)
			q, r, err := Div(x, y)
			if err != nil {
				return false
			}
			prod := new(big.Int).Mul(q.BigInt(), y.BigInt())
			sum := new(big.Int).Add(prod, r.BigInt())
			if sum.Cmp(x.BigInt()) != 0 {
				return false
			}
			return new(big.Int).Abs(r.BigInt()).Cmp(new(big.Int).Abs(y.BigInt())) < 0
		},
		gen.Int64Range(-1_000_000_000, 1_000_000_000),
		gen.Int64Range(-1_000_000_000, 1_000_000_000),
	))

	properties.TestingRun(t)
}

// TestGcdDividesBoth checks that Gcd(a,b) divides both operands exactly,
// across random inputs including zero.
func TestGcdDividesBoth(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("gcd(a,b) divides a and b", prop.ForAll(
		func(a, b int64) bool {
			x := apint.FromInt64(a, modmath.Int32Kind)
			y := apint.FromInt64(b, modmath.Int32Kind)
			g := Gcd(x, y)
			if g.IsZero() {
				return a == 0 && b == 0
			}
			_, ra, err := Div(x, g)
			if err != nil {
				return false
			}
			_, rb, err := Div(y, g)
			if err != nil {
				return false
			}
			return ra.IsZero() && rb.IsZero()
		},
		gen.Int64Range(-1_000_000, 1_000_000),
		gen.Int64Range(-1_000_000, 1_000_000),
	))

	properties.TestingRun(t)
}
