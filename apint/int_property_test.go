package apint

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Eternal-Night-Archer/apfloat-10yo/ctx"
	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
)

// TestMultiplyRoundTrip checks that the three-modulus NTT convolution
// path agrees with math/big multiplication across randomly generated
// operands, the property spec.md §6's CRT reconstruction is supposed
// to preserve exactly.
func TestMultiplyRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	c := ctx.Default()
	properties.Property("apint.Multiply matches big.Int.Mul", prop.ForAll(
		func(a, b int64) bool {
			x := FromInt64(a, modmath.Int32Kind)
			y := FromInt64(b, modmath.Int32Kind)
			got, err := x.Multiply(c, y)
			if err != nil {
				return false
			}
			want := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
			return got.BigInt().Cmp(want) == 0
		},
		gen.Int64Range(-1_000_000_000, 1_000_000_000),
		gen.Int64Range(-1_000_000_000, 1_000_000_000),
	))

	properties.TestingRun(t)
}

// TestAddSubtractInvariant checks (x+y)-y == x across random operands.
func TestAddSubtractInvariant(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("(x+y)-y recovers x", prop.ForAll(
		func(a, b int64) bool {
			x := FromInt64(a, modmath.Int32Kind)
			y := FromInt64(b, modmath.Int32Kind)
			back := x.Add(y).Subtract(y)
			return back.BigInt().Cmp(big.NewInt(a)) == 0
		},
		gen.Int64Range(-1_000_000_000_000, 1_000_000_000_000),
		gen.Int64Range(-1_000_000_000_000, 1_000_000_000_000),
	))

	properties.TestingRun(t)
}
