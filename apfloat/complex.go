package apfloat

import (
	"github.com/Eternal-Night-Archer/apfloat-10yo/ctx"
	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
)

// Complex is a pair of digit-sequence numbers sharing the same radix
// (spec.md §3's "Complex number" entry).
type Complex struct {
	Re, Im *Float
}

func NewComplex(re, im *Float) *Complex { return &Complex{Re: re, Im: im} }

// ComplexZero returns 0+0i.
func ComplexZero(kind modmath.ElementKind) *Complex {
	return &Complex{Re: Zero(kind), Im: Zero(kind)}
}

// ComplexReal returns re+0i, the embedding every real-seeded complex
// Newton iteration (floatmath.Exp, floatmath.Log) starts from.
func ComplexReal(re *Float) *Complex { return &Complex{Re: re, Im: Zero(re.kind)} }

func (z *Complex) Kind() modmath.ElementKind { return z.Re.kind }
func (z *Complex) Radix() uint64             { return z.Re.Radix() }
func (z *Complex) IsZero() bool              { return z.Re.IsZero() && z.Im.IsZero() }

// Precision returns the working precision of the pair: the lesser of
// the two components', mirroring Float's own working-precision rule.
func (z *Complex) Precision() int64 { return workingPrecision(z.Re.Precision(), z.Im.Precision()) }

// WithPrecision retags both components to working precision p.
func (z *Complex) WithPrecision(p int64) *Complex {
	return &Complex{Re: z.Re.WithPrecision(p), Im: z.Im.WithPrecision(p)}
}

func (z *Complex) Negate() *Complex { return &Complex{Re: z.Re.Negate(), Im: z.Im.Negate()} }
func (z *Complex) Conj() *Complex   { return &Complex{Re: z.Re, Im: z.Im.Negate()} }

func (z *Complex) Add(w *Complex) *Complex {
	return &Complex{Re: z.Re.Add(w.Re), Im: z.Im.Add(w.Im)}
}

func (z *Complex) Subtract(w *Complex) *Complex {
	return &Complex{Re: z.Re.Subtract(w.Re), Im: z.Im.Subtract(w.Im)}
}

// Multiply uses the ordinary complex product formula, each of the four
// partial products routed through Float.Multiply's NTT convolution path.
func (z *Complex) Multiply(c *ctx.Context, w *Complex) (*Complex, error) {
	ac, err := z.Re.Multiply(c, w.Re)
	if err != nil {
		return nil, err
	}
	bd, err := z.Im.Multiply(c, w.Im)
	if err != nil {
		return nil, err
	}
	ad, err := z.Re.Multiply(c, w.Im)
	if err != nil {
		return nil, err
	}
	bc, err := z.Im.Multiply(c, w.Re)
	if err != nil {
		return nil, err
	}
	return &Complex{Re: ac.Subtract(bd), Im: ad.Add(bc)}, nil
}

// Divide computes z/w = z*conj(w) / |w|^2 via Float.Multiply/Divide.
func (z *Complex) Divide(c *ctx.Context, w *Complex) (*Complex, error) {
	num, err := z.Multiply(c, w.Conj())
	if err != nil {
		return nil, err
	}
	wwRe, err := w.Re.Multiply(c, w.Re)
	if err != nil {
		return nil, err
	}
	wwIm, err := w.Im.Multiply(c, w.Im)
	if err != nil {
		return nil, err
	}
	denom := wwRe.Add(wwIm)
	re, err := num.Re.Divide(denom)
	if err != nil {
		return nil, err
	}
	im, err := num.Im.Divide(denom)
	if err != nil {
		return nil, err
	}
	return &Complex{Re: re, Im: im}, nil
}

// AbsSquared returns Re(z)^2 + Im(z)^2, the modulus-squared value
// floatmath.Log takes the real logarithm of.
func (z *Complex) AbsSquared(c *ctx.Context) (*Float, error) {
	re2, err := z.Re.Multiply(c, z.Re)
	if err != nil {
		return nil, err
	}
	im2, err := z.Im.Multiply(c, z.Im)
	if err != nil {
		return nil, err
	}
	return re2.Add(im2), nil
}
