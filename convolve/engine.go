// Package convolve implements L5-L6 of the arithmetic kernel: the
// three-modulus NTT convolution engine and the Carry-CRT recombination
// step, grounded verbatim on
// Int3NTTConvolutionStrategy.java's convolute/autoConvolute/convoluteOne
// (spec.md §4.4-§4.5).
package convolve

import (
	"fmt"

	"github.com/Eternal-Night-Archer/apfloat-10yo/aerr"
	"github.com/Eternal-Night-Archer/apfloat-10yo/ctx"
	"github.com/Eternal-Night-Archer/apfloat-10yo/internal/pool"
	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
	"github.com/Eternal-Night-Archer/apfloat-10yo/ntt"
	"github.com/Eternal-Night-Archer/apfloat-10yo/storage"
)

// wordSize is the byte width of one digit as seen by the shared-memory
// threshold check; every element kind stores its digits as a uint64.
const wordSize = 8

// Engine runs three-modulus NTT convolutions for one element kind,
// bound to a ctx.Context for its cache/memory sizing and shared-memory
// lock.
type Engine struct {
	Ctx     *ctx.Context
	Kind    modmath.ElementKind
	Builder *ntt.Builder

	primes modmath.PrimeTriple
	moduli [3]modmath.Modulus
}

// NewEngine builds a convolution engine for kind, sized from c.
func NewEngine(c *ctx.Context, kind modmath.ElementKind) *Engine {
	primes := modmath.Triple(kind)
	return &Engine{
		Ctx:     c,
		Kind:    kind,
		Builder: ntt.NewBuilder(c.CacheL1Size, c.MaxMemoryBlockSize, c.NumberOfProcessors),
		primes:  primes,
		moduli:  primes.Moduli(),
	}
}

// Convolute computes the length-resultSize radix-Base digit stream of
// x*y via three parallel NTT-domain convolutions and a Carry-CRT
// recombination. If x and y share the same backing storage (the caller
// squaring a value), it delegates to AutoConvolute per spec.md §4.4's
// self-overlap check.
func (e *Engine) Convolute(x, y []uint64, resultSize int64) ([]uint64, error) {
	if overlaps(x, y) {
		return e.AutoConvolute(x, resultSize)
	}
	return e.run(x, y, false, resultSize)
}

// AutoConvolute computes x*x, the squaring specialization that runs one
// forward transform and one inverse transform per modulus instead of two.
func (e *Engine) AutoConvolute(x []uint64, resultSize int64) ([]uint64, error) {
	return e.run(x, x, true, resultSize)
}

func overlaps(x, y []uint64) bool {
	return len(x) > 0 && len(y) > 0 && &x[0] == &y[0]
}

func (e *Engine) run(x, y []uint64, auto bool, resultSize int64) ([]uint64, error) {
	l := int64(len(x) + len(y))
	n := ntt.Round23Up(l)
	if n > e.primes.MaxTransformLength() {
		return nil, aerr.Res("convolve.Engine",
			fmt.Sprintf("transform length %d exceeds max %d for element kind %s", n, e.primes.MaxTransformLength(), e.Kind))
	}

	strat := e.Builder.Build(e.Kind, n)
	parallel := e.Builder.ParallelEligible(e.Kind, n)

	release := e.Ctx.AcquireSharedMemory(n * wordSize)
	defer release()

	var residues [3]storage.DataStorage
	compute := func(idx int) error {
		res, err := e.computeResidue(strat, idx, x, y, n, auto)
		if err != nil {
			return err
		}
		residues[idx] = res
		return nil
	}

	var err error
	if parallel {
		err = pool.FanOut(
			func() error { return compute(0) },
			func() error { return compute(1) },
			func() error { return compute(2) },
		)
	} else {
		for i := 0; i < 3 && err == nil; i++ {
			err = compute(i)
		}
	}
	if err != nil {
		closeAll(residues)
		return nil, err
	}
	defer func() { closeAll(residues) }()

	// The first two residue streams may spill to disk once their work in
	// transform domain is done; the third stays cached for the CRT pass
	// (spec.md §4.4). Both are read only sequentially from here on, so a
	// spilled copy costs nothing but the copy itself.
	spiller := e.Ctx.Builders.BuilderFor(e.Kind)
	for i := 0; i < 2; i++ {
		spilled, err := spiller.CreateDataStorage(residues[i])
		if err != nil {
			return nil, err
		}
		residues[i] = spilled
	}

	dst := storage.NewCached(resultSize)
	if err := CarryCRT(e.primes.Base, e.primes, residues[0], residues[1], residues[2], resultSize, dst); err != nil {
		return nil, err
	}
	return dst.Slice(), nil
}

func closeAll(storages [3]storage.DataStorage) {
	for _, s := range storages {
		if s != nil {
			s.Close()
		}
	}
}

// computeResidue runs one modulus's forward transform / pointwise
// multiply / inverse transform pipeline, per convoluteOne in the
// original source this method is grounded on.
func (e *Engine) computeResidue(strat ntt.Strategy, idx int, x, y []uint64, n int64, auto bool) (storage.DataStorage, error) {
	m := e.moduli[idx]

	xs := storage.NewCachedFromSlice(padTo(x, n))
	if err := strat.Transform(xs, idx); err != nil {
		return nil, err
	}

	var ySlice []uint64
	if auto {
		ySlice = xs.Slice()
	} else {
		ys := storage.NewCachedFromSlice(padTo(y, n))
		if err := strat.Transform(ys, idx); err != nil {
			return nil, err
		}
		ySlice = ys.Slice()
	}

	prod := storage.NewCached(n)
	a, out := xs.Slice(), prod.Slice()
	for i := range out {
		out[i] = m.ModMultiply(a[i], ySlice[i])
	}

	if err := strat.InverseTransform(prod, idx, n); err != nil {
		return nil, err
	}
	return prod, nil
}

func padTo(src []uint64, n int64) []uint64 {
	out := make([]uint64, n)
	copy(out, src)
	return out
}
