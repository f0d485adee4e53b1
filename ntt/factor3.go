package ntt

import (
	"fmt"

	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
	"github.com/Eternal-Night-Archer/apfloat-10yo/storage"
)

// Factor3 decorates an inner power-of-two Strategy to support transform
// lengths of the form 3*2^k, splitting the length-3 factor out into a
// radix-3 decimation-in-time step and delegating the remaining length-M
// (M = N/3) subtransforms to inner. Grounded on
// LongFactor3NTTStepStrategy.java's ColumnTransformRunnable, which runs
// the same combine step column-by-column in parallel; the 3-point
// combine here is the direct 3x3 Winograd matrix (1,1,1; 1,w,w^2; 1,w^2,w)
// rather than Winograd's reduced-multiplication-count formulation, since
// a modular multiply costs the same regardless of which operand is a
// root of unity, and the reduced form only pays for itself when
// multiplication is expensive relative to addition, as it is for
// floating point but not for a single 128-by-64 reduction.
type Factor3 struct {
	triple
	inner Strategy
}

// NewFactor3 wraps inner in a factor-3 decorator for the given kind,
// fanning its own column-combine step out across up to workers
// goroutines (spec.md §5's "factor-3 column butterflies").
func NewFactor3(kind modmath.ElementKind, inner Strategy, workers int) *Factor3 {
	return &Factor3{triple: newTriple(kind, workers), inner: inner}
}

func (f *Factor3) Transform(ds storage.DataStorage, modulusIdx int) error {
	return f.run(ds, modulusIdx, false)
}

func (f *Factor3) InverseTransform(ds storage.DataStorage, modulusIdx int, length int64) error {
	if err := f.run(ds, modulusIdx, true); err != nil {
		return err
	}
	c, ok := ds.(*storage.Cached)
	if !ok {
		return fmt.Errorf("ntt.Factor3.InverseTransform: requires a cached storage")
	}
	m := f.moduli[modulusIdx]
	nInv := m.ModInverse(uint64(length))
	data := c.Slice()
	for i := range data {
		data[i] = m.ModMultiply(data[i], nInv)
	}
	return nil
}

func (f *Factor3) run(ds storage.DataStorage, modulusIdx int, inverse bool) error {
	c, ok := ds.(*storage.Cached)
	if !ok {
		return fmt.Errorf("ntt.Factor3: requires a cached storage")
	}
	data := c.Slice()
	n := int64(len(data))
	if n%3 != 0 {
		return fmt.Errorf("ntt.Factor3: length %d is not a multiple of 3", n)
	}
	M := n / 3
	m := f.moduli[modulusIdx]
	g := f.primes.PrimitiveRoot[modulusIdx]

	// Split into the 3 interleaved subsequences of length M (element 3k+r
	// goes to block r) and transform each with the inner power-of-two
	// strategy.
	var blocks [3]*storage.Cached
	for r := int64(0); r < 3; r++ {
		sub := make([]uint64, M)
		for k := int64(0); k < M; k++ {
			sub[k] = data[3*k+r]
		}
		blocks[r] = storage.NewCachedFromSlice(sub)
	}
	for _, b := range blocks {
		var err error
		if inverse {
			err = f.inner.InverseTransform(b, modulusIdx, M)
		} else {
			err = f.inner.Transform(b, modulusIdx)
		}
		if err != nil {
			return err
		}
	}
	// Undo the 1/M normalization the inner inverse transform applied:
	// the outer Factor3.InverseTransform normalizes once by 1/N at the
	// end, so the inner calls here must stay in the unnormalized domain.
	if inverse {
		mScalar := uint64(M) // M is always far smaller than any NTT prime in primes.go
		for _, b := range blocks {
			s := b.Slice()
			for i := range s {
				s[i] = m.ModMultiply(s[i], mScalar)
			}
		}
	}

	w3 := m.GetForwardNthRoot(g, 3)
	if inverse {
		w3 = m.GetInverseNthRoot(g, 3)
	}
	w3sq := m.ModMultiply(w3, w3)
	wN := f.rootTbl.wTable(m, modulusIdx, g, n, inverse)

	x0, x1, x2 := blocks[0].Slice(), blocks[1].Slice(), blocks[2].Slice()
	// Column j only ever touches data[j], data[j+M] and data[j+2*M], so
	// distinct columns fan out safely across workers.
	return parallelRange(f.parallelWorkers(n), M, func(j int64) error {
		a := x0[j]
		b := m.ModMultiply(wN[j], x1[j])
		c := m.ModMultiply(wN[(2*j)%n], x2[j])

		data[j] = m.ModAdd(a, m.ModAdd(b, c))
		data[j+M] = m.ModAdd(a, m.ModAdd(m.ModMultiply(w3, b), m.ModMultiply(w3sq, c)))
		data[j+2*M] = m.ModAdd(a, m.ModAdd(m.ModMultiply(w3sq, b), m.ModMultiply(w3, c)))
		return nil
	})
}
