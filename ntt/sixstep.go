package ntt

import (
	"fmt"

	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
	"github.com/Eternal-Night-Archer/apfloat-10yo/storage"
)

// SixStepStrategy implements the Bailey six-step FFT decomposition: a
// length-N transform is reshaped as an n1-by-n2 matrix (N = n1*n2),
// transformed by columns, twiddled, transposed, transformed by rows, and
// transposed back. Used once the transform no longer fits in cache but
// still fits in memory (spec.md §4.2-§4.3), trading locality for the
// ability to run each row/column transform with a small TableStrategy
// that does fit in cache.
type SixStepStrategy struct {
	triple
	inner Strategy
}

// NewSixStepStrategy builds a SixStepStrategy for kind, using a plain
// TableStrategy as the row/column engine and fanning its own column/row
// passes out across up to workers goroutines (spec.md §5, subject to the
// §9 predicate applied by parallelWorkers).
func NewSixStepStrategy(kind modmath.ElementKind, workers int) *SixStepStrategy {
	t := newTriple(kind, workers)
	return &SixStepStrategy{triple: t, inner: &TableStrategy{triple: t}}
}

func (s *SixStepStrategy) Transform(ds storage.DataStorage, modulusIdx int) error {
	return s.run(ds, modulusIdx, false)
}

func (s *SixStepStrategy) InverseTransform(ds storage.DataStorage, modulusIdx int, length int64) error {
	// Each row/column subtransform already applies its own 1/n_i
	// normalization inside transformSlice; with n1*n2 == length those
	// two factors already multiply out to 1/length, so no further
	// scaling is needed here (unlike TableStrategy's nttInPlace, which
	// never normalizes and so needs it done by the caller).
	return s.run(ds, modulusIdx, true)
}

// factorize splits n into n1, n2 with n1*n2 == n and n1 as close to
// sqrt(n) as the power-of-two/times-three structure of n allows, so
// neither dimension dominates the matrix's footprint.
func factorize(n int64) (n1, n2 int64) {
	n1 = int64(1)
	for cand := int64(1); cand*cand <= n; cand <<= 1 {
		if n%cand == 0 {
			n1 = cand
		}
	}
	return n1, n / n1
}

func (s *SixStepStrategy) run(ds storage.DataStorage, modulusIdx int, inverse bool) error {
	c, ok := ds.(*storage.Cached)
	if !ok {
		return fmt.Errorf("ntt.SixStepStrategy: requires a cached storage")
	}
	data := c.Slice()
	n := int64(len(data))
	n1, n2 := factorize(n)
	m := s.moduli[modulusIdx]
	g := s.primes.PrimitiveRoot[modulusIdx]
	workers := s.parallelWorkers(n)

	// Step 1: view data as a row-major n1-by-n2 matrix (element (i, j)
	// at i*n2+j), and
	// transform each of the n2 columns (length n1) in place. Distinct
	// columns touch disjoint elements of data, so they fan out safely.
	err := parallelRange(workers, n2, func(j int64) error {
		col := make([]uint64, n1)
		for i := int64(0); i < n1; i++ {
			col[i] = data[i*n2+j]
		}
		if err := transformSlice(col, m, s.rootTbl, modulusIdx, g, inverse); err != nil {
			return err
		}
		for i := int64(0); i < n1; i++ {
			data[i*n2+j] = col[i]
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Step 2: twiddle factor multiply, w_N^(i*j).
	wN := s.rootTbl.wTable(m, modulusIdx, g, n, inverse)
	for i := int64(0); i < n1; i++ {
		for j := int64(0); j < n2; j++ {
			idx := (i * j) % n
			data[i*n2+j] = m.ModMultiply(data[i*n2+j], wN[idx])
		}
	}

	// Step 3+4: transpose to n2-by-n1, transform each of the n1 rows
	// (length n2), leave the result transposed back to row-major
	// n1-by-n2 order so callers see a plain length-N sequence. Distinct
	// rows write disjoint elements of transposed, so they too fan out
	// safely.
	transposed := make([]uint64, n)
	err = parallelRange(workers, n1, func(i int64) error {
		row := make([]uint64, n2)
		for j := int64(0); j < n2; j++ {
			row[j] = data[i*n2+j]
		}
		if err := transformSlice(row, m, s.rootTbl, modulusIdx, g, inverse); err != nil {
			return err
		}
		for j := int64(0); j < n2; j++ {
			transposed[j*n1+i] = row[j]
		}
		return nil
	})
	if err != nil {
		return err
	}
	copy(data, transposed)
	return nil
}

// transformSlice runs a plain Table NTT over a standalone slice, used by
// SixStepStrategy for its row/column subtransforms.
func transformSlice(data []uint64, m modmath.Modulus, rc *rootCache, modulusIdx int, g uint64, inverse bool) error {
	n := int64(len(data))
	if n == 1 {
		return nil
	}
	w := rc.wTable(m, modulusIdx, g, n, inverse)
	nttInPlace(data, m, w)
	if inverse {
		nInv := m.ModInverse(uint64(n))
		for i := range data {
			data[i] = m.ModMultiply(data[i], nInv)
		}
	}
	return nil
}
