package ntt

import (
	"fmt"

	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
	"github.com/Eternal-Night-Archer/apfloat-10yo/storage"
)

// TableStrategy is the standard decimation-in-time radix-2 Cooley-Tukey
// NTT with a precomputed w-table, used when the transform plus its
// w-table fits in half the L1 cache (spec.md §4.2). The butterfly shape
// is grounded on lattigo's NumberTheoreticTransformerStandard
// (ring/ntt_standard.go), generalized from a fixed negacyclic ring
// transform to a variable-length, variable-modulus cyclic NTT and
// simplified out of Montgomery form: lattigo keeps its twiddle table in
// Montgomery domain because every one of its coefficients is already
// there for the surrounding ring arithmetic; this kernel's coefficients
// are plain digit values, so modmath.Modulus.ModMultiply (a single
// 128-by-64 division, see modmath.go) does the reduction directly.
type TableStrategy struct {
	triple
}

// NewTableStrategy builds a TableStrategy for the given element kind.
func NewTableStrategy(kind modmath.ElementKind) *TableStrategy {
	return &TableStrategy{triple: newTriple(kind, 1)}
}

func (s *TableStrategy) Transform(ds storage.DataStorage, modulusIdx int) error {
	c, ok := ds.(*storage.Cached)
	if !ok {
		return fmt.Errorf("ntt.TableStrategy.Transform: requires a cached storage")
	}
	data := c.Slice()
	n := len(data)
	m := s.moduli[modulusIdx]
	g := s.primes.PrimitiveRoot[modulusIdx]
	w := s.rootTbl.wTable(m, modulusIdx, g, int64(n), false)
	nttInPlace(data, m, w)
	return nil
}

func (s *TableStrategy) InverseTransform(ds storage.DataStorage, modulusIdx int, length int64) error {
	c, ok := ds.(*storage.Cached)
	if !ok {
		return fmt.Errorf("ntt.TableStrategy.InverseTransform: requires a cached storage")
	}
	data := c.Slice()
	n := len(data)
	m := s.moduli[modulusIdx]
	g := s.primes.PrimitiveRoot[modulusIdx]
	w := s.rootTbl.wTable(m, modulusIdx, g, int64(n), true)
	nttInPlace(data, m, w)

	// Apply the final 1/N normalization, per spec.md §4.2: "the inverse
	// transform expects the storage to already contain unnormalized
	// output; it applies the 1/N factor as the final step."
	nInv := m.ModInverse(uint64(n))
	for i := range data {
		data[i] = m.ModMultiply(data[i], nInv)
	}
	_ = length // length is implied by len(data); kept for interface symmetry. Factor3 is the only strategy that reads it.
	return nil
}

// nttInPlace runs an iterative, in-place decimation-in-time Cooley-Tukey
// NTT over data, using the precomputed root table w (w[i] = root^i).
// Bit-reversal permutation precedes the butterfly passes, the classic
// shape every table-based FFT/NTT in the retrieval pack uses (lattigo's
// nttLazy/inttLazy fold the permutation into a bit-reversed root table
// instead; this version keeps the permutation explicit, trading a pass
// over the data for a table that is a straightforward power sequence and
// therefore easy to share unmodified between forward and inverse calls
// through rootCache).
func nttInPlace(data []uint64, m modmath.Modulus, w []uint64) {
	n := len(data)
	bitReverse(data)

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		step := n / size
		for start := 0; start < n; start += size {
			for j := 0; j < half; j++ {
				wj := w[j*step]
				u := data[start+j]
				v := m.ModMultiply(data[start+j+half], wj)
				data[start+j] = m.ModAdd(u, v)
				data[start+j+half] = m.ModSubtract(u, v)
			}
		}
	}
}

func bitReverse(data []uint64) {
	n := len(data)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}
}
