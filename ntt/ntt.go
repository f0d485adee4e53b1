// Package ntt implements L2-L4 of the arithmetic kernel: a family of
// Number Theoretic Transform strategies selected by access pattern
// (in-cache table FNT, six-step out-of-cache FNT, two-pass disk-backed
// FNT), a factor-3 decorator that glues three power-of-two subtransforms
// into a length-3*2^k transform via a Winograd butterfly, and a Builder
// that picks among them from transform length, cache size and memory
// budget (spec.md §4.2-§4.3).
package ntt

import (
	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
	"github.com/Eternal-Night-Archer/apfloat-10yo/storage"
)

// Strategy is a length-N forward/inverse NTT over one of the three NTT
// primes. A Strategy instance is reused across calls and requires external
// synchronization: its state machine is the flat idle -> transforming ->
// idle spec.md §4.2 describes, and the caller, not the Strategy, is
// responsible for not calling it concurrently from two goroutines at
// once on the same underlying storage.
type Strategy interface {
	// Transform evaluates the forward NTT of storage in place, modulo
	// the modulusIdx-th prime of the triple this Strategy was built for.
	Transform(storage storage.DataStorage, modulusIdx int) error

	// InverseTransform evaluates the inverse NTT of storage in place.
	// storage is expected to already contain unnormalized transform-
	// domain output; the 1/N normalization factor is applied as the
	// final step (spec.md §4.2).
	InverseTransform(storage storage.DataStorage, modulusIdx int, length int64) error

	// GetTransformLength returns the smallest supported length >= n.
	GetTransformLength(n int64) int64

	// GetMaxTransformLength bounds the engine for this Strategy's
	// element kind.
	GetMaxTransformLength() int64
}

// Round23Up rounds n up to the nearest length that is either a power of
// two or three times a power of two, per spec.md §3: "Rounded up from the
// required product length via round23up". Grounded verbatim on
// DoubleNTTBuilder.createNTT's use of Util.round23up in the apfloat
// source this package is modeled on.
func Round23Up(n int64) int64 {
	if n <= 1 {
		return 1
	}
	// Smallest power of two >= n.
	pow2 := int64(1)
	for pow2 < n {
		pow2 <<= 1
	}
	// Smallest 3*2^k >= n.
	pow3 := int64(3)
	for pow3 < n {
		pow3 <<= 1
	}
	if pow3 < pow2 {
		return pow3
	}
	return pow2
}

// triple bundles the prime/modulus state every strategy needs, factored
// out so Table/SixStep/TwoPass can share it without repeating the
// modmath wiring.
type triple struct {
	kind    modmath.ElementKind
	primes  modmath.PrimeTriple
	moduli  [3]modmath.Modulus
	rootTbl *rootCache

	// workers bounds the goroutine fan-out a strategy may use for its own
	// internal row/column passes (spec.md §5); 1 means run sequentially.
	// TableStrategy and TwoPassStrategy never consult this field: a plain
	// table transform has no row/column decomposition to parallelize, and
	// a disk-backed two-pass transform has no spare memory bandwidth to
	// share across goroutines (spec.md §9).
	workers int
}

func newTriple(kind modmath.ElementKind, workers int) triple {
	pt := modmath.Triple(kind)
	return triple{
		kind:    kind,
		primes:  pt,
		moduli:  pt.Moduli(),
		rootTbl: newRootCache(),
		workers: workers,
	}
}

func (t triple) GetMaxTransformLength() int64 {
	return t.primes.MaxTransformLength()
}

func (t triple) GetTransformLength(n int64) int64 {
	return Round23Up(n)
}
