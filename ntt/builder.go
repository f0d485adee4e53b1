package ntt

import (
	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
)

// Builder selects the cheapest Strategy capable of transforming a given
// length under a memory budget, grounded verbatim on
// DoubleNTTBuilder.createNTT's three-tier decision: an in-cache table FNT
// when the transform and its w-table both fit in half of CacheL1Size, a
// six-step FNT while the whole transform still fits in MaxMemoryBlockSize,
// and a two-pass disk-backed FNT otherwise. A length divisible by 3 gets
// the Factor3 decorator wrapped around whichever of those three the
// plain 2^k length N/3 would have selected; when that choice is
// SixStepStrategy and the full transform still fits in memory, this is
// the "Factor3SixStep" fused variant the original names separately — it
// needs no distinct type here because Factor3 already composes with any
// inner Strategy.
type Builder struct {
	CacheL1Size        int
	MaxMemoryBlockSize int64

	// Workers bounds the goroutine fan-out strategies built here use for
	// their own internal row/column/factor-3-column passes (spec.md §5).
	// Strategies that never parallelize internally (Table, TwoPass)
	// ignore it.
	Workers int
}

// NewBuilder constructs a Builder from the cache, memory and processor
// limits of a running ctx.Context (CacheL1Size, MaxMemoryBlockSize,
// NumberOfProcessors).
func NewBuilder(cacheL1Size int, maxMemoryBlockSize int64, workers int) *Builder {
	return &Builder{CacheL1Size: cacheL1Size, MaxMemoryBlockSize: maxMemoryBlockSize, Workers: workers}
}

// Build returns a Strategy able to transform a length-n sequence of the
// given element kind.
func (bld *Builder) Build(kind modmath.ElementKind, n int64) Strategy {
	factor3 := n%3 == 0
	inner := n
	if factor3 {
		inner = n / 3
	}

	elementSize := int64(8) // uint64 per digit, regardless of kind
	// Table strategy needs the data plus its w-table resident, hence the
	// factor of two against half of L1.
	fitsCache := inner*elementSize*2 <= int64(bld.CacheL1Size)/2
	fitsMemory := inner*elementSize*2 <= bld.MaxMemoryBlockSize

	var base Strategy
	switch {
	case fitsCache:
		base = NewTableStrategy(kind)
	case fitsMemory:
		base = NewSixStepStrategy(kind, bld.Workers)
	default:
		base = NewTwoPassStrategy(kind)
	}

	if !factor3 {
		return base
	}
	return NewFactor3(kind, base, bld.Workers)
}

// ParallelEligible reports whether a convolution of the given length over
// the given kind may run its three modulus transforms concurrently,
// implementing spec.md §9's exact predicate: parallelize only when every
// column index fits in a signed 32-bit int and the strategy chosen for
// this length keeps all of its storages cached (a disk-backed two-pass
// transform has no spare memory bandwidth to share across goroutines).
func (bld *Builder) ParallelEligible(kind modmath.ElementKind, n int64) bool {
	if n > 1<<31-1 {
		return false
	}
	factor3 := n%3 == 0 && n/3 > 1
	inner := n
	if factor3 {
		inner = n / 3
	}
	elementSize := int64(8)
	fitsMemory := inner*elementSize*2 <= bld.MaxMemoryBlockSize
	return fitsMemory
}
