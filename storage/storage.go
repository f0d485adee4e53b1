// Package storage implements L1 of the arithmetic kernel: an abstract
// ordered sequence of machine-word digits, with cached (in-memory) and
// disk-backed variants and mode-scoped iterators, per spec.md §3/§6.1.
package storage

import "fmt"

// Mode selects the access pattern an Iterator supports. A WRITE iterator
// may only be advanced forward and never read from what it has not yet
// written; a READ iterator is the mirror image. READ_WRITE allows both,
// at the cost of forfeiting the sequential-only guarantee an uncached
// (disk-backed) storage relies on for buffering.
type Mode int

const (
	Read Mode = iota
	Write
	ReadWrite
)

// DataStorage is an ordered container of fixed-width uint64 digits, sized
// for one convolution or NTT step, owned for the duration of that
// operation. Cached storages support O(1) random access; uncached
// storages may only be iterated sequentially (spec.md §6.1).
type DataStorage interface {
	// Size returns the total digit count.
	Size() int64

	// IsCached reports whether this storage supports O(1) random access.
	// The parallel scheduler and the NTT builder do not read it; they
	// decide from the transform's byte size instead.
	IsCached() bool

	// Iterator returns a sequential cursor over [start, end) in the given
	// mode. Iterators hold exclusive access to their slice for the
	// lifetime of the mode (spec.md §5, "iterators hold exclusive access
	// to their slice for their mode").
	Iterator(mode Mode, start, end int64) (Iterator, error)

	// CopyFrom copies the first n digits of src into this storage,
	// starting at digit 0.
	CopyFrom(src DataStorage, n int64) error

	// Close releases any resources (file handles) held by the storage.
	// Cached storages have nothing to release; Close is a no-op for them.
	Close() error
}

// Iterator is a sequential cursor produced by DataStorage.Iterator.
type Iterator interface {
	// Get returns the digit at the current position.
	Get() (uint64, error)
	// Set writes the digit at the current position.
	Set(v uint64) error
	// Next advances the cursor by one position. It returns false once
	// the iterator has been advanced past its range.
	Next() bool
}

func outOfRange(op string, i, size int64) error {
	return fmt.Errorf("%s: index %d out of range [0, %d)", op, i, size)
}
