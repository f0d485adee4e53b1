// Package ctx carries the configuration the kernel consumes from its
// environment: cache/memory sizing for the NTT builder, the processor
// count for the worker pool, and the shared-memory lock that serializes
// memory-heavy transforms against each other.
package ctx

import (
	"sync"

	"github.com/Eternal-Night-Archer/apfloat-10yo/storage"
)

// Context groups the values external interface §6.2 of the specification
// asks the engine to consume. It is threaded explicitly through
// constructors instead of being read from a global, mirroring how
// lattigo's Ring/RNSRing are values passed to every operation rather than
// package-level state.
type Context struct {
	// CacheL1Size is the L1 data cache size in bytes, used by the NTT
	// builder to decide whether a transform plus its w-table is
	// cache-resident.
	CacheL1Size int

	// MaxMemoryBlockSize bounds how large a transform may grow before
	// the builder falls back to disk-backed storage.
	MaxMemoryBlockSize int64

	// NumberOfProcessors bounds the worker pool used inside NTT kernels.
	NumberOfProcessors int

	// SharedMemoryThreshold is the transform's total byte size above
	// which it must hold the shared-memory lock for its duration.
	SharedMemoryThreshold int64

	// Builders yields a storage.Builder keyed by element kind
	// (spec.md §6.2).
	Builders storage.Factory

	mu sync.Mutex
}

// Default returns a Context with conservative, typical-desktop sizing.
func Default() *Context {
	return &Context{
		CacheL1Size:           32 * 1024,
		MaxMemoryBlockSize:    1 << 30,
		NumberOfProcessors:    4,
		SharedMemoryThreshold: 1 << 20,
		Builders:              storage.UniformFactory{Builder: storage.MemoryBuilder{}},
	}
}

// AcquireSharedMemory acquires the shared-memory lock iff size (in bytes)
// exceeds SharedMemoryThreshold. It returns a release function that must
// be deferred by the caller on every exit path, including error paths;
// when the threshold was not crossed, release is a no-op so callers never
// need to branch on whether the lock was actually taken.
func (c *Context) AcquireSharedMemory(size int64) (release func()) {
	if size <= c.SharedMemoryThreshold {
		return func() {}
	}
	c.mu.Lock()
	released := false
	return func() {
		if released {
			return
		}
		released = true
		c.mu.Unlock()
	}
}
