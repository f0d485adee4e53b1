package storage

// Cached is an in-memory DataStorage backed by a plain slice, giving O(1)
// random access. This is the storage kind the table FNT and six-step FNT
// strategies require for their scratch buffers.
type Cached struct {
	digits []uint64
}

// NewCached allocates a zero-filled Cached storage of the given size.
func NewCached(size int64) *Cached {
	return &Cached{digits: make([]uint64, size)}
}

// NewCachedFromSlice wraps an existing slice without copying, so callers
// that already hold a []uint64 (e.g. a digit-sequence number's mantissa)
// can hand it to the engine without an extra allocation.
func NewCachedFromSlice(digits []uint64) *Cached {
	return &Cached{digits: digits}
}

func (c *Cached) Size() int64    { return int64(len(c.digits)) }
func (c *Cached) IsCached() bool { return true }
func (c *Cached) Close() error   { return nil }

// Slice exposes the backing array directly. NTT strategies use this to
// run their butterfly kernels without per-element iterator overhead;
// spec.md's iterator contract still applies to every other consumer.
func (c *Cached) Slice() []uint64 { return c.digits }

func (c *Cached) CopyFrom(src DataStorage, n int64) error {
	if n > c.Size() {
		return outOfRange("Cached.CopyFrom", n, c.Size())
	}
	if s, ok := src.(*Cached); ok {
		copy(c.digits[:n], s.digits[:n])
		for i := n; i < int64(len(c.digits)); i++ {
			c.digits[i] = 0
		}
		return nil
	}
	it, err := src.Iterator(Read, 0, n)
	if err != nil {
		return err
	}
	var i int64
	for ; i < n; i++ {
		v, err := it.Get()
		if err != nil {
			return err
		}
		c.digits[i] = v
		it.Next()
	}
	for ; i < int64(len(c.digits)); i++ {
		c.digits[i] = 0
	}
	return nil
}

func (c *Cached) Iterator(mode Mode, start, end int64) (Iterator, error) {
	if start < 0 || end > c.Size() || start > end {
		return nil, outOfRange("Cached.Iterator", start, c.Size())
	}
	return &cachedIterator{c: c, pos: start, end: end}, nil
}

type cachedIterator struct {
	c   *Cached
	pos int64
	end int64
}

func (it *cachedIterator) Get() (uint64, error) {
	if it.pos >= it.end {
		return 0, outOfRange("cachedIterator.Get", it.pos, it.end)
	}
	return it.c.digits[it.pos], nil
}

func (it *cachedIterator) Set(v uint64) error {
	if it.pos >= it.end {
		return outOfRange("cachedIterator.Set", it.pos, it.end)
	}
	it.c.digits[it.pos] = v
	return nil
}

func (it *cachedIterator) Next() bool {
	it.pos++
	return it.pos < it.end
}
