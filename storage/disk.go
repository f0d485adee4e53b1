package storage

import (
	"encoding/binary"
	"os"
)

// Disk is a disk-backed DataStorage: access is sequential per iterator,
// used once a transform exceeds the configured memory budget (spec.md
// §4.3, "the whole transform won't fit into available memory, so use a
// two-pass disk-based approach"). It is opaque scratch: never a durable
// artifact, per spec.md §6's "no persisted layout" contract.
//
// Reads and writes go through ReadAt/WriteAt at an explicit byte offset
// tracked by each iterator, rather than the file's own cursor, so that a
// READ_WRITE iterator's reads and writes never race against each other's
// notion of "current position" the way two buffered streams sharing one
// file descriptor would.
type Disk struct {
	file *os.File
	size int64
}

// NewDisk creates a size-digit disk-backed storage in a fresh temp file.
func NewDisk(size int64) (*Disk, error) {
	f, err := os.CreateTemp("", "aprec-scratch-*.bin")
	if err != nil {
		return nil, err
	}
	if err := f.Truncate(size * 8); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, err
	}
	return &Disk{file: f, size: size}, nil
}

func (d *Disk) Size() int64    { return d.size }
func (d *Disk) IsCached() bool { return false }

func (d *Disk) Close() error {
	name := d.file.Name()
	err := d.file.Close()
	os.Remove(name)
	return err
}

func (d *Disk) CopyFrom(src DataStorage, n int64) error {
	if n > d.size {
		return outOfRange("Disk.CopyFrom", n, d.size)
	}
	w, err := d.Iterator(Write, 0, d.size)
	if err != nil {
		return err
	}
	srcIt, err := src.Iterator(Read, 0, n)
	if err != nil {
		return err
	}
	var i int64
	for ; i < n; i++ {
		v, err := srcIt.Get()
		if err != nil {
			return err
		}
		if err := w.Set(v); err != nil {
			return err
		}
		w.Next()
		srcIt.Next()
	}
	for ; i < d.size; i++ {
		if err := w.Set(0); err != nil {
			return err
		}
		w.Next()
	}
	return w.(*diskIterator).flushWriteBlock()
}

func (d *Disk) Iterator(mode Mode, start, end int64) (Iterator, error) {
	if start < 0 || end > d.size || start > end {
		return nil, outOfRange("Disk.Iterator", start, d.size)
	}
	return &diskIterator{d: d, pos: start, end: end}, nil
}

// diskBlock is the unit the iterator prefetches/flushes in, the block
// prefetch behavior spec.md §4.2 asks of the two-pass FNT strategy's
// disk access pattern.
const diskBlock = 8192 // digits per block

type diskIterator struct {
	d   *Disk
	pos int64
	end int64

	// readBuf/readBufBase cache the block containing the last Get.
	readBuf     []uint64
	readBufBase int64

	// writeBuf/writeBufBase accumulate Sets to one block; the block is
	// written back when a Set lands in a different block or on Flush.
	writeBuf     []uint64
	writeBufBase int64
	writeDirty   bool
}

func (it *diskIterator) blockBase(pos int64) int64 {
	return (pos / diskBlock) * diskBlock
}

func (it *diskIterator) Get() (uint64, error) {
	if it.pos >= it.end {
		return 0, outOfRange("diskIterator.Get", it.pos, it.end)
	}
	base := it.blockBase(it.pos)
	if it.readBuf == nil || base != it.readBufBase {
		if err := it.loadBlock(base); err != nil {
			return 0, err
		}
	}
	return it.readBuf[it.pos-base], nil
}

func (it *diskIterator) loadBlock(base int64) error {
	n := diskBlock
	if base+int64(n) > it.d.size {
		n = int(it.d.size - base)
	}
	buf := make([]byte, n*8)
	if _, err := it.d.file.ReadAt(buf, base*8); err != nil {
		return err
	}
	words := make([]uint64, n)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	it.readBuf = words
	it.readBufBase = base
	return nil
}

func (it *diskIterator) Set(v uint64) error {
	if it.pos >= it.end {
		return outOfRange("diskIterator.Set", it.pos, it.end)
	}
	base := it.blockBase(it.pos)
	if it.writeBuf == nil || base != it.writeBufBase {
		if err := it.flushWriteBlock(); err != nil {
			return err
		}
		n := diskBlock
		if base+int64(n) > it.d.size {
			n = int(it.d.size - base)
		}
		// Start from the block's current contents, so that flushing the
		// whole block leaves digits this iterator did not Set unchanged.
		buf := make([]byte, n*8)
		if _, err := it.d.file.ReadAt(buf, base*8); err != nil {
			return err
		}
		it.writeBuf = make([]uint64, n)
		for i := range it.writeBuf {
			it.writeBuf[i] = binary.LittleEndian.Uint64(buf[i*8:])
		}
		it.writeBufBase = base
	}
	it.writeBuf[it.pos-base] = v
	it.writeDirty = true
	if it.readBuf != nil && it.readBufBase == base {
		it.readBuf[it.pos-base] = v
	}
	return nil
}

func (it *diskIterator) flushWriteBlock() error {
	if !it.writeDirty {
		return nil
	}
	buf := make([]byte, len(it.writeBuf)*8)
	for i, v := range it.writeBuf {
		binary.LittleEndian.PutUint64(buf[i*8:], v)
	}
	if _, err := it.d.file.WriteAt(buf, it.writeBufBase*8); err != nil {
		return err
	}
	it.writeDirty = false
	return nil
}

func (it *diskIterator) Next() bool {
	it.pos++
	return it.pos < it.end
}

// Flush forces any buffered writes on it to disk. Callers that write to a
// Disk storage's iterator directly (rather than through CopyFrom, which
// flushes internally) must call Flush before handing the storage to a
// reader on another iterator. Flush is a no-op for a Cached iterator.
func Flush(it Iterator) error {
	if d, ok := it.(*diskIterator); ok {
		return d.flushWriteBlock()
	}
	return nil
}
