package ntt

import (
	"github.com/Eternal-Night-Archer/apfloat-10yo/modmath"
	"github.com/Eternal-Night-Archer/apfloat-10yo/storage"
)

// TwoPassStrategy is the out-of-memory sibling of SixStepStrategy: the
// same matrix decomposition, but the column and row passes read and
// write through storage.DataStorage iterators rather than an in-memory
// slice, so the strided column access never needs more than one
// diskBlock-sized window of the backing file resident at a time (spec.md
// §4.3, "a two-pass disk-based approach" for transforms that exceed the
// configured memory budget).
type TwoPassStrategy struct {
	triple
}

// NewTwoPassStrategy builds a TwoPassStrategy for kind. Its row/column
// passes always run sequentially (spec.md §9: disk-backed transforms get
// no parallel fan-out), so it needs no worker count of its own.
func NewTwoPassStrategy(kind modmath.ElementKind) *TwoPassStrategy {
	return &TwoPassStrategy{triple: newTriple(kind, 1)}
}

func (s *TwoPassStrategy) Transform(ds storage.DataStorage, modulusIdx int) error {
	return s.run(ds, modulusIdx, false)
}

func (s *TwoPassStrategy) InverseTransform(ds storage.DataStorage, modulusIdx int, length int64) error {
	// Each row/column subtransform already applies its own 1/n_i
	// normalization inside transformSlice; with n1*n2 == length those
	// two factors already multiply out to 1/length, so no further
	// scaling pass is needed here.
	return s.run(ds, modulusIdx, true)
}

func (s *TwoPassStrategy) run(ds storage.DataStorage, modulusIdx int, inverse bool) error {
	n := ds.Size()
	n1, n2 := factorize(n)
	m := s.moduli[modulusIdx]
	g := s.primes.PrimitiveRoot[modulusIdx]

	// Step 1: column transforms. Column j lives at offsets j, j+n2,
	// j+2*n2, ...; gathered into a small in-memory buffer, transformed,
	// and scattered back, one column at a time.
	col := make([]uint64, n1)
	for j := int64(0); j < n2; j++ {
		if err := gatherStrided(ds, col, j, n2, n1); err != nil {
			return err
		}
		if err := transformSlice(col, m, s.rootTbl, modulusIdx, g, inverse); err != nil {
			return err
		}
		if err := scatterStrided(ds, col, j, n2, n1); err != nil {
			return err
		}
	}

	// Step 2: twiddle multiply, sequential pass over the whole storage.
	wN := s.rootTbl.wTable(m, modulusIdx, g, n, inverse)
	it, err := ds.Iterator(storage.ReadWrite, 0, n)
	if err != nil {
		return err
	}
	for i := int64(0); i < n1; i++ {
		for j := int64(0); j < n2; j++ {
			v, err := it.Get()
			if err != nil {
				return err
			}
			idx := (i * j) % n
			if err := it.Set(m.ModMultiply(v, wN[idx])); err != nil {
				return err
			}
			it.Next()
		}
	}
	if err := storage.Flush(it); err != nil {
		return err
	}

	// Step 3+4: row transforms, already sequential in storage, followed
	// by a transposed scatter into a scratch disk buffer, then a copy
	// back so the caller again sees a plain row-major length-N sequence.
	scratch, err := storage.NewDisk(n)
	if err != nil {
		return err
	}
	defer scratch.Close()

	row := make([]uint64, n2)
	for i := int64(0); i < n1; i++ {
		if err := gatherStrided(ds, row, i*n2, 1, n2); err != nil {
			return err
		}
		if err := transformSlice(row, m, s.rootTbl, modulusIdx, g, inverse); err != nil {
			return err
		}
		if err := scatterStrided(scratch, row, i, n1, n2); err != nil {
			return err
		}
	}
	return ds.CopyFrom(scratch, n)
}

// gatherStrided reads count elements from ds starting at offset, spaced
// stride apart, into dst.
func gatherStrided(ds storage.DataStorage, dst []uint64, offset, stride, count int64) error {
	for i := int64(0); i < count; i++ {
		pos := offset + i*stride
		it, err := ds.Iterator(storage.Read, pos, pos+1)
		if err != nil {
			return err
		}
		v, err := it.Get()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// scatterStrided is the inverse of gatherStrided.
func scatterStrided(ds storage.DataStorage, src []uint64, offset, stride, count int64) error {
	for i := int64(0); i < count; i++ {
		pos := offset + i*stride
		it, err := ds.Iterator(storage.Write, pos, pos+1)
		if err != nil {
			return err
		}
		if err := it.Set(src[i]); err != nil {
			return err
		}
		if err := storage.Flush(it); err != nil {
			return err
		}
	}
	return nil
}
