package storage

// Builder is the abstract DataStorageBuilder consumed by the engine,
// per spec.md §6.1: createCachedDataStorage / createDataStorage.
type Builder interface {
	// CreateCachedDataStorage allocates a new, zero-filled cached
	// storage of the given digit count.
	CreateCachedDataStorage(size int64) (DataStorage, error)

	// CreateDataStorage wraps or downgrades an existing storage into
	// whatever representation this builder considers its "at rest"
	// form — e.g. a cached result storage may be kept cached if it is
	// small, or backed by disk once it exceeds a threshold.
	CreateDataStorage(existing DataStorage) (DataStorage, error)
}

// MemoryBuilder always returns Cached storages; it never spills to disk.
// Used for element kinds / sizes known in advance to fit comfortably in
// memory, and in ctx.Default, which most tests in this module use.
type MemoryBuilder struct{}

func (MemoryBuilder) CreateCachedDataStorage(size int64) (DataStorage, error) {
	return NewCached(size), nil
}

func (MemoryBuilder) CreateDataStorage(existing DataStorage) (DataStorage, error) {
	return existing, nil
}

// SpillingBuilder downgrades a cached storage to a Disk-backed one once
// its size exceeds SpillThreshold digits, the way the convolution engine
// "allows the first two [residue streams] to spill" (spec.md §4.4).
type SpillingBuilder struct {
	SpillThreshold int64
}

func (b SpillingBuilder) CreateCachedDataStorage(size int64) (DataStorage, error) {
	return NewCached(size), nil
}

func (b SpillingBuilder) CreateDataStorage(existing DataStorage) (DataStorage, error) {
	if existing.Size() <= b.SpillThreshold {
		return existing, nil
	}
	disk, err := NewDisk(existing.Size())
	if err != nil {
		return nil, err
	}
	if err := disk.CopyFrom(existing, existing.Size()); err != nil {
		disk.Close()
		return nil, err
	}
	existing.Close()
	return disk, nil
}

// Factory yields a Builder keyed by element kind, per spec.md §6.2's
// "handle to a BuilderFactory yielding DataStorageBuilders keyed by
// element type". kind is an opaque key here (modmath.ElementKind in
// practice); the storage package itself stays independent of modmath to
// avoid an import cycle, so it is typed as `any`.
type Factory interface {
	BuilderFor(kind any) Builder
}

// UniformFactory returns the same Builder for every element kind, which
// is all any of the engine's own tests need.
type UniformFactory struct {
	Builder Builder
}

func (f UniformFactory) BuilderFor(any) Builder { return f.Builder }
