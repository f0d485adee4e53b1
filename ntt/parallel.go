package ntt

import (
	"github.com/Eternal-Night-Archer/apfloat-10yo/internal/pool"
)

// parallelRange runs task(j) for every j in [0,n), using up to workers
// goroutines when workers > 1, and a plain sequential loop otherwise.
// This is the one place kernel-level parallelism (spec.md §5's "row/
// column passes, factor-3 column butterflies") enters the NTT package;
// callers are responsible for only passing tasks whose iterations touch
// disjoint memory, since no locking happens here beyond internal/pool's
// own resource handout.
func parallelRange(workers int, n int64, task func(j int64) error) error {
	if workers < 2 || n < 2 {
		for j := int64(0); j < n; j++ {
			if err := task(j); err != nil {
				return err
			}
		}
		return nil
	}
	if int64(workers) > n {
		workers = int(n)
	}
	rp := pool.New(make([]struct{}, workers))
	for j := int64(0); j < n; j++ {
		j := j
		rp.Run(func(struct{}) error { return task(j) })
	}
	return rp.Wait()
}

// parallelWorkers applies spec.md §9's parallel predicate to a pass over
// a length-n sequence: only when every column index still fits in a
// signed 32-bit int is this strategy's configured worker count honored.
func (t triple) parallelWorkers(n int64) int {
	if n > 1<<31-1 {
		return 1
	}
	return t.workers
}
