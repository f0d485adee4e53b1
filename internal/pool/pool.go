// Package pool provides the two concurrency primitives used inside the
// engine: Resources, a bounded channel-backed pool of per-worker scratch
// resources driving the NTT kernels' own row/column/factor-3-column
// fan-out (ntt.parallelRange), and FanOut, a small helper for running a
// fixed, small number of independent jobs (the three-modulus
// convolution) with first-error-wins semantics.
package pool

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// Resources is a pool of per-worker scratch values handed out to
// concurrent Task invocations so that no two goroutines share mutable
// per-call state; ntt.parallelRange seeds one with a trivial struct{}
// per worker purely to bound how many of its tasks run at once. Adapted
// from lattigo's utils/concurrency.ResourceManager: same
// channel-of-resources, channel-of-errors shape, renamed to fit this
// package's vocabulary.
type Resources[T any] struct {
	wg        sync.WaitGroup
	available chan T
	errs      chan error
}

// New builds a Resources pool seeded with the given per-worker values. Its
// capacity is len(values); Task invocations beyond that many concurrent
// Run calls block until a resource is returned.
func New[T any](values []T) *Resources[T] {
	available := make(chan T, len(values))
	for i := range values {
		available <- values[i]
	}
	return &Resources[T]{
		available: available,
		errs:      make(chan error, len(values)),
	}
}

// Task is a unit of work bound to a pooled resource.
type Task[T any] func(resource T) error

// Run launches f asynchronously against the next available resource. If an
// earlier Run already failed, Run still launches (so the WaitGroup stays
// balanced) but short-circuits without doing work, matching the teacher's
// "stop doing new work once an error is pending" policy.
func (r *Resources[T]) Run(f Task[T]) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if len(r.errs) != 0 {
			return
		}
		resource := <-r.available
		if err := f(resource); err != nil && len(r.errs) < cap(r.errs) {
			r.errs <- err
		}
		r.available <- resource
	}()
}

// Wait blocks until every launched Task has returned, then reports the
// first error encountered, if any.
func (r *Resources[T]) Wait() error {
	r.wg.Wait()
	if len(r.errs) != 0 {
		return <-r.errs
	}
	return nil
}

// FanOut runs each job concurrently on a plain golang.org/x/sync/errgroup
// Group, waits for all of them to finish and returns the first error any
// of them reported; nothing is cancelled when a job fails. It is used for
// the fixed three-way convolution, one goroutine per NTT modulus.
func FanOut(jobs ...func() error) error {
	var g errgroup.Group
	for _, job := range jobs {
		job := job
		g.Go(job)
	}
	return g.Wait()
}
