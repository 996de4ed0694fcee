// Package parallel splits index ranges across a fixed number of goroutines.
//
// Workers receive disjoint, contiguous [start, end) ranges and may write to
// the matching slice of a shared output without locking.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Executor runs a range function on up to nthreads goroutines.
type Executor struct {
	nthreads int
}

// NewExecutor returns an executor with nthreads workers; nthreads <= 0
// selects runtime.NumCPU().
func NewExecutor(nthreads int) Executor {
	if nthreads <= 0 {
		nthreads = runtime.NumCPU()
	}

	return Executor{nthreads: nthreads}
}

// Workers returns the configured worker count.
func (e Executor) Workers() int { return e.nthreads }

// Execute partitions [0, nitems) into at most Workers() contiguous ranges of
// near-equal size and calls fn once per range. The first error cancels ctx
// for the remaining workers and is returned after all of them exit.
//
// With a single worker, or nitems <= 1, fn runs on the calling goroutine.
func (e Executor) Execute(
	ctx context.Context,
	nitems int,
	fn func(ctx context.Context, worker int, start, end int) error) error {
	if nitems <= 0 {
		return nil
	}
	if e.nthreads == 1 || nitems == 1 {
		return fn(ctx, 0, 0, nitems)
	}

	g, ctx := errgroup.WithContext(ctx)

	q := nitems / e.nthreads
	r := nitems % e.nthreads

	start := 0
	for i := 0; i < e.nthreads; i++ {
		size := q
		if i < r {
			size++
		}
		if size == 0 {
			break
		}

		end := start + size
		worker, curStart, curEnd := i, start, end
		g.Go(func() error {
			return fn(ctx, worker, curStart, curEnd)
		})
		start = end
	}

	return g.Wait()
}
