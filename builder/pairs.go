// SPDX-License-Identifier: MIT
// Package: isomap/builder
//
// pairs.go — condensed pairwise Euclidean distances.
//
// Layout:
//   • Only the strict upper triangle is stored, row by row:
//     (0,1) (0,2) … (0,N-1) (1,2) … (N-2,N-1) → N·(N-1)/2 slots.
//   • Index of (i,j), i<j: offset(i) + (j-i-1), offset(i) = i·N − i·(i+1)/2.
//   • Each unordered pair is computed exactly once; At(i,j) and At(j,i) read
//     the same slot, so both directions of a kNN edge carry identical weights.
//
// Parallelism:
//   • The flat slot range is split into contiguous, equal-sized chunks, one per
//     worker; every worker decodes its starting (i,j) and walks forward.
//     Chunks are balanced by pair count, not by row.

package builder

import (
	"context"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/isomap/core"
	"github.com/katalvlaran/isomap/internal/parallel"
)

// Condensed holds the N·(N-1)/2 pairwise distances of a point set.
type Condensed struct {
	n    int
	data []float64
}

// Len returns the number of points N.
func (c *Condensed) Len() int { return c.n }

// At returns the distance between points i and j (0 when i == j).
// Errors: ErrPairOutOfRange.
func (c *Condensed) At(i, j int) (float64, error) {
	if i < 0 || i >= c.n || j < 0 || j >= c.n {
		return 0, fmt.Errorf("%w: (%d,%d) with N=%d", ErrPairOutOfRange, i, j, c.n)
	}

	return c.at(i, j), nil
}

// at is the unchecked lookup used on hot paths.
func (c *Condensed) at(i, j int) float64 {
	if i == j {
		return 0
	}
	if i > j {
		i, j = j, i
	}

	return c.data[pairOffset(c.n, i)+j-i-1]
}

// pairOffset is the flat index of pair (i, i+1).
func pairOffset(n, i int) int {
	return i*n - i*(i+1)/2
}

// PairDistances validates points and computes all pairwise Euclidean
// distances into a Condensed buffer.
//
// Errors: core.ErrEmptyInput (N=0), ErrBadPoints (invalid point set).
//
// Complexity: O(N²·D) time, O(N²/2) space.
func PairDistances(points core.PointSet, opts ...Option) (*Condensed, error) {
	if err := validatePoints(points); err != nil {
		return nil, builderErrorf(MethodPairDistances, err)
	}
	cfg := newBuilderConfig(opts...)

	return pairDistances(points, cfg)
}

// pairDistances fills the condensed buffer on cfg.workers goroutines.
func pairDistances(points core.PointSet, cfg builderConfig) (*Condensed, error) {
	n := points.Len()
	c := &Condensed{n: n, data: make([]float64, n*(n-1)/2)}

	exec := parallel.NewExecutor(workersFor(cfg.workers, len(c.data)))
	err := exec.Execute(context.Background(), len(c.data),
		func(_ context.Context, _ int, start, end int) error {
			// Row i owns slots [offset(i), offset(i+1)).
			i := sort.Search(n-1, func(r int) bool { return pairOffset(n, r+1) > start })
			j := start - pairOffset(n, i) + i + 1
			var idx int
			for idx = start; idx < end; idx++ {
				c.data[idx] = floats.Distance(points[i], points[j], 2)
				j++
				if j == n {
					i++
					j = i + 1
				}
			}

			return nil
		})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// workersFor caps the worker count so each worker gets a meaningful share.
func workersFor(requested, items int) int {
	limit := items / (minRowsPerWorker * minRowsPerWorker / 2)
	if limit < 1 {
		limit = 1
	}
	if requested > limit {
		return limit
	}

	return requested
}

// validatePoints maps PointSet validation onto the builder sentinels.
func validatePoints(points core.PointSet) error {
	err := points.Validate()
	if err == nil {
		return nil
	}
	if points.Len() == 0 {
		return err
	}

	return fmt.Errorf("%w: %v", ErrBadPoints, err)
}
