// SPDX-License-Identifier: MIT
// Package: isomap/builder
//
// knn.go — k-nearest-neighbor lists and the symmetrized neighborhood graph.
//
// Contract:
//   • Neighbors(i) are the k points j ≠ i with smallest dist(i,j); equal
//     distances are ranked by ascending j. Self is never a neighbor, even when
//     duplicate points sit at distance 0.
//   • KNearest inserts edge {i,j} iff j ∈ kNN(i) OR i ∈ kNN(j) (union rule).
//     The weight is the single condensed distance of the pair, so the second
//     insertion from the other endpoint is an idempotent no-op in core.Graph.
//
// AI-Hints:
//   • The graph is a pure function of (points, k); worker count never
//     changes the result.
//   • Degree of every vertex is ≥ k after symmetrization.

package builder

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/isomap/core"
	"github.com/katalvlaran/isomap/internal/parallel"
)

// Neighbor is one entry of a ranked kNN list.
type Neighbor struct {
	Index    int     // index of the neighboring point
	Distance float64 // Euclidean distance to it
}

// less orders neighbors by (Distance, Index).
func (a Neighbor) less(b Neighbor) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}

	return a.Index < b.Index
}

// KNearest builds the undirected kNN neighborhood graph of points.
//
// Implementation:
//   - Stage 1: validate points and 1 ≤ k ≤ N-1.
//   - Stage 2: condensed pairwise distances (each pair computed once).
//   - Stage 3: ranked kNN list per point (bounded insertion, parallel by row).
//   - Stage 4: insert edges i→kNN(i) in ascending i; mirrored entries collapse.
//
// Errors:
//   - core.ErrEmptyInput for N = 0.
//   - ErrBadK (core.ErrInvalidParameter) for k < 1 or k ≥ N.
//   - ErrBadPoints (core.ErrInvalidParameter) for malformed points.
//
// Complexity: O(N²·D + N²·k) time, O(N² + N·k) space.
func KNearest(points core.PointSet, k int, opts ...Option) (*core.Graph, error) {
	lists, c, err := neighbors(points, k, newBuilderConfig(opts...))
	if err != nil {
		return nil, builderErrorf(MethodKNearest, err)
	}

	g, err := core.NewGraph(c.Len())
	if err != nil {
		return nil, builderErrorf(MethodKNearest, err)
	}
	var i int
	var nb Neighbor
	for i = range lists {
		for _, nb = range lists[i] {
			if err = g.AddEdge(i, nb.Index, nb.Distance); err != nil {
				return nil, builderErrorf(MethodKNearest, err)
			}
		}
	}

	return g, nil
}

// Neighbors returns the ranked kNN list of every point, before symmetrization.
// lists[i] has exactly k entries ordered by (Distance, Index).
//
// Errors: as KNearest.
func Neighbors(points core.PointSet, k int, opts ...Option) ([][]Neighbor, error) {
	lists, _, err := neighbors(points, k, newBuilderConfig(opts...))
	if err != nil {
		return nil, builderErrorf(MethodNeighbors, err)
	}

	return lists, nil
}

// neighbors validates, computes the condensed buffer and ranks every row.
func neighbors(points core.PointSet, k int, cfg builderConfig) ([][]Neighbor, *Condensed, error) {
	if err := validatePoints(points); err != nil {
		return nil, nil, err
	}
	n := points.Len()
	if n < MinPoints {
		return nil, nil, fmt.Errorf("%w: N=%d admits no k (need at least %d points)", ErrBadK, n, MinPoints)
	}
	if k < MinNeighbors || k >= n {
		return nil, nil, fmt.Errorf("%w: k=%d with N=%d (need %d ≤ k ≤ N-1)", ErrBadK, k, n, MinNeighbors)
	}

	c, err := pairDistances(points, cfg)
	if err != nil {
		return nil, nil, err
	}

	lists := make([][]Neighbor, n)
	workers := cfg.workers
	if n < minRowsPerWorker*workers {
		workers = n/minRowsPerWorker + 1
	}
	err = parallel.NewExecutor(workers).Execute(context.Background(), n,
		func(_ context.Context, _ int, start, end int) error {
			for i := start; i < end; i++ {
				lists[i] = nearest(c, i, k)
			}

			return nil
		})
	if err != nil {
		return nil, nil, err
	}

	return lists, c, nil
}

// nearest selects the k best neighbors of i with a bounded sorted buffer.
// Candidates are scanned in ascending index, so an equal-distance candidate
// never displaces one already kept.
func nearest(c *Condensed, i, k int) []Neighbor {
	best := make([]Neighbor, 0, k+1)
	var j, pos int
	var cand Neighbor
	for j = 0; j < c.n; j++ {
		if j == i {
			continue
		}
		cand = Neighbor{Index: j, Distance: c.at(i, j)}
		if len(best) == k && !cand.less(best[k-1]) {
			continue
		}
		pos = sort.Search(len(best), func(p int) bool { return cand.less(best[p]) })
		best = append(best, Neighbor{})
		copy(best[pos+1:], best[pos:])
		best[pos] = cand
		if len(best) > k {
			best = best[:k]
		}
	}

	return best
}
