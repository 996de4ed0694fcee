// SPDX-License-Identifier: MIT
// Package: isomap/geodesic
//
// solve.go — all-pairs geodesic distances over the neighborhood graph.
//
// Implementation:
//   • Stage 1: label connected components (bfs). Under PolicyFail a graph with
//     two or more components is rejected before any distance work.
//   • Stage 2: fill D row by row. Dijkstra workers own contiguous row ranges
//     and one dijkstra.Workspace each; Floyd–Warshall runs on a seeded matrix.
//   • Stage 3: symmetrize, D[i][j] = D[j][i] = min(D[i][j], D[j][i]), and pin
//     the diagonal to 0. Unreachable pairs stay +Inf (PolicyInfiniteFill).
//
// Complexity:
//   • Dijkstra:       O(N·(N+E)·log N) time, O(N²) output.
//   • Floyd–Warshall: O(N³) time, O(N²) output.

package geodesic

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/isomap/bfs"
	"github.com/katalvlaran/isomap/core"
	"github.com/katalvlaran/isomap/dijkstra"
	"github.com/katalvlaran/isomap/internal/parallel"
	"github.com/katalvlaran/isomap/matrix"
)

const opSolve = "geodesic: Solve"

// Result is the outcome of Solve.
type Result struct {
	// Distances is the N×N geodesic matrix: zero diagonal, symmetric,
	// non-negative; +Inf marks unreachable pairs under PolicyInfiniteFill.
	Distances *matrix.Dense

	// Components is the number of connected components of the graph.
	Components int

	// ComponentOf[v] is the component label of vertex v (0 contains vertex 0).
	ComponentOf []int

	// Sizes[c] is the vertex count of component c.
	Sizes []int

	// Method is the algorithm that produced Distances.
	Method Method
}

// Connected reports whether the graph had a single component.
func (r *Result) Connected() bool { return r.Components == 1 }

// Reachable reports whether i and j share a component.
func (r *Result) Reachable(i, j int) bool {
	if i < 0 || j < 0 || i >= len(r.ComponentOf) || j >= len(r.ComponentOf) {
		return false
	}

	return r.ComponentOf[i] == r.ComponentOf[j]
}

// Solve computes all-pairs shortest-path distances of g.
//
// Errors:
//   - core.ErrEmptyInput for a nil or empty graph.
//   - *core.DisconnectedGraphError (core.ErrDisconnectedGraph) under
//     PolicyFail when the graph has two or more components. No matrix is
//     returned in that case.
//   - core.ErrInvalidParameter for negative or NaN edge weights.
func Solve(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil || g.Order() == 0 {
		return nil, fmt.Errorf("%s: %w", opSolve, core.ErrEmptyInput)
	}
	cfg := newConfig(opts...)

	comps, err := bfs.ConnectedComponents(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if comps.Count() > 1 && cfg.policy == core.PolicyFail {
		return nil, fmt.Errorf("%s: %w", opSolve, &core.DisconnectedGraphError{
			Components: comps.Count(),
			Sizes:      append([]int(nil), comps.Sizes...),
		})
	}

	n := g.Order()
	dist, err := matrix.NewPreparedDense(n, n, matrix.WithAllowInfDistances())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	switch cfg.method {
	case MethodFloydWarshall:
		err = floydWarshall(g, dist)
	default:
		err = allDijkstra(g, dist, cfg.workers)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	symmetrize(dist)

	return &Result{
		Distances:   dist,
		Components:  comps.Count(),
		ComponentOf: comps.Labels,
		Sizes:       comps.Sizes,
		Method:      cfg.method,
	}, nil
}

// allDijkstra fills every row of dist with one single-source run.
func allDijkstra(g *core.Graph, dist *matrix.Dense, workers int) error {
	n := g.Order()
	if workers > n {
		workers = n
	}

	return parallel.NewExecutor(workers).Execute(context.Background(), n,
		func(ctx context.Context, _ int, start, end int) error {
			ws := dijkstra.NewWorkspace(n)
			var src int
			for src = start; src < end; src++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				row, err := dist.RowView(src)
				if err != nil {
					return err
				}
				if err = ws.Distances(g, src, row); err != nil {
					return err
				}
			}

			return nil
		})
}

// floydWarshall seeds dist with the edge weights and runs the dense closure.
func floydWarshall(g *core.Graph, dist *matrix.Dense) error {
	if err := dist.Fill(math.Inf(1)); err != nil {
		return err
	}
	n := g.Order()
	var i int
	for i = 0; i < n; i++ {
		if err := dist.Set(i, i, 0); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return fmt.Errorf("edge {%d,%d} weight %g: %w", e.From, e.To, e.Weight, core.ErrInvalidParameter)
		}
		if err := dist.Set(e.From, e.To, e.Weight); err != nil {
			return err
		}
		if err := dist.Set(e.To, e.From, e.Weight); err != nil {
			return err
		}
	}

	return matrix.FloydWarshall(dist)
}

// symmetrize makes dist bit-exactly symmetric with a zero diagonal.
func symmetrize(dist *matrix.Dense) {
	n := dist.Rows()
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i], _ = dist.RowView(i)
	}
	for i = 0; i < n; i++ {
		rows[i][i] = 0
		for j = i + 1; j < n; j++ {
			if rows[j][i] < rows[i][j] {
				rows[i][j] = rows[j][i]
			} else {
				rows[j][i] = rows[i][j]
			}
		}
	}
}
