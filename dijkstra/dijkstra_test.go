// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate errors, basic distances, path reconstruction,
// MaxDistance, workspace reuse and deterministic tie-breaking.
package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomap/core"
	"github.com/katalvlaran/isomap/dijkstra"
)

// buildGraph creates an n-vertex graph from {u, v, w} triples.
func buildGraph(t testing.TB, n int, edges [][3]float64) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
	assert.ErrorIs(t, err, core.ErrEmptyInput, "sentinel must resolve to the core taxonomy")

	assert.ErrorIs(t, dijkstra.Distances(nil, 0, nil), dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := buildGraph(t, 2, nil)
	for _, src := range []int{-1, 2} {
		_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
		assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
		assert.True(t, errors.Is(err, core.ErrInvalidParameter))
	}
}

func TestDistances_BadRowLength(t *testing.T) {
	g := buildGraph(t, 3, nil)
	err := dijkstra.Distances(g, 0, make([]float64, 2))
	assert.ErrorIs(t, err, dijkstra.ErrBadRowLength)
}

func TestWithMaxDistance_Panics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN()) })
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: small graphs, distances and paths.
// ------------------------------------------------------------------------

func TestDijkstra_SimpleTriangle(t *testing.T) {
	// 0—1(1), 1—2(2), 0—2(5): the detour through 1 is shorter.
	g := buildGraph(t, 3, [][3]float64{{0, 1, 1}, {1, 2, 2}, {0, 2, 5}})

	dist, prev, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	assert.Nil(t, prev, "prev must be nil without WithReturnPath")
	assert.Equal(t, []float64{0, 1, 3}, dist)

	dist, prev, err = dijkstra.Dijkstra(g, dijkstra.Source(2), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2, 0}, dist)
	assert.Equal(t, []int{1, 2, -1}, prev)
	assert.Equal(t, []int{2, 1, 0}, dijkstra.Path(prev, 2, 0))
	assert.Equal(t, []int{2}, dijkstra.Path(prev, 2, 2))
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := buildGraph(t, 4, [][3]float64{{0, 1, 1}, {2, 3, 1}})
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist[2], 1))
	assert.True(t, math.IsInf(dist[3], 1))
	assert.Nil(t, dijkstra.Path(prev, 0, 3))
	assert.Nil(t, dijkstra.Path(prev, 0, 9))
}

func TestDijkstra_MaxDistance(t *testing.T) {
	// Chain 0—1—2—3 with unit weights.
	g := buildGraph(t, 4, [][3]float64{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist[2])
	assert.True(t, math.IsInf(dist[3], 1), "vertices beyond the cap stay unreachable")
}

func TestDijkstra_ZeroWeightDuplicates(t *testing.T) {
	// Duplicate points yield zero-weight edges; they must be traversed.
	g := buildGraph(t, 3, [][3]float64{{0, 1, 0}, {1, 2, 1.5}})
	dist, _, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1.5}, dist)
}

// TestDijkstra_DeterministicTies checks that equal-cost routes resolve to the
// lower-index predecessor on every run.
func TestDijkstra_DeterministicTies(t *testing.T) {
	// Square 0—1—3 and 0—2—3, all unit weights: 3 is reachable via 1 or 2.
	g := buildGraph(t, 4, [][3]float64{{0, 1, 1}, {0, 2, 1}, {1, 3, 1}, {2, 3, 1}})
	for run := 0; run < 5; run++ {
		_, prev, err := dijkstra.Dijkstra(g, dijkstra.WithReturnPath())
		require.NoError(t, err)
		assert.Equal(t, 1, prev[3])
	}
}

// TestWorkspace_Reuse verifies a workspace yields identical rows across sources
// and repeated calls (no leaked state between runs).
func TestWorkspace_Reuse(t *testing.T) {
	g := buildGraph(t, 5, [][3]float64{{0, 1, 2}, {1, 2, 2}, {2, 3, 2}, {3, 4, 2}, {0, 4, 3}})
	ws := dijkstra.NewWorkspace(g.Order())

	rows := make([][]float64, g.Order())
	for src := range rows {
		rows[src] = make([]float64, g.Order())
		require.NoError(t, ws.Distances(g, src, rows[src]))
	}
	again := make([]float64, g.Order())
	require.NoError(t, ws.Distances(g, 0, again))
	assert.Equal(t, rows[0], again)

	for i := range rows {
		for j := range rows {
			assert.Equal(t, rows[i][j], rows[j][i], "undirected distances are symmetric (%d,%d)", i, j)
		}
	}
	assert.Equal(t, []float64{0, 2, 4, 5, 3}, rows[0])
}

func BenchmarkWorkspace_Distances(b *testing.B) {
	const n = 2000
	g, _ := core.NewGraph(n)
	for i := 0; i < n; i++ {
		for _, d := range []int{1, 7, 31} {
			_ = g.AddEdge(i, (i+d)%n, float64(d))
		}
	}
	ws := dijkstra.NewWorkspace(n)
	row := make([]float64, n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ws.Distances(g, i%n, row); err != nil {
			b.Fatal(err)
		}
	}
}
