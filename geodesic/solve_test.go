package geodesic_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomap/builder"
	"github.com/katalvlaran/isomap/core"
	"github.com/katalvlaran/isomap/geodesic"
	"github.com/katalvlaran/isomap/matrix"
)

// rowsOf returns a copy of m as [][]float64.
func rowsOf(m *matrix.Dense) [][]float64 { return m.RawRows() }

// cloud returns a seeded kNN graph over n random points in the unit square.
func cloud(t testing.TB, n, k int, seed int64) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	pts := make(core.PointSet, n)
	for i := range pts {
		pts[i] = []float64{rng.Float64(), rng.Float64()}
	}
	g, err := builder.KNearest(pts, k)
	require.NoError(t, err)

	return g
}

// twoClusters returns a 6-point graph with components {0,1,2} and {3,4,5}.
func twoClusters(t testing.TB) *core.Graph {
	t.Helper()
	pts := core.PointSet{{0, 0}, {0, 1}, {1, 0}, {100, 100}, {100, 101}, {101, 100}}
	g, err := builder.KNearest(pts, 2)
	require.NoError(t, err)

	return g
}

func TestSolve_Empty(t *testing.T) {
	_, err := geodesic.Solve(nil)
	assert.ErrorIs(t, err, core.ErrEmptyInput)
}

func TestSolve_Path(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(2, 3, 1.5))

	want := [][]float64{
		{0, 1, 3, 4.5},
		{1, 0, 2, 3.5},
		{3, 2, 0, 1.5},
		{4.5, 3.5, 1.5, 0},
	}
	for _, m := range []geodesic.Method{geodesic.MethodDijkstra, geodesic.MethodFloydWarshall} {
		res, err := geodesic.Solve(g, geodesic.WithMethod(m))
		require.NoError(t, err, m.String())
		assert.Equal(t, want, rowsOf(res.Distances), m.String())
		assert.True(t, res.Connected())
		assert.Equal(t, m, res.Method)
	}
}

// TestSolve_MetricProperties checks symmetry, zero diagonal, non-negativity
// and the triangle inequality on a random neighborhood graph.
func TestSolve_MetricProperties(t *testing.T) {
	g := cloud(t, 80, 6, 5)
	res, err := geodesic.Solve(g, geodesic.WithPolicy(core.PolicyInfiniteFill))
	require.NoError(t, err)
	d := rowsOf(res.Distances)
	n := len(d)

	for i := 0; i < n; i++ {
		assert.Zero(t, d[i][i])
		for j := 0; j < n; j++ {
			require.Equal(t, d[i][j], d[j][i], "asymmetry at (%d,%d)", i, j)
			assert.GreaterOrEqual(t, d[i][j], 0.0)
			assert.Equal(t, res.Reachable(i, j), !math.IsInf(d[i][j], 1))
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				if math.IsInf(d[i][k], 1) || math.IsInf(d[k][j], 1) {
					continue
				}
				require.LessOrEqual(t, d[i][j], d[i][k]+d[k][j]+1e-12, "(%d,%d) via %d", i, j, k)
			}
		}
	}

	// Each edge weight bounds the geodesic from above.
	for _, e := range g.Edges() {
		assert.LessOrEqual(t, d[e.From][e.To], e.Weight)
	}
}

func TestSolve_DisconnectedFail(t *testing.T) {
	res, err := geodesic.Solve(twoClusters(t))
	assert.Nil(t, res)
	require.ErrorIs(t, err, core.ErrDisconnectedGraph)

	var dge *core.DisconnectedGraphError
	require.True(t, errors.As(err, &dge))
	assert.Equal(t, 2, dge.Components)
	assert.Equal(t, []int{3, 3}, dge.Sizes)
}

func TestSolve_DisconnectedInfiniteFill(t *testing.T) {
	res, err := geodesic.Solve(twoClusters(t), geodesic.WithPolicy(core.PolicyInfiniteFill))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Components)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, res.ComponentOf)
	assert.False(t, res.Connected())
	assert.False(t, res.Reachable(0, 7))

	d := rowsOf(res.Distances)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if (i < 3) == (j < 3) {
				assert.False(t, math.IsInf(d[i][j], 0), "(%d,%d) same cluster", i, j)
			} else {
				assert.True(t, math.IsInf(d[i][j], 1), "(%d,%d) across clusters", i, j)
			}
		}
	}
	assert.InDelta(t, math.Sqrt2, d[1][2], 1e-15)
}

func TestSolve_FloydWarshallMatchesDijkstra(t *testing.T) {
	g := cloud(t, 60, 5, 9)
	a, err := geodesic.Solve(g, geodesic.WithPolicy(core.PolicyInfiniteFill))
	require.NoError(t, err)
	b, err := geodesic.Solve(g, geodesic.WithPolicy(core.PolicyInfiniteFill), geodesic.WithMethod(geodesic.MethodFloydWarshall))
	require.NoError(t, err)

	da, db := rowsOf(a.Distances), rowsOf(b.Distances)
	for i := range da {
		for j := range da[i] {
			if math.IsInf(da[i][j], 1) {
				assert.True(t, math.IsInf(db[i][j], 1))
				continue
			}
			assert.InDelta(t, da[i][j], db[i][j], 1e-12, "(%d,%d)", i, j)
		}
	}
}

func TestSolve_WorkerInvariance(t *testing.T) {
	g := cloud(t, 150, 7, 21)
	one, err := geodesic.Solve(g, geodesic.WithWorkers(1), geodesic.WithPolicy(core.PolicyInfiniteFill))
	require.NoError(t, err)
	many, err := geodesic.Solve(g, geodesic.WithWorkers(7), geodesic.WithPolicy(core.PolicyInfiniteFill))
	require.NoError(t, err)
	assert.Equal(t, rowsOf(one.Distances), rowsOf(many.Distances))
}

func TestParseMethod(t *testing.T) {
	for in, want := range map[string]geodesic.Method{
		"":               geodesic.MethodDijkstra,
		"Dijkstra":       geodesic.MethodDijkstra,
		" fw ":           geodesic.MethodFloydWarshall,
		"floyd-warshall": geodesic.MethodFloydWarshall,
	} {
		got, err := geodesic.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := geodesic.ParseMethod("bellman-ford")
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
	assert.Equal(t, "Method(9)", geodesic.Method(9).String())
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { geodesic.WithWorkers(0) })
	assert.Panics(t, func() { geodesic.WithMethod(geodesic.Method(5)) })
	assert.Panics(t, func() { geodesic.WithPolicy(core.DisconnectionPolicy(9)) })
}

func BenchmarkSolve(b *testing.B) {
	g := cloud(b, 800, 7, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := geodesic.Solve(g, geodesic.WithPolicy(core.PolicyInfiniteFill)); err != nil {
			b.Fatal(err)
		}
	}
}
