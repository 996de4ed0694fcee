package isomap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/isomap/core"
	"github.com/katalvlaran/isomap/geodesic"
	"github.com/katalvlaran/isomap/isomap"
	"github.com/katalvlaran/isomap/matrix"
	"github.com/katalvlaran/isomap/mds"
)

var square = core.PointSet{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// dist returns the Euclidean distance between rows i and j of m.
func dist(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	var sum float64
	for c := 0; c < m.Cols(); c++ {
		a, err := m.At(i, c)
		require.NoError(t, err)
		b, err := m.At(j, c)
		require.NoError(t, err)
		sum += (a - b) * (a - b)
	}

	return math.Sqrt(sum)
}

func TestEmbed_UnitSquareCycle(t *testing.T) {
	res, err := isomap.Embed(square, 2, 2, core.PolicyFail)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Graph.Nodes)
	assert.Equal(t, 4, res.Graph.Edges)
	assert.Equal(t, 2, res.Graph.MinDegree)
	assert.Equal(t, 2, res.Graph.MaxDegree)
	assert.InDelta(t, 4, res.Graph.TotalWeight, 1e-12)
	assert.True(t, res.Geodesic.Connected())

	// Geodesics follow the cycle, so opposite corners are 2 apart.
	d02, _ := res.Geodesic.Distances.At(0, 2)
	assert.InDelta(t, 2, d02, 1e-12)

	assert.InDeltaSlice(t, []float64{2, 2}, res.Spectrum.Selected, 1e-6)
	assert.InDelta(t, math.Sqrt2, dist(t, res.Coords, 0, 1), 1e-6)
	assert.InDelta(t, 2, dist(t, res.Coords, 0, 2), 1e-6)
	assert.Positive(t, res.Spectrum.NegativeMass)
}

func TestEmbed_CompleteGraphRecoversSquare(t *testing.T) {
	res, err := isomap.Embed(square, 3, 2, core.PolicyFail)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Graph.Edges)
	assert.Equal(t, 3, res.Graph.MinDegree)

	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			want := math.Hypot(square[i][0]-square[j][0], square[i][1]-square[j][1])
			assert.InDelta(t, want, dist(t, res.Coords, i, j), 1e-6, "pair %d-%d", i, j)
		}
	}
	assert.InDelta(t, 0, res.Spectrum.NegativeMass, 1e-9)
}

func TestEmbed_Idempotent(t *testing.T) {
	pts := core.PointSet{{0, 0}, {1, 0.2}, {2, 0.1}, {3, 0.4}, {4, 0.3}, {5, 0.6}}
	before := make(core.PointSet, len(pts))
	for i, p := range pts {
		before[i] = append([]float64(nil), p...)
	}

	a, err := isomap.Embed(pts, 2, 1, core.PolicyFail)
	require.NoError(t, err)
	b, err := isomap.Embed(pts, 2, 1, core.PolicyFail)
	require.NoError(t, err)
	assert.Equal(t, before, pts, "input mutated")

	for i := range pts {
		x, _ := a.Coords.At(i, 0)
		y, _ := b.Coords.At(i, 0)
		assert.InDelta(t, math.Abs(x), math.Abs(y), 1e-12)
	}
}

func TestEmbed_SignConventionIsStable(t *testing.T) {
	pts := core.PointSet{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {10, 0}}
	res, err := isomap.Embed(pts, 2, 1, core.PolicyFail, isomap.WithSignConvention())
	require.NoError(t, err)
	// The far point dominates the only axis and must land on the positive side.
	v, _ := res.Coords.At(4, 0)
	assert.Positive(t, v)
}

func TestEmbed_Errors(t *testing.T) {
	_, err := isomap.Embed(nil, 1, 1, core.PolicyFail)
	assert.ErrorIs(t, err, core.ErrEmptyInput)

	_, err = isomap.Embed(core.PointSet{{1, 2}}, 1, 1, core.PolicyFail)
	assert.ErrorIs(t, err, core.ErrInvalidParameter, "N=1 leaves no neighbor")

	for _, k := range []int{0, 4} {
		_, err = isomap.Embed(square, k, 2, core.PolicyFail)
		assert.ErrorIs(t, err, core.ErrInvalidParameter, "k=%d", k)
	}
	for _, d := range []int{0, 5} {
		_, err = isomap.Embed(square, 2, d, core.PolicyFail)
		assert.ErrorIs(t, err, core.ErrInvalidParameter, "d=%d", d)
	}
	_, err = isomap.Embed(square, 2, 2, core.DisconnectionPolicy(9))
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestEmbed_Disconnected(t *testing.T) {
	clusters := core.PointSet{{0, 0}, {0, 1}, {10, 0}, {10, 1}}

	_, err := isomap.Embed(clusters, 1, 2, core.PolicyFail)
	require.ErrorIs(t, err, core.ErrDisconnectedGraph)
	var de *core.DisconnectedGraphError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 2, de.Components)

	_, err = isomap.Embed(clusters, 1, 2, core.PolicyInfiniteFill)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
	assert.NotErrorIs(t, err, core.ErrDisconnectedGraph)

	var ue *isomap.UnreachableError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, core.PolicyInfiniteFill, ue.Policy)
	require.NotNil(t, ue.Geodesic)
	assert.Equal(t, 2, ue.Geodesic.Components)
	d01, _ := ue.Geodesic.Distances.At(0, 1)
	assert.InDelta(t, 1, d01, 1e-12)
	d02, _ := ue.Geodesic.Distances.At(0, 2)
	assert.True(t, math.IsInf(d02, 1))
}

func TestEmbed_CollinearKeepsZeroAxis(t *testing.T) {
	line := core.PointSet{{0}, {1}, {2}, {3}}

	res, err := isomap.Embed(line, 1, 2, core.PolicyFail)
	require.NoError(t, err)
	assert.InDelta(t, 5, res.Spectrum.Selected[0], 1e-9)
	require.Len(t, res.Spectrum.Diagnostics, 1)
	assert.Equal(t, 1, res.Spectrum.Diagnostics[0].Axis)
	assert.Contains(t, res.Spectrum.Diagnostics[0].Reason, "zero")
	for i := range line {
		v, _ := res.Coords.At(i, 1)
		assert.Zero(t, v)
	}
	assert.InDelta(t, 3, dist(t, res.Coords, 0, 3), 1e-9)
}

// TestEmbed_FullDimension checks d = N on exactly Euclidean geodesics: the
// null directions of the centered Gram matrix come back as zero columns.
func TestEmbed_FullDimension(t *testing.T) {
	cases := []struct {
		name   string
		points core.PointSet
		k      int
		zeros  int
	}{
		{"line of three", core.PointSet{{0}, {1}, {2}}, 2, 2},
		{"complete square", square, 3, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := len(tc.points)
			res, err := isomap.Embed(tc.points, tc.k, n, core.PolicyFail)
			require.NoError(t, err)
			assert.Equal(t, n, res.Coords.Cols())
			require.Len(t, res.Spectrum.Diagnostics, tc.zeros)
			for _, diag := range res.Spectrum.Diagnostics {
				assert.Contains(t, diag.Reason, "zero")
			}
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					want, _ := res.Geodesic.Distances.At(i, j)
					assert.InDelta(t, want, dist(t, res.Coords, i, j), 1e-6, "(%d,%d)", i, j)
				}
			}
		})
	}
}

// TestEmbed_InsufficientRank uses the 4-cycle, whose geodesics are not
// Euclidean: the spectrum is {2, 2, 0, -1}.
func TestEmbed_InsufficientRank(t *testing.T) {
	_, err := isomap.Embed(square, 2, 4, core.PolicyFail)
	require.ErrorIs(t, err, core.ErrInsufficientRank)
	var ire *core.InsufficientRankError
	require.ErrorAs(t, err, &ire)
	assert.Equal(t, 3, ire.Usable)

	res, err := isomap.Embed(square, 2, 3, core.PolicyFail)
	require.NoError(t, err)
	require.Len(t, res.Spectrum.Diagnostics, 1)
	assert.Equal(t, 2, res.Spectrum.Diagnostics[0].Axis)

	res, err = isomap.Embed(square, 2, 4, core.PolicyFail, isomap.WithZeroPadding())
	require.NoError(t, err)
	require.Len(t, res.Spectrum.Diagnostics, 2)
	assert.Contains(t, res.Spectrum.Diagnostics[1].Reason, "negative")
	for i := range square {
		v, _ := res.Coords.At(i, 3)
		assert.Zero(t, v)
	}
}

func TestEmbed_OptionsAgree(t *testing.T) {
	pts := core.PointSet{{0, 0}, {2, 0.3}, {1, 1.7}, {3.1, 2.2}, {0.4, 2.9}, {2.5, 4}}
	base, err := isomap.Embed(pts, 5, 2, core.PolicyFail, isomap.WithSignConvention())
	require.NoError(t, err)

	alt, err := isomap.Embed(pts, 5, 2, core.PolicyFail,
		isomap.WithSignConvention(),
		isomap.WithWorkers(3),
		isomap.WithMethod(geodesic.MethodFloydWarshall),
		isomap.WithSolver(mds.SolverGonum))
	require.NoError(t, err)
	assert.Equal(t, geodesic.MethodFloydWarshall, alt.Geodesic.Method)

	// Compare through pairwise distances, which do not depend on axis signs.
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			assert.InDelta(t, dist(t, base.Coords, i, j), dist(t, alt.Coords, i, j), 1e-6)
		}
	}
}

func TestEmbed_LogsStages(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	_, err := isomap.Embed(square, 2, 2, core.PolicyFail, isomap.WithLogger(zap.New(obs)))
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("neighborhood graph built").Len())
	assert.Equal(t, 1, logs.FilterMessage("geodesic distances solved").Len())
	assert.Equal(t, 1, logs.FilterMessage("classical MDS done").Len())
	done := logs.FilterMessage("isomap embedding complete").All()
	require.Len(t, done, 1)
	assert.Equal(t, int64(4), done[0].ContextMap()["n"])
}

func TestWithWorkers_Panics(t *testing.T) {
	assert.Panics(t, func() { isomap.WithWorkers(0) })
	assert.Panics(t, func() { isomap.WithMethod(geodesic.Method(7)) })
	assert.Panics(t, func() { isomap.WithSolver(mds.Solver(7)) })
}

func BenchmarkEmbed(b *testing.B) {
	pts := make(core.PointSet, 200)
	for i := range pts {
		t := 3 * math.Pi * float64(i) / float64(len(pts))
		pts[i] = []float64{t * math.Cos(t), t * math.Sin(t), float64(i%5) * 0.3}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := isomap.Embed(pts, 8, 2, core.PolicyFail); err != nil {
			b.Fatal(err)
		}
	}
}
