// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomap/matrix"
)

// seed builds a distance seed: zero diagonal, +Inf for missing edges.
func seed(t *testing.T, n int, edges map[[2]int]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewPreparedDense(n, n, matrix.WithAllowInfDistances())
	require.NoError(t, err)
	require.NoError(t, d.Fill(math.Inf(1)))
	for i := 0; i < n; i++ {
		MustSet(t, d, i, i, 0)
	}
	for e, w := range edges {
		MustSet(t, d, e[0], e[1], w)
		MustSet(t, d, e[1], e[0], w)
	}

	return d
}

func TestFloydWarshall_Path(t *testing.T) {
	edges := map[[2]int]float64{{0, 1}: 1, {1, 2}: 2, {0, 2}: 5}
	for name, wrap := range map[string]func(*matrix.Dense) matrix.Matrix{
		"dense":    func(d *matrix.Dense) matrix.Matrix { return d },
		"fallback": func(d *matrix.Dense) matrix.Matrix { return hide{d} },
	} {
		t.Run(name, func(t *testing.T) {
			d := seed(t, 3, edges)
			require.NoError(t, matrix.FloydWarshall(wrap(d)))
			CompareExact(t, [][]float64{{0, 1, 3}, {1, 0, 2}, {3, 2, 0}}, d)
		})
	}
}

func TestFloydWarshall_Disconnected(t *testing.T) {
	d := seed(t, 4, map[[2]int]float64{{0, 1}: 1, {2, 3}: 1})
	require.NoError(t, matrix.FloydWarshall(d))
	assert.True(t, math.IsInf(MustAt(t, d, 0, 3), 1))
	assert.Equal(t, 1.0, MustAt(t, d, 3, 2))
}

func TestFloydWarshall_BadSeed(t *testing.T) {
	d := seed(t, 2, nil)
	MustSet(t, d, 0, 0, 1)
	assert.ErrorIs(t, matrix.FloydWarshall(d), matrix.ErrBadShape)

	assert.ErrorIs(t, matrix.FloydWarshall(MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
}
