// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomap/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the non-*Dense fallback path of a kernel.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// FromRows builds a *Dense from literal rows or fails the test.
func FromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// RandSymmetric returns an n×n symmetric matrix with U(-1,1) entries.
func RandSymmetric(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v = rng.Float64()*2 - 1
			MustSet(t, m, i, j, v)
			MustSet(t, m, j, i, v)
		}
	}

	return m
}

// MustSet writes m[i,j]=v or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d,%v)", i, j, v)
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareExact asserts m equals want bit-for-bit.
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	var i, j int
	for i = range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols of row %d", i)
		for j = range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "m[%d,%d]", i, j)
		}
	}
}

// CompareClose asserts |a[i,j]-b[i,j]| ≤ atol for every cell.
func CompareClose(t testing.TB, a, b matrix.Matrix, atol float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows(), "rows")
	require.Equal(t, a.Cols(), b.Cols(), "cols")
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			require.InDelta(t, MustAt(t, a, i, j), MustAt(t, b, i, j), atol, "cell (%d,%d)", i, j)
		}
	}
}

// matVec returns m·x.
func matVec(t testing.TB, m matrix.Matrix, x []float64) []float64 {
	t.Helper()
	y := make([]float64, m.Rows())
	for i := range y {
		for j, xj := range x {
			y[i] += MustAt(t, m, i, j) * xj
		}
	}

	return y
}

// centered returns -½·H·S·H with H = I - (1/n)·11ᵀ, by explicit products.
func centered(t testing.TB, s matrix.Matrix) [][]float64 {
	t.Helper()
	n := s.Rows()
	h := func(i, j int) float64 {
		v := -1.0 / float64(n)
		if i == j {
			v++
		}

		return v
	}
	hs := make([][]float64, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		hs[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			for k = 0; k < n; k++ {
				hs[i][j] += h(i, k) * MustAt(t, s, k, j)
			}
		}
	}
	out := make([][]float64, n)
	for i = 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			for k = 0; k < n; k++ {
				out[i][j] += hs[i][k] * h(k, j)
			}
			out[i][j] *= -0.5
		}
	}

	return out
}

// column extracts column k of m.
func column(t testing.TB, m matrix.Matrix, k int) []float64 {
	t.Helper()
	out := make([]float64, m.Rows())
	for i := range out {
		out[i] = MustAt(t, m, i, k)
	}

	return out
}

// norm2 returns the Euclidean norm of x.
func norm2(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v * v
	}

	return math.Sqrt(s)
}
