// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomap/matrix"
)

func TestScaleHadamard(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	for name, in := range map[string]matrix.Matrix{"dense": a, "fallback": hide{a}} {
		t.Run(name, func(t *testing.T) {
			sc, err := matrix.Scale(in, -0.5)
			require.NoError(t, err)
			CompareExact(t, [][]float64{{-0.5, -1, -1.5}, {-2, -2.5, -3}}, sc)

			sq, err := matrix.Hadamard(in, a)
			require.NoError(t, err)
			CompareExact(t, [][]float64{{1, 4, 9}, {16, 25, 36}}, sq)
		})
	}

	_, err := matrix.Hadamard(a, MustDense(t, 3, 2))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestScale_KeepsInfPolicy ensures distance matrices keep +Inf through Scale.
func TestScale_KeepsInfPolicy(t *testing.T) {
	d, _ := matrix.NewPreparedDense(2, 2, matrix.WithAllowInfDistances())
	require.NoError(t, d.Set(0, 1, math.Inf(1)))
	sc, err := matrix.Scale(d, 2)
	require.NoError(t, err)
	assert.True(t, math.IsInf(MustAt(t, sc, 0, 1), 1))
	assert.NoError(t, sc.Set(1, 0, math.Inf(1)))
}

// TestEigen_Diagonal returns the diagonal unchanged with Q = I.
func TestEigen_Diagonal(t *testing.T) {
	a := FromRows(t, [][]float64{{3, 0}, {0, -1}})
	vals, q, err := matrix.Eigen(a, matrix.DefaultEigenTolerance, matrix.DefaultEigenSweeps)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, -1}, vals)
	CompareExact(t, [][]float64{{1, 0}, {0, 1}}, q)
}

// TestEigen_Reconstruction checks A·v = λ·v and QᵀQ = I on random symmetric inputs.
func TestEigen_Reconstruction(t *testing.T) {
	for _, n := range []int{1, 2, 5, 12} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := RandSymmetric(t, n, int64(n))
			vals, q, err := matrix.Eigen(a, matrix.DefaultEigenTolerance, matrix.DefaultEigenSweeps)
			require.NoError(t, err)
			require.Len(t, vals, n)

			var k, i int
			for k = 0; k < n; k++ {
				v := column(t, q, k)
				assert.InDelta(t, 1.0, norm2(v), 1e-9, "unit eigenvector %d", k)
				av := matVec(t, a, v)
				for i = 0; i < n; i++ {
					assert.InDelta(t, vals[k]*v[i], av[i], 1e-8, "A·v = λ·v (k=%d,i=%d)", k, i)
				}
			}

			for k = 0; k < n; k++ {
				for i = 0; i < n; i++ {
					var dot float64
					for r := 0; r < n; r++ {
						dot += MustAt(t, q, r, k) * MustAt(t, q, r, i)
					}
					want := 0.0
					if i == k {
						want = 1
					}
					assert.InDelta(t, want, dot, 1e-9, "QᵀQ[%d,%d]", k, i)
				}
			}
		})
	}
}

func TestEigen_Errors(t *testing.T) {
	asym := FromRows(t, [][]float64{{1, 2}, {0, 1}})
	_, _, err := matrix.Eigen(asym, 1e-10, 10)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, _, err = matrix.Eigen(MustDense(t, 2, 3), 1e-10, 10)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	inf, _ := matrix.NewPreparedDense(2, 2, matrix.WithAllowInfDistances())
	require.NoError(t, inf.Set(0, 1, math.Inf(1)))
	require.NoError(t, inf.Set(1, 0, math.Inf(1)))
	_, _, err = matrix.Eigen(inf, 1e-10, 10)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	// Zero sweeps cannot diagonalize a dense matrix.
	_, _, err = matrix.Eigen(RandSymmetric(t, 4, 1), 1e-10, 0)
	assert.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)
}

// TestSymmetricEigen_Order verifies signed-descending order with stable ties.
func TestSymmetricEigen_Order(t *testing.T) {
	a := FromRows(t, [][]float64{
		{-2, 0, 0, 0},
		{0, 5, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
	vals, vecs, err := matrix.SymmetricEigen(a, 1e-12, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 1, 1, -2}, vals, "negative eigenvalues sort by sign, not magnitude")
	// Ties keep diagonal order: the first 1 comes from index 2.
	assert.Equal(t, []float64{0, 0, 1, 0}, column(t, vecs, 1))
	assert.Equal(t, []float64{0, 0, 0, 1}, column(t, vecs, 2))
	assert.Equal(t, []float64{1, 0, 0, 0}, column(t, vecs, 3))
}

func TestSymmetricEigen_Fallback(t *testing.T) {
	a := RandSymmetric(t, 6, 42)
	v1, _, err := matrix.SymmetricEigen(a, 1e-12, 50)
	require.NoError(t, err)
	v2, _, err := matrix.SymmetricEigen(hide{a}, 1e-12, 50)
	require.NoError(t, err)
	assert.Equal(t, v1, v2, "interface path must match the Dense path bit-for-bit")
	for i := 1; i < len(v1); i++ {
		assert.GreaterOrEqual(t, v1[i-1], v1[i])
	}
}
