// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// scalar scaling, element-wise product and the symmetric Jacobi eigensolver.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast path on the flat buffer and a generic
//     At/Set fallback with the same loop order (identical results).
//   - Errors are package sentinels wrapped via matrixErrorf(op, err).

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opScale          = "Scale"
	opEigen          = "Eigen"
	opSymmetricEigen = "SymmetricEigen"
	opHadamard       = "Hadamard"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := newLike(m, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Classical MDS uses it to square distances: S = D ⊙ D.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Hadamard(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var n, idx int
			n = rows * cols
			for idx = 0; idx < n; idx++ {
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			res.data[i*cols+j] = av * bv
		}
	}

	return res, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// cyclic Jacobi sweeps.
//
// Implementation:
//   - Stage 1: validate a finite, square input symmetric within a scale-aware
//     tolerance; copy it into a work buffer as (A+Aᵀ)/2 so rotations act on
//     an exactly symmetric matrix.
//   - Stage 2: each sweep visits every pair p<q in row-major order and
//     applies the rotation that zeroes A[p,q]; rotations accumulate into Q.
//   - Stage 3: stop once the off-diagonal Frobenius norm is ≤ tol·max(1,‖A‖F).
//
// Inputs:
//   - m: symmetric Matrix; n := m.Rows().
//   - tol: relative convergence threshold (typ. 1e-10..1e-12 for float64).
//   - maxSweeps: cap on full sweeps (each sweep is n(n-1)/2 rotations).
//
// Returns:
//   - []float64: eigenvalues in diagonal order (unsorted).
//   - Matrix: Q whose columns are the matching orthonormal eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNaNInf (non-finite
//     entry or tol), ErrAsymmetry, ErrMatrixEigenFailed (budget exhausted).
//
// Determinism:
//   - Fixed pair order and update order produce bit-identical results.
//
// Complexity:
//   - Time O(sweeps · n³), Space O(n²). Convergence is quadratic; 6–12 sweeps
//     are typical for double precision.
//
// AI-Hints:
//   - Use SymmetricEigen when you need eigenpairs ordered by value.
func Eigen(m Matrix, tol float64, maxSweeps int) ([]float64, Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if isNonFinite(tol) || tol < 0 {
		return nil, nil, matrixErrorf(opEigen, ErrNaNInf)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := a.r

	// Asymmetry tolerance follows the magnitude of the data.
	var maxAbs float64
	for _, v := range a.data {
		if math.Abs(v) > maxAbs {
			maxAbs = math.Abs(v)
		}
	}
	if err = ValidateSymmetric(a, DefaultEpsilon*math.Max(1, maxAbs)); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Work buffer: exact symmetric average.
	w, _ := NewPreparedDense(n, n, WithNoValidateNaNInf())
	q, _ := NewPreparedDense(n, n, WithNoValidateNaNInf())
	var i, j int
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1
		w.data[i*n+i] = a.data[i*n+i]
		for j = i + 1; j < n; j++ {
			w.data[i*n+j] = 0.5 * (a.data[i*n+j] + a.data[j*n+i])
			w.data[j*n+i] = w.data[i*n+j]
		}
	}

	var (
		sweep              int
		p, r               int
		off, fro, limit    float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		theta, t, c, s     float64
	)
	fro = frobenius(w)
	limit = tol * math.Max(1, fro)

	for sweep = 0; ; sweep++ {
		off = offDiagonalNorm(w)
		if off <= limit {
			break
		}
		if sweep >= maxSweeps {
			return nil, nil, matrixErrorf(opEigen, fmt.Errorf("off-diagonal %.3g after %d sweeps: %w", off, maxSweeps, ErrMatrixEigenFailed))
		}

		for p = 0; p < n-1; p++ {
			for r = p + 1; r < n; r++ {
				apq = w.data[p*n+r]
				if apq == 0 {
					continue
				}
				app = w.data[p*n+p]
				aqq = w.data[r*n+r]

				// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1)); c = 1/√(1+t²); s = t·c
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				for i = 0; i < n; i++ {
					if i == p || i == r {
						continue
					}
					aip = w.data[i*n+p]
					aiq = w.data[i*n+r]
					w.data[i*n+p] = c*aip - s*aiq
					w.data[p*n+i] = w.data[i*n+p]
					w.data[i*n+r] = s*aip + c*aiq
					w.data[r*n+i] = w.data[i*n+r]
				}
				w.data[p*n+p] = app - t*apq
				w.data[r*n+r] = aqq + t*apq
				w.data[p*n+r], w.data[r*n+p] = 0, 0

				for i = 0; i < n; i++ {
					qip = q.data[i*n+p]
					qiq = q.data[i*n+r]
					q.data[i*n+p] = c*qip - s*qiq
					q.data[i*n+r] = s*qip + c*qiq
				}
			}
		}
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = w.data[i*n+i]
	}
	q.validateNaNInf = DefaultValidateNaNInf

	return eigs, q, nil
}

// SymmetricEigen is Eigen with eigenpairs ordered by signed eigenvalue,
// descending; equal eigenvalues keep their diagonal order (stable).
//
// Returns:
//   - []float64: eigenvalues λ0 ≥ λ1 ≥ … ≥ λn-1.
//   - *Dense: n×n matrix whose column k is the unit eigenvector of λk.
//
// Errors:
//   - Same as Eigen, tagged "SymmetricEigen".
//
// Complexity:
//   - Eigen cost plus O(n log n + n²) for the permutation.
func SymmetricEigen(m Matrix, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	vals, vecs, err := Eigen(m, tol, maxSweeps)
	if err != nil {
		return nil, nil, matrixErrorf(opSymmetricEigen, err)
	}
	q := vecs.(*Dense)
	n := len(vals)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return vals[order[x]] > vals[order[y]] })

	sortedVals := make([]float64, n)
	sortedVecs, _ := NewDense(n, n)
	var i, k, src int
	for k = 0; k < n; k++ {
		src = order[k]
		sortedVals[k] = vals[src]
		for i = 0; i < n; i++ {
			sortedVecs.data[i*n+k] = q.data[i*n+src]
		}
	}

	return sortedVals, sortedVecs, nil
}

// offDiagonalNorm returns sqrt(Σ_{i≠j} A[i,j]²) for a square *Dense.
func offDiagonalNorm(a *Dense) float64 {
	n := a.r
	var i, j int
	var s float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			s += 2 * a.data[i*n+j] * a.data[i*n+j]
		}
	}

	return math.Sqrt(s)
}

// frobenius returns the Frobenius norm of a *Dense.
func frobenius(a *Dense) float64 {
	var s float64
	for _, v := range a.data {
		s += v * v
	}

	return math.Sqrt(s)
}

// toDense returns m itself when it already is a *Dense, otherwise a copy.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	d, err := NewPreparedDense(rows, cols, WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			d.data[i*cols+j] = v
		}
	}
	d.validateNaNInf = DefaultValidateNaNInf

	return d, nil
}

// newLike allocates a rows×cols Dense inheriting the numeric policy of m
// when m is a *Dense (so +Inf distance matrices survive Scale).
func newLike(m Matrix, rows, cols int) (*Dense, error) {
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		res.validateNaNInf = d.validateNaNInf
		res.allowInf = d.allowInf
	}

	return res, nil
}
