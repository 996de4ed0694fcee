// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest paths (Floyd–Warshall) with deterministic loop order.
//   - Used by the geodesic solver as an equivalent alternative to per-source
//     Dijkstra when N is small; in-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - Square matrix; +Inf means "no edge"; diagonal must be 0 before calling.

package matrix

import (
	"fmt"
	"math"
)

const opFloydWarshall = "FloydWarshall"

// floydWarshallInPlace runs the APSP closure on a square *Dense in-place.
// Loop order is fixed (k → i → j); only strict improvements are written.
// Time: O(n^3); no allocations inside the hot loops.
func floydWarshallInPlace(d *Dense) {
	n := d.r

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	data := d.data

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in-place on m.
//
// Contract:
//   - m must be square (n×n) with a zero diagonal.
//   - +Inf denotes "no edge" off-diagonal; NaN and negative entries are rejected.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (ValidateSquare).
//   - ErrNaNInf for NaN/-Inf, ErrBadShape for a non-zero diagonal or a negative entry.
//
// Determinism:
//   - Loop order is fixed (k → i → j), ensuring stable accumulation order.
//
// Complexity: Time O(n^3), Extra space O(1) (fully in-place).
//
// AI-Hints:
//   - Prefer passing *Dense to trigger the zero-overhead fast path.
//   - Allocate the seed with NewPreparedDense(n, n, WithAllowInfDistances()).
func FloydWarshall(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}
	if err := validateDistanceSeed(m); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}

	if d, ok := m.(*Dense); ok {
		floydWarshallInPlace(d)

		return nil
	}

	n := m.Rows()
	var (
		k, i, j       int
		dik, dkj, dij float64
		err           error
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			if dik, err = m.At(i, k); err != nil {
				return matrixErrorf(opFloydWarshall, err)
			}
			if math.IsInf(dik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				if dkj, err = m.At(k, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if math.IsInf(dkj, 1) {
					continue
				}
				if dij, err = m.At(i, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if dik+dkj < dij {
					if err = m.Set(i, j, dik+dkj); err != nil {
						return matrixErrorf(opFloydWarshall, err)
					}
				}
			}
		}
	}

	return nil
}

// validateDistanceSeed checks the Floyd–Warshall input contract.
func validateDistanceSeed(m Matrix) error {
	n := m.Rows()
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = m.At(i, j)
			switch {
			case math.IsNaN(v) || math.IsInf(v, -1):
				return fmt.Errorf("entry (%d,%d): %w", i, j, ErrNaNInf)
			case v < 0:
				return fmt.Errorf("negative entry (%d,%d)=%g: %w", i, j, v, ErrBadShape)
			case i == j && v != 0:
				return fmt.Errorf("diagonal (%d,%d)=%g: %w", i, j, v, ErrBadShape)
			}
		}
	}

	return nil
}
