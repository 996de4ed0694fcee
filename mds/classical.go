// SPDX-License-Identifier: MIT
// Package: isomap/mds
//
// classical.go — classical (Torgerson) multidimensional scaling.
//
// Implementation:
//   • Stage 1: validate D (non-nil, square, finite, symmetric) and 1 ≤ d ≤ N.
//   • Stage 2: S = D∘D; B = −½·H·S·H via matrix.DoubleCenter.
//   • Stage 3: eigendecompose B; eigenpairs ordered by signed value,
//     descending, ties by original index. Absolute values are never used for
//     ranking: a large negative eigenvalue must not outrank a positive one.
//   • Stage 4: column r of the embedding is v_r·sqrt(λ_r) for each positive
//     λ_r. A λ_r that is zero within tolerance yields a zero column and a
//     diagnostic; a negative one is an error unless zero padding was requested.
//
// Complexity: O(N²) for Stages 1–2; Stage 3 dominates with O(sweeps·N³)
// (Jacobi) or O(N³) (gonum).

package mds

import (
	"fmt"
	"math"

	"github.com/katalvlaran/isomap/core"
	"github.com/katalvlaran/isomap/matrix"
)

const opClassical = "mds: Classical"

// Diagnostic describes an output axis that carries no information.
type Diagnostic struct {
	Axis       int     // 0-based output column
	Eigenvalue float64 // the selected eigenvalue of that axis
	Reason     string  // human-readable explanation
}

// String renders the diagnostic for logs.
func (d Diagnostic) String() string {
	return fmt.Sprintf("axis %d: eigenvalue %.6g: %s", d.Axis, d.Eigenvalue, d.Reason)
}

// Reasons reported in Diagnostic.Reason.
const (
	reasonZero     = "eigenvalue is zero within tolerance; column is zero"
	reasonNegative = "eigenvalue is negative (non-Euclidean geodesics); column zero-padded"
)

// Embedding is the result of Classical.
type Embedding struct {
	// Coords is N×d; row i is the embedding of point i.
	Coords *matrix.Dense

	// Eigenvalues holds all N eigenvalues of B in signed descending order.
	Eigenvalues []float64

	// Selected holds the top d eigenvalues (Eigenvalues[:d]).
	Selected []float64

	// Explained[r] is Selected[r]'s share of the total positive spectrum
	// (0 for unusable axes).
	Explained []float64

	// Diagnostics lists zero columns; empty when all d axes are positive.
	Diagnostics []Diagnostic

	// NegativeMass is Σ|λ| over negative eigenvalues divided by Σ|λ| over all
	// eigenvalues; 0 for perfectly Euclidean-embeddable distances.
	NegativeMass float64

	// Threshold is the tolerance band: |λ| ≤ Threshold counts as zero and
	// λ < -Threshold as negative.
	Threshold float64
}

// Dim returns the embedding dimension d.
func (e *Embedding) Dim() int { return len(e.Selected) }

// Usable returns the number of axes backed by a positive eigenvalue.
func (e *Embedding) Usable() int { return len(e.Selected) - len(e.Diagnostics) }

// Classical embeds the N×N distance matrix dist into d dimensions.
//
// Errors:
//   - core.ErrEmptyInput for a nil or 0×0 matrix.
//   - core.ErrInvalidParameter for d < 1, d > N, a non-square or asymmetric
//     matrix, or any NaN/±Inf entry (infinite-fill geodesics included).
//   - *core.InsufficientRankError (core.ErrInsufficientRank) when fewer than
//     d selected eigenvalues are non-negative (λ ≥ -Threshold) and
//     WithZeroPadding is not set. Zero eigenvalues never fail: their columns
//     are zero and listed in Diagnostics.
//   - core.ErrInsufficientRank wrapping matrix.ErrMatrixEigenFailed when the
//     eigensolver does not converge.
func Classical(dist matrix.Matrix, d int, opts ...Option) (*Embedding, error) {
	cfg := newConfig(opts...)
	if err := validate(dist, d, cfg); err != nil {
		return nil, err
	}
	n := dist.Rows()

	sq, err := matrix.Hadamard(dist, dist)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opClassical, core.ErrInvalidParameter, err)
	}
	b, err := matrix.DoubleCenter(sq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opClassical, core.ErrInvalidParameter, err)
	}

	vals, vecs, err := eigen(b, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opClassical, core.ErrInsufficientRank, err)
	}

	emb := &Embedding{
		Eigenvalues: vals,
		Selected:    append([]float64(nil), vals[:d]...),
		Explained:   make([]float64, d),
		Threshold:   cfg.rankTol * math.Max(1, spectralRadius(vals)),
	}
	emb.NegativeMass = negativeMass(vals)

	nonNeg := 0
	for nonNeg < d && emb.Selected[nonNeg] >= -emb.Threshold {
		nonNeg++
	}
	if nonNeg < d && !cfg.zeroPad {
		return nil, fmt.Errorf("%s: %w", opClassical, &core.InsufficientRankError{
			Requested: d,
			Usable:    nonNeg,
			Selected:  append([]float64(nil), emb.Selected...),
		})
	}

	coords, err := matrix.NewDense(n, d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opClassical, err)
	}
	positive := positiveSum(vals, emb.Threshold)
	var i, r int
	var scale, v float64
	for r = 0; r < d; r++ {
		lambda := emb.Selected[r]
		if lambda <= emb.Threshold {
			reason := reasonZero
			if lambda < -emb.Threshold {
				reason = reasonNegative
			}
			emb.Diagnostics = append(emb.Diagnostics, Diagnostic{Axis: r, Eigenvalue: lambda, Reason: reason})
			continue
		}
		emb.Explained[r] = lambda / positive
		scale = math.Sqrt(lambda)
		for i = 0; i < n; i++ {
			v, _ = vecs.At(i, r)
			_ = coords.Set(i, r, v*scale)
		}
	}
	if cfg.signConv {
		normalizeSigns(coords)
	}
	emb.Coords = coords

	return emb, nil
}

// validate maps structural problems of dist and d onto the core taxonomy.
func validate(dist matrix.Matrix, d int, cfg config) error {
	if err := matrix.ValidateNotNil(dist); err != nil {
		return fmt.Errorf("%s: %w: %w", opClassical, core.ErrEmptyInput, err)
	}
	if dist.Rows() == 0 || dist.Cols() == 0 {
		return fmt.Errorf("%s: %w", opClassical, core.ErrEmptyInput)
	}
	if err := matrix.ValidateSquare(dist); err != nil {
		return fmt.Errorf("%s: %w: %w", opClassical, core.ErrInvalidParameter, err)
	}
	n := dist.Rows()
	if d < 1 || d > n {
		return fmt.Errorf("%s: %w: d=%d with N=%d (need 1 ≤ d ≤ N)", opClassical, core.ErrInvalidParameter, d, n)
	}
	if err := matrix.ValidateFinite(dist); err != nil {
		return fmt.Errorf("%s: %w: %w", opClassical, core.ErrInvalidParameter, err)
	}
	tol := cfg.symTol * math.Max(1, maxAbs(dist))
	if err := matrix.ValidateSymmetric(dist, tol); err != nil {
		return fmt.Errorf("%s: %w: %w", opClassical, core.ErrInvalidParameter, err)
	}

	return nil
}

// normalizeSigns flips each column whose largest-magnitude entry (first on
// ties) is negative.
func normalizeSigns(m *matrix.Dense) {
	rows, cols := m.Shape()
	var i, j int
	var v, peak float64
	for j = 0; j < cols; j++ {
		peak = 0
		for i = 0; i < rows; i++ {
			v, _ = m.At(i, j)
			if math.Abs(v) > math.Abs(peak) {
				peak = v
			}
		}
		if peak >= 0 {
			continue
		}
		for i = 0; i < rows; i++ {
			v, _ = m.At(i, j)
			_ = m.Set(i, j, -v)
		}
	}
}

func maxAbs(m matrix.Matrix) float64 {
	var out float64
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j)
			if a := math.Abs(v); a > out {
				out = a
			}
		}
	}

	return out
}

func spectralRadius(vals []float64) float64 {
	var out float64
	for _, v := range vals {
		if a := math.Abs(v); a > out {
			out = a
		}
	}

	return out
}

func negativeMass(vals []float64) float64 {
	var neg, total float64
	for _, v := range vals {
		total += math.Abs(v)
		if v < 0 {
			neg -= v
		}
	}
	if total == 0 {
		return 0
	}

	return neg / total
}

func positiveSum(vals []float64, threshold float64) float64 {
	var sum float64
	for _, v := range vals {
		if v > threshold {
			sum += v
		}
	}

	return sum
}
