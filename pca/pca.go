// Package pca is the linear baseline the Isomap embedding is compared with:
// principal component analysis via a thin SVD of the centered data.
package pca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/isomap/core"
	"github.com/katalvlaran/isomap/matrix"
)

const opFit = "pca: Fit"

// Result is a fitted PCA projection.
type Result struct {
	// Scores is N×d; row i is point i projected on the first d components.
	Scores *matrix.Dense

	// Components is d×D; row r is the r-th principal axis (unit length).
	Components *matrix.Dense

	// Mean is the per-feature mean removed before the SVD.
	Mean []float64

	// Variance[r] is the sample variance along component r (σ²/(N-1)).
	Variance []float64

	// Ratio[r] is component r's share of the total variance.
	Ratio []float64
}

// Fit projects points onto their top d principal components.
//
// Each score column is sign-normalized so that its largest-magnitude entry
// is positive, which keeps plots stable between runs.
//
// Errors:
//   - core.ErrEmptyInput for N = 0.
//   - core.ErrInvalidParameter for a malformed point set or d outside
//     [1, min(N, D)].
//
// Complexity: O(N·D·min(N,D)).
func Fit(points core.PointSet, d int) (*Result, error) {
	if err := points.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}
	n, dim := points.Len(), points.Dim()
	if d < 1 || d > n || d > dim {
		return nil, fmt.Errorf("%s: %w: d=%d with N=%d, D=%d", opFit, core.ErrInvalidParameter, d, n, dim)
	}

	data := make([]float64, 0, n*dim)
	for _, p := range points {
		data = append(data, p...)
	}
	X := mat.NewDense(n, dim, data)

	means := make([]float64, dim)
	var i, j int
	for j = 0; j < dim; j++ {
		col := mat.Col(nil, j, X)
		means[j] = stat.Mean(col, nil)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < dim; j++ {
			X.Set(i, j, X.At(i, j)-means[j])
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(X, mat.SVDThin); !ok {
		return nil, fmt.Errorf("%s: %w: SVD did not converge", opFit, core.ErrInsufficientRank)
	}
	sigma := svd.Values(nil)
	var v mat.Dense
	svd.VTo(&v)

	var projected mat.Dense
	projected.Mul(X, v.Slice(0, dim, 0, d))

	res := &Result{
		Mean:     means,
		Variance: make([]float64, d),
		Ratio:    make([]float64, d),
	}
	var err error
	sq := make([]float64, len(sigma))
	for i = range sigma {
		sq[i] = sigma[i] * sigma[i]
	}
	total := floats.Sum(sq)
	for r := 0; r < d; r++ {
		if n > 1 {
			res.Variance[r] = sq[r] / float64(n-1)
		}
		if total > 0 {
			res.Ratio[r] = sq[r] / total
		}
	}

	if res.Scores, err = matrix.NewDense(n, d); err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}
	if res.Components, err = matrix.NewDense(d, dim); err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}
	for r := 0; r < d; r++ {
		sign := columnSign(&projected, r)
		for i = 0; i < n; i++ {
			_ = res.Scores.Set(i, r, sign*projected.At(i, r))
		}
		for j = 0; j < dim; j++ {
			_ = res.Components.Set(r, j, sign*v.At(j, r))
		}
	}

	return res, nil
}

// columnSign returns -1 when the largest-magnitude entry of column c is
// negative, +1 otherwise.
func columnSign(m mat.Matrix, c int) float64 {
	rows, _ := m.Dims()
	var peak float64
	for i := 0; i < rows; i++ {
		if v := m.At(i, c); math.Abs(v) > math.Abs(peak) {
			peak = v
		}
	}
	if peak < 0 {
		return -1
	}

	return 1
}
