// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the centering transforms classical MDS is built from, as
//     deterministic compositions over ewBroadcastSub and Scale.
//
// Exposed API:
//   - CenterColumns(X) -> (Xc, means)  // subtract per-column mean
//   - CenterRows(X)    -> (Xc, means)  // subtract per-row mean
//   - DoubleCenter(S)  -> B            // B = -½·H·S·H, H = I - (1/n)·11ᵀ
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCenterColumns = "CenterColumns"
	opCenterRows    = "CenterRows"
	opDoubleCenter  = "DoubleCenter"
)

// doubleCenterFactor is the scalar of the Gram recovery B = -½·H·S·H.
const doubleCenterFactor = -0.5

// CenterColumns subtracts the per-column mean from every element.
//
// Implementation:
//   - Stage 1: validate X (non-nil).
//   - Stage 2: accumulate column sums in i→j order, divide by r.
//   - Stage 3: broadcast-subtract the means into a fresh Dense.
//
// Returns:
//   - Matrix: centered copy (r×c); X is not mutated.
//   - []float64: column means (len=c).
//
// Errors:
//   - ErrNilMatrix; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(c) means).
//
// AI-Hints:
//   - Column-centering S equals S·H when S is n×n.
func CenterColumns(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)

	var i, j int
	var v float64
	var err error
	if d, ok := X.(*Dense); ok {
		var base int
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opCenterColumns, err)
				}
				means[j] += v
			}
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	Xc, err := ewBroadcastSub(X, means, alongCols)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// CenterRows subtracts the per-row mean from every element.
//
// Returns:
//   - Matrix: centered copy (r×c); X is not mutated.
//   - []float64: row means (len=r).
//
// Errors:
//   - ErrNilMatrix; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(r) means).
//
// AI-Hints:
//   - Row-centering S equals H·S when S is n×n.
func CenterRows(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}

	r, c := X.Rows(), X.Cols()
	means := make([]float64, r)

	var i, j int
	var s, v float64
	var err error
	d, fast := X.(*Dense)
	for i = 0; i < r; i++ {
		s = ZeroSum
		for j = 0; j < c; j++ {
			if fast {
				s += d.data[i*c+j]
				continue
			}
			if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opCenterRows, err)
			}
			s += v
		}
		means[i] = s / float64(c)
	}

	Xc, err := ewBroadcastSub(X, means, alongRows)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}

	return Xc, means, nil
}

// DoubleCenter returns B = -½·H·S·H for a square S, where H = I - (1/n)·11ᵀ.
//
// Implementation:
//   - Stage 1: ValidateSquare(S).
//   - Stage 2: column-center (S·H), then row-center (H·S·H).
//   - Stage 3: scale by -½.
//
// Behavior highlights:
//   - Equal to the explicit product with H up to rounding, at O(n²) instead of O(n³).
//   - Rows and columns of the result sum to ~0.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n²), Space O(n²) (three intermediate buffers).
//
// AI-Hints:
//   - Pass S = D⊙D (Hadamard of a distance matrix) to obtain the classical MDS Gram matrix.
func DoubleCenter(S Matrix) (*Dense, error) {
	if err := ValidateSquare(S); err != nil {
		return nil, matrixErrorf(opDoubleCenter, err)
	}

	cols, _, err := CenterColumns(S)
	if err != nil {
		return nil, matrixErrorf(opDoubleCenter, err)
	}
	both, _, err := CenterRows(cols)
	if err != nil {
		return nil, matrixErrorf(opDoubleCenter, err)
	}
	b, err := Scale(both, doubleCenterFactor)
	if err != nil {
		return nil, matrixErrorf(opDoubleCenter, err)
	}

	return b.(*Dense), nil
}
