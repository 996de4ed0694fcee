// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the private broadcast kernel behind CenterColumns/CenterRows so
//     the tight subtraction loop lives in exactly one place.
//
// Determinism & Performance:
//   - Fixed i→j loop order; Dense fast-path on the flat row-major buffer.
//   - One output allocation; O(r*c) time and space.

package matrix

// broadcastAxis selects which index a mean vector is broadcast along.
type broadcastAxis int

const (
	alongCols broadcastAxis = iota // means[j] subtracted from column j
	alongRows                      // means[i] subtracted from row i
)

// ewBroadcastSub computes out[i,j] = X[i,j] - means[j] (alongCols) or
// X[i,j] - means[i] (alongRows).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(means) does not match the axis).
//
// Complexity: Time O(r*c), Space O(r*c).
func ewBroadcastSub(X Matrix, means []float64, axis broadcastAxis) (*Dense, error) {
	const tag = "broadcastSub"
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	want := c
	if axis == alongRows {
		want = r
	}
	if len(means) != want {
		return nil, matrixErrorf(tag, ErrDimensionMismatch)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	var i, j, base int
	var v float64
	d, fast := X.(*Dense)
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			if fast {
				v = d.data[base+j]
			} else if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			if axis == alongCols {
				out.data[base+j] = v - means[j]
			} else {
				out.data[base+j] = v - means[i]
			}
		}
	}

	return out, nil
}
