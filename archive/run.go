package archive

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// Run is one archived embedding.
type Run struct {
	ID        string
	CreatedAt time.Time

	// Source names the input (a file path or "swissroll").
	Source string

	N, K, D int
	Policy  string
	Method  string
	Solver  string

	Edges        int
	Components   int
	NegativeMass float64
	Elapsed      time.Duration

	// Eigenvalues is the full MDS spectrum, signed descending.
	Eigenvalues []float64

	// Coords is the N×D embedding; List leaves it nil.
	Coords [][]float64
}

// encodeFloats packs xs as little-endian float64s.
func encodeFloats(xs []float64) []byte {
	buf := make([]byte, 8*len(xs))
	for i, x := range xs {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(x))
	}

	return buf
}

// decodeFloats is the inverse of encodeFloats.
func decodeFloats(buf []byte) ([]float64, error) {
	if len(buf)%8 != 0 {
		return nil, fmt.Errorf("archive: blob length %d is not a multiple of 8", len(buf))
	}
	xs := make([]float64, len(buf)/8)
	for i := range xs {
		xs[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[8*i:]))
	}

	return xs, nil
}

// flatten concatenates the rows of a rectangular matrix.
func flatten(rows [][]float64) []float64 {
	if len(rows) == 0 {
		return nil
	}
	out := make([]float64, 0, len(rows)*len(rows[0]))
	for _, r := range rows {
		out = append(out, r...)
	}

	return out
}

// reshape splits flat into rows of width cols.
func reshape(flat []float64, rows, cols int) ([][]float64, error) {
	if rows*cols != len(flat) {
		return nil, fmt.Errorf("archive: %d values do not form a %d×%d matrix", len(flat), rows, cols)
	}
	out := make([][]float64, rows)
	for i := range out {
		out[i] = flat[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return out, nil
}
