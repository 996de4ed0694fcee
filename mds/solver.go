// SPDX-License-Identifier: MIT
// Package: isomap/mds
//
// solver.go — eigensolver adapters. Both return eigenvalues in signed
// descending order (stable on ties) and an n×n *matrix.Dense whose column k
// is the unit eigenvector of value k.

package mds

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/isomap/matrix"
)

// errGonumFactorize reports that mat.EigenSym did not converge.
var errGonumFactorize = errors.New("mds: gonum EigenSym factorization failed")

// eigen dispatches to the configured solver.
func eigen(b *matrix.Dense, cfg config) ([]float64, *matrix.Dense, error) {
	if cfg.solver == SolverGonum {
		return gonumEigen(b)
	}

	return matrix.SymmetricEigen(b, cfg.eigenTol, cfg.eigenSweep)
}

// gonumEigen factorizes the symmetric part of b with mat.EigenSym.
func gonumEigen(b *matrix.Dense) ([]float64, *matrix.Dense, error) {
	n := b.Rows()
	rows := b.RawRows()
	sym := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sym.SetSym(i, j, 0.5*(rows[i][j]+rows[j][i]))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, errGonumFactorize
	}
	vals := es.Values(nil) // ascending
	var ev mat.Dense
	es.VectorsTo(&ev)

	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return vals[order[x]] > vals[order[y]] })

	sortedVals := make([]float64, n)
	vecs, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	var k, src int
	for k = 0; k < n; k++ {
		src = order[k]
		sortedVals[k] = vals[src]
		for i = 0; i < n; i++ {
			if err = vecs.Set(i, k, ev.At(i, src)); err != nil {
				return nil, nil, err
			}
		}
	}

	return sortedVals, vecs, nil
}
