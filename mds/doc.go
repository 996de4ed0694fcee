// Package mds implements classical multidimensional scaling: given an N×N
// matrix of pairwise distances it finds N points in R^d whose Euclidean
// distances reproduce them as closely as a rank-d spectrum allows.
//
// Eigenpairs are ranked by signed eigenvalue, descending. A negative
// eigenvalue means the distances are not Euclidean-embeddable along that
// direction; it is reported (NegativeMass, Diagnostics) and never promoted
// by taking its absolute value.
//
// A selected eigenvalue that is zero within tolerance gives a zero column
// listed in Diagnostics; the centered Gram matrix always has one, so d = N is
// a valid request. When fewer than d of the selected eigenvalues are
// non-negative, Classical returns *core.InsufficientRankError unless
// WithZeroPadding is given, in which case the negative axes are zero columns
// listed in Diagnostics too.
//
// Eigenvector signs are arbitrary; WithSignConvention makes them
// reproducible for a given solver.
package mds
