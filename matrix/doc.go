// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric layer of the isomap pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe At/Set accessors and an
//     explicit numeric policy (NaN/Inf rejection, +Inf as "no path").
//   - Elementwise kernels: Scale and Hadamard.
//   - Statistics used by classical MDS: CenterColumns, CenterRows and
//     DoubleCenter (B = -½·H·S·H).
//   - A Jacobi eigensolver for symmetric matrices (Eigen) and its sorted
//     facade (SymmetricEigen) returning eigenpairs by signed value, descending.
//   - FloydWarshall, a dense all-pairs shortest-path closure usable as an
//     alternative geodesic solver for small inputs.
//
// Every kernel validates its operands and returns package sentinels wrapped
// with an operation tag; callers match them with errors.Is. Every kernel has
// a *Dense fast path operating on the flat buffer and a generic fallback
// through the Matrix interface; both produce identical results.
package matrix
