// SPDX-License-Identifier: MIT
// Package: isomap/mds
//
// options.go — functional options for Classical.
//
// Contract:
//   • Option constructors panic on nonsensical values (programmer error).
//   • Classical itself never panics.

package mds

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/isomap/core"
	"github.com/katalvlaran/isomap/matrix"
)

// Defaults (single source of truth).
const (
	// DefaultRankTolerance is the relative threshold below which an
	// eigenvalue counts as non-positive: λ ≤ tol·max(1, max|λ|).
	DefaultRankTolerance = 1e-9

	// DefaultSymmetryTolerance is the relative tolerance of the input
	// symmetry check: |D[i][j]-D[j][i]| ≤ tol·max(1, max|D|).
	DefaultSymmetryTolerance = 1e-9
)

// Solver selects the symmetric eigensolver.
type Solver int

const (
	// SolverJacobi is the in-repo cyclic Jacobi solver (matrix.SymmetricEigen).
	// Bit-reproducible across platforms; the default.
	SolverJacobi Solver = iota

	// SolverGonum uses gonum's LAPACK-backed mat.EigenSym; much faster for
	// large N. Ordering follows the same signed-descending rule.
	SolverGonum
)

// Solver names accepted by ParseSolver and produced by String.
const (
	solverJacobiName = "jacobi"
	solverGonumName  = "gonum"
)

// String returns the canonical solver name.
func (s Solver) String() string {
	switch s {
	case SolverJacobi:
		return solverJacobiName
	case SolverGonum:
		return solverGonumName
	default:
		return fmt.Sprintf("Solver(%d)", int(s))
	}
}

// ParseSolver maps a case-insensitive name to a Solver ("" means Jacobi).
func ParseSolver(s string) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", solverJacobiName:
		return SolverJacobi, nil
	case solverGonumName, "lapack":
		return SolverGonum, nil
	default:
		return 0, fmt.Errorf("mds: unknown solver %q: %w", s, core.ErrInvalidParameter)
	}
}

// Option configures Classical.
type Option func(*config)

// config is the resolved Classical configuration.
type config struct {
	solver     Solver
	zeroPad    bool
	signConv   bool
	rankTol    float64
	symTol     float64
	eigenTol   float64
	eigenSweep int
}

// WithZeroPadding turns negative selected eigenvalues into zero columns plus
// Diagnostics instead of an error.
func WithZeroPadding() Option {
	return func(c *config) { c.zeroPad = true }
}

// WithSignConvention flips every output column so that its entry of largest
// magnitude (first on ties) is positive.
func WithSignConvention() Option {
	return func(c *config) { c.signConv = true }
}

// WithSolver selects the eigensolver. Panics on unknown values.
func WithSolver(s Solver) Option {
	if s != SolverJacobi && s != SolverGonum {
		panic("mds: WithSolver: unknown solver")
	}

	return func(c *config) { c.solver = s }
}

// WithRankTolerance sets the relative band within which an eigenvalue
// counts as zero.
// Panics on negative or non-finite tol.
func WithRankTolerance(tol float64) Option {
	mustTolerance("WithRankTolerance", tol)

	return func(c *config) { c.rankTol = tol }
}

// WithSymmetryTolerance sets the relative input symmetry tolerance.
// Panics on negative or non-finite tol.
func WithSymmetryTolerance(tol float64) Option {
	mustTolerance("WithSymmetryTolerance", tol)

	return func(c *config) { c.symTol = tol }
}

// WithEigenTolerance sets the Jacobi convergence threshold.
// Panics on negative or non-finite tol.
func WithEigenTolerance(tol float64) Option {
	mustTolerance("WithEigenTolerance", tol)

	return func(c *config) { c.eigenTol = tol }
}

// WithMaxSweeps caps the Jacobi sweeps. Panics if n < 1.
func WithMaxSweeps(n int) Option {
	if n < 1 {
		panic("mds: WithMaxSweeps(n<1)")
	}

	return func(c *config) { c.eigenSweep = n }
}

func mustTolerance(name string, tol float64) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic("mds: " + name + ": tolerance must be finite and non-negative")
	}
}

// newConfig resolves opts against the documented defaults.
func newConfig(opts ...Option) config {
	c := config{
		solver:     SolverJacobi,
		rankTol:    DefaultRankTolerance,
		symTol:     DefaultSymmetryTolerance,
		eigenTol:   matrix.DefaultEigenTolerance,
		eigenSweep: matrix.DefaultEigenSweeps,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
