// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Notes:
//   - validateNaNInf controls whether Set() rejects NaN/Inf at all.
//   - allowInfDistances is a narrow exception for +Inf as "no path" in
//     geodesic distance matrices. Under validation, NaN and -Inf remain
//     rejected even when allowInfDistances=true.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative symmetry tolerance of Eigen inputs.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultAllowInfDistances permits +Inf values to represent "no path" in
	// distance matrices.
	DefaultAllowInfDistances = false

	// DefaultEigenTolerance is the off-diagonal threshold at which Jacobi stops.
	DefaultEigenTolerance = 1e-10

	// DefaultEigenSweeps caps the number of cyclic Jacobi sweeps.
	DefaultEigenSweeps = 100
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	validateNaNInf    bool // DefaultValidateNaNInf
	allowInfDistances bool // DefaultAllowInfDistances (+Inf as "no path")
}

// WithValidateNaNInf enables strict finite-value validation.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation on Set.
// Use only for scratch buffers whose producers guarantee finiteness.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowInfDistances permits +Inf in Set, the "unreachable" marker of
// geodesic distance matrices. NaN and -Inf stay rejected.
func WithAllowInfDistances() Option {
	return func(o *Options) { o.allowInfDistances = true }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf:    DefaultValidateNaNInf,
		allowInfDistances: DefaultAllowInfDistances,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
