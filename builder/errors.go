// SPDX-License-Identifier: MIT
// Package: isomap/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Every sentinel wraps a core taxonomy member, so callers may branch on
//     either errors.Is(err, ErrBadK) or errors.Is(err, core.ErrInvalidParameter).
//   • Implementations attach method context via builderErrorf (%w preserved).
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomap/core"
)

// ErrBadK indicates that the neighbor count k is outside [1, N-1].
// Usage: if errors.Is(err, ErrBadK) { /* pick a smaller k or add points */ }.
var ErrBadK = fmt.Errorf("builder: neighbor count out of range: %w", core.ErrInvalidParameter)

// ErrBadPoints indicates a malformed point set (ragged rows, zero dimension,
// non-finite coordinates). The underlying core error is attached with %w.
var ErrBadPoints = fmt.Errorf("builder: invalid point set: %w", core.ErrInvalidParameter)

// ErrPairOutOfRange indicates a Condensed lookup outside [0, N).
var ErrPairOutOfRange = fmt.Errorf("builder: pair index out of range: %w", core.ErrInvalidParameter)

// builderErrorf wraps err with the given method context, producing
// "<Method>: <err>" while keeping the sentinel chain intact for errors.Is.
//
// Complexity: O(1).
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
