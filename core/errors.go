package core

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every pipeline stage. Stages wrap them with
// operation context ("builder: KNearest: %w"); callers branch with errors.Is.
var (
	// ErrInvalidParameter indicates k or d out of range relative to N, or a
	// structurally invalid input (ragged points, non-finite values, bad weights).
	ErrInvalidParameter = errors.New("core: invalid parameter")

	// ErrEmptyInput indicates an empty point set (N = 0) or an empty graph/matrix.
	ErrEmptyInput = errors.New("core: empty input")

	// ErrDisconnectedGraph indicates the neighborhood graph has two or more
	// connected components while PolicyFail is in effect.
	ErrDisconnectedGraph = errors.New("core: neighborhood graph is disconnected")

	// ErrInsufficientRank indicates fewer than d non-negative eigenvalues
	// were found and zero-padding was not requested.
	ErrInsufficientRank = errors.New("core: insufficient rank")
)

// DisconnectedGraphError reports how the neighborhood graph fell apart.
// It matches ErrDisconnectedGraph under errors.Is.
type DisconnectedGraphError struct {
	// Components is the number of connected components (always ≥ 2).
	Components int

	// Sizes holds the vertex count of each component, ordered by the
	// smallest vertex index the component contains.
	Sizes []int
}

// Error implements the error interface.
func (e *DisconnectedGraphError) Error() string {
	return fmt.Sprintf("%s: %d components (sizes %v)", ErrDisconnectedGraph.Error(), e.Components, e.Sizes)
}

// Is makes errors.Is(err, ErrDisconnectedGraph) succeed.
func (e *DisconnectedGraphError) Is(target error) bool {
	return target == ErrDisconnectedGraph
}

// InsufficientRankError reports how many usable eigen-directions existed.
// It matches ErrInsufficientRank under errors.Is.
type InsufficientRankError struct {
	// Requested is the target dimension d.
	Requested int

	// Usable is the number of non-negative eigenvalues among the top d.
	Usable int

	// Selected holds the top-d eigenvalues in signed descending order.
	Selected []float64
}

// Error implements the error interface.
func (e *InsufficientRankError) Error() string {
	return fmt.Sprintf("%s: %d of %d requested directions have non-negative eigenvalues %v",
		ErrInsufficientRank.Error(), e.Usable, e.Requested, e.Selected)
}

// Is makes errors.Is(err, ErrInsufficientRank) succeed.
func (e *InsufficientRankError) Is(target error) bool {
	return target == ErrInsufficientRank
}

// invalidf wraps ErrInvalidParameter with a formatted reason.
func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
