package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/isomap/core"
)

// Sentinel errors returned by the Dijkstra implementation. Each wraps the
// matching core taxonomy member, so errors.Is works against both.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = fmt.Errorf("dijkstra: graph is nil: %w", core.ErrEmptyInput)

	// ErrVertexNotFound indicates that the source index is outside [0, N).
	ErrVertexNotFound = fmt.Errorf("dijkstra: source vertex not found in graph: %w", core.ErrInvalidParameter)

	// ErrNegativeWeight indicates that a negative (or NaN) edge weight was detected.
	ErrNegativeWeight = fmt.Errorf("dijkstra: negative edge weight encountered: %w", core.ErrInvalidParameter)

	// ErrBadRowLength indicates that the destination row does not have N slots.
	ErrBadRowLength = fmt.Errorf("dijkstra: destination row length must equal vertex count: %w", core.ErrInvalidParameter)
)

// panicBadMaxDistance is the panic message of WithMaxDistance.
const panicBadMaxDistance = "dijkstra: MaxDistance must be non-negative and not NaN"

// noPredecessor marks the source and unreachable vertices in the prev slice.
const noPredecessor = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex index (0 ≤ Source < N).
// ReturnPath  – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance – cap on distances to explore; vertices beyond stay at +Inf.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Source      int     // index of the source vertex
	ReturnPath  bool    // whether to return the predecessor slice
	MaxDistance float64 // maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex index. Defaults to 0.
func Source(src int) Option {
	return func(o *Options) {
		o.Source = src
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics on negative or NaN values (programmer error).
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(panicBadMaxDistance)
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options initialized with defaults for source src.
//
// Defaults:
//   - Source:      <as passed> (validated in Dijkstra).
//   - ReturnPath:  false.
//   - MaxDistance: +Inf (explore all reachable vertices).
func DefaultOptions(src int) Options {
	return Options{
		Source:      src,
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
