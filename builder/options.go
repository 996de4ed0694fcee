// SPDX-License-Identifier: MIT
// Package: isomap/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • No hidden globals; everything flows through builderConfig.
//
// AI-Hints:
//   • WithWorkers(1) forces the serial path; results are bit-identical to the
//     parallel path because every pair distance is computed by exactly one
//     worker with the same arithmetic.

package builder

import (
	"runtime"
)

// Option customizes the behavior of a constructor by mutating a
// builderConfig instance before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// workers bounds the goroutines of the pair-distance pass (>= 1).
	workers int
}

// WithWorkers sets the number of goroutines used by the pair-distance pass.
// Panics if n < 1.
// Complexity: O(1) time, O(1) space.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("builder: WithWorkers(n<1)")
	}

	return func(c *builderConfig) {
		c.workers = n
	}
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
//
// Defaults:
//   - workers = runtime.NumCPU()
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
