// SPDX-License-Identifier: MIT
// Package: isomap/geodesic
//
// options.go — functional options for Solve.
//
// Contract:
//   • Option constructors panic on nonsensical values (programmer error).
//   • Solve itself never panics; it returns errors wrapping the core taxonomy.

package geodesic

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/katalvlaran/isomap/core"
)

// Method selects the all-pairs shortest-path algorithm.
type Method int

const (
	// MethodDijkstra runs one heap-based Dijkstra per source, in parallel.
	// O(N·(N+E)·log N); the default.
	MethodDijkstra Method = iota

	// MethodFloydWarshall runs the dense O(N³) closure. Same results; only
	// sensible for small N.
	MethodFloydWarshall
)

// Method names accepted by ParseMethod and produced by String.
const (
	methodDijkstraName = "dijkstra"
	methodFWName       = "floyd-warshall"
)

// String returns the canonical method name.
func (m Method) String() string {
	switch m {
	case MethodDijkstra:
		return methodDijkstraName
	case MethodFloydWarshall:
		return methodFWName
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a case-insensitive name to a Method ("" means Dijkstra).
// Accepted: "dijkstra", "floyd-warshall", "fw".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", methodDijkstraName:
		return MethodDijkstra, nil
	case methodFWName, "fw", "floydwarshall":
		return MethodFloydWarshall, nil
	default:
		return 0, fmt.Errorf("geodesic: unknown method %q: %w", s, core.ErrInvalidParameter)
	}
}

// Option configures Solve.
type Option func(*config)

// config is the resolved Solve configuration.
type config struct {
	method  Method
	workers int
	policy  core.DisconnectionPolicy
}

// WithMethod selects the shortest-path algorithm. Panics on unknown values.
func WithMethod(m Method) Option {
	if m != MethodDijkstra && m != MethodFloydWarshall {
		panic("geodesic: WithMethod: unknown method")
	}

	return func(c *config) { c.method = m }
}

// WithWorkers bounds the goroutines of the per-source Dijkstra fan-out.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("geodesic: WithWorkers(n<1)")
	}

	return func(c *config) { c.workers = n }
}

// WithPolicy sets the disconnection policy. Panics on unknown values.
func WithPolicy(p core.DisconnectionPolicy) Option {
	if !p.Valid() {
		panic("geodesic: WithPolicy: unknown policy")
	}

	return func(c *config) { c.policy = p }
}

// newConfig resolves opts against the defaults:
// Dijkstra, runtime.NumCPU() workers, PolicyFail.
func newConfig(opts ...Option) config {
	c := config{
		method:  MethodDijkstra,
		workers: runtime.NumCPU(),
		policy:  core.PolicyFail,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
