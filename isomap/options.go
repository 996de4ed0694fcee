package isomap

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/isomap/geodesic"
	"github.com/katalvlaran/isomap/mds"
)

// Option configures Embed.
type Option func(*config)

// config is the resolved pipeline configuration.
type config struct {
	logger   *zap.Logger
	workers  int // 0 means each stage's default
	method   geodesic.Method
	solver   mds.Solver
	zeroPad  bool
	signConv bool
}

// WithLogger attaches a structured logger; one event is emitted per stage.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithWorkers bounds the goroutines of the builder and geodesic stages.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("isomap: WithWorkers(n<1)")
	}

	return func(c *config) { c.workers = n }
}

// WithMethod selects the geodesic algorithm (default Dijkstra).
func WithMethod(m geodesic.Method) Option {
	geodesic.WithMethod(m) // validates

	return func(c *config) { c.method = m }
}

// WithSolver selects the MDS eigensolver (default Jacobi).
func WithSolver(s mds.Solver) Option {
	mds.WithSolver(s) // validates

	return func(c *config) { c.solver = s }
}

// WithZeroPadding lets the embedding succeed with zero columns when some of
// the d selected eigenvalues are negative; see mds.WithZeroPadding.
func WithZeroPadding() Option {
	return func(c *config) { c.zeroPad = true }
}

// WithSignConvention makes coordinate signs reproducible; see
// mds.WithSignConvention.
func WithSignConvention() Option {
	return func(c *config) { c.signConv = true }
}

func newConfig(opts ...Option) config {
	c := config{
		logger: zap.NewNop(),
		method: geodesic.MethodDijkstra,
		solver: mds.SolverJacobi,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
