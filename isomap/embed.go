package isomap

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/isomap/builder"
	"github.com/katalvlaran/isomap/core"
	"github.com/katalvlaran/isomap/geodesic"
	"github.com/katalvlaran/isomap/matrix"
	"github.com/katalvlaran/isomap/mds"
)

const opEmbed = "isomap: Embed"

// GraphStats summarizes the neighborhood graph.
type GraphStats struct {
	Nodes       int
	Edges       int
	MinDegree   int
	MaxDegree   int
	MeanDegree  float64
	TotalWeight float64
}

// Timings records the wall time of every stage.
type Timings struct {
	Graph    time.Duration
	Geodesic time.Duration
	Embed    time.Duration
	Total    time.Duration
}

// UnreachableError is returned under core.PolicyInfiniteFill when the graph
// splits. It matches core.ErrInvalidParameter and keeps the solved geodesics,
// +Inf between components, so callers need not solve again.
type UnreachableError struct {
	Policy   core.DisconnectionPolicy
	Geodesic *geodesic.Result
}

// Error implements the error interface.
func (e *UnreachableError) Error() string {
	return fmt.Sprintf("%s: %d components under %v leave unreachable pairs",
		core.ErrInvalidParameter.Error(), e.Geodesic.Components, e.Policy)
}

// Unwrap exposes core.ErrInvalidParameter to errors.Is.
func (e *UnreachableError) Unwrap() error { return core.ErrInvalidParameter }

// Result is the outcome of Embed.
type Result struct {
	// Coords is N×d; row i is the embedding of input point i.
	Coords *matrix.Dense

	// Graph describes the kNN graph the geodesics were measured on.
	Graph GraphStats

	// Geodesic holds the full geodesic matrix and component labelling.
	Geodesic *geodesic.Result

	// Spectrum holds the eigenvalues and diagnostics of the MDS stage.
	Spectrum *mds.Embedding

	// Elapsed is the per-stage timing.
	Elapsed Timings
}

// Embed runs the Isomap pipeline: kNN graph, geodesic distances, classical
// MDS. points is never mutated.
//
// Errors (every one matches a core taxonomy member):
//   - core.ErrEmptyInput for N = 0.
//   - core.ErrInvalidParameter for k outside [1, N-1], d outside [1, N],
//     malformed points or an unknown policy.
//   - core.ErrDisconnectedGraph under PolicyFail when the graph splits.
//   - *UnreachableError (core.ErrInvalidParameter) under PolicyInfiniteFill
//     when the graph splits: unreachable pairs cannot be embedded. The error
//     carries the solved geodesic matrix.
//   - core.ErrInsufficientRank when fewer than d selected eigenvalues are
//     non-negative and WithZeroPadding was not given. Zero eigenvalues (such
//     as the null direction hit by d = N) give zero columns, never an error.
func Embed(points core.PointSet, k, d int, policy core.DisconnectionPolicy, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	log := cfg.logger
	if !policy.Valid() {
		return nil, fmt.Errorf("%s: %w: unknown policy %v", opEmbed, core.ErrInvalidParameter, policy)
	}
	if n := points.Len(); n > 0 && (d < 1 || d > n) {
		return nil, fmt.Errorf("%s: %w: d=%d with N=%d (need 1 ≤ d ≤ N)", opEmbed, core.ErrInvalidParameter, d, n)
	}

	start := time.Now()
	res := &Result{}

	var bopts []builder.Option
	gopts := []geodesic.Option{geodesic.WithPolicy(policy), geodesic.WithMethod(cfg.method)}
	if cfg.workers > 0 {
		bopts = append(bopts, builder.WithWorkers(cfg.workers))
		gopts = append(gopts, geodesic.WithWorkers(cfg.workers))
	}

	g, err := builder.KNearest(points, k, bopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEmbed, err)
	}
	res.Graph = statsOf(g)
	res.Elapsed.Graph = time.Since(start)
	log.Debug("neighborhood graph built",
		zap.Int("n", res.Graph.Nodes),
		zap.Int("k", k),
		zap.Int("edges", res.Graph.Edges),
		zap.Int("min_degree", res.Graph.MinDegree),
		zap.Int("max_degree", res.Graph.MaxDegree),
		zap.Duration("elapsed", res.Elapsed.Graph))

	mark := time.Now()
	geo, err := geodesic.Solve(g, gopts...)
	if err != nil {
		log.Info("geodesic stage failed", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", opEmbed, err)
	}
	res.Geodesic = geo
	res.Elapsed.Geodesic = time.Since(mark)
	log.Debug("geodesic distances solved",
		zap.Stringer("method", geo.Method),
		zap.Int("components", geo.Components),
		zap.Duration("elapsed", res.Elapsed.Geodesic))
	if !geo.Connected() {
		return nil, fmt.Errorf("%s: %w", opEmbed, &UnreachableError{Policy: policy, Geodesic: geo})
	}

	mark = time.Now()
	mopts := []mds.Option{mds.WithSolver(cfg.solver)}
	if cfg.zeroPad {
		mopts = append(mopts, mds.WithZeroPadding())
	}
	if cfg.signConv {
		mopts = append(mopts, mds.WithSignConvention())
	}
	emb, err := mds.Classical(geo.Distances, d, mopts...)
	if err != nil {
		log.Info("embedding stage failed", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", opEmbed, err)
	}
	res.Spectrum = emb
	res.Coords = emb.Coords
	res.Elapsed.Embed = time.Since(mark)
	res.Elapsed.Total = time.Since(start)

	log.Debug("classical MDS done",
		zap.Stringer("solver", cfg.solver),
		zap.Float64s("selected", emb.Selected),
		zap.Float64("negative_mass", emb.NegativeMass),
		zap.Duration("elapsed", res.Elapsed.Embed))
	for _, diag := range emb.Diagnostics {
		log.Warn("embedding axis is zero", zap.Stringer("diagnostic", diag))
	}
	log.Info("isomap embedding complete",
		zap.Int("n", res.Graph.Nodes),
		zap.Int("k", k),
		zap.Int("d", d),
		zap.Duration("total", res.Elapsed.Total))

	return res, nil
}

// statsOf computes degree and weight statistics of g.
func statsOf(g *core.Graph) GraphStats {
	n := g.Order()
	st := GraphStats{
		Nodes:       n,
		Edges:       g.Size(),
		TotalWeight: g.TotalWeight(),
	}
	if n == 0 {
		return st
	}
	st.MinDegree = g.Degree(0)
	var v, deg, sum int
	for v = 0; v < n; v++ {
		deg = g.Degree(v)
		sum += deg
		if deg < st.MinDegree {
			st.MinDegree = deg
		}
		if deg > st.MaxDegree {
			st.MaxDegree = deg
		}
	}
	st.MeanDegree = float64(sum) / float64(n)

	return st
}
