package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/isomap/core"
	"github.com/katalvlaran/isomap/dataset"
	"github.com/katalvlaran/isomap/geodesic"
	"github.com/katalvlaran/isomap/internal/config"
	"github.com/katalvlaran/isomap/isomap"
	"github.com/katalvlaran/isomap/mds"
	"github.com/katalvlaran/isomap/render"
)

// swissRollSource is the pseudo-path that generates a swiss roll instead of
// reading a file.
const swissRollSource = "swissroll"

// pipelineFlags are the embedding flags shared by embed and compare. Only
// flags the user set override the configuration.
type pipelineFlags struct {
	neighbors, dims, subset, workers int
	seed                             int64
	policy, method, solver           string
	zeroPad, noSignFix               bool
	samplesAsColumns, autoOrient     bool
	format, output                   string
}

func (p *pipelineFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&p.neighbors, "neighbors", "k", 7, "neighbors per point in the kNN graph")
	f.IntVarP(&p.dims, "dims", "d", 2, "output dimensions")
	f.IntVar(&p.subset, "subset", 1000, "random subset size (0 keeps every point)")
	f.Int64Var(&p.seed, "seed", 42, "subsampling seed (0 selects the default seed)")
	f.IntVar(&p.workers, "workers", 0, "goroutines per stage (0 = all CPUs)")
	f.StringVar(&p.policy, "policy", "fail", "disconnected graph policy: fail or infinite-fill")
	f.StringVar(&p.method, "method", "dijkstra", "geodesic method: dijkstra or floyd-warshall")
	f.StringVar(&p.solver, "solver", "jacobi", "eigensolver: jacobi or gonum")
	f.BoolVar(&p.zeroPad, "zero-pad", false, "zero-pad axes with a negative eigenvalue instead of failing")
	f.BoolVar(&p.noSignFix, "no-sign-convention", false, "keep raw eigenvector signs")
	f.BoolVar(&p.samplesAsColumns, "samples-as-columns", false, "input stores one sample per column")
	f.BoolVar(&p.autoOrient, "auto-orient", false, "transpose when the input has more rows than columns")
	f.StringVar(&p.format, "format", "terminal", "output format: terminal or csv")
	f.StringVarP(&p.output, "output", "o", "", "write output to this file instead of stdout")
}

// apply copies every changed flag into cfg.
func (p *pipelineFlags) apply(cmd *cobra.Command, cfg *config.AppConfig) {
	f := cmd.Flags()
	if f.Changed("neighbors") {
		cfg.Embed.Neighbors = p.neighbors
	}
	if f.Changed("dims") {
		cfg.Embed.Dims = p.dims
	}
	if f.Changed("subset") {
		cfg.Embed.SubsetSize = p.subset
	}
	if f.Changed("seed") {
		cfg.Embed.Seed = p.seed
	}
	if f.Changed("workers") {
		cfg.Embed.Workers = p.workers
	}
	if f.Changed("policy") {
		cfg.Embed.Policy = p.policy
	}
	if f.Changed("method") {
		cfg.Embed.Method = p.method
	}
	if f.Changed("solver") {
		cfg.Embed.Solver = p.solver
	}
	if f.Changed("zero-pad") {
		cfg.Embed.ZeroPad = p.zeroPad
	}
	if f.Changed("no-sign-convention") {
		cfg.Embed.SignFix = !p.noSignFix
	}
	if f.Changed("samples-as-columns") {
		cfg.Data.SamplesAsColumns = p.samplesAsColumns
	}
	if f.Changed("auto-orient") {
		cfg.Data.AutoOrient = p.autoOrient
	}
}

// renderer picks the output renderer for p.format.
func (p *pipelineFlags) renderer(cfg *config.AppConfig) (render.Renderer, error) {
	switch p.format {
	case "terminal", "":
		return render.Terminal{Width: cfg.Render.Width, Height: cfg.Render.Height, EqualAxes: true}, nil
	case "csv":
		return render.CSV{Header: true}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want terminal or csv): %w", p.format, core.ErrInvalidParameter)
	}
}

// writer opens p.output, or returns the command's stdout. The returned
// close function is never nil.
func (p *pipelineFlags) writer(cmd *cobra.Command) (io.Writer, func() error, error) {
	if p.output == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(p.output)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}

// loadPoints reads source (a file path or "swissroll") and subsamples it.
func (a *app) loadPoints(source string) (core.PointSet, error) {
	cfg := a.cfg
	var (
		points core.PointSet
		err    error
	)
	if source == swissRollSource {
		n := cfg.Embed.SubsetSize
		if n <= 0 {
			n = dataset.DefaultSubsetSize
		}
		points, _, err = dataset.SwissRoll(n, 0, cfg.Embed.Seed)
	} else {
		var opts []dataset.LoadOption
		if cfg.Data.SamplesAsColumns {
			opts = append(opts, dataset.WithSamplesAsColumns())
		}
		if cfg.Data.AutoOrient {
			opts = append(opts, dataset.WithAutoOrient())
		}
		points, err = dataset.LoadFile(source, opts...)
	}
	if err != nil {
		return nil, err
	}
	a.log.Info("dataset loaded",
		zap.String("source", source),
		zap.Int("n", points.Len()),
		zap.Int("dim", points.Dim()))

	if size := cfg.Embed.SubsetSize; size > 0 && size < points.Len() {
		points, _, err = dataset.Subsample(points, size, cfg.Embed.Seed)
		if err != nil {
			return nil, err
		}
		a.log.Info("dataset subsampled", zap.Int("n", points.Len()), zap.Int64("seed", cfg.Embed.Seed))
	}

	return points, nil
}

// embed runs the pipeline with the configured options.
func (a *app) embed(points core.PointSet) (*isomap.Result, error) {
	ec := a.cfg.Embed
	policy, err := core.ParsePolicy(ec.Policy)
	if err != nil {
		return nil, err
	}
	method, err := geodesic.ParseMethod(ec.Method)
	if err != nil {
		return nil, err
	}
	solver, err := mds.ParseSolver(ec.Solver)
	if err != nil {
		return nil, err
	}

	opts := []isomap.Option{
		isomap.WithLogger(a.log),
		isomap.WithMethod(method),
		isomap.WithSolver(solver),
	}
	if ec.Workers > 0 {
		opts = append(opts, isomap.WithWorkers(ec.Workers))
	}
	if ec.ZeroPad {
		opts = append(opts, isomap.WithZeroPadding())
	}
	if ec.SignFix {
		opts = append(opts, isomap.WithSignConvention())
	}

	return isomap.Embed(points, ec.Neighbors, ec.Dims, policy, opts...)
}
