package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/isomap/archive"
	"github.com/katalvlaran/isomap/isomap"
	"github.com/katalvlaran/isomap/render"
)

func (a *app) embedCmd() *cobra.Command {
	var (
		p         pipelineFlags
		noArchive bool
	)
	cmd := &cobra.Command{
		Use:   "embed <data|swissroll>",
		Short: "Embed a dataset with Isomap",
		Long: "Embed reads a CSV or JSON point file (or generates a swiss roll), builds the\n" +
			"k-nearest-neighbor graph, measures geodesic distances and unfolds them with\n" +
			"classical MDS. The run is archived unless --no-archive is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p.apply(cmd, a.cfg)
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			rend, err := p.renderer(a.cfg)
			if err != nil {
				return err
			}
			points, err := a.loadPoints(args[0])
			if err != nil {
				return err
			}
			res, err := a.embed(points)
			if err != nil {
				return err
			}

			w, closeOut, err := p.writer(cmd)
			if err != nil {
				return err
			}
			panel := render.Panel{
				Title:  fmt.Sprintf("Isomap k=%d", a.cfg.Embed.Neighbors),
				XLabel: "c1",
				YLabel: "c2",
				Coords: res.Coords,
			}
			if err = rend.Render(w, panel); err != nil {
				_ = closeOut()
				return err
			}
			if err = closeOut(); err != nil {
				return err
			}

			if noArchive {
				return nil
			}
			id, err := a.archiveRun(args[0], res)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "archived run %s\n", id)

			return nil
		},
	}
	p.register(cmd)
	cmd.Flags().BoolVar(&noArchive, "no-archive", false, "do not record the run")

	return cmd
}

// archiveRun stores res in the configured archive.
func (a *app) archiveRun(source string, res *isomap.Result) (string, error) {
	store, err := archive.Open(a.cfg.Archive)
	if err != nil {
		return "", err
	}
	defer store.Close()

	ec := a.cfg.Embed
	id, err := store.Save(&archive.Run{
		Source:       source,
		K:            ec.Neighbors,
		Policy:       ec.Policy,
		Method:       res.Geodesic.Method.String(),
		Solver:       ec.Solver,
		Edges:        res.Graph.Edges,
		Components:   res.Geodesic.Components,
		NegativeMass: res.Spectrum.NegativeMass,
		Elapsed:      res.Elapsed.Total,
		Eigenvalues:  res.Spectrum.Eigenvalues,
		Coords:       res.Coords.RawRows(),
	})
	if err != nil {
		return "", err
	}
	a.log.Info("run archived", zap.String("id", id), zap.String("archive", store.Path()))

	return id, nil
}
