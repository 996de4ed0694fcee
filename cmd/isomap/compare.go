package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/isomap/pca"
	"github.com/katalvlaran/isomap/render"
)

func (a *app) compareCmd() *cobra.Command {
	var p pipelineFlags
	cmd := &cobra.Command{
		Use:   "compare <data|swissroll>",
		Short: "Show Isomap and PCA embeddings side by side",
		Args:  cobra.ExactArgs(1),
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
			lin, err := pca.Fit(points, a.cfg.Embed.Dims)
			if err != nil {
				return err
			}

			w, closeOut, err := p.writer(cmd)
			if err != nil {
				return err
			}
			err = rend.Render(w,
				render.Panel{
					Title:   "Isomap: nonlinear",
					XLabel:  "geodesic c1",
					YLabel:  "geodesic c2",
					Coords:  res.Coords,
					Palette: render.Viridis,
				},
				render.Panel{
					Title:   "PCA: linear",
					XLabel:  "pc1",
					YLabel:  "pc2",
					Coords:  lin.Scores,
					Palette: render.Plasma,
				})
			if cerr := closeOut(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}

			if p.format != "csv" || p.output != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "isomap eigenvalues %.4g  negative mass %.3f\n",
					res.Spectrum.Selected, res.Spectrum.NegativeMass)
				fmt.Fprintf(cmd.OutOrStdout(), "pca variance ratio %.3f\n", lin.Ratio)
			}

			return nil
		},
	}
	p.register(cmd)

	return cmd
}
