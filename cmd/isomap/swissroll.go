package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/isomap/dataset"
)

func (a *app) swissRollCmd() *cobra.Command {
	var (
		n     int
		noise float64
		seed  int64
		out   string
	)
	cmd := &cobra.Command{
		Use:   "swissroll",
		Short: "Write a synthetic swiss-roll dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, _, err := dataset.SwissRoll(n, noise, seed)
			if err != nil {
				return err
			}
			if err = dataset.SaveFile(out, points); err != nil {
				return err
			}
			a.log.Info("swiss roll written", zap.String("path", out), zap.Int("n", n))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d points to %s\n", n, out)

			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&n, "points", "n", dataset.DefaultSubsetSize, "number of points")
	f.Float64Var(&noise, "noise", 0, "standard deviation of Gaussian noise")
	f.Int64Var(&seed, "seed", dataset.DefaultSeed, "random seed")
	f.StringVarP(&out, "output", "o", "swissroll.csv", "destination (.csv or .json)")

	return cmd
}
