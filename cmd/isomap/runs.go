package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/isomap/archive"
	"github.com/katalvlaran/isomap/matrix"
	"github.com/katalvlaran/isomap/render"
)

func (a *app) runsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "runs", Short: "Inspect archived runs"}
	cmd.AddCommand(a.runsListCmd())
	cmd.AddCommand(a.runsShowCmd())

	return cmd
}

func (a *app) runsListCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := archive.Open(a.cfg.Archive)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no runs archived in", store.Path())
				return nil
			}
			tbl := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "CREATED", "SOURCE", "N", "K", "D", "METHOD", "NEG MASS", "ELAPSED")
			for _, r := range runs {
				tbl.Row(
					shortID(r.ID),
					r.CreatedAt.Local().Format(time.DateTime),
					r.Source,
					strconv.Itoa(r.N),
					strconv.Itoa(r.K),
					strconv.Itoa(r.D),
					r.Method,
					strconv.FormatFloat(r.NegativeMass, 'f', 3, 64),
					r.Elapsed.Round(time.Millisecond).String(),
				)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tbl.String())

			return err
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", archive.DefaultListLimit, "maximum runs to list")

	return cmd
}

func (a *app) runsShowCmd() *cobra.Command {
	var p pipelineFlags
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print an archived run and re-render its embedding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rend, err := p.renderer(a.cfg)
			if err != nil {
				return err
			}
			store, err := archive.Open(a.cfg.Archive)
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.Get(args[0])
			if err != nil {
				return err
			}
			coords, err := matrix.NewDenseFromRows(run.Coords)
			if err != nil {
				return err
			}

			w, closeOut, err := p.writer(cmd)
			if err != nil {
				return err
			}
			if p.format != "csv" {
				fmt.Fprintf(w, "run %s\n  created  %s\n  source   %s\n  n=%d k=%d d=%d policy=%s method=%s solver=%s\n"+
					"  edges=%d components=%d negative mass=%.4f elapsed=%s\n",
					run.ID, run.CreatedAt.Local().Format(time.RFC3339), run.Source,
					run.N, run.K, run.D, run.Policy, run.Method, run.Solver,
					run.Edges, run.Components, run.NegativeMass, run.Elapsed)
			}
			err = rend.Render(w, render.Panel{Title: "run " + shortID(run.ID), Coords: coords})
			if cerr := closeOut(); err == nil {
				err = cerr
			}

			return err
		},
	}
	cmd.Flags().StringVar(&p.format, "format", "terminal", "output format: terminal or csv")
	cmd.Flags().StringVarP(&p.output, "output", "o", "", "write output to this file instead of stdout")

	return cmd
}

// shortID abbreviates a UUID to its first group.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}
