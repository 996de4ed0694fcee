// Command isomap embeds point clouds with Isomap, compares them with PCA and
// keeps an archive of past runs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/isomap/internal/config"
	"github.com/katalvlaran/isomap/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	cfgFile     string
	envFile     string
	logLevel    string
	archivePath string

	cfg *config.AppConfig
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	root := &cobra.Command{
		Use:          "isomap",
		Short:        "Nonlinear dimensionality reduction with Isomap",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file (optional)")
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file with ISOMAP_* overrides (skipped when missing)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.archivePath, "archive", "", "SQLite run archive path")

	root.AddCommand(a.embedCmd())
	root.AddCommand(a.compareCmd())
	root.AddCommand(a.runsCmd())
	root.AddCommand(a.swissRollCmd())

	return root
}

// setup loads the configuration, applies the persistent flags and builds
// the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, a.envFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("archive") {
		cfg.Archive = a.archivePath
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	if a.log, err = logging.New(cfg.Log.Level, cfg.Log.Encoding); err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.cfg = cfg

	return nil
}
