// Package config holds the CLI configuration: a YAML file, optional .env
// file, and ISOMAP_* environment overrides, in that order of precedence
// (later wins). Command-line flags are applied by the caller on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/isomap/core"
	"github.com/katalvlaran/isomap/geodesic"
	"github.com/katalvlaran/isomap/mds"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ISOMAP_"

var (
	// ErrInvalidConfig is wrapped by every Validate failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// EmbedConfig holds the pipeline parameters.
type EmbedConfig struct {
	Neighbors  int    `yaml:"neighbors"`
	Dims       int    `yaml:"dims"`
	Policy     string `yaml:"policy"`
	Method     string `yaml:"method"`
	Solver     string `yaml:"solver"`
	Workers    int    `yaml:"workers"`
	ZeroPad    bool   `yaml:"zero_pad"`
	SignFix    bool   `yaml:"sign_convention"`
	SubsetSize int    `yaml:"subset_size"`
	Seed       int64  `yaml:"seed"`
}

// DataConfig controls how input files are oriented.
type DataConfig struct {
	SamplesAsColumns bool `yaml:"samples_as_columns"`
	AutoOrient       bool `yaml:"auto_orient"`
}

// LogConfig selects the logger level and encoding ("console" or "json").
type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// RenderConfig sizes the terminal scatter plots.
type RenderConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AppConfig is the root configuration.
type AppConfig struct {
	Embed   EmbedConfig  `yaml:"embed"`
	Data    DataConfig   `yaml:"data"`
	Log     LogConfig    `yaml:"log"`
	Render  RenderConfig `yaml:"render"`
	Archive string       `yaml:"archive"`
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	return &AppConfig{
		Embed: EmbedConfig{
			Neighbors:  7,
			Dims:       2,
			Policy:     core.PolicyFail.String(),
			Method:     geodesic.MethodDijkstra.String(),
			Solver:     mds.SolverJacobi.String(),
			SignFix:    true,
			SubsetSize: 1000,
			Seed:       42,
		},
		Log:     LogConfig{Level: "info", Encoding: "console"},
		Render:  RenderConfig{Width: 48, Height: 20},
		Archive: "isomap-runs.db",
	}
}

// Load builds the configuration from defaults, the YAML file at path (a
// missing file is not an error when path is empty or does not exist), the
// .env files in envFiles (missing ones are skipped) and ISOMAP_* variables.
func Load(path string, envFiles ...string) (*AppConfig, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		default:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %q: %w", path, err)
			}
		}
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: load %q: %w", f, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *AppConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// applyEnv overrides fields from ISOMAP_* variables.
func (c *AppConfig) applyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"POLICY":       &c.Embed.Policy,
		"METHOD":       &c.Embed.Method,
		"SOLVER":       &c.Embed.Solver,
		"LOG_LEVEL":    &c.Log.Level,
		"LOG_ENCODING": &c.Log.Encoding,
		"ARCHIVE":      &c.Archive,
	}
	ints := map[string]*int{
		"NEIGHBORS":     &c.Embed.Neighbors,
		"DIMS":          &c.Embed.Dims,
		"WORKERS":       &c.Embed.Workers,
		"SUBSET_SIZE":   &c.Embed.SubsetSize,
		"RENDER_WIDTH":  &c.Render.Width,
		"RENDER_HEIGHT": &c.Render.Height,
	}
	bools := map[string]*bool{
		"ZERO_PAD":           &c.Embed.ZeroPad,
		"SIGN_CONVENTION":    &c.Embed.SignFix,
		"SAMPLES_AS_COLUMNS": &c.Data.SamplesAsColumns,
		"AUTO_ORIENT":        &c.Data.AutoOrient,
	}

	for key, dst := range str {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	for key, dst := range ints {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q: %w", ErrInvalidConfig, EnvPrefix, key, v, err)
			}
			*dst = n
		}
	}
	for key, dst := range bools {
		if v, ok := lookup(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q: %w", ErrInvalidConfig, EnvPrefix, key, v, err)
			}
			*dst = b
		}
	}
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q: %w", ErrInvalidConfig, EnvPrefix, v, err)
		}
		c.Embed.Seed = seed
	}

	return nil
}

// Validate checks ranges and names; it does not know N, so k < N and d ≤ N
// are left to the pipeline.
func (c *AppConfig) Validate() error {
	var errs []error
	if c.Embed.Neighbors < 1 {
		errs = append(errs, fmt.Errorf("embed.neighbors=%d must be ≥ 1", c.Embed.Neighbors))
	}
	if c.Embed.Dims < 1 {
		errs = append(errs, fmt.Errorf("embed.dims=%d must be ≥ 1", c.Embed.Dims))
	}
	if c.Embed.Workers < 0 {
		errs = append(errs, fmt.Errorf("embed.workers=%d must be ≥ 0", c.Embed.Workers))
	}
	if c.Embed.SubsetSize < 0 {
		errs = append(errs, fmt.Errorf("embed.subset_size=%d must be ≥ 0 (0 keeps every point)", c.Embed.SubsetSize))
	}
	if _, err := core.ParsePolicy(c.Embed.Policy); err != nil {
		errs = append(errs, fmt.Errorf("embed.policy: %w", err))
	}
	if _, err := geodesic.ParseMethod(c.Embed.Method); err != nil {
		errs = append(errs, fmt.Errorf("embed.method: %w", err))
	}
	if _, err := mds.ParseSolver(c.Embed.Solver); err != nil {
		errs = append(errs, fmt.Errorf("embed.solver: %w", err))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch strings.ToLower(c.Log.Encoding) {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.encoding=%q must be console or json", c.Log.Encoding))
	}
	if c.Render.Width < 0 || c.Render.Height < 0 {
		errs = append(errs, fmt.Errorf("render size %dx%d must not be negative", c.Render.Width, c.Render.Height))
	}
	if c.Data.SamplesAsColumns && c.Data.AutoOrient {
		errs = append(errs, errors.New("data.samples_as_columns and data.auto_orient are exclusive"))
	}
	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
