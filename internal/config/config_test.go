package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomap/core"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 7, cfg.Embed.Neighbors)
	assert.Equal(t, 2, cfg.Embed.Dims)
	assert.Equal(t, 1000, cfg.Embed.SubsetSize)
	assert.Equal(t, int64(42), cfg.Embed.Seed)
	assert.Equal(t, "fail", cfg.Embed.Policy)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "isomap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
embed:
  neighbors: 12
  method: floyd-warshall
log:
  encoding: json
`), 0o600))
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("ISOMAP_SUBSET_SIZE=250\n"), 0o600))
	t.Setenv("ISOMAP_DIMS", "3")
	t.Setenv("ISOMAP_ZERO_PAD", "true")
	t.Setenv("ISOMAP_SEED", "-9")
	// Register cleanup for the variable godotenv will set, then clear it.
	t.Setenv("ISOMAP_SUBSET_SIZE", "")
	require.NoError(t, os.Unsetenv("ISOMAP_SUBSET_SIZE"))

	cfg, err := Load(path, envPath, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 12, cfg.Embed.Neighbors, "from yaml")
	assert.Equal(t, "floyd-warshall", cfg.Embed.Method)
	assert.Equal(t, "json", cfg.Log.Encoding)
	assert.Equal(t, "info", cfg.Log.Level, "default kept")
	assert.Equal(t, 3, cfg.Embed.Dims, "from env")
	assert.True(t, cfg.Embed.ZeroPad)
	assert.Equal(t, int64(-9), cfg.Embed.Seed)
	assert.Equal(t, 250, cfg.Embed.SubsetSize, "from .env")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("embed: [1, 2"), 0o600))
	_, err := Load(path)
	assert.Error(t, err)

	t.Setenv("ISOMAP_NEIGHBORS", "seven")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"ISOMAP_POLICY":             "infinite-fill",
		"ISOMAP_AUTO_ORIENT":        "1",
		"ISOMAP_RENDER_WIDTH":       "80",
		"ISOMAP_ARCHIVE":            "/tmp/runs.db",
		"ISOMAP_SAMPLES_AS_COLUMNS": "false",
	}
	cfg := Default()
	require.NoError(t, cfg.applyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}))
	assert.Equal(t, "infinite-fill", cfg.Embed.Policy)
	assert.True(t, cfg.Data.AutoOrient)
	assert.Equal(t, 80, cfg.Render.Width)
	assert.Equal(t, "/tmp/runs.db", cfg.Archive)

	err := cfg.applyEnv(func(k string) (string, bool) {
		if k == "ISOMAP_ZERO_PAD" {
			return "maybe", true
		}
		return "", false
	})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"neighbors", func(c *AppConfig) { c.Embed.Neighbors = 0 }},
		{"dims", func(c *AppConfig) { c.Embed.Dims = -1 }},
		{"workers", func(c *AppConfig) { c.Embed.Workers = -2 }},
		{"subset", func(c *AppConfig) { c.Embed.SubsetSize = -1 }},
		{"policy", func(c *AppConfig) { c.Embed.Policy = "ignore" }},
		{"method", func(c *AppConfig) { c.Embed.Method = "bellman-ford" }},
		{"solver", func(c *AppConfig) { c.Embed.Solver = "power" }},
		{"level", func(c *AppConfig) { c.Log.Level = "loud" }},
		{"encoding", func(c *AppConfig) { c.Log.Encoding = "xml" }},
		{"render", func(c *AppConfig) { c.Render.Height = -1 }},
		{"orientation", func(c *AppConfig) { c.Data.SamplesAsColumns, c.Data.AutoOrient = true, true }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	cfg := Default()
	cfg.Embed.Policy = "bogus"
	assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidParameter, "name errors keep their taxonomy")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.Embed.Neighbors = 9
	require.NoError(t, Save(path, cfg))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
