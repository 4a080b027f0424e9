package config

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PATHWAY_DB", "PATHWAY_CONFIG_DIR", "PATHWAY_WORKERS", "PATHWAY_COREQ_PASSES", "PATHWAY_LOG_LEVEL", "PATHWAY_LOG_EVENTS"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 1, cfg.CoreqPasses)
	assert.False(t, cfg.FixedPoint)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Positive(t, cfg.Workers)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PATHWAY_DB", "/tmp/p.db")
	t.Setenv("PATHWAY_CONFIG_DIR", "/etc/pathway")
	t.Setenv("PATHWAY_WORKERS", "3")
	t.Setenv("PATHWAY_COREQ_PASSES", "2")
	t.Setenv("PATHWAY_LOG_LEVEL", "debug")
	t.Setenv("PATHWAY_LOG_EVENTS", "true")

	cfg := LoadConfig()

	assert.Equal(t, "/tmp/p.db", cfg.DBPath)
	assert.Equal(t, "/etc/pathway", cfg.ConfigDir)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 2, cfg.CoreqPasses)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.LogEvents)
}

func TestLoadConfig_FixedPoint(t *testing.T) {
	t.Setenv("PATHWAY_COREQ_PASSES", "FIXED")
	assert.True(t, LoadConfig().FixedPoint)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("PATHWAY_WORKERS", "-2")
	t.Setenv("PATHWAY_COREQ_PASSES", "zero")
	t.Setenv("PATHWAY_LOG_LEVEL", "loud")

	cfg := LoadConfig()
	def := DefaultConfig()

	assert.Equal(t, def.Workers, cfg.Workers)
	assert.Equal(t, 1, cfg.CoreqPasses)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestResolve_FillsPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, err := Config{}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".pathway", "pathway.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(home, ".pathway", "configs"), cfg.ConfigDir)
}

func TestResolve_KeepsExplicitPaths(t *testing.T) {
	cfg, err := Config{DBPath: "a.db", ConfigDir: "cfg"}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "a.db", cfg.DBPath)
	assert.Equal(t, "cfg", cfg.ConfigDir)
}
