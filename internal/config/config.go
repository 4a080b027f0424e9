// Package config reads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// ErrConfiguration marks an environment setting that cannot be resolved.
var ErrConfiguration = errors.New("configuration error")

// Config holds all runtime settings.
type Config struct {
	DBPath      string
	ConfigDir   string
	Workers     int
	CoreqPasses int
	FixedPoint  bool
	LogLevel    slog.Level
	LogEvents   bool
}

// DefaultConfig returns the settings used when no variable is set. Paths
// are left empty and resolved by Resolve.
func DefaultConfig() Config {
	return Config{
		Workers:     runtime.GOMAXPROCS(0),
		CoreqPasses: 1,
		LogLevel:    slog.LevelInfo,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PATHWAY_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PATHWAY_CONFIG_DIR"); v != "" {
		cfg.ConfigDir = v
	}
	if v := os.Getenv("PATHWAY_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}
	if v := os.Getenv("PATHWAY_COREQ_PASSES"); v != "" {
		if strings.EqualFold(v, "fixed") {
			cfg.FixedPoint = true
		} else if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CoreqPasses = n
		}
	}
	if v := os.Getenv("PATHWAY_LOG_LEVEL"); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = level
		}
	}
	if v := os.Getenv("PATHWAY_LOG_EVENTS"); v != "" {
		cfg.LogEvents, _ = strconv.ParseBool(v)
	}
	return cfg
}

// Resolve fills unset paths: the database defaults to ~/.pathway/pathway.db
// and the major configuration directory to ./configs when present, else
// ~/.pathway/configs.
func (c Config) Resolve() (Config, error) {
	if c.DBPath != "" && c.ConfigDir != "" {
		return c, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return c, fmt.Errorf("%w: finding home directory: %v", ErrConfiguration, err)
	}
	if c.DBPath == "" {
		c.DBPath = filepath.Join(home, ".pathway", "pathway.db")
	}
	if c.ConfigDir == "" {
		if stat, err := os.Stat("./configs"); err == nil && stat.IsDir() {
			c.ConfigDir = "./configs"
		} else {
			c.ConfigDir = filepath.Join(home, ".pathway", "configs")
		}
	}
	return c, nil
}
