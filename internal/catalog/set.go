package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Set holds the configurations of every loaded major.
type Set struct {
	configs map[string]*MajorConfig
}

// NewSet builds a set from already-built configurations. A later config
// for the same major replaces an earlier one.
func NewSet(configs ...*MajorConfig) *Set {
	s := &Set{configs: make(map[string]*MajorConfig, len(configs))}
	for _, c := range configs {
		if c != nil {
			s.configs[c.Major] = c
		}
	}
	return s
}

// Get returns the configuration of major.
func (s *Set) Get(major string) (*MajorConfig, error) {
	key := strings.ToUpper(strings.TrimSpace(major))
	if c, ok := s.configs[key]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMajor, major)
}

// Majors lists the loaded major codes in ascending order.
func (s *Set) Majors() []string {
	out := make([]string, 0, len(s.configs))
	for m := range s.configs {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Len is the number of loaded majors.
func (s *Set) Len() int { return len(s.configs) }

// LoadDir loads every *.yaml / *.yml file in dir. A file that fails to
// load is reported in the joined error and skipped; the remaining majors
// are still returned.
func LoadDir(dir string, logger *slog.Logger) (*Set, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading config directory: %w", err)
	}

	set := NewSet()
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		cfg, err := loadMajor(path, logger)
		if err != nil {
			logger.Error("skipping major configuration", "path", path, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", entry.Name(), err))
			continue
		}
		if !IsKnownMajor(cfg.Major) {
			logger.Warn("configuration for unregistered major", "major", cfg.Major, "path", path)
		}
		if _, dup := set.configs[cfg.Major]; dup {
			logger.Warn("major configured twice, keeping last", "major", cfg.Major, "path", path)
		}
		set.configs[cfg.Major] = cfg
	}
	return set, errors.Join(errs...)
}

func loadMajor(path string, logger *slog.Logger) (*MajorConfig, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Build(f, logger)
}
