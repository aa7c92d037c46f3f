package testsupport

import (
	"path/filepath"
	"testing"

	"filesorter/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Logging.Level = "error"

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithExecutables enables the Executables category by default.
func WithExecutables() ConfigOption {
	return func(c *config.Config) {
		c.Organize.IncludeExecutables = true
	}
}

// WithCategories restricts default runs to the named categories.
func WithCategories(names ...string) ConfigOption {
	return func(c *config.Config) {
		c.Organize.Categories = append([]string(nil), names...)
	}
}
