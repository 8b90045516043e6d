// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"pigmatch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutDir = filepath.Join(base, "out")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Database.Path = filepath.Join(base, "runs.db")
	cfg.Surveys.TableA = filepath.Join(base, "canonical_2015.csv")
	cfg.Surveys.TableB = filepath.Join(base, "canonical_2022.csv")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithWindow overrides the matching window on the test config.
func WithWindow(window float64) ConfigOption {
	return func(c *config.Config) {
		c.Matching.Window = window
	}
}

// WithDatabaseDisabled turns off run persistence.
func WithDatabaseDisabled() ConfigOption {
	return func(c *config.Config) {
		c.Database.Enabled = false
	}
}
