// Package testsupport provides shared helpers for package tests: temp-dir
// backed configs and seeded catalog files.
package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/ChrisDaskalos/myMovieRatingApp/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config whose catalog file lives in a unique temp
// directory per test. It applies any provided options on top.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Catalog.Path = filepath.Join(base, "movies.txt")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithInitialCapacity overrides the starting slot count on the test config.
func WithInitialCapacity(capacity int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Catalog.InitialCapacity = capacity
	}
}

// WithCatalogPath overrides the catalog file location on the test config.
func WithCatalogPath(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Catalog.Path = path
	}
}
