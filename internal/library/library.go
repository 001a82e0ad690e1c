package library

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"

	"github.com/ChrisDaskalos/myMovieRatingApp/internal/catalog"
	"github.com/ChrisDaskalos/myMovieRatingApp/internal/codec"
	"github.com/ChrisDaskalos/myMovieRatingApp/internal/config"
	"github.com/ChrisDaskalos/myMovieRatingApp/internal/logging"
)

// Library owns one locked session against the catalog file.
type Library struct {
	path    string
	logger  *slog.Logger
	lock    *flock.Flock
	catalog *catalog.Catalog
}

// Open acquires the catalog lock and loads the catalog file. It fails
// without blocking when another invocation already holds the lock.
func Open(cfg *config.Config, logger *slog.Logger) (*Library, error) {
	if cfg == nil {
		return nil, errors.New("library requires config")
	}
	if logger == nil {
		logger = logging.Discard()
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	lock := flock.New(cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("catalog file %s is in use by another movievault invocation", cfg.Catalog.Path)
	}

	cat, err := codec.Load(cfg.Catalog.Path, cfg.Catalog.InitialCapacity, logger)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}
	logger.Debug("catalog loaded",
		logging.String("path", cfg.Catalog.Path),
		logging.Int("count", cat.Count()))

	return &Library{
		path:    cfg.Catalog.Path,
		logger:  logger,
		lock:    lock,
		catalog: cat,
	}, nil
}

// Catalog returns the loaded catalog.
func (l *Library) Catalog() *catalog.Catalog { return l.catalog }

// Path returns the catalog file location.
func (l *Library) Path() string { return l.path }

// Save writes the catalog back to its file while the lock is still held.
func (l *Library) Save() error {
	if err := codec.Save(l.catalog, l.path); err != nil {
		return err
	}
	l.logger.Debug("catalog saved",
		logging.String("path", l.path),
		logging.Int("count", l.catalog.Count()))
	return nil
}

// Close releases the catalog lock. Safe to call after a failed Save.
func (l *Library) Close() error {
	if l.lock == nil {
		return nil
	}
	err := l.lock.Unlock()
	l.lock = nil
	return err
}
