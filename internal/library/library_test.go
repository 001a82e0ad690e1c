package library_test

import (
	"testing"

	"github.com/ChrisDaskalos/myMovieRatingApp/internal/catalog"
	"github.com/ChrisDaskalos/myMovieRatingApp/internal/library"
	"github.com/ChrisDaskalos/myMovieRatingApp/internal/logging"
	"github.com/ChrisDaskalos/myMovieRatingApp/internal/testsupport"
)

func TestOpenLoadsExistingCatalog(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCatalogFile(t, cfg,
		"Inception|Nolan|2010|4.0",
		"Alien|Scott|1979|0.0",
	)

	lib, err := library.Open(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer lib.Close()

	if lib.Catalog().Count() != 2 {
		t.Fatalf("expected 2 records, got %d", lib.Catalog().Count())
	}
}

func TestOpenStartsEmptyOnFirstRun(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithInitialCapacity(3))

	lib, err := library.Open(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer lib.Close()

	if lib.Catalog().Count() != 0 {
		t.Fatalf("expected empty catalog, got count %d", lib.Catalog().Count())
	}
	if lib.Catalog().Capacity() != 3 {
		t.Fatalf("expected configured capacity 3, got %d", lib.Catalog().Capacity())
	}
}

func TestOpenRefusesConcurrentInvocation(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	first, err := library.Open(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	defer first.Close()

	if _, err := library.Open(cfg, logging.Discard()); err == nil {
		t.Fatal("expected second Open to fail while the lock is held")
	}
}

func TestLockReleasedOnClose(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	first, err := library.Open(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second, err := library.Open(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("Open after Close failed: %v", err)
	}
	defer second.Close()
}

func TestSavePersistsMutations(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	lib, err := library.Open(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	rec, err := catalog.New("Inception", "Nolan", 2010)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := lib.Catalog().Add(rec); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := lib.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := lib.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := library.Open(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	index, err := reopened.Catalog().Search("Inception")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if index != 0 {
		t.Fatalf("expected Inception at index 0, got %d", index)
	}
}
