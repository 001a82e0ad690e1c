package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ChrisDaskalos/myMovieRatingApp/internal/config"
)

// WriteCatalogFile seeds the config's catalog file with the given lines,
// each terminated by a newline.
func WriteCatalogFile(t testing.TB, cfg *config.Config, lines ...string) {
	t.Helper()
	WriteLines(t, cfg.Catalog.Path, lines...)
}

// WriteLines writes the given lines to path, creating parent directories
// as needed.
func WriteLines(t testing.TB, path string, lines ...string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadLines returns the non-empty lines of the file at path.
func ReadLines(t testing.TB, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
