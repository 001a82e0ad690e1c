package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/ChrisDaskalos/myMovieRatingApp/internal/catalog"
	"github.com/ChrisDaskalos/myMovieRatingApp/internal/logging"
)

const fieldSeparator = "|"

// Save writes every occupied slot of the catalog to path in slot order,
// one line per record, replacing any previous contents. There is no atomic
// rename: a failure mid-write can leave a truncated file behind.
func Save(c *catalog.Catalog, path string) error {
	if c == nil {
		return fmt.Errorf("%w: catalog is required", catalog.ErrInvalidInput)
	}
	records := c.Records()
	for _, rec := range records {
		if strings.Contains(rec.Title(), fieldSeparator) || strings.Contains(rec.Director(), fieldSeparator) {
			return fmt.Errorf("%w: %q contains the field separator %q", catalog.ErrInvalidInput, rec.Title(), fieldSeparator)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open catalog file for writing: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, rec := range records {
		if _, err := fmt.Fprintf(writer, "%s|%s|%d|%.1f\n", rec.Title(), rec.Director(), rec.Year(), rec.Rating()); err != nil {
			return fmt.Errorf("write catalog file: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush catalog file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close catalog file: %w", err)
	}
	return nil
}

// Load reads the catalog file at path into a new catalog with the given
// initial capacity. A missing file is the expected first-run state and
// seeds an empty catalog. Lines that do not yield three non-empty tokens,
// or whose year fails record construction, are skipped with a warning.
// The fourth (rating) token is never read, so loaded records start
// unrated.
func Load(path string, initialCapacity int, logger *slog.Logger) (*catalog.Catalog, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	c := catalog.NewCatalog(initialCapacity)

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("catalog file missing, starting empty", logging.String("path", path))
			return c, nil
		}
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		title, director, yearToken, ok := splitLine(line)
		if !ok {
			logger.Warn("skipping malformed catalog line",
				logging.String("path", path),
				logging.Int("line", lineNo),
				logging.String("content", line))
			continue
		}

		rec, err := catalog.New(title, director, atoi(yearToken))
		if err != nil {
			logger.Warn("skipping unparseable catalog line",
				logging.String("path", path),
				logging.Int("line", lineNo),
				logging.Error(err))
			continue
		}
		if _, err := c.Add(rec); err != nil {
			return nil, fmt.Errorf("add record from line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return c, nil
}

// splitLine extracts the three leading tokens of a record line. Anything
// past the third separator (the persisted rating) is ignored.
func splitLine(line string) (title, director, year string, ok bool) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) < 3 {
		return "", "", "", false
	}
	title, director, year = parts[0], parts[1], parts[2]
	if title == "" || director == "" || year == "" {
		return "", "", "", false
	}
	return title, director, year, true
}

// atoi parses a decimal prefix the way C's atoi does: optional whitespace
// and sign, then digits, with anything else yielding 0 so the record
// constructor rejects the line.
func atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	sign := 1
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	return sign * n
}
