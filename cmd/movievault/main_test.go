package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	configPath  string
	catalogPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	catalogPath := filepath.Join(base, "movies.txt")
	configPath := filepath.Join(base, "config.toml")

	content := fmt.Sprintf("[catalog]\npath = %q\ninitial_capacity = 4\n\n[logging]\nlevel = \"error\"\n", catalogPath)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}

	return &cliTestEnv{configPath: configPath, catalogPath: catalogPath}
}

func runCLI(t *testing.T, env *cliTestEnv, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func catalogLines(t *testing.T, env *cliTestEnv) []string {
	t.Helper()
	data, err := os.ReadFile(env.catalogPath)
	if err != nil {
		t.Fatalf("read catalog file: %v", err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestAddAndList(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, "", "add", "--title", "Inception", "--director", "Nolan", "--year", "2010")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	requireContains(t, out, `Added "Inception" at entry 0`)

	out, err = runCLI(t, env, "", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "Title: Inception, Director: Nolan, Year: 2010")
}

func TestAddRejectsOutOfRangeYear(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, env, "", "add", "--title", "Future", "--director", "Someone", "--year", "4000"); err == nil {
		t.Fatal("expected error for a year beyond the current one")
	}
	if _, err := runCLI(t, env, "", "add", "--title", "Ancient", "--director", "Someone", "--year", "1700"); err == nil {
		t.Fatal("expected error for a year before 1801")
	}
	if _, err := os.Stat(env.catalogPath); !os.IsNotExist(err) {
		t.Fatal("rejected adds must not create the catalog file")
	}
}

func TestListEmptyCatalog(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, "", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "No movies to display.")
}

func TestListSortedByTitle(t *testing.T) {
	env := setupCLITestEnv(t)

	for _, entry := range [][]string{
		{"Zoo", "One"}, {"Apple", "Two"}, {"Mango", "Three"},
	} {
		if _, err := runCLI(t, env, "", "add", "--title", entry[0], "--director", entry[1], "--year", "1999"); err != nil {
			t.Fatalf("add %s: %v", entry[0], err)
		}
	}

	out, err := runCLI(t, env, "", "list", "--sort")
	if err != nil {
		t.Fatalf("list --sort: %v", err)
	}
	apple := strings.Index(out, "Apple")
	mango := strings.Index(out, "Mango")
	zoo := strings.Index(out, "Zoo")
	if apple < 0 || mango < 0 || zoo < 0 || !(apple < mango && mango < zoo) {
		t.Fatalf("expected Apple, Mango, Zoo order, got:\n%s", out)
	}
}

func TestSearchReportsEntry(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, env, "", "add", "--title", "Alien", "--director", "Scott", "--year", "1979"); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := runCLI(t, env, "", "search", "Alien")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, "Entry 0: Title: Alien, Director: Scott, Year: 1979")

	if _, err := runCLI(t, env, "", "search", "Inception"); err == nil {
		t.Fatal("expected search miss to fail")
	}
}

func TestRatePersistsToFile(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, env, "", "add", "--title", "Inception", "--director", "Nolan", "--year", "2010"); err != nil {
		t.Fatalf("add: %v", err)
	}
	out, err := runCLI(t, env, "", "rate", "Inception", "4")
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	requireContains(t, out, `Rated "Inception" 4/5`)

	lines := catalogLines(t, env)
	if len(lines) != 1 || lines[0] != "Inception|Nolan|2010|4.0" {
		t.Fatalf("unexpected catalog file: %v", lines)
	}
}

func TestRateByIndex(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, env, "", "add", "--title", "Alien", "--director", "Scott", "--year", "1979"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := runCLI(t, env, "", "rate", "--index", "0", "5"); err != nil {
		t.Fatalf("rate --index: %v", err)
	}

	lines := catalogLines(t, env)
	if len(lines) != 1 || lines[0] != "Alien|Scott|1979|5.0" {
		t.Fatalf("unexpected catalog file: %v", lines)
	}
}

func TestRateRejectsOutOfRangeValue(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, env, "", "add", "--title", "Alien", "--director", "Scott", "--year", "1979"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := runCLI(t, env, "", "rate", "Alien", "6"); err == nil {
		t.Fatal("expected rating 6 to be rejected")
	}
}

func TestUpdateRewritesEntry(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, env, "", "add", "--title", "Alien", "--director", "Scott", "--year", "1979"); err != nil {
		t.Fatalf("add: %v", err)
	}
	out, err := runCLI(t, env, "", "update", "0", "--title", "Aliens", "--director", "Cameron", "--year", "1986")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	requireContains(t, out, "Updated entry 0: Title: Aliens, Director: Cameron, Year: 1986")

	lines := catalogLines(t, env)
	if len(lines) != 1 || lines[0] != "Aliens|Cameron|1986|0.0" {
		t.Fatalf("unexpected catalog file: %v", lines)
	}
}

func TestRemoveAsksForConfirmation(t *testing.T) {
	env := setupCLITestEnv(t)

	for _, title := range []string{"Alien", "Blade Runner"} {
		if _, err := runCLI(t, env, "", "add", "--title", title, "--director", "Scott", "--year", "1982"); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	out, err := runCLI(t, env, "y\n", "remove", "0")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	requireContains(t, out, "Movie deleted successfully.")

	lines := catalogLines(t, env)
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "Blade Runner|") {
		t.Fatalf("expected only Blade Runner to remain, got %v", lines)
	}
}

func TestRemoveDeclinedLeavesCatalogAlone(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, env, "", "add", "--title", "Alien", "--director", "Scott", "--year", "1979"); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := runCLI(t, env, "n\n", "remove", "0")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	requireContains(t, out, "Deletion canceled.")

	if lines := catalogLines(t, env); len(lines) != 1 {
		t.Fatalf("declined removal mutated the catalog: %v", lines)
	}
}

func TestRemoveInvalidAnswerCancels(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, env, "", "add", "--title", "Alien", "--director", "Scott", "--year", "1979"); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := runCLI(t, env, "maybe\n", "remove", "0")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	requireContains(t, out, "Invalid input. Deletion canceled.")
}

func TestRemoveYesSkipsPrompt(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, env, "", "add", "--title", "Alien", "--director", "Scott", "--year", "1979"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := runCLI(t, env, "", "remove", "0", "--yes"); err != nil {
		t.Fatalf("remove --yes: %v", err)
	}

	out, err := runCLI(t, env, "", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "No movies to display.")
}

func TestRemoveOutOfRangeIndex(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, env, "", "remove", "3", "--yes"); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
}
