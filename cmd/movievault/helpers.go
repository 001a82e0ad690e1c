package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// validateYear applies the interactive-input year bounds. The record
// constructor itself only enforces the 1800 floor; the ceiling against the
// current calendar year belongs here, at the input edge.
func validateYear(year int) error {
	current := time.Now().Year()
	if year <= 1800 || year > current {
		return fmt.Errorf("year must be after 1800 and no later than %d, got %d", current, year)
	}
	return nil
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("entry index must be a number, got %q", arg)
	}
	return index, nil
}

func formatRating(rating float64) string {
	if rating == 0 {
		return "unrated"
	}
	return strconv.FormatFloat(rating, 'f', 1, 64)
}

// confirm reads a single y/n answer. Anything other than y or n counts as
// a refusal so a stray keystroke never deletes a record.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		fmt.Fprintln(out, "Deletion canceled.")
		return false, nil
	default:
		fmt.Fprintln(out, "Invalid input. Deletion canceled.")
		return false, nil
	}
}
