package catalog

import (
	"fmt"
	"strings"
)

// Record is a single movie entry. Identity is immutable once constructed;
// fields mutate only through Update and SetRating so a record can never be
// observed with an empty title or director.
type Record struct {
	title    string
	director string
	year     int
	rating   float64
}

// New constructs a record from the given fields. The year check stops at
// "after 1800"; the upper bound against the current calendar year is the
// caller's responsibility at input time.
func New(title, director string, year int) (*Record, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(director) == "" {
		return nil, fmt.Errorf("%w: director is required", ErrInvalidInput)
	}
	if year <= 1800 {
		return nil, fmt.Errorf("%w: year %d must be after 1800", ErrInvalidInput, year)
	}
	return &Record{title: title, director: director, year: year}, nil
}

// Title returns the movie title.
func (r *Record) Title() string { return r.title }

// Director returns the movie director.
func (r *Record) Director() string { return r.director }

// Year returns the release year.
func (r *Record) Year() int { return r.year }

// Rating returns the current rating, 0 meaning unrated.
func (r *Record) Rating() float64 { return r.rating }

// Rated reports whether a rating has been assigned.
func (r *Record) Rated() bool { return r.rating != 0 }

// Update replaces title, director, and year in one step. On failure no
// field changes.
func (r *Record) Update(title, director string, year int) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(director) == "" {
		return fmt.Errorf("%w: director is required", ErrInvalidInput)
	}
	if year <= 0 {
		return fmt.Errorf("%w: year %d must be positive", ErrInvalidInput, year)
	}
	r.title = title
	r.director = director
	r.year = year
	return nil
}

// SetRating assigns a rating between 1 and 5. Zero is reserved for the
// unrated default and cannot be set through this method.
func (r *Record) SetRating(value int) error {
	if value < 1 || value > 5 {
		return fmt.Errorf("%w: rating %d must be between 1 and 5", ErrOutOfRange, value)
	}
	r.rating = float64(value)
	return nil
}

// Format renders the record for display. Rating is deliberately absent,
// matching the persisted-display asymmetry of the file format.
func (r *Record) Format() string {
	return fmt.Sprintf("Title: %s, Director: %s, Year: %d", r.title, r.director, r.year)
}
