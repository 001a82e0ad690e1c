// Package catalog implements the in-memory movie collection and its slot
// semantics.
//
// A Catalog is an ordered sequence of slots whose occupied region stays
// contiguous at the front: Add reuses the lowest empty slot below the
// occupied count before appending, growth doubles capacity in place, and
// Remove compacts by shifting later records left. Records carry the movie
// fields and enforce their own validity; the catalog owns every record it
// holds.
//
// Treat this package as the single source of truth for collection
// semantics; presentation, confirmation prompts, and persistence live in
// the CLI and codec packages.
package catalog
