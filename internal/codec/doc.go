// Package codec round-trips a catalog through its pipe-delimited text file.
//
// Each occupied slot becomes one line, `title|director|year|rating`, with
// the rating carrying a single fractional digit. Save overwrites the whole
// file without an atomic replace; Load treats a missing file as the normal
// first run and malformed lines as skippable data-quality issues. Only the
// first three tokens of a line are read back, so ratings never survive a
// reload.
//
// The format defines no escaping for `|`; Save refuses records whose
// fields contain one rather than emit a line Load could not re-split.
package codec
