// Package logging constructs the slog loggers used across the CLI.
//
// It maps config strings onto slog levels and handler formats (console or
// json) and exposes small attribute helpers so call sites do not import
// log/slog directly. Obtain loggers through New or NewFromConfig so output
// stays uniform between commands.
package logging
