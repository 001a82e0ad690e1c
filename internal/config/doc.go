// Package config loads, normalizes, and validates movievault configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from an explicit --config path, the
// user config directory, or a project-local movievault.toml. The Config
// type centralizes the catalog file location, the initial slot capacity,
// and log output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
