// Package main hosts the movievault CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into
// catalog operations: adding, listing, searching, rating, updating, and
// removing movie records, plus configuration scaffolding. It centralizes
// configuration resolution, catalog locking, and structured logging setup
// so subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: collection semantics live in internal/catalog,
// persistence in internal/codec, and session plumbing in internal/library;
// commands only validate input, confirm destructive actions, and render
// results.
package main
