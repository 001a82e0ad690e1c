// Package library ties the catalog, its on-disk codec, and a file lock
// into the open → mutate → save lifecycle a CLI invocation needs.
//
// Each invocation acquires a sibling .lock file before touching the
// catalog file, so two movievault processes cannot interleave a load with
// a save. The lock is advisory and scoped to the life of the Library
// value; Close always releases it.
package library
