// Package history persists parse results from batch runs in SQLite.
//
// The parser itself keeps no state; this store exists so users can audit how
// the heuristics behaved across runs. Each run is recorded under its UUID,
// writers serialize on a sidecar lock file, and reads never take the lock.
// A database created by a different schema version is rejected with
// ErrSchemaMismatch rather than migrated.
package history
