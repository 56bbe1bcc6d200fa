// Package history keeps a SQLite ledger of conversion runs.
//
// A run is recorded as running before any output is touched and finalized as
// completed or failed, so an interrupted conversion stays visible as a
// running row with no finish time. The ledger is advisory: conversions work
// without it.
package history
