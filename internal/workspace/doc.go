// Package workspace owns the output and scratch directories of a run: it
// takes an exclusive lock beside each directory, empties it before work
// starts, and lists what a run left behind.
package workspace
