// Package textutil holds small string helpers for CLI output: title casing,
// labels derived from file names, and display-width aware truncation for
// table cells that may contain wide glyphs.
package textutil
