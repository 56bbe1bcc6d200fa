// Package main hosts the rune CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration, applies flag overrides and
// hands conversions to internal/convert. Output tables and status lines are
// rendered here; everything else lives in the internal packages.
package main
