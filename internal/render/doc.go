// Package render turns assembled frames into the compact HTML line consumed by
// the browser player: colour runs wrapped in hsl() spans, rows separated by a
// literal backslash-n sequence.
package render
