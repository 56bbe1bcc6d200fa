// Package config loads, normalizes, and validates rune configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the RUNE_FFMPEG and RUNE_FFPROBE environment
// fallbacks. Command-line flags are applied on top by the caller and the
// result re-validated, so downstream code always receives absolute paths and
// in-range conversion settings.
package config
