// Package probe reads container metadata with ffprobe so a video conversion
// can report source dimensions and an expected frame count before extraction
// starts.
package probe
