// Package frame turns decoded pixels into grids of colorized glyph cells.
//
// The pipeline for one still image is Decode -> Resize -> Assemble. Decode
// and Resize wrap the image codecs and the resampler; Assemble is the pure
// part that samples every other pixel row (terminal glyphs are roughly twice
// as tall as they are wide), converts each sample to HSL, applies the
// lightness threshold, and picks a glyph from the ramp.
//
// An AsciiFrame bundles the resized buffer with its cells and, once rendered,
// its HTML line. Frames are created, handed to the sinks, and dropped; nothing
// in this package retains them.
package frame
