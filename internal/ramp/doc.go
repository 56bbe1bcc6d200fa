// Package ramp holds the ordered glyph palettes used to turn lightness into a
// character.
//
// A Ramp is an immutable list of grapheme clusters ordered from the emptiest
// glyph (index 0) to the densest. Ramps are built either from one of the
// named built-ins or from a user-supplied string; both paths segment text with
// Unicode grapheme rules so multi-byte glyphs such as block shades occupy a
// single slot.
package ramp
