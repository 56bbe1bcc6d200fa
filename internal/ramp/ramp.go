package ramp

import (
	"errors"
	"strings"

	"github.com/rivo/uniseg"
)

// ErrEmptyRamp is returned when a definition contains no usable glyphs.
var ErrEmptyRamp = errors.New("ramp has no glyphs")

// Ramp is an ordered, non-empty palette of grapheme clusters.
type Ramp struct {
	name   string
	glyphs []string
}

// New segments definition into grapheme clusters. Invalid UTF-8, including a
// multi-byte sequence cut short at the end of the string, is dropped.
func New(definition string) (Ramp, error) {
	return build("custom", definition)
}

func build(name, definition string) (Ramp, error) {
	clean := strings.ToValidUTF8(definition, "")
	glyphs := make([]string, 0, len(clean))
	gr := uniseg.NewGraphemes(clean)
	for gr.Next() {
		glyphs = append(glyphs, gr.Str())
	}
	if len(glyphs) == 0 {
		return Ramp{}, ErrEmptyRamp
	}
	return Ramp{name: name, glyphs: glyphs}, nil
}

func mustBuild(name, definition string) Ramp {
	r, err := build(name, definition)
	if err != nil {
		panic("ramp " + name + ": " + err.Error())
	}
	return r
}

// Name reports the built-in name, or "custom" for user ramps.
func (r Ramp) Name() string {
	return r.name
}

// Len returns the number of glyphs. A zero Ramp has length 0.
func (r Ramp) Len() int {
	return len(r.glyphs)
}

// Index returns the glyph at i, clamping out-of-range indexes to the ends.
func (r Ramp) Index(i int) string {
	if len(r.glyphs) == 0 {
		return ""
	}
	if i < 0 {
		i = 0
	}
	if i >= len(r.glyphs) {
		i = len(r.glyphs) - 1
	}
	return r.glyphs[i]
}

// Glyphs returns a copy of the ordered glyph list.
func (r Ramp) Glyphs() []string {
	return append([]string(nil), r.glyphs...)
}

// String joins the glyphs back into the definition text.
func (r Ramp) String() string {
	return strings.Join(r.glyphs, "")
}

// MaxWidth returns the widest glyph measured in monospace terminal cells.
func (r Ramp) MaxWidth() int {
	widest := 0
	for _, g := range r.glyphs {
		if w := uniseg.StringWidth(g); w > widest {
			widest = w
		}
	}
	return widest
}
