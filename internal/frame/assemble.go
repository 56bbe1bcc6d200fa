package frame

import (
	"math"

	"rune/internal/colormodel"
	"rune/internal/ramp"
)

// RowStep is the vertical sampling stride compensating for glyph aspect ratio.
const RowStep = 2

// Cell is one output glyph position. H and S carry the sampled pixel's hue
// and saturation unchanged; L is the lightness after the threshold filter.
type Cell struct {
	Glyph string
	H     float64
	S     float64
	L     float64
}

// Rows returns the logical row count for a buffer of the given pixel height.
func Rows(height int) int {
	return height / RowStep
}

// Assemble maps every sampled pixel to a Cell in row-major order. The grid is
// img.Width() columns by Rows(img.Height()) rows; a trailing odd pixel row is
// not sampled. Lightness strictly above threshold is clipped to 1.0 before
// quantization, so threshold 1.0 disables the filter.
func Assemble(img ImageBuffer, r ramp.Ramp, threshold float64) []Cell {
	rows := Rows(img.height)
	cells := make([]Cell, 0, rows*img.width)
	last := r.Len() - 1
	for row := 0; row < rows; row++ {
		y := row * RowStep
		for x := 0; x < img.width; x++ {
			hsl := colormodel.RGBToHSL(img.RGB(x, y))
			l := hsl.L
			if l > threshold {
				l = 1.0
			}
			cells = append(cells, Cell{
				Glyph: r.Index(GlyphIndex(l, last)),
				H:     hsl.H,
				S:     hsl.S,
				L:     l,
			})
		}
	}
	return cells
}

// GlyphIndex quantizes lightness onto [0,last], rounding halves up.
func GlyphIndex(l float64, last int) int {
	if last <= 0 {
		return 0
	}
	switch {
	case l < 0:
		l = 0
	case l > 1:
		l = 1
	}
	return int(math.Floor(l*float64(last) + 0.5))
}
