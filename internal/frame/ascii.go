package frame

import (
	"rune/internal/ramp"
)

// AsciiFrame is one converted frame: the resized pixels, their cells, and the
// rendered HTML line once a renderer has filled it in.
type AsciiFrame struct {
	Image ImageBuffer
	Cells []Cell
	HTML  string
}

// Cols returns the number of glyph columns.
func (f AsciiFrame) Cols() int { return f.Image.Width() }

// Rows returns the number of glyph rows.
func (f AsciiFrame) Rows() int { return Rows(f.Image.Height()) }

// Convert decodes the file at path, resizes it to width columns, and assembles
// its cells.
func Convert(path string, width int, r ramp.Ramp, threshold float64) (AsciiFrame, error) {
	decoded, err := Decode(path)
	if err != nil {
		return AsciiFrame{}, err
	}
	return FromBuffer(decoded, width, r, threshold)
}

// FromBuffer resizes an already decoded buffer and assembles its cells.
func FromBuffer(decoded ImageBuffer, width int, r ramp.Ramp, threshold float64) (AsciiFrame, error) {
	resized, err := Resize(decoded, width)
	if err != nil {
		return AsciiFrame{}, err
	}
	return AsciiFrame{
		Image: resized,
		Cells: Assemble(resized, r, threshold),
	}, nil
}
