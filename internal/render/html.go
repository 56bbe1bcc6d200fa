package render

import (
	"strconv"
	"strings"

	"rune/internal/colormodel"
	"rune/internal/frame"
)

// LineBreak is written between rows. It is the two characters '\' and 'n',
// which the player expands after parsing.
const LineBreak = `\n`

// Run is a maximal group of adjacent cells in one row sharing a glyph and a
// quantized colour.
type Run struct {
	Text  string
	Color colormodel.Quantized
	Count int
}

// Runs groups the frame's cells into runs, one slice per row.
func Runs(f frame.AsciiFrame) [][]Run {
	width := f.Cols()
	if width <= 0 || len(f.Cells) == 0 {
		return nil
	}
	rows := make([][]Run, 0, (len(f.Cells)+width-1)/width)
	var (
		current []Run
		glyph   string
		text    strings.Builder
		color   colormodel.Quantized
		count   int
	)
	flush := func() {
		if count == 0 {
			return
		}
		current = append(current, Run{Text: text.String(), Color: color, Count: count})
		text.Reset()
		count = 0
	}
	for i, cell := range f.Cells {
		if i != 0 && i%width == 0 {
			flush()
			rows = append(rows, current)
			current = nil
		}
		q := colormodel.Quantize(cell.H, cell.S, cell.L)
		if count > 0 && (cell.Glyph != glyph || q != color) {
			flush()
		}
		if count == 0 {
			glyph, color = cell.Glyph, q
		}
		text.WriteString(cell.Glyph)
		count++
	}
	flush()
	return append(rows, current)
}

// HTML renders the frame as a single line of coloured spans.
func HTML(f frame.AsciiFrame) string {
	var b strings.Builder
	b.Grow(len(f.Cells) * 6)
	for i, row := range Runs(f) {
		if i > 0 {
			b.WriteString(LineBreak)
		}
		for _, run := range row {
			writeSpan(&b, run)
		}
	}
	return b.String()
}

// Attach fills f.HTML and returns the updated frame.
func Attach(f frame.AsciiFrame) frame.AsciiFrame {
	f.HTML = HTML(f)
	return f
}

// RunCount totals the spans HTML would emit.
func RunCount(f frame.AsciiFrame) int {
	n := 0
	for _, row := range Runs(f) {
		n += len(row)
	}
	return n
}

func writeSpan(b *strings.Builder, run Run) {
	b.WriteString(`<span style="color:hsl(`)
	b.WriteString(strconv.Itoa(run.Color.H))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(run.Color.S))
	b.WriteString("%,")
	b.WriteString(strconv.Itoa(run.Color.L))
	b.WriteString(`%)">`)
	b.WriteString(run.Text)
	b.WriteString("</span>")
}
