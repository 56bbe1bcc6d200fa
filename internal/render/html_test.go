package render_test

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"rune/internal/frame"
	"rune/internal/render"
)

func gridFrame(t *testing.T, cols int, cells []frame.Cell) frame.AsciiFrame {
	t.Helper()
	rows := len(cells) / cols
	img, err := frame.NewImageBuffer(make([]byte, cols*rows*2*frame.Channels), cols, rows*2)
	if err != nil {
		t.Fatalf("NewImageBuffer: %v", err)
	}
	return frame.AsciiFrame{Image: img, Cells: cells}
}

func TestHTMLMergesRunsAndBreaksRows(t *testing.T) {
	red := frame.Cell{Glyph: "#", H: 0, S: 1, L: 0.5}
	blue := frame.Cell{Glyph: "#", H: 240, S: 1, L: 0.5}
	f := gridFrame(t, 3, []frame.Cell{red, red, blue, red, red, red})

	got := render.HTML(f)
	want := `<span style="color:hsl(0,100%,50%)">##</span>` +
		`<span style="color:hsl(240,100%,50%)">#</span>` +
		`\n` +
		`<span style="color:hsl(0,100%,50%)">###</span>`
	if got != want {
		t.Fatalf("HTML mismatch\n got: %s\nwant: %s", got, want)
	}
	if render.RunCount(f) != 3 {
		t.Fatalf("RunCount = %d, want 3", render.RunCount(f))
	}
}

func TestHTMLSplitsOnGlyphAndQuantizedColour(t *testing.T) {
	a := frame.Cell{Glyph: ".", H: 10.2, S: 0.501, L: 0.3}
	b := frame.Cell{Glyph: ".", H: 10.9, S: 0.509, L: 0.305} // same after truncation
	c := frame.Cell{Glyph: ":", H: 10.2, S: 0.501, L: 0.3}
	f := gridFrame(t, 3, []frame.Cell{a, b, c})
	rows := render.Runs(f)
	if len(rows) != 1 || len(rows[0]) != 2 {
		t.Fatalf("unexpected runs %+v", rows)
	}
	if rows[0][0].Text != ".." || rows[0][0].Count != 2 {
		t.Fatalf("first run = %+v", rows[0][0])
	}
	if rows[0][1].Text != ":" {
		t.Fatalf("second run = %+v", rows[0][1])
	}
}

var spanPattern = regexp.MustCompile(`<span style="color:hsl\((\d+),(\d+)%,(\d+)%\)">(.*?)</span>`)

func TestHTMLRoundTripsCells(t *testing.T) {
	glyphs := []string{" ", "░", "▒", "▓", "█"}
	cells := make([]frame.Cell, 0, 40)
	for i := 0; i < 40; i++ {
		cells = append(cells, frame.Cell{
			Glyph: glyphs[(i/3)%len(glyphs)],
			H:     float64((i / 4) * 30),
			S:     0.75,
			L:     float64(i%5) / 4,
		})
	}
	f := gridFrame(t, 8, cells)
	lines := strings.Split(render.HTML(f), render.LineBreak)
	if len(lines) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(lines))
	}

	idx := 0
	for _, line := range lines {
		for _, m := range spanPattern.FindAllStringSubmatch(line, -1) {
			h, _ := strconv.Atoi(m[1])
			s, _ := strconv.Atoi(m[2])
			l, _ := strconv.Atoi(m[3])
			for _, g := range strings.Split(m[4], "") {
				// Split by rune works here because every glyph is one code point.
				cell := cells[idx]
				if g != cell.Glyph || h != int(cell.H) || s != int(cell.S*100) || l != int(cell.L*100) {
					t.Fatalf("cell %d mismatch: got %q hsl(%d,%d,%d) want %+v", idx, g, h, s, l, cell)
				}
				idx++
			}
		}
	}
	if idx != len(cells) {
		t.Fatalf("reconstructed %d cells, want %d", idx, len(cells))
	}
}

func TestHTMLEmptyFrame(t *testing.T) {
	if got := render.HTML(frame.AsciiFrame{}); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestAttachFillsHTML(t *testing.T) {
	f := gridFrame(t, 1, []frame.Cell{{Glyph: "@", L: 1}})
	f = render.Attach(f)
	if f.HTML != `<span style="color:hsl(0,0%,100%)">@</span>` {
		t.Fatalf("unexpected HTML %q", f.HTML)
	}
}
