package frame_test

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"rune/internal/frame"
	"rune/internal/ramp"
	"rune/internal/services"
)

func solid(t *testing.T, w, h int, r, g, b uint8) frame.ImageBuffer {
	t.Helper()
	pixels := make([]byte, 0, w*h*frame.Channels)
	for i := 0; i < w*h; i++ {
		pixels = append(pixels, r, g, b)
	}
	buf, err := frame.NewImageBuffer(pixels, w, h)
	if err != nil {
		t.Fatalf("NewImageBuffer: %v", err)
	}
	return buf
}

func gradient(t *testing.T, w, h int) frame.ImageBuffer {
	t.Helper()
	pixels := make([]byte, 0, w*h*frame.Channels)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8((x + y*w) * 255 / (w*h - 1))
			pixels = append(pixels, v, uint8(x*40), 255-v)
		}
	}
	buf, err := frame.NewImageBuffer(pixels, w, h)
	if err != nil {
		t.Fatalf("NewImageBuffer: %v", err)
	}
	return buf
}

func near(got, want uint8) bool {
	d := int(got) - int(want)
	return d >= -1 && d <= 1
}

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
}

func TestNewImageBufferRejectsLengthMismatch(t *testing.T) {
	if _, err := frame.NewImageBuffer(make([]byte, 5), 1, 2); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := frame.NewImageBuffer(nil, -1, 0); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for negative size, got %v", err)
	}
}

func TestNewImageBufferCopiesInput(t *testing.T) {
	pixels := []byte{1, 2, 3}
	buf, err := frame.NewImageBuffer(pixels, 1, 1)
	if err != nil {
		t.Fatalf("NewImageBuffer: %v", err)
	}
	pixels[0] = 99
	if r, _, _ := buf.RGB(0, 0); r != 1 {
		t.Fatalf("buffer aliased caller slice: r=%d", r)
	}
}

func TestAssembleRedExample(t *testing.T) {
	img := solid(t, 2, 2, 255, 0, 0)
	resized, err := frame.Resize(img, 2)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	cells := frame.Assemble(resized, ramp.Simple, 1.0)
	if len(cells) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(cells))
	}
	for i, c := range cells {
		if c.Glyph != ":" {
			t.Fatalf("cell %d glyph = %q, want %q", i, c.Glyph, ":")
		}
		if c.H != 0 || c.S != 1 {
			t.Fatalf("cell %d hue/sat = %v/%v", i, c.H, c.S)
		}
		if math.Abs(c.L-0.2126) > 1e-9 {
			t.Fatalf("cell %d lightness = %v", i, c.L)
		}
	}
}

func TestAssembleWhiteThresholdExample(t *testing.T) {
	img := solid(t, 1, 4, 255, 255, 255)
	resized, err := frame.Resize(img, 1)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	cells := frame.Assemble(resized, ramp.Simple, 0.5)
	if len(cells) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(cells))
	}
	for i, c := range cells {
		if c.L != 1.0 {
			t.Fatalf("cell %d lightness = %v, want 1.0", i, c.L)
		}
		if c.Glyph != "@" {
			t.Fatalf("cell %d glyph = %q", i, c.Glyph)
		}
	}
}

func TestAssembleThresholdOneIsIdentity(t *testing.T) {
	img := gradient(t, 8, 6)
	filtered := frame.Assemble(img, ramp.Dense, 1.0)
	for i, c := range filtered {
		if c.L > 1.0 {
			t.Fatalf("cell %d lightness %v above 1", i, c.L)
		}
	}
	again := frame.Assemble(img, ramp.Dense, 1.0)
	if !reflect.DeepEqual(filtered, again) {
		t.Fatal("assembly is not deterministic")
	}
	// Raw lightness never exceeds 1, so a threshold of 1 must keep every value.
	wide := frame.Assemble(img, ramp.Dense, math.Inf(1))
	if !reflect.DeepEqual(filtered, wide) {
		t.Fatal("threshold 1.0 differs from unfiltered assembly")
	}
}

func TestAssembleThresholdZeroClipsAllButBlack(t *testing.T) {
	pixels := []byte{
		0, 0, 0, 10, 10, 10, 200, 30, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
	img, err := frame.NewImageBuffer(pixels, 3, 2)
	if err != nil {
		t.Fatalf("NewImageBuffer: %v", err)
	}
	cells := frame.Assemble(img, ramp.Blocks, 0.0)
	if len(cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(cells))
	}
	if cells[0].L != 0 || cells[0].Glyph != " " {
		t.Fatalf("black cell changed: %+v", cells[0])
	}
	for _, c := range cells[1:] {
		if c.L != 1.0 || c.Glyph != "█" {
			t.Fatalf("expected clipped cell, got %+v", c)
		}
	}
	if cells[2].H == 0 || cells[2].S == 0 {
		t.Fatalf("hue/saturation should be preserved, got %+v", cells[2])
	}
}

func TestAssembleSamplesEveryOtherRow(t *testing.T) {
	// rows: white, black, black, white, white -> samples rows 0 and 2
	pixels := []byte{
		255, 255, 255,
		0, 0, 0,
		0, 0, 0,
		255, 255, 255,
		255, 255, 255,
	}
	img, err := frame.NewImageBuffer(pixels, 1, 5)
	if err != nil {
		t.Fatalf("NewImageBuffer: %v", err)
	}
	cells := frame.Assemble(img, ramp.Simple, 1.0)
	if len(cells) != frame.Rows(5) {
		t.Fatalf("expected %d cells, got %d", frame.Rows(5), len(cells))
	}
	if cells[0].Glyph != "@" || cells[1].Glyph != " " {
		t.Fatalf("unexpected sampling: %q %q", cells[0].Glyph, cells[1].Glyph)
	}
}

func TestGlyphIndexMonotonicAndRoundsHalfUp(t *testing.T) {
	prev := 0
	for i := 0; i <= 1000; i++ {
		idx := frame.GlyphIndex(float64(i)/1000, 9)
		if idx < prev {
			t.Fatalf("index decreased at l=%v: %d < %d", float64(i)/1000, idx, prev)
		}
		prev = idx
	}
	// 0.5 * 4 = 2 exactly; 0.625 * 4 = 2.5 rounds up to 3
	if got := frame.GlyphIndex(0.625, 4); got != 3 {
		t.Fatalf("GlyphIndex(0.625, 4) = %d, want 3", got)
	}
	if got := frame.GlyphIndex(0.375, 4); got != 2 {
		t.Fatalf("GlyphIndex(0.375, 4) = %d, want 2", got)
	}
	if got := frame.GlyphIndex(-1, 4); got != 0 {
		t.Fatalf("negative lightness = %d", got)
	}
	if got := frame.GlyphIndex(2, 4); got != 4 {
		t.Fatalf("lightness above one = %d", got)
	}
	if got := frame.GlyphIndex(0.7, 0); got != 0 {
		t.Fatalf("single-glyph ramp = %d", got)
	}
}

func TestResizePreservesAspect(t *testing.T) {
	img := gradient(t, 40, 30)
	resized, err := frame.Resize(img, 16)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if resized.Width() != 16 || resized.Height() != 12 {
		t.Fatalf("resized to %dx%d, want 16x12", resized.Width(), resized.Height())
	}
	if resized.Len() != 16*12*frame.Channels {
		t.Fatalf("unexpected buffer length %d", resized.Len())
	}
}

func TestResizeTruncatesHeight(t *testing.T) {
	img := solid(t, 3, 5, 10, 20, 30)
	resized, err := frame.Resize(img, 2)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if resized.Height() != 3 {
		t.Fatalf("height = %d, want 3", resized.Height())
	}
	r, g, b := resized.RGB(1, 2)
	if !near(r, 10) || !near(g, 20) || !near(b, 30) {
		t.Fatalf("solid colour not preserved: %d,%d,%d", r, g, b)
	}
}

func TestResizeZeroHeight(t *testing.T) {
	img := solid(t, 100, 1, 1, 2, 3)
	resized, err := frame.Resize(img, 10)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if resized.Height() != 0 || resized.Width() != 10 {
		t.Fatalf("unexpected dims %dx%d", resized.Width(), resized.Height())
	}
	if cells := frame.Assemble(resized, ramp.Simple, 1); len(cells) != 0 {
		t.Fatalf("expected no cells, got %d", len(cells))
	}
}

func TestResizeRejectsBadWidth(t *testing.T) {
	img := solid(t, 2, 2, 0, 0, 0)
	if _, err := frame.Resize(img, 0); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	writePNG(t, path, 4, 2, color.NRGBA{R: 12, G: 34, B: 56, A: 255})
	buf, err := frame.Decode(path)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if buf.Width() != 4 || buf.Height() != 2 || buf.Channels() != 3 {
		t.Fatalf("unexpected dims %dx%dx%d", buf.Width(), buf.Height(), buf.Channels())
	}
	if r, g, b := buf.RGB(3, 1); r != 12 || g != 34 || b != 56 {
		t.Fatalf("unexpected pixel %d,%d,%d", r, g, b)
	}
}

func TestDecodeFailures(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "bad.jpg")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	for _, path := range []string{garbage, filepath.Join(dir, "missing.png")} {
		if _, err := frame.Decode(path); !errors.Is(err, services.ErrDecode) {
			t.Fatalf("Decode(%s) err = %v, want ErrDecode", path, err)
		}
	}
}

func TestConvertManifestDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.png")
	writePNG(t, path, 240, 200, color.NRGBA{R: 0, G: 0, B: 255, A: 255})
	f, err := frame.Convert(path, 120, ramp.Simple, 1.0)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if f.Cols() != 120 || f.Image.Height() != 100 || f.Rows() != 50 {
		t.Fatalf("unexpected frame dims cols=%d height=%d rows=%d", f.Cols(), f.Image.Height(), f.Rows())
	}
	if len(f.Cells) != f.Cols()*f.Rows() {
		t.Fatalf("cell count %d does not match grid %dx%d", len(f.Cells), f.Cols(), f.Rows())
	}
}
