package colormodel

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRGBToHSLPrimaries(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		wantH   float64
		wantS   float64
		wantL   float64
	}{
		{"red", 255, 0, 0, 0, 1, 0.2126},
		{"green", 0, 255, 0, 120, 1, 0.7152},
		{"blue", 0, 0, 255, 240, 1, 0.0722},
		{"yellow", 255, 255, 0, 60, 1, 0.9278},
		{"cyan", 0, 255, 255, 180, 1, 0.7874},
		{"magenta", 255, 0, 255, 300, 1, 0.2848},
		{"white", 255, 255, 255, 0, 0, 1},
		{"black", 0, 0, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.r, tt.g, tt.b)
			if !almostEqual(got.H, tt.wantH) {
				t.Fatalf("hue = %v, want %v", got.H, tt.wantH)
			}
			if !almostEqual(got.S, tt.wantS) {
				t.Fatalf("saturation = %v, want %v", got.S, tt.wantS)
			}
			if !almostEqual(got.L, tt.wantL) {
				t.Fatalf("lightness = %v, want %v", got.L, tt.wantL)
			}
		})
	}
}

func TestRGBToHSLRanges(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 5 {
				got := RGBToHSL(uint8(r), uint8(g), uint8(b))
				if got.H < 0 || got.H >= 360 {
					t.Fatalf("hue out of range for (%d,%d,%d): %v", r, g, b, got.H)
				}
				if got.S < 0 || got.S > 1 {
					t.Fatalf("saturation out of range for (%d,%d,%d): %v", r, g, b, got.S)
				}
				if got.L < 0 || got.L > 1 {
					t.Fatalf("lightness out of range for (%d,%d,%d): %v", r, g, b, got.L)
				}
			}
		}
	}
}

func TestRGBToHSLGrayscaleIsAchromatic(t *testing.T) {
	for v := 0; v < 256; v++ {
		got := RGBToHSL(uint8(v), uint8(v), uint8(v))
		if got.H != 0 || got.S != 0 {
			t.Fatalf("gray %d produced hue=%v sat=%v", v, got.H, got.S)
		}
	}
}

func TestRGBToHSLNegativeHueWraps(t *testing.T) {
	// red max with blue above green lands in the magenta half of the wheel
	got := RGBToHSL(255, 0, 128)
	if got.H <= 300 || got.H >= 360 {
		t.Fatalf("expected hue in (300,360), got %v", got.H)
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    Quantized
	}{
		{0, 1, 0.2126, Quantized{0, 100, 21}},
		{359.99, 0.999, 0.5, Quantized{359, 99, 50}},
		{120.4, 0.254, 1, Quantized{120, 25, 100}},
		{-3, -0.5, 2, Quantized{0, 0, 100}},
		{400, 0, 0, Quantized{359, 0, 0}},
	}
	for _, tt := range tests {
		if got := Quantize(tt.h, tt.s, tt.l); got != tt.want {
			t.Fatalf("Quantize(%v,%v,%v) = %+v, want %+v", tt.h, tt.s, tt.l, got, tt.want)
		}
	}
}
