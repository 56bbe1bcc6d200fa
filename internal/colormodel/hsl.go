// Package colormodel converts sRGB samples into the hue/saturation/lightness
// triple used by the glyph quantizer and every output encoder.
package colormodel

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Rec. 709 luma coefficients applied to gamma-encoded channel ratios.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// HSL holds hue in degrees [0,360) and saturation and lightness as ratios [0,1].
type HSL struct {
	H float64
	S float64
	L float64
}

// RGBToHSL converts an 8-bit RGB sample.
//
// Lightness is perceptual luma rather than the (max+min)/2 midpoint of
// textbook HSL. Hue and saturation follow the max/min/delta construction:
// saturation is delta/max, and both are zero for achromatic input.
func RGBToHSL(r, g, b uint8) HSL {
	c := colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
	h, s, _ := c.Hsv()
	if h >= 360 {
		h -= 360
	}
	l := lumaR*c.R + lumaG*c.G + lumaB*c.B
	return HSL{H: h, S: s, L: clamp01(l)}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
