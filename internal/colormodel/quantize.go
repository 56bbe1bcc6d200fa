package colormodel

// Quantized is the integer colour triple written to every sink: hue in whole
// degrees (0-359), saturation and lightness in whole percent (0-100).
type Quantized struct {
	H int
	S int
	L int
}

// Quantize truncates a float triple to the wire convention. Inputs outside
// their nominal ranges are clamped first so the wire values stay bounded.
func Quantize(h, s, l float64) Quantized {
	if h < 0 {
		h = 0
	}
	hd := int(h)
	if hd >= 360 {
		hd = 359
	}
	return Quantized{
		H: hd,
		S: int(clamp01(s) * 100),
		L: int(clamp01(l) * 100),
	}
}
