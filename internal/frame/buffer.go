package frame

import (
	"fmt"
	"image"
	"image/draw"

	"rune/internal/services"
)

// Channels is the fixed sample count per pixel (RGB).
const Channels = 3

// ImageBuffer is an immutable row-major, top-to-bottom RGB pixel buffer.
type ImageBuffer struct {
	pixels   []byte
	width    int
	height   int
	channels int
}

// NewImageBuffer copies pixels into a buffer after checking that the length
// matches width*height*Channels.
func NewImageBuffer(pixels []byte, width, height int) (ImageBuffer, error) {
	if width < 0 || height < 0 {
		return ImageBuffer{}, services.Wrap(services.ErrValidation, "frame", "buffer", fmt.Sprintf("negative dimensions %dx%d", width, height), nil)
	}
	if want := width * height * Channels; len(pixels) != want {
		return ImageBuffer{}, services.Wrap(services.ErrValidation, "frame", "buffer",
			fmt.Sprintf("pixel length %d does not match %dx%dx%d", len(pixels), width, height, Channels), nil)
	}
	return ImageBuffer{
		pixels:   append([]byte(nil), pixels...),
		width:    width,
		height:   height,
		channels: Channels,
	}, nil
}

// Width returns the column count in pixels.
func (b ImageBuffer) Width() int { return b.width }

// Height returns the row count in pixels.
func (b ImageBuffer) Height() int { return b.height }

// Channels returns the samples per pixel.
func (b ImageBuffer) Channels() int { return b.channels }

// Len returns the number of bytes held.
func (b ImageBuffer) Len() int { return len(b.pixels) }

// RGB returns the sample at column x, row y. Coordinates are not bounds
// checked beyond the slice access itself.
func (b ImageBuffer) RGB(x, y int) (r, g, bl uint8) {
	idx := (y*b.width + x) * b.channels
	return b.pixels[idx], b.pixels[idx+1], b.pixels[idx+2]
}

// Pixels returns a copy of the raw interleaved samples.
func (b ImageBuffer) Pixels() []byte {
	return append([]byte(nil), b.pixels...)
}

// FromImage flattens any image.Image into an RGB buffer. Alpha is dropped
// without compositing.
func FromImage(img image.Image) ImageBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}
	pixels := make([]byte, 0, w*h*Channels)
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		for x := 0; x < w; x++ {
			pixels = append(pixels, row[x*4], row[x*4+1], row[x*4+2])
		}
	}
	return ImageBuffer{pixels: pixels, width: w, height: h, channels: Channels}
}

// Image exposes the buffer as an opaque *image.RGBA for resampling.
func (b ImageBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for i, j := 0, 0; i < len(b.pixels); i, j = i+b.channels, j+4 {
		img.Pix[j] = b.pixels[i]
		img.Pix[j+1] = b.pixels[i+1]
		img.Pix[j+2] = b.pixels[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}
