package frame

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder for extracted video frames
	_ "image/png"  // PNG decoder
	"os"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"rune/internal/services"
)

// Decode reads an image file into an RGB buffer.
func Decode(path string) (ImageBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImageBuffer{}, services.Wrap(services.ErrDecode, "frame", "decode", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return ImageBuffer{}, services.Wrap(services.ErrDecode, "frame", "decode", path, err)
	}
	return FromImage(img), nil
}

// ScaledHeight is the aspect-preserving height for targetWidth, truncated.
func ScaledHeight(width, height, targetWidth int) int {
	if width <= 0 {
		return 0
	}
	return height * targetWidth / width
}

// Resize resamples the buffer to targetWidth columns, preserving aspect ratio.
func Resize(src ImageBuffer, targetWidth int) (ImageBuffer, error) {
	if targetWidth <= 0 {
		return ImageBuffer{}, services.Wrap(services.ErrValidation, "frame", "resize", fmt.Sprintf("target width must be positive, got %d", targetWidth), nil)
	}
	if src.width == 0 || src.height == 0 {
		return ImageBuffer{}, services.Wrap(services.ErrDecode, "frame", "resize", "source image is empty", nil)
	}
	newHeight := ScaledHeight(src.width, src.height, targetWidth)
	if newHeight == 0 {
		return ImageBuffer{width: targetWidth, channels: Channels}, nil
	}
	if targetWidth == src.width && newHeight == src.height {
		return ImageBuffer{
			pixels:   append([]byte(nil), src.pixels...),
			width:    src.width,
			height:   src.height,
			channels: src.channels,
		}, nil
	}
	resized := resize.Resize(uint(targetWidth), uint(newHeight), src.Image(), resize.Bilinear) //nolint:gosec // dimensions are positive
	return FromImage(resized), nil
}
