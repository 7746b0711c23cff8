package processor

import (
	"image"
	"io"

	// Register the decoders for every accepted upload format.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Decode reads an image in any of the accepted formats (jpeg, png, bmp,
// webp) and reports the detected format name.
func (p *ImageProcessor) Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}
