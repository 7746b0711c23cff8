package processor

import (
	"image"
	"image/png"
	"io"
)

// encodePNG writes the image as PNG. Every variant is delivered as PNG
// regardless of the source format.
func (p *ImageProcessor) encodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
