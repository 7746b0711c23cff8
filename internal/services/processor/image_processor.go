package processor

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/doanhtu/image-interpolation/internal/models"
)

type ImageProcessor struct{}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{}
}

// VariantBuffer holds one PNG-encoded rendition of the source image.
type VariantBuffer struct {
	Method models.Method
	Width  int
	Height int
	Data   *bytes.Buffer
}

// Output is the complete outcome of processing one source image at one
// scale factor. Variants always holds one entry per supported method.
type Output struct {
	SourceWidth  int
	SourceHeight int
	Width        int
	Height       int
	Variants     []VariantBuffer
}

// ProcessImage decodes the source, resizes it with every supported
// interpolation method and re-encodes each result as PNG. The whole
// call fails if the source cannot be decoded or the target dimensions
// collapse to zero; there are no partial results.
func (p *ImageProcessor) ProcessImage(r io.Reader, scale float64) (*Output, error) {
	img, _, err := p.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	resized, err := p.ResizeAll(img, scale)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	out := &Output{
		SourceWidth:  bounds.Dx(),
		SourceHeight: bounds.Dy(),
	}

	for _, method := range models.AllMethods {
		result := resized[method]
		buffer := &bytes.Buffer{}
		if err := p.encodePNG(buffer, result); err != nil {
			return nil, fmt.Errorf("failed to encode %s variant: %w", method, err)
		}

		rb := result.Bounds()
		out.Width = rb.Dx()
		out.Height = rb.Dy()
		out.Variants = append(out.Variants, VariantBuffer{
			Method: method,
			Width:  rb.Dx(),
			Height: rb.Dy(),
			Data:   buffer,
		})
	}

	return out, nil
}

// ValidateImage checks the upload against the size limit and verifies
// it decodes, then rewinds the reader for further processing.
func (p *ImageProcessor) ValidateImage(file io.ReadSeeker, maxSize int64) error {
	size, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("failed to measure file: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}

	if size > maxSize {
		return fmt.Errorf("file size %d exceeds maximum allowed size %d", size, maxSize)
	}

	if _, _, err := image.Decode(file); err != nil {
		return fmt.Errorf("invalid image format: %w", err)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}
	return nil
}
