package processor

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/doanhtu/image-interpolation/internal/models"
)

// filters maps each supported method to its resampling kernel. The
// kernels themselves come from the imaging library.
var filters = map[models.Method]imaging.ResampleFilter{
	models.MethodNearestNeighbor: imaging.NearestNeighbor,
	models.MethodBilinear:        imaging.Linear,
	models.MethodBicubic:         imaging.CatmullRom,
	models.MethodLanczos:         imaging.Lanczos,
}

// ResizeAll resizes img once per supported interpolation method. Target
// dimensions are computed once, floor(w*scale) x floor(h*scale), so
// every variant has identical bounds. The returned map always carries
// exactly one entry per method in models.AllMethods.
func (p *ImageProcessor) ResizeAll(img image.Image, scale float64) (map[models.Method]image.Image, error) {
	width, height, err := targetSize(img.Bounds(), scale)
	if err != nil {
		return nil, err
	}

	results := make(map[models.Method]image.Image, len(models.AllMethods))
	for _, method := range models.AllMethods {
		results[method] = imaging.Resize(img, width, height, filters[method])
	}

	return results, nil
}

func targetSize(bounds image.Rectangle, scale float64) (int, int, error) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return 0, 0, fmt.Errorf("scale factor must be a positive finite number, got %v", scale)
	}

	width := int(math.Floor(float64(bounds.Dx()) * scale))
	height := int(math.Floor(float64(bounds.Dy()) * scale))

	if width < 1 || height < 1 {
		return 0, 0, fmt.Errorf("target dimensions %dx%d are too small at scale %v", width, height, scale)
	}

	return width, height, nil
}
