package processor

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doanhtu/image-interpolation/internal/models"
)

func testImage(width, height int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func TestResizeAll(t *testing.T) {
	p := NewImageProcessor()

	tests := []struct {
		name       string
		width      int
		height     int
		scale      float64
		wantWidth  int
		wantHeight int
		wantErr    bool
	}{
		{
			name:       "doubling",
			width:      100,
			height:     50,
			scale:      2.0,
			wantWidth:  200,
			wantHeight: 100,
		},
		{
			name:       "identity scale preserves dimensions",
			width:      33,
			height:     17,
			scale:      1.0,
			wantWidth:  33,
			wantHeight: 17,
		},
		{
			name:       "fractional scale truncates",
			width:      5,
			height:     3,
			scale:      1.5,
			wantWidth:  7,
			wantHeight: 4,
		},
		{
			name:       "downscale",
			width:      10,
			height:     10,
			scale:      0.5,
			wantWidth:  5,
			wantHeight: 5,
		},
		{
			name:    "zero scale",
			width:   10,
			height:  10,
			scale:   0,
			wantErr: true,
		},
		{
			name:    "negative scale",
			width:   10,
			height:  10,
			scale:   -1.0,
			wantErr: true,
		},
		{
			name:    "nan scale",
			width:   10,
			height:  10,
			scale:   math.NaN(),
			wantErr: true,
		},
		{
			name:    "infinite scale",
			width:   10,
			height:  10,
			scale:   math.Inf(1),
			wantErr: true,
		},
		{
			name:    "scale collapses dimensions",
			width:   2,
			height:  2,
			scale:   0.1,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			results, err := p.ResizeAll(testImage(tc.width, tc.height), tc.scale)
			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, results)
				return
			}
			require.NoError(t, err)

			require.Len(t, results, len(models.AllMethods))
			for _, method := range models.AllMethods {
				result, ok := results[method]
				require.True(t, ok, "missing method %s", method)
				bounds := result.Bounds()
				assert.Equal(t, tc.wantWidth, bounds.Dx(), "width for %s", method)
				assert.Equal(t, tc.wantHeight, bounds.Dy(), "height for %s", method)
			}
		})
	}
}

func TestTargetSize(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		scale      float64
		wantWidth  int
		wantHeight int
		wantErr    bool
	}{
		{
			name:       "floors the product",
			width:      3,
			height:     3,
			scale:      1.4,
			wantWidth:  4,
			wantHeight: 4,
		},
		{
			name:       "quadruple",
			width:      25,
			height:     10,
			scale:      4.0,
			wantWidth:  100,
			wantHeight: 40,
		},
		{
			name:    "too small after truncation",
			width:   1,
			height:  1,
			scale:   0.9,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h, err := targetSize(image.Rect(0, 0, tc.width, tc.height), tc.scale)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantWidth, w)
			assert.Equal(t, tc.wantHeight, h)
		})
	}
}
