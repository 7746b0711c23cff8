package utils

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doanhtu/image-interpolation/internal/models"
)

func TestVariantFilename(t *testing.T) {
	tests := []struct {
		name   string
		source string
		method models.Method
		want   string
	}{
		{
			name:   "bicubic",
			source: "photo.jpg",
			method: models.MethodBicubic,
			want:   "photo_resized_bicubic.png",
		},
		{
			name:   "nearest neighbor slugs spaces",
			source: "holiday.webp",
			method: models.MethodNearestNeighbor,
			want:   "holiday_resized_nearest_neighbor.png",
		},
		{
			name:   "strips directories",
			source: "/tmp/uploads/cat.png",
			method: models.MethodLanczos,
			want:   "cat_resized_lanczos.png",
		},
		{
			name:   "name without extension",
			source: "scan",
			method: models.MethodBilinear,
			want:   "scan_resized_bilinear.png",
		},
		{
			// Only the final extension is stripped; interior dots are
			// part of the basename.
			name:   "multi-dot name keeps interior dots",
			source: "my.photo.png",
			method: models.MethodBicubic,
			want:   "my.photo_resized_bicubic.png",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, VariantFilename(tc.source, tc.method))
		})
	}
}

func TestHasImageExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"a.jpg", true},
		{"a.JPEG", true},
		{"a.png", true},
		{"a.bmp", true},
		{"a.webp", true},
		{"a.gif", false},
		{"a.txt", false},
		{"noext", false},
	}

	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			assert.Equal(t, tc.want, HasImageExtension(tc.filename))
		})
	}
}

func TestIsValidImageType(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"image/png", true},
		{"image/jpeg", true},
		{"image/webp", true},
		{"IMAGE/BMP", true},
		{"image/gif", false},
		{"text/plain", false},
	}

	for _, tc := range tests {
		t.Run(tc.contentType, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidImageType(tc.contentType))
		})
	}
}

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "plain path",
			url:  "https://example.com/photos/cat.jpg",
			want: "cat.jpg",
		},
		{
			name: "query string ignored",
			url:  "https://example.com/cat.png?w=100",
			want: "cat.png",
		},
		{
			name: "no path",
			url:  "https://example.com",
			want: "image",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilenameFromURL(tc.url))
		})
	}
}

func TestDownloadImage(t *testing.T) {
	pngData := func() []byte {
		buf := &bytes.Buffer{}
		_ = png.Encode(buf, image.NewRGBA(image.Rect(0, 0, 4, 4)))
		return buf.Bytes()
	}()

	tests := []struct {
		name    string
		body    []byte
		status  int
		wantErr bool
	}{
		{
			name:   "success",
			body:   pngData,
			status: http.StatusOK,
		},
		{
			name:    "not found",
			body:    []byte("not found"),
			status:  http.StatusNotFound,
			wantErr: true,
		},
		{
			name:    "not an image",
			body:    []byte("plain text body"),
			status:  http.StatusOK,
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    []byte{},
			status:  http.StatusOK,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, err := w.Write(tc.body)
				assert.NoError(t, err)
			}))
			defer srv.Close()

			data, contentType, err := DownloadImage(context.Background(), srv.URL, 1<<20)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.body, data)
			assert.Equal(t, "image/png", contentType)
		})
	}
}
