package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doanhtu/image-interpolation/internal/models"
)

// imageExtensions is the accepted upload/folder extension set.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".webp"}

func DownloadImage(ctx context.Context, imageURL string, maxSize int64) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to download image: status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(io.LimitReader(resp.Body, maxSize))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image data: %w", err)
	}

	if len(imageData) == 0 {
		return nil, "", fmt.Errorf("empty image data")
	}

	contentType := http.DetectContentType(imageData)
	if !IsValidImageType(contentType) {
		return nil, "", fmt.Errorf("invalid content type: %s", contentType)
	}

	return imageData, contentType, nil
}

// IsValidImageType checks if content type is an accepted image type.
func IsValidImageType(contentType string) bool {
	validTypes := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/bmp",
		"image/webp",
	}

	ct := strings.ToLower(contentType)
	for _, validType := range validTypes {
		if strings.Contains(ct, validType) {
			return true
		}
	}
	return false
}

// HasImageExtension reports whether the filename carries one of the
// accepted image extensions. Used by the folder variant to filter
// directory listings.
func HasImageExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range imageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// VariantFilename builds the download name for one resized rendition:
// <basename>_resized_<method>.png with the method slug lowercased and
// spaces replaced by underscores.
func VariantFilename(sourceFilename string, method models.Method) string {
	base := strings.TrimSuffix(filepath.Base(sourceFilename), filepath.Ext(sourceFilename))
	return fmt.Sprintf("%s_resized_%s.png", base, method.Slug())
}

// FilenameFromURL extracts a usable base filename from an image URL,
// falling back to a generic name when the path carries none.
func FilenameFromURL(imageURL string) string {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return "image"
	}
	name := filepath.Base(parsed.Path)
	if name == "" || name == "." || name == "/" {
		return "image"
	}
	return name
}

// GenerateStorageKey builds a collision-free object key for persistent
// storage of a variant.
func GenerateStorageKey(filename string) string {
	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filename, ext)
	timestamp := time.Now().Unix()
	id := uuid.New().String()[:8]

	return fmt.Sprintf("resized/%s_%d_%s%s", name, timestamp, id, ext)
}
