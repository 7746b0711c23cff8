package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/doanhtu/image-interpolation/internal/models"
)

// === REQUEST PARSING ===

func (h *ImageHandler) parseScale(value string) (float64, error) {
	if value == "" {
		return 0, fmt.Errorf("scale is required")
	}

	scale, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid scale: must be a number")
	}

	return h.validateScale(scale)
}

func (h *ImageHandler) validateScale(scale float64) (float64, error) {
	min := h.config.Resize.MinScale
	max := h.config.Resize.MaxScale
	if scale < min || scale > max {
		return 0, fmt.Errorf("scale must be between %v and %v", min, max)
	}
	return scale, nil
}

func (h *ImageHandler) parseMultipartFiles(c *gin.Context) ([]*multipart.FileHeader, error) {
	if err := c.Request.ParseMultipartForm(h.config.Storage.MaxFileSize * 10); err != nil {
		return nil, fmt.Errorf("failed to parse form data: %v", err)
	}

	files := c.Request.MultipartForm.File[imagesParamKey]
	if len(files) == 0 {
		return nil, fmt.Errorf("no images provided")
	}

	return files, nil
}

func (h *ImageHandler) readUpload(file multipart.File) ([]byte, error) {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return io.ReadAll(file)
}

// === PROCESSING LOGIC ===

// resizeSource runs the full pipeline for one in-memory source: cache
// lookup, four-way resize, variant storage, cache fill.
func (h *ImageHandler) resizeSource(ctx context.Context, filename string, data []byte, scale float64) (*models.ResizeResult, error) {
	cacheKey := h.storage.GenerateCacheKey(data, scale)
	if cached, err := h.storage.GetCachedResult(ctx, cacheKey); err == nil && cached != nil {
		h.logger.Info("Cache hit", zap.String("cache_key", cacheKey))
		return cached, nil
	}

	out, err := h.processor.ProcessImage(bytes.NewReader(data), scale)
	if err != nil {
		return nil, err
	}

	result, err := h.storage.StoreResult(ctx, filename, scale, out)
	if err != nil {
		return nil, err
	}

	if err := h.storage.SetCachedResult(ctx, cacheKey, result); err != nil {
		h.logger.Warn("Failed to cache result", zap.String("cache_key", cacheKey), zap.Error(err))
	}

	return result, nil
}

func (h *ImageHandler) processBatchFile(c *gin.Context, fh *multipart.FileHeader, scale float64) models.BatchItem {
	item := models.BatchItem{SourceFilename: fh.Filename}

	file, err := fh.Open()
	if err != nil {
		item.Error = "failed to open file: " + err.Error()
		return item
	}
	defer file.Close()

	if err := h.processor.ValidateImage(file, h.config.Storage.MaxFileSize); err != nil {
		item.Error = "invalid image: " + err.Error()
		return item
	}

	data, err := h.readUpload(file)
	if err != nil {
		item.Error = "failed to read file: " + err.Error()
		return item
	}

	result, err := h.resizeSource(c.Request.Context(), fh.Filename, data, scale)
	if err != nil {
		h.logger.Warn("Batch item failed",
			zap.String("filename", fh.Filename),
			zap.Error(err))
		item.Error = err.Error()
		return item
	}

	item.Result = result
	return item
}

func (h *ImageHandler) processFolderFile(c *gin.Context, path string, scale float64) models.BatchItem {
	item := models.BatchItem{SourceFilename: filepath.Base(path)}

	data, err := os.ReadFile(path)
	if err != nil {
		item.Error = "failed to read file: " + err.Error()
		return item
	}

	if int64(len(data)) > h.config.Storage.MaxFileSize {
		item.Error = fmt.Sprintf("file size %d exceeds maximum allowed size %d",
			len(data), h.config.Storage.MaxFileSize)
		return item
	}

	result, err := h.resizeSource(c.Request.Context(), filepath.Base(path), data, scale)
	if err != nil {
		h.logger.Warn("Folder item failed",
			zap.String("path", path),
			zap.Error(err))
		item.Error = err.Error()
		return item
	}

	item.Result = result
	return item
}

// === RESPONSE HANDLING ===

func (h *ImageHandler) respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.APIResponse{
		Success: false,
		Error:   message,
	})
}

// === UTILITY METHODS ===

func (h *ImageHandler) calculateOverallHealth(services map[string]string) string {
	for _, status := range services {
		if status != "healthy" && status != "not configured" {
			return "unhealthy"
		}
	}
	return "healthy"
}
