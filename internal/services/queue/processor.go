package queue

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/doanhtu/image-interpolation/internal/models"
	"github.com/doanhtu/image-interpolation/pkg/utils"
)

func (q *Service) processJob(ctx context.Context, job *models.ProcessingJob) (*models.ResizeResult, error) {
	imageData, _, err := utils.DownloadImage(ctx, job.ImageURL, q.maxFileSize)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}

	cacheKey := q.storage.GenerateCacheKey(imageData, job.Scale)
	if cached, err := q.storage.GetCachedResult(ctx, cacheKey); err == nil && cached != nil {
		q.logger.Info("Cache hit", zap.String("job_id", job.ID))
		return cached, nil
	}

	out, err := q.processor.ProcessImage(bytes.NewReader(imageData), job.Scale)
	if err != nil {
		return nil, fmt.Errorf("failed to process image: %w", err)
	}

	result, err := q.storage.StoreResult(ctx, utils.FilenameFromURL(job.ImageURL), job.Scale, out)
	if err != nil {
		return nil, fmt.Errorf("failed to store result: %w", err)
	}

	if err := q.storage.SetCachedResult(ctx, cacheKey, result); err != nil {
		q.logger.Warn("Failed to cache result", zap.Error(err))
	}

	return result, nil
}
