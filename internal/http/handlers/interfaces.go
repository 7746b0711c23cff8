package handlers

import (
	"context"

	"github.com/doanhtu/image-interpolation/internal/models"
	"github.com/doanhtu/image-interpolation/internal/services/processor"
)

// ResultStore is the slice of the storage service the handlers need.
type ResultStore interface {
	StoreResult(ctx context.Context, sourceFilename string, scale float64, out *processor.Output) (*models.ResizeResult, error)
	GetVariant(ctx context.Context, id string) ([]byte, string, error)
	GenerateCacheKey(sourceData []byte, scale float64) string
	GetCachedResult(ctx context.Context, cacheKey string) (*models.ResizeResult, error)
	SetCachedResult(ctx context.Context, cacheKey string, result *models.ResizeResult) error
	SaveJob(ctx context.Context, job *models.ProcessingJob) error
	GetJob(ctx context.Context, id string) (*models.ProcessingJob, error)
	HealthCheck(ctx context.Context) map[string]string
}

// JobQueue publishes async processing jobs. May be absent when the
// broker is down; handlers must tolerate a nil queue.
type JobQueue interface {
	PublishJob(ctx context.Context, job *models.ProcessingJob) error
	GetQueueStats() (map[string]interface{}, error)
	HealthCheck() string
}
