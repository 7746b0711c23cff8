package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/doanhtu/image-interpolation/internal/models"
	"github.com/doanhtu/image-interpolation/internal/services/processor"
	"github.com/doanhtu/image-interpolation/pkg/utils"
)

type storedVariant struct {
	data     []byte
	filename string
}

// fakeStore is an in-memory ResultStore for handler tests.
type fakeStore struct {
	variants map[string]storedVariant
	jobs     map[string]*models.ProcessingJob
	cache    map[string]*models.ResizeResult
	health   map[string]string
	nextID   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		variants: make(map[string]storedVariant),
		jobs:     make(map[string]*models.ProcessingJob),
		cache:    make(map[string]*models.ResizeResult),
		health:   map[string]string{"redis": "healthy", "supabase": "not configured"},
	}
}

func (f *fakeStore) StoreResult(_ context.Context, sourceFilename string, scale float64, out *processor.Output) (*models.ResizeResult, error) {
	variants := make([]models.Variant, 0, len(out.Variants))
	for _, vb := range out.Variants {
		f.nextID++
		id := fmt.Sprintf("variant-%d", f.nextID)
		filename := utils.VariantFilename(sourceFilename, vb.Method)
		f.variants[id] = storedVariant{data: vb.Data.Bytes(), filename: filename}

		variants = append(variants, models.Variant{
			Method:      vb.Method.String(),
			Width:       vb.Width,
			Height:      vb.Height,
			FileSize:    int64(vb.Data.Len()),
			Filename:    filename,
			DownloadURL: "/api/v1/downloads/" + id,
		})
	}

	f.nextID++
	return &models.ResizeResult{
		ID:             fmt.Sprintf("result-%d", f.nextID),
		SourceFilename: sourceFilename,
		SourceWidth:    out.SourceWidth,
		SourceHeight:   out.SourceHeight,
		Scale:          scale,
		Variants:       variants,
		ProcessedAt:    time.Now(),
	}, nil
}

func (f *fakeStore) GetVariant(_ context.Context, id string) ([]byte, string, error) {
	v, ok := f.variants[id]
	if !ok {
		return nil, "", nil
	}
	return v.data, v.filename, nil
}

func (f *fakeStore) GenerateCacheKey(sourceData []byte, scale float64) string {
	return fmt.Sprintf("cache-%d-%v", len(sourceData), scale)
}

func (f *fakeStore) GetCachedResult(_ context.Context, cacheKey string) (*models.ResizeResult, error) {
	return f.cache[cacheKey], nil
}

func (f *fakeStore) SetCachedResult(_ context.Context, cacheKey string, result *models.ResizeResult) error {
	f.cache[cacheKey] = result
	return nil
}

func (f *fakeStore) SaveJob(_ context.Context, job *models.ProcessingJob) error {
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func (f *fakeStore) GetJob(_ context.Context, id string) (*models.ProcessingJob, error) {
	return f.jobs[id], nil
}

func (f *fakeStore) HealthCheck(_ context.Context) map[string]string {
	health := make(map[string]string, len(f.health))
	for k, v := range f.health {
		health[k] = v
	}
	return health
}

// fakeQueue records published jobs.
type fakeQueue struct {
	published []*models.ProcessingJob
}

func (f *fakeQueue) PublishJob(_ context.Context, job *models.ProcessingJob) error {
	f.published = append(f.published, job)
	return nil
}

func (f *fakeQueue) GetQueueStats() (map[string]interface{}, error) {
	return map[string]interface{}{
		"messages":  len(f.published),
		"consumers": 1,
		"name":      "image_processing",
	}, nil
}

func (f *fakeQueue) HealthCheck() string {
	return "healthy"
}
