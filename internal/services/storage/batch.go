package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/doanhtu/image-interpolation/internal/models"
	"github.com/doanhtu/image-interpolation/internal/services/processor"
	"github.com/doanhtu/image-interpolation/pkg/utils"
)

const uploadWorkers = 4

// StoreResult persists every variant of a processed image and builds
// the result descriptor. Variants are written concurrently; a failed
// Supabase upload only drops the public URL, but a failed Redis write
// fails the whole call since the download links would dangle.
func (s *Service) StoreResult(ctx context.Context, sourceFilename string, scale float64, out *processor.Output) (*models.ResizeResult, error) {
	variants := make([]models.Variant, len(out.Variants))
	errs := make([]error, len(out.Variants))

	numWorkers := uploadWorkers
	if len(out.Variants) < numWorkers {
		numWorkers = len(out.Variants)
	}

	jobs := make(chan int, len(out.Variants))
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				variants[i], errs[i] = s.storeVariant(ctx, sourceFilename, out.Variants[i])
			}
		}()
	}

	for i := range out.Variants {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var failed []string
	for i, err := range errs {
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", out.Variants[i].Method, err))
		}
	}
	if len(failed) > 0 {
		return nil, fmt.Errorf("failed to store %d variants: %s", len(failed), strings.Join(failed, "; "))
	}

	return &models.ResizeResult{
		ID:             uuid.New().String(),
		SourceFilename: sourceFilename,
		SourceWidth:    out.SourceWidth,
		SourceHeight:   out.SourceHeight,
		Scale:          scale,
		Variants:       variants,
		ProcessedAt:    time.Now(),
	}, nil
}

func (s *Service) storeVariant(ctx context.Context, sourceFilename string, vb processor.VariantBuffer) (models.Variant, error) {
	id := uuid.New().String()
	filename := utils.VariantFilename(sourceFilename, vb.Method)
	data := vb.Data.Bytes()

	if err := s.SaveVariant(ctx, id, filename, data); err != nil {
		return models.Variant{}, err
	}

	storageURL, err := s.Upload(data, filename)
	if err != nil {
		// Durable tier is best effort; the Redis copy still serves downloads.
		storageURL = ""
	}

	return models.Variant{
		Method:      vb.Method.String(),
		Width:       vb.Width,
		Height:      vb.Height,
		FileSize:    int64(len(data)),
		Filename:    filename,
		DownloadURL: "/api/v1/downloads/" + id,
		StorageURL:  storageURL,
	}, nil
}
