package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/doanhtu/image-interpolation/internal/models"
)

const (
	variantKeyPrefix = "variant:"
	jobKeyPrefix     = "job:"
)

// SaveVariant stores one PNG rendition under the given ID for the
// configured TTL, backing its download URL.
func (s *Service) SaveVariant(ctx context.Context, id, filename string, data []byte) error {
	pipe := s.redisClient.TxPipeline()
	pipe.Set(ctx, variantKeyPrefix+id, data, s.resultTTL)
	pipe.Set(ctx, variantKeyPrefix+id+":filename", filename, s.resultTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store variant: %w", err)
	}
	return nil
}

// GetVariant fetches a stored variant. A nil data slice with nil error
// means the variant expired or never existed.
func (s *Service) GetVariant(ctx context.Context, id string) ([]byte, string, error) {
	data, err := s.redisClient.Get(ctx, variantKeyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("variant get error: %w", err)
	}

	filename, err := s.redisClient.Get(ctx, variantKeyPrefix+id+":filename").Result()
	if err != nil && err != redis.Nil {
		return nil, "", fmt.Errorf("variant filename get error: %w", err)
	}

	return data, filename, nil
}

// SaveJob upserts the job record, keeping status transitions visible to
// the status endpoint.
func (s *Service) SaveJob(ctx context.Context, job *models.ProcessingJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	return s.redisClient.Set(ctx, jobKeyPrefix+job.ID, payload, s.resultTTL).Err()
}

// GetJob fetches a job record; nil without error means unknown job.
func (s *Service) GetJob(ctx context.Context, id string) (*models.ProcessingJob, error) {
	payload, err := s.redisClient.Get(ctx, jobKeyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("job get error: %w", err)
	}

	var job models.ProcessingJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}
	return &job, nil
}
