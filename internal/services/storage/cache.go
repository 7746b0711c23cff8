package storage

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/doanhtu/image-interpolation/internal/models"
)

const cacheKeyPrefix = "result_cache:"

// GenerateCacheKey derives the cache key for one (source, scale) pair
// from the source bytes, so identical re-uploads hit the cache.
func (s *Service) GenerateCacheKey(sourceData []byte, scale float64) string {
	hash := md5.New()
	hash.Write(sourceData)
	hash.Write([]byte(fmt.Sprintf("scale_%v", scale)))
	return fmt.Sprintf("%s%x", cacheKeyPrefix, hash.Sum(nil))
}

// GetCachedResult returns the cached result for the key, or nil on a
// cache miss.
func (s *Service) GetCachedResult(ctx context.Context, cacheKey string) (*models.ResizeResult, error) {
	payload, err := s.redisClient.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	var result models.ResizeResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached result: %w", err)
	}
	return &result, nil
}

func (s *Service) SetCachedResult(ctx context.Context, cacheKey string, result *models.ResizeResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	return s.redisClient.Set(ctx, cacheKey, payload, s.resultTTL).Err()
}
