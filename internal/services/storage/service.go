package storage

import (
	"time"

	"github.com/redis/go-redis/v9"
	storage_go "github.com/supabase-community/storage-go"

	"github.com/doanhtu/image-interpolation/internal/config"
)

// Service persists generated variants. Redis backs the transient
// download store, the result cache and job records; Supabase Storage is
// an optional durable tier and stays nil when not configured.
type Service struct {
	sbClient    *storage_go.Client
	redisClient *redis.Client
	bucket      string
	resultTTL   time.Duration
}

func NewService(cfg *config.Config) (*Service, error) {
	var sbClient *storage_go.Client
	if cfg.Supabase.URL != "" && cfg.Supabase.KEY != "" {
		sbClient = storage_go.NewClient(cfg.Supabase.URL+"/storage/v1", cfg.Supabase.KEY, nil)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return &Service{
		sbClient:    sbClient,
		redisClient: redisClient,
		bucket:      cfg.Supabase.BUCKET,
		resultTTL:   cfg.Storage.ResultTTL,
	}, nil
}
