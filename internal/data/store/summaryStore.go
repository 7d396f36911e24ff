package store

import (
	"context"

	"github.com/vineethbhatalevoor/AILegalsummary/internal/config"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/data/redisStore"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/summaryModel"
	"github.com/vineethbhatalevoor/AILegalsummary/pkg/logger_i"
)

// NewSummaryCache picks the summary cache for cfg: nil when caching is off, redis when it is
// reachable, otherwise the in-memory store.
func NewSummaryCache(ctx context.Context, cfg *config.Config) summaryModel.SummaryCache {
	log := logger_i.NewLogger("SummaryCache")
	if !cfg.CacheEnabled {
		log.Info("Summary cache disabled")
		return nil
	}
	redisCache := GetRedisSummaryStore(ctx, redisStore.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, cfg.CacheTTL)
	if redisCache != nil {
		return redisCache
	}
	if !config.FALLBACK_REDIS_TO_INTERNALSTORE {
		log.Warn("Redis is offline, running without a summary cache")
		return nil
	}
	log.Warn("Redis is offline, falling back to in-memory summary cache")
	return InitInMemorySummaryStore(cfg.CacheTTL)
}

// BackendName reports which store NewSummaryCache picked, for the health endpoint.
func BackendName(cache summaryModel.SummaryCache) string {
	switch cache.(type) {
	case *RedisSummaryStore:
		return "redis"
	case *InMemorySummaryStore:
		return "memory"
	default:
		return "none"
	}
}
