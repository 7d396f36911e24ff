package store

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/summaryModel"
	"github.com/vineethbhatalevoor/AILegalsummary/pkg/logger_i"
)

type InMemorySummaryStore struct {
	cache  *cache.Cache
	logger *logger_i.Logger
}

func InitInMemorySummaryStore(ttl time.Duration) *InMemorySummaryStore {
	cleanup := ttl * 2
	if ttl <= 0 {
		ttl = cache.NoExpiration
		cleanup = 10 * time.Minute
	}
	return &InMemorySummaryStore{cache: cache.New(ttl, cleanup), logger: logger_i.NewLogger("InMemorySummaryStore")}
}

func (s *InMemorySummaryStore) GetSummary(ctx context.Context, key string) (summaryModel.CachedSummary, bool) {
	v, ok := s.cache.Get(key)
	if !ok {
		return summaryModel.CachedSummary{}, false
	}
	cached, ok := v.(summaryModel.CachedSummary)
	return cached, ok
}

func (s *InMemorySummaryStore) SaveSummary(ctx context.Context, key string, summary summaryModel.CachedSummary) error {
	s.cache.SetDefault(key, summary)
	s.logger.Debug("Saved summary to in-memory store", "key", key)
	return nil
}
