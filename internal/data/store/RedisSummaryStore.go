package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/vineethbhatalevoor/AILegalsummary/internal/data/redisStore"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/summaryModel"
	"github.com/vineethbhatalevoor/AILegalsummary/pkg/logger_i"
)

type RedisSummaryStore struct {
	store  *redisStore.Store
	ttl    time.Duration
	logger *logger_i.Logger
}

// GetRedisSummaryStore returns nil when redis is offline so the caller can fall back.
func GetRedisSummaryStore(ctx context.Context, opts redisStore.Options, ttl time.Duration) *RedisSummaryStore {
	s := redisStore.GetRedisStore(ctx, opts)
	if s == nil {
		return nil
	}
	return NewRedisSummaryStore(s, ttl)
}

// NewRedisSummaryStore wraps an already connected store.
func NewRedisSummaryStore(s *redisStore.Store, ttl time.Duration) *RedisSummaryStore {
	return &RedisSummaryStore{
		store:  s,
		ttl:    ttl,
		logger: logger_i.NewLogger("SummaryStore"),
	}
}

func (s *RedisSummaryStore) GetSummary(ctx context.Context, key string) (summaryModel.CachedSummary, bool) {
	log := s.logger.WithTrace(ctx).With("key", key)
	raw, err := s.store.Get(ctx, key)
	if s.store.IsNil(err) {
		return summaryModel.CachedSummary{}, false
	} else if err != nil {
		log.Error("Failed to read cached summary", "err", err)
		return summaryModel.CachedSummary{}, false
	}
	var cached summaryModel.CachedSummary
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		log.Error("Corrupt cached summary", "err", err)
		return summaryModel.CachedSummary{}, false
	}
	return cached, true
}

func (s *RedisSummaryStore) SaveSummary(ctx context.Context, key string, summary summaryModel.CachedSummary) error {
	log := s.logger.WithTrace(ctx).With("key", key)
	data, err := json.Marshal(summary)
	if err != nil {
		log.Error("Error marshalling summary", "err", err)
		return err
	}
	if err := s.store.Set(ctx, key, data, s.ttl); err != nil {
		log.Error("error saving summary", "err", err)
		return err
	}
	log.Debug("Saved summary successfully")
	return nil
}
