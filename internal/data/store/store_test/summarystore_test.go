package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/config"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/data/redisStore"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/data/store"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/summaryModel"
)

func TestRedisSummaryStore_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	summaryStore := store.NewRedisSummaryStore(redisStore.NewTestStore(client), time.Hour)

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
	key := summaryModel.CacheKey("gemini", "gemini-2.0-flash-exp", summaryModel.Hindi, "The lessee shall pay rent on the first of each month.")

	cached := summaryModel.CachedSummary{
		Summary:   "<h2>सारांश</h2>",
		Language:  summaryModel.Hindi,
		Provider:  "gemini",
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("Save and Get Roundtrip", func(t *testing.T) {
		if err := summaryStore.SaveSummary(ctx, key, cached); err != nil {
			t.Fatalf("SaveSummary failed: %v", err)
		}

		got, found := summaryStore.GetSummary(ctx, key)
		if !found {
			t.Fatal("Summary was saved but not found in Redis")
		}
		if got.Summary != cached.Summary || got.Language != cached.Language {
			t.Errorf("Data mismatch! Got %+v, want %+v", got, cached)
		}
	})

	t.Run("TTL Applied", func(t *testing.T) {
		if ttl := mr.TTL(key); ttl != time.Hour {
			t.Errorf("expected 1h ttl, got %v", ttl)
		}
		mr.FastForward(2 * time.Hour)
		if _, found := summaryStore.GetSummary(ctx, key); found {
			t.Error("summary should have expired")
		}
	})

	t.Run("Get Non-Existent Summary", func(t *testing.T) {
		if _, found := summaryStore.GetSummary(ctx, "summary:ghost"); found {
			t.Error("Expected found=false for non-existent key")
		}
	})

	t.Run("Corrupt Entry Is A Miss", func(t *testing.T) {
		if err := mr.Set("summary:corrupt", "{not json"); err != nil {
			t.Fatal(err)
		}
		if _, found := summaryStore.GetSummary(ctx, "summary:corrupt"); found {
			t.Error("corrupt entry must be treated as a miss")
		}
	})
}

func TestRedisSummaryStore_Race(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	summaryStore := store.NewRedisSummaryStore(redisStore.NewTestStore(client), time.Minute)

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "race-trace")
	entry := summaryModel.CachedSummary{Summary: "<p>same</p>", Language: summaryModel.English}

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = summaryStore.SaveSummary(ctx, "race-key", entry)
			_, _ = summaryStore.GetSummary(ctx, "race-key")
		}()
	}
	wg.Wait()

	got, found := summaryStore.GetSummary(ctx, "race-key")
	if !found || got.Summary != "<p>same</p>" {
		t.Errorf("unexpected final entry %+v found=%v", got, found)
	}
}

func TestInMemorySummaryStore(t *testing.T) {
	s := store.InitInMemorySummaryStore(time.Minute)
	ctx := context.Background()

	if _, found := s.GetSummary(ctx, "k"); found {
		t.Fatal("empty store should miss")
	}
	if err := s.SaveSummary(ctx, "k", summaryModel.CachedSummary{Summary: "<p>x</p>"}); err != nil {
		t.Fatal(err)
	}
	got, found := s.GetSummary(ctx, "k")
	if !found || got.Summary != "<p>x</p>" {
		t.Errorf("unexpected entry %+v found=%v", got, found)
	}
}

func TestNewSummaryCache(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Default()
	if c := store.NewSummaryCache(ctx, cfg); c != nil {
		t.Errorf("cache must be off unless enabled, got %T", c)
	}

	mr := miniredis.RunT(t)
	cfg = config.Default()
	cfg.CacheEnabled = true
	cfg.RedisAddr = mr.Addr()
	cfg.RedisDB = 3
	if _, ok := store.NewSummaryCache(ctx, cfg).(*store.RedisSummaryStore); !ok {
		t.Error("expected redis backed cache when redis is reachable")
	}

	offline := miniredis.RunT(t)
	addr := offline.Addr()
	offline.Close()
	cfg = config.Default()
	cfg.CacheEnabled = true
	cfg.RedisAddr = addr
	cfg.RedisDB = 4
	if _, ok := store.NewSummaryCache(ctx, cfg).(*store.InMemorySummaryStore); !ok {
		t.Error("expected in-memory fallback when redis is offline")
	}
}
