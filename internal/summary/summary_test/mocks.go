package summary_test

import (
	"context"
	"sync"

	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/summaryModel"
)

// MockProvider implements summarizer.Provider
type MockProvider struct {
	OnSummarize func(ctx context.Context, text string, lang summaryModel.Language) (string, error)
	ModelName   string

	mu    sync.Mutex
	calls []MockCall
}

type MockCall struct {
	Text     string
	Language summaryModel.Language
}

func (m *MockProvider) Summarize(ctx context.Context, text string, lang summaryModel.Language) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{Text: text, Language: lang})
	m.mu.Unlock()
	if m.OnSummarize != nil {
		return m.OnSummarize(ctx, text, lang)
	}
	return "<h2>Summary</h2><p>default summary</p>", nil
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) Model() string {
	if m.ModelName == "" {
		return "mock-model"
	}
	return m.ModelName
}

func (m *MockProvider) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockCall(nil), m.calls...)
}

// MockCache implements summaryModel.SummaryCache
type MockCache struct {
	OnGetSummary  func(ctx context.Context, key string) (summaryModel.CachedSummary, bool)
	OnSaveSummary func(ctx context.Context, key string, summary summaryModel.CachedSummary) error

	mu    sync.Mutex
	saved map[string]summaryModel.CachedSummary
}

func (m *MockCache) GetSummary(ctx context.Context, key string) (summaryModel.CachedSummary, bool) {
	if m.OnGetSummary != nil {
		return m.OnGetSummary(ctx, key)
	}
	return summaryModel.CachedSummary{}, false
}

func (m *MockCache) SaveSummary(ctx context.Context, key string, summary summaryModel.CachedSummary) error {
	m.mu.Lock()
	if m.saved == nil {
		m.saved = make(map[string]summaryModel.CachedSummary)
	}
	m.saved[key] = summary
	m.mu.Unlock()
	if m.OnSaveSummary != nil {
		return m.OnSaveSummary(ctx, key, summary)
	}
	return nil
}

func (m *MockCache) Saved() map[string]summaryModel.CachedSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]summaryModel.CachedSummary, len(m.saved))
	for k, v := range m.saved {
		out[k] = v
	}
	return out
}
