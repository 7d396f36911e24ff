package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/summaryModel"
)

type chatRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func TestSummarize_Success(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"<h2>Summary</h2>"}}]}`)
	}))
	defer srv.Close()

	p, err := NewOpenAIClient(Options{APIKey: "sk-test", Model: "gpt-4o-mini", Temperature: 0.5, BaseURL: srv.URL, HTTPClient: srv.Client()})
	require.NoError(t, err)

	out, err := p.Summarize(context.Background(), "Clause 7: Termination on 30 days notice.", summaryModel.Kannada)
	require.NoError(t, err)
	assert.Equal(t, "<h2>Summary</h2>", out)

	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, "gpt-4o-mini", p.Model())
	assert.InDelta(t, 0.5, got.Temperature, 0.001)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Contains(t, got.Messages[0].Content, "Kannada")
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Contains(t, got.Messages[1].Content, "Clause 7: Termination on 30 days notice.")
}

func TestSummarize_FailsWithoutRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"message":"Rate limit reached","type":"requests"}}`)
	}))
	defer srv.Close()

	p, err := NewOpenAIClient(Options{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: srv.URL, HTTPClient: srv.Client()})
	require.NoError(t, err)

	_, err = p.Summarize(context.Background(), "Clause 7: Termination on 30 days notice.", summaryModel.English)
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSummarize_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`)
	}))
	defer srv.Close()

	p, err := NewOpenAIClient(Options{APIKey: "sk-test", Model: "m", BaseURL: srv.URL, HTTPClient: srv.Client()})
	require.NoError(t, err)

	_, err = p.Summarize(context.Background(), "text long enough", summaryModel.English)
	assert.ErrorContains(t, err, "empty response")
}
