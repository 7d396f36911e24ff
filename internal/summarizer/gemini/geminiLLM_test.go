package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/domain/summaryModel"
)

func newTestServer(t *testing.T, status int, reply string, calls *atomic.Int32, lastBody *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		body, _ := io.ReadAll(r.Body)
		*lastBody = string(body)
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSummarize_Success(t *testing.T) {
	var calls atomic.Int32
	var body string
	reply, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{{
			"content": map[string]any{
				"role":  "model",
				"parts": []map[string]any{{"text": "<h2>सारांश</h2>"}},
			},
			"finishReason": "STOP",
		}},
	})
	srv := newTestServer(t, http.StatusOK, string(reply), &calls, &body)

	p, err := NewGeminiClient(context.Background(), Options{
		APIKey: "test-key", Model: "gemini-2.0-flash-exp", Temperature: 0.7,
		HTTPClient: srv.Client(), BaseURL: srv.URL + "/",
	})
	require.NoError(t, err)

	out, err := p.Summarize(context.Background(), "The lessee shall pay rent.", summaryModel.Hindi)
	require.NoError(t, err)
	assert.Equal(t, "<h2>सारांश</h2>", out)
	assert.Equal(t, int32(1), calls.Load())
	assert.Contains(t, body, "summarize legal documents in Hindi")
	assert.Contains(t, body, "The lessee shall pay rent.")
	assert.Equal(t, "gemini", p.Name())
	assert.Equal(t, "gemini-2.0-flash-exp", p.Model())
}

func TestSummarize_UpstreamErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	var body string
	srv := newTestServer(t, http.StatusInternalServerError,
		`{"error":{"code":500,"message":"internal","status":"INTERNAL"}}`, &calls, &body)

	p, err := NewGeminiClient(context.Background(), Options{
		APIKey: "test-key", Model: "gemini-2.0-flash-exp",
		HTTPClient: srv.Client(), BaseURL: srv.URL + "/",
	})
	require.NoError(t, err)

	_, err = p.Summarize(context.Background(), "The lessee shall pay rent.", summaryModel.English)
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), Options{Model: "m"})
	assert.Error(t, err)
}
