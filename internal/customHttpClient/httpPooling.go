package customHttpClient

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/vineethbhatalevoor/AILegalsummary/internal/config"
)

var (
	transportOnce   sync.Once
	customTransport *http.Transport
)

// sharedTransport is reused by every outbound LLM client so connections stay warm between uploads.
func sharedTransport() *http.Transport {
	transportOnce.Do(func() {
		customTransport = &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          config.MaxIdleConns,
			MaxIdleConnsPerHost:   config.MaxIdleConnsPerHost,
			IdleConnTimeout:       config.IdleConnTimeout,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: time.Second,
		}
	})
	return customTransport
}

// NewHTTPClient returns a client on the shared pool. timeout bounds a whole request; zero leaves
// the deadline to the caller's context.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: sharedTransport(),
		Timeout:   timeout,
	}
}
