package middleware

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/config"
	"golang.org/x/time/rate"
)

// idle clients are forgotten after this long
const limiterIdleExpiry = 10 * time.Minute

var limiterInstance = NewIPRateLimiter(rate.Limit(config.RATE_LIMIT_PER_SECOND), config.BURST_RATE_LIMIT_SECOND)

// ConfigureRateLimiter replaces the per-IP limits. A non-positive rate turns limiting off.
func ConfigureRateLimiter(perSecond float64, burst int) {
	limiterInstance = NewIPRateLimiter(rate.Limit(perSecond), burst)
}

type IPRateLimiter struct {
	ips       *cache.Cache
	mu        sync.Mutex
	rateLimit rate.Limit
	burstRate int
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:       cache.New(limiterIdleExpiry, 2*limiterIdleExpiry),
		rateLimit: r,
		burstRate: b,
	}
}

func (i *IPRateLimiter) Enabled() bool {
	return i.rateLimit > 0
}

// GetLimiter returns the limiter for ip and pushes its expiry forward.
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	var limiter *rate.Limiter
	if v, found := i.ips.Get(ip); found {
		limiter = v.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(i.rateLimit, i.burstRate)
	}
	i.ips.Set(ip, limiter, cache.DefaultExpiration)
	return limiter
}

func (i *IPRateLimiter) Allow(ip string) bool {
	if !i.Enabled() {
		return true
	}
	return i.GetLimiter(ip).Allow()
}
