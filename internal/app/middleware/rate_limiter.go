package middleware

import (
	"sync"
	"time"

	"pdrims-http-service/internal/error/code"
	"pdrims-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiterConfig configures per-key request limiting
type RateLimiterConfig struct {
	Rate       float64                   // requests per second
	Burst      int                       // burst size
	ExpiryTime time.Duration             // idle limiters are dropped after this long
	KeyFunc    func(*gin.Context) string // defaults to the client IP
}

// DefaultRateLimiterConfig is used for zero fields
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:       20,
	Burst:      40,
	ExpiryTime: 10 * time.Minute,
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet holds one token bucket per key.
type limiterSet struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	cfg      RateLimiterConfig
	lastGC   time.Time
}

func newLimiterSet(cfg RateLimiterConfig) *limiterSet {
	return &limiterSet{
		visitors: make(map[string]*visitor),
		cfg:      cfg,
		lastGC:   time.Now(),
	}
}

func (s *limiterSet) allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if now.Sub(s.lastGC) > s.cfg.ExpiryTime {
		for k, v := range s.visitors {
			if now.Sub(v.lastSeen) > s.cfg.ExpiryTime {
				delete(s.visitors, k)
			}
		}
		s.lastGC = now
	}

	v, ok := s.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(s.cfg.Rate), s.cfg.Burst)}
		s.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// RateLimiter creates the rate limiting middleware
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	cfg := DefaultRateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}
	if cfg.ExpiryTime <= 0 {
		cfg.ExpiryTime = DefaultRateLimiterConfig.ExpiryTime
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}

	limiters := newLimiterSet(cfg)
	return func(c *gin.Context) {
		if !limiters.allow(cfg.KeyFunc(c)) {
			response.FailWithMessage(c, code.ErrTooManyRequests, "too many requests, please slow down")
			return
		}
		c.Next()
	}
}

// IPRateLimiter limits by client IP
func IPRateLimiter(rps float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{Rate: rps, Burst: burst})
}
