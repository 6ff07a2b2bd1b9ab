package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type visitor struct {
	start time.Time
	count int
}

// RateLimiter allows at most limit requests per client IP in each window.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	now      func() time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

// Allow records one request from key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	v, ok := rl.visitors[key]
	if !ok {
		rl.visitors[key] = &visitor{start: now, count: 1}
		return true
	}
	if v.count >= rl.limit {
		return false
	}
	v.count++
	return true
}

// sweep drops expired windows. Caller holds mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for key, v := range rl.visitors {
		if now.Sub(v.start) >= rl.window {
			delete(rl.visitors, key)
		}
	}
}

// Middleware rejects requests over the limit with 429. A limit <= 0 disables it.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limit <= 0 {
			c.Next()
			return
		}
		ip := c.ClientIP()
		if !rl.Allow(ip) {
			log.Warn().Str("ip", ip).Str("path", c.Request.URL.Path).Msg("rate limit exceeded")
			abort(c, http.StatusTooManyRequests, "Too many login attempts. Please try again later.")
			return
		}
		c.Next()
	}
}
