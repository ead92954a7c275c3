package middleware

import (
	"sync"
	"time"

	"opsdesk/config"
	"opsdesk/utils"

	"github.com/gin-gonic/gin"
)

type visitor struct {
	tokens   int
	lastSeen time.Time
	lastFill time.Time
	mutex    sync.Mutex
}

type rateLimiter struct {
	visitors map[string]*visitor
	mutex    sync.RWMutex
	window   time.Duration
	limit    int
}

func newRateLimiter(window time.Duration, limit int) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*visitor),
		window:   window,
		limit:    limit,
	}
	go rl.cleanup()
	return rl
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mutex.Lock()
	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{tokens: rl.limit, lastFill: time.Now()}
		rl.visitors[key] = v
	}
	rl.mutex.Unlock()

	v.mutex.Lock()
	defer v.mutex.Unlock()

	now := time.Now()
	v.lastSeen = now

	// Refill whole windows since the last fill.
	if elapsed := now.Sub(v.lastFill); elapsed >= rl.window {
		v.tokens = rl.limit
		v.lastFill = now
	}

	if v.tokens <= 0 {
		return false
	}
	v.tokens--
	return true
}

func (rl *rateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mutex.Lock()
		for key, v := range rl.visitors {
			if time.Since(v.lastSeen) > 30*time.Minute {
				delete(rl.visitors, key)
			}
		}
		rl.mutex.Unlock()
	}
}

// RateLimitMiddleware caps requests per client over the configured
// window.
func RateLimitMiddleware() gin.HandlerFunc {
	cfg := config.AppConfig
	if cfg == nil || !cfg.RateLimitEnabled {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := newRateLimiter(cfg.RateLimitWindow, cfg.RateLimitRequests)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			utils.TooManyRequestsResponse(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}
