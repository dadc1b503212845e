package ratelimit

import (
	"sync"
	"time"

	"codeberg.org/taskboard/server/internal/errors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// holds a client's token bucket and last access time
type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// Limiter applies per-client token-bucket rate limiting, keyed by
// client IP. Entries idle past the stale threshold are dropped by a
// background cleanup goroutine.
type Limiter struct {
	config Config

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stopCh chan struct{}
}

// configures a Limiter
type Config struct {
	Rate            rate.Limit    // sustained requests per second per client
	Burst           int           // burst size per client
	CleanupInterval time.Duration // how often stale entries are swept
	StaleAfter      time.Duration // entries idle this long are dropped
}

// returns the default API rate limit: 120 req/min per client
func DefaultConfig() Config {
	return Config{
		Rate:            rate.Limit(120.0 / 60.0),
		Burst:           30,
		CleanupInterval: 5 * time.Minute,
		StaleAfter:      10 * time.Minute,
	}
}

// returns the stricter limit used on unauthenticated signup traffic
func SignupConfig() Config {
	cfg := DefaultConfig()
	cfg.Rate = rate.Limit(10.0 / 60.0)
	cfg.Burst = 10

	return cfg
}

// creates a Limiter and starts its cleanup goroutine
func New(config Config) *Limiter {
	l := &Limiter{
		config:   config,
		limiters: make(map[string]*clientLimiter),
		stopCh:   make(chan struct{}),
	}

	go l.cleanupLoop()

	return l
}

// stops the background cleanup goroutine
func (l *Limiter) Stop() {
	close(l.stopCh)
}

// returns a gin middleware enforcing the limit
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			errors.TooManyRequests(c, "")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (l *Limiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.limiters[key]
	if !ok {
		entry = &clientLimiter{
			limiter: rate.NewLimiter(l.config.Rate, l.config.Burst),
		}
		l.limiters[key] = entry
	}

	entry.lastAccess = time.Now()

	return entry.limiter.Allow()
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case <-ticker.C:
			l.cleanup()
		}
	}
}

func (l *Limiter) cleanup() {
	cutoff := time.Now().Add(-l.config.StaleAfter)

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, entry := range l.limiters {
		if entry.lastAccess.Before(cutoff) {
			delete(l.limiters, key)
		}
	}
}
