package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTTL         = time.Hour
)

// ipLimiterStore holds per-IP rate limiters.
type ipLimiterStore struct {
	limiters sync.Map // map[string]*ipLimiterEntry
	rps      float64
	burst    int
}

type ipLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// TokenRateLimitMiddleware limits authentication attempts per client IP.
//
// It runs in front of AuthenticationMiddleware so that token guessing is throttled before
// any store lookup. Each IP address (c.ClientIP, which honours X-Forwarded-For and X-Real-IP)
// gets an independent token bucket. Idle limiters are evicted until ctx is done.
//
// Exceeding the limit yields 429 with a Retry-After header.
func TokenRateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := &ipLimiterStore{
		rps:   rps,
		burst: burst,
	}

	go store.cleanupStale(ctx, limiterCleanupInterval, limiterIdleTTL)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limiter := store.getLimiter(clientIP)

		if !limiter.Allow() {
			reservation := limiter.Reserve()
			retryAfter := int(reservation.Delay().Seconds())
			reservation.Cancel()

			logger.Debug("authentication rate limit exceeded",
				slog.String("client_ip", clientIP),
				slog.Int("retry_after", retryAfter))

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limit_exceeded",
				"message": "Too many authentication attempts from this IP. Please retry after the specified delay.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (s *ipLimiterStore) getLimiter(ip string) *rate.Limiter {
	now := time.Now()
	if val, ok := s.limiters.Load(ip); ok {
		entry := val.(*ipLimiterEntry)
		entry.mu.Lock()
		entry.lastAccess = now
		entry.mu.Unlock()
		return entry.limiter
	}

	entry := &ipLimiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: now,
	}
	actual, _ := s.limiters.LoadOrStore(ip, entry)
	return actual.(*ipLimiterEntry).limiter
}

// cleanupStale removes limiters not used within idleTTL, every interval, until ctx is done.
func (s *ipLimiterStore) cleanupStale(ctx context.Context, interval, idleTTL time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.evictIdle(time.Now().Add(-idleTTL))
		}
	}
}

func (s *ipLimiterStore) evictIdle(threshold time.Time) {
	s.limiters.Range(func(key, value any) bool {
		entry := value.(*ipLimiterEntry)
		entry.mu.Lock()
		stale := entry.lastAccess.Before(threshold)
		entry.mu.Unlock()

		if stale {
			s.limiters.Delete(key)
		}
		return true
	})
}
