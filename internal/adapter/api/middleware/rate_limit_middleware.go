package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"skillserve/pkg/logger"
)

// RateLimiter implements a token bucket per client IP. It guards the token
// issuing endpoint against credential-stuffing style hammering.
type RateLimiter struct {
	visitors    map[string]*visitor
	mu          sync.Mutex
	rate        int           // requests per window
	window      time.Duration // time window
	lastCleanup time.Time
}

type visitor struct {
	tokens     int
	lastSeen   time.Time
	blocked    bool
	blockUntil time.Time
}

func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors:    make(map[string]*visitor),
		rate:        rate,
		window:      window,
		lastCleanup: time.Now(),
	}
}

func (rl *RateLimiter) RateLimitMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if blocked, resetTime := rl.take(ip); blocked {
				logger.Warn("Rate limit: blocked request from IP %s (reset in %v)", ip, time.Until(resetTime))

				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(time.Until(resetTime).Seconds()),
				})
			}

			return next(c)
		}
	}
}

// take consumes a token for ip, or reports the block reset time.
func (rl *RateLimiter) take(ip string) (bool, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.cleanupStale(time.Now())

	v, exists := rl.visitors[ip]
	if !exists {
		rl.visitors[ip] = &visitor{
			tokens:   rl.rate - 1,
			lastSeen: time.Now(),
		}
		return false, time.Time{}
	}

	now := time.Now()

	if v.blocked && now.Before(v.blockUntil) {
		return true, v.blockUntil
	}

	if v.blocked && now.After(v.blockUntil) {
		v.blocked = false
		v.tokens = rl.rate
	}

	// Refill based on time passed since the last request.
	elapsed := now.Sub(v.lastSeen)
	v.tokens += int(elapsed / rl.window * time.Duration(rl.rate))
	if v.tokens > rl.rate {
		v.tokens = rl.rate
	}
	v.lastSeen = now

	if v.tokens <= 0 {
		v.blocked = true
		v.blockUntil = now.Add(rl.window)
		return true, v.blockUntil
	}

	v.tokens--
	return false, time.Time{}
}

// cleanupStale removes visitors not seen for a while so the map does not
// grow unbounded. Runs lazily under the caller's lock, at most once an hour,
// so a limiter holds no background goroutine.
func (rl *RateLimiter) cleanupStale(now time.Time) {
	if now.Sub(rl.lastCleanup) < time.Hour {
		return
	}
	rl.lastCleanup = now

	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > 2*time.Hour {
			delete(rl.visitors, ip)
		}
	}
}
