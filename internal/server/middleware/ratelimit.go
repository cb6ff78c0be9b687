// Package middleware provides the gin middleware of the HTTP API.
package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a per-key token bucket. Each key may spend up to burst
// requests at once; tokens refill at rate per interval.
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     int
	burst    int
	interval time.Duration
	now      func() time.Time
}

type bucket struct {
	tokens   float64
	lastFill time.Time
}

// NewRateLimiter creates a rate limiter. burst defaults to rate if not positive.
func NewRateLimiter(rate int, burst int, interval time.Duration) *RateLimiter {
	if burst <= 0 {
		burst = rate
	}

	return &RateLimiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		burst:    burst,
		interval: interval,
		now:      time.Now,
	}
}

// Allow takes one token for key. It returns false and the time until the
// next token when the bucket is empty.
func (r *RateLimiter) Allow(key string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	b, ok := r.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(r.burst), lastFill: now}
		r.buckets[key] = b
	}

	perToken := r.interval / time.Duration(max(r.rate, 1))
	if elapsed := now.Sub(b.lastFill); elapsed > 0 {
		b.tokens = min(float64(r.burst), b.tokens+float64(elapsed)/float64(perToken))
		b.lastFill = now
	}

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}

	return false, time.Duration((1 - b.tokens) * float64(perToken))
}

// RateLimit rejects clients that exceed the limiter with 429.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, wait := limiter.Allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(wait.Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "RATE_LIMITED",
					"message": "too many requests",
				},
			})

			return
		}
		c.Next()
	}
}

// RequestSizeLimit caps request bodies at maxBytes. Reading past the limit
// fails with *http.MaxBytesError.
func RequestSizeLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
