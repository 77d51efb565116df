package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter implements per-client rate limiting with in-memory token
// buckets. State is process-local; the API itself is stateless so a
// shared store buys nothing here.
type RateLimiter struct {
	mu       sync.Mutex
	requests int
	window   time.Duration
	keyFunc  func(*gin.Context) string
	buckets  map[string]*tokenBucket
}

// tokenBucket tracks the remaining budget for one client key.
type tokenBucket struct {
	tokens     int
	lastRefill time.Time
}

// NewRateLimiter creates a limiter allowing requests per window per client.
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		requests: requests,
		window:   window,
		keyFunc:  clientIPKey,
		buckets:  make(map[string]*tokenBucket),
	}

	go rl.cleanupExpiredBuckets()

	return rl
}

// cleanupExpiredBuckets periodically drops buckets idle for two windows.
func (rl *RateLimiter) cleanupExpiredBuckets() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, bucket := range rl.buckets {
			if now.Sub(bucket.lastRefill) > 2*rl.window {
				delete(rl.buckets, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware returns the gin handler enforcing the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, retryAfter := rl.take(rl.keyFunc(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// take consumes one token for key, refilling proportionally to elapsed time.
func (rl *RateLimiter) take(key string) (allowed bool, remaining, retryAfter int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	bucket, ok := rl.buckets[key]
	if !ok {
		bucket = &tokenBucket{tokens: rl.requests, lastRefill: time.Now()}
		rl.buckets[key] = bucket
	}

	now := time.Now()
	refill := int(float64(rl.requests) * (now.Sub(bucket.lastRefill).Seconds() / rl.window.Seconds()))
	if refill > 0 {
		bucket.tokens = min(rl.requests, bucket.tokens+refill)
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		retryAfter = int(rl.window.Seconds()) / rl.requests
		if retryAfter < 1 {
			retryAfter = 1
		}
		return false, 0, retryAfter
	}

	bucket.tokens--
	return true, bucket.tokens, 0
}

// clientIPKey buckets requests by client IP.
func clientIPKey(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = c.Request.RemoteAddr
	}
	return "ip:" + ip
}
