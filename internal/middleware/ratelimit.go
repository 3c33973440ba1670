package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/wellbeing/backend/internal/apierror"
	"github.com/JonnyWalker81/wellbeing/backend/internal/logger"
)

// RateLimiter is a fixed-window request counter per client key
type RateLimiter struct {
	requests map[string]*clientInfo
	mu       sync.Mutex
	rate     int
	window   time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type clientInfo struct {
	count       int
	windowStart time.Time
}

// NewRateLimiter allows rate requests per window for each key and starts a
// cleanup goroutine that runs until Close
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string]*clientInfo),
		rate:     rate,
		window:   window,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Close stops the cleanup goroutine
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.cleanup()
		}
	}
}

// cleanup drops keys idle for two windows and returns how many remain
func (rl *RateLimiter) cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, info := range rl.requests {
		if now.Sub(info.windowStart) > rl.window*2 {
			delete(rl.requests, key)
		}
	}
	return len(rl.requests)
}

// allow counts a request for key and reports whether it is within the
// limit, plus the time left in the current window
func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	info, ok := rl.requests[key]
	if !ok || now.Sub(info.windowStart) >= rl.window {
		info = &clientInfo{windowStart: now}
		rl.requests[key] = info
	}
	info.count++

	return info.count <= rl.rate, info.windowStart.Add(rl.window).Sub(now)
}

// RateLimit limits requests per authenticated user, falling back to the
// client IP before authentication has run
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString(UserIDKey)
		if key == "" {
			key = c.ClientIP()
		}

		ok, reset := limiter.allow(key)
		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.rate))
		if ok {
			c.Next()
			return
		}

		retryAfter := int(math.Ceil(reset.Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}
		logger.Ctx(c.Request.Context()).Warn("rate limit exceeded",
			logger.String("key", key),
			logger.Int("limit", limiter.rate),
			logger.Duration("window", limiter.window),
		)
		c.Header("X-RateLimit-Remaining", "0")
		apierror.WriteProblem(c, apierror.NewRateLimitError(apierror.GetRequestID(c), retryAfter))
	}
}
