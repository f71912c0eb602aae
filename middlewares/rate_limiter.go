package middlewares

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-app/utils"
	"golang.org/x/time/rate"
)

var errTooManyRequests = errors.New("too many requests, please slow down")

// RateLimiter is a sliding-window limiter keyed by client IP.
type RateLimiter struct {
	rate     int
	interval time.Duration
	ips      map[string][]time.Time
	lastGC   time.Time
	mu       sync.Mutex
}

func NewRateLimiter(rate int, interval int) *RateLimiter {
	return &RateLimiter{
		rate:     rate,
		interval: time.Duration(interval) * time.Second,
		ips:      make(map[string][]time.Time),
	}
}

// NewStrictRateLimiter guards the routes that change the menu with a shared token bucket.
func NewStrictRateLimiter(perMinute, burst int) gin.HandlerFunc {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	limiter := rate.NewLimiter(limit, burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			utils.RespondError(c, http.StatusTooManyRequests, errTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP(), time.Now()) {
			utils.RespondError(c, http.StatusTooManyRequests, errTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := now.Add(-rl.interval)
	if now.Sub(rl.lastGC) >= rl.interval {
		rl.sweep(cutoff)
		rl.lastGC = now
	}

	valid := make([]time.Time, 0, len(rl.ips[ip])+1)
	for _, t := range rl.ips[ip] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	if len(valid) >= rl.rate {
		rl.ips[ip] = valid
		return false
	}

	rl.ips[ip] = append(valid, now)
	return true
}

// sweep drops clients with no request inside the window. Caller holds rl.mu.
func (rl *RateLimiter) sweep(cutoff time.Time) {
	for ip, times := range rl.ips {
		if len(times) == 0 || !times[len(times)-1].After(cutoff) {
			delete(rl.ips, ip)
		}
	}
}
