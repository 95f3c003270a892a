package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/lemonstand/internal/logger"
)

// RequestLogger is a Gin middleware that logs method, route, status code,
// request latency, and request ID (if available).
//
// Example log output:
//
//	{"level":"info","request_id":"...","method":"POST","path":"/api/v1/sales","route":"/api/v1/sales","status":201,"latency_ms":1,"message":"http_request"}
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		rid, _ := c.Get(RequestIDKey)

		event := logger.L().Info()
		if status >= http.StatusInternalServerError {
			event = logger.L().Error()
		} else if status >= http.StatusBadRequest {
			event = logger.L().Warn()
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.
			Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Str("route", c.FullPath()).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// client represents a rate-limited client with request count and window start.
type client struct {
	windowStart time.Time
	count       int
}

type rateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	window    time.Duration
	limit     int
	lastSweep time.Time
	now       func() time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		clients: make(map[string]*client),
		window:  window,
		limit:   limit,
		now:     time.Now,
	}
}

// allow counts one request for key and reports whether it is within the limit.
func (l *rateLimiter) allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > l.window {
		l.sweep(now)
	}

	cl, ok := l.clients[key]
	if !ok || now.Sub(cl.windowStart) > l.window {
		cl = &client{windowStart: now}
		l.clients[key] = cl
	}
	cl.count++
	return cl.count <= l.limit
}

// sweep drops clients whose window has expired. Callers hold l.mu.
func (l *rateLimiter) sweep(now time.Time) {
	for key, cl := range l.clients {
		if now.Sub(cl.windowStart) > l.window {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}

// RateLimiter limits each client IP to perMinute requests per minute and
// answers 429 Too Many Requests beyond that. State is kept in memory per process.
func RateLimiter(perMinute int) gin.HandlerFunc {
	return rateLimit(newRateLimiter(perMinute, time.Minute))
}

func rateLimit(l *rateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
