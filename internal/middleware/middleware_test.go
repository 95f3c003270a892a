package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/lemonstand/internal/domain/dto"
	"github.com/guttosm/lemonstand/internal/domain/models"
)

func TestErrorHandler(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "unknown", err: assertErr{}, want: http.StatusInternalServerError},
		{name: "invalid sales", err: &models.InvalidSalesItemError{Items: []string{"cookie"}}, want: http.StatusUnprocessableEntity},
		{name: "day out of range", err: fmt.Errorf("units: %w", &models.DayOutOfRangeError{Day: 4, Days: 2}), want: http.StatusNotFound},
		{name: "deadline", err: context.DeadlineExceeded, want: http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(ErrorHandler)
			r.GET("/", func(c *gin.Context) { _ = c.Error(tc.err) })
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != tc.want {
				t.Fatalf("code=%d, want %d", w.Code, tc.want)
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.ErrorDetails != tc.err.Error() {
				t.Fatalf("error details %q, want %q", body.ErrorDetails, tc.err.Error())
			}
		})
	}
}

func TestErrorHandler_KeepsWrittenResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/", func(c *gin.Context) {
		AbortWithError(c, http.StatusBadRequest, "bad stuff", assertErr{})
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != 500 {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestRateLimiter(t *testing.T) {
	cases := []struct {
		name   string
		reqs   int
		lim    int
		expect int
	}{
		{name: "within limit", reqs: 2, lim: 3, expect: http.StatusOK},
		{name: "at limit", reqs: 3, lim: 3, expect: http.StatusOK},
		{name: "exceed limit", reqs: 5, lim: 3, expect: http.StatusTooManyRequests},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(RateLimiter(tc.lim))
			r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
			var last int
			for i := 0; i < tc.reqs; i++ {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
				last = w.Code
			}
			if last != tc.expect {
				t.Fatalf("expected %d, got %d", tc.expect, last)
			}
		})
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := newRateLimiter(1, time.Minute)
	l.now = func() time.Time { return now }

	if !l.allow("1.2.3.4") {
		t.Fatalf("first request should pass")
	}
	if l.allow("1.2.3.4") {
		t.Fatalf("second request in window should be limited")
	}
	if !l.allow("5.6.7.8") {
		t.Fatalf("other clients keep their own budget")
	}
	now = now.Add(2 * time.Minute)
	if !l.allow("1.2.3.4") {
		t.Fatalf("request after window should pass")
	}
}

func TestRateLimiter_SweepsExpiredClients(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := newRateLimiter(5, time.Minute)
	l.now = func() time.Time { return now }

	for _, ip := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		l.allow(ip)
	}
	if len(l.clients) != 3 {
		t.Fatalf("expected 3 tracked clients, got %d", len(l.clients))
	}

	now = now.Add(2 * time.Minute)
	l.allow("4.4.4.4")
	if len(l.clients) != 1 {
		t.Fatalf("expected expired clients to be swept, got %d", len(l.clients))
	}
	if _, ok := l.clients["4.4.4.4"]; !ok {
		t.Fatalf("current client missing after sweep")
	}
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/err", func(c *gin.Context) {
		AbortWithError(c, http.StatusBadRequest, "bad stuff", assertErr{})
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/err", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct == "" {
		t.Fatalf("expected content-type set")
	}
}
