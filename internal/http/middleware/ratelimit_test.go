package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newLimitedEngine(rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(rps, burst, KeyByClientIP()).Handler())
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	r := newLimitedEngine(100, 3)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, w.Code)
		}
	}
}

func TestRateLimiter_RejectsBeyondBurst(t *testing.T) {
	// rps effectively zero so the bucket never refills during the test.
	r := newLimitedEngine(0.0001, 2)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatal("missing Retry-After header")
	}
	if w.Body.String() != "rate limit exceeded" {
		t.Fatalf("body = %q", w.Body.String())
	}
}

func TestRateLimiter_BurstCoercedToOne(t *testing.T) {
	rl := NewRateLimiter(1, 0, KeyByClientIP())
	if rl.burst != 1 {
		t.Fatalf("burst = %d, want 1", rl.burst)
	}
}

func TestRateLimiter_BucketsKeyedIndependently(t *testing.T) {
	rl := NewRateLimiter(0.0001, 1, KeyByClientIP())

	if !rl.get("ip:1.1.1.1").Allow() {
		t.Fatal("first hit for 1.1.1.1 must pass")
	}
	if rl.get("ip:1.1.1.1").Allow() {
		t.Fatal("second hit for 1.1.1.1 must be limited")
	}
	if !rl.get("ip:2.2.2.2").Allow() {
		t.Fatal("first hit for 2.2.2.2 must pass despite 1.1.1.1 being limited")
	}
}
