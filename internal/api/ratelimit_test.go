package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finnova/finnova/internal/log"
)

func TestRateLimiterAllow(t *testing.T) {
	// Tiny refill rate so the burst is effectively the whole allowance.
	rl := newRateLimiter(0.001, 3)

	for i := range 3 {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("request %d denied within burst", i+1)
		}
	}
	if rl.allow("10.0.0.1") {
		t.Error("request beyond burst allowed")
	}

	// Other IPs have their own bucket.
	if !rl.allow("10.0.0.2") {
		t.Error("fresh IP denied")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := newRateLimiter(0.001, 2)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := rateLimitMiddleware(rl, false, log.NewNop())(next)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:12345"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	for i := range 2 {
		if rec := send(); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, rec.Code)
		}
	}

	rec := send()
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		realIP     string
		forwarded  string
		trustProxy bool
		want       string
	}{
		{"direct", "192.0.2.1:1234", "", "", false, "192.0.2.1"},
		{"proxy headers ignored when untrusted", "192.0.2.1:1234", "203.0.113.9", "", false, "192.0.2.1"},
		{"x-real-ip trusted", "10.0.0.1:80", "203.0.113.9", "", true, "203.0.113.9"},
		{"x-forwarded-for first hop", "10.0.0.1:80", "", "203.0.113.7, 10.0.0.2", true, "203.0.113.7"},
		{"invalid header falls back", "10.0.0.1:80", "not-an-ip", "", true, "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			if got := clientIP(req, tt.trustProxy); got != tt.want {
				t.Errorf("clientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
