package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nourcare/childcare-api/config"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestGetTokenCost(t *testing.T) {
	tests := []struct {
		path string
		want int64
	}{
		{"/", 0},
		{"/metrics", 0},
		{"/health", 5},
		{"/vaccines", 50},
		{"/doctors", 50},
		{"/doses/today", 10},
		{"/vaccines/search/mmr", 100},
		{"/doctors/search/احمد", 100},
		{"/triage/questions", 10},
		{"/triage/outcome", 10},
		{"/vaccines/bcg", 20},
		{"/children", 20},
		{"/children/abc/vaccinations", 20},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if got := getTokenCost(req); got != tt.want {
				t.Errorf("getTokenCost(%s) = %d, want %d", tt.path, got, tt.want)
			}
		})
	}
}

func TestRealIPMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		remoteAddr string
		wantRemote string
	}{
		{"no header keeps remote addr", "", "10.0.0.1:1234", "10.0.0.1:1234"},
		{"single forwarded ip", "203.0.113.7", "10.0.0.1:1234", "203.0.113.7"},
		{"takes first of the list", "203.0.113.7, 198.51.100.2", "10.0.0.1:1234", "203.0.113.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := RealIPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = r.RemoteAddr
			}))

			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if seen != tt.wantRemote {
				t.Errorf("Expected remote addr %q, got %q", tt.wantRemote, seen)
			}
		})
	}
}

func TestBlockDirectAccessMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		proxied    bool
		wantStatus int
	}{
		{"proxied request allowed", "203.0.113.7:1234", true, http.StatusOK},
		{"localhost allowed", "127.0.0.1:1234", false, http.StatusOK},
		{"ipv6 loopback allowed", "[::1]:1234", false, http.StatusOK},
		{"direct access blocked", "203.0.113.7:1234", false, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := BlockDirectAccessMiddleware(okHandler())

			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.proxied {
				req.Header.Set("X-Forwarded-For", "203.0.113.7")
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("Expected %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestRequestSizeMiddleware(t *testing.T) {
	cfg := &config.Config{
		MaxRequestBody: 1024,
		MaxHeaderSize:  512,
	}
	handler := RequestSizeMiddleware(cfg)(okHandler())

	t.Run("normal request passes", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/children", strings.NewReader(`{"name":"x"}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", rec.Code)
		}
	})

	t.Run("oversized body rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/children", strings.NewReader(strings.Repeat("x", 2048)))
		req.Header.Set("Content-Length", "2048")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("Expected 413, got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON error, got %q", ct)
		}
	})

	t.Run("oversized headers rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/vaccines", nil)
		req.Header.Set("X-Big", strings.Repeat("a", 600))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusRequestHeaderFieldsTooLarge {
			t.Errorf("Expected 431, got %d", rec.Code)
		}
	})
}

func TestRateLimitHandler(t *testing.T) {
	handler := RateLimitHandler(okHandler())

	// Each client ip gets its own bucket
	req := httptest.NewRequest("GET", "/vaccines/bcg", nil)
	req.RemoteAddr = "198.51.100.10:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-RateLimit-Limit") != "1000" {
		t.Error("Expected X-RateLimit-Limit header")
	}
	if rec.Header().Get("X-RateLimit-Remaining") == "" {
		t.Error("Expected X-RateLimit-Remaining header")
	}
}

func TestRateLimitHandlerExhaustion(t *testing.T) {
	handler := RateLimitHandler(okHandler())

	// Search requests cost 100 tokens out of a 1000-token bucket, so the
	// budget runs out well inside 20 requests even with refill.
	limited := false
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest("GET", "/vaccines/search/mmr", nil)
		req.RemoteAddr = "198.51.100.20:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code == http.StatusTooManyRequests {
			limited = true
			if rec.Header().Get("Retry-After") != "60" {
				t.Error("Expected Retry-After header on 429")
			}
			if rec.Header().Get("X-RateLimit-Remaining") != "0" {
				t.Error("Expected zero remaining on 429")
			}
			break
		}
	}

	if !limited {
		t.Error("Expected the client to be rate limited")
	}
}

func TestRateLimitFreeRoutes(t *testing.T) {
	handler := RateLimitHandler(okHandler())

	// Index and metrics cost nothing and are never limited
	for i := 0; i < 50; i++ {
		for _, path := range []string{"/", "/metrics"} {
			req := httptest.NewRequest("GET", path, nil)
			req.RemoteAddr = "198.51.100.30:1234"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("Free route %s limited after %d requests", path, i)
			}
		}
	}
}
