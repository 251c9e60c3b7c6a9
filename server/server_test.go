package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nourcare/childcare-api/catalog"
	"github.com/nourcare/childcare-api/config"
	"github.com/nourcare/childcare-api/data"
	"github.com/nourcare/childcare-api/handlers"
	"github.com/nourcare/childcare-api/health"
	"github.com/nourcare/childcare-api/logging"
	"github.com/nourcare/childcare-api/validation"
)

// newTestServer wires the full stack with real catalogs behind a router.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	if logging.DefaultLoggingService == nil {
		logging.InitLogger(t.TempDir(), 1)
	}

	dc := data.NewDataContainer()
	dc.SetServerStartTime(time.Now())

	loader := catalog.NewLoader()
	vaccines, vaccinesMap, err := loader.LoadVaccines()
	if err != nil {
		t.Fatalf("Failed to load vaccine catalog: %v", err)
	}
	doctors, doctorsMap, err := loader.LoadDoctors()
	if err != nil {
		t.Fatalf("Failed to load doctor directory: %v", err)
	}
	standards, err := loader.LoadGrowthStandards()
	if err != nil {
		t.Fatalf("Failed to load growth standards: %v", err)
	}
	dc.UpdateCatalogs(vaccines, vaccinesMap, doctors, doctorsMap, standards)

	handler := handlers.NewHTTPHandler(dc, validation.NewDataValidator(), health.NewHealthChecker(dc))

	cfg := &config.Config{
		Port:           "8000",
		Address:        "127.0.0.1",
		Env:            "dev",
		MaxRequestBody: 1048576,
		MaxHeaderSize:  1048576,
	}
	return NewServer(cfg, handler)
}

// doRequest sends a request through the full middleware chain. The
// forwarded header satisfies the proxy check.
func doRequest(srv *Server, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("X-Forwarded-For", "203.0.113.50")

	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	return rec
}

func TestServerRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"index", "GET", "/", http.StatusOK},
		{"health", "GET", "/health", http.StatusOK},
		{"metrics", "GET", "/metrics", http.StatusOK},
		{"vaccine catalog", "GET", "/vaccines", http.StatusOK},
		{"vaccine by id", "GET", "/vaccines/bcg", http.StatusOK},
		{"vaccine search", "GET", "/vaccines/search/mmr", http.StatusOK},
		{"unknown vaccine", "GET", "/vaccines/nope", http.StatusNotFound},
		{"doctor directory", "GET", "/doctors", http.StatusOK},
		{"empty children list", "GET", "/children", http.StatusOK},
		{"triage questions", "GET", "/triage/questions", http.StatusOK},
		{"growth standards", "GET", "/growth/standards/weight/male", http.StatusOK},
		{"todays doses", "GET", "/doses/today", http.StatusOK},
		{"unknown route", "GET", "/nope", http.StatusNotFound},
		{"wrong method", "POST", "/vaccines", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(srv, tt.method, tt.path, "")
			if rec.Code != tt.wantStatus {
				t.Errorf("%s %s: expected %d, got %d: %s",
					tt.method, tt.path, tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestServerChildLifecycle(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, "POST", "/children",
		`{"name":"سارة","birthDate":"2026-01-15","sex":"female"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201 registering child, got %d: %s", rec.Code, rec.Body.String())
	}

	// The child shows up in the list afterwards
	rec = doRequest(srv, "GET", "/children", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "سارة") {
		t.Error("Registered child missing from the list")
	}
}

func TestServerBlocksDirectAccess(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/vaccines", nil)
	req.RemoteAddr = "203.0.113.7:1234"

	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("Expected 403 without proxy headers, got %d", rec.Code)
	}
}

func TestServerCORSHeaders(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("OPTIONS", "/vaccines", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.50")
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")

	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Expected CORS headers on preflight")
	}
}
