package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddleware(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Metrics)
	router.Get("/children/{childId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(HTTPRequestTotals.WithLabelValues("GET", "/children/{childId}", "404"))

	req := httptest.NewRequest("GET", "/children/abc123", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 passthrough, got %d", rec.Code)
	}

	// Counted under the route pattern, not the concrete id
	after := testutil.ToFloat64(HTTPRequestTotals.WithLabelValues("GET", "/children/{childId}", "404"))
	if after != before+1 {
		t.Errorf("Expected counter to advance by 1, got %v -> %v", before, after)
	}

	if got := testutil.ToFloat64(HTTPRequestInFlight); got != 0 {
		t.Errorf("Expected no in-flight requests after completion, got %v", got)
	}
}

func TestMetricsMiddlewareDefaultStatus(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Metrics)
	router.Get("/vaccines", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]")) // implicit 200
	})

	before := testutil.ToFloat64(HTTPRequestTotals.WithLabelValues("GET", "/vaccines", "200"))

	req := httptest.NewRequest("GET", "/vaccines", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	after := testutil.ToFloat64(HTTPRequestTotals.WithLabelValues("GET", "/vaccines", "200"))
	if after != before+1 {
		t.Errorf("Expected implicit 200 to be counted, got %v -> %v", before, after)
	}
}
