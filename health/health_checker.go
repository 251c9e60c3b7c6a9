// Package health reports service readiness based on catalog state.
package health

import (
	"math"
	"net/http"
	"time"

	"github.com/nourcare/childcare-api/interfaces"
)

// HealthCheckerImpl implements the interfaces.HealthChecker interface
type HealthCheckerImpl struct {
	dataStore interfaces.DataStore
}

// NewHealthChecker creates a new health checker with injected dependencies
func NewHealthChecker(dataStore interfaces.DataStore) interfaces.HealthChecker {
	return &HealthCheckerImpl{
		dataStore: dataStore,
	}
}

// HealthCheck returns HTTP-specific health data for the /health endpoint.
// The catalogs are reloaded nightly, so anything older than two missed
// refreshes is treated as unhealthy.
func (h *HealthCheckerImpl) HealthCheck() (status string, data map[string]any, httpStatus int) {
	vaccines := h.dataStore.GetVaccines()
	doctors := h.dataStore.GetDoctors()
	standards := h.dataStore.GetGrowthStandards()
	lastUpdate := h.dataStore.GetLastUpdated()
	isUpdating := h.dataStore.IsUpdating()

	dataAge := time.Since(lastUpdate)

	standardsLoaded := len(standards.WeightForAge) > 0 &&
		len(standards.HeightForAge) > 0

	switch {
	case len(vaccines) == 0 || len(doctors) == 0 || !standardsLoaded:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable

	case dataAge > 50*time.Hour:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable

	case dataAge > 26*time.Hour:
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable

	default:
		status = "healthy"
		httpStatus = http.StatusOK
	}

	data = map[string]any{
		"last_update":    lastUpdate.Format(time.RFC3339),
		"next_update":    h.calculateNextUpdate().Format(time.RFC3339),
		"data_age_hours": math.Round(dataAge.Hours()*10) / 10,
		"vaccines":       len(vaccines),
		"doctors":        len(doctors),
		"is_updating":    isUpdating,
	}

	return status, data, httpStatus
}

// calculateNextUpdate returns the next scheduled catalog refresh time.
// Catalogs reload nightly at 00:05 local time.
func (h *HealthCheckerImpl) calculateNextUpdate() time.Time {
	now := time.Now()

	refresh := time.Date(now.Year(), now.Month(), now.Day(), 0, 5, 0, 0, now.Location())
	if now.Before(refresh) {
		return refresh
	}
	return refresh.AddDate(0, 0, 1)
}
