// Package handlers provides the HTTP request handlers for the childcare API.
// Handlers are methods on HTTPHandlerImpl with the data store, validator and
// health checker injected through interfaces.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nourcare/childcare-api/catalog"
	"github.com/nourcare/childcare-api/catalog/entities"
	"github.com/nourcare/childcare-api/interfaces"
	"github.com/nourcare/childcare-api/logging"
)

// HTTPHandlerImpl implements the interfaces.HTTPHandler interface
type HTTPHandlerImpl struct {
	dataStore interfaces.DataStore
	validator interfaces.DataValidator
	health    interfaces.HealthChecker
}

var _ interfaces.HTTPHandler = (*HTTPHandlerImpl)(nil)

// NewHTTPHandler creates a new HTTP handler with injected dependencies
func NewHTTPHandler(dataStore interfaces.DataStore, validator interfaces.DataValidator,
	health interfaces.HealthChecker) interfaces.HTTPHandler {
	return &HTTPHandlerImpl{
		dataStore: dataStore,
		validator: validator,
		health:    health,
	}
}

// RespondWithJSON writes a JSON response
func (h *HTTPHandlerImpl) RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	w.WriteHeader(code)
	w.Write(data)
}

// RespondWithError writes a JSON error response
func (h *HTTPHandlerImpl) RespondWithError(w http.ResponseWriter, code int, message string) {
	errorResponse := map[string]interface{}{
		"error":   http.StatusText(code),
		"message": message,
		"code":    code,
	}
	h.RespondWithJSON(w, code, errorResponse)
}

// decodeJSONBody decodes a request body into dst. The size cap is enforced
// upstream by the request size middleware.
func (h *HTTPHandlerImpl) decodeJSONBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// parseDate accepts plain dates and full RFC 3339 timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// formatUptimeHuman formats duration into a human-readable string
func (h *HTTPHandlerImpl) formatUptimeHuman(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	var parts []string

	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))

	return strings.Join(parts, " ")
}

// ServeVaccines returns the full immunization schedule catalog
func (h *HTTPHandlerImpl) ServeVaccines(w http.ResponseWriter, r *http.Request) {
	vaccines := h.dataStore.GetVaccines()
	h.RespondWithJSON(w, http.StatusOK, vaccines)
}

// FindVaccineByID returns one catalog vaccine by id
func (h *HTTPHandlerImpl) FindVaccineByID(w http.ResponseWriter, r *http.Request) {
	vaccineID := chi.URLParam(r, "vaccineId")
	if err := h.validator.ValidateID(vaccineID); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	vaccinesMap := h.dataStore.GetVaccinesMap()
	vaccine, exists := vaccinesMap[vaccineID]
	if !exists {
		h.RespondWithError(w, http.StatusNotFound, "Vaccine not found")
		return
	}

	h.RespondWithJSON(w, http.StatusOK, vaccine)
}

// SearchVaccines searches the catalog by Arabic or English name,
// diacritic-insensitive. Always returns 200 with a results array.
func (h *HTTPHandlerImpl) SearchVaccines(w http.ResponseWriter, r *http.Request) {
	term := chi.URLParam(r, "term")
	if term == "" {
		h.RespondWithError(w, http.StatusBadRequest, "Missing search term")
		return
	}

	if err := h.validator.ValidateInput(term); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	normalized := catalog.NormalizeSearch(term)

	vaccines := h.dataStore.GetVaccines()
	results := make([]entities.Vaccine, 0)

	for _, v := range vaccines {
		haystack := catalog.NormalizeSearch(v.NameAr + " " + v.NameEn)
		if strings.Contains(haystack, normalized) {
			results = append(results, v)
		}
	}

	h.RespondWithJSON(w, http.StatusOK, results)
}

// ServeDoctors returns the full pediatrician directory
func (h *HTTPHandlerImpl) ServeDoctors(w http.ResponseWriter, r *http.Request) {
	doctors := h.dataStore.GetDoctors()
	h.RespondWithJSON(w, http.StatusOK, doctors)
}

// FindDoctorByID returns one directory entry by id
func (h *HTTPHandlerImpl) FindDoctorByID(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorId")
	if err := h.validator.ValidateID(doctorID); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	doctorsMap := h.dataStore.GetDoctorsMap()
	doctor, exists := doctorsMap[doctorID]
	if !exists {
		h.RespondWithError(w, http.StatusNotFound, "Doctor not found")
		return
	}

	h.RespondWithJSON(w, http.StatusOK, doctor)
}

// SearchDoctors searches the directory by name or specialty against the
// pre-normalized search text
func (h *HTTPHandlerImpl) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	term := chi.URLParam(r, "term")
	if term == "" {
		h.RespondWithError(w, http.StatusBadRequest, "Missing search term")
		return
	}

	if err := h.validator.ValidateInput(term); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	normalized := catalog.NormalizeSearch(term)

	doctors := h.dataStore.GetDoctors()
	results := make([]entities.Doctor, 0)

	for _, d := range doctors {
		if strings.Contains(d.SearchNormalized, normalized) {
			results = append(results, d)
		}
	}

	h.RespondWithJSON(w, http.StatusOK, results)
}

// HealthResponse defines the structure for consistent JSON ordering
type HealthResponse struct {
	Status        string                 `json:"status"`
	UptimeSeconds float64                `json:"uptime_seconds"`
	UptimeHuman   string                 `json:"uptime_human"`
	Data          map[string]interface{} `json:"data"`
	System        map[string]interface{} `json:"system"`
}

// HealthCheck returns server health information
func (h *HTTPHandlerImpl) HealthCheck(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.dataStore.GetServerStartTime())

	status, data, httpStatus := h.health.HealthCheck()
	data["api_version"] = "1.0"

	response := HealthResponse{
		Status:        status,
		UptimeSeconds: uptime.Seconds(),
		UptimeHuman:   h.formatUptimeHuman(uptime),
		Data:          data,
		System: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc_mb":       int(m.Alloc / 1024 / 1024),
				"total_alloc_mb": int(m.TotalAlloc / 1024 / 1024),
				"sys_mb":         int(m.Sys / 1024 / 1024),
				"num_gc":         m.NumGC,
			},
		},
	}

	h.RespondWithJSON(w, httpStatus, response)
}
