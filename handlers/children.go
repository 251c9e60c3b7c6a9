package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nourcare/childcare-api/catalog/entities"
	"github.com/nourcare/childcare-api/logging"
	"github.com/nourcare/childcare-api/metrics"
	"github.com/nourcare/childcare-api/vaccination"
)

// childPayload is the request body for registering a child.
type childPayload struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	Sex       string `json:"sex"`
}

// CreateChild registers a child and generates their vaccination schedule
// from the catalog in the same request.
func (h *HTTPHandlerImpl) CreateChild(w http.ResponseWriter, r *http.Request) {
	var payload childPayload
	if err := h.decodeJSONBody(r, &payload); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	birthDate, err := parseDate(payload.BirthDate)
	if err != nil {
		h.RespondWithError(w, http.StatusBadRequest, "Invalid birth date, expected YYYY-MM-DD")
		return
	}

	now := time.Now()
	child := entities.Child{
		ID:        uuid.NewString(),
		Name:      payload.Name,
		BirthDate: birthDate,
		Sex:       payload.Sex,
		CreatedAt: now,
	}

	if err := h.validator.ValidateChild(&child); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	schedule := vaccination.GenerateSchedule(child.ID, child.BirthDate, h.dataStore.GetVaccines(), now)

	h.dataStore.AddChild(child)
	h.dataStore.PutSchedule(schedule)

	metrics.ChildrenRegisteredTotal.Inc()
	metrics.SchedulesGeneratedTotal.Inc()
	logging.Info("Child registered", "child_id", child.ID, "records", len(schedule.Records))

	h.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"child":    child,
		"schedule": schedule,
	})
}

// ListChildren returns all registered children in insertion order
func (h *HTTPHandlerImpl) ListChildren(w http.ResponseWriter, r *http.Request) {
	children := h.dataStore.ListChildren()
	h.RespondWithJSON(w, http.StatusOK, children)
}

// GetChild returns one registered child by id
func (h *HTTPHandlerImpl) GetChild(w http.ResponseWriter, r *http.Request) {
	child, ok := h.childFromRequest(w, r)
	if !ok {
		return
	}
	h.RespondWithJSON(w, http.StatusOK, child)
}

// childFromRequest resolves the childId path parameter. On failure it has
// already written the error response and returns ok=false.
func (h *HTTPHandlerImpl) childFromRequest(w http.ResponseWriter, r *http.Request) (entities.Child, bool) {
	childID := chi.URLParam(r, "childId")
	if err := h.validator.ValidateID(childID); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return entities.Child{}, false
	}

	child, exists := h.dataStore.GetChild(childID)
	if !exists {
		h.RespondWithError(w, http.StatusNotFound, "Child not found")
		return entities.Child{}, false
	}

	return child, true
}

// GetVaccinationSchedule returns the child's full schedule, reclassified
// as of now so statuses never go stale between nightly refreshes.
func (h *HTTPHandlerImpl) GetVaccinationSchedule(w http.ResponseWriter, r *http.Request) {
	child, ok := h.childFromRequest(w, r)
	if !ok {
		return
	}

	schedule, exists := h.dataStore.GetSchedule(child.ID)
	if !exists {
		h.RespondWithError(w, http.StatusNotFound, "Schedule not found")
		return
	}

	h.RespondWithJSON(w, http.StatusOK, vaccination.Refresh(schedule, time.Now()))
}

// GetVaccinationGrouped returns the schedule partitioned into the four
// status buckets, joined with catalog vaccines.
func (h *HTTPHandlerImpl) GetVaccinationGrouped(w http.ResponseWriter, r *http.Request) {
	child, ok := h.childFromRequest(w, r)
	if !ok {
		return
	}

	schedule, exists := h.dataStore.GetSchedule(child.ID)
	if !exists {
		h.RespondWithError(w, http.StatusNotFound, "Schedule not found")
		return
	}

	refreshed := vaccination.Refresh(schedule, time.Now())
	grouped := vaccination.GroupByStatus(refreshed, h.dataStore.GetVaccinesMap())

	h.RespondWithJSON(w, http.StatusOK, grouped)
}

// GetNextVaccination returns the earliest upcoming or pending entry
func (h *HTTPHandlerImpl) GetNextVaccination(w http.ResponseWriter, r *http.Request) {
	child, ok := h.childFromRequest(w, r)
	if !ok {
		return
	}

	schedule, exists := h.dataStore.GetSchedule(child.ID)
	if !exists {
		h.RespondWithError(w, http.StatusNotFound, "Schedule not found")
		return
	}

	refreshed := vaccination.Refresh(schedule, time.Now())
	entry, found := vaccination.NextUpcoming(refreshed, h.dataStore.GetVaccinesMap())
	if !found {
		h.RespondWithError(w, http.StatusNotFound, "No upcoming vaccination")
		return
	}

	h.RespondWithJSON(w, http.StatusOK, entry)
}

// doneRequest is the optional body for marking a vaccination done.
type doneRequest struct {
	AdministeredDate string `json:"administeredDate"`
}

// MarkVaccinationDone records an administered date on one schedule record.
// With no body the current time is used.
func (h *HTTPHandlerImpl) MarkVaccinationDone(w http.ResponseWriter, r *http.Request) {
	child, ok := h.childFromRequest(w, r)
	if !ok {
		return
	}

	vaccineID := chi.URLParam(r, "vaccineId")
	if err := h.validator.ValidateID(vaccineID); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	administered := now
	if r.ContentLength > 0 {
		var payload doneRequest
		if err := h.decodeJSONBody(r, &payload); err != nil {
			h.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		if payload.AdministeredDate != "" {
			parsed, err := parseDate(payload.AdministeredDate)
			if err != nil {
				h.RespondWithError(w, http.StatusBadRequest, "Invalid administered date, expected YYYY-MM-DD")
				return
			}
			administered = parsed
		}
	}

	schedule, exists := h.dataStore.GetSchedule(child.ID)
	if !exists {
		h.RespondWithError(w, http.StatusNotFound, "Schedule not found")
		return
	}

	updated, found := vaccination.MarkDone(schedule, vaccineID, administered, now)
	if !found {
		h.RespondWithError(w, http.StatusNotFound, "Vaccine not in schedule")
		return
	}

	h.dataStore.PutSchedule(updated)
	logging.Info("Vaccination marked done", "child_id", child.ID, "vaccine_id", vaccineID)

	h.RespondWithJSON(w, http.StatusOK, updated)
}
