package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nourcare/childcare-api/logging"
	"github.com/nourcare/childcare-api/medication"
	"github.com/nourcare/childcare-api/metrics"
)

// medicationPayload is the request body for adding a medication course.
type medicationPayload struct {
	Name          string   `json:"name"`
	Dosage        string   `json:"dosage"`
	DosageUnit    string   `json:"dosageUnit"`
	Reason        string   `json:"reason"`
	StartDate     string   `json:"startDate"`
	DurationDays  int      `json:"duration"`
	FrequencyType string   `json:"frequencyType"`
	SpecificTimes []string `json:"specificTimes"`
	IntervalHours int      `json:"intervalHours"`
}

// CreateMedication validates a medication course and expands it into dose
// log entries in one step. The expansion result is stored with the course.
func (h *HTTPHandlerImpl) CreateMedication(w http.ResponseWriter, r *http.Request) {
	child, ok := h.childFromRequest(w, r)
	if !ok {
		return
	}

	var payload medicationPayload
	if err := h.decodeJSONBody(r, &payload); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	startDate, err := parseDate(payload.StartDate)
	if err != nil {
		h.RespondWithError(w, http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
		return
	}

	med := medication.Medication{
		ID:            uuid.NewString(),
		ChildID:       child.ID,
		Name:          payload.Name,
		Dosage:        payload.Dosage,
		DosageUnit:    payload.DosageUnit,
		Reason:        payload.Reason,
		StartDate:     startDate,
		DurationDays:  payload.DurationDays,
		FrequencyType: payload.FrequencyType,
		SpecificTimes: payload.SpecificTimes,
		IntervalHours: payload.IntervalHours,
		IsActive:      true,
	}

	if err := h.validator.ValidateMedication(&med); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	doses, err := medication.GenerateDoseSchedule(med)
	if err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.dataStore.AddMedication(med, doses)
	logging.Info("Medication added", "child_id", child.ID, "medication_id", med.ID,
		"doses", len(doses))

	h.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"medication": med,
		"frequency":  medication.FrequencyDescription(med),
		"doseCount":  len(doses),
		"doses":      doses,
	})
}

// ListChildMedications returns the child's medication courses
func (h *HTTPHandlerImpl) ListChildMedications(w http.ResponseWriter, r *http.Request) {
	child, ok := h.childFromRequest(w, r)
	if !ok {
		return
	}

	meds := h.dataStore.ListMedications(child.ID)
	h.RespondWithJSON(w, http.StatusOK, meds)
}

// ServeTodaysDoses returns the dashboard feed of all doses scheduled for
// the current calendar day, across every child, sorted by clock time.
func (h *HTTPHandlerImpl) ServeTodaysDoses(w http.ResponseWriter, r *http.Request) {
	doses := medication.TodaysDoses(
		h.dataStore.ListAllMedications(),
		h.dataStore.ListDoseLogs(),
		h.dataStore.ListChildren(),
		time.Now(),
	)
	h.RespondWithJSON(w, http.StatusOK, doses)
}

// MarkDoseGiven records a dose as given at the current time
func (h *HTTPHandlerImpl) MarkDoseGiven(w http.ResponseWriter, r *http.Request) {
	h.updateDoseStatus(w, r, "given")
}

// MarkDoseSkipped records a dose as skipped
func (h *HTTPHandlerImpl) MarkDoseSkipped(w http.ResponseWriter, r *http.Request) {
	h.updateDoseStatus(w, r, "skipped")
}

func (h *HTTPHandlerImpl) updateDoseStatus(w http.ResponseWriter, r *http.Request, action string) {
	doseLogID := chi.URLParam(r, "doseLogId")
	if err := h.validator.ValidateID(doseLogID); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	log, exists := h.dataStore.GetDoseLog(doseLogID)
	if !exists {
		h.RespondWithError(w, http.StatusNotFound, "Dose log not found")
		return
	}

	if action == "given" {
		log = medication.MarkGiven(log, time.Now())
	} else {
		log = medication.MarkSkipped(log)
	}

	if !h.dataStore.UpdateDoseLog(log) {
		h.RespondWithError(w, http.StatusNotFound, "Dose log not found")
		return
	}

	metrics.DosesRecordedTotal.WithLabelValues(action).Inc()

	h.RespondWithJSON(w, http.StatusOK, log)
}
