package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nourcare/childcare-api/catalog/entities"
	"github.com/nourcare/childcare-api/growth"
	"github.com/nourcare/childcare-api/logging"
)

// measurementPayload is the request body for recording a measurement.
type measurementPayload struct {
	Date              string  `json:"date"`
	WeightKg          float64 `json:"weight"`
	HeightCm          float64 `json:"height"`
	HeadCircumference float64 `json:"headCircumference"`
}

// CreateMeasurement records one growth measurement for a child
func (h *HTTPHandlerImpl) CreateMeasurement(w http.ResponseWriter, r *http.Request) {
	child, ok := h.childFromRequest(w, r)
	if !ok {
		return
	}

	var payload measurementPayload
	if err := h.decodeJSONBody(r, &payload); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	date := time.Now()
	if payload.Date != "" {
		parsed, err := parseDate(payload.Date)
		if err != nil {
			h.RespondWithError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	record := entities.GrowthRecord{
		ID:                uuid.NewString(),
		ChildID:           child.ID,
		Date:              date,
		WeightKg:          payload.WeightKg,
		HeightCm:          payload.HeightCm,
		HeadCircumference: payload.HeadCircumference,
	}

	if err := h.validator.ValidateMeasurement(&record); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.dataStore.AddMeasurement(record)
	logging.Info("Measurement recorded", "child_id", child.ID, "measurement_id", record.ID)

	h.RespondWithJSON(w, http.StatusCreated, record)
}

// ListMeasurements returns the child's measurements sorted by date
func (h *HTTPHandlerImpl) ListMeasurements(w http.ResponseWriter, r *http.Request) {
	child, ok := h.childFromRequest(w, r)
	if !ok {
		return
	}

	records := h.dataStore.ListMeasurements(child.ID)
	h.RespondWithJSON(w, http.StatusOK, records)
}

// ServeGrowthChart returns the child's measurements aligned against the WHO
// reference series for one chart type, plus the percentile band of the most
// recent measurement.
func (h *HTTPHandlerImpl) ServeGrowthChart(w http.ResponseWriter, r *http.Request) {
	child, ok := h.childFromRequest(w, r)
	if !ok {
		return
	}

	chartType := chi.URLParam(r, "chartType")
	series, found := growth.StandardsFor(h.dataStore.GetGrowthStandards(), chartType, child.Sex)
	if !found {
		h.RespondWithError(w, http.StatusBadRequest, "Unknown chart type")
		return
	}

	records := h.dataStore.ListMeasurements(child.ID)
	points := growth.BuildChartSeries(series, records, child.BirthDate, chartType)

	response := map[string]interface{}{
		"chartType": chartType,
		"sex":       child.Sex,
		"points":    points,
	}

	// Band of the most recent measurement, when there is one
	if len(records) > 0 {
		latest := records[len(records)-1]
		ageMonths := growth.AgeInMonths(child.BirthDate, latest.Date)
		response["currentBand"] = growth.PercentileBand(latest.ValueFor(chartType), ageMonths, series)
		response["currentAgeMonths"] = ageMonths
	}

	h.RespondWithJSON(w, http.StatusOK, response)
}

// ServeGrowthStandards returns one raw WHO reference series
func (h *HTTPHandlerImpl) ServeGrowthStandards(w http.ResponseWriter, r *http.Request) {
	chartType := chi.URLParam(r, "chartType")
	sex := chi.URLParam(r, "sex")

	series, found := growth.StandardsFor(h.dataStore.GetGrowthStandards(), chartType, sex)
	if !found {
		h.RespondWithError(w, http.StatusNotFound, "Unknown chart type or sex")
		return
	}

	h.RespondWithJSON(w, http.StatusOK, series)
}
