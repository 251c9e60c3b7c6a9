// Package interfaces defines core abstractions for the childcare API
// to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"net/http"
	"time"

	"github.com/nourcare/childcare-api/catalog/entities"
	"github.com/nourcare/childcare-api/medication"
	"github.com/nourcare/childcare-api/vaccination"
)

// CatalogQualityReport summarizes issues found in the reference catalogs.
type CatalogQualityReport struct {
	DuplicateVaccineIDs    []string
	VaccinesWithoutTargets int // Vaccines with an empty protects-against list
	VaccinesWithoutTips    int // Vaccines with no care tips
	DuplicateDoctorIDs     []string
	ShortReferenceSeries   int // WHO series with fewer than two age points
}

// DataStore is the contract for the in-memory data container. Catalog
// getters are backed by atomic snapshots; the session stores (children,
// schedules, medications, dose logs, measurements) are mutable per-session
// state guarded by the container.
type DataStore interface {
	// Reference catalogs
	GetVaccines() []entities.Vaccine
	GetVaccinesMap() map[string]entities.Vaccine
	GetDoctors() []entities.Doctor
	GetDoctorsMap() map[string]entities.Doctor
	GetGrowthStandards() entities.GrowthStandards
	GetLastUpdated() time.Time
	IsUpdating() bool
	GetServerStartTime() time.Time
	SetServerStartTime(startTime time.Time)

	// Catalog update methods
	UpdateCatalogs(vaccines []entities.Vaccine, vaccinesMap map[string]entities.Vaccine,
		doctors []entities.Doctor, doctorsMap map[string]entities.Doctor,
		standards entities.GrowthStandards)
	BeginUpdate() bool
	EndUpdate()

	// Children registry
	AddChild(child entities.Child)
	GetChild(childID string) (entities.Child, bool)
	ListChildren() []entities.Child

	// Vaccination schedules
	PutSchedule(schedule vaccination.Schedule)
	GetSchedule(childID string) (vaccination.Schedule, bool)
	ListSchedules() []vaccination.Schedule

	// Medications and dose logs
	AddMedication(med medication.Medication, doses []medication.DoseLog)
	GetMedication(medicationID string) (medication.Medication, bool)
	ListMedications(childID string) []medication.Medication
	ListAllMedications() []medication.Medication
	GetDoseLog(doseLogID string) (medication.DoseLog, bool)
	UpdateDoseLog(log medication.DoseLog) bool
	ListDoseLogs() []medication.DoseLog

	// Growth measurements
	AddMeasurement(record entities.GrowthRecord)
	ListMeasurements(childID string) []entities.GrowthRecord
}

// CatalogLoader is the contract for assembling the reference catalogs.
type CatalogLoader interface {
	LoadVaccines() ([]entities.Vaccine, map[string]entities.Vaccine, error)
	LoadDoctors() ([]entities.Doctor, map[string]entities.Doctor, error)
	LoadGrowthStandards() (entities.GrowthStandards, error)
}

// Scheduler is the contract for background job scheduling: catalog load,
// nightly vaccination-status refresh and staleness monitoring.
type Scheduler interface {
	Start() error
	Stop()
}

// HTTPHandler is the contract for the HTTP handler layer. Every route the
// server mounts resolves to one of these methods.
type HTTPHandler interface {
	// Vaccine catalog
	ServeVaccines(w http.ResponseWriter, r *http.Request)
	FindVaccineByID(w http.ResponseWriter, r *http.Request)
	SearchVaccines(w http.ResponseWriter, r *http.Request)

	// Children registry
	CreateChild(w http.ResponseWriter, r *http.Request)
	ListChildren(w http.ResponseWriter, r *http.Request)
	GetChild(w http.ResponseWriter, r *http.Request)

	// Vaccination schedules
	GetVaccinationSchedule(w http.ResponseWriter, r *http.Request)
	GetVaccinationGrouped(w http.ResponseWriter, r *http.Request)
	GetNextVaccination(w http.ResponseWriter, r *http.Request)
	MarkVaccinationDone(w http.ResponseWriter, r *http.Request)

	// Medications and dose logs
	CreateMedication(w http.ResponseWriter, r *http.Request)
	ListChildMedications(w http.ResponseWriter, r *http.Request)
	ServeTodaysDoses(w http.ResponseWriter, r *http.Request)
	MarkDoseGiven(w http.ResponseWriter, r *http.Request)
	MarkDoseSkipped(w http.ResponseWriter, r *http.Request)

	// Growth measurements and charts
	CreateMeasurement(w http.ResponseWriter, r *http.Request)
	ListMeasurements(w http.ResponseWriter, r *http.Request)
	ServeGrowthChart(w http.ResponseWriter, r *http.Request)
	ServeGrowthStandards(w http.ResponseWriter, r *http.Request)

	// Doctor directory
	ServeDoctors(w http.ResponseWriter, r *http.Request)
	FindDoctorByID(w http.ResponseWriter, r *http.Request)
	SearchDoctors(w http.ResponseWriter, r *http.Request)

	// Symptom triage
	ServeTriageQuestions(w http.ResponseWriter, r *http.Request)
	ResolveTriageNext(w http.ResponseWriter, r *http.Request)
	ResolveTriageOutcome(w http.ResponseWriter, r *http.Request)

	// Health check
	HealthCheck(w http.ResponseWriter, r *http.Request)
}

// HealthChecker is the contract for health check functionality.
type HealthChecker interface {
	// HealthCheck returns current system health status
	HealthCheck() (status string, data map[string]any, httpStatus int)
}

// DataValidator is the contract for input and catalog validation.
type DataValidator interface {
	// ValidateInput validates user-supplied search/lookup strings
	ValidateInput(input string) error

	// ValidateID validates an opaque identifier path parameter
	ValidateID(input string) error

	// ValidateChild validates a child registration payload
	ValidateChild(child *entities.Child) error

	// ValidateMedication validates a medication definition before dose
	// expansion (frequency mode, times, interval divisibility, duration)
	ValidateMedication(med *medication.Medication) error

	// ValidateMeasurement validates a growth measurement payload
	ValidateMeasurement(record *entities.GrowthRecord) error

	// ReportCatalogQuality generates a quality report over the catalogs
	ReportCatalogQuality(vaccines []entities.Vaccine, doctors []entities.Doctor,
		standards entities.GrowthStandards) *CatalogQualityReport
}
