// Package scheduler provides background job scheduling for the childcare
// API: the initial catalog load, a nightly pass that reloads the reference
// catalogs and reclassifies every stored vaccination schedule against the
// new date, and catalog staleness monitoring.
package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/nourcare/childcare-api/interfaces"
	"github.com/nourcare/childcare-api/logging"
	"github.com/nourcare/childcare-api/vaccination"
	"github.com/nourcare/childcare-api/validation"
)

// Compile-time check to ensure Scheduler implements the Scheduler interface
var _ interfaces.Scheduler = (*Scheduler)(nil)

// Vaccination statuses drift as days pass; the nightly job runs just after
// midnight so dashboards show the new day's statuses.
const nightlyRefreshAt = "00:05"

// Scheduler handles catalog loads and status refreshes using dependency injection
type Scheduler struct {
	dataStore interfaces.DataStore
	loader    interfaces.CatalogLoader
	scheduler *gocron.Scheduler
}

// NewScheduler creates a new scheduler instance with injected dependencies
func NewScheduler(dataStore interfaces.DataStore, loader interfaces.CatalogLoader) *Scheduler {
	return &Scheduler{
		dataStore: dataStore,
		loader:    loader,
		scheduler: gocron.NewScheduler(time.Local),
	}
}

// Start performs the initial catalog load and registers the nightly job
func (s *Scheduler) Start() error {
	// Initial load
	if err := s.loadCatalogs(); err != nil {
		logging.Error("Failed to perform initial catalog load", "error", err)
		return fmt.Errorf("initial catalog load failed: %w", err)
	}

	_, err := s.scheduler.Every(1).Days().At(nightlyRefreshAt).Do(func() {
		if err := s.loadCatalogs(); err != nil {
			logging.Error("Failed to reload catalogs", "error", err)
		}
		s.refreshSchedules(time.Now())
	})

	if err != nil {
		logging.Error("Failed to schedule nightly refresh", "error", err)
		return fmt.Errorf("failed to schedule nightly refresh: %w", err)
	}

	s.scheduler.StartAsync()

	// Start staleness monitoring
	s.startHealthMonitoring()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// loadCatalogs assembles the reference catalogs through the injected
// loader, reports on their quality and swaps them into the data store.
func (s *Scheduler) loadCatalogs() error {
	// Prevent concurrent updates
	if !s.dataStore.BeginUpdate() {
		logging.Info("Catalog update already in progress, skipping...")
		return nil
	}
	defer s.dataStore.EndUpdate()

	start := time.Now()

	vaccines, vaccinesMap, err := s.loader.LoadVaccines()
	if err != nil {
		logging.Error("Failed to load vaccine catalog", "error", err)
		return fmt.Errorf("failed to load vaccine catalog: %w", err)
	}

	doctors, doctorsMap, err := s.loader.LoadDoctors()
	if err != nil {
		logging.Error("Failed to load doctor directory", "error", err)
		return fmt.Errorf("failed to load doctor directory: %w", err)
	}

	standards, err := s.loader.LoadGrowthStandards()
	if err != nil {
		logging.Error("Failed to load growth standards", "error", err)
		return fmt.Errorf("failed to load growth standards: %w", err)
	}

	validator := validation.NewDataValidator()
	report := validator.ReportCatalogQuality(vaccines, doctors, standards)

	if len(report.DuplicateVaccineIDs) > 0 {
		logging.Warn("Duplicate vaccine ids detected",
			"total", len(report.DuplicateVaccineIDs),
			"id_list", report.DuplicateVaccineIDs,
		)
	}

	if len(report.DuplicateDoctorIDs) > 0 {
		logging.Warn("Duplicate doctor ids detected",
			"total", len(report.DuplicateDoctorIDs),
			"id_list", report.DuplicateDoctorIDs,
		)
	}

	if report.VaccinesWithoutTargets > 0 {
		logging.Warn("Vaccines without protects-against entries",
			"count", report.VaccinesWithoutTargets,
		)
	}

	if report.ShortReferenceSeries > 0 {
		logging.Warn("WHO reference series with fewer than two age points",
			"count", report.ShortReferenceSeries,
		)
	}

	// Atomic swap through the injected data store
	s.dataStore.UpdateCatalogs(vaccines, vaccinesMap, doctors, doctorsMap, standards)

	elapsed := time.Since(start)
	logging.Info("Catalog load completed",
		"duration", elapsed.String(),
		"vaccine_count", len(vaccines),
		"doctor_count", len(doctors),
	)

	return nil
}

// refreshSchedules reclassifies every stored vaccination schedule against
// the given as-of time and counts the records that changed status.
func (s *Scheduler) refreshSchedules(now time.Time) {
	schedules := s.dataStore.ListSchedules()
	changed := 0

	for _, schedule := range schedules {
		refreshed := vaccination.Refresh(schedule, now)

		for i := range schedule.Records {
			if schedule.Records[i].Status != refreshed.Records[i].Status {
				changed++
			}
		}

		s.dataStore.PutSchedule(refreshed)
	}

	logging.Info("Vaccination status refresh completed",
		"schedules", len(schedules),
		"records_changed", changed,
	)
}

// startHealthMonitoring warns when the catalogs have not been reloaded
// within the expected nightly cadence.
func (s *Scheduler) startHealthMonitoring() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			lastUpdate := s.dataStore.GetLastUpdated()
			if time.Since(lastUpdate) > 25*time.Hour {
				logging.Warn("Catalogs haven't been reloaded in over 25 hours")
			}
		}
	}()
}
