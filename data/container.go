// Package data provides thread-safe data storage and management for the
// childcare API. The reference catalogs live behind atomic pointers for
// zero-downtime swaps; the per-session stores (children, schedules,
// medications, dose logs, measurements) are guarded by a read-write mutex.
package data

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nourcare/childcare-api/catalog/entities"
	"github.com/nourcare/childcare-api/interfaces"
	"github.com/nourcare/childcare-api/logging"
	"github.com/nourcare/childcare-api/medication"
	"github.com/nourcare/childcare-api/vaccination"
)

// Compile-time check to ensure DataContainer implements DataStore
var _ interfaces.DataStore = (*DataContainer)(nil)

// DataContainer holds the reference catalogs and all session state.
type DataContainer struct {
	vaccines        atomic.Value // []entities.Vaccine
	vaccinesMap     atomic.Value // map[string]entities.Vaccine
	doctors         atomic.Value // []entities.Doctor
	doctorsMap      atomic.Value // map[string]entities.Doctor
	growthStandards atomic.Value // entities.GrowthStandards
	lastUpdated     atomic.Value // time.Time
	updating        atomic.Bool
	serverStartTime atomic.Value // time.Time

	mu           sync.RWMutex
	children     map[string]entities.Child
	schedules    map[string]vaccination.Schedule      // keyed by child id
	medications  map[string]medication.Medication     // keyed by medication id
	doseLogs     map[string]medication.DoseLog        // keyed by dose log id
	doseOrder    []string                             // dose log ids in insertion order
	measurements map[string][]entities.GrowthRecord   // keyed by child id, sorted by date
	childOrder   []string                             // child ids in registration order
	medOrder     []string                             // medication ids in insertion order
}

// NewDataContainer creates a new DataContainer with empty data
func NewDataContainer() *DataContainer {
	dc := &DataContainer{
		children:     make(map[string]entities.Child),
		schedules:    make(map[string]vaccination.Schedule),
		medications:  make(map[string]medication.Medication),
		doseLogs:     make(map[string]medication.DoseLog),
		measurements: make(map[string][]entities.GrowthRecord),
	}
	dc.vaccines.Store(make([]entities.Vaccine, 0))
	dc.vaccinesMap.Store(make(map[string]entities.Vaccine))
	dc.doctors.Store(make([]entities.Doctor, 0))
	dc.doctorsMap.Store(make(map[string]entities.Doctor))
	dc.growthStandards.Store(entities.GrowthStandards{})
	dc.lastUpdated.Store(time.Time{})
	dc.serverStartTime.Store(time.Time{})
	return dc
}

// Thread-safe catalog getters with type check

// GetVaccines returns the vaccine catalog in schedule order
func (dc *DataContainer) GetVaccines() []entities.Vaccine {
	if v := dc.vaccines.Load(); v != nil {
		if vaccines, ok := v.([]entities.Vaccine); ok {
			return vaccines
		}
	}

	logging.Warn("Vaccine catalog is empty or invalid")
	return []entities.Vaccine{}
}

// GetVaccinesMap returns the vaccine map for O(1) lookups
func (dc *DataContainer) GetVaccinesMap() map[string]entities.Vaccine {
	if v := dc.vaccinesMap.Load(); v != nil {
		if vaccinesMap, ok := v.(map[string]entities.Vaccine); ok {
			return vaccinesMap
		}
	}

	logging.Warn("Vaccine map is empty or invalid")
	return make(map[string]entities.Vaccine)
}

// GetDoctors returns the pediatrician directory
func (dc *DataContainer) GetDoctors() []entities.Doctor {
	if v := dc.doctors.Load(); v != nil {
		if doctors, ok := v.([]entities.Doctor); ok {
			return doctors
		}
	}

	logging.Warn("Doctor directory is empty or invalid")
	return []entities.Doctor{}
}

// GetDoctorsMap returns the doctor map for O(1) lookups
func (dc *DataContainer) GetDoctorsMap() map[string]entities.Doctor {
	if v := dc.doctorsMap.Load(); v != nil {
		if doctorsMap, ok := v.(map[string]entities.Doctor); ok {
			return doctorsMap
		}
	}

	logging.Warn("Doctor map is empty or invalid")
	return make(map[string]entities.Doctor)
}

// GetGrowthStandards returns the WHO reference tables
func (dc *DataContainer) GetGrowthStandards() entities.GrowthStandards {
	if v := dc.growthStandards.Load(); v != nil {
		if standards, ok := v.(entities.GrowthStandards); ok {
			return standards
		}
	}

	logging.Warn("Growth standards are empty or invalid")
	return entities.GrowthStandards{}
}

// GetLastUpdated returns the timestamp of the last catalog update
func (dc *DataContainer) GetLastUpdated() time.Time {
	if v := dc.lastUpdated.Load(); v != nil {
		if lastUpdated, ok := v.(time.Time); ok {
			return lastUpdated
		}
	}

	logging.Warn("Could not get the last updated value")
	return time.Time{}
}

// IsUpdating returns true if a catalog update is currently in progress
func (dc *DataContainer) IsUpdating() bool {
	return dc.updating.Load()
}

// SetServerStartTime sets the server start time
func (dc *DataContainer) SetServerStartTime(startTime time.Time) {
	dc.serverStartTime.Store(startTime)
}

// GetServerStartTime returns the server start time
func (dc *DataContainer) GetServerStartTime() time.Time {
	if v := dc.serverStartTime.Load(); v != nil {
		if startTime, ok := v.(time.Time); ok {
			return startTime
		}
	}

	logging.Warn("Could not get the server start time value")
	return time.Time{}
}

// UpdateCatalogs atomically swaps all reference catalogs in the container
func (dc *DataContainer) UpdateCatalogs(vaccines []entities.Vaccine, vaccinesMap map[string]entities.Vaccine,
	doctors []entities.Doctor, doctorsMap map[string]entities.Doctor,
	standards entities.GrowthStandards) {

	// Atomic swap (zero downtime replacement)
	dc.vaccines.Store(vaccines)
	dc.vaccinesMap.Store(vaccinesMap)
	dc.doctors.Store(doctors)
	dc.doctorsMap.Store(doctorsMap)
	dc.growthStandards.Store(standards)
	dc.lastUpdated.Store(time.Now())
}

// BeginUpdate marks the start of a catalog update operation.
// Returns true if the update can proceed, false if another is in progress.
func (dc *DataContainer) BeginUpdate() bool {
	return dc.updating.CompareAndSwap(false, true)
}

// EndUpdate marks the end of a catalog update operation
func (dc *DataContainer) EndUpdate() {
	dc.updating.Store(false)
}

// Session stores

// AddChild registers a child profile
func (dc *DataContainer) AddChild(child entities.Child) {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	if _, exists := dc.children[child.ID]; !exists {
		dc.childOrder = append(dc.childOrder, child.ID)
	}
	dc.children[child.ID] = child
}

// GetChild looks up a child by id
func (dc *DataContainer) GetChild(childID string) (entities.Child, bool) {
	dc.mu.RLock()
	defer dc.mu.RUnlock()

	child, ok := dc.children[childID]
	return child, ok
}

// ListChildren returns all registered children in registration order
func (dc *DataContainer) ListChildren() []entities.Child {
	dc.mu.RLock()
	defer dc.mu.RUnlock()

	children := make([]entities.Child, 0, len(dc.childOrder))
	for _, id := range dc.childOrder {
		children = append(children, dc.children[id])
	}
	return children
}

// PutSchedule stores a child's vaccination schedule, replacing any
// previous one wholesale.
func (dc *DataContainer) PutSchedule(schedule vaccination.Schedule) {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	dc.schedules[schedule.ChildID] = schedule
}

// GetSchedule looks up a child's vaccination schedule
func (dc *DataContainer) GetSchedule(childID string) (vaccination.Schedule, bool) {
	dc.mu.RLock()
	defer dc.mu.RUnlock()

	schedule, ok := dc.schedules[childID]
	return schedule, ok
}

// ListSchedules returns all stored vaccination schedules
func (dc *DataContainer) ListSchedules() []vaccination.Schedule {
	dc.mu.RLock()
	defer dc.mu.RUnlock()

	schedules := make([]vaccination.Schedule, 0, len(dc.schedules))
	for _, id := range dc.childOrder {
		if schedule, ok := dc.schedules[id]; ok {
			schedules = append(schedules, schedule)
		}
	}
	return schedules
}

// AddMedication stores a medication along with its generated dose logs
func (dc *DataContainer) AddMedication(med medication.Medication, doses []medication.DoseLog) {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	if _, exists := dc.medications[med.ID]; !exists {
		dc.medOrder = append(dc.medOrder, med.ID)
	}
	dc.medications[med.ID] = med

	for _, dose := range doses {
		if _, exists := dc.doseLogs[dose.ID]; !exists {
			dc.doseOrder = append(dc.doseOrder, dose.ID)
		}
		dc.doseLogs[dose.ID] = dose
	}
}

// GetMedication looks up a medication by id
func (dc *DataContainer) GetMedication(medicationID string) (medication.Medication, bool) {
	dc.mu.RLock()
	defer dc.mu.RUnlock()

	med, ok := dc.medications[medicationID]
	return med, ok
}

// ListMedications returns a child's medications in insertion order
func (dc *DataContainer) ListMedications(childID string) []medication.Medication {
	dc.mu.RLock()
	defer dc.mu.RUnlock()

	meds := []medication.Medication{}
	for _, id := range dc.medOrder {
		if med := dc.medications[id]; med.ChildID == childID {
			meds = append(meds, med)
		}
	}
	return meds
}

// ListAllMedications returns every stored medication in insertion order
func (dc *DataContainer) ListAllMedications() []medication.Medication {
	dc.mu.RLock()
	defer dc.mu.RUnlock()

	meds := make([]medication.Medication, 0, len(dc.medOrder))
	for _, id := range dc.medOrder {
		meds = append(meds, dc.medications[id])
	}
	return meds
}

// GetDoseLog looks up a dose log entry by id
func (dc *DataContainer) GetDoseLog(doseLogID string) (medication.DoseLog, bool) {
	dc.mu.RLock()
	defer dc.mu.RUnlock()

	log, ok := dc.doseLogs[doseLogID]
	return log, ok
}

// UpdateDoseLog replaces a single dose log entry. Returns false when the
// entry does not exist; nothing is created.
func (dc *DataContainer) UpdateDoseLog(log medication.DoseLog) bool {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	if _, ok := dc.doseLogs[log.ID]; !ok {
		return false
	}
	dc.doseLogs[log.ID] = log
	return true
}

// ListDoseLogs returns every dose log entry in insertion order
func (dc *DataContainer) ListDoseLogs() []medication.DoseLog {
	dc.mu.RLock()
	defer dc.mu.RUnlock()

	logs := make([]medication.DoseLog, 0, len(dc.doseOrder))
	for _, id := range dc.doseOrder {
		logs = append(logs, dc.doseLogs[id])
	}
	return logs
}

// AddMeasurement appends a growth record to the child's list, keeping the
// list sorted ascending by measurement date. Measurements are append-only.
func (dc *DataContainer) AddMeasurement(record entities.GrowthRecord) {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	records := append(dc.measurements[record.ChildID], record)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	dc.measurements[record.ChildID] = records
}

// ListMeasurements returns a child's growth records sorted by date
func (dc *DataContainer) ListMeasurements(childID string) []entities.GrowthRecord {
	dc.mu.RLock()
	defer dc.mu.RUnlock()

	records := dc.measurements[childID]
	out := make([]entities.GrowthRecord, len(records))
	copy(out, records)
	return out
}
