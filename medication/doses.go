// Package medication expands medication definitions into concrete dose log
// entries and builds the today's-doses dashboard feed.
package medication

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/nourcare/childcare-api/catalog/entities"
)

// Frequency modes
const (
	FrequencySpecific = "specific"
	FrequencyInterval = "interval"
)

// Dose log statuses
const (
	DoseStatusPending = "pending"
	DoseStatusGiven   = "given"
	DoseStatusSkipped = "skipped"
)

// Interval-mode doses anchor at 08:00 each day.
const intervalAnchorHour = 8

// Medication is one caregiver-entered medication course for a child.
type Medication struct {
	ID            string    `json:"id"`
	ChildID       string    `json:"childId"`
	Name          string    `json:"name"`
	Dosage        string    `json:"dosage"`
	DosageUnit    string    `json:"dosageUnit"` // ml, tablet, drops, capsule or mg
	Reason        string    `json:"reason,omitempty"`
	StartDate     time.Time `json:"startDate"`
	DurationDays  int       `json:"duration"`
	FrequencyType string    `json:"frequencyType"`
	SpecificTimes []string  `json:"specificTimes,omitempty"` // HH:MM clock times
	IntervalHours int       `json:"intervalHours,omitempty"`
	IsActive      bool      `json:"isActive"`
}

// DoseLog is one concrete scheduled occurrence of taking a medication.
type DoseLog struct {
	ID                string    `json:"id"`
	MedicationID      string    `json:"medicationId"`
	ScheduledDateTime time.Time `json:"scheduledDateTime"`
	Status            string    `json:"status"`
	ActualDateTime    time.Time `json:"actualDateTime,omitzero"`
}

// TodaysDose is the flattened dashboard view of one dose due today.
type TodaysDose struct {
	ID             string `json:"id"`
	ChildName      string `json:"childName"`
	MedicationName string `json:"medicationName"`
	ScheduledTime  string `json:"scheduledTime"` // HH:MM
	Status         string `json:"status"`
	MedicationID   string `json:"medicationId"`
	DoseLogID      string `json:"doseLogId"`
}

// GenerateDoseSchedule expands a medication into one DoseLog per scheduled
// occurrence: duration × len(times) entries in specific mode, duration ×
// (24/interval) in interval mode. Entry ids derive from the medication id,
// day index and slot so they stay stable across regeneration. Callers are
// expected to have validated the medication; a malformed frequency setup
// returns an error rather than a truncated schedule.
func GenerateDoseSchedule(med Medication) ([]DoseLog, error) {
	if med.DurationDays < 1 {
		return nil, fmt.Errorf("medication %s: duration must be at least 1 day, got %d", med.ID, med.DurationDays)
	}

	var doses []DoseLog

	switch med.FrequencyType {
	case FrequencySpecific:
		if len(med.SpecificTimes) == 0 {
			return nil, fmt.Errorf("medication %s: specific frequency requires at least one time", med.ID)
		}

		for day := 0; day < med.DurationDays; day++ {
			currentDay := med.StartDate.AddDate(0, 0, day)

			for _, clock := range med.SpecificTimes {
				hour, minute, err := parseClockTime(clock)
				if err != nil {
					return nil, fmt.Errorf("medication %s: %w", med.ID, err)
				}

				doses = append(doses, DoseLog{
					ID:           fmt.Sprintf("%s-%d-%s", med.ID, day, clock),
					MedicationID: med.ID,
					ScheduledDateTime: time.Date(currentDay.Year(), currentDay.Month(), currentDay.Day(),
						hour, minute, 0, 0, currentDay.Location()),
					Status: DoseStatusPending,
				})
			}
		}

	case FrequencyInterval:
		if med.IntervalHours <= 0 || 24%med.IntervalHours != 0 {
			return nil, fmt.Errorf("medication %s: interval hours must evenly divide 24, got %d", med.ID, med.IntervalHours)
		}

		dosesPerDay := 24 / med.IntervalHours

		for day := 0; day < med.DurationDays; day++ {
			currentDay := med.StartDate.AddDate(0, 0, day)
			anchor := time.Date(currentDay.Year(), currentDay.Month(), currentDay.Day(),
				intervalAnchorHour, 0, 0, 0, currentDay.Location())

			for dose := 0; dose < dosesPerDay; dose++ {
				doses = append(doses, DoseLog{
					ID:                fmt.Sprintf("%s-%d-%d", med.ID, day, dose),
					MedicationID:      med.ID,
					ScheduledDateTime: anchor.Add(time.Duration(dose*med.IntervalHours) * time.Hour),
					Status:            DoseStatusPending,
				})
			}
		}

	default:
		return nil, fmt.Errorf("medication %s: unknown frequency type %q", med.ID, med.FrequencyType)
	}

	return doses, nil
}

// TodaysDoses filters dose logs scheduled on the same calendar day as now,
// joins each to its medication and the medication's owning child, and
// returns the flat list sorted ascending by scheduled clock time. Logs
// whose medication or child is missing are skipped.
func TodaysDoses(medications []Medication, doseLogs []DoseLog, children []entities.Child, now time.Time) []TodaysDose {
	medsByID := make(map[string]Medication, len(medications))
	for _, med := range medications {
		medsByID[med.ID] = med
	}

	childrenByID := make(map[string]entities.Child, len(children))
	for _, child := range children {
		childrenByID[child.ID] = child
	}

	today := []TodaysDose{}

	for _, log := range doseLogs {
		if !sameCalendarDay(log.ScheduledDateTime, now) {
			continue
		}

		med, ok := medsByID[log.MedicationID]
		if !ok {
			continue
		}
		child, ok := childrenByID[med.ChildID]
		if !ok {
			continue
		}

		today = append(today, TodaysDose{
			ID:             log.ID + "-today",
			ChildName:      child.Name,
			MedicationName: med.Name,
			ScheduledTime:  log.ScheduledDateTime.Format("15:04"),
			Status:         log.Status,
			MedicationID:   med.ID,
			DoseLogID:      log.ID,
		})
	}

	// All entries share the same day, so the HH:MM string orders them.
	sort.SliceStable(today, func(i, j int) bool {
		return today[i].ScheduledTime < today[j].ScheduledTime
	})

	return today
}

// MarkGiven sets the entry's status to given and stamps the actual time.
func MarkGiven(log DoseLog, now time.Time) DoseLog {
	log.Status = DoseStatusGiven
	log.ActualDateTime = now
	return log
}

// MarkSkipped sets the entry's status to skipped.
func MarkSkipped(log DoseLog) DoseLog {
	log.Status = DoseStatusSkipped
	log.ActualDateTime = time.Time{}
	return log
}

// dosageUnitLabels maps the enumerated units to their display labels.
var dosageUnitLabels = map[string]string{
	"ml":      "مل",
	"tablet":  "قرص",
	"drops":   "نقطة",
	"capsule": "كبسولة",
	"mg":      "مجم",
}

// DosageUnitLabel returns the localized label for a dosage unit, falling
// back to the raw unit for unknown values.
func DosageUnitLabel(unit string) string {
	if label, ok := dosageUnitLabels[unit]; ok {
		return label
	}
	return unit
}

// FormatDosage renders the amount with its localized unit label.
func FormatDosage(dosage, unit string) string {
	return dosage + " " + DosageUnitLabel(unit)
}

// FrequencyDescription renders a human-readable frequency summary:
// "N times daily" for specific times, "every N hours" for intervals.
func FrequencyDescription(med Medication) string {
	switch med.FrequencyType {
	case FrequencySpecific:
		if len(med.SpecificTimes) > 0 {
			return fmt.Sprintf("%d times daily", len(med.SpecificTimes))
		}
	case FrequencyInterval:
		if med.IntervalHours > 0 {
			return fmt.Sprintf("every %d hours", med.IntervalHours)
		}
	}
	return ""
}

// parseClockTime parses an HH:MM string into hour and minute.
func parseClockTime(clock string) (int, int, error) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, 0, fmt.Errorf("invalid clock time %q, expected HH:MM", clock)
	}

	hour, err := strconv.Atoi(clock[:2])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid clock time %q, expected HH:MM", clock)
	}

	minute, err := strconv.Atoi(clock[3:])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid clock time %q, expected HH:MM", clock)
	}

	return hour, minute, nil
}

// sameCalendarDay reports whether two instants fall on the same local date.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
