// Package vaccination expands the static vaccine catalog into per-child
// schedules and classifies each record against the current date.
package vaccination

import (
	"math"
	"sort"
	"time"

	"github.com/nourcare/childcare-api/catalog/entities"
)

// Status of a single child vaccine record
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusPending  Status = "pending"
	StatusOverdue  Status = "overdue"
	StatusDone     Status = "done"
)

// Record is the due/administered state of one catalog vaccine for one child.
type Record struct {
	ID               string    `json:"id"`
	ChildID          string    `json:"childId"`
	VaccineID        string    `json:"vaccineId"`
	DueDate          time.Time `json:"dueDate"`
	AdministeredDate time.Time `json:"administeredDate,omitzero"`
	Status           Status    `json:"status"`
}

// Schedule is the full set of records for one child. Schedules are
// regenerated wholesale; MarkDone is the only single-record mutation.
type Schedule struct {
	ChildID     string    `json:"childId"`
	Records     []Record  `json:"records"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Entry joins a record with its catalog vaccine for display.
type Entry struct {
	Record  Record           `json:"record"`
	Vaccine entities.Vaccine `json:"vaccine"`
}

// Grouped partitions schedule entries into the four status buckets.
type Grouped struct {
	Overdue  []Entry `json:"overdue"`
	Pending  []Entry `json:"pending"`
	Upcoming []Entry `json:"upcoming"`
	Done     []Entry `json:"done"`
}

// ClassifyStatus derives the status of a record from its due date, an
// optional administered date and the as-of time. An administered date wins
// over everything else, even when it is after the due date or in the
// future; data-entry errors are accepted as-is. Otherwise the whole-day
// distance to the due date decides, with the pending window closed at
// exactly seven days on both sides.
func ClassifyStatus(dueDate, administeredDate, now time.Time) Status {
	if !administeredDate.IsZero() {
		return StatusDone
	}

	// Floored division, so a due date 7.5 days out is 7 whole days and a
	// due date 7.2 days past is -8, matching the inclusive -7..7 window.
	daysUntilDue := int(math.Floor(dueDate.Sub(now).Hours() / 24))

	switch {
	case daysUntilDue > 7:
		return StatusUpcoming
	case daysUntilDue >= -7:
		return StatusPending
	default:
		return StatusOverdue
	}
}

// GenerateSchedule builds a fresh schedule for a child from the vaccine
// catalog. Due dates use calendar-month addition, so a birth on Jan 31 plus
// one month lands on the calendar-normalized date, not a fixed 30 days out.
func GenerateSchedule(childID string, birthDate time.Time, vaccines []entities.Vaccine, now time.Time) Schedule {
	records := make([]Record, 0, len(vaccines))

	for _, vaccine := range vaccines {
		dueDate := birthDate.AddDate(0, vaccine.RecommendedAgeMonths, 0)

		records = append(records, Record{
			ID:        childID + "-" + vaccine.ID,
			ChildID:   childID,
			VaccineID: vaccine.ID,
			DueDate:   dueDate,
			Status:    ClassifyStatus(dueDate, time.Time{}, now),
		})
	}

	return Schedule{
		ChildID:     childID,
		Records:     records,
		LastUpdated: now,
	}
}

// Refresh reclassifies every unadministered record against a new as-of
// time. Statuses drift as "now" advances; this recomputes them in bulk.
func Refresh(schedule Schedule, now time.Time) Schedule {
	records := make([]Record, len(schedule.Records))

	for i, record := range schedule.Records {
		record.Status = ClassifyStatus(record.DueDate, record.AdministeredDate, now)
		records[i] = record
	}

	schedule.Records = records
	schedule.LastUpdated = now
	return schedule
}

// MarkDone returns a new schedule with the matching record's administered
// date set and its status forced to done. The second return is false when
// the vaccine id matches no record; no record is fabricated. Marking an
// already-done record again with the same date is a no-op beyond the
// LastUpdated refresh.
func MarkDone(schedule Schedule, vaccineID string, administeredDate, now time.Time) (Schedule, bool) {
	records := make([]Record, len(schedule.Records))
	found := false

	for i, record := range schedule.Records {
		if record.VaccineID == vaccineID {
			record.AdministeredDate = administeredDate
			record.Status = StatusDone
			found = true
		}
		records[i] = record
	}

	if !found {
		return schedule, false
	}

	return Schedule{
		ChildID:     schedule.ChildID,
		Records:     records,
		LastUpdated: now,
	}, true
}

// GroupByStatus partitions the schedule into the four status buckets, each
// joined with its catalog vaccine and sorted ascending by due date. Records
// whose vaccine id is missing from the catalog are skipped.
func GroupByStatus(schedule Schedule, vaccinesMap map[string]entities.Vaccine) Grouped {
	grouped := Grouped{
		Overdue:  []Entry{},
		Pending:  []Entry{},
		Upcoming: []Entry{},
		Done:     []Entry{},
	}

	for _, record := range schedule.Records {
		vaccine, ok := vaccinesMap[record.VaccineID]
		if !ok {
			continue
		}

		entry := Entry{Record: record, Vaccine: vaccine}

		switch record.Status {
		case StatusOverdue:
			grouped.Overdue = append(grouped.Overdue, entry)
		case StatusPending:
			grouped.Pending = append(grouped.Pending, entry)
		case StatusUpcoming:
			grouped.Upcoming = append(grouped.Upcoming, entry)
		case StatusDone:
			grouped.Done = append(grouped.Done, entry)
		}
	}

	for _, bucket := range [][]Entry{grouped.Overdue, grouped.Pending, grouped.Upcoming, grouped.Done} {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Record.DueDate.Before(bucket[j].Record.DueDate)
		})
	}

	return grouped
}

// NextUpcoming returns the earliest-due record whose status is upcoming or
// pending, joined with its vaccine. The second return is false when no such
// record exists or its vaccine is missing from the catalog.
func NextUpcoming(schedule Schedule, vaccinesMap map[string]entities.Vaccine) (Entry, bool) {
	var next Record
	found := false

	for _, record := range schedule.Records {
		if record.Status != StatusUpcoming && record.Status != StatusPending {
			continue
		}
		if !found || record.DueDate.Before(next.DueDate) {
			next = record
			found = true
		}
	}

	if !found {
		return Entry{}, false
	}

	vaccine, ok := vaccinesMap[next.VaccineID]
	if !ok {
		return Entry{}, false
	}

	return Entry{Record: next, Vaccine: vaccine}, true
}
