// Package validation provides data validation functionality for the childcare API.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/nourcare/childcare-api/catalog/entities"
	"github.com/nourcare/childcare-api/interfaces"
	"github.com/nourcare/childcare-api/medication"
)

// Pre-compiled regex patterns, compiled once at package initialization
var (
	// Search input: Latin letters, digits, Arabic letters and safe punctuation
	inputRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-\.\+'\x{0600}-\x{06FF}]+$`)

	// Identifiers: catalog slugs and uuids
	idRegex = regexp.MustCompile(`^[a-zA-Z0-9\-]+$`)

	// HH:MM clock times
	clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

	// Dangerous patterns as strings; strings.Contains beats regex here
	dangerousPatterns = []string{
		"<script", "</script>", "javascript:", "vbscript:", "onload=", "onerror=",
		"onclick=", "onmouseover=", "onfocus=", "onblur=", "onchange=", "onsubmit=",
		"eval(", "expression(", "url(", "import ", "@import", "binding(", "behavior(",
		// SQL injection patterns
		"' or ", "\" or ", "union select", "drop table", "delete from", "insert into",
		"update set", "--", "/*", "*/", "xp_", "sp_", "exec(", "execute(",
		// Command injection patterns
		"; ", "| ", "& ", "`", "$(", "${",
		// Path traversal patterns
		"../", "..\\", "%2e%2e", "file://",
	}
)

// Dosage units accepted by the medication endpoints
var validDosageUnits = map[string]bool{
	"ml":      true,
	"tablet":  true,
	"drops":   true,
	"capsule": true,
	"mg":      true,
}

// DataValidatorImpl implements the interfaces.DataValidator interface
type DataValidatorImpl struct{}

// NewDataValidator creates a new data validator
func NewDataValidator() interfaces.DataValidator {
	return &DataValidatorImpl{}
}

// ValidateInput validates user-supplied search strings
func (v *DataValidatorImpl) ValidateInput(input string) error {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return fmt.Errorf("input cannot be empty")
	}

	if len(trimmed) > 100 {
		return fmt.Errorf("input too long: %d characters (max 100)", len(trimmed))
	}

	lower := strings.ToLower(trimmed)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lower, pattern) {
			return fmt.Errorf("input contains invalid characters")
		}
	}

	if !inputRegex.MatchString(trimmed) {
		return fmt.Errorf("input contains invalid characters")
	}

	return nil
}

// ValidateID validates an opaque identifier path parameter
func (v *DataValidatorImpl) ValidateID(input string) error {
	if input == "" {
		return fmt.Errorf("id cannot be empty")
	}

	if len(input) > 80 {
		return fmt.Errorf("id too long: %d characters (max 80)", len(input))
	}

	if !idRegex.MatchString(input) {
		return fmt.Errorf("id contains invalid characters")
	}

	return nil
}

// ValidateChild validates a child registration payload
func (v *DataValidatorImpl) ValidateChild(child *entities.Child) error {
	if child == nil {
		return fmt.Errorf("child is nil")
	}

	if strings.TrimSpace(child.Name) == "" {
		return fmt.Errorf("child name cannot be empty")
	}

	if len(child.Name) > 100 {
		return fmt.Errorf("child name too long: %d characters (max 100)", len(child.Name))
	}

	if child.BirthDate.IsZero() {
		return fmt.Errorf("birth date is required")
	}

	if child.BirthDate.After(time.Now()) {
		return fmt.Errorf("birth date cannot be in the future")
	}

	if child.Sex != entities.SexMale && child.Sex != entities.SexFemale {
		return fmt.Errorf("sex must be %q or %q, got %q", entities.SexMale, entities.SexFemale, child.Sex)
	}

	return nil
}

// ValidateMedication validates a medication definition before dose
// expansion. Frequency problems are rejected here so the expander never
// emits a truncated or empty schedule.
func (v *DataValidatorImpl) ValidateMedication(med *medication.Medication) error {
	if med == nil {
		return fmt.Errorf("medication is nil")
	}

	if strings.TrimSpace(med.Name) == "" {
		return fmt.Errorf("medication name cannot be empty")
	}

	if len(med.Name) > 120 {
		return fmt.Errorf("medication name too long: %d characters (max 120)", len(med.Name))
	}

	if strings.TrimSpace(med.Dosage) == "" {
		return fmt.Errorf("dosage amount is required")
	}

	if !validDosageUnits[med.DosageUnit] {
		return fmt.Errorf("unknown dosage unit %q", med.DosageUnit)
	}

	if med.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}

	if med.DurationDays < 1 {
		return fmt.Errorf("duration must be at least 1 day, got %d", med.DurationDays)
	}

	if med.DurationDays > 365 {
		return fmt.Errorf("duration too long: %d days (max 365)", med.DurationDays)
	}

	switch med.FrequencyType {
	case medication.FrequencySpecific:
		if len(med.SpecificTimes) == 0 {
			return fmt.Errorf("specific frequency requires at least one time")
		}
		for _, clock := range med.SpecificTimes {
			if !clockRegex.MatchString(clock) {
				return fmt.Errorf("invalid clock time %q, expected HH:MM", clock)
			}
		}

	case medication.FrequencyInterval:
		if med.IntervalHours <= 0 {
			return fmt.Errorf("interval hours must be positive, got %d", med.IntervalHours)
		}
		if 24%med.IntervalHours != 0 {
			return fmt.Errorf("interval hours must evenly divide 24, got %d", med.IntervalHours)
		}

	default:
		return fmt.Errorf("frequency type must be %q or %q, got %q",
			medication.FrequencySpecific, medication.FrequencyInterval, med.FrequencyType)
	}

	return nil
}

// ValidateMeasurement validates a growth measurement payload
func (v *DataValidatorImpl) ValidateMeasurement(record *entities.GrowthRecord) error {
	if record == nil {
		return fmt.Errorf("measurement is nil")
	}

	if record.Date.IsZero() {
		return fmt.Errorf("measurement date is required")
	}

	if record.WeightKg <= 0 || record.WeightKg > 60 {
		return fmt.Errorf("weight out of range: %.2f kg", record.WeightKg)
	}

	if record.HeightCm <= 0 || record.HeightCm > 200 {
		return fmt.Errorf("height out of range: %.2f cm", record.HeightCm)
	}

	if record.HeadCircumference <= 0 || record.HeadCircumference > 70 {
		return fmt.Errorf("head circumference out of range: %.2f cm", record.HeadCircumference)
	}

	return nil
}

// ReportCatalogQuality generates a catalog quality report with all issues found
func (v *DataValidatorImpl) ReportCatalogQuality(vaccines []entities.Vaccine, doctors []entities.Doctor,
	standards entities.GrowthStandards) *interfaces.CatalogQualityReport {

	report := &interfaces.CatalogQualityReport{}

	vaccineCount := make(map[string]int)
	for _, vaccine := range vaccines {
		vaccineCount[vaccine.ID]++
		if len(vaccine.ProtectsAgainst) == 0 {
			report.VaccinesWithoutTargets++
		}
		if len(vaccine.CareTips) == 0 {
			report.VaccinesWithoutTips++
		}
	}
	for id, count := range vaccineCount {
		if count > 1 {
			report.DuplicateVaccineIDs = append(report.DuplicateVaccineIDs, id)
		}
	}

	doctorCount := make(map[string]int)
	for _, doctor := range doctors {
		doctorCount[doctor.ID]++
	}
	for id, count := range doctorCount {
		if count > 1 {
			report.DuplicateDoctorIDs = append(report.DuplicateDoctorIDs, id)
		}
	}

	for _, bySex := range []map[string][]entities.WHOPercentile{
		standards.WeightForAge, standards.HeightForAge, standards.HeadCircumferenceForAge,
	} {
		for _, series := range bySex {
			if len(series) < 2 {
				report.ShortReferenceSeries++
			}
		}
	}

	return report
}
