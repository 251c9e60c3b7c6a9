package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/nourcare/childcare-api/catalog/entities"
	"github.com/nourcare/childcare-api/medication"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateInput(t *testing.T) {
	validator := NewDataValidator()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple latin", "polio", false},
		{"arabic", "شلل الأطفال", false},
		{"mixed with digits", "Pentavalent 1", false},
		{"hyphen and dot", "Dr. El-Sayed", false},
		{"empty", "", true},
		{"only spaces", "   ", true},
		{"too long", strings.Repeat("a", 101), true},
		{"script tag", "<script>alert(1)</script>", true},
		{"sql injection", "' or 1=1", true},
		{"sql comment", "name--", true},
		{"command injection", "name; rm", true},
		{"path traversal", "../etc/passwd", true},
		{"underscore rejected", "some_name", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateInput(tt.input)
			if tt.wantErr && err == nil {
				t.Error("Expected an error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestValidateID(t *testing.T) {
	validator := NewDataValidator()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"catalog slug", "penta-1", false},
		{"uuid", "f47ac10b-58cc-4372-a567-0e02b2c3d479", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 81), true},
		{"spaces", "penta 1", true},
		{"arabic not allowed in ids", "تطعيم", true},
		{"dot not allowed", "a.b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateID(tt.input)
			if tt.wantErr && err == nil {
				t.Error("Expected an error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestValidateChild(t *testing.T) {
	validator := NewDataValidator()

	valid := entities.Child{
		ID:        "child-1",
		Name:      "سارة",
		BirthDate: date(2025, time.June, 1),
		Sex:       entities.SexFemale,
	}

	tests := []struct {
		name    string
		mutate  func(c *entities.Child)
		wantErr bool
	}{
		{"valid child", func(c *entities.Child) {}, false},
		{"empty name", func(c *entities.Child) { c.Name = " " }, true},
		{"name too long", func(c *entities.Child) { c.Name = strings.Repeat("a", 101) }, true},
		{"zero birth date", func(c *entities.Child) { c.BirthDate = time.Time{} }, true},
		{"future birth date", func(c *entities.Child) { c.BirthDate = time.Now().AddDate(0, 1, 0) }, true},
		{"unknown sex", func(c *entities.Child) { c.Sex = "unknown" }, true},
		{"empty sex", func(c *entities.Child) { c.Sex = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child := valid
			tt.mutate(&child)

			err := validator.ValidateChild(&child)
			if tt.wantErr && err == nil {
				t.Error("Expected an error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}

	if err := validator.ValidateChild(nil); err == nil {
		t.Error("Expected an error for nil child")
	}
}

func TestValidateMedication(t *testing.T) {
	validator := NewDataValidator()

	valid := medication.Medication{
		ID:            "med-1",
		ChildID:       "child-1",
		Name:          "Paracetamol",
		Dosage:        "5",
		DosageUnit:    "ml",
		StartDate:     date(2026, time.March, 1),
		DurationDays:  5,
		FrequencyType: medication.FrequencySpecific,
		SpecificTimes: []string{"08:00", "20:00"},
	}

	tests := []struct {
		name    string
		mutate  func(m *medication.Medication)
		wantErr bool
	}{
		{"valid specific", func(m *medication.Medication) {}, false},
		{
			name: "valid interval",
			mutate: func(m *medication.Medication) {
				m.FrequencyType = medication.FrequencyInterval
				m.SpecificTimes = nil
				m.IntervalHours = 8
			},
		},
		{"empty name", func(m *medication.Medication) { m.Name = "" }, true},
		{"empty dosage", func(m *medication.Medication) { m.Dosage = " " }, true},
		{"unknown unit", func(m *medication.Medication) { m.DosageUnit = "spoon" }, true},
		{"zero start date", func(m *medication.Medication) { m.StartDate = time.Time{} }, true},
		{"zero duration", func(m *medication.Medication) { m.DurationDays = 0 }, true},
		{"duration over a year", func(m *medication.Medication) { m.DurationDays = 366 }, true},
		{"no specific times", func(m *medication.Medication) { m.SpecificTimes = nil }, true},
		{"bad clock time", func(m *medication.Medication) { m.SpecificTimes = []string{"8:00"} }, true},
		{"clock out of range", func(m *medication.Medication) { m.SpecificTimes = []string{"24:00"} }, true},
		{
			name: "interval not dividing 24",
			mutate: func(m *medication.Medication) {
				m.FrequencyType = medication.FrequencyInterval
				m.IntervalHours = 5
			},
			wantErr: true,
		},
		{
			name: "zero interval",
			mutate: func(m *medication.Medication) {
				m.FrequencyType = medication.FrequencyInterval
				m.IntervalHours = 0
			},
			wantErr: true,
		},
		{"unknown frequency type", func(m *medication.Medication) { m.FrequencyType = "weekly" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			med := valid
			tt.mutate(&med)

			err := validator.ValidateMedication(&med)
			if tt.wantErr && err == nil {
				t.Error("Expected an error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestValidateMeasurement(t *testing.T) {
	validator := NewDataValidator()

	valid := entities.GrowthRecord{
		ID:                "m1",
		ChildID:           "child-1",
		Date:              date(2026, time.March, 1),
		WeightKg:          7.5,
		HeightCm:          68,
		HeadCircumference: 43,
	}

	tests := []struct {
		name    string
		mutate  func(r *entities.GrowthRecord)
		wantErr bool
	}{
		{"valid measurement", func(r *entities.GrowthRecord) {}, false},
		{"zero date", func(r *entities.GrowthRecord) { r.Date = time.Time{} }, true},
		{"zero weight", func(r *entities.GrowthRecord) { r.WeightKg = 0 }, true},
		{"negative weight", func(r *entities.GrowthRecord) { r.WeightKg = -1 }, true},
		{"weight too high", func(r *entities.GrowthRecord) { r.WeightKg = 61 }, true},
		{"height too high", func(r *entities.GrowthRecord) { r.HeightCm = 201 }, true},
		{"zero height", func(r *entities.GrowthRecord) { r.HeightCm = 0 }, true},
		{"head circumference too high", func(r *entities.GrowthRecord) { r.HeadCircumference = 71 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := valid
			tt.mutate(&record)

			err := validator.ValidateMeasurement(&record)
			if tt.wantErr && err == nil {
				t.Error("Expected an error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestReportCatalogQuality(t *testing.T) {
	validator := NewDataValidator()

	vaccines := []entities.Vaccine{
		{ID: "bcg", ProtectsAgainst: []string{"السل"}, CareTips: []string{"كمادات"}},
		{ID: "bcg", ProtectsAgainst: []string{"السل"}, CareTips: []string{"كمادات"}},
		{ID: "polio-0"}, // no targets, no tips
	}
	doctors := []entities.Doctor{
		{ID: "1"}, {ID: "1"}, {ID: "2"},
	}
	standards := entities.GrowthStandards{
		WeightForAge: map[string][]entities.WHOPercentile{
			entities.SexMale: {{AgeMonths: 0}},
		},
	}

	report := validator.ReportCatalogQuality(vaccines, doctors, standards)

	if len(report.DuplicateVaccineIDs) != 1 || report.DuplicateVaccineIDs[0] != "bcg" {
		t.Errorf("Expected duplicate vaccine bcg, got %v", report.DuplicateVaccineIDs)
	}
	if report.VaccinesWithoutTargets != 1 {
		t.Errorf("Expected 1 vaccine without targets, got %d", report.VaccinesWithoutTargets)
	}
	if report.VaccinesWithoutTips != 1 {
		t.Errorf("Expected 1 vaccine without tips, got %d", report.VaccinesWithoutTips)
	}
	if len(report.DuplicateDoctorIDs) != 1 || report.DuplicateDoctorIDs[0] != "1" {
		t.Errorf("Expected duplicate doctor 1, got %v", report.DuplicateDoctorIDs)
	}
	if report.ShortReferenceSeries != 1 {
		t.Errorf("Expected 1 short reference series, got %d", report.ShortReferenceSeries)
	}
}
