package entities

import "time"

// WHOPercentile holds the five reference percentile values for one
// age-in-months point of a WHO growth standard series.
type WHOPercentile struct {
	AgeMonths int     `json:"age"`
	P3        float64 `json:"p3"`
	P15       float64 `json:"p15"`
	P50       float64 `json:"p50"`
	P85       float64 `json:"p85"`
	P97       float64 `json:"p97"`
}

// GrowthStandards groups the WHO reference series by measurement type and sex.
type GrowthStandards struct {
	WeightForAge            map[string][]WHOPercentile `json:"weightForAge"`
	HeightForAge            map[string][]WHOPercentile `json:"heightForAge"`
	HeadCircumferenceForAge map[string][]WHOPercentile `json:"headCircumferenceForAge"`
}

// Chart types accepted by the growth endpoints
const (
	ChartWeight            = "weight"
	ChartHeight            = "height"
	ChartHeadCircumference = "headCircumference"
)

// Sex keys used by the standards maps
const (
	SexMale   = "male"
	SexFemale = "female"
)

// GrowthRecord is one caregiver-recorded measurement for a child.
// Measurements are append-only; the list is kept sorted ascending by date.
type GrowthRecord struct {
	ID                string    `json:"id"`
	ChildID           string    `json:"childId"`
	Date              time.Time `json:"date"`
	WeightKg          float64   `json:"weight"`
	HeightCm          float64   `json:"height"`
	HeadCircumference float64   `json:"headCircumference"`
}

// ValueFor returns the measurement value for the requested chart type.
func (r GrowthRecord) ValueFor(chartType string) float64 {
	switch chartType {
	case ChartWeight:
		return r.WeightKg
	case ChartHeight:
		return r.HeightCm
	case ChartHeadCircumference:
		return r.HeadCircumference
	default:
		return 0
	}
}
