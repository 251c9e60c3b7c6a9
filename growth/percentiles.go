// Package growth maps child measurements onto the WHO growth standards:
// age bucketing, chart series alignment and percentile band classification.
package growth

import (
	"math"
	"time"

	"github.com/nourcare/childcare-api/catalog/entities"
)

// averageMonthDays is the mean Gregorian month length. Age bucketing uses
// this approximation on purpose, so computed ages line up with the
// reference table's month buckets rather than calendar-exact months.
const averageMonthDays = 30.44

// Percentile band labels, ascending
const (
	BandBelow3  = "<3%"
	Band3To15   = "3-15%"
	Band15To50  = "15-50%"
	Band50To85  = "50-85%"
	Band85To97  = "85-97%"
	BandAbove97 = ">97%"
)

// ChartPoint is one aligned point of a growth chart: the five reference
// percentile values at a reference age, plus the child's own value when a
// measurement falls within one month of that age.
type ChartPoint struct {
	AgeMonths  int      `json:"age"`
	P3         float64  `json:"p3"`
	P15        float64  `json:"p15"`
	P50        float64  `json:"p50"`
	P85        float64  `json:"p85"`
	P97        float64  `json:"p97"`
	ChildValue *float64 `json:"child"` // nil when no measurement matches
}

// AgeInMonths converts the span between birth and the as-of date into
// whole months using the average month length, floored. Same-day is 0.
func AgeInMonths(birthDate, asOf time.Time) int {
	days := asOf.Sub(birthDate).Hours() / 24
	return int(math.Floor(days / averageMonthDays))
}

// StandardsFor selects the WHO reference series for a chart type and sex.
// The second return is false for an unknown combination.
func StandardsFor(standards entities.GrowthStandards, chartType, sex string) ([]entities.WHOPercentile, bool) {
	var bySex map[string][]entities.WHOPercentile

	switch chartType {
	case entities.ChartWeight:
		bySex = standards.WeightForAge
	case entities.ChartHeight:
		bySex = standards.HeightForAge
	case entities.ChartHeadCircumference:
		bySex = standards.HeadCircumferenceForAge
	default:
		return nil, false
	}

	series, ok := bySex[sex]
	return series, ok
}

// BuildChartSeries aligns a child's measurements against a reference
// series. For each reference age point, the first measurement whose
// computed age is within one month is attached; rows with no nearby
// measurement keep a nil child value. An empty measurement list yields
// reference-only points, which is not an error.
func BuildChartSeries(series []entities.WHOPercentile, records []entities.GrowthRecord,
	birthDate time.Time, chartType string) []ChartPoint {

	points := make([]ChartPoint, 0, len(series))

	for _, row := range series {
		point := ChartPoint{
			AgeMonths: row.AgeMonths,
			P3:        row.P3,
			P15:       row.P15,
			P50:       row.P50,
			P85:       row.P85,
			P97:       row.P97,
		}

		for _, record := range records {
			recordAge := AgeInMonths(birthDate, record.Date)
			if abs(recordAge-row.AgeMonths) <= 1 {
				value := record.ValueFor(chartType)
				point.ChildValue = &value
				break
			}
		}

		points = append(points, point)
	}

	return points
}

// PercentileBand classifies a value against the reference row with the
// closest age. Band upper bounds are inclusive: a value exactly at p50
// falls in the 15-50% band. An empty series returns "".
func PercentileBand(value float64, ageMonths int, series []entities.WHOPercentile) string {
	if len(series) == 0 {
		return ""
	}

	closest := series[0]
	for _, row := range series[1:] {
		if abs(row.AgeMonths-ageMonths) < abs(closest.AgeMonths-ageMonths) {
			closest = row
		}
	}

	switch {
	case value <= closest.P3:
		return BandBelow3
	case value <= closest.P15:
		return Band3To15
	case value <= closest.P50:
		return Band15To50
	case value <= closest.P85:
		return Band50To85
	case value <= closest.P97:
		return Band85To97
	default:
		return BandAbove97
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
