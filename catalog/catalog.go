// Package catalog assembles the embedded reference data (vaccine schedule,
// WHO growth standards, pediatrician directory) into validated, immutable
// lookup structures. It replaces any external data source: everything is
// compiled in and loaded once at startup, then swapped atomically into the
// data container.
package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/nourcare/childcare-api/catalog/entities"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// searchFolding strips combining marks, so Arabic harakat and Latin
// accents don't affect search matching.
var searchFolding = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeSearch lowercases a term and strips diacritics for matching
// against the pre-computed normalized catalog fields.
func NormalizeSearch(s string) string {
	folded, _, err := transform.String(searchFolding, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// Loader builds the reference catalogs from the embedded tables.
type Loader struct{}

// NewLoader creates a catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadVaccines returns the vaccine schedule as an ordered slice plus an
// id-keyed map for O(1) lookups.
func (l *Loader) LoadVaccines() ([]entities.Vaccine, map[string]entities.Vaccine, error) {
	vaccines := make([]entities.Vaccine, len(vaccineSchedule))
	copy(vaccines, vaccineSchedule)

	vaccinesMap := make(map[string]entities.Vaccine, len(vaccines))

	for _, vaccine := range vaccines {
		if vaccine.ID == "" {
			return nil, nil, fmt.Errorf("vaccine with empty id in catalog")
		}
		if vaccine.RecommendedAgeMonths < 0 {
			return nil, nil, fmt.Errorf("vaccine %s: negative recommended age", vaccine.ID)
		}
		if vaccine.NameEn == "" && vaccine.NameAr == "" {
			return nil, nil, fmt.Errorf("vaccine %s: no display name", vaccine.ID)
		}
		if _, exists := vaccinesMap[vaccine.ID]; exists {
			return nil, nil, fmt.Errorf("duplicate vaccine id %s in catalog", vaccine.ID)
		}
		vaccinesMap[vaccine.ID] = vaccine
	}

	return vaccines, vaccinesMap, nil
}

// LoadDoctors returns the pediatrician directory with pre-computed search
// fields plus an id-keyed map.
func (l *Loader) LoadDoctors() ([]entities.Doctor, map[string]entities.Doctor, error) {
	doctors := make([]entities.Doctor, len(pediatricianDirectory))
	copy(doctors, pediatricianDirectory)

	doctorsMap := make(map[string]entities.Doctor, len(doctors))

	for i := range doctors {
		if doctors[i].ID == "" || doctors[i].FullName == "" {
			return nil, nil, fmt.Errorf("doctor entry %d: missing id or name", i)
		}
		if _, exists := doctorsMap[doctors[i].ID]; exists {
			return nil, nil, fmt.Errorf("duplicate doctor id %s in directory", doctors[i].ID)
		}

		doctors[i].SearchNormalized = NormalizeSearch(doctors[i].FullName + " " + doctors[i].PrimarySpecialty)
		doctorsMap[doctors[i].ID] = doctors[i]
	}

	return doctors, doctorsMap, nil
}

// LoadGrowthStandards returns the WHO reference tables keyed by sex, after
// verifying every series is coherent.
func (l *Loader) LoadGrowthStandards() (entities.GrowthStandards, error) {
	standards := entities.GrowthStandards{
		WeightForAge: map[string][]entities.WHOPercentile{
			entities.SexMale:   weightForAgeBoys,
			entities.SexFemale: weightForAgeGirls,
		},
		HeightForAge: map[string][]entities.WHOPercentile{
			entities.SexMale:   heightForAgeBoys,
			entities.SexFemale: heightForAgeGirls,
		},
		HeadCircumferenceForAge: map[string][]entities.WHOPercentile{
			entities.SexMale:   headCircumferenceForAgeBoys,
			entities.SexFemale: headCircumferenceForAgeGirls,
		},
	}

	for name, bySex := range map[string]map[string][]entities.WHOPercentile{
		"weightForAge":            standards.WeightForAge,
		"heightForAge":            standards.HeightForAge,
		"headCircumferenceForAge": standards.HeadCircumferenceForAge,
	} {
		for sex, series := range bySex {
			if err := validateSeries(series); err != nil {
				return entities.GrowthStandards{}, fmt.Errorf("%s/%s: %w", name, sex, err)
			}
		}
	}

	return standards, nil
}

// validateSeries checks that ages strictly increase and the percentile
// columns strictly increase within each row.
func validateSeries(series []entities.WHOPercentile) error {
	if len(series) == 0 {
		return fmt.Errorf("empty reference series")
	}

	for i, row := range series {
		if i > 0 && row.AgeMonths <= series[i-1].AgeMonths {
			return fmt.Errorf("ages not strictly increasing at index %d", i)
		}
		if !(row.P3 < row.P15 && row.P15 < row.P50 && row.P50 < row.P85 && row.P85 < row.P97) {
			return fmt.Errorf("percentiles not strictly increasing at age %d", row.AgeMonths)
		}
	}

	return nil
}
