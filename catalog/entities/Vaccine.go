package entities

// Vaccine is one entry of the national infant immunization schedule.
// The catalog is immutable reference data loaded once at startup.
type Vaccine struct {
	ID                   string   `json:"id"`
	NameAr               string   `json:"nameAr"`
	NameEn               string   `json:"nameEn"`
	Description          string   `json:"description"`
	ProtectsAgainst      []string `json:"protectsAgainst"`
	RecommendedAgeMonths int      `json:"recommendedAgeMonths"`
	SideEffects          []string `json:"sideEffects"`
	CareTips             []string `json:"careTips"`
	Category             string   `json:"category"` // birth, infant or toddler
}

// Valid vaccine categories, ordered by age
const (
	CategoryBirth   = "birth"
	CategoryInfant  = "infant"
	CategoryToddler = "toddler"
)
