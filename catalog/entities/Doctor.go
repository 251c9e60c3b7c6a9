package entities

// Doctor is one entry of the static pediatrician directory.
type Doctor struct {
	ID                   string   `json:"id"`
	FullName             string   `json:"fullName"`
	PrimarySpecialty     string   `json:"primarySpecialty"`
	SubSpecialties       []string `json:"subSpecialties"`
	Qualifications       []string `json:"qualifications"`
	YearsOfExperience    int      `json:"yearsOfExperience"`
	Biography            string   `json:"biography"`
	LanguagesSpoken      []string `json:"languagesSpoken"`
	OverallRating        float64  `json:"overallRating"`
	TotalReviews         int      `json:"totalReviews"`
	ConsultationFeeStart int      `json:"consultationFeeStart"`
	AvailableServices    []string `json:"availableServices"` // clinic, home, video
	SearchNormalized     string   `json:"-"`                 // Pre-computed: lowercased, diacritics stripped
}
