package catalog

import "github.com/nourcare/childcare-api/catalog/entities"

// pediatricianDirectory is the static doctor directory. SearchNormalized is
// filled in by the loader.
var pediatricianDirectory = []entities.Doctor{
	{
		ID:                   "1",
		FullName:             "د. أميرة محمد حسن",
		PrimarySpecialty:     "طب الأطفال العام",
		SubSpecialties:       []string{"حديثي الولادة", "تغذية الأطفال"},
		Qualifications:       []string{"دكتوراه طب الأطفال - جامعة القاهرة", "ماجستير حديثي الولادة"},
		YearsOfExperience:    12,
		Biography:            "طبيبة أطفال متخصصة مع خبرة واسعة في رعاية الأطفال حديثي الولادة والرضع. حاصلة على العديد من الشهادات المتخصصة.",
		LanguagesSpoken:      []string{"العربية", "الإنجليزية"},
		OverallRating:        4.8,
		TotalReviews:         156,
		ConsultationFeeStart: 300,
		AvailableServices:    []string{"clinic", "home", "video"},
	},
	{
		ID:                   "2",
		FullName:             "د. محمد أحمد الشناوي",
		PrimarySpecialty:     "حساسية ومناعة الأطفال",
		SubSpecialties:       []string{"الربو", "الحساسية الغذائية"},
		Qualifications:       []string{"دكتوراه المناعة والحساسية", "زمالة الكلية الملكية البريطانية"},
		YearsOfExperience:    8,
		Biography:            "متخصص في علاج حساسية الأطفال والربو مع خبرة في أحدث طرق العلاج المناعي.",
		LanguagesSpoken:      []string{"العربية", "الإنجليزية", "الفرنسية"},
		OverallRating:        4.9,
		TotalReviews:         89,
		ConsultationFeeStart: 350,
		AvailableServices:    []string{"clinic", "video"},
	},
	{
		ID:                   "3",
		FullName:             "د. سارة علي منصور",
		PrimarySpecialty:     "أسنان الأطفال",
		SubSpecialties:       []string{"تقويم الأسنان", "طب أسنان الأطفال الوقائي"},
		Qualifications:       []string{"دكتوراه طب أسنان الأطفال", "دبلوم تقويم الأسنان"},
		YearsOfExperience:    6,
		Biography:            "طبيبة أسنان متخصصة في علاج الأطفال مع التركيز على الوقاية والعلاج المبكر.",
		LanguagesSpoken:      []string{"العربية", "الإنجليزية"},
		OverallRating:        4.7,
		TotalReviews:         67,
		ConsultationFeeStart: 250,
		AvailableServices:    []string{"clinic"},
	},
}
