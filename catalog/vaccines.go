package catalog

import "github.com/nourcare/childcare-api/catalog/entities"

// vaccineSchedule is the national infant immunization schedule. Ages are
// whole months from birth; entries are ordered by recommended age.
var vaccineSchedule = []entities.Vaccine{
	// Birth vaccines (within 24 hours)
	{
		ID:                   "bcg",
		NameAr:               "تطعيم الدرن",
		NameEn:               "BCG",
		Description:          "يحمي من مرض السل الرئوي",
		ProtectsAgainst:      []string{"السل الرئوي", "التهاب السحايا السلي"},
		RecommendedAgeMonths: 0,
		SideEffects:          []string{"احمرار مكان الحقن", "تورم بسيط", "تكون ندبة صغيرة"},
		CareTips:             []string{"حافظي على نظافة مكان الحقن", "لا تضعي أي كريمات", "الندبة الصغيرة طبيعية"},
		Category:             entities.CategoryBirth,
	},
	{
		ID:                   "polio-0",
		NameAr:               "شلل الأطفال (الجرعة الصفرية)",
		NameEn:               "Polio (Birth Dose)",
		Description:          "الجرعة الأولى للحماية من شلل الأطفال",
		ProtectsAgainst:      []string{"شلل الأطفال"},
		RecommendedAgeMonths: 0,
		SideEffects:          []string{"حمى خفيفة", "هياج بسيط"},
		CareTips:             []string{"أعطي الطفل السوائل الكافية", "راقبي درجة الحرارة"},
		Category:             entities.CategoryBirth,
	},
	{
		ID:                   "hep-b-birth",
		NameAr:               "الالتهاب الكبدي \"ب\"",
		NameEn:               "Hepatitis B",
		Description:          "يحمي من التهاب الكبد الوبائي ب",
		ProtectsAgainst:      []string{"التهاب الكبد الوبائي ب"},
		RecommendedAgeMonths: 0,
		SideEffects:          []string{"ألم مكان الحقن", "حمى خفيفة"},
		CareTips:             []string{"كمادات باردة على مكان الحقن", "مسكن حسب إرشادات الطبيب"},
		Category:             entities.CategoryBirth,
	},

	// 2 months
	{
		ID:                   "pentavalent-1",
		NameAr:               "التطعيم الخماسي (الجرعة الأولى)",
		NameEn:               "Pentavalent (1st dose)",
		Description:          "يحمي من خمسة أمراض خطيرة",
		ProtectsAgainst:      []string{"الدفتريا", "السعال الديكي", "التيتانوس", "التهاب الكبد ب", "المستدمية النزلية"},
		RecommendedAgeMonths: 2,
		SideEffects:          []string{"حمى", "هياج", "فقدان شهية مؤقت", "تورم مكان الحقن"},
		CareTips:             []string{"خافض حرارة عند الحاجة", "كثري الرضاعة", "راحة تامة للطفل"},
		Category:             entities.CategoryInfant,
	},
	{
		ID:                   "polio-1",
		NameAr:               "شلل الأطفال (الجرعة الأولى)",
		NameEn:               "Polio (1st dose)",
		Description:          "الجرعة الثانية للحماية من شلل الأطفال",
		ProtectsAgainst:      []string{"شلل الأطفال"},
		RecommendedAgeMonths: 2,
		SideEffects:          []string{"حمى خفيفة", "هياج بسيط"},
		CareTips:             []string{"أعطي الطفل السوائل الكافية", "راقبي درجة الحرارة"},
		Category:             entities.CategoryInfant,
	},

	// 4 months
	{
		ID:                   "pentavalent-2",
		NameAr:               "التطعيم الخماسي (الجرعة الثانية)",
		NameEn:               "Pentavalent (2nd dose)",
		Description:          "الجرعة التنشيطية الأولى للتطعيم الخماسي",
		ProtectsAgainst:      []string{"الدفتريا", "السعال الديكي", "التيتانوس", "التهاب الكبد ب", "المستدمية النزلية"},
		RecommendedAgeMonths: 4,
		SideEffects:          []string{"حمى", "هياج", "تورم مكان الحقن"},
		CareTips:             []string{"خافض حرارة عند الحاجة", "كثري الرضاعة", "مراقبة مستمرة"},
		Category:             entities.CategoryInfant,
	},
	{
		ID:                   "polio-2",
		NameAr:               "شلل الأطفال (الجرعة الثانية)",
		NameEn:               "Polio (2nd dose)",
		Description:          "الجرعة الثالثة للحماية من شلل الأطفال",
		ProtectsAgainst:      []string{"شلل الأطفال"},
		RecommendedAgeMonths: 4,
		SideEffects:          []string{"حمى خفيفة"},
		CareTips:             []string{"سوائل كافية", "راحة"},
		Category:             entities.CategoryInfant,
	},
	{
		ID:                   "ipv-1",
		NameAr:               "شلل الأطفال بالحقن (سولك)",
		NameEn:               "IPV (Salk)",
		Description:          "تطعيم شلل الأطفال المعطل بالحقن",
		ProtectsAgainst:      []string{"شلل الأطفال"},
		RecommendedAgeMonths: 4,
		SideEffects:          []string{"ألم بسيط مكان الحقن"},
		CareTips:             []string{"كمادات باردة", "مراقبة مكان الحقن"},
		Category:             entities.CategoryInfant,
	},

	// 6 months
	{
		ID:                   "pentavalent-3",
		NameAr:               "التطعيم الخماسي (الجرعة الثالثة)",
		NameEn:               "Pentavalent (3rd dose)",
		Description:          "الجرعة الأخيرة من السلسلة الأولية للتطعيم الخماسي",
		ProtectsAgainst:      []string{"الدفتريا", "السعال الديكي", "التيتانوس", "التهاب الكبد ب", "المستدمية النزلية"},
		RecommendedAgeMonths: 6,
		SideEffects:          []string{"حمى", "هياج", "تورم مكان الحقن"},
		CareTips:             []string{"خافض حرارة عند الحاجة", "راحة تامة", "مراقبة مستمرة"},
		Category:             entities.CategoryInfant,
	},
	{
		ID:                   "polio-3",
		NameAr:               "شلل الأطفال (الجرعة الثالثة)",
		NameEn:               "Polio (3rd dose)",
		Description:          "الجرعة الرابعة للحماية من شلل الأطفال",
		ProtectsAgainst:      []string{"شلل الأطفال"},
		RecommendedAgeMonths: 6,
		SideEffects:          []string{"حمى خفيفة"},
		CareTips:             []string{"سوائل كافية", "راحة"},
		Category:             entities.CategoryInfant,
	},

	// 9 months
	{
		ID:                   "polio-4",
		NameAr:               "شلل الأطفال (الجرعة الرابعة)",
		NameEn:               "Polio (4th dose)",
		Description:          "الجرعة الخامسة للحماية من شلل الأطفال",
		ProtectsAgainst:      []string{"شلل الأطفال"},
		RecommendedAgeMonths: 9,
		SideEffects:          []string{"حمى خفيفة"},
		CareTips:             []string{"سوائل كافية", "راحة"},
		Category:             entities.CategoryInfant,
	},

	// 12 months
	{
		ID:                   "mmr-1",
		NameAr:               "تطعيم MMR (الجرعة الأولى)",
		NameEn:               "MMR (1st dose)",
		Description:          "يحمي من الحصبة والنكاف والحصبة الألمانية",
		ProtectsAgainst:      []string{"الحصبة", "النكاف", "الحصبة الألمانية"},
		RecommendedAgeMonths: 12,
		SideEffects:          []string{"حمى", "طفح جلدي خفيف", "تورم الغدد اللمفاوية"},
		CareTips:             []string{"خافض حرارة", "ملاحظة أي طفح جلدي", "تجنب الأسبرين"},
		Category:             entities.CategoryToddler,
	},
	{
		ID:                   "polio-5",
		NameAr:               "شلل الأطفال (الجرعة الخامسة)",
		NameEn:               "Polio (5th dose)",
		Description:          "الجرعة السادسة للحماية من شلل الأطفال",
		ProtectsAgainst:      []string{"شلل الأطفال"},
		RecommendedAgeMonths: 12,
		SideEffects:          []string{"حمى خفيفة"},
		CareTips:             []string{"سوائل كافية", "راحة"},
		Category:             entities.CategoryToddler,
	},

	// 18 months
	{
		ID:                   "dpt-booster",
		NameAr:               "الجرعة المنشطة DPT",
		NameEn:               "DPT Booster",
		Description:          "جرعة تنشيطية للدفتريا والسعال الديكي والتيتانوس",
		ProtectsAgainst:      []string{"الدفتريا", "السعال الديكي", "التيتانوس"},
		RecommendedAgeMonths: 18,
		SideEffects:          []string{"حمى", "ألم مكان الحقن", "هياج"},
		CareTips:             []string{"خافض حرارة عند الحاجة", "كمادات باردة", "راحة"},
		Category:             entities.CategoryToddler,
	},
	{
		ID:                   "mmr-booster",
		NameAr:               "الجرعة المنشطة MMR",
		NameEn:               "MMR Booster",
		Description:          "جرعة تنشيطية للحصبة والنكاف والحصبة الألمانية",
		ProtectsAgainst:      []string{"الحصبة", "النكاف", "الحصبة الألمانية"},
		RecommendedAgeMonths: 18,
		SideEffects:          []string{"حمى", "طفح جلدي خفيف"},
		CareTips:             []string{"خافض حرارة", "مراقبة الطفح الجلدي", "راحة تامة"},
		Category:             entities.CategoryToddler,
	},
	{
		ID:                   "polio-booster",
		NameAr:               "شلل الأطفال (جرعة منشطة)",
		NameEn:               "Polio Booster",
		Description:          "جرعة تنشيطية لشلل الأطفال",
		ProtectsAgainst:      []string{"شلل الأطفال"},
		RecommendedAgeMonths: 18,
		SideEffects:          []string{"حمى خفيفة"},
		CareTips:             []string{"سوائل كافية", "راحة"},
		Category:             entities.CategoryToddler,
	},
}
