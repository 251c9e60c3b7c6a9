// Package triage evaluates a fixed decision tree over sequential symptom
// answers and resolves them into one of three recommendation outcomes.
package triage

// Question ids, in asking order
const (
	QuestionPrimarySymptom = "primary_symptom"
	QuestionAge            = "age"
	QuestionFeverLevel     = "fever_level"
	QuestionOtherSymptoms  = "other_symptoms"
)

// Answer values referenced by the outcome rules
const (
	AnswerFever       = "fever"
	AnswerUnder3m     = "under_3m"
	AnswerOver1y      = "over_1y"
	AnswerHigh        = "high"
	AnswerModerate    = "moderate"
	AnswerConvulsions = "convulsions"
	AnswerBreathing   = "breathing"
	AnswerNone        = "none"
)

// Urgency tiers, most severe first
const (
	UrgencyUrgent   = "urgent"
	UrgencyStandard = "standard"
	UrgencyHome     = "home"
)

// Option is one selectable answer for a question.
type Option struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Value string `json:"value"`
}

// Question is one step of the triage conversation.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Outcome is the static recommendation produced for an answer set.
type Outcome struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Urgency     string   `json:"urgency"`
	Actions     []string `json:"actions"`
}

// questions is the fixed, ordered decision tree.
var questions = []Question{
	{
		ID:   QuestionPrimarySymptom,
		Text: "ما هو العرض الأساسي لطفلك؟",
		Options: []Option{
			{ID: "fever", Text: "حرارة", Value: AnswerFever},
			{ID: "cough", Text: "كحة", Value: "cough"},
			{ID: "rash", Text: "طفح جلدي", Value: "rash"},
		},
	},
	{
		ID:   QuestionAge,
		Text: "كم عمر الطفل؟",
		Options: []Option{
			{ID: "under_3m", Text: "أقل من 3 أشهر", Value: AnswerUnder3m},
			{ID: "3_12m", Text: "3 - 12 شهرًا", Value: "3_12m"},
			{ID: "over_1y", Text: "أكبر من سنة", Value: AnswerOver1y},
		},
	},
	{
		ID:   QuestionFeverLevel,
		Text: "ما مستوى الحرارة؟",
		Options: []Option{
			{ID: "moderate", Text: "متوسطة (38-39°)", Value: AnswerModerate},
			{ID: "high", Text: "عالية (أكثر من 39°)", Value: AnswerHigh},
		},
	},
	{
		ID:   QuestionOtherSymptoms,
		Text: "هل يوجد أعراض أخرى خطيرة؟",
		Options: []Option{
			{ID: "breathing", Text: "صعوبة في التنفس", Value: AnswerBreathing},
			{ID: "convulsions", Text: "تشنجات", Value: AnswerConvulsions},
			{ID: "none", Text: "لا يوجد", Value: AnswerNone},
		},
	},
}

// Questions returns the full ordered question list.
func Questions() []Question {
	return questions
}

// QuestionCount returns the number of questions in the tree.
func QuestionCount() int {
	return len(questions)
}

// NextQuestion returns the question to ask after the one at currentIndex,
// given the answers collected so far. The fever-severity question is
// skipped when the primary symptom is not fever. The second return is
// false once the tree is exhausted (terminal state).
func NextQuestion(currentIndex int, answers map[string]string) (Question, bool) {
	next := currentIndex + 1
	if next < 0 {
		next = 0
	}

	if next < len(questions) && questions[next].ID == QuestionFeverLevel &&
		answers[QuestionPrimarySymptom] != AnswerFever {
		next++
	}

	if next >= len(questions) {
		return Question{}, false
	}

	return questions[next], true
}

// ResolveOutcome maps an accumulated answer set to an outcome, checking
// the rules in priority order. Missing keys simply never match, so an
// incomplete answer set falls through to the standard-visit default.
func ResolveOutcome(answers map[string]string) Outcome {
	age := answers[QuestionAge]
	feverLevel := answers[QuestionFeverLevel]
	otherSymptoms := answers[QuestionOtherSymptoms]

	if (age == AnswerUnder3m && feverLevel == AnswerHigh) ||
		otherSymptoms == AnswerConvulsions ||
		otherSymptoms == AnswerBreathing {
		return Outcome{
			Title:       "يتطلب رعاية طبية عاجلة",
			Description: "الأعراض المذكورة تتطلب تقييماً طبياً فورياً",
			Urgency:     UrgencyUrgent,
			Actions: []string{
				"اتصل بطبيب الأطفال فوراً",
				"توجه إلى أقرب مستشفى إذا لزم الأمر",
				"لا تتأخر في طلب المساعدة الطبية",
			},
		}
	}

	if age == AnswerOver1y && feverLevel == AnswerModerate && otherSymptoms == AnswerNone {
		return Outcome{
			Title:       "قد تكون نزلة برد شائعة",
			Description: "يمكن متابعة العلاج في المنزل مع المراقبة",
			Urgency:     UrgencyHome,
			Actions: []string{
				"الراحة والإكثار من السوائل",
				"مراقبة درجة الحرارة بانتظام",
				"استخدام كمادات ماء فاتر",
				"إعطاء خافض حرارة مناسب للعمر عند الحاجة",
			},
		}
	}

	return Outcome{
		Title:       "يُنصح بزيارة طبيب الأطفال",
		Description: "الأعراض تتطلب تقييماً طبياً للحصول على العلاج المناسب",
		Urgency:     UrgencyStandard,
		Actions: []string{
			"احجز موعداً مع طبيب الأطفال",
			"راقب الأعراض وسجل أي تغييرات",
			"اتبع تعليمات الطبيب بدقة",
			"لا تتردد في العودة إذا ساءت الأعراض",
		},
	}
}
