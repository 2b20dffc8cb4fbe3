package scoring

// Area is a macro-area of the vendor security questionnaire.
type Area string

const (
	AreaManagement Area = "GESTIONE"
	AreaIT         Area = "IT"
	AreaPhysical   Area = "FISICA"
	AreaOverall    Area = "GENERALE"
)

// Vendor answer values. Anything else submitted by the portal is rejected
// before it reaches the scorer.
const (
	AnswerNo      = 0.0
	AnswerPartial = 0.5
	AnswerYes     = 1.0
)

// VendorQuestion carries the two independent weight multipliers of a
// questionnaire question. The weighted maximum of a question is
// 1.0 * QuestionWeight * TopicWeight.
type VendorQuestion struct {
	ID             uint
	Area           Area
	TopicWeight    float64
	QuestionWeight float64
}

// ScoreVendor computes the weighted percentage per macro-area plus the
// GENERALE total, each rounded to two decimals. Unanswered questions
// contribute zero to the numerator but their full weighted maximum to the
// denominator; a scope with zero maximum scores 0.
func ScoreVendor(questions []VendorQuestion, answers map[uint]float64) map[Area]float64 {
	type tally struct{ got, max float64 }
	stats := map[Area]*tally{
		AreaOverall:    {},
		AreaManagement: {},
		AreaIT:         {},
		AreaPhysical:   {},
	}

	for _, q := range questions {
		max := 1.0 * q.QuestionWeight * q.TopicWeight
		got := 0.0
		if v, ok := answers[q.ID]; ok {
			got = v * q.QuestionWeight * q.TopicWeight
		}

		stats[AreaOverall].got += got
		stats[AreaOverall].max += max
		if t, ok := stats[q.Area]; ok {
			t.got += got
			t.max += max
		}
	}

	results := make(map[Area]float64, len(stats))
	for area, t := range stats {
		if t.max > 0 {
			results[area] = Round2(t.got / t.max * 100)
		} else {
			results[area] = 0
		}
	}
	return results
}
