package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreVendor_UnansweredCountsFullMaximum(t *testing.T) {
	questions := []VendorQuestion{
		{ID: 1, Area: AreaManagement, TopicWeight: 2, QuestionWeight: 3},
	}

	results := ScoreVendor(questions, map[uint]float64{})

	// One unanswered question: numerator 0, denominator 6.
	assert.Equal(t, 0.0, results[AreaOverall])
	assert.Equal(t, 0.0, results[AreaManagement])
}

func TestScoreVendor_PartialCredit(t *testing.T) {
	questions := []VendorQuestion{
		{ID: 1, Area: AreaIT, TopicWeight: 1, QuestionWeight: 1},
		{ID: 2, Area: AreaIT, TopicWeight: 1, QuestionWeight: 1},
	}
	answers := map[uint]float64{1: AnswerYes, 2: AnswerPartial}

	results := ScoreVendor(questions, answers)

	assert.Equal(t, 75.0, results[AreaOverall])
	assert.Equal(t, 75.0, results[AreaIT])
}

func TestScoreVendor_PerAreaBreakdown(t *testing.T) {
	questions := []VendorQuestion{
		{ID: 1, Area: AreaManagement, TopicWeight: 1, QuestionWeight: 2},
		{ID: 2, Area: AreaIT, TopicWeight: 1, QuestionWeight: 1},
		{ID: 3, Area: AreaPhysical, TopicWeight: 2, QuestionWeight: 1},
	}
	answers := map[uint]float64{
		1: AnswerYes,     // 2 of 2
		2: AnswerNo,      // 0 of 1
		3: AnswerPartial, // 1 of 2
	}

	results := ScoreVendor(questions, answers)

	assert.Equal(t, 100.0, results[AreaManagement])
	assert.Equal(t, 0.0, results[AreaIT])
	assert.Equal(t, 50.0, results[AreaPhysical])
	assert.Equal(t, 60.0, results[AreaOverall]) // 3 of 5
}

func TestScoreVendor_EmptyBankScoresZero(t *testing.T) {
	results := ScoreVendor(nil, nil)

	assert.Equal(t, 0.0, results[AreaOverall])
	assert.Equal(t, 0.0, results[AreaManagement])
	assert.Equal(t, 0.0, results[AreaIT])
	assert.Equal(t, 0.0, results[AreaPhysical])
}

func TestScoreVendor_WeightedRounding(t *testing.T) {
	questions := []VendorQuestion{
		{ID: 1, Area: AreaManagement, TopicWeight: 1, QuestionWeight: 1},
		{ID: 2, Area: AreaManagement, TopicWeight: 1, QuestionWeight: 1},
		{ID: 3, Area: AreaManagement, TopicWeight: 1, QuestionWeight: 1},
	}
	answers := map[uint]float64{1: AnswerYes}

	results := ScoreVendor(questions, answers)

	// 1/3 -> 33.333... rounded to two decimals.
	assert.Equal(t, 33.33, results[AreaManagement])
}

func TestScoreVendor_Idempotent(t *testing.T) {
	questions := []VendorQuestion{
		{ID: 1, Area: AreaManagement, TopicWeight: 1.5, QuestionWeight: 2},
		{ID: 2, Area: AreaPhysical, TopicWeight: 1, QuestionWeight: 3},
	}
	answers := map[uint]float64{1: AnswerPartial, 2: AnswerYes}

	first := ScoreVendor(questions, answers)
	second := ScoreVendor(questions, answers)

	assert.Equal(t, first, second)
}

func TestBuildRecommendations_LowManagementArea(t *testing.T) {
	results := map[Area]float64{
		AreaManagement: 59,
		AreaIT:         90,
		AreaPhysical:   90,
		AreaOverall:    85,
	}

	recs := BuildRecommendations(results)

	// Four fixed management records plus the single overall record.
	require.Len(t, recs, 5)
	for _, r := range recs[:4] {
		assert.Equal(t, "Gestione Sicurezza", r.Area)
	}
	assert.Equal(t, "Governance e policy", recs[0].Title)
	assert.Equal(t, "Gestione terze parti", recs[1].Title)
	assert.Equal(t, "Risk assessment", recs[2].Title)
	assert.Equal(t, "Formazione e awareness", recs[3].Title)
	assert.Equal(t, "Generale", recs[4].Area)
}

func TestBuildRecommendations_OverallBands(t *testing.T) {
	base := map[Area]float64{
		AreaManagement: 90,
		AreaIT:         90,
		AreaPhysical:   90,
	}

	tests := []struct {
		overall float64
		title   string
	}{
		{59.99, "Piano di miglioramento"},
		{60, "Rafforzamento controlli"},
		{84.99, "Rafforzamento controlli"},
		{85, "Monitoraggio continuo"},
		{100, "Monitoraggio continuo"},
	}

	for _, tt := range tests {
		results := map[Area]float64{
			AreaManagement: base[AreaManagement],
			AreaIT:         base[AreaIT],
			AreaPhysical:   base[AreaPhysical],
			AreaOverall:    tt.overall,
		}
		recs := BuildRecommendations(results)

		require.Len(t, recs, 1, "overall %.2f", tt.overall)
		assert.Equal(t, tt.title, recs[0].Title)
	}
}

func TestBuildRecommendations_StableOrder(t *testing.T) {
	results := map[Area]float64{
		AreaManagement: 10,
		AreaIT:         10,
		AreaPhysical:   10,
		AreaOverall:    10,
	}

	first := BuildRecommendations(results)
	second := BuildRecommendations(results)

	require.Len(t, first, 13)
	assert.Equal(t, first, second)
	assert.Equal(t, "Gestione Sicurezza", first[0].Area)
	assert.Equal(t, "Sicurezza IT", first[4].Area)
	assert.Equal(t, "Sicurezza Fisica", first[8].Area)
	assert.Equal(t, "Generale", first[12].Area)
}
