package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var riskQuestions = []RiskQuestion{
	{ID: 1, Text: "Large scale processing", Weight: 5},
	{ID: 2, Text: "Special categories of data", Weight: 7},
	{ID: 3, Text: "Systematic monitoring", Weight: 3},
	{ID: 4, Text: "Vulnerable data subjects", Weight: 2},
}

func TestScoreRisk_NoAnswers(t *testing.T) {
	result := ScoreRisk(riskQuestions, map[uint]bool{})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, RiskLow, result.Tier)
	assert.False(t, result.DPIARequired)
}

func TestScoreRisk_AllNegative(t *testing.T) {
	answers := map[uint]bool{1: false, 2: false, 3: false, 4: false}
	result := ScoreRisk(riskQuestions, answers)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, RiskLow, result.Tier)
}

func TestScoreRisk_SumsOnlyAffirmative(t *testing.T) {
	answers := map[uint]bool{1: true, 2: false, 3: true}
	result := ScoreRisk(riskQuestions, answers)

	assert.Equal(t, 8, result.Score)
	assert.Equal(t, RiskMedium, result.Tier)
	assert.False(t, result.DPIARequired)
}

func TestScoreRisk_TierBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		weight   int
		tier     RiskTier
		dpia     bool
	}{
		{"score 1 is medium", 1, RiskMedium, false},
		{"score 14 is medium", 14, RiskMedium, false},
		{"score 15 is high", 15, RiskHigh, true},
		{"score 40 is high", 40, RiskHigh, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := []RiskQuestion{{ID: 1, Weight: tt.weight}}
			result := ScoreRisk(questions, map[uint]bool{1: true})

			assert.Equal(t, tt.weight, result.Score)
			assert.Equal(t, tt.tier, result.Tier)
			assert.Equal(t, tt.dpia, result.DPIARequired)
		})
	}
}

func TestScoreRisk_IgnoresUnknownAnswerKeys(t *testing.T) {
	answers := map[uint]bool{99: true}
	result := ScoreRisk(riskQuestions, answers)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, RiskLow, result.Tier)
}

func TestScoreRisk_Idempotent(t *testing.T) {
	answers := map[uint]bool{1: true, 2: true, 3: true}

	first := ScoreRisk(riskQuestions, answers)
	second := ScoreRisk(riskQuestions, answers)

	assert.Equal(t, first, second)
	assert.Equal(t, 15, first.Score)
	assert.Equal(t, RiskHigh, first.Tier)
	assert.True(t, first.DPIARequired)
}
