package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletionRate_NoAnswers(t *testing.T) {
	assert.Equal(t, 0.0, CompletionRate(nil))
	assert.Equal(t, 0.0, CompletionRate([]Outcome{}))
}

func TestCompletionRate_AllNotApplicable(t *testing.T) {
	outcomes := []Outcome{OutcomeNotApplicable, OutcomeNotApplicable, OutcomeNotApplicable}

	// Zero applicable answers is a defined 0.0, not an error or NaN.
	assert.Equal(t, 0.0, CompletionRate(outcomes))
	assert.Equal(t, BandDanger, RateBand(CompletionRate(outcomes)))
}

func TestCompletionRate_ThreeOfFour(t *testing.T) {
	outcomes := []Outcome{OutcomeYes, OutcomeYes, OutcomeYes, OutcomeNo}

	assert.Equal(t, 75.0, CompletionRate(outcomes))
}

func TestCompletionRate_NotApplicableExcludedFromDenominator(t *testing.T) {
	outcomes := []Outcome{OutcomeYes, OutcomeNo, OutcomeNotApplicable, OutcomeNotApplicable}

	assert.Equal(t, 50.0, CompletionRate(outcomes))
}

func TestCompletionRate_InProgressCountsAsNotAffirmative(t *testing.T) {
	outcomes := []Outcome{OutcomeYes, OutcomeInProgress, OutcomeNo}

	assert.InDelta(t, 33.3, CompletionRate(outcomes), 0.001)
}

func TestCompletionRate_RoundsToOneDecimal(t *testing.T) {
	// 2/3 = 66.666... -> 66.7
	outcomes := []Outcome{OutcomeYes, OutcomeYes, OutcomeNo}

	assert.Equal(t, 66.7, CompletionRate(outcomes))
}

func TestCompletionRateBool(t *testing.T) {
	assert.Equal(t, 0.0, CompletionRateBool(nil))
	assert.Equal(t, 75.0, CompletionRateBool([]bool{true, true, true, false}))
	assert.Equal(t, 100.0, CompletionRateBool([]bool{true}))
}

func TestRateBand(t *testing.T) {
	tests := []struct {
		rate float64
		band Band
	}{
		{100, BandSuccess},
		{80, BandSuccess},
		{79.9, BandWarning},
		{50, BandWarning},
		{49.9, BandDanger},
		{0, BandDanger},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.band, RateBand(tt.rate), "rate %.1f", tt.rate)
	}
}

func TestValidOutcome(t *testing.T) {
	assert.True(t, ValidOutcome("YES"))
	assert.True(t, ValidOutcome("NOT_APPLICABLE"))
	assert.False(t, ValidOutcome("SÌ"))
	assert.False(t, ValidOutcome("yes"))
	assert.False(t, ValidOutcome(""))
}
