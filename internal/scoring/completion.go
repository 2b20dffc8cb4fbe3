package scoring

import "math"

// Band is the cosmetic tri-level rating shown on dashboards.
type Band string

const (
	BandSuccess Band = "success"
	BandWarning Band = "warning"
	BandDanger  Band = "danger"
)

// Outcome is the enumerated result of a security control check.
// "YES" is the only canonical affirmative token, stored and compared as is.
type Outcome string

const (
	OutcomeYes           Outcome = "YES"
	OutcomeNo            Outcome = "NO"
	OutcomeInProgress    Outcome = "IN_PROGRESS"
	OutcomeNotApplicable Outcome = "NOT_APPLICABLE"
)

// ValidOutcome reports whether s is one of the four control outcomes.
func ValidOutcome(s string) bool {
	switch Outcome(s) {
	case OutcomeYes, OutcomeNo, OutcomeInProgress, OutcomeNotApplicable:
		return true
	}
	return false
}

// CompletionRate returns the percentage of affirmative outcomes over
// applicable outcomes, rounded to one decimal. NOT_APPLICABLE answers are
// excluded from the denominator; an empty denominator yields 0.0.
func CompletionRate(outcomes []Outcome) float64 {
	applicable := 0
	positive := 0
	for _, o := range outcomes {
		if o == OutcomeNotApplicable {
			continue
		}
		applicable++
		if o == OutcomeYes {
			positive++
		}
	}
	if applicable == 0 {
		return 0.0
	}
	return Round1(float64(positive) / float64(applicable) * 100)
}

// CompletionRateBool is the boolean-answer variant used by audit sessions,
// where every recorded answer is applicable.
func CompletionRateBool(answers []bool) float64 {
	if len(answers) == 0 {
		return 0.0
	}
	positive := 0
	for _, a := range answers {
		if a {
			positive++
		}
	}
	return Round1(float64(positive) / float64(len(answers)) * 100)
}

// RateBand maps a percentage to its dashboard color band.
func RateBand(p float64) Band {
	switch {
	case p >= 80:
		return BandSuccess
	case p >= 50:
		return BandWarning
	default:
		return BandDanger
	}
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
