package scoring

// RiskTier classifies the cumulative risk score of a treatment.
type RiskTier string

const (
	RiskLow    RiskTier = "LOW"
	RiskMedium RiskTier = "MEDIUM"
	RiskHigh   RiskTier = "HIGH"
)

// RiskQuestion is one yes/no question of the treatment risk checklist.
// Weight is the integer risk score the question contributes when answered yes.
type RiskQuestion struct {
	ID     uint
	Text   string
	Weight int
	Order  int
}

type RiskResult struct {
	Score        int
	Tier         RiskTier
	DPIARequired bool
}

// ScoreRisk sums the weight of every question answered true ("risk factor
// present") and classifies the total. Questions without an answer count as no.
func ScoreRisk(questions []RiskQuestion, answers map[uint]bool) RiskResult {
	score := 0
	for _, q := range questions {
		if answers[q.ID] {
			score += q.Weight
		}
	}

	result := RiskResult{Score: score}
	switch {
	case score == 0:
		result.Tier = RiskLow
	case score < 15:
		result.Tier = RiskMedium
	default:
		result.Tier = RiskHigh
		result.DPIARequired = true
	}
	return result
}
