package dto

import "github.com/hubcompliance/compliance-hub/internal/model"

// ChecklistViewDTO is the risk checklist of one treatment together with
// the answers recorded so far and the current rating.
type ChecklistViewDTO struct {
	TreatmentID  string                 `json:"treatment_id"`
	RiskScore    int                    `json:"risk_score"`
	RiskLevel    string                 `json:"risk_level"`
	DPIARequired bool                   `json:"dpia_required"`
	Questions    []ChecklistQuestionDTO `json:"questions"`
}

type ChecklistQuestionDTO struct {
	ID       uint   `json:"id"`
	Text     string `json:"text"`
	Answer   bool   `json:"answer"`
	Answered bool   `json:"answered"`
}

func NewChecklistView(treatment *model.Treatment, questions []model.ChecklistQuestion, answers map[uint]bool) ChecklistViewDTO {
	view := ChecklistViewDTO{
		TreatmentID:  treatment.ID.String(),
		RiskScore:    treatment.RiskScore,
		RiskLevel:    treatment.RiskLevel,
		DPIARequired: treatment.DPIARequired,
	}
	for _, q := range questions {
		answer, answered := answers[q.ID]
		view.Questions = append(view.Questions, ChecklistQuestionDTO{
			ID:       q.ID,
			Text:     q.Text,
			Answer:   answer,
			Answered: answered,
		})
	}
	return view
}
