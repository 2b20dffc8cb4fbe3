package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNewChecklistViewKeepsQuestionOrder(t *testing.T) {
	treatment := &model.Treatment{
		ID:           uuid.New(),
		RiskScore:    17,
		RiskLevel:    "HIGH",
		DPIARequired: true,
	}
	questions := []model.ChecklistQuestion{
		{ID: 1, Text: "Large scale processing"},
		{ID: 2, Text: "Special categories of data"},
		{ID: 3, Text: "Systematic monitoring"},
	}
	answers := map[uint]bool{1: true, 3: false}

	view := NewChecklistView(treatment, questions, answers)

	assert.Equal(t, treatment.ID.String(), view.TreatmentID)
	assert.Equal(t, 17, view.RiskScore)
	assert.True(t, view.DPIARequired)
	assert.Len(t, view.Questions, 3)

	assert.True(t, view.Questions[0].Answered)
	assert.True(t, view.Questions[0].Answer)
	assert.False(t, view.Questions[1].Answered)
	assert.True(t, view.Questions[2].Answered)
	assert.False(t, view.Questions[2].Answer)
}

func TestNewVendorPortalViewHidesWeights(t *testing.T) {
	vendor := &model.Vendor{
		BusinessName: "Acme Srl",
		Status:       model.VendorStatusInvited,
	}
	questions := []model.VendorQuestion{
		{ID: 1, Section: "A", Code: "A.1", Topic: "Policy", Text: "Is a security policy in place?", TopicWeight: 3, QuestionWeight: 2},
		{ID: 2, Section: "A", Code: "A.2", Topic: "Policy", Text: "Is the policy reviewed yearly?", TopicWeight: 3, QuestionWeight: 1},
	}
	answers := map[uint]model.VendorAnswer{
		1: {QuestionID: 1, Value: 0.5, Note: "draft only"},
	}

	view := NewVendorPortalView(vendor, questions, answers)

	assert.Equal(t, "Acme Srl", view.VendorName)
	assert.Equal(t, model.VendorStatusInvited, view.Status)
	assert.Len(t, view.Questions, 2)

	assert.True(t, view.Questions[0].Answered)
	assert.Equal(t, 0.5, view.Questions[0].Value)
	assert.Equal(t, "draft only", view.Questions[0].Note)
	assert.False(t, view.Questions[1].Answered)
	assert.Zero(t, view.Questions[1].Value)
}
