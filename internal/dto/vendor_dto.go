package dto

import "github.com/hubcompliance/compliance-hub/internal/model"

// VendorPortalDTO is the questionnaire view served to the vendor behind a
// portal token. Weights stay server side.
type VendorPortalDTO struct {
	VendorName string              `json:"vendor_name"`
	Status     string              `json:"status"`
	Questions  []PortalQuestionDTO `json:"questions"`
}

type PortalQuestionDTO struct {
	ID       uint    `json:"id"`
	Section  string  `json:"section"`
	Code     string  `json:"code"`
	Topic    string  `json:"topic"`
	Text     string  `json:"text"`
	Value    float64 `json:"value"`
	Note     string  `json:"note"`
	Answered bool    `json:"answered"`
}

func NewVendorPortalView(vendor *model.Vendor, questions []model.VendorQuestion, answers map[uint]model.VendorAnswer) VendorPortalDTO {
	view := VendorPortalDTO{
		VendorName: vendor.BusinessName,
		Status:     vendor.Status,
	}
	for _, q := range questions {
		dto := PortalQuestionDTO{
			ID:      q.ID,
			Section: q.Section,
			Code:    q.Code,
			Topic:   q.Topic,
			Text:    q.Text,
		}
		if a, ok := answers[q.ID]; ok {
			dto.Value = a.Value
			dto.Note = a.Note
			dto.Answered = true
		}
		view.Questions = append(view.Questions, dto)
	}
	return view
}
