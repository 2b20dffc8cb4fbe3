package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/config"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/repository"
	"github.com/hubcompliance/compliance-hub/internal/scoring"
	"github.com/hubcompliance/compliance-hub/internal/service"
	"github.com/hubcompliance/compliance-hub/internal/util"
)

type VendorUsecase struct {
	vendorRepo  *repository.VendorRepository
	companyRepo *repository.CompanyRepository
	email       service.EmailServiceInterface
}

func NewVendorUsecase(vendorRepo *repository.VendorRepository, companyRepo *repository.CompanyRepository, email service.EmailServiceInterface) *VendorUsecase {
	return &VendorUsecase{vendorRepo: vendorRepo, companyRepo: companyRepo, email: email}
}

// VendorReport is the scored questionnaire result with its remediation
// advice, keyed the way the consultant frontend expects.
type VendorReport struct {
	FinalScore      float64                  `json:"punteggio_finale"`
	AreaDetail      map[string]float64       `json:"dettaglio_aree"`
	Recommendations []scoring.Recommendation `json:"raccomandazioni"`
	Answered        int                      `json:"answered"`
	Total           int                      `json:"total"`
}

func (uc *VendorUsecase) Create(vendor *model.Vendor) error {
	vendor.AccessToken = uuid.New()
	vendor.Status = model.VendorStatusPending
	return uc.vendorRepo.Create(vendor)
}

func (uc *VendorUsecase) Get(companyID, id uuid.UUID) (*model.Vendor, error) {
	return uc.vendorRepo.FindByID(companyID, id)
}

func (uc *VendorUsecase) List(companyID uuid.UUID) ([]model.Vendor, error) {
	return uc.vendorRepo.GetByCompany(companyID)
}

// Invite mails the portal link to the vendor contact. The delivery result
// is returned so callers can surface provider failures.
func (uc *VendorUsecase) Invite(ctx context.Context, companyID, vendorID uuid.UUID) (*service.SendResult, error) {
	vendor, err := uc.vendorRepo.FindByID(companyID, vendorID)
	if err != nil {
		return nil, err
	}
	if vendor.ContactEmail == "" {
		return nil, ErrVendorNoEmail
	}
	company, err := uc.companyRepo.FindByID(companyID)
	if err != nil {
		return nil, err
	}

	portalURL := fmt.Sprintf("%s/vendor-portal/%s", config.LoadAppConfig().BaseURL, vendor.AccessToken)
	result, err := uc.email.SendVendorInvite(ctx, service.VendorInviteParams{
		VendorName:  vendor.BusinessName,
		VendorEmail: vendor.ContactEmail,
		CompanyName: company.Name,
		PortalURL:   portalURL,
	})
	if err != nil {
		return result, err
	}

	vendor.Status = model.VendorStatusInvited
	if err := uc.vendorRepo.Update(vendor); err != nil {
		return result, err
	}
	return result, nil
}

// ResolveToken loads the vendor behind a portal token together with the
// question bank and the answers recorded so far.
func (uc *VendorUsecase) ResolveToken(token uuid.UUID) (*model.Vendor, []model.VendorQuestion, map[uint]model.VendorAnswer, error) {
	vendor, err := uc.vendorRepo.FindByToken(token)
	if err != nil {
		return nil, nil, nil, err
	}
	questions, err := uc.vendorRepo.GetQuestions()
	if err != nil {
		return nil, nil, nil, err
	}
	answers, err := uc.vendorRepo.GetAnswers(vendor.ID)
	if err != nil {
		return nil, nil, nil, err
	}

	current := make(map[uint]model.VendorAnswer, len(answers))
	for _, a := range answers {
		current[a.QuestionID] = a
	}
	return vendor, questions, current, nil
}

// SubmitPortal stores the questionnaire values coming from the vendor
// portal. Values other than 0, 0.5 and 1 are rejected before any write.
// On completion the consultant contact of the company is notified.
func (uc *VendorUsecase) SubmitPortal(ctx context.Context, token uuid.UUID, values map[uint]float64, notes map[uint]string, complete bool) error {
	vendor, err := uc.vendorRepo.FindByToken(token)
	if err != nil {
		return err
	}

	for _, v := range values {
		if v != scoring.AnswerNo && v != scoring.AnswerPartial && v != scoring.AnswerYes {
			return ErrInvalidAnswerValue
		}
	}

	for questionID, value := range values {
		if err := uc.vendorRepo.UpsertAnswer(&model.VendorAnswer{
			VendorID:   vendor.ID,
			QuestionID: questionID,
			Value:      value,
			Note:       notes[questionID],
		}); err != nil {
			return err
		}
	}

	if complete {
		vendor.Status = model.VendorStatusCompleted
		if err := uc.vendorRepo.Update(vendor); err != nil {
			return err
		}
		uc.notifyCompletion(ctx, vendor)
	}
	return nil
}

// notifyCompletion mails the company contact. Delivery failure is logged,
// never surfaced to the vendor.
func (uc *VendorUsecase) notifyCompletion(ctx context.Context, vendor *model.Vendor) {
	company, err := uc.companyRepo.FindByID(vendor.CompanyID)
	if err != nil || company.ContactEmail == "" {
		return
	}
	_, err = uc.email.Send(ctx, service.EmailMessage{
		To:      company.ContactEmail,
		Subject: "Questionario fornitore completato",
		Params: map[string]string{
			"vendor_name":  vendor.BusinessName,
			"company_name": company.Name,
		},
	})
	if err != nil {
		slog.Error("failed to notify questionnaire completion", "vendor_id", vendor.ID, "error", err)
	}
}

// Report scores the questionnaire and assembles the remediation advice.
func (uc *VendorUsecase) Report(companyID, vendorID uuid.UUID) (*VendorReport, error) {
	vendor, err := uc.vendorRepo.FindByID(companyID, vendorID)
	if err != nil {
		return nil, err
	}
	questions, err := uc.vendorRepo.GetQuestions()
	if err != nil {
		return nil, err
	}
	answers, err := uc.vendorRepo.GetAnswers(vendor.ID)
	if err != nil {
		return nil, err
	}

	scoringQuestions := make([]scoring.VendorQuestion, 0, len(questions))
	for _, q := range questions {
		scoringQuestions = append(scoringQuestions, scoring.VendorQuestion{
			ID:             q.ID,
			Area:           scoring.Area(q.Area),
			TopicWeight:    q.TopicWeight,
			QuestionWeight: q.QuestionWeight,
		})
	}

	values := make(map[uint]float64, len(answers))
	for _, a := range answers {
		values[a.QuestionID] = a.Value
	}

	results := scoring.ScoreVendor(scoringQuestions, values)
	detail := make(map[string]float64, len(results))
	for area, score := range results {
		detail[string(area)] = score
	}

	return &VendorReport{
		FinalScore:      results[scoring.AreaOverall],
		AreaDetail:      detail,
		Recommendations: scoring.BuildRecommendations(results),
		Answered:        len(values),
		Total:           len(questions),
	}, nil
}

// SaveAttachment records an uploaded certificate and extracts its text so
// consultants can preview it. Extraction failure is logged, not fatal.
func (uc *VendorUsecase) SaveAttachment(token uuid.UUID, fileName, path, description string) (*model.VendorAttachment, error) {
	vendor, err := uc.vendorRepo.FindByToken(token)
	if err != nil {
		return nil, err
	}

	attachment := &model.VendorAttachment{
		VendorID:    vendor.ID,
		FileName:    fileName,
		Path:        path,
		Description: description,
	}

	text, err := util.ExtractPDFText(path)
	if err != nil {
		slog.Warn("could not extract attachment text", "vendor_id", vendor.ID, "file", fileName, "error", err)
	} else {
		attachment.ExtractedText = text
	}

	if err := uc.vendorRepo.CreateAttachment(attachment); err != nil {
		return nil, err
	}
	return attachment, nil
}

func (uc *VendorUsecase) GetAttachments(companyID, vendorID uuid.UUID) ([]model.VendorAttachment, error) {
	if _, err := uc.vendorRepo.FindByID(companyID, vendorID); err != nil {
		return nil, err
	}
	return uc.vendorRepo.GetAttachments(vendorID)
}
