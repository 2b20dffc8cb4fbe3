package usecase

import (
	"io"
	"sort"

	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/repository"
	"github.com/hubcompliance/compliance-hub/internal/scoring"
	"github.com/hubcompliance/compliance-hub/internal/util"
	"github.com/xuri/excelize/v2"
)

type SecurityUsecase struct {
	securityRepo *repository.SecurityRepository
}

func NewSecurityUsecase(securityRepo *repository.SecurityRepository) *SecurityUsecase {
	return &SecurityUsecase{securityRepo: securityRepo}
}

// SecurityScore rates one audit, overall and per control area.
type SecurityScore struct {
	Percentage float64             `json:"percentage"`
	Band       scoring.Band        `json:"band"`
	ByArea     []SecurityAreaScore `json:"by_area"`
}

type SecurityAreaScore struct {
	Area       string       `json:"area"`
	Percentage float64      `json:"percentage"`
	Band       scoring.Band `json:"band"`
}

func (uc *SecurityUsecase) GetControls() ([]model.SecurityControl, error) {
	return uc.securityRepo.GetControls()
}

// ImportControls replaces the control catalog rows found in the workbook.
func (uc *SecurityUsecase) ImportControls(r io.Reader) (int, error) {
	controls, err := util.ParseSecurityControls(r)
	if err != nil {
		return 0, err
	}
	if err := uc.securityRepo.UpsertControls(controls); err != nil {
		return 0, err
	}
	return len(controls), nil
}

// StartAudit opens an audit preloaded with a "NO" response per control.
func (uc *SecurityUsecase) StartAudit(companyID uuid.UUID, createdBy string) (*model.SecurityAudit, error) {
	audit := &model.SecurityAudit{
		CompanyID: companyID,
		CreatedBy: createdBy,
	}
	if err := uc.securityRepo.CreateAudit(audit); err != nil {
		return nil, err
	}
	if err := uc.securityRepo.BackfillResponses(audit.ID); err != nil {
		return nil, err
	}
	return audit, nil
}

func (uc *SecurityUsecase) GetAudit(companyID, auditID uuid.UUID) (*model.SecurityAudit, []model.SecurityResponse, error) {
	audit, err := uc.securityRepo.FindAuditByID(companyID, auditID)
	if err != nil {
		return nil, nil, err
	}
	// New catalog controls show up when an existing audit is reopened.
	if err := uc.securityRepo.BackfillResponses(auditID); err != nil {
		return nil, nil, err
	}
	responses, err := uc.securityRepo.GetResponses(auditID)
	if err != nil {
		return nil, nil, err
	}
	return audit, responses, nil
}

func (uc *SecurityUsecase) ListAudits(companyID uuid.UUID) ([]model.SecurityAudit, error) {
	return uc.securityRepo.GetAuditsByCompany(companyID)
}

// RecordResponse stores one control outcome on an open audit.
func (uc *SecurityUsecase) RecordResponse(companyID, auditID uuid.UUID, controlID uint, outcome, note string) error {
	audit, err := uc.securityRepo.FindAuditByID(companyID, auditID)
	if err != nil {
		return err
	}
	if audit.Completed {
		return ErrAuditCompleted
	}
	if !scoring.ValidOutcome(outcome) {
		return ErrInvalidOutcome
	}

	return uc.securityRepo.UpsertResponse(&model.SecurityResponse{
		AuditID:   auditID,
		ControlID: controlID,
		Outcome:   outcome,
		Note:      note,
	})
}

func (uc *SecurityUsecase) CompleteAudit(companyID, auditID uuid.UUID) (*model.SecurityAudit, error) {
	audit, err := uc.securityRepo.FindAuditByID(companyID, auditID)
	if err != nil {
		return nil, err
	}
	audit.Completed = true
	if err := uc.securityRepo.UpdateAudit(audit); err != nil {
		return nil, err
	}
	return audit, nil
}

// Score rates an audit. NOT_APPLICABLE outcomes are excluded from every
// denominator, both overall and per area.
func (uc *SecurityUsecase) Score(companyID, auditID uuid.UUID) (*SecurityScore, error) {
	if _, err := uc.securityRepo.FindAuditByID(companyID, auditID); err != nil {
		return nil, err
	}
	responses, err := uc.securityRepo.GetResponses(auditID)
	if err != nil {
		return nil, err
	}

	var all []scoring.Outcome
	byArea := map[string][]scoring.Outcome{}
	for _, resp := range responses {
		outcome := scoring.Outcome(resp.Outcome)
		all = append(all, outcome)
		byArea[resp.Control.Area] = append(byArea[resp.Control.Area], outcome)
	}

	overall := scoring.CompletionRate(all)
	score := &SecurityScore{
		Percentage: overall,
		Band:       scoring.RateBand(overall),
	}

	areas := make([]string, 0, len(byArea))
	for area := range byArea {
		areas = append(areas, area)
	}
	sort.Strings(areas)
	for _, area := range areas {
		p := scoring.CompletionRate(byArea[area])
		score.ByArea = append(score.ByArea, SecurityAreaScore{
			Area:       area,
			Percentage: p,
			Band:       scoring.RateBand(p),
		})
	}
	return score, nil
}

// ExportAudit renders the audit with outcomes and notes to a workbook.
func (uc *SecurityUsecase) ExportAudit(companyID, auditID uuid.UUID) (*excelize.File, error) {
	if _, err := uc.securityRepo.FindAuditByID(companyID, auditID); err != nil {
		return nil, err
	}
	responses, err := uc.securityRepo.GetResponses(auditID)
	if err != nil {
		return nil, err
	}
	return util.WriteSecurityAuditWorkbook(responses)
}
