package usecase

import (
	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/repository"
	"github.com/hubcompliance/compliance-hub/internal/scoring"
)

type AuditUsecase struct {
	auditRepo *repository.AuditRepository
}

func NewAuditUsecase(auditRepo *repository.AuditRepository) *AuditUsecase {
	return &AuditUsecase{auditRepo: auditRepo}
}

// AuditScore is the rating of one checklist session.
type AuditScore struct {
	Answered   int          `json:"answered"`
	Positive   int          `json:"positive"`
	Percentage float64      `json:"percentage"`
	Band       scoring.Band `json:"band"`
}

func (uc *AuditUsecase) GetCategories() ([]model.AuditCategory, error) {
	return uc.auditRepo.GetCategories()
}

func (uc *AuditUsecase) GetQuestions() ([]model.AuditQuestion, error) {
	return uc.auditRepo.GetQuestions()
}

func (uc *AuditUsecase) StartSession(companyID uuid.UUID, createdBy string) (*model.AuditSession, error) {
	session := &model.AuditSession{
		CompanyID: companyID,
		CreatedBy: createdBy,
	}
	if err := uc.auditRepo.CreateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (uc *AuditUsecase) GetSession(companyID, sessionID uuid.UUID) (*model.AuditSession, []model.AuditAnswer, error) {
	session, err := uc.auditRepo.FindSessionByID(companyID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	answers, err := uc.auditRepo.GetAnswers(sessionID)
	if err != nil {
		return nil, nil, err
	}
	return session, answers, nil
}

func (uc *AuditUsecase) ListSessions(companyID uuid.UUID) ([]model.AuditSession, error) {
	return uc.auditRepo.GetSessionsByCompany(companyID)
}

// SubmitAnswers records checklist answers on an open session. Archived
// sessions are frozen and reject writes.
func (uc *AuditUsecase) SubmitAnswers(companyID, sessionID uuid.UUID, answers map[uint]bool, notes map[uint]string) error {
	session, err := uc.auditRepo.FindSessionByID(companyID, sessionID)
	if err != nil {
		return err
	}
	if session.Archived {
		return ErrSessionArchived
	}

	for questionID, answer := range answers {
		if err := uc.auditRepo.UpsertAnswer(&model.AuditAnswer{
			SessionID:  sessionID,
			QuestionID: questionID,
			Answer:     answer,
			Note:       notes[questionID],
		}); err != nil {
			return err
		}
	}
	return nil
}

func (uc *AuditUsecase) CompleteSession(companyID, sessionID uuid.UUID, notes string) (*model.AuditSession, error) {
	session, err := uc.auditRepo.FindSessionByID(companyID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Archived {
		return nil, ErrSessionArchived
	}
	session.Completed = true
	session.Notes = notes
	if err := uc.auditRepo.UpdateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (uc *AuditUsecase) ArchiveSession(companyID, sessionID uuid.UUID) (*model.AuditSession, error) {
	session, err := uc.auditRepo.FindSessionByID(companyID, sessionID)
	if err != nil {
		return nil, err
	}
	session.Archived = true
	if err := uc.auditRepo.UpdateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Score rates a session over its recorded answers.
func (uc *AuditUsecase) Score(companyID, sessionID uuid.UUID) (*AuditScore, error) {
	if _, err := uc.auditRepo.FindSessionByID(companyID, sessionID); err != nil {
		return nil, err
	}
	answers, err := uc.auditRepo.GetAnswers(sessionID)
	if err != nil {
		return nil, err
	}

	values := make([]bool, 0, len(answers))
	positive := 0
	for _, a := range answers {
		values = append(values, a.Answer)
		if a.Answer {
			positive++
		}
	}

	percentage := scoring.CompletionRateBool(values)
	return &AuditScore{
		Answered:   len(values),
		Positive:   positive,
		Percentage: percentage,
		Band:       scoring.RateBand(percentage),
	}, nil
}
