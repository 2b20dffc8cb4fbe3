package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/repository"
	"github.com/hubcompliance/compliance-hub/internal/scoring"
	"github.com/hubcompliance/compliance-hub/internal/service"
	"github.com/hubcompliance/compliance-hub/internal/util"
	"github.com/pgvector/pgvector-go"
	"github.com/xuri/excelize/v2"
)

type TreatmentUsecase struct {
	treatmentRepo *repository.TreatmentRepository
	gemini        service.GeminiServiceInterface
}

func NewTreatmentUsecase(treatmentRepo *repository.TreatmentRepository, gemini service.GeminiServiceInterface) *TreatmentUsecase {
	return &TreatmentUsecase{treatmentRepo: treatmentRepo, gemini: gemini}
}

func (uc *TreatmentUsecase) Create(treatment *model.Treatment) error {
	if err := uc.treatmentRepo.Create(treatment); err != nil {
		return err
	}

	// Embedding generation runs detached so a slow or failing AI call
	// never blocks the register write.
	go uc.refreshEmbedding(treatment)
	return nil
}

func (uc *TreatmentUsecase) Update(companyID uuid.UUID, treatment *model.Treatment) error {
	existing, err := uc.treatmentRepo.FindByID(companyID, treatment.ID)
	if err != nil {
		return err
	}
	treatment.CompanyID = existing.CompanyID
	if err := uc.treatmentRepo.Update(treatment); err != nil {
		return err
	}

	go uc.refreshEmbedding(treatment)
	return nil
}

func (uc *TreatmentUsecase) Delete(companyID, id uuid.UUID) error {
	return uc.treatmentRepo.Delete(companyID, id)
}

func (uc *TreatmentUsecase) Get(companyID, id uuid.UUID) (*model.Treatment, error) {
	return uc.treatmentRepo.FindByID(companyID, id)
}

func (uc *TreatmentUsecase) List(companyID uuid.UUID) ([]model.Treatment, error) {
	return uc.treatmentRepo.GetByCompany(companyID)
}

func (uc *TreatmentUsecase) GetChecklist(companyID, treatmentID uuid.UUID) ([]model.ChecklistQuestion, map[uint]bool, error) {
	if _, err := uc.treatmentRepo.FindByID(companyID, treatmentID); err != nil {
		return nil, nil, err
	}
	questions, err := uc.treatmentRepo.GetChecklistQuestions()
	if err != nil {
		return nil, nil, err
	}
	answers, err := uc.treatmentRepo.GetAnswers(treatmentID)
	if err != nil {
		return nil, nil, err
	}

	current := make(map[uint]bool, len(answers))
	for _, a := range answers {
		current[a.QuestionID] = a.Answer
	}
	return questions, current, nil
}

// SubmitChecklist stores the submitted answers and writes the resulting
// score, level and DPIA flag back onto the treatment.
func (uc *TreatmentUsecase) SubmitChecklist(companyID, treatmentID uuid.UUID, answers map[uint]bool) (*scoring.RiskResult, error) {
	treatment, err := uc.treatmentRepo.FindByID(companyID, treatmentID)
	if err != nil {
		return nil, err
	}

	questions, err := uc.treatmentRepo.GetChecklistQuestions()
	if err != nil {
		return nil, err
	}

	riskQuestions := make([]scoring.RiskQuestion, 0, len(questions))
	for _, q := range questions {
		riskQuestions = append(riskQuestions, scoring.RiskQuestion{
			ID:     q.ID,
			Text:   q.Text,
			Weight: q.RiskWeight,
			Order:  q.Order,
		})
		if err := uc.treatmentRepo.UpsertAnswer(&model.ChecklistAnswer{
			TreatmentID: treatmentID,
			QuestionID:  q.ID,
			Answer:      answers[q.ID],
		}); err != nil {
			return nil, err
		}
	}

	result := scoring.ScoreRisk(riskQuestions, answers)
	treatment.RiskScore = result.Score
	treatment.RiskLevel = string(result.Tier)
	treatment.DPIARequired = result.DPIARequired
	if err := uc.treatmentRepo.Update(treatment); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExportRegister renders the company treatment register to a workbook.
func (uc *TreatmentUsecase) ExportRegister(companyID uuid.UUID) (*excelize.File, error) {
	treatments, err := uc.treatmentRepo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}
	return util.WriteTreatmentRegisterWorkbook(treatments)
}

// SuggestMeasures asks the AI for security-measure advice, grounding the
// prompt on the most similar treatments already in the register.
func (uc *TreatmentUsecase) SuggestMeasures(ctx context.Context, companyID, treatmentID uuid.UUID) (string, error) {
	treatment, err := uc.treatmentRepo.FindByID(companyID, treatmentID)
	if err != nil {
		return "", err
	}

	embedding, err := uc.gemini.GenerateEmbedding(ctx, treatmentText(treatment))
	if err != nil {
		return "", err
	}

	similar, err := uc.treatmentRepo.SearchSimilar(pgvector.NewVector(embedding), 5)
	if err != nil {
		return "", err
	}

	var similarContext strings.Builder
	for i, t := range similar {
		if t.ID == treatment.ID {
			continue
		}
		fmt.Fprintf(&similarContext, "Treatment %d: %s\nPurpose: %s\nMeasures: %s\n\n", i+1, t.Name, t.Purpose, t.SecurityMeasures)
	}

	prompt := fmt.Sprintf(`You are a GDPR consultant. Suggest appropriate technical and
organizational security measures for the following processing activity.

Similar activities already in the register, with their adopted measures:

%s

Processing activity:
Name: %s
Purpose: %s
Risk level: %s
Current measures: %s

Answer in Italian with a short bullet list of concrete measures.`,
		similarContext.String(), treatment.Name, treatment.Purpose, treatment.RiskLevel, treatment.SecurityMeasures)

	return uc.gemini.GenerateContent(ctx, prompt)
}

func (uc *TreatmentUsecase) refreshEmbedding(treatment *model.Treatment) {
	embedding, err := uc.gemini.GenerateEmbedding(context.Background(), treatmentText(treatment))
	if err != nil {
		slog.Error("failed to refresh treatment embedding", "treatment_id", treatment.ID, "error", err)
		return
	}
	treatment.Embedding = pgvector.NewVector(embedding)
	if err := uc.treatmentRepo.Update(treatment); err != nil {
		slog.Error("failed to store treatment embedding", "treatment_id", treatment.ID, "error", err)
	}
}

func treatmentText(t *model.Treatment) string {
	return fmt.Sprintf("%s\n%s\n%s", t.Name, t.Purpose, t.SecurityMeasures)
}
