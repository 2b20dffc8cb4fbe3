package repository

import (
	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TreatmentRepository struct {
	db *gorm.DB
}

func NewTreatmentRepository(db *gorm.DB) *TreatmentRepository {
	return &TreatmentRepository{db}
}

func (r *TreatmentRepository) Create(t *model.Treatment) error {
	return r.db.Create(t).Error
}

func (r *TreatmentRepository) Update(t *model.Treatment) error {
	return r.db.Save(t).Error
}

func (r *TreatmentRepository) Delete(companyID, id uuid.UUID) error {
	return r.db.Where("company_id = ?", companyID).Delete(&model.Treatment{}, "id = ?", id).Error
}

// FindByID resolves a treatment inside the given tenant only.
func (r *TreatmentRepository) FindByID(companyID, id uuid.UUID) (*model.Treatment, error) {
	var t model.Treatment
	err := r.db.Preload("DataCategories").Preload("DataSubjects").
		First(&t, "id = ? AND company_id = ?", id, companyID).Error
	return &t, err
}

func (r *TreatmentRepository) GetByCompany(companyID uuid.UUID) ([]model.Treatment, error) {
	var treatments []model.Treatment
	err := r.db.Preload("DataCategories").Preload("DataSubjects").
		Where("company_id = ?", companyID).Order("created_at DESC").Find(&treatments).Error
	return treatments, err
}

// SearchSimilar returns the closest treatments by purpose embedding,
// used as RAG context for AI suggestions.
func (r *TreatmentRepository) SearchSimilar(embedding pgvector.Vector, topK int) ([]model.Treatment, error) {
	var treatments []model.Treatment
	err := r.db.Raw(`
        SELECT *, embedding <-> ? AS distance
        FROM treatments
        WHERE embedding IS NOT NULL
        ORDER BY embedding <-> ?
        LIMIT ?
    `, embedding, embedding, topK).Scan(&treatments).Error
	return treatments, err
}

func (r *TreatmentRepository) GetChecklistQuestions() ([]model.ChecklistQuestion, error) {
	var questions []model.ChecklistQuestion
	err := r.db.Order("sort_order").Find(&questions).Error
	return questions, err
}

// UpsertAnswer creates or replaces the answer keyed by (treatment, question).
func (r *TreatmentRepository) UpsertAnswer(answer *model.ChecklistAnswer) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "treatment_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answer", "updated_at"}),
	}).Create(answer).Error
}

func (r *TreatmentRepository) GetAnswers(treatmentID uuid.UUID) ([]model.ChecklistAnswer, error) {
	var answers []model.ChecklistAnswer
	err := r.db.Where("treatment_id = ?", treatmentID).Find(&answers).Error
	return answers, err
}
