package repository

import (
	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db}
}

func (r *AuditRepository) GetCategories() ([]model.AuditCategory, error) {
	var categories []model.AuditCategory
	err := r.db.Order("sort_order").Find(&categories).Error
	return categories, err
}

func (r *AuditRepository) GetQuestions() ([]model.AuditQuestion, error) {
	var questions []model.AuditQuestion
	err := r.db.Order("sort_order").Find(&questions).Error
	return questions, err
}

func (r *AuditRepository) CreateSession(session *model.AuditSession) error {
	return r.db.Create(session).Error
}

func (r *AuditRepository) UpdateSession(session *model.AuditSession) error {
	return r.db.Save(session).Error
}

func (r *AuditRepository) FindSessionByID(companyID, id uuid.UUID) (*model.AuditSession, error) {
	var session model.AuditSession
	err := r.db.First(&session, "id = ? AND company_id = ?", id, companyID).Error
	return &session, err
}

func (r *AuditRepository) GetSessionsByCompany(companyID uuid.UUID) ([]model.AuditSession, error) {
	var sessions []model.AuditSession
	err := r.db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&sessions).Error
	return sessions, err
}

// UpsertAnswer creates or replaces the answer keyed by (session, question).
func (r *AuditRepository) UpsertAnswer(answer *model.AuditAnswer) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answer", "note", "updated_at"}),
	}).Create(answer).Error
}

func (r *AuditRepository) GetAnswers(sessionID uuid.UUID) ([]model.AuditAnswer, error) {
	var answers []model.AuditAnswer
	err := r.db.Where("session_id = ?", sessionID).Find(&answers).Error
	return answers, err
}
