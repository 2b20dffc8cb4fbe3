package repository

import (
	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IncidentRepository struct {
	db *gorm.DB
}

func NewIncidentRepository(db *gorm.DB) *IncidentRepository {
	return &IncidentRepository{db}
}

func (r *IncidentRepository) Create(incident *model.Incident) error {
	return r.db.Create(incident).Error
}

func (r *IncidentRepository) Update(incident *model.Incident) error {
	return r.db.Save(incident).Error
}

func (r *IncidentRepository) FindByID(companyID, id uuid.UUID) (*model.Incident, error) {
	var incident model.Incident
	err := r.db.First(&incident, "id = ? AND company_id = ?", id, companyID).Error
	return &incident, err
}

func (r *IncidentRepository) GetByCompany(companyID uuid.UUID) ([]model.Incident, error) {
	var incidents []model.Incident
	err := r.db.Where("company_id = ?", companyID).Order("detected_at DESC").Find(&incidents).Error
	return incidents, err
}

func (r *IncidentRepository) CountOpenByCompany(companyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Incident{}).
		Where("company_id = ? AND status <> ?", companyID, model.IncidentStatusClosed).
		Count(&count).Error
	return count, err
}

// UpsertReferent replaces the single CSIRT referent of a company.
func (r *IncidentRepository) UpsertReferent(referent *model.CSIRTReferent) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "company_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"appointed_at", "contact_name", "contact_surname", "contact_email",
			"contact_phone", "ipa_code", "fiscal_code", "role",
			"skills_documented", "external_reason", "updated_at",
		}),
	}).Create(referent).Error
}

func (r *IncidentRepository) FindReferentByCompany(companyID uuid.UUID) (*model.CSIRTReferent, error) {
	var referent model.CSIRTReferent
	err := r.db.First(&referent, "company_id = ?", companyID).Error
	return &referent, err
}

func (r *IncidentRepository) CreateNotification(n *model.IncidentNotification) error {
	return r.db.Create(n).Error
}

func (r *IncidentRepository) UpdateNotification(n *model.IncidentNotification) error {
	return r.db.Save(n).Error
}

func (r *IncidentRepository) FindNotificationByID(companyID, id uuid.UUID) (*model.IncidentNotification, error) {
	var n model.IncidentNotification
	err := r.db.First(&n, "id = ? AND company_id = ?", id, companyID).Error
	return &n, err
}

func (r *IncidentRepository) GetNotificationsByCompany(companyID uuid.UUID) ([]model.IncidentNotification, error) {
	var notifications []model.IncidentNotification
	err := r.db.Where("company_id = ?", companyID).Order("occurred_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *IncidentRepository) CreateNotificationAttachment(a *model.NotificationAttachment) error {
	return r.db.Create(a).Error
}

func (r *IncidentRepository) GetNotificationAttachments(notificationID uuid.UUID) ([]model.NotificationAttachment, error) {
	var attachments []model.NotificationAttachment
	err := r.db.Where("notification_id = ?", notificationID).Find(&attachments).Error
	return attachments, err
}
