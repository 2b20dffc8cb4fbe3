package repository

import (
	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SecurityRepository struct {
	db *gorm.DB
}

func NewSecurityRepository(db *gorm.DB) *SecurityRepository {
	return &SecurityRepository{db}
}

func (r *SecurityRepository) GetControls() ([]model.SecurityControl, error) {
	var controls []model.SecurityControl
	err := r.db.Order("control_id").Find(&controls).Error
	return controls, err
}

// UpsertControls replaces catalog rows by control_id, used by Excel import.
func (r *SecurityRepository) UpsertControls(controls []model.SecurityControl) error {
	if len(controls) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "control_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"area", "description", "verification_aid", "iso_reference"}),
	}).Create(&controls).Error
}

func (r *SecurityRepository) CreateAudit(audit *model.SecurityAudit) error {
	return r.db.Create(audit).Error
}

func (r *SecurityRepository) UpdateAudit(audit *model.SecurityAudit) error {
	return r.db.Save(audit).Error
}

func (r *SecurityRepository) FindAuditByID(companyID, id uuid.UUID) (*model.SecurityAudit, error) {
	var audit model.SecurityAudit
	err := r.db.First(&audit, "id = ? AND company_id = ?", id, companyID).Error
	return &audit, err
}

func (r *SecurityRepository) GetAuditsByCompany(companyID uuid.UUID) ([]model.SecurityAudit, error) {
	var audits []model.SecurityAudit
	err := r.db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&audits).Error
	return audits, err
}

// BackfillResponses creates a default "NO" response for every catalog
// control the audit has no row for yet, so new controls show up on reopen.
func (r *SecurityRepository) BackfillResponses(auditID uuid.UUID) error {
	var missing []model.SecurityControl
	sub := r.db.Model(&model.SecurityResponse{}).Select("control_id").Where("audit_id = ?", auditID)
	if err := r.db.Where("id NOT IN (?)", sub).Find(&missing).Error; err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}

	responses := make([]model.SecurityResponse, 0, len(missing))
	for _, c := range missing {
		responses = append(responses, model.SecurityResponse{AuditID: auditID, ControlID: c.ID})
	}
	return r.db.Create(&responses).Error
}

// UpsertResponse creates or replaces the outcome keyed by (audit, control).
func (r *SecurityRepository) UpsertResponse(response *model.SecurityResponse) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "audit_id"}, {Name: "control_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"outcome", "note", "updated_at"}),
	}).Create(response).Error
}

func (r *SecurityRepository) GetResponses(auditID uuid.UUID) ([]model.SecurityResponse, error) {
	var responses []model.SecurityResponse
	err := r.db.Preload("Control").
		Joins("JOIN security_controls ON security_controls.id = security_responses.control_id").
		Where("audit_id = ?", auditID).
		Order("security_controls.control_id").
		Find(&responses).Error
	return responses, err
}
