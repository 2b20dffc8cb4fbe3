package repository

import (
	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WhistleblowingRepository struct {
	db *gorm.DB
}

func NewWhistleblowingRepository(db *gorm.DB) *WhistleblowingRepository {
	return &WhistleblowingRepository{db}
}

func (r *WhistleblowingRepository) CreateReport(report *model.WhistleblowingReport) error {
	return r.db.Create(report).Error
}

func (r *WhistleblowingRepository) UpdateReport(report *model.WhistleblowingReport) error {
	return r.db.Save(report).Error
}

// FindReportByTicket resolves the anonymous ticket code. No tenant scoping:
// the code itself is the handle the reporter keeps.
func (r *WhistleblowingRepository) FindReportByTicket(ticketCode string) (*model.WhistleblowingReport, error) {
	var report model.WhistleblowingReport
	err := r.db.First(&report, "ticket_code = ?", ticketCode).Error
	return &report, err
}

func (r *WhistleblowingRepository) FindReportByID(id uuid.UUID) (*model.WhistleblowingReport, error) {
	var report model.WhistleblowingReport
	err := r.db.First(&report, "id = ?", id).Error
	return &report, err
}

func (r *WhistleblowingRepository) GetReportsByCompany(companyID uuid.UUID) ([]model.WhistleblowingReport, error) {
	var reports []model.WhistleblowingReport
	err := r.db.Where("company_id = ?", companyID).Order("submitted_at DESC").Find(&reports).Error
	return reports, err
}

func (r *WhistleblowingRepository) CountReportsInYear(companyID uuid.UUID, year int) (int64, error) {
	var count int64
	err := r.db.Model(&model.WhistleblowingReport{}).
		Where("company_id = ? AND EXTRACT(YEAR FROM submitted_at) = ?", companyID, year).
		Count(&count).Error
	return count, err
}

func (r *WhistleblowingRepository) CreateAttachment(attachment *model.WhistleblowingAttachment) error {
	return r.db.Create(attachment).Error
}

func (r *WhistleblowingRepository) GetAttachments(reportID uuid.UUID) ([]model.WhistleblowingAttachment, error) {
	var attachments []model.WhistleblowingAttachment
	err := r.db.Where("report_id = ?", reportID).Find(&attachments).Error
	return attachments, err
}

// UpsertConfig replaces the single activation record of a company.
func (r *WhistleblowingRepository) UpsertConfig(config *model.WhistleblowingConfig) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "company_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"package_name", "active"}),
	}).Create(config).Error
}

func (r *WhistleblowingRepository) FindConfigByCompany(companyID uuid.UUID) (*model.WhistleblowingConfig, error) {
	var config model.WhistleblowingConfig
	err := r.db.First(&config, "company_id = ?", companyID).Error
	return &config, err
}
