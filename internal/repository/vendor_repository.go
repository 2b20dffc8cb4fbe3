package repository

import (
	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db}
}

func (r *VendorRepository) Create(vendor *model.Vendor) error {
	return r.db.Create(vendor).Error
}

func (r *VendorRepository) Update(vendor *model.Vendor) error {
	return r.db.Save(vendor).Error
}

func (r *VendorRepository) FindByID(companyID, id uuid.UUID) (*model.Vendor, error) {
	var vendor model.Vendor
	err := r.db.First(&vendor, "id = ? AND company_id = ?", id, companyID).Error
	return &vendor, err
}

// FindByToken resolves the vendor-portal access token. No tenant scoping:
// the token itself is the credential.
func (r *VendorRepository) FindByToken(token uuid.UUID) (*model.Vendor, error) {
	var vendor model.Vendor
	err := r.db.First(&vendor, "access_token = ?", token).Error
	return &vendor, err
}

func (r *VendorRepository) GetByCompany(companyID uuid.UUID) ([]model.Vendor, error) {
	var vendors []model.Vendor
	err := r.db.Where("company_id = ?", companyID).Order("business_name").Find(&vendors).Error
	return vendors, err
}

func (r *VendorRepository) GetQuestions() ([]model.VendorQuestion, error) {
	var questions []model.VendorQuestion
	err := r.db.Order("area, code, topic").Find(&questions).Error
	return questions, err
}

// UpsertAnswer creates or replaces the value keyed by (vendor, question).
func (r *VendorRepository) UpsertAnswer(answer *model.VendorAnswer) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "vendor_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "note", "updated_at"}),
	}).Create(answer).Error
}

func (r *VendorRepository) GetAnswers(vendorID uuid.UUID) ([]model.VendorAnswer, error) {
	var answers []model.VendorAnswer
	err := r.db.Where("vendor_id = ?", vendorID).Find(&answers).Error
	return answers, err
}

func (r *VendorRepository) CreateAttachment(attachment *model.VendorAttachment) error {
	return r.db.Create(attachment).Error
}

func (r *VendorRepository) GetAttachments(vendorID uuid.UUID) ([]model.VendorAttachment, error) {
	var attachments []model.VendorAttachment
	err := r.db.Where("vendor_id = ?", vendorID).Order("uploaded_at DESC").Find(&attachments).Error
	return attachments, err
}
