package repository

import (
	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"gorm.io/gorm"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db}
}

func (r *DocumentRepository) GetCategories() ([]model.DocumentCategory, error) {
	var categories []model.DocumentCategory
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

func (r *DocumentRepository) GetTemplates() ([]model.DocumentTemplate, error) {
	var templates []model.DocumentTemplate
	err := r.db.Order("name").Find(&templates).Error
	return templates, err
}

func (r *DocumentRepository) CreateDocument(doc *model.CompanyDocument) error {
	return r.db.Create(doc).Error
}

func (r *DocumentRepository) FindDocumentByID(companyID, id uuid.UUID) (*model.CompanyDocument, error) {
	var doc model.CompanyDocument
	err := r.db.First(&doc, "id = ? AND company_id = ?", id, companyID).Error
	return &doc, err
}

func (r *DocumentRepository) GetDocumentsByCompany(companyID uuid.UUID) ([]model.CompanyDocument, error) {
	var docs []model.CompanyDocument
	err := r.db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&docs).Error
	return docs, err
}

func (r *DocumentRepository) CreateVersion(version *model.DocumentVersion) error {
	return r.db.Create(version).Error
}

func (r *DocumentRepository) GetVersions(documentID uuid.UUID) ([]model.DocumentVersion, error) {
	var versions []model.DocumentVersion
	err := r.db.Where("document_id = ?", documentID).Order("uploaded_at DESC").Find(&versions).Error
	return versions, err
}
