package repository

import (
	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"gorm.io/gorm"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db}
}

func (r *RequestRepository) Create(request *model.DataSubjectRequest) error {
	return r.db.Create(request).Error
}

func (r *RequestRepository) Update(request *model.DataSubjectRequest) error {
	return r.db.Save(request).Error
}

func (r *RequestRepository) FindByID(companyID, id uuid.UUID) (*model.DataSubjectRequest, error) {
	var request model.DataSubjectRequest
	err := r.db.First(&request, "id = ? AND company_id = ?", id, companyID).Error
	return &request, err
}

func (r *RequestRepository) GetByCompany(companyID uuid.UUID) ([]model.DataSubjectRequest, error) {
	var requests []model.DataSubjectRequest
	err := r.db.Where("company_id = ?", companyID).Order("received_at DESC").Find(&requests).Error
	return requests, err
}
