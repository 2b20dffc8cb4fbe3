package repository

import (
	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db}
}

func (r *CompanyRepository) Create(company *model.Company) error {
	return r.db.Create(company).Error
}

func (r *CompanyRepository) Update(company *model.Company) error {
	return r.db.Save(company).Error
}

func (r *CompanyRepository) FindByID(id uuid.UUID) (*model.Company, error) {
	var company model.Company
	err := r.db.First(&company, "id = ?", id).Error
	return &company, err
}

func (r *CompanyRepository) GetAll() ([]model.Company, error) {
	var companies []model.Company
	err := r.db.Order("name").Find(&companies).Error
	return companies, err
}

func (r *CompanyRepository) GetPage(page, pageSize int) ([]model.Company, int64, error) {
	var total int64
	if err := r.db.Model(&model.Company{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var companies []model.Company
	err := r.db.Order("name").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&companies).Error
	return companies, total, err
}
