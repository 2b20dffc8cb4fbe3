package usecase

import (
	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/repository"
	"github.com/hubcompliance/compliance-hub/internal/response"
)

type CompanyUsecase struct {
	companyRepo *repository.CompanyRepository
}

func NewCompanyUsecase(companyRepo *repository.CompanyRepository) *CompanyUsecase {
	return &CompanyUsecase{companyRepo: companyRepo}
}

func (uc *CompanyUsecase) Create(company *model.Company) error {
	return uc.companyRepo.Create(company)
}

func (uc *CompanyUsecase) Update(company *model.Company) error {
	if _, err := uc.companyRepo.FindByID(company.ID); err != nil {
		return err
	}
	return uc.companyRepo.Update(company)
}

func (uc *CompanyUsecase) Get(id uuid.UUID) (*model.Company, error) {
	return uc.companyRepo.FindByID(id)
}

func (uc *CompanyUsecase) List() ([]model.Company, error) {
	return uc.companyRepo.GetAll()
}

// ListPage returns one page of companies with the pagination summary.
func (uc *CompanyUsecase) ListPage(page, pageSize int) ([]model.Company, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	companies, total, err := uc.companyRepo.GetPage(page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	totalPages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPages++
	}
	from := 0
	to := 0
	if len(companies) > 0 {
		from = (page-1)*pageSize + 1
		to = from + len(companies) - 1
	}
	pagination := &response.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         to,
	}
	return companies, pagination, nil
}
