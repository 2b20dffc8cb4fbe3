package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/repository"
)

// responseWindow is the GDPR art. 12 deadline for answering a data
// subject request.
const responseWindow = 30 * 24 * time.Hour

type RequestUsecase struct {
	requestRepo *repository.RequestRepository
}

func NewRequestUsecase(requestRepo *repository.RequestRepository) *RequestUsecase {
	return &RequestUsecase{requestRepo: requestRepo}
}

func (uc *RequestUsecase) Create(request *model.DataSubjectRequest) error {
	if request.ResponseDeadline == nil {
		deadline := time.Now().Add(responseWindow)
		request.ResponseDeadline = &deadline
	}
	return uc.requestRepo.Create(request)
}

func (uc *RequestUsecase) Update(companyID uuid.UUID, request *model.DataSubjectRequest) error {
	existing, err := uc.requestRepo.FindByID(companyID, request.ID)
	if err != nil {
		return err
	}
	request.CompanyID = existing.CompanyID
	request.ReceivedAt = existing.ReceivedAt
	return uc.requestRepo.Update(request)
}

func (uc *RequestUsecase) Get(companyID, id uuid.UUID) (*model.DataSubjectRequest, error) {
	return uc.requestRepo.FindByID(companyID, id)
}

func (uc *RequestUsecase) List(companyID uuid.UUID) ([]model.DataSubjectRequest, error) {
	return uc.requestRepo.GetByCompany(companyID)
}

// Overdue returns the open requests whose response deadline has passed.
func (uc *RequestUsecase) Overdue(companyID uuid.UUID, now time.Time) ([]model.DataSubjectRequest, error) {
	requests, err := uc.requestRepo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}

	var overdue []model.DataSubjectRequest
	for _, r := range requests {
		if r.Status == model.RequestStatusFulfilled || r.Status == model.RequestStatusRejected {
			continue
		}
		if r.ResponseDeadline != nil && r.ResponseDeadline.Before(now) {
			overdue = append(overdue, r)
		}
	}
	return overdue, nil
}
