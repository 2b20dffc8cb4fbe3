package usecase

import (
	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/repository"
)

type DocumentUsecase struct {
	documentRepo *repository.DocumentRepository
}

func NewDocumentUsecase(documentRepo *repository.DocumentRepository) *DocumentUsecase {
	return &DocumentUsecase{documentRepo: documentRepo}
}

func (uc *DocumentUsecase) GetCategories() ([]model.DocumentCategory, error) {
	return uc.documentRepo.GetCategories()
}

func (uc *DocumentUsecase) GetTemplates() ([]model.DocumentTemplate, error) {
	return uc.documentRepo.GetTemplates()
}

func (uc *DocumentUsecase) Create(doc *model.CompanyDocument) error {
	return uc.documentRepo.CreateDocument(doc)
}

func (uc *DocumentUsecase) Get(companyID, id uuid.UUID) (*model.CompanyDocument, []model.DocumentVersion, error) {
	doc, err := uc.documentRepo.FindDocumentByID(companyID, id)
	if err != nil {
		return nil, nil, err
	}
	versions, err := uc.documentRepo.GetVersions(id)
	if err != nil {
		return nil, nil, err
	}
	return doc, versions, nil
}

func (uc *DocumentUsecase) List(companyID uuid.UUID) ([]model.CompanyDocument, error) {
	return uc.documentRepo.GetDocumentsByCompany(companyID)
}

// AddVersion appends an uploaded revision to a company document.
func (uc *DocumentUsecase) AddVersion(companyID, documentID uuid.UUID, fileName, path, note, uploadedBy string) (*model.DocumentVersion, error) {
	if _, err := uc.documentRepo.FindDocumentByID(companyID, documentID); err != nil {
		return nil, err
	}
	version := &model.DocumentVersion{
		DocumentID: documentID,
		FileName:   fileName,
		Path:       path,
		Note:       note,
		UploadedBy: uploadedBy,
	}
	if err := uc.documentRepo.CreateVersion(version); err != nil {
		return nil, err
	}
	return version, nil
}
