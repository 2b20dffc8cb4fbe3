package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/repository"
	"github.com/hubcompliance/compliance-hub/internal/service"
)

type AssetUsecase struct {
	assetRepo   *repository.AssetRepository
	companyRepo *repository.CompanyRepository
	breach      service.BreachServiceInterface
	scanner     service.ScannerServiceInterface
}

func NewAssetUsecase(assetRepo *repository.AssetRepository, companyRepo *repository.CompanyRepository, breach service.BreachServiceInterface, scanner service.ScannerServiceInterface) *AssetUsecase {
	return &AssetUsecase{assetRepo: assetRepo, companyRepo: companyRepo, breach: breach, scanner: scanner}
}

func (uc *AssetUsecase) CreateAsset(asset *model.Asset) error {
	return uc.assetRepo.CreateAsset(asset)
}

func (uc *AssetUsecase) UpdateAsset(companyID uuid.UUID, asset *model.Asset) error {
	existing, err := uc.assetRepo.FindAssetByID(companyID, asset.ID)
	if err != nil {
		return err
	}
	asset.CompanyID = existing.CompanyID
	return uc.assetRepo.UpdateAsset(asset)
}

func (uc *AssetUsecase) GetAsset(companyID, id uuid.UUID) (*model.Asset, error) {
	return uc.assetRepo.FindAssetByID(companyID, id)
}

func (uc *AssetUsecase) ListAssets(companyID uuid.UUID) ([]model.Asset, error) {
	return uc.assetRepo.GetAssetsByCompany(companyID)
}

func (uc *AssetUsecase) CreateSoftware(software *model.Software) error {
	return uc.assetRepo.CreateSoftware(software)
}

func (uc *AssetUsecase) UpdateSoftware(companyID uuid.UUID, software *model.Software) error {
	existing, err := uc.assetRepo.FindSoftwareByID(companyID, software.ID)
	if err != nil {
		return err
	}
	software.CompanyID = existing.CompanyID
	return uc.assetRepo.UpdateSoftware(software)
}

func (uc *AssetUsecase) ListSoftware(companyID uuid.UUID) ([]model.Software, error) {
	return uc.assetRepo.GetSoftwareByCompany(companyID)
}

func (uc *AssetUsecase) CreateMonitoredAsset(asset *model.MonitoredAsset) error {
	return uc.assetRepo.CreateMonitoredAsset(asset)
}

func (uc *AssetUsecase) ListMonitoredAssets(companyID uuid.UUID) ([]model.MonitoredAsset, error) {
	return uc.assetRepo.GetMonitoredAssets(companyID)
}

// CheckExposure queries the breach index for the company domain.
func (uc *AssetUsecase) CheckExposure(ctx context.Context, companyID uuid.UUID) (*service.BreachReport, error) {
	company, err := uc.companyRepo.FindByID(companyID)
	if err != nil {
		return nil, err
	}
	if company.Domain == "" {
		return nil, ErrCompanyNoDomain
	}
	return uc.breach.CheckDomain(ctx, company.Domain)
}

// ScanOverview lists the vulnerability scans known to the scanner.
func (uc *AssetUsecase) ScanOverview(ctx context.Context) ([]service.ScanSummary, error) {
	return uc.scanner.ListScans(ctx)
}

func (uc *AssetUsecase) ScanDetail(ctx context.Context, scanID int64) (*service.ScanDetail, error) {
	return uc.scanner.GetScanDetail(ctx, scanID)
}
