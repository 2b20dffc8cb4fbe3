package repository

import (
	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"gorm.io/gorm"
)

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db}
}

func (r *AssetRepository) CreateAsset(asset *model.Asset) error {
	return r.db.Create(asset).Error
}

func (r *AssetRepository) UpdateAsset(asset *model.Asset) error {
	return r.db.Save(asset).Error
}

func (r *AssetRepository) FindAssetByID(companyID, id uuid.UUID) (*model.Asset, error) {
	var asset model.Asset
	err := r.db.First(&asset, "id = ? AND company_id = ?", id, companyID).Error
	return &asset, err
}

func (r *AssetRepository) GetAssetsByCompany(companyID uuid.UUID) ([]model.Asset, error) {
	var assets []model.Asset
	err := r.db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&assets).Error
	return assets, err
}

func (r *AssetRepository) CreateSoftware(software *model.Software) error {
	return r.db.Create(software).Error
}

func (r *AssetRepository) UpdateSoftware(software *model.Software) error {
	return r.db.Save(software).Error
}

func (r *AssetRepository) FindSoftwareByID(companyID, id uuid.UUID) (*model.Software, error) {
	var software model.Software
	err := r.db.First(&software, "id = ? AND company_id = ?", id, companyID).Error
	return &software, err
}

func (r *AssetRepository) GetSoftwareByCompany(companyID uuid.UUID) ([]model.Software, error) {
	var software []model.Software
	err := r.db.Where("company_id = ?", companyID).Order("name").Find(&software).Error
	return software, err
}

func (r *AssetRepository) CreateMonitoredAsset(asset *model.MonitoredAsset) error {
	return r.db.Create(asset).Error
}

func (r *AssetRepository) GetMonitoredAssets(companyID uuid.UUID) ([]model.MonitoredAsset, error) {
	var assets []model.MonitoredAsset
	err := r.db.Where("company_id = ? AND active = true", companyID).Order("name").Find(&assets).Error
	return assets, err
}
