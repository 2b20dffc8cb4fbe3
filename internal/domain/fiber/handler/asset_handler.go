package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hubcompliance/compliance-hub/internal/middleware"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/usecase"
	"github.com/hubcompliance/compliance-hub/internal/util"
	"gorm.io/gorm"
)

type AssetHandler struct {
	uc *usecase.AssetUsecase
}

func NewAssetHandler(uc *usecase.AssetUsecase) *AssetHandler {
	return &AssetHandler{uc: uc}
}

func (h *AssetHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/companies/:companyId/assets", h.ListAssets)
	app.Post("/companies/:companyId/assets", h.CreateAsset)
	app.Get("/companies/:companyId/assets/:id", h.GetAsset)
	app.Put("/companies/:companyId/assets/:id", h.UpdateAsset)

	app.Get("/companies/:companyId/software", h.ListSoftware)
	app.Post("/companies/:companyId/software", h.CreateSoftware)
	app.Put("/companies/:companyId/software/:id", h.UpdateSoftware)

	app.Get("/companies/:companyId/monitored-assets", h.ListMonitoredAssets)
	app.Post("/companies/:companyId/monitored-assets", h.CreateMonitoredAsset)

	// External lookups are slow, keep them off the hot path.
	app.Get("/companies/:companyId/exposure", middleware.RateLimiter(10, time.Minute), h.Exposure)
	app.Get("/scans", h.Scans)
	app.Get("/scans/:scanId", h.ScanDetail)
}

func (h *AssetHandler) ListAssets(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	assets, err := h.uc.ListAssets(companyID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list assets"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get assets",
		Data:    assets,
	})
}

func (h *AssetHandler) CreateAsset(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	var asset model.Asset
	if err := c.BodyParser(&asset); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	asset.CompanyID = companyID
	if err := h.uc.CreateAsset(&asset); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to create asset"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create asset",
		Data:    asset,
	})
}

func (h *AssetHandler) GetAsset(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "asset")
	if err != nil {
		return err
	}
	asset, err := h.uc.GetAsset(companyID, id)
	if err != nil {
		return h.assetError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get asset",
		Data:    asset,
	})
}

func (h *AssetHandler) UpdateAsset(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "asset")
	if err != nil {
		return err
	}
	var asset model.Asset
	if err := c.BodyParser(&asset); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	asset.ID = id
	if err := h.uc.UpdateAsset(companyID, &asset); err != nil {
		return h.assetError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update asset",
		Data:    asset,
	})
}

func (h *AssetHandler) ListSoftware(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	software, err := h.uc.ListSoftware(companyID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list software"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get software",
		Data:    software,
	})
}

func (h *AssetHandler) CreateSoftware(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	var software model.Software
	if err := c.BodyParser(&software); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	software.CompanyID = companyID
	if err := h.uc.CreateSoftware(&software); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to create software"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create software",
		Data:    software,
	})
}

func (h *AssetHandler) UpdateSoftware(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "software")
	if err != nil {
		return err
	}
	var software model.Software
	if err := c.BodyParser(&software); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	software.ID = id
	if err := h.uc.UpdateSoftware(companyID, &software); err != nil {
		return h.assetError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update software",
		Data:    software,
	})
}

func (h *AssetHandler) ListMonitoredAssets(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	assets, err := h.uc.ListMonitoredAssets(companyID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list monitored assets"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get monitored assets",
		Data:    assets,
	})
}

func (h *AssetHandler) CreateMonitoredAsset(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	var asset model.MonitoredAsset
	if err := c.BodyParser(&asset); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	asset.CompanyID = companyID
	if err := h.uc.CreateMonitoredAsset(&asset); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to create monitored asset"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create monitored asset",
		Data:    asset,
	})
}

func (h *AssetHandler) Exposure(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	report, err := h.uc.CheckExposure(c.Context(), companyID)
	if err != nil {
		if errors.Is(err, usecase.ErrCompanyNoDomain) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: err.Error(),
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to check exposure"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success check exposure",
		Data:    report,
	})
}

func (h *AssetHandler) Scans(c *fiber.Ctx) error {
	scans, err := h.uc.ScanOverview(c.Context())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list scans"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get scans",
		Data:    scans,
	})
}

func (h *AssetHandler) ScanDetail(c *fiber.Ctx) error {
	scanID, err := strconv.ParseInt(c.Params("scanId"), 10, 64)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid scan id",
		}, err)
	}
	detail, err := h.uc.ScanDetail(c.Context(), scanID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to get scan detail"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get scan detail",
		Data:    detail,
	})
}

func (h *AssetHandler) assetError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "record not found",
		}, err)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "asset operation failed"}, err)
}
