package handler

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/config"
	"github.com/hubcompliance/compliance-hub/internal/dto"
	"github.com/hubcompliance/compliance-hub/internal/middleware"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/usecase"
	"github.com/hubcompliance/compliance-hub/internal/util"
	"gorm.io/gorm"
)

type VendorHandler struct {
	uc *usecase.VendorUsecase
}

func NewVendorHandler(uc *usecase.VendorUsecase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

func (h *VendorHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/companies/:companyId/vendors", h.List)
	app.Post("/companies/:companyId/vendors", h.Create)
	app.Get("/companies/:companyId/vendors/:id", h.Get)
	app.Post("/companies/:companyId/vendors/:id/invite", h.Invite)
	app.Get("/companies/:companyId/vendors/:id/report", h.Report)
	app.Get("/companies/:companyId/vendors/:id/attachments", h.Attachments)

	// Portal routes are token-authenticated and rate limited, no session.
	portal := middleware.RateLimiter(30, time.Minute)
	app.Get("/vendor-portal/:token", portal, h.Portal)
	app.Post("/vendor-portal/:token/answers", portal, h.PortalSubmit)
	app.Post("/vendor-portal/:token/attachments", portal, h.PortalUpload)
}

func (h *VendorHandler) List(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	vendors, err := h.uc.List(companyID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list vendors"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get vendors",
		Data:    vendors,
	})
}

func (h *VendorHandler) Create(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	var vendor model.Vendor
	if err := c.BodyParser(&vendor); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	vendor.CompanyID = companyID
	if err := h.uc.Create(&vendor); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to create vendor"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create vendor",
		Data:    vendor,
	})
}

func (h *VendorHandler) Get(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "vendor")
	if err != nil {
		return err
	}
	vendor, err := h.uc.Get(companyID, id)
	if err != nil {
		return h.vendorError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get vendor",
		Data:    vendor,
	})
}

func (h *VendorHandler) Invite(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "vendor")
	if err != nil {
		return err
	}
	result, err := h.uc.Invite(c.Context(), companyID, id)
	if err != nil {
		if errors.Is(err, usecase.ErrVendorNoEmail) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: err.Error(),
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to send vendor invite",
			Details: result,
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success send vendor invite",
		Data:    result,
	})
}

func (h *VendorHandler) Report(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "vendor")
	if err != nil {
		return err
	}
	report, err := h.uc.Report(companyID, id)
	if err != nil {
		return h.vendorError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get vendor report",
		Data:    report,
	})
}

func (h *VendorHandler) Attachments(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "vendor")
	if err != nil {
		return err
	}
	attachments, err := h.uc.GetAttachments(companyID, id)
	if err != nil {
		return h.vendorError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get vendor attachments",
		Data:    attachments,
	})
}

func (h *VendorHandler) Portal(c *fiber.Ctx) error {
	token, err := uuidParam(c, "token")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid token",
		}, err)
	}
	vendor, questions, answers, err := h.uc.ResolveToken(token)
	if err != nil {
		return h.vendorError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get questionnaire",
		Data:    dto.NewVendorPortalView(vendor, questions, answers),
	})
}

func (h *VendorHandler) PortalSubmit(c *fiber.Ctx) error {
	token, err := uuidParam(c, "token")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid token",
		}, err)
	}

	values, notes, bad := formFloatAnswers(c)
	if len(bad) > 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid answer values",
			Details: bad,
		})
	}

	complete := c.FormValue("complete") == "true"
	if err := h.uc.SubmitPortal(c.Context(), token, values, notes, complete); err != nil {
		if errors.Is(err, usecase.ErrInvalidAnswerValue) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: err.Error(),
			}, err)
		}
		return h.vendorError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success submit questionnaire",
	})
}

func (h *VendorHandler) PortalUpload(c *fiber.Ctx) error {
	token, err := uuidParam(c, "token")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid token",
		}, err)
	}
	file, err := c.FormFile("file")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "file is required",
		}, err)
	}
	if file.Size > 10*1024*1024 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "file size is too large (max 10MB)",
		})
	}

	savePath := filepath.Join(config.LoadAppConfig().UploadDir, "vendors", uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "cannot save file"}, err)
	}

	attachment, err := h.uc.SaveAttachment(token, file.Filename, savePath, c.FormValue("description"))
	if err != nil {
		return h.vendorError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success upload attachment",
		Data:    attachment,
	})
}

func (h *VendorHandler) vendorError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "vendor not found",
		}, err)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "vendor operation failed"}, err)
}
