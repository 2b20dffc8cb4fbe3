package handler

import (
	"errors"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/config"
	"github.com/hubcompliance/compliance-hub/internal/middleware"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/usecase"
	"github.com/hubcompliance/compliance-hub/internal/util"
	"gorm.io/gorm"
)

type WhistleblowingHandler struct {
	uc *usecase.WhistleblowingUsecase
}

func NewWhistleblowingHandler(uc *usecase.WhistleblowingUsecase) *WhistleblowingHandler {
	return &WhistleblowingHandler{uc: uc}
}

func (h *WhistleblowingHandler) RegisterRoutes(app *fiber.App) {
	// Public intake, rate limited since it requires no authentication.
	public := middleware.RateLimiter(10, time.Minute)
	app.Post("/whistleblowing/:companyId/reports", public, h.Submit)
	app.Get("/whistleblowing/tickets/:code", public, h.CheckTicket)
	app.Post("/whistleblowing/tickets/:code/attachments", public, h.UploadAttachment)

	app.Get("/companies/:companyId/whistleblowing/reports", h.ListReports)
	app.Post("/companies/:companyId/whistleblowing/reports/:id/reply", h.Reply)
	app.Get("/companies/:companyId/whistleblowing/stats", h.Stats)
	app.Get("/companies/:companyId/whistleblowing/config", h.GetConfig)
	app.Post("/companies/:companyId/whistleblowing/activate", h.Activate)
}

func (h *WhistleblowingHandler) Submit(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	var report model.WhistleblowingReport
	if err := c.BodyParser(&report); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	report.CompanyID = companyID

	ticket, err := h.uc.SubmitReport(c.Context(), &report)
	if err != nil {
		if errors.Is(err, usecase.ErrChannelInactive) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: err.Error(),
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to submit report"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success submit report",
		Data:    fiber.Map{"ticket_code": ticket},
	})
}

func (h *WhistleblowingHandler) CheckTicket(c *fiber.Ctx) error {
	report, err := h.uc.CheckTicket(c.Params("code"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "ticket not found",
		}, err)
	}
	// The reporter sees status and reply only, never internal fields.
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get ticket status",
		Data: fiber.Map{
			"ticket_code":      report.TicketCode,
			"status":           report.Status,
			"consultant_reply": report.ConsultantReply,
			"submitted_at":     report.SubmittedAt,
		},
	})
}

func (h *WhistleblowingHandler) UploadAttachment(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "file is required",
		}, err)
	}

	savePath := filepath.Join(config.LoadAppConfig().UploadDir, "whistleblowing", uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "cannot save file"}, err)
	}

	attachment, err := h.uc.AddAttachment(c.Params("code"), file.Filename, savePath)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "ticket not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success upload attachment",
		Data:    attachment,
	})
}

func (h *WhistleblowingHandler) ListReports(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	reports, err := h.uc.ListReports(companyID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list reports"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get reports",
		Data:    reports,
	})
}

func (h *WhistleblowingHandler) Reply(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "report")
	if err != nil {
		return err
	}
	report, err := h.uc.Reply(companyID, id, c.FormValue("reply"), c.FormValue("status"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "report not found",
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to reply to report"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success reply to report",
		Data:    report,
	})
}

func (h *WhistleblowingHandler) Stats(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	year, _ := strconv.Atoi(c.Query("year"))
	count, err := h.uc.YearCount(companyID, year)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to count reports"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get whistleblowing stats",
		Data:    fiber.Map{"reports": count},
	})
}

func (h *WhistleblowingHandler) GetConfig(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	config, err := h.uc.GetConfig(companyID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "whistleblowing not configured",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get whistleblowing config",
		Data:    config,
	})
}

func (h *WhistleblowingHandler) Activate(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	if err := h.uc.Activate(companyID, c.FormValue("package_name")); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to activate whistleblowing"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success activate whistleblowing",
	})
}
