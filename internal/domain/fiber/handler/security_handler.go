package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/hubcompliance/compliance-hub/internal/usecase"
	"github.com/hubcompliance/compliance-hub/internal/util"
	"gorm.io/gorm"
)

type SecurityHandler struct {
	uc *usecase.SecurityUsecase
}

func NewSecurityHandler(uc *usecase.SecurityUsecase) *SecurityHandler {
	return &SecurityHandler{uc: uc}
}

func (h *SecurityHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/security/controls", h.Controls)
	app.Post("/security/controls/import", h.ImportControls)
	app.Get("/companies/:companyId/security-audits", h.ListAudits)
	app.Post("/companies/:companyId/security-audits", h.StartAudit)
	app.Get("/companies/:companyId/security-audits/:id", h.GetAudit)
	app.Post("/companies/:companyId/security-audits/:id/responses", h.RecordResponse)
	app.Post("/companies/:companyId/security-audits/:id/complete", h.CompleteAudit)
	app.Get("/companies/:companyId/security-audits/:id/score", h.Score)
	app.Get("/companies/:companyId/security-audits/:id/export", h.Export)
}

func (h *SecurityHandler) Controls(c *fiber.Ctx) error {
	controls, err := h.uc.GetControls()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to load controls"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get controls",
		Data:    controls,
	})
}

func (h *SecurityHandler) ImportControls(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "file is required",
		}, err)
	}
	src, err := file.Open()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "cannot open uploaded file"}, err)
	}
	defer src.Close()

	imported, err := h.uc.ImportControls(src)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "failed to import controls",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success import controls",
		Data:    fiber.Map{"imported": imported},
	})
}

func (h *SecurityHandler) ListAudits(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	audits, err := h.uc.ListAudits(companyID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list security audits"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get security audits",
		Data:    audits,
	})
}

func (h *SecurityHandler) StartAudit(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	audit, err := h.uc.StartAudit(companyID, c.FormValue("created_by"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to start security audit"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success start security audit",
		Data:    audit,
	})
}

func (h *SecurityHandler) GetAudit(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "audit")
	if err != nil {
		return err
	}
	audit, responses, err := h.uc.GetAudit(companyID, id)
	if err != nil {
		return h.auditError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get security audit",
		Data: fiber.Map{
			"audit":     audit,
			"responses": responses,
		},
	})
}

func (h *SecurityHandler) RecordResponse(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "audit")
	if err != nil {
		return err
	}
	controlID, err := strconv.ParseUint(c.FormValue("control_id"), 10, 32)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid control id",
		}, err)
	}

	err = h.uc.RecordResponse(companyID, id, uint(controlID), c.FormValue("outcome"), c.FormValue("note"))
	if err != nil {
		return h.auditError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success record response",
	})
}

func (h *SecurityHandler) CompleteAudit(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "audit")
	if err != nil {
		return err
	}
	audit, err := h.uc.CompleteAudit(companyID, id)
	if err != nil {
		return h.auditError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success complete security audit",
		Data:    audit,
	})
}

func (h *SecurityHandler) Score(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "audit")
	if err != nil {
		return err
	}
	score, err := h.uc.Score(companyID, id)
	if err != nil {
		return h.auditError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get security score",
		Data:    score,
	})
}

func (h *SecurityHandler) Export(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "audit")
	if err != nil {
		return err
	}
	workbook, err := h.uc.ExportAudit(companyID, id)
	if err != nil {
		return h.auditError(c, err)
	}
	defer workbook.Close()

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="security-audit-%s.xlsx"`, id))
	return workbook.Write(c.Response().BodyWriter())
}

func (h *SecurityHandler) auditError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "security audit not found",
		}, err)
	case errors.Is(err, usecase.ErrAuditCompleted):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: "security audit is completed",
		}, err)
	case errors.Is(err, usecase.ErrInvalidOutcome):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		}, err)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "security audit operation failed"}, err)
}
