package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hubcompliance/compliance-hub/internal/dto"
	"github.com/hubcompliance/compliance-hub/internal/middleware"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/usecase"
	"github.com/hubcompliance/compliance-hub/internal/util"
	"gorm.io/gorm"
)

type TreatmentHandler struct {
	uc *usecase.TreatmentUsecase
}

func NewTreatmentHandler(uc *usecase.TreatmentUsecase) *TreatmentHandler {
	return &TreatmentHandler{uc: uc}
}

func (h *TreatmentHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/companies/:companyId/treatments", h.List)
	app.Post("/companies/:companyId/treatments", h.Create)
	// Registered before the :id routes so "export" is not read as an id.
	app.Get("/companies/:companyId/treatments/export", h.Export)
	app.Get("/companies/:companyId/treatments/:id", h.Get)
	app.Put("/companies/:companyId/treatments/:id", h.Update)
	app.Delete("/companies/:companyId/treatments/:id", h.Delete)
	app.Get("/companies/:companyId/treatments/:id/checklist", h.Checklist)
	app.Post("/companies/:companyId/treatments/:id/checklist", h.SubmitChecklist)
	app.Post("/companies/:companyId/treatments/:id/suggest", middleware.RateLimiter(5, time.Minute), h.Suggest)
}

func (h *TreatmentHandler) List(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	treatments, err := h.uc.List(companyID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list treatments"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get treatments",
		Data:    treatments,
	})
}

func (h *TreatmentHandler) Create(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	var treatment model.Treatment
	if err := c.BodyParser(&treatment); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	treatment.CompanyID = companyID
	if err := h.uc.Create(&treatment); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to create treatment"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create treatment",
		Data:    treatment,
	})
}

func (h *TreatmentHandler) Get(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "treatment")
	if err != nil {
		return err
	}
	treatment, err := h.uc.Get(companyID, id)
	if err != nil {
		return h.notFound(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get treatment",
		Data:    treatment,
	})
}

func (h *TreatmentHandler) Update(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "treatment")
	if err != nil {
		return err
	}
	var treatment model.Treatment
	if err := c.BodyParser(&treatment); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	treatment.ID = id
	if err := h.uc.Update(companyID, &treatment); err != nil {
		return h.notFound(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update treatment",
		Data:    treatment,
	})
}

func (h *TreatmentHandler) Delete(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "treatment")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(companyID, id); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to delete treatment"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success delete treatment",
	})
}

func (h *TreatmentHandler) Checklist(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "treatment")
	if err != nil {
		return err
	}
	treatment, err := h.uc.Get(companyID, id)
	if err != nil {
		return h.notFound(c, err)
	}
	questions, answers, err := h.uc.GetChecklist(companyID, id)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to load checklist"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get checklist",
		Data:    dto.NewChecklistView(treatment, questions, answers),
	})
}

func (h *TreatmentHandler) SubmitChecklist(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "treatment")
	if err != nil {
		return err
	}
	answers, _ := formBoolAnswers(c)
	result, err := h.uc.SubmitChecklist(companyID, id, answers)
	if err != nil {
		return h.notFound(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success submit checklist",
		Data: fiber.Map{
			"risk_score":    result.Score,
			"risk_level":    result.Tier,
			"dpia_required": result.DPIARequired,
		},
	})
}

func (h *TreatmentHandler) Export(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	workbook, err := h.uc.ExportRegister(companyID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to export register"}, err)
	}
	defer workbook.Close()

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="registro-trattamenti-%s.xlsx"`, companyID))
	return workbook.Write(c.Response().BodyWriter())
}

func (h *TreatmentHandler) Suggest(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "treatment")
	if err != nil {
		return err
	}
	suggestion, err := h.uc.SuggestMeasures(c.Context(), companyID, id)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to generate suggestion"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success generate suggestion",
		Data:    fiber.Map{"suggestion": suggestion},
	})
}

func (h *TreatmentHandler) notFound(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "treatment not found",
		}, err)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "treatment operation failed"}, err)
}
