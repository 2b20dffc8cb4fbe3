package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hubcompliance/compliance-hub/internal/usecase"
	"github.com/hubcompliance/compliance-hub/internal/util"
	"gorm.io/gorm"
)

type AuditHandler struct {
	uc *usecase.AuditUsecase
}

func NewAuditHandler(uc *usecase.AuditUsecase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

func (h *AuditHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/audit/questions", h.Questions)
	app.Get("/companies/:companyId/audit-sessions", h.ListSessions)
	app.Post("/companies/:companyId/audit-sessions", h.StartSession)
	app.Get("/companies/:companyId/audit-sessions/:id", h.GetSession)
	app.Post("/companies/:companyId/audit-sessions/:id/answers", h.SubmitAnswers)
	app.Post("/companies/:companyId/audit-sessions/:id/complete", h.CompleteSession)
	app.Post("/companies/:companyId/audit-sessions/:id/archive", h.ArchiveSession)
	app.Get("/companies/:companyId/audit-sessions/:id/score", h.Score)
}

func (h *AuditHandler) Questions(c *fiber.Ctx) error {
	categories, err := h.uc.GetCategories()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to load audit categories"}, err)
	}
	questions, err := h.uc.GetQuestions()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to load audit questions"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get audit questions",
		Data: fiber.Map{
			"categories": categories,
			"questions":  questions,
		},
	})
}

func (h *AuditHandler) ListSessions(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	sessions, err := h.uc.ListSessions(companyID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list audit sessions"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get audit sessions",
		Data:    sessions,
	})
}

func (h *AuditHandler) StartSession(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	session, err := h.uc.StartSession(companyID, c.FormValue("created_by"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to start audit session"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success start audit session",
		Data:    session,
	})
}

func (h *AuditHandler) GetSession(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "session")
	if err != nil {
		return err
	}
	session, answers, err := h.uc.GetSession(companyID, id)
	if err != nil {
		return h.sessionError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get audit session",
		Data: fiber.Map{
			"session": session,
			"answers": answers,
		},
	})
}

func (h *AuditHandler) SubmitAnswers(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "session")
	if err != nil {
		return err
	}
	answers, notes := formBoolAnswers(c)
	if err := h.uc.SubmitAnswers(companyID, id, answers, notes); err != nil {
		return h.sessionError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success submit audit answers",
	})
}

func (h *AuditHandler) CompleteSession(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "session")
	if err != nil {
		return err
	}
	session, err := h.uc.CompleteSession(companyID, id, c.FormValue("notes"))
	if err != nil {
		return h.sessionError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success complete audit session",
		Data:    session,
	})
}

func (h *AuditHandler) ArchiveSession(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "session")
	if err != nil {
		return err
	}
	session, err := h.uc.ArchiveSession(companyID, id)
	if err != nil {
		return h.sessionError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success archive audit session",
		Data:    session,
	})
}

func (h *AuditHandler) Score(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "session")
	if err != nil {
		return err
	}
	score, err := h.uc.Score(companyID, id)
	if err != nil {
		return h.sessionError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get audit score",
		Data:    score,
	})
}

func (h *AuditHandler) sessionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "audit session not found",
		}, err)
	case errors.Is(err, usecase.ErrSessionArchived):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: "audit session is archived",
		}, err)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "audit session operation failed"}, err)
}
