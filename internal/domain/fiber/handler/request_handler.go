package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/usecase"
	"github.com/hubcompliance/compliance-hub/internal/util"
	"gorm.io/gorm"
)

type RequestHandler struct {
	uc *usecase.RequestUsecase
}

func NewRequestHandler(uc *usecase.RequestUsecase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

func (h *RequestHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/companies/:companyId/data-requests", h.List)
	app.Post("/companies/:companyId/data-requests", h.Create)
	app.Get("/companies/:companyId/data-requests/overdue", h.Overdue)
	app.Get("/companies/:companyId/data-requests/:id", h.Get)
	app.Put("/companies/:companyId/data-requests/:id", h.Update)
}

func (h *RequestHandler) List(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	requests, err := h.uc.List(companyID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list data requests"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get data requests",
		Data:    requests,
	})
}

func (h *RequestHandler) Create(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	var request model.DataSubjectRequest
	if err := c.BodyParser(&request); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	request.CompanyID = companyID
	if err := h.uc.Create(&request); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to create data request"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create data request",
		Data:    request,
	})
}

func (h *RequestHandler) Overdue(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	requests, err := h.uc.Overdue(companyID, time.Now())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list overdue requests"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get overdue requests",
		Data:    requests,
	})
}

func (h *RequestHandler) Get(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "request")
	if err != nil {
		return err
	}
	request, err := h.uc.Get(companyID, id)
	if err != nil {
		return h.requestError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get data request",
		Data:    request,
	})
}

func (h *RequestHandler) Update(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "request")
	if err != nil {
		return err
	}
	var request model.DataSubjectRequest
	if err := c.BodyParser(&request); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	request.ID = id
	if err := h.uc.Update(companyID, &request); err != nil {
		return h.requestError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update data request",
		Data:    request,
	})
}

func (h *RequestHandler) requestError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "data request not found",
		}, err)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "data request operation failed"}, err)
}
