package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/usecase"
	"github.com/hubcompliance/compliance-hub/internal/util"
)

type CompanyHandler struct {
	uc *usecase.CompanyUsecase
}

func NewCompanyHandler(uc *usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

func (h *CompanyHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/companies", h.List)
	app.Post("/companies", h.Create)
	app.Get("/companies/:companyId", h.Get)
	app.Put("/companies/:companyId", h.Update)
}

func (h *CompanyHandler) List(c *fiber.Ctx) error {
	if page := c.QueryInt("page"); page > 0 {
		companies, pagination, err := h.uc.ListPage(page, c.QueryInt("page_size", 20))
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list companies"}, err)
		}
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Code:       fiber.StatusOK,
			Message:    "Success get companies",
			Data:       companies,
			Pagination: pagination,
		})
	}

	companies, err := h.uc.List()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list companies"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get companies",
		Data:    companies,
	})
}

func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var company model.Company
	if err := c.BodyParser(&company); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if company.Name == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "company name is required",
		})
	}
	if err := h.uc.Create(&company); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to create company"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create company",
		Data:    company,
	})
}

func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	id, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	company, err := h.uc.Get(id)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "company not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get company",
		Data:    company,
	})
}

func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	var company model.Company
	if err := c.BodyParser(&company); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	company.ID = id
	if err := h.uc.Update(&company); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to update company"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update company",
		Data:    company,
	})
}
