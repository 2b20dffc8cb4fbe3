package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hubcompliance/compliance-hub/internal/usecase"
	"github.com/hubcompliance/compliance-hub/internal/util"
)

type DashboardHandler struct {
	uc *usecase.DashboardUsecase
}

func NewDashboardHandler(uc *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/companies/:companyId/dashboard", h.Get)
}

func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	dashboard, err := h.uc.Build(companyID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to build dashboard"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get dashboard",
		Data:    dashboard,
	})
}
