package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/usecase"
	"github.com/hubcompliance/compliance-hub/internal/util"
	"gorm.io/gorm"
)

type CourseHandler struct {
	uc *usecase.CourseUsecase
}

func NewCourseHandler(uc *usecase.CourseUsecase) *CourseHandler {
	return &CourseHandler{uc: uc}
}

func (h *CourseHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/courses", h.ListCourses)
	app.Get("/courses/:id", h.GetCourse)
	app.Get("/companies/:companyId/enrollments", h.ListEnrollments)
	app.Post("/companies/:companyId/enrollments", h.Enroll)
	app.Get("/enrollments/:id/progress", h.Progress)
	app.Post("/enrollments/:id/modules/:moduleId/complete", h.CompleteModule)
	app.Get("/enrollments/:id/certificate", h.Certificate)
}

func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	courses, err := h.uc.ListCourses()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list courses"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get courses",
		Data:    courses,
	})
}

func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid course id",
		}, err)
	}
	course, modules, err := h.uc.GetCourse(id)
	if err != nil {
		return h.courseError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get course",
		Data: fiber.Map{
			"course":  course,
			"modules": modules,
		},
	})
}

func (h *CourseHandler) ListEnrollments(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	enrollments, err := h.uc.ListEnrollments(companyID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list enrollments"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get enrollments",
		Data:    enrollments,
	})
}

func (h *CourseHandler) Enroll(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	var enrollment model.Enrollment
	if err := c.BodyParser(&enrollment); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	enrollment.CompanyID = companyID
	if err := h.uc.Enroll(&enrollment); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to enroll"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success enroll",
		Data:    enrollment,
	})
}

func (h *CourseHandler) Progress(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid enrollment id",
		}, err)
	}
	progress, err := h.uc.Progress(id)
	if err != nil {
		return h.courseError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get progress",
		Data:    progress,
	})
}

func (h *CourseHandler) CompleteModule(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid enrollment id",
		}, err)
	}
	moduleID, err := strconv.ParseUint(c.Params("moduleId"), 10, 32)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid module id",
		}, err)
	}
	progress, err := h.uc.CompleteModule(id, uint(moduleID))
	if err != nil {
		return h.courseError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success complete module",
		Data:    progress,
	})
}

func (h *CourseHandler) Certificate(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid enrollment id",
		}, err)
	}
	certificate, err := h.uc.GetCertificate(id)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "certificate not issued",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get certificate",
		Data:    certificate,
	})
}

func (h *CourseHandler) courseError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "record not found",
		}, err)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "course operation failed"}, err)
}
