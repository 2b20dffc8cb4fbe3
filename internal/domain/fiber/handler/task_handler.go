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

type TaskHandler struct {
	uc *usecase.TaskUsecase
}

func NewTaskHandler(uc *usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

func (h *TaskHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/tasks", h.ListAll)
	app.Post("/tasks", h.Create)
	app.Get("/tasks/:id", h.Get)
	app.Put("/tasks/:id", h.Update)
	app.Post("/tasks/reminders", h.SendReminders)
	app.Get("/companies/:companyId/tasks", h.ListByCompany)
}

func (h *TaskHandler) ListAll(c *fiber.Ctx) error {
	tasks, err := h.uc.ListAll()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list tasks"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get tasks",
		Data:    tasks,
	})
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var task model.Task
	if err := c.BodyParser(&task); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := h.uc.Create(&task); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to create task"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create task",
		Data:    task,
	})
}

func (h *TaskHandler) Get(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid task id",
		}, err)
	}
	task, err := h.uc.Get(id)
	if err != nil {
		return h.taskError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get task",
		Data:    task,
	})
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid task id",
		}, err)
	}
	var task model.Task
	if err := c.BodyParser(&task); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	task.ID = id
	if err := h.uc.Update(&task); err != nil {
		return h.taskError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update task",
		Data:    task,
	})
}

// SendReminders triggers an immediate reminder pass, outside the scheduled
// loop.
func (h *TaskHandler) SendReminders(c *fiber.Ctx) error {
	sent, err := h.uc.SendOverdueReminders(c.Context(), time.Now())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to send reminders"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success send reminders",
		Data:    fiber.Map{"sent": sent},
	})
}

func (h *TaskHandler) ListByCompany(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	tasks, err := h.uc.ListByCompany(companyID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list tasks"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get tasks",
		Data:    tasks,
	})
}

func (h *TaskHandler) taskError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "task not found",
		}, err)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "task operation failed"}, err)
}
