package handler

import (
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hubcompliance/compliance-hub/internal/config"
	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/hubcompliance/compliance-hub/internal/usecase"
	"github.com/hubcompliance/compliance-hub/internal/util"
	"gorm.io/gorm"
)

type IncidentHandler struct {
	uc *usecase.IncidentUsecase
}

func NewIncidentHandler(uc *usecase.IncidentUsecase) *IncidentHandler {
	return &IncidentHandler{uc: uc}
}

func (h *IncidentHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/companies/:companyId/incidents", h.List)
	app.Post("/companies/:companyId/incidents", h.Create)
	app.Get("/companies/:companyId/incidents/:id", h.Get)
	app.Put("/companies/:companyId/incidents/:id", h.Update)

	app.Get("/companies/:companyId/csirt-referent", h.GetReferent)
	app.Put("/companies/:companyId/csirt-referent", h.UpsertReferent)

	app.Get("/companies/:companyId/notifications", h.ListNotifications)
	app.Post("/companies/:companyId/notifications", h.CreateNotification)
	app.Get("/companies/:companyId/notifications/:id", h.GetNotification)
	app.Put("/companies/:companyId/notifications/:id", h.UpdateNotification)
	app.Post("/companies/:companyId/notifications/:id/notify", h.MarkNotified)
	app.Post("/companies/:companyId/notifications/:id/attachments", h.UploadAttachment)
}

func (h *IncidentHandler) List(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	incidents, err := h.uc.List(companyID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list incidents"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get incidents",
		Data:    incidents,
	})
}

func (h *IncidentHandler) Create(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	var incident model.Incident
	if err := c.BodyParser(&incident); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	incident.CompanyID = companyID
	if err := h.uc.Create(&incident); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to create incident"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create incident",
		Data:    incident,
	})
}

func (h *IncidentHandler) Get(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "incident")
	if err != nil {
		return err
	}
	incident, err := h.uc.Get(companyID, id)
	if err != nil {
		return h.incidentError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get incident",
		Data:    incident,
	})
}

func (h *IncidentHandler) Update(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "incident")
	if err != nil {
		return err
	}
	var incident model.Incident
	if err := c.BodyParser(&incident); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	incident.ID = id
	if err := h.uc.Update(companyID, &incident); err != nil {
		return h.incidentError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update incident",
		Data:    incident,
	})
}

func (h *IncidentHandler) GetReferent(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	referent, err := h.uc.GetReferent(companyID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "csirt referent not appointed",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get csirt referent",
		Data:    referent,
	})
}

func (h *IncidentHandler) UpsertReferent(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	var referent model.CSIRTReferent
	if err := c.BodyParser(&referent); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	referent.CompanyID = companyID
	if err := h.uc.UpsertReferent(&referent); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to save csirt referent"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success save csirt referent",
		Data:    referent,
	})
}

func (h *IncidentHandler) ListNotifications(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	notifications, err := h.uc.ListNotifications(companyID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list notifications"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get notifications",
		Data:    notifications,
	})
}

func (h *IncidentHandler) CreateNotification(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	var notification model.IncidentNotification
	if err := c.BodyParser(&notification); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	notification.CompanyID = companyID
	if err := h.uc.CreateNotification(&notification); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to create notification"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create notification",
		Data:    notification,
	})
}

func (h *IncidentHandler) GetNotification(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "notification")
	if err != nil {
		return err
	}
	notification, attachments, err := h.uc.GetNotification(companyID, id)
	if err != nil {
		return h.incidentError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get notification",
		Data: fiber.Map{
			"notification": notification,
			"attachments":  attachments,
		},
	})
}

func (h *IncidentHandler) UpdateNotification(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "notification")
	if err != nil {
		return err
	}
	var notification model.IncidentNotification
	if err := c.BodyParser(&notification); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	notification.ID = id
	if err := h.uc.UpdateNotification(companyID, &notification); err != nil {
		return h.incidentError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update notification",
		Data:    notification,
	})
}

func (h *IncidentHandler) MarkNotified(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "notification")
	if err != nil {
		return err
	}
	notification, err := h.uc.MarkNotified(companyID, id)
	if err != nil {
		return h.incidentError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success mark notification as notified",
		Data:    notification,
	})
}

func (h *IncidentHandler) UploadAttachment(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "notification")
	if err != nil {
		return err
	}
	file, err := c.FormFile("file")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "file is required",
		}, err)
	}

	savePath := filepath.Join(config.LoadAppConfig().UploadDir, "notifications", uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "cannot save file"}, err)
	}

	attachment, err := h.uc.AddNotificationAttachment(companyID, id, file.Filename, savePath, c.FormValue("description"), c.FormValue("uploaded_by"))
	if err != nil {
		return h.incidentError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success upload attachment",
		Data:    attachment,
	})
}

func (h *IncidentHandler) incidentError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "record not found",
		}, err)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "incident operation failed"}, err)
}
