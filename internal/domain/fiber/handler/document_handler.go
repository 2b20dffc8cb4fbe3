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

type DocumentHandler struct {
	uc *usecase.DocumentUsecase
}

func NewDocumentHandler(uc *usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

func (h *DocumentHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/documents/categories", h.Categories)
	app.Get("/documents/templates", h.Templates)
	app.Get("/companies/:companyId/documents", h.List)
	app.Post("/companies/:companyId/documents", h.Create)
	app.Get("/companies/:companyId/documents/:id", h.Get)
	app.Post("/companies/:companyId/documents/:id/versions", h.UploadVersion)
}

func (h *DocumentHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.uc.GetCategories()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to load categories"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get categories",
		Data:    categories,
	})
}

func (h *DocumentHandler) Templates(c *fiber.Ctx) error {
	templates, err := h.uc.GetTemplates()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to load templates"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get templates",
		Data:    templates,
	})
}

func (h *DocumentHandler) List(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	documents, err := h.uc.List(companyID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list documents"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get documents",
		Data:    documents,
	})
}

func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	companyID, err := companyIDParam(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid company id",
		}, err)
	}
	var document model.CompanyDocument
	if err := c.BodyParser(&document); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	document.CompanyID = companyID
	if err := h.uc.Create(&document); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to create document"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create document",
		Data:    document,
	})
}

func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "document")
	if err != nil {
		return err
	}
	document, versions, err := h.uc.Get(companyID, id)
	if err != nil {
		return h.documentError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get document",
		Data: fiber.Map{
			"document": document,
			"versions": versions,
		},
	})
}

func (h *DocumentHandler) UploadVersion(c *fiber.Ctx) error {
	companyID, id, err := tenantParams(c, "id", "document")
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

	savePath := filepath.Join(config.LoadAppConfig().UploadDir, "documents", uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "cannot save file"}, err)
	}

	version, err := h.uc.AddVersion(companyID, id, file.Filename, savePath, c.FormValue("note"), c.FormValue("uploaded_by"))
	if err != nil {
		return h.documentError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success upload document version",
		Data:    version,
	})
}

func (h *DocumentHandler) documentError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "document not found",
		}, err)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "document operation failed"}, err)
}
