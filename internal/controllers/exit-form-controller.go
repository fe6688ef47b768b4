package controllers

import (
	"net/http"

	"hospital-system/internal/dto"
	"hospital-system/internal/services"
	"hospital-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ExitFormController struct {
	exitFormService *services.ExitFormService
	maxFileSize     int64
	logger          *zap.Logger
}

func NewExitFormController(service *services.ExitFormService, maxFileSize int64, logger *zap.Logger) *ExitFormController {
	return &ExitFormController{exitFormService: service, maxFileSize: maxFileSize, logger: logger}
}

func (c *ExitFormController) GetExitForms(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	forms, total, err := c.exitFormService.GetExitForms(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, forms, "Bons de sortie récupérés avec succès", http.StatusOK, total)
}

func (c *ExitFormController) FindExitForm(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.exitFormService.FindExitForm(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Bon de sortie trouvé", http.StatusOK)
}

// CreateExitForm accepte du multipart: les champs du bon plus un document
// scanné optionnel sous le champ "document".
func (c *ExitFormController) CreateExitForm(ctx echo.Context) error {
	var payload dto.CreateExitFormDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corps de requête invalide"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	document, documentName, err := openFormFile(ctx, "document", c.maxFileSize)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if document != nil {
		defer document.Close()
	}
	res, err := c.exitFormService.CreateExitForm(ctx.Request().Context(), payload, document, documentName)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Bon de sortie créé avec succès", http.StatusCreated)
}

func (c *ExitFormController) UpdateExitForm(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateExitFormDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corps de requête invalide"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	document, documentName, err := openFormFile(ctx, "document", c.maxFileSize)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if document != nil {
		defer document.Close()
	}
	res, err := c.exitFormService.UpdateExitForm(ctx.Request().Context(), id, payload, document, documentName)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Bon de sortie mis à jour avec succès", http.StatusOK)
}

func (c *ExitFormController) DeleteExitForm(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.exitFormService.DeleteExitForm(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Bon de sortie supprimé avec succès", http.StatusOK)
}
