package controllers

import (
	"net/http"

	"hospital-system/internal/dto"
	"hospital-system/internal/services"
	"hospital-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EquipmentModelController struct {
	modelService *services.EquipmentModelService
	logger       *zap.Logger
}

func NewEquipmentModelController(service *services.EquipmentModelService, logger *zap.Logger) *EquipmentModelController {
	return &EquipmentModelController{modelService: service, logger: logger}
}

func (c *EquipmentModelController) GetEquipmentModels(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	models, total, err := c.modelService.GetEquipmentModels(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, models, "Modèles récupérés avec succès", http.StatusOK, total)
}

func (c *EquipmentModelController) FindEquipmentModel(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.modelService.FindEquipmentModel(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Modèle trouvé", http.StatusOK)
}

func (c *EquipmentModelController) CreateEquipmentModel(ctx echo.Context) error {
	var payload dto.CreateEquipmentModelDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corps de requête invalide"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.modelService.CreateEquipmentModel(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Modèle créé avec succès", http.StatusCreated)
}

func (c *EquipmentModelController) UpdateEquipmentModel(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateEquipmentModelDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corps de requête invalide"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.modelService.UpdateEquipmentModel(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Modèle mis à jour avec succès", http.StatusOK)
}

func (c *EquipmentModelController) DeleteEquipmentModel(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.modelService.DeleteEquipmentModel(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Modèle supprimé avec succès", http.StatusOK)
}
