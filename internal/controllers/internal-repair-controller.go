package controllers

import (
	"net/http"

	"hospital-system/internal/dto"
	"hospital-system/internal/services"
	"hospital-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type InternalRepairController struct {
	internalRepairService *services.InternalRepairService
	logger                *zap.Logger
}

func NewInternalRepairController(service *services.InternalRepairService, logger *zap.Logger) *InternalRepairController {
	return &InternalRepairController{internalRepairService: service, logger: logger}
}

func (c *InternalRepairController) GetInternalRepairs(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	repairs, total, err := c.internalRepairService.GetInternalRepairs(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, repairs, "Réparations récupérées avec succès", http.StatusOK, total)
}

func (c *InternalRepairController) FindInternalRepair(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.internalRepairService.FindInternalRepair(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Réparation trouvée", http.StatusOK)
}

func (c *InternalRepairController) CreateInternalRepair(ctx echo.Context) error {
	var payload dto.CreateInternalRepairDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corps de requête invalide"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.internalRepairService.CreateInternalRepair(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Réparation créée avec succès", http.StatusCreated)
}

func (c *InternalRepairController) UpdateInternalRepair(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateInternalRepairDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corps de requête invalide"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.internalRepairService.UpdateInternalRepair(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Réparation mise à jour avec succès", http.StatusOK)
}

func (c *InternalRepairController) DeleteInternalRepair(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.internalRepairService.DeleteInternalRepair(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Réparation supprimée avec succès", http.StatusOK)
}
