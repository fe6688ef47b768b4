package controllers

import (
	"net/http"

	"hospital-system/internal/dto"
	"hospital-system/internal/services"
	"hospital-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DeliveryOrderController struct {
	deliveryOrderService *services.DeliveryOrderService
	logger               *zap.Logger
}

func NewDeliveryOrderController(service *services.DeliveryOrderService, logger *zap.Logger) *DeliveryOrderController {
	return &DeliveryOrderController{deliveryOrderService: service, logger: logger}
}

func (c *DeliveryOrderController) GetDeliveryOrders(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	orders, total, err := c.deliveryOrderService.GetDeliveryOrders(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, orders, "Bons de livraison récupérés avec succès", http.StatusOK, total)
}

func (c *DeliveryOrderController) FindDeliveryOrder(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.deliveryOrderService.FindDeliveryOrder(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Bon de livraison trouvé", http.StatusOK)
}

func (c *DeliveryOrderController) CreateDeliveryOrder(ctx echo.Context) error {
	var payload dto.CreateDeliveryOrderDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corps de requête invalide"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.deliveryOrderService.CreateDeliveryOrder(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Bon de livraison créé avec succès", http.StatusCreated)
}

func (c *DeliveryOrderController) UpdateDeliveryOrder(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateDeliveryOrderDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corps de requête invalide"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.deliveryOrderService.UpdateDeliveryOrder(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Bon de livraison mis à jour avec succès", http.StatusOK)
}

func (c *DeliveryOrderController) DeleteDeliveryOrder(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.deliveryOrderService.DeleteDeliveryOrder(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Bon de livraison supprimé avec succès", http.StatusOK)
}
