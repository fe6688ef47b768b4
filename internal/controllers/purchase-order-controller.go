package controllers

import (
	"net/http"

	"hospital-system/internal/dto"
	"hospital-system/internal/services"
	"hospital-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type PurchaseOrderController struct {
	purchaseOrderService *services.PurchaseOrderService
	maxFileSize          int64
	logger               *zap.Logger
}

func NewPurchaseOrderController(service *services.PurchaseOrderService, maxFileSize int64, logger *zap.Logger) *PurchaseOrderController {
	return &PurchaseOrderController{purchaseOrderService: service, maxFileSize: maxFileSize, logger: logger}
}

func (c *PurchaseOrderController) GetPurchaseOrders(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	orders, total, err := c.purchaseOrderService.GetPurchaseOrders(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, orders, "Bons de commande récupérés avec succès", http.StatusOK, total)
}

func (c *PurchaseOrderController) FindPurchaseOrder(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.purchaseOrderService.FindPurchaseOrder(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Bon de commande trouvé", http.StatusOK)
}

// CreatePurchaseOrder accepte du multipart: les champs du bon plus un
// document scanné optionnel sous le champ "document".
func (c *PurchaseOrderController) CreatePurchaseOrder(ctx echo.Context) error {
	var payload dto.CreatePurchaseOrderDTO
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
	res, err := c.purchaseOrderService.CreatePurchaseOrder(ctx.Request().Context(), payload, document, documentName)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Bon de commande créé avec succès", http.StatusCreated)
}

func (c *PurchaseOrderController) UpdatePurchaseOrder(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdatePurchaseOrderDTO
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
	res, err := c.purchaseOrderService.UpdatePurchaseOrder(ctx.Request().Context(), id, payload, document, documentName)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Bon de commande mis à jour avec succès", http.StatusOK)
}

func (c *PurchaseOrderController) DeletePurchaseOrder(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.purchaseOrderService.DeletePurchaseOrder(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Bon de commande supprimé avec succès", http.StatusOK)
}
