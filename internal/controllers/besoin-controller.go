package controllers

import (
	"net/http"

	"hospital-system/internal/dto"
	"hospital-system/internal/services"
	apperrors "hospital-system/pkg/errors"
	"hospital-system/pkg/middleware"
	"hospital-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type BesoinController struct {
	besoinService *services.BesoinService
	logger        *zap.Logger
}

func NewBesoinController(service *services.BesoinService, logger *zap.Logger) *BesoinController {
	return &BesoinController{besoinService: service, logger: logger}
}

func (c *BesoinController) GetBesoins(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	besoins, total, err := c.besoinService.GetBesoins(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, besoins, "Besoins récupérés avec succès", http.StatusOK, total)
}

// GetDepartmentBesoins liste les besoins d'un service, avec la même règle
// d'appartenance que pour les réclamations.
func (c *BesoinController) GetDepartmentBesoins(ctx echo.Context) error {
	departmentID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if role, _ := middleware.RoleFromContext(ctx.Request().Context()); role != middleware.RoleAdmin {
		if ownDepartment, ok := middleware.DepartmentIDFromContext(ctx.Request().Context()); ok && ownDepartment != departmentID {
			return utils.ErrorResponse(ctx, apperrors.ErrForbidden, c.logger)
		}
	}
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	besoins, total, err := c.besoinService.GetDepartmentBesoins(ctx.Request().Context(), departmentID, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, besoins, "Besoins récupérés avec succès", http.StatusOK, total)
}

func (c *BesoinController) FindBesoin(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.besoinService.FindBesoin(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Besoin trouvé", http.StatusOK)
}

func (c *BesoinController) CreateBesoin(ctx echo.Context) error {
	var payload dto.CreateBesoinDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corps de requête invalide"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.besoinService.CreateBesoin(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Besoin créé avec succès", http.StatusCreated)
}

func (c *BesoinController) UpdateBesoin(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateBesoinDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corps de requête invalide"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.besoinService.UpdateBesoin(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Besoin mis à jour avec succès", http.StatusOK)
}

func (c *BesoinController) DeleteBesoin(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.besoinService.DeleteBesoin(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Besoin supprimé avec succès", http.StatusOK)
}
