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

type ReclamationController struct {
	reclamationService *services.ReclamationService
	maxFileSize        int64
	logger             *zap.Logger
}

func NewReclamationController(service *services.ReclamationService, maxFileSize int64, logger *zap.Logger) *ReclamationController {
	return &ReclamationController{reclamationService: service, maxFileSize: maxFileSize, logger: logger}
}

func (c *ReclamationController) GetReclamations(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	reclamations, total, err := c.reclamationService.GetReclamations(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, reclamations, "Réclamations récupérées avec succès", http.StatusOK, total)
}

// GetDepartmentReclamations liste les réclamations d'un service. Un chef de
// service ne voit que son propre service, l'admin n'a pas cette contrainte.
func (c *ReclamationController) GetDepartmentReclamations(ctx echo.Context) error {
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
	reclamations, total, err := c.reclamationService.GetDepartmentReclamations(ctx.Request().Context(), departmentID, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, reclamations, "Réclamations récupérées avec succès", http.StatusOK, total)
}

func (c *ReclamationController) FindReclamation(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.reclamationService.FindReclamation(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Réclamation trouvée", http.StatusOK)
}

func (c *ReclamationController) CreateReclamation(ctx echo.Context) error {
	var payload dto.CreateReclamationDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corps de requête invalide"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var creatorID *uint64
	if id, err := middleware.UserIDFromContext(ctx.Request().Context()); err == nil {
		creatorID = &id
	}
	res, err := c.reclamationService.CreateReclamation(ctx.Request().Context(), payload, creatorID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Réclamation créée avec succès", http.StatusCreated)
}

func (c *ReclamationController) UpdateReclamation(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateReclamationDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corps de requête invalide"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var userID *uint64
	if uid, err := middleware.UserIDFromContext(ctx.Request().Context()); err == nil {
		userID = &uid
	}
	res, err := c.reclamationService.UpdateReclamation(ctx.Request().Context(), id, payload, userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Réclamation mise à jour avec succès", http.StatusOK)
}

func (c *ReclamationController) DeleteReclamation(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.reclamationService.DeleteReclamation(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Réclamation supprimée avec succès", http.StatusOK)
}

func (c *ReclamationController) AddComment(ctx echo.Context) error {
	reclamationID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	authorID, err := middleware.UserIDFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.CreateReclamationCommentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "corps de requête invalide"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.reclamationService.AddComment(ctx.Request().Context(), reclamationID, authorID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Commentaire ajouté avec succès", http.StatusCreated)
}

func (c *ReclamationController) GetComments(ctx echo.Context) error {
	reclamationID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	comments, err := c.reclamationService.GetComments(ctx.Request().Context(), reclamationID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, comments, "Commentaires récupérés avec succès", http.StatusOK)
}

func (c *ReclamationController) GetHistory(ctx echo.Context) error {
	reclamationID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	history, err := c.reclamationService.GetHistory(ctx.Request().Context(), reclamationID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, history, "Historique récupéré avec succès", http.StatusOK)
}

// AddAttachment attend un champ multipart "file" obligatoire.
func (c *ReclamationController) AddAttachment(ctx echo.Context) error {
	reclamationID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	uploaderID, err := middleware.UserIDFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "fichier manquant"), c.logger)
	}
	if c.maxFileSize > 0 && fileHeader.Size > c.maxFileSize {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "fichier trop volumineux"), c.logger)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "fichier illisible"), c.logger)
	}
	defer file.Close()
	res, err := c.reclamationService.AddAttachment(ctx.Request().Context(), reclamationID, uploaderID, file, fileHeader.Filename, fileHeader.Size)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Pièce jointe ajoutée avec succès", http.StatusCreated)
}

func (c *ReclamationController) GetAttachments(ctx echo.Context) error {
	reclamationID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	attachments, err := c.reclamationService.GetAttachments(ctx.Request().Context(), reclamationID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, attachments, "Pièces jointes récupérées avec succès", http.StatusOK)
}

func (c *ReclamationController) DeleteAttachment(ctx echo.Context) error {
	attachmentID, err := parseIDParam(ctx, "attachmentId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.reclamationService.DeleteAttachment(ctx.Request().Context(), attachmentID); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Pièce jointe supprimée avec succès", http.StatusOK)
}
