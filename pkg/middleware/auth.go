package middleware

import (
	"context"
	"strings"

	"hospital-system/pkg/contextkeys"
	apperrors "hospital-system/pkg/errors"
	"hospital-system/pkg/service"
	"hospital-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Noms de rôles reconnus par les gardes. L'autorisation se fait par
// comparaison de nom, pas par matrice de permissions.
const (
	RoleAdmin       = "admin"
	RoleChefService = "chef service"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth vérifie l'en-tête Bearer et pose l'instantané utilisateur dans le
// contexte de la requête.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: en-tête Authorization vide")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: format d'en-tête Authorization invalide")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: jeton refusé", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: tentative d'accès avec un refresh token")
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.UserRoleKey, claims.RoleName)
		if claims.DepartmentID != nil {
			ctx = context.WithValue(ctx, contextkeys.DepartmentIDKey, *claims.DepartmentID)
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// AdminOnly n'autorise que le rôle "admin".
func (m *AuthMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Request().Context().Value(contextkeys.UserRoleKey).(string)
		if role != RoleAdmin {
			m.logger.Warn("AdminOnly: accès refusé", zap.String("role", role))
			return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
		}
		return next(c)
	}
}

// DepartmentOnly exige le rôle "chef service" avec un service affecté.
// Le rôle "admin" passe toujours.
func (m *AuthMiddleware) DepartmentOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		role, _ := ctx.Value(contextkeys.UserRoleKey).(string)
		if role == RoleAdmin {
			return next(c)
		}
		_, hasDepartment := ctx.Value(contextkeys.DepartmentIDKey).(uint64)
		if role != RoleChefService || !hasDepartment {
			m.logger.Warn("DepartmentOnly: accès refusé", zap.String("role", role))
			return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
		}
		return next(c)
	}
}

// UserIDFromContext extrait l'identifiant utilisateur posé par Auth.
func UserIDFromContext(ctx context.Context) (uint64, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return id, nil
}

// DepartmentIDFromContext renvoie le service de l'utilisateur courant, s'il en a un.
func DepartmentIDFromContext(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(contextkeys.DepartmentIDKey).(uint64)
	return id, ok
}

// RoleFromContext renvoie le nom de rôle posé par Auth.
func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(contextkeys.UserRoleKey).(string)
	return role, ok
}
