package services

import (
	"context"
	"errors"
	"net/http"

	"hospital-system/internal/dto"
	"hospital-system/internal/entities"
	"hospital-system/internal/repositories"
	"hospital-system/pkg/config"
	apperrors "hospital-system/pkg/errors"
	"hospital-system/pkg/service"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepository  repositories.UserRepositoryInterface
	cacheRepository repositories.CacheRepositoryInterface
	jwtService      service.JWTService
	authCfg         *config.AuthConfig
	logger          *zap.Logger
}

func NewAuthService(
	userRepository repositories.UserRepositoryInterface,
	cacheRepository repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	authCfg *config.AuthConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepository:  userRepository,
		cacheRepository: cacheRepository,
		jwtService:      jwtService,
		authCfg:         authCfg,
		logger:          logger,
	}
}

func mapAuthUserToDTO(user *entities.User) dto.AuthUserDTO {
	result := dto.AuthUserDTO{
		ID:             user.ID,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Username:       user.Username,
		Email:          user.Email,
		PhotoURL:       user.PhotoURL,
		ScanningAccess: user.ScanningAccess,
	}
	if user.Role != nil {
		result.Role = dto.ShortRoleDTO{ID: user.Role.ID, Name: user.Role.Name}
	}
	if user.Department != nil {
		result.Department = &dto.ShortDepartmentDTO{ID: user.Department.ID, Name: user.Department.Name}
	}
	return result
}

// Login vérifie les identifiants. Les échecs répétés verrouillent le compte
// pendant la fenêtre configurée; tant que le compteur Redis n'a pas expiré,
// toute tentative est refusée, mot de passe correct compris.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	attempts, err := s.cacheRepository.LoginAttempts(ctx, payload.Email)
	if err != nil {
		s.logger.Warn("échec de la lecture du compteur de connexions", zap.Error(err))
	} else if attempts >= int64(s.authCfg.MaxLoginAttempts) {
		s.logger.Info("connexion refusée, compte verrouillé",
			zap.String("email", payload.Email), zap.Int64("attempts", attempts))
		return nil, apperrors.NewHttpError(http.StatusTooManyRequests,
			"trop de tentatives, compte temporairement verrouillé", nil, nil)
	}

	user, err := s.userRepository.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error(), err, nil)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		attempts, cacheErr := s.cacheRepository.IncrementLoginAttempts(ctx, payload.Email, s.authCfg.LockoutDuration)
		if cacheErr != nil {
			s.logger.Warn("échec de l'incrémentation du compteur de connexions", zap.Error(cacheErr))
		}
		s.logger.Info("tentative de connexion refusée",
			zap.String("email", payload.Email), zap.Int64("attempts", attempts))
		if attempts >= int64(s.authCfg.MaxLoginAttempts) {
			return nil, apperrors.NewHttpError(http.StatusTooManyRequests,
				"trop de tentatives, compte temporairement verrouillé", nil, nil)
		}
		return nil, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error(), err, nil)
	}

	if err := s.cacheRepository.ResetLoginAttempts(ctx, payload.Email); err != nil {
		s.logger.Warn("échec de la remise à zéro du compteur de connexions", zap.Error(err))
	}

	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}
	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID, roleName, user.DepartmentID)
	if err != nil {
		s.logger.Error("échec de la génération des jetons", zap.Error(err))
		return nil, err
	}

	s.logger.Info("connexion réussie", zap.Uint64("user_id", user.ID), zap.String("role", roleName))
	return &dto.LoginResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         mapAuthUserToDTO(user),
	}, nil
}

// RefreshToken réémet une paire de jetons à partir d'un jeton de
// rafraîchissement valide. Le rôle et le service sont relus en base, pas
// recopiés du jeton.
func (s *AuthService) RefreshToken(ctx context.Context, payload dto.RefreshTokenDTO) (*dto.LoginResponseDTO, error) {
	claims, err := s.jwtService.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusUnauthorized, err.Error(), err, nil)
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrTokenIsNotRefresh.Error(), nil, nil)
	}

	user, err := s.userRepository.FindUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error(), err, nil)
		}
		return nil, err
	}

	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}
	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID, roleName, user.DepartmentID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         mapAuthUserToDTO(user),
	}, nil
}

// Me renvoie l'instantané de l'utilisateur connecté.
func (s *AuthService) Me(ctx context.Context, userID uint64) (*dto.AuthUserDTO, error) {
	user, err := s.userRepository.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := mapAuthUserToDTO(user)
	return &result, nil
}
