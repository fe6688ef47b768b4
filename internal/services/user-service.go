package services

import (
	"context"
	"errors"
	"io"
	"net/http"

	"hospital-system/internal/dto"
	"hospital-system/internal/entities"
	"hospital-system/internal/repositories"
	apperrors "hospital-system/pkg/errors"
	"hospital-system/pkg/filestorage"
	"hospital-system/pkg/types"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepository repositories.UserRepositoryInterface
	fileStorage    filestorage.FileStorageInterface
	logger         *zap.Logger
}

func NewUserService(
	userRepository repositories.UserRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepository: userRepository,
		fileStorage:    fileStorage,
		logger:         logger,
	}
}

func mapUserToDTO(user *entities.User) dto.UserDTO {
	result := dto.UserDTO{
		ID:             user.ID,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Username:       user.Username,
		Email:          user.Email,
		PhotoURL:       user.PhotoURL,
		ScanningAccess: user.ScanningAccess,
		CreatedAt:      dto.FormatTime(user.CreatedAt),
		UpdatedAt:      dto.FormatTime(user.UpdatedAt),
	}
	if user.Role != nil {
		result.Role = dto.ShortRoleDTO{ID: user.Role.ID, Name: user.Role.Name}
	}
	if user.Department != nil {
		result.Department = &dto.ShortDepartmentDTO{ID: user.Department.ID, Name: user.Department.Name}
	}
	return result
}

func (s *UserService) GetUsers(ctx context.Context, filter types.Filter) ([]dto.UserDTO, uint64, error) {
	users, total, err := s.userRepository.GetUsers(ctx, filter)
	if err != nil {
		s.logger.Error("échec de la récupération des utilisateurs", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		result = append(result, mapUserToDTO(&users[i]))
	}
	return result, total, nil
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepository.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapUserToDTO(user)
	return &result, nil
}

func (s *UserService) checkEmailIsFree(ctx context.Context, email string, selfID uint64) error {
	existing, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return apperrors.NewHttpError(http.StatusConflict,
			"un utilisateur avec cette adresse e-mail existe déjà", nil, nil)
	}
	return nil
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	if err := s.checkEmailIsFree(ctx, payload.Email, 0); err != nil {
		return nil, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("échec du hachage du mot de passe", zap.Error(err))
		return nil, err
	}
	user, err := s.userRepository.CreateUser(ctx, entities.User{
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		Username:       payload.Username,
		Email:          payload.Email,
		Password:       string(hashed),
		RoleID:         payload.RoleID,
		DepartmentID:   payload.DepartmentID,
		ScanningAccess: payload.ScanningAccess,
	})
	if err != nil {
		s.logger.Error("échec de la création de l'utilisateur", zap.Error(err))
		return nil, err
	}
	s.logger.Info("utilisateur créé", zap.Uint64("id", user.ID), zap.String("email", user.Email))
	result := mapUserToDTO(user)
	return &result, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	if payload.Email != nil {
		if err := s.checkEmailIsFree(ctx, *payload.Email, id); err != nil {
			return nil, err
		}
	}
	update := repositories.UserUpdate{
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		Username:       payload.Username,
		Email:          payload.Email,
		RoleID:         payload.RoleID,
		DepartmentID:   payload.DepartmentID,
		ScanningAccess: payload.ScanningAccess,
	}
	if payload.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*payload.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashedStr := string(hashed)
		update.HashedPassword = &hashedStr
	}
	user, err := s.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		s.logger.Error("échec de la mise à jour de l'utilisateur", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	result := mapUserToDTO(user)
	return &result, nil
}

// UploadPhoto remplace la photo de profil; l'ancienne est supprimée du disque.
func (s *UserService) UploadPhoto(ctx context.Context, id uint64, file io.Reader, fileName string) (*dto.UserDTO, error) {
	user, err := s.userRepository.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	path, err := s.fileStorage.Save(file, fileName, "users")
	if err != nil {
		s.logger.Error("échec de l'enregistrement de la photo", zap.Error(err))
		return nil, err
	}
	if user.PhotoURL != nil {
		if err := s.fileStorage.Delete(*user.PhotoURL); err != nil {
			s.logger.Warn("ancienne photo non supprimée", zap.Error(err))
		}
	}
	if err := s.userRepository.SetPhotoPath(ctx, id, path); err != nil {
		return nil, err
	}
	user.PhotoURL = &path
	result := mapUserToDTO(user)
	return &result, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	user, err := s.userRepository.FindUser(ctx, id)
	if err != nil {
		return err
	}
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		s.logger.Error("échec de la suppression de l'utilisateur", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	if user.PhotoURL != nil {
		if err := s.fileStorage.Delete(*user.PhotoURL); err != nil {
			s.logger.Warn("photo orpheline non supprimée", zap.Error(err))
		}
	}
	return nil
}
