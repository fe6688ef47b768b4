package services

import (
	"context"
	"errors"
	"net/http"

	"hospital-system/internal/dto"
	"hospital-system/internal/entities"
	"hospital-system/internal/repositories"
	apperrors "hospital-system/pkg/errors"
	"hospital-system/pkg/types"

	"go.uber.org/zap"
)

type RoleService struct {
	roleRepository repositories.RoleRepositoryInterface
	logger         *zap.Logger
}

func NewRoleService(roleRepository repositories.RoleRepositoryInterface, logger *zap.Logger) *RoleService {
	return &RoleService{
		roleRepository: roleRepository,
		logger:         logger,
	}
}

func mapRoleToDTO(role *entities.Role) dto.RoleDTO {
	return dto.RoleDTO{
		ID:        role.ID,
		Name:      role.Name,
		CreatedAt: dto.FormatTime(role.CreatedAt),
		UpdatedAt: dto.FormatTime(role.UpdatedAt),
	}
}

func (s *RoleService) GetRoles(ctx context.Context, filter types.Filter) ([]dto.RoleDTO, uint64, error) {
	roles, total, err := s.roleRepository.GetRoles(ctx, filter)
	if err != nil {
		s.logger.Error("échec de la récupération des rôles", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.RoleDTO, 0, len(roles))
	for i := range roles {
		result = append(result, mapRoleToDTO(&roles[i]))
	}
	return result, total, nil
}

func (s *RoleService) FindRole(ctx context.Context, id uint64) (*dto.RoleDTO, error) {
	role, err := s.roleRepository.FindRole(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapRoleToDTO(role)
	return &result, nil
}

func (s *RoleService) checkNameIsFree(ctx context.Context, name string, selfID uint64) error {
	existing, err := s.roleRepository.FindRoleByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return apperrors.NewHttpError(http.StatusConflict, "un rôle portant ce nom existe déjà", nil, nil)
	}
	return nil
}

func (s *RoleService) CreateRole(ctx context.Context, payload dto.CreateRoleDTO) (*dto.RoleDTO, error) {
	if err := s.checkNameIsFree(ctx, payload.Name, 0); err != nil {
		return nil, err
	}
	role, err := s.roleRepository.CreateRole(ctx, entities.Role{Name: payload.Name})
	if err != nil {
		s.logger.Error("échec de la création du rôle", zap.Error(err))
		return nil, err
	}
	result := mapRoleToDTO(role)
	return &result, nil
}

func (s *RoleService) UpdateRole(ctx context.Context, id uint64, payload dto.UpdateRoleDTO) (*dto.RoleDTO, error) {
	if payload.Name != nil {
		if err := s.checkNameIsFree(ctx, *payload.Name, id); err != nil {
			return nil, err
		}
	}
	role, err := s.roleRepository.UpdateRole(ctx, id, payload)
	if err != nil {
		s.logger.Error("échec de la mise à jour du rôle", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	result := mapRoleToDTO(role)
	return &result, nil
}

func (s *RoleService) DeleteRole(ctx context.Context, id uint64) error {
	references, err := s.roleRepository.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if references > 0 {
		return apperrors.NewHttpError(http.StatusConflict,
			"impossible de supprimer: des utilisateurs portent encore ce rôle", nil, nil)
	}
	if err := s.roleRepository.DeleteRole(ctx, id); err != nil {
		s.logger.Error("échec de la suppression du rôle", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}
