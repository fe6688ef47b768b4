package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"hospital-system/internal/dto"
	"hospital-system/internal/entities"
	"hospital-system/internal/repositories"
	apperrors "hospital-system/pkg/errors"
	"hospital-system/pkg/types"

	"go.uber.org/zap"
)

type DepartmentService struct {
	departmentRepository repositories.DepartmentRepositoryInterface
	logger               *zap.Logger
}

func NewDepartmentService(departmentRepository repositories.DepartmentRepositoryInterface, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{
		departmentRepository: departmentRepository,
		logger:               logger,
	}
}

func mapDepartmentToDTO(department *entities.Department) dto.DepartmentDTO {
	return dto.DepartmentDTO{
		ID:        department.ID,
		Name:      department.Name,
		CreatedAt: dto.FormatTime(department.CreatedAt),
		UpdatedAt: dto.FormatTime(department.UpdatedAt),
	}
}

func (s *DepartmentService) GetDepartments(ctx context.Context, filter types.Filter) ([]dto.DepartmentDTO, uint64, error) {
	departments, total, err := s.departmentRepository.GetDepartments(ctx, filter)
	if err != nil {
		s.logger.Error("échec de la récupération des services", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.DepartmentDTO, 0, len(departments))
	for i := range departments {
		result = append(result, mapDepartmentToDTO(&departments[i]))
	}
	return result, total, nil
}

func (s *DepartmentService) FindDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error) {
	department, err := s.departmentRepository.FindDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapDepartmentToDTO(department)
	return &result, nil
}

// checkNameIsFree refuse la création de doublons, la casse ne compte pas.
func (s *DepartmentService) checkNameIsFree(ctx context.Context, name string, selfID uint64) error {
	existing, err := s.departmentRepository.FindDepartmentByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return apperrors.NewHttpError(http.StatusConflict,
			fmt.Sprintf("un service nommé %q existe déjà", name), nil, nil)
	}
	return nil
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*dto.DepartmentDTO, error) {
	if err := s.checkNameIsFree(ctx, payload.Name, 0); err != nil {
		return nil, err
	}
	department, err := s.departmentRepository.CreateDepartment(ctx, entities.Department{Name: payload.Name})
	if err != nil {
		s.logger.Error("échec de la création du service", zap.Error(err))
		return nil, err
	}
	s.logger.Info("service créé", zap.Uint64("id", department.ID), zap.String("name", department.Name))
	result := mapDepartmentToDTO(department)
	return &result, nil
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*dto.DepartmentDTO, error) {
	if payload.Name != nil {
		if err := s.checkNameIsFree(ctx, *payload.Name, id); err != nil {
			return nil, err
		}
	}
	department, err := s.departmentRepository.UpdateDepartment(ctx, id, payload)
	if err != nil {
		s.logger.Error("échec de la mise à jour du service", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	result := mapDepartmentToDTO(department)
	return &result, nil
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, id uint64) error {
	references, err := s.departmentRepository.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if references > 0 {
		return apperrors.NewHttpError(http.StatusConflict,
			"impossible de supprimer: des enregistrements référencent encore ce service", nil, nil)
	}
	if err := s.departmentRepository.DeleteDepartment(ctx, id); err != nil {
		s.logger.Error("échec de la suppression du service", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("service supprimé", zap.Uint64("id", id))
	return nil
}
