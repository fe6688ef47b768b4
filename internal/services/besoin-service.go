package services

import (
	"context"

	"hospital-system/internal/dto"
	"hospital-system/internal/entities"
	"hospital-system/internal/repositories"
	"hospital-system/pkg/types"

	"go.uber.org/zap"
)

type BesoinService struct {
	besoinRepository repositories.BesoinRepositoryInterface
	logger           *zap.Logger
}

func NewBesoinService(besoinRepository repositories.BesoinRepositoryInterface, logger *zap.Logger) *BesoinService {
	return &BesoinService{
		besoinRepository: besoinRepository,
		logger:           logger,
	}
}

func mapBesoinToDTO(besoin *entities.Besoin) dto.BesoinDTO {
	result := dto.BesoinDTO{
		ID:            besoin.ID,
		Title:         besoin.Title,
		Description:   besoin.Description,
		Quantity:      besoin.Quantity,
		Priority:      besoin.Priority,
		Status:        besoin.Status,
		EstimatedCost: besoin.EstimatedCost,
		CreatedAt:     dto.FormatTime(besoin.CreatedAt),
		UpdatedAt:     dto.FormatTime(besoin.UpdatedAt),
	}
	if besoin.Department != nil {
		result.Department = dto.ShortDepartmentDTO{ID: besoin.Department.ID, Name: besoin.Department.Name}
	}
	return result
}

func (s *BesoinService) GetBesoins(ctx context.Context, filter types.Filter) ([]dto.BesoinDTO, uint64, error) {
	besoins, total, err := s.besoinRepository.GetBesoins(ctx, filter)
	if err != nil {
		s.logger.Error("échec de la récupération des besoins", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.BesoinDTO, 0, len(besoins))
	for i := range besoins {
		result = append(result, mapBesoinToDTO(&besoins[i]))
	}
	return result, total, nil
}

// GetDepartmentBesoins épingle le filtre sur un service donné.
func (s *BesoinService) GetDepartmentBesoins(ctx context.Context, departmentID uint64, filter types.Filter) ([]dto.BesoinDTO, uint64, error) {
	if filter.Filter == nil {
		filter.Filter = map[string]interface{}{}
	}
	filter.Filter["department_id"] = departmentID
	return s.GetBesoins(ctx, filter)
}

func (s *BesoinService) FindBesoin(ctx context.Context, id uint64) (*dto.BesoinDTO, error) {
	besoin, err := s.besoinRepository.FindBesoin(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapBesoinToDTO(besoin)
	return &result, nil
}

func (s *BesoinService) CreateBesoin(ctx context.Context, payload dto.CreateBesoinDTO) (*dto.BesoinDTO, error) {
	besoin := entities.Besoin{
		Title:        payload.Title,
		Description:  payload.Description,
		Quantity:     payload.Quantity,
		DepartmentID: payload.DepartmentID,
		Priority:     payload.Priority,
		Status:       entities.BesoinStatusPending,
	}
	if payload.EstimatedCost.Valid {
		cost := payload.EstimatedCost.Float64
		besoin.EstimatedCost = &cost
	}
	created, err := s.besoinRepository.CreateBesoin(ctx, besoin)
	if err != nil {
		s.logger.Error("échec de la création du besoin", zap.Error(err))
		return nil, err
	}
	s.logger.Info("besoin créé", zap.Uint64("id", created.ID), zap.String("title", created.Title))
	result := mapBesoinToDTO(created)
	return &result, nil
}

func (s *BesoinService) UpdateBesoin(ctx context.Context, id uint64, payload dto.UpdateBesoinDTO) (*dto.BesoinDTO, error) {
	current, err := s.besoinRepository.FindBesoin(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Status != nil {
		if err := checkTransition(besoinTransitions, current.Status, *payload.Status); err != nil {
			return nil, err
		}
	}
	besoin, err := s.besoinRepository.UpdateBesoin(ctx, id, payload)
	if err != nil {
		s.logger.Error("échec de la mise à jour du besoin", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	result := mapBesoinToDTO(besoin)
	return &result, nil
}

func (s *BesoinService) DeleteBesoin(ctx context.Context, id uint64) error {
	if err := s.besoinRepository.DeleteBesoin(ctx, id); err != nil {
		s.logger.Error("échec de la suppression du besoin", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}
