package services

import (
	"context"
	"time"

	"hospital-system/internal/dto"
	"hospital-system/internal/entities"
	"hospital-system/internal/repositories"
	"hospital-system/pkg/types"

	"go.uber.org/zap"
)

type InternalRepairService struct {
	repairRepository repositories.InternalRepairRepositoryInterface
	logger           *zap.Logger
}

func NewInternalRepairService(repairRepository repositories.InternalRepairRepositoryInterface, logger *zap.Logger) *InternalRepairService {
	return &InternalRepairService{
		repairRepository: repairRepository,
		logger:           logger,
	}
}

func mapInternalRepairToDTO(repair *entities.InternalRepair) dto.InternalRepairDTO {
	dateAdded := repair.DateAdded
	result := dto.InternalRepairDTO{
		ID:           repair.ID,
		SparePartID:  repair.SparePartID,
		Description:  repair.Description,
		DateAdded:    dto.FormatDate(&dateAdded),
		DateRepaired: dto.FormatDate(repair.DateRepaired),
		Status:       repair.Status,
		CreatedAt:    dto.FormatTime(repair.CreatedAt),
		UpdatedAt:    dto.FormatTime(repair.UpdatedAt),
	}
	if repair.Equipment != nil {
		result.Equipment = dto.ShortEquipmentDTO{
			ID:           repair.Equipment.ID,
			Name:         repair.Equipment.Name,
			SerialNumber: repair.Equipment.SerialNumber,
		}
	}
	return result
}

func (s *InternalRepairService) GetInternalRepairs(ctx context.Context, filter types.Filter) ([]dto.InternalRepairDTO, uint64, error) {
	repairs, total, err := s.repairRepository.GetInternalRepairs(ctx, filter)
	if err != nil {
		s.logger.Error("échec de la récupération des réparations", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.InternalRepairDTO, 0, len(repairs))
	for i := range repairs {
		result = append(result, mapInternalRepairToDTO(&repairs[i]))
	}
	return result, total, nil
}

func (s *InternalRepairService) FindInternalRepair(ctx context.Context, id uint64) (*dto.InternalRepairDTO, error) {
	repair, err := s.repairRepository.FindInternalRepair(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapInternalRepairToDTO(repair)
	return &result, nil
}

func (s *InternalRepairService) CreateInternalRepair(ctx context.Context, payload dto.CreateInternalRepairDTO) (*dto.InternalRepairDTO, error) {
	dateAdded, err := parseDate(payload.DateAdded)
	if err != nil {
		return nil, err
	}
	repair, err := s.repairRepository.CreateInternalRepair(ctx, entities.InternalRepair{
		EquipmentID: payload.EquipmentID,
		SparePartID: payload.SparePartID,
		Description: payload.Description,
		DateAdded:   dateAdded,
		Status:      entities.RepairStatusPending,
	})
	if err != nil {
		s.logger.Error("échec de la création de la réparation", zap.Error(err))
		return nil, err
	}
	result := mapInternalRepairToDTO(repair)
	return &result, nil
}

func (s *InternalRepairService) UpdateInternalRepair(ctx context.Context, id uint64, payload dto.UpdateInternalRepairDTO) (*dto.InternalRepairDTO, error) {
	current, err := s.repairRepository.FindInternalRepair(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Status != nil {
		if err := checkTransition(internalRepairTransitions, current.Status, *payload.Status); err != nil {
			return nil, err
		}
	}
	dateAdded, err := parseDatePtr(payload.DateAdded)
	if err != nil {
		return nil, err
	}
	dateRepaired, err := parseDatePtr(payload.DateRepaired)
	if err != nil {
		return nil, err
	}
	// Passer en "completed" sans date de réparation fixe la date du jour.
	if payload.Status != nil && *payload.Status == entities.RepairStatusCompleted &&
		dateRepaired == nil && current.DateRepaired == nil {
		now := time.Now()
		dateRepaired = &now
	}
	repair, err := s.repairRepository.UpdateInternalRepair(ctx, id, payload, dateAdded, dateRepaired)
	if err != nil {
		s.logger.Error("échec de la mise à jour de la réparation", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	result := mapInternalRepairToDTO(repair)
	return &result, nil
}

func (s *InternalRepairService) DeleteInternalRepair(ctx context.Context, id uint64) error {
	if err := s.repairRepository.DeleteInternalRepair(ctx, id); err != nil {
		s.logger.Error("échec de la suppression de la réparation", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}
