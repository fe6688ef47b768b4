package services

import (
	"context"
	"net/http"

	"hospital-system/internal/dto"
	"hospital-system/internal/entities"
	"hospital-system/internal/repositories"
	apperrors "hospital-system/pkg/errors"
	"hospital-system/pkg/types"

	"go.uber.org/zap"
)

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(equipmentRepository repositories.EquipmentRepositoryInterface, logger *zap.Logger) *EquipmentService {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

func mapEquipmentToDTO(equipment *entities.Equipment) dto.EquipmentDTO {
	result := dto.EquipmentDTO{
		ID:             equipment.ID,
		Name:           equipment.Name,
		SerialNumber:   equipment.SerialNumber,
		Status:         equipment.Status,
		WarrantyStatus: equipment.WarrantyStatus,
		PurchaseDate:   dto.FormatDate(equipment.PurchaseDate),
		Price:          equipment.Price,
		CreatedAt:      dto.FormatTime(equipment.CreatedAt),
		UpdatedAt:      dto.FormatTime(equipment.UpdatedAt),
	}
	if equipment.Category != nil {
		result.Category = dto.ShortCategoryDTO{ID: equipment.Category.ID, Name: equipment.Category.Name}
	}
	if equipment.Model != nil {
		result.Model = &dto.ShortModelDTO{ID: equipment.Model.ID, Name: equipment.Model.Name}
	}
	if equipment.Department != nil {
		result.Department = &dto.ShortDepartmentDTO{ID: equipment.Department.ID, Name: equipment.Department.Name}
	}
	if equipment.Supplier != nil {
		result.Supplier = &dto.ShortSupplierDTO{ID: equipment.Supplier.ID, Name: equipment.Supplier.Name}
	}
	return result
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error) {
	equipments, total, err := s.equipmentRepository.GetEquipments(ctx, filter)
	if err != nil {
		s.logger.Error("échec de la récupération des équipements", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.EquipmentDTO, 0, len(equipments))
	for i := range equipments {
		result = append(result, mapEquipmentToDTO(&equipments[i]))
	}
	return result, total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapEquipmentToDTO(equipment)
	return &result, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	purchaseDate, err := parseDatePtr(payload.PurchaseDate)
	if err != nil {
		return nil, err
	}
	status := payload.Status
	if status == "" {
		status = entities.EquipmentStatusOperational
	}
	warrantyStatus := payload.WarrantyStatus
	if warrantyStatus == "" {
		warrantyStatus = entities.WarrantyValid
	}
	equipment, err := s.equipmentRepository.CreateEquipment(ctx, entities.Equipment{
		Name:           payload.Name,
		CategoryID:     payload.CategoryID,
		ModelID:        payload.ModelID,
		SerialNumber:   payload.SerialNumber,
		Status:         status,
		WarrantyStatus: warrantyStatus,
		PurchaseDate:   purchaseDate,
		Price:          payload.Price,
		DepartmentID:   payload.DepartmentID,
		SupplierID:     payload.SupplierID,
	})
	if err != nil {
		s.logger.Error("échec de la création de l'équipement", zap.Error(err))
		return nil, err
	}
	s.logger.Info("équipement créé", zap.Uint64("id", equipment.ID), zap.String("serial_number", equipment.SerialNumber))
	result := mapEquipmentToDTO(equipment)
	return &result, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	purchaseDate, err := parseDatePtr(payload.PurchaseDate)
	if err != nil {
		return nil, err
	}
	equipment, err := s.equipmentRepository.UpdateEquipment(ctx, id, payload, purchaseDate)
	if err != nil {
		s.logger.Error("échec de la mise à jour de l'équipement", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	result := mapEquipmentToDTO(equipment)
	return &result, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	references, err := s.equipmentRepository.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if references > 0 {
		return apperrors.NewHttpError(http.StatusConflict,
			"impossible de supprimer: des réparations ou bons de sortie référencent encore cet équipement", nil, nil)
	}
	if err := s.equipmentRepository.DeleteEquipment(ctx, id); err != nil {
		s.logger.Error("échec de la suppression de l'équipement", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}
