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

type SparePartService struct {
	sparePartRepository repositories.SparePartRepositoryInterface
	logger              *zap.Logger
}

func NewSparePartService(sparePartRepository repositories.SparePartRepositoryInterface, logger *zap.Logger) *SparePartService {
	return &SparePartService{
		sparePartRepository: sparePartRepository,
		logger:              logger,
	}
}

func mapSparePartToDTO(part *entities.SparePart) dto.SparePartDTO {
	result := dto.SparePartDTO{
		ID:           part.ID,
		Name:         part.Name,
		PartNumber:   part.PartNumber,
		PurchaseDate: dto.FormatDate(part.PurchaseDate),
		Price:        part.Price,
		Status:       part.Status,
		CreatedAt:    dto.FormatTime(part.CreatedAt),
		UpdatedAt:    dto.FormatTime(part.UpdatedAt),
	}
	if part.Category != nil {
		result.Category = &dto.ShortCategoryDTO{ID: part.Category.ID, Name: part.Category.Name}
	}
	if part.Supplier != nil {
		result.Supplier = &dto.ShortSupplierDTO{ID: part.Supplier.ID, Name: part.Supplier.Name}
	}
	if part.Department != nil {
		result.Department = &dto.ShortDepartmentDTO{ID: part.Department.ID, Name: part.Department.Name}
	}
	return result
}

func (s *SparePartService) GetSpareParts(ctx context.Context, filter types.Filter) ([]dto.SparePartDTO, uint64, error) {
	parts, total, err := s.sparePartRepository.GetSpareParts(ctx, filter)
	if err != nil {
		s.logger.Error("échec de la récupération des pièces détachées", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.SparePartDTO, 0, len(parts))
	for i := range parts {
		result = append(result, mapSparePartToDTO(&parts[i]))
	}
	return result, total, nil
}

func (s *SparePartService) FindSparePart(ctx context.Context, id uint64) (*dto.SparePartDTO, error) {
	part, err := s.sparePartRepository.FindSparePart(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapSparePartToDTO(part)
	return &result, nil
}

func (s *SparePartService) CreateSparePart(ctx context.Context, payload dto.CreateSparePartDTO) (*dto.SparePartDTO, error) {
	purchaseDate, err := parseDatePtr(payload.PurchaseDate)
	if err != nil {
		return nil, err
	}
	status := payload.Status
	if status == "" {
		status = entities.SparePartStatusAvailable
	}
	part, err := s.sparePartRepository.CreateSparePart(ctx, entities.SparePart{
		Name:         payload.Name,
		PartNumber:   payload.PartNumber,
		CategoryID:   payload.CategoryID,
		SupplierID:   payload.SupplierID,
		DepartmentID: payload.DepartmentID,
		PurchaseDate: purchaseDate,
		Price:        payload.Price,
		Status:       status,
	})
	if err != nil {
		s.logger.Error("échec de la création de la pièce détachée", zap.Error(err))
		return nil, err
	}
	result := mapSparePartToDTO(part)
	return &result, nil
}

func (s *SparePartService) UpdateSparePart(ctx context.Context, id uint64, payload dto.UpdateSparePartDTO) (*dto.SparePartDTO, error) {
	purchaseDate, err := parseDatePtr(payload.PurchaseDate)
	if err != nil {
		return nil, err
	}
	part, err := s.sparePartRepository.UpdateSparePart(ctx, id, payload, purchaseDate)
	if err != nil {
		s.logger.Error("échec de la mise à jour de la pièce détachée", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	result := mapSparePartToDTO(part)
	return &result, nil
}

func (s *SparePartService) DeleteSparePart(ctx context.Context, id uint64) error {
	references, err := s.sparePartRepository.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if references > 0 {
		return apperrors.NewHttpError(http.StatusConflict,
			"impossible de supprimer: des réparations référencent encore cette pièce", nil, nil)
	}
	if err := s.sparePartRepository.DeleteSparePart(ctx, id); err != nil {
		s.logger.Error("échec de la suppression de la pièce détachée", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}
