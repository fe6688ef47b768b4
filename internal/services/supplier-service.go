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

type SupplierService struct {
	supplierRepository repositories.SupplierRepositoryInterface
	logger             *zap.Logger
}

func NewSupplierService(supplierRepository repositories.SupplierRepositoryInterface, logger *zap.Logger) *SupplierService {
	return &SupplierService{
		supplierRepository: supplierRepository,
		logger:             logger,
	}
}

func mapSupplierToDTO(supplier *entities.Supplier) dto.SupplierDTO {
	return dto.SupplierDTO{
		ID:          supplier.ID,
		Name:        supplier.Name,
		ContactName: supplier.ContactName,
		Email:       supplier.Email,
		Phone:       supplier.Phone,
		Address:     supplier.Address,
		TaxNumber:   supplier.TaxNumber,
		Status:      supplier.Status,
		CreatedAt:   dto.FormatTime(supplier.CreatedAt),
		UpdatedAt:   dto.FormatTime(supplier.UpdatedAt),
	}
}

func (s *SupplierService) GetSuppliers(ctx context.Context, filter types.Filter) ([]dto.SupplierDTO, uint64, error) {
	suppliers, total, err := s.supplierRepository.GetSuppliers(ctx, filter)
	if err != nil {
		s.logger.Error("échec de la récupération des fournisseurs", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.SupplierDTO, 0, len(suppliers))
	for i := range suppliers {
		result = append(result, mapSupplierToDTO(&suppliers[i]))
	}
	return result, total, nil
}

func (s *SupplierService) FindSupplier(ctx context.Context, id uint64) (*dto.SupplierDTO, error) {
	supplier, err := s.supplierRepository.FindSupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapSupplierToDTO(supplier)
	return &result, nil
}

func (s *SupplierService) CreateSupplier(ctx context.Context, payload dto.CreateSupplierDTO) (*dto.SupplierDTO, error) {
	status := payload.Status
	if status == "" {
		status = entities.SupplierStatusActive
	}
	supplier, err := s.supplierRepository.CreateSupplier(ctx, entities.Supplier{
		Name:        payload.Name,
		ContactName: payload.ContactName,
		Email:       payload.Email,
		Phone:       payload.Phone,
		Address:     payload.Address,
		TaxNumber:   payload.TaxNumber,
		Status:      status,
	})
	if err != nil {
		s.logger.Error("échec de la création du fournisseur", zap.Error(err))
		return nil, err
	}
	s.logger.Info("fournisseur créé", zap.Uint64("id", supplier.ID), zap.String("name", supplier.Name))
	result := mapSupplierToDTO(supplier)
	return &result, nil
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, id uint64, payload dto.UpdateSupplierDTO) (*dto.SupplierDTO, error) {
	supplier, err := s.supplierRepository.UpdateSupplier(ctx, id, payload)
	if err != nil {
		s.logger.Error("échec de la mise à jour du fournisseur", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	result := mapSupplierToDTO(supplier)
	return &result, nil
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, id uint64) error {
	references, err := s.supplierRepository.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if references > 0 {
		return apperrors.NewHttpError(http.StatusConflict,
			"impossible de supprimer: des enregistrements référencent encore ce fournisseur", nil, nil)
	}
	if err := s.supplierRepository.DeleteSupplier(ctx, id); err != nil {
		s.logger.Error("échec de la suppression du fournisseur", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}
