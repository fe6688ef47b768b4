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

type EquipmentModelService struct {
	modelRepository    repositories.EquipmentModelRepositoryInterface
	categoryRepository repositories.CategoryRepositoryInterface
	logger             *zap.Logger
}

func NewEquipmentModelService(
	modelRepository repositories.EquipmentModelRepositoryInterface,
	categoryRepository repositories.CategoryRepositoryInterface,
	logger *zap.Logger,
) *EquipmentModelService {
	return &EquipmentModelService{
		modelRepository:    modelRepository,
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

func mapEquipmentModelToDTO(model *entities.EquipmentModel) dto.EquipmentModelDTO {
	result := dto.EquipmentModelDTO{
		ID:           model.ID,
		Name:         model.Name,
		Manufacturer: model.Manufacturer,
		CreatedAt:    dto.FormatTime(model.CreatedAt),
		UpdatedAt:    dto.FormatTime(model.UpdatedAt),
	}
	if model.Category != nil {
		result.Category = dto.ShortCategoryDTO{ID: model.Category.ID, Name: model.Category.Name}
	}
	return result
}

func (s *EquipmentModelService) GetEquipmentModels(ctx context.Context, filter types.Filter) ([]dto.EquipmentModelDTO, uint64, error) {
	models, total, err := s.modelRepository.GetEquipmentModels(ctx, filter)
	if err != nil {
		s.logger.Error("échec de la récupération des modèles", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.EquipmentModelDTO, 0, len(models))
	for i := range models {
		result = append(result, mapEquipmentModelToDTO(&models[i]))
	}
	return result, total, nil
}

func (s *EquipmentModelService) FindEquipmentModel(ctx context.Context, id uint64) (*dto.EquipmentModelDTO, error) {
	model, err := s.modelRepository.FindEquipmentModel(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapEquipmentModelToDTO(model)
	return &result, nil
}

// checkCategoryExists renvoie 400 plutôt que l'erreur FK brute de Postgres.
func (s *EquipmentModelService) checkCategoryExists(ctx context.Context, categoryID uint64) error {
	if _, err := s.categoryRepository.FindCategory(ctx, categoryID); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "la catégorie indiquée n'existe pas", err, nil)
	}
	return nil
}

func (s *EquipmentModelService) CreateEquipmentModel(ctx context.Context, payload dto.CreateEquipmentModelDTO) (*dto.EquipmentModelDTO, error) {
	if err := s.checkCategoryExists(ctx, payload.CategoryID); err != nil {
		return nil, err
	}
	model, err := s.modelRepository.CreateEquipmentModel(ctx, entities.EquipmentModel{
		Name:         payload.Name,
		CategoryID:   payload.CategoryID,
		Manufacturer: payload.Manufacturer,
	})
	if err != nil {
		s.logger.Error("échec de la création du modèle", zap.Error(err))
		return nil, err
	}
	result := mapEquipmentModelToDTO(model)
	return &result, nil
}

func (s *EquipmentModelService) UpdateEquipmentModel(ctx context.Context, id uint64, payload dto.UpdateEquipmentModelDTO) (*dto.EquipmentModelDTO, error) {
	if payload.CategoryID != nil {
		if err := s.checkCategoryExists(ctx, *payload.CategoryID); err != nil {
			return nil, err
		}
	}
	model, err := s.modelRepository.UpdateEquipmentModel(ctx, id, payload)
	if err != nil {
		s.logger.Error("échec de la mise à jour du modèle", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	result := mapEquipmentModelToDTO(model)
	return &result, nil
}

func (s *EquipmentModelService) DeleteEquipmentModel(ctx context.Context, id uint64) error {
	references, err := s.modelRepository.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if references > 0 {
		return apperrors.NewHttpError(http.StatusConflict,
			"impossible de supprimer: des équipements référencent encore ce modèle", nil, nil)
	}
	if err := s.modelRepository.DeleteEquipmentModel(ctx, id); err != nil {
		s.logger.Error("échec de la suppression du modèle", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}
