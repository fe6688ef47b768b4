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

type CategoryService struct {
	categoryRepository repositories.CategoryRepositoryInterface
	logger             *zap.Logger
}

func NewCategoryService(categoryRepository repositories.CategoryRepositoryInterface, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

func mapCategoryToDTO(category *entities.Category) dto.CategoryDTO {
	return dto.CategoryDTO{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   dto.FormatTime(category.CreatedAt),
		UpdatedAt:   dto.FormatTime(category.UpdatedAt),
	}
}

func (s *CategoryService) GetCategories(ctx context.Context, filter types.Filter) ([]dto.CategoryDTO, uint64, error) {
	categories, total, err := s.categoryRepository.GetCategories(ctx, filter)
	if err != nil {
		s.logger.Error("échec de la récupération des catégories", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.CategoryDTO, 0, len(categories))
	for i := range categories {
		result = append(result, mapCategoryToDTO(&categories[i]))
	}
	return result, total, nil
}

func (s *CategoryService) FindCategory(ctx context.Context, id uint64) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepository.FindCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapCategoryToDTO(category)
	return &result, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepository.CreateCategory(ctx, entities.Category{
		Name:        payload.Name,
		Description: payload.Description,
	})
	if err != nil {
		s.logger.Error("échec de la création de la catégorie", zap.Error(err))
		return nil, err
	}
	s.logger.Info("catégorie créée", zap.Uint64("id", category.ID), zap.String("name", category.Name))
	result := mapCategoryToDTO(category)
	return &result, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint64, payload dto.UpdateCategoryDTO) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepository.UpdateCategory(ctx, id, payload)
	if err != nil {
		s.logger.Error("échec de la mise à jour de la catégorie", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	result := mapCategoryToDTO(category)
	return &result, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint64) error {
	references, err := s.categoryRepository.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if references > 0 {
		return apperrors.NewHttpError(http.StatusConflict,
			"impossible de supprimer: des enregistrements référencent encore cette catégorie", nil, nil)
	}
	if err := s.categoryRepository.DeleteCategory(ctx, id); err != nil {
		s.logger.Error("échec de la suppression de la catégorie", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}
