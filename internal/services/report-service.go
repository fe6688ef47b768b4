package services

import (
	"context"

	"hospital-system/internal/dto"
	"hospital-system/internal/repositories"
	"hospital-system/pkg/types"

	"go.uber.org/zap"
)

type ReportService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewReportService(equipmentRepository repositories.EquipmentRepositoryInterface, logger *zap.Logger) *ReportService {
	return &ReportService{
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

// GetEquipmentReport renvoie l'inventaire complet; l'export ignore la
// pagination, les filtres et la recherche restent appliqués.
func (s *ReportService) GetEquipmentReport(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, error) {
	filter.WithPagination = false
	equipments, _, err := s.equipmentRepository.GetEquipments(ctx, filter)
	if err != nil {
		s.logger.Error("échec de la génération du rapport d'inventaire", zap.Error(err))
		return nil, err
	}
	result := make([]dto.EquipmentDTO, 0, len(equipments))
	for i := range equipments {
		result = append(result, mapEquipmentToDTO(&equipments[i]))
	}
	return result, nil
}
