package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hospital-system/internal/repositories"
	apperrors "hospital-system/pkg/errors"
	"hospital-system/pkg/types"

	"go.uber.org/zap"
)

const dashboardCacheKey = "dashboard:stats"

type DashboardService struct {
	dashboardRepository repositories.DashboardRepositoryInterface
	cacheRepository     repositories.CacheRepositoryInterface
	cacheTTL            time.Duration
	logger              *zap.Logger
}

func NewDashboardService(
	dashboardRepository repositories.DashboardRepositoryInterface,
	cacheRepository repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		dashboardRepository: dashboardRepository,
		cacheRepository:     cacheRepository,
		cacheTTL:            cacheTTL,
		logger:              logger,
	}
}

// GetStats sert le tableau de bord depuis Redis quand il y est; sinon les
// agrégations sont recalculées et remises en cache.
func (s *DashboardService) GetStats(ctx context.Context) (*types.DashboardStats, error) {
	cached, err := s.cacheRepository.Get(ctx, dashboardCacheKey)
	if err == nil {
		var stats types.DashboardStats
		unmarshalErr := json.Unmarshal(cached, &stats)
		if unmarshalErr == nil {
			return &stats, nil
		}
		s.logger.Warn("cache du tableau de bord illisible, recalcul", zap.Error(unmarshalErr))
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Warn("cache du tableau de bord indisponible", zap.Error(err))
	}

	stats, err := s.dashboardRepository.GetStats(ctx)
	if err != nil {
		s.logger.Error("échec du calcul des statistiques", zap.Error(err))
		return nil, err
	}

	if payload, marshalErr := json.Marshal(stats); marshalErr == nil {
		if cacheErr := s.cacheRepository.Set(ctx, dashboardCacheKey, payload, s.cacheTTL); cacheErr != nil {
			s.logger.Warn("échec de la mise en cache du tableau de bord", zap.Error(cacheErr))
		}
	}
	return stats, nil
}

// InvalidateCache force un recalcul au prochain appel.
func (s *DashboardService) InvalidateCache(ctx context.Context) error {
	return s.cacheRepository.Delete(ctx, dashboardCacheKey)
}
