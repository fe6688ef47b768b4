package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hospital-system/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeDashboardRepo struct {
	calls int
	stats types.DashboardStats
}

func (f *fakeDashboardRepo) GetStats(_ context.Context) (*types.DashboardStats, error) {
	f.calls++
	copied := f.stats
	return &copied, nil
}

func TestGetStatsServedFromCache(t *testing.T) {
	cache := newFakeCacheRepo()
	cached := types.DashboardStats{Totals: types.DashboardTotals{Equipments: 42}}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)
	require.NoError(t, cache.Set(context.Background(), dashboardCacheKey, payload, time.Minute))

	repo := &fakeDashboardRepo{}
	svc := NewDashboardService(repo, cache, time.Minute, zap.NewNop())

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 42, stats.Totals.Equipments)
	assert.Zero(t, repo.calls)
}

func TestGetStatsRecomputesAndCachesOnMiss(t *testing.T) {
	cache := newFakeCacheRepo()
	repo := &fakeDashboardRepo{stats: types.DashboardStats{Totals: types.DashboardTotals{Equipments: 7}}}
	svc := NewDashboardService(repo, cache, time.Minute, zap.NewNop())

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 7, stats.Totals.Equipments)
	assert.Equal(t, 1, repo.calls)
	assert.NotEmpty(t, cache.values[dashboardCacheKey])
}

func TestGetStatsCorruptCacheFallsBackAndLogsCause(t *testing.T) {
	cache := newFakeCacheRepo()
	require.NoError(t, cache.Set(context.Background(), dashboardCacheKey, []byte("pas du json"), time.Minute))

	core, logs := observer.New(zap.WarnLevel)
	repo := &fakeDashboardRepo{stats: types.DashboardStats{Totals: types.DashboardTotals{Equipments: 3}}}
	svc := NewDashboardService(repo, cache, time.Minute, zap.New(core))

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Totals.Equipments)
	assert.Equal(t, 1, repo.calls)

	entries := logs.FilterMessage("cache du tableau de bord illisible, recalcul").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Contains(t, fields, "error")
	assert.NotEmpty(t, fields["error"])
}
