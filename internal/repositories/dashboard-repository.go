package repositories

import (
	"context"
	"fmt"

	"hospital-system/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type DashboardRepositoryInterface interface {
	GetStats(ctx context.Context) (*types.DashboardStats, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

func (r *DashboardRepository) countTable(ctx context.Context, table string) (int64, error) {
	var total int64
	err := r.storage.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&total)
	return total, err
}

func (r *DashboardRepository) groupBy(ctx context.Context, query string) ([]types.DashboardCountByGroup, error) {
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	groups := make([]types.DashboardCountByGroup, 0)
	for rows.Next() {
		var group types.DashboardCountByGroup
		if err := rows.Scan(&group.Label, &group.Count); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

// GetStats agrège tout le tableau de bord en une passe; le résultat est mis
// en cache côté service.
func (r *DashboardRepository) GetStats(ctx context.Context) (*types.DashboardStats, error) {
	stats := &types.DashboardStats{}

	countTargets := []struct {
		table string
		dest  *int64
	}{
		{"equipments", &stats.Totals.Equipments},
		{"departments", &stats.Totals.Departments},
		{"spare_parts", &stats.Totals.SpareParts},
		{"suppliers", &stats.Totals.Suppliers},
		{"reclamations", &stats.Totals.Reclamations},
		{"besoins", &stats.Totals.Besoins},
		{"purchase_orders", &stats.Totals.PurchaseOrders},
		{"delivery_orders", &stats.Totals.DeliveryOrders},
	}
	for _, target := range countTargets {
		total, err := r.countTable(ctx, target.table)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", target.table, err)
		}
		*target.dest = total
	}

	err := r.storage.QueryRow(ctx, `SELECT COALESCE(SUM(price), 0) FROM equipments`).Scan(&stats.Money.EquipmentValue)
	if err != nil {
		return nil, err
	}
	err = r.storage.QueryRow(ctx, `SELECT COALESCE(SUM(price), 0) FROM spare_parts`).Scan(&stats.Money.SparePartValue)
	if err != nil {
		return nil, err
	}

	groupTargets := []struct {
		query string
		dest  *[]types.DashboardCountByGroup
	}{
		{`SELECT c.name, COUNT(e.id) FROM equipments e JOIN categories c ON c.id = e.category_id
			GROUP BY c.name ORDER BY COUNT(e.id) DESC`, &stats.EquipmentByCategory},
		{`SELECT COALESCE(d.name, 'non affecté'), COUNT(e.id) FROM equipments e
			LEFT JOIN departments d ON d.id = e.department_id
			GROUP BY d.name ORDER BY COUNT(e.id) DESC`, &stats.EquipmentByDepartment},
		{`SELECT e.status, COUNT(*) FROM equipments e GROUP BY e.status ORDER BY e.status`, &stats.EquipmentByStatus},
		{`SELECT e.warranty_status, COUNT(*) FROM equipments e GROUP BY e.warranty_status ORDER BY e.warranty_status`, &stats.EquipmentByWarranty},
		{`SELECT CASE
				WHEN e.purchase_date IS NULL THEN 'inconnu'
				WHEN e.purchase_date > NOW() - INTERVAL '1 year' THEN '< 1 an'
				WHEN e.purchase_date > NOW() - INTERVAL '3 years' THEN '1-3 ans'
				WHEN e.purchase_date > NOW() - INTERVAL '5 years' THEN '3-5 ans'
				ELSE '> 5 ans'
			END AS tranche, COUNT(*)
			FROM equipments e GROUP BY tranche ORDER BY tranche`, &stats.EquipmentByAge},
		{`SELECT r.status, COUNT(*) FROM reclamations r GROUP BY r.status ORDER BY r.status`, &stats.ReclamationsByStatus},
		{`SELECT b.status, COUNT(*) FROM besoins b GROUP BY b.status ORDER BY b.status`, &stats.BesoinsByStatus},
	}
	for _, target := range groupTargets {
		groups, err := r.groupBy(ctx, target.query)
		if err != nil {
			return nil, err
		}
		*target.dest = groups
	}

	return stats, nil
}
