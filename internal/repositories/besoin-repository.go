package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"hospital-system/internal/dto"
	"hospital-system/internal/entities"
	apperrors "hospital-system/pkg/errors"
	"hospital-system/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const besoinTable = "besoins"

var (
	besoinAllowedFilterFields = map[string]string{
		"status":        "b.status",
		"priority":      "b.priority",
		"department_id": "b.department_id",
	}
	besoinAllowedSortFields = map[string]string{
		"id": "b.id", "title": "b.title", "priority": "b.priority",
		"status": "b.status", "estimated_cost": "b.estimated_cost", "created_at": "b.created_at",
	}
)

type BesoinRepositoryInterface interface {
	GetBesoins(ctx context.Context, filter types.Filter) ([]entities.Besoin, uint64, error)
	FindBesoin(ctx context.Context, id uint64) (*entities.Besoin, error)
	CreateBesoin(ctx context.Context, besoin entities.Besoin) (*entities.Besoin, error)
	UpdateBesoin(ctx context.Context, id uint64, dto dto.UpdateBesoinDTO) (*entities.Besoin, error)
	DeleteBesoin(ctx context.Context, id uint64) error
}

type BesoinRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewBesoinRepository(storage *pgxpool.Pool, logger *zap.Logger) BesoinRepositoryInterface {
	return &BesoinRepository{storage: storage, logger: logger}
}

const besoinSelect = `SELECT b.id, b.title, b.description, b.quantity, b.department_id, b.priority,
	b.status, b.estimated_cost, b.created_at, b.updated_at,
	d.name
	FROM besoins "b"
	JOIN departments "d" ON d.id = b.department_id`

func scanBesoin(row pgx.Row) (*entities.Besoin, error) {
	var besoin entities.Besoin
	var department entities.Department
	err := row.Scan(&besoin.ID, &besoin.Title, &besoin.Description, &besoin.Quantity, &besoin.DepartmentID,
		&besoin.Priority, &besoin.Status, &besoin.EstimatedCost, &besoin.CreatedAt, &besoin.UpdatedAt,
		&department.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan besoin: %w", err)
	}
	department.ID = besoin.DepartmentID
	besoin.Department = &department
	return &besoin, nil
}

func (r *BesoinRepository) buildFilterQuery(filter types.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCounter := 1
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(b.title ILIKE $%d OR b.description ILIKE $%d)", argCounter, argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	for key, value := range filter.Filter {
		if dbColumn, ok := besoinAllowedFilterFields[key]; ok {
			conditions = append(conditions, buildInCondition(dbColumn, value, &argCounter, &args))
		}
	}
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *BesoinRepository) countBesoins(ctx context.Context, filter types.Filter) (uint64, error) {
	whereClause, args := r.buildFilterQuery(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM besoins "b" %s`, whereClause)
	var total uint64
	err := r.storage.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}

func (r *BesoinRepository) GetBesoins(ctx context.Context, filter types.Filter) ([]entities.Besoin, uint64, error) {
	total, err := r.countBesoins(ctx, filter)
	if err != nil || total == 0 {
		return []entities.Besoin{}, total, err
	}
	whereClause, args := r.buildFilterQuery(filter)
	orderByClause := buildOrderByClause(filter.Sort, besoinAllowedSortFields, "ORDER BY b.id DESC")
	limitClause := ""
	argCounter := len(args) + 1
	if filter.WithPagination {
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}
	query := fmt.Sprintf("%s %s %s %s", besoinSelect, whereClause, orderByClause, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	besoins := make([]entities.Besoin, 0)
	for rows.Next() {
		besoin, err := scanBesoin(rows)
		if err != nil {
			return nil, 0, err
		}
		besoins = append(besoins, *besoin)
	}
	return besoins, total, rows.Err()
}

func (r *BesoinRepository) FindBesoin(ctx context.Context, id uint64) (*entities.Besoin, error) {
	query := besoinSelect + " WHERE b.id = $1"
	return scanBesoin(r.storage.QueryRow(ctx, query, id))
}

func (r *BesoinRepository) CreateBesoin(ctx context.Context, besoin entities.Besoin) (*entities.Besoin, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO besoins (title, description, quantity, department_id, priority, status, estimated_cost)
		 VALUES($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		besoin.Title, besoin.Description, besoin.Quantity, besoin.DepartmentID,
		besoin.Priority, besoin.Status, besoin.EstimatedCost).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.FindBesoin(ctx, id)
}

func (r *BesoinRepository) UpdateBesoin(ctx context.Context, id uint64, payload dto.UpdateBesoinDTO) (*entities.Besoin, error) {
	updateBuilder := sq.Update(besoinTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))
	hasChanges := false
	if payload.Title != nil {
		updateBuilder = updateBuilder.Set("title", *payload.Title)
		hasChanges = true
	}
	if payload.Description != nil {
		updateBuilder = updateBuilder.Set("description", *payload.Description)
		hasChanges = true
	}
	if payload.Quantity != nil {
		updateBuilder = updateBuilder.Set("quantity", *payload.Quantity)
		hasChanges = true
	}
	if payload.DepartmentID != nil {
		updateBuilder = updateBuilder.Set("department_id", *payload.DepartmentID)
		hasChanges = true
	}
	if payload.Priority != nil {
		updateBuilder = updateBuilder.Set("priority", *payload.Priority)
		hasChanges = true
	}
	if payload.Status != nil {
		updateBuilder = updateBuilder.Set("status", *payload.Status)
		hasChanges = true
	}
	if payload.EstimatedCost.Valid {
		updateBuilder = updateBuilder.Set("estimated_cost", payload.EstimatedCost.Float64)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindBesoin(ctx, id)
	}
	query, args, err := updateBuilder.Suffix("RETURNING id").ToSql()
	if err != nil {
		return nil, err
	}
	var updatedID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return r.FindBesoin(ctx, updatedID)
}

func (r *BesoinRepository) DeleteBesoin(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM besoins WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
