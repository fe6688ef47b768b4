package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"hospital-system/internal/dto"
	"hospital-system/internal/entities"
	apperrors "hospital-system/pkg/errors"
	"hospital-system/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const internalRepairTable = "internal_repairs"

var (
	internalRepairAllowedFilterFields = map[string]string{
		"status":        "ir.status",
		"equipment_id":  "ir.equipment_id",
		"spare_part_id": "ir.spare_part_id",
	}
	internalRepairAllowedSortFields = map[string]string{
		"id": "ir.id", "date_added": "ir.date_added", "date_repaired": "ir.date_repaired",
		"status": "ir.status", "created_at": "ir.created_at",
	}
)

type InternalRepairRepositoryInterface interface {
	GetInternalRepairs(ctx context.Context, filter types.Filter) ([]entities.InternalRepair, uint64, error)
	FindInternalRepair(ctx context.Context, id uint64) (*entities.InternalRepair, error)
	CreateInternalRepair(ctx context.Context, repair entities.InternalRepair) (*entities.InternalRepair, error)
	UpdateInternalRepair(ctx context.Context, id uint64, dto dto.UpdateInternalRepairDTO, dateAdded, dateRepaired *time.Time) (*entities.InternalRepair, error)
	DeleteInternalRepair(ctx context.Context, id uint64) error
}

type InternalRepairRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewInternalRepairRepository(storage *pgxpool.Pool, logger *zap.Logger) InternalRepairRepositoryInterface {
	return &InternalRepairRepository{storage: storage, logger: logger}
}

const internalRepairSelect = `SELECT ir.id, ir.equipment_id, ir.spare_part_id, ir.description, ir.date_added,
	ir.date_repaired, ir.status, ir.created_at, ir.updated_at,
	e.name, e.serial_number
	FROM internal_repairs "ir"
	JOIN equipments "e" ON e.id = ir.equipment_id`

func scanInternalRepair(row pgx.Row) (*entities.InternalRepair, error) {
	var repair entities.InternalRepair
	var equipment entities.Equipment
	err := row.Scan(&repair.ID, &repair.EquipmentID, &repair.SparePartID, &repair.Description, &repair.DateAdded,
		&repair.DateRepaired, &repair.Status, &repair.CreatedAt, &repair.UpdatedAt,
		&equipment.Name, &equipment.SerialNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan internal repair: %w", err)
	}
	equipment.ID = repair.EquipmentID
	repair.Equipment = &equipment
	return &repair, nil
}

func (r *InternalRepairRepository) buildFilterQuery(filter types.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCounter := 1
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(ir.description ILIKE $%d OR e.name ILIKE $%d)", argCounter, argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	for key, value := range filter.Filter {
		if dbColumn, ok := internalRepairAllowedFilterFields[key]; ok {
			conditions = append(conditions, buildInCondition(dbColumn, value, &argCounter, &args))
		}
	}
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *InternalRepairRepository) countInternalRepairs(ctx context.Context, filter types.Filter) (uint64, error) {
	whereClause, args := r.buildFilterQuery(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM internal_repairs "ir" JOIN equipments "e" ON e.id = ir.equipment_id %s`, whereClause)
	var total uint64
	err := r.storage.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}

func (r *InternalRepairRepository) GetInternalRepairs(ctx context.Context, filter types.Filter) ([]entities.InternalRepair, uint64, error) {
	total, err := r.countInternalRepairs(ctx, filter)
	if err != nil || total == 0 {
		return []entities.InternalRepair{}, total, err
	}
	whereClause, args := r.buildFilterQuery(filter)
	orderByClause := buildOrderByClause(filter.Sort, internalRepairAllowedSortFields, "ORDER BY ir.id DESC")
	limitClause := ""
	argCounter := len(args) + 1
	if filter.WithPagination {
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}
	query := fmt.Sprintf("%s %s %s %s", internalRepairSelect, whereClause, orderByClause, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	repairs := make([]entities.InternalRepair, 0)
	for rows.Next() {
		repair, err := scanInternalRepair(rows)
		if err != nil {
			return nil, 0, err
		}
		repairs = append(repairs, *repair)
	}
	return repairs, total, rows.Err()
}

func (r *InternalRepairRepository) FindInternalRepair(ctx context.Context, id uint64) (*entities.InternalRepair, error) {
	query := internalRepairSelect + " WHERE ir.id = $1"
	return scanInternalRepair(r.storage.QueryRow(ctx, query, id))
}

func (r *InternalRepairRepository) CreateInternalRepair(ctx context.Context, repair entities.InternalRepair) (*entities.InternalRepair, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO internal_repairs (equipment_id, spare_part_id, description, date_added, status)
		 VALUES($1, $2, $3, $4, $5) RETURNING id`,
		repair.EquipmentID, repair.SparePartID, repair.Description, repair.DateAdded, repair.Status).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.FindInternalRepair(ctx, id)
}

func (r *InternalRepairRepository) UpdateInternalRepair(ctx context.Context, id uint64, payload dto.UpdateInternalRepairDTO, dateAdded, dateRepaired *time.Time) (*entities.InternalRepair, error) {
	updateBuilder := sq.Update(internalRepairTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))
	hasChanges := false
	if payload.EquipmentID != nil {
		updateBuilder = updateBuilder.Set("equipment_id", *payload.EquipmentID)
		hasChanges = true
	}
	if payload.SparePartID != nil {
		updateBuilder = updateBuilder.Set("spare_part_id", *payload.SparePartID)
		hasChanges = true
	}
	if payload.Description != nil {
		updateBuilder = updateBuilder.Set("description", *payload.Description)
		hasChanges = true
	}
	if dateAdded != nil {
		updateBuilder = updateBuilder.Set("date_added", *dateAdded)
		hasChanges = true
	}
	if dateRepaired != nil {
		updateBuilder = updateBuilder.Set("date_repaired", *dateRepaired)
		hasChanges = true
	}
	if payload.Status != nil {
		updateBuilder = updateBuilder.Set("status", *payload.Status)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindInternalRepair(ctx, id)
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
	return r.FindInternalRepair(ctx, updatedID)
}

func (r *InternalRepairRepository) DeleteInternalRepair(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM internal_repairs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
