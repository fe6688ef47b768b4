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

const equipmentModelTable = "equipment_models"

var (
	equipmentModelAllowedFilterFields = map[string]string{"category_id": "m.category_id"}
	equipmentModelAllowedSortFields   = map[string]string{"id": "m.id", "name": "m.name", "created_at": "m.created_at"}
)

type EquipmentModelRepositoryInterface interface {
	GetEquipmentModels(ctx context.Context, filter types.Filter) ([]entities.EquipmentModel, uint64, error)
	FindEquipmentModel(ctx context.Context, id uint64) (*entities.EquipmentModel, error)
	CreateEquipmentModel(ctx context.Context, model entities.EquipmentModel) (*entities.EquipmentModel, error)
	UpdateEquipmentModel(ctx context.Context, id uint64, dto dto.UpdateEquipmentModelDTO) (*entities.EquipmentModel, error)
	DeleteEquipmentModel(ctx context.Context, id uint64) error
	CountReferences(ctx context.Context, id uint64) (uint64, error)
}

type EquipmentModelRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentModelRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentModelRepositoryInterface {
	return &EquipmentModelRepository{storage: storage, logger: logger}
}

const equipmentModelSelect = `SELECT m.id, m.name, m.category_id, m.manufacturer, m.created_at, m.updated_at, c.id, c.name`

func scanEquipmentModel(row pgx.Row) (*entities.EquipmentModel, error) {
	var m entities.EquipmentModel
	var c entities.Category
	err := row.Scan(&m.ID, &m.Name, &m.CategoryID, &m.Manufacturer, &m.CreatedAt, &m.UpdatedAt, &c.ID, &c.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan equipment model: %w", err)
	}
	m.Category = &c
	return &m, nil
}

func (r *EquipmentModelRepository) buildFilterQuery(filter types.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCounter := 1
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("m.name ILIKE $%d", argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	for key, value := range filter.Filter {
		if dbColumn, ok := equipmentModelAllowedFilterFields[key]; ok {
			conditions = append(conditions, buildInCondition(dbColumn, value, &argCounter, &args))
		}
	}
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *EquipmentModelRepository) countEquipmentModels(ctx context.Context, filter types.Filter) (uint64, error) {
	whereClause, args := r.buildFilterQuery(filter)
	var total uint64
	err := r.storage.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s AS m %s", equipmentModelTable, whereClause), args...).Scan(&total)
	return total, err
}

func (r *EquipmentModelRepository) GetEquipmentModels(ctx context.Context, filter types.Filter) ([]entities.EquipmentModel, uint64, error) {
	total, err := r.countEquipmentModels(ctx, filter)
	if err != nil || total == 0 {
		return []entities.EquipmentModel{}, total, err
	}
	whereClause, args := r.buildFilterQuery(filter)
	orderByClause := buildOrderByClause(filter.Sort, equipmentModelAllowedSortFields, "ORDER BY m.id DESC")
	limitClause := ""
	argCounter := len(args) + 1
	if filter.WithPagination {
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}
	query := fmt.Sprintf(`%s FROM %s m JOIN categories c ON c.id = m.category_id %s %s %s`,
		equipmentModelSelect, equipmentModelTable, whereClause, orderByClause, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	models := make([]entities.EquipmentModel, 0)
	for rows.Next() {
		model, err := scanEquipmentModel(rows)
		if err != nil {
			return nil, 0, err
		}
		models = append(models, *model)
	}
	return models, total, rows.Err()
}

func (r *EquipmentModelRepository) FindEquipmentModel(ctx context.Context, id uint64) (*entities.EquipmentModel, error) {
	query := equipmentModelSelect + ` FROM equipment_models m JOIN categories c ON c.id = m.category_id WHERE m.id = $1`
	return scanEquipmentModel(r.storage.QueryRow(ctx, query, id))
}

func (r *EquipmentModelRepository) CreateEquipmentModel(ctx context.Context, model entities.EquipmentModel) (*entities.EquipmentModel, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO equipment_models (name, category_id, manufacturer) VALUES($1, $2, $3) RETURNING id`,
		model.Name, model.CategoryID, model.Manufacturer).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.FindEquipmentModel(ctx, id)
}

func (r *EquipmentModelRepository) UpdateEquipmentModel(ctx context.Context, id uint64, dto dto.UpdateEquipmentModelDTO) (*entities.EquipmentModel, error) {
	updateBuilder := sq.Update(equipmentModelTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))
	hasChanges := false
	if dto.Name != nil {
		updateBuilder = updateBuilder.Set("name", *dto.Name)
		hasChanges = true
	}
	if dto.CategoryID != nil {
		updateBuilder = updateBuilder.Set("category_id", *dto.CategoryID)
		hasChanges = true
	}
	if dto.Manufacturer != nil {
		updateBuilder = updateBuilder.Set("manufacturer", *dto.Manufacturer)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindEquipmentModel(ctx, id)
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
	return r.FindEquipmentModel(ctx, updatedID)
}

func (r *EquipmentModelRepository) DeleteEquipmentModel(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM equipment_models WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentModelRepository) CountReferences(ctx context.Context, id uint64) (uint64, error) {
	var total uint64
	err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM equipments WHERE model_id = $1`, id).Scan(&total)
	return total, err
}
