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

const categoryTable = "categories"

var categoryAllowedSortFields = map[string]string{"id": "c.id", "name": "c.name", "created_at": "c.created_at"}

type CategoryRepositoryInterface interface {
	GetCategories(ctx context.Context, filter types.Filter) ([]entities.Category, uint64, error)
	FindCategory(ctx context.Context, id uint64) (*entities.Category, error)
	CreateCategory(ctx context.Context, category entities.Category) (*entities.Category, error)
	UpdateCategory(ctx context.Context, id uint64, dto dto.UpdateCategoryDTO) (*entities.Category, error)
	DeleteCategory(ctx context.Context, id uint64) error
	CountReferences(ctx context.Context, id uint64) (uint64, error)
}

type CategoryRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCategoryRepository(storage *pgxpool.Pool, logger *zap.Logger) CategoryRepositoryInterface {
	return &CategoryRepository{storage: storage, logger: logger}
}

func scanCategory(row pgx.Row) (*entities.Category, error) {
	var c entities.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepository) buildFilterQuery(filter types.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCounter := 1
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("c.name ILIKE $%d", argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *CategoryRepository) countCategories(ctx context.Context, filter types.Filter) (uint64, error) {
	whereClause, args := r.buildFilterQuery(filter)
	var total uint64
	err := r.storage.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s AS c %s", categoryTable, whereClause), args...).Scan(&total)
	return total, err
}

func (r *CategoryRepository) GetCategories(ctx context.Context, filter types.Filter) ([]entities.Category, uint64, error) {
	total, err := r.countCategories(ctx, filter)
	if err != nil || total == 0 {
		return []entities.Category{}, total, err
	}
	whereClause, args := r.buildFilterQuery(filter)
	orderByClause := buildOrderByClause(filter.Sort, categoryAllowedSortFields, "ORDER BY c.id DESC")
	limitClause := ""
	argCounter := len(args) + 1
	if filter.WithPagination {
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}
	query := fmt.Sprintf(`SELECT c.id, c.name, c.description, c.created_at, c.updated_at FROM %s c %s %s %s`, categoryTable, whereClause, orderByClause, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	categories := make([]entities.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, 0, err
		}
		categories = append(categories, *category)
	}
	return categories, total, rows.Err()
}

func (r *CategoryRepository) FindCategory(ctx context.Context, id uint64) (*entities.Category, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM categories WHERE id = $1`
	return scanCategory(r.storage.QueryRow(ctx, query, id))
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, category entities.Category) (*entities.Category, error) {
	query := `INSERT INTO categories (name, description) VALUES($1, $2) RETURNING id, name, description, created_at, updated_at`
	return scanCategory(r.storage.QueryRow(ctx, query, category.Name, category.Description))
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, id uint64, dto dto.UpdateCategoryDTO) (*entities.Category, error) {
	updateBuilder := sq.Update(categoryTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))
	hasChanges := false
	if dto.Name != nil {
		updateBuilder = updateBuilder.Set("name", *dto.Name)
		hasChanges = true
	}
	if dto.Description != nil {
		updateBuilder = updateBuilder.Set("description", *dto.Description)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindCategory(ctx, id)
	}
	query, args, err := updateBuilder.Suffix("RETURNING id, name, description, created_at, updated_at").ToSql()
	if err != nil {
		return nil, err
	}
	return scanCategory(r.storage.QueryRow(ctx, query, args...))
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) CountReferences(ctx context.Context, id uint64) (uint64, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM equipments WHERE category_id = $1) +
			(SELECT COUNT(*) FROM equipment_models WHERE category_id = $1) +
			(SELECT COUNT(*) FROM spare_parts WHERE category_id = $1)`
	var total uint64
	err := r.storage.QueryRow(ctx, query, id).Scan(&total)
	return total, err
}
