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

const sparePartTable = "spare_parts"

var (
	sparePartAllowedFilterFields = map[string]string{
		"category_id":   "p.category_id",
		"supplier_id":   "p.supplier_id",
		"department_id": "p.department_id",
		"status":        "p.status",
	}
	sparePartAllowedSortFields = map[string]string{
		"id": "p.id", "name": "p.name", "price": "p.price", "created_at": "p.created_at",
	}
)

type SparePartRepositoryInterface interface {
	GetSpareParts(ctx context.Context, filter types.Filter) ([]entities.SparePart, uint64, error)
	FindSparePart(ctx context.Context, id uint64) (*entities.SparePart, error)
	CreateSparePart(ctx context.Context, part entities.SparePart) (*entities.SparePart, error)
	UpdateSparePart(ctx context.Context, id uint64, dto dto.UpdateSparePartDTO, purchaseDate *time.Time) (*entities.SparePart, error)
	DeleteSparePart(ctx context.Context, id uint64) error
	CountReferences(ctx context.Context, id uint64) (uint64, error)
}

type SparePartRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewSparePartRepository(storage *pgxpool.Pool, logger *zap.Logger) SparePartRepositoryInterface {
	return &SparePartRepository{storage: storage, logger: logger}
}

const sparePartColumns = `p.id, p.name, p.part_number, p.category_id, p.supplier_id, p.department_id, p.purchase_date, p.price, p.status, p.created_at, p.updated_at,
	c.name, s.name, d.name`

const sparePartJoins = `LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN suppliers s ON s.id = p.supplier_id
	LEFT JOIN departments d ON d.id = p.department_id`

func scanSparePart(row pgx.Row) (*entities.SparePart, error) {
	var p entities.SparePart
	var categoryName, supplierName, departmentName *string
	err := row.Scan(&p.ID, &p.Name, &p.PartNumber, &p.CategoryID, &p.SupplierID, &p.DepartmentID,
		&p.PurchaseDate, &p.Price, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		&categoryName, &supplierName, &departmentName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan spare part: %w", err)
	}
	if p.CategoryID != nil && categoryName != nil {
		p.Category = &entities.Category{ID: *p.CategoryID, Name: *categoryName}
	}
	if p.SupplierID != nil && supplierName != nil {
		p.Supplier = &entities.Supplier{ID: *p.SupplierID, Name: *supplierName}
	}
	if p.DepartmentID != nil && departmentName != nil {
		p.Department = &entities.Department{ID: *p.DepartmentID, Name: *departmentName}
	}
	return &p, nil
}

func (r *SparePartRepository) buildFilterQuery(filter types.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCounter := 1
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(p.name ILIKE $%d OR p.part_number ILIKE $%d)", argCounter, argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	for key, value := range filter.Filter {
		if dbColumn, ok := sparePartAllowedFilterFields[key]; ok {
			conditions = append(conditions, buildInCondition(dbColumn, value, &argCounter, &args))
		}
	}
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *SparePartRepository) countSpareParts(ctx context.Context, filter types.Filter) (uint64, error) {
	whereClause, args := r.buildFilterQuery(filter)
	var total uint64
	err := r.storage.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s AS p %s", sparePartTable, whereClause), args...).Scan(&total)
	return total, err
}

func (r *SparePartRepository) GetSpareParts(ctx context.Context, filter types.Filter) ([]entities.SparePart, uint64, error) {
	total, err := r.countSpareParts(ctx, filter)
	if err != nil || total == 0 {
		return []entities.SparePart{}, total, err
	}
	whereClause, args := r.buildFilterQuery(filter)
	orderByClause := buildOrderByClause(filter.Sort, sparePartAllowedSortFields, "ORDER BY p.id DESC")
	limitClause := ""
	argCounter := len(args) + 1
	if filter.WithPagination {
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}
	query := fmt.Sprintf(`SELECT %s FROM %s p %s %s %s %s`, sparePartColumns, sparePartTable, sparePartJoins, whereClause, orderByClause, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	parts := make([]entities.SparePart, 0)
	for rows.Next() {
		part, err := scanSparePart(rows)
		if err != nil {
			return nil, 0, err
		}
		parts = append(parts, *part)
	}
	return parts, total, rows.Err()
}

func (r *SparePartRepository) FindSparePart(ctx context.Context, id uint64) (*entities.SparePart, error) {
	query := fmt.Sprintf(`SELECT %s FROM spare_parts p %s WHERE p.id = $1`, sparePartColumns, sparePartJoins)
	return scanSparePart(r.storage.QueryRow(ctx, query, id))
}

func (r *SparePartRepository) CreateSparePart(ctx context.Context, part entities.SparePart) (*entities.SparePart, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO spare_parts (name, part_number, category_id, supplier_id, department_id, purchase_date, price, status)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		part.Name, part.PartNumber, part.CategoryID, part.SupplierID, part.DepartmentID,
		part.PurchaseDate, part.Price, part.Status).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.FindSparePart(ctx, id)
}

func (r *SparePartRepository) UpdateSparePart(ctx context.Context, id uint64, dto dto.UpdateSparePartDTO, purchaseDate *time.Time) (*entities.SparePart, error) {
	updateBuilder := sq.Update(sparePartTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))
	hasChanges := false
	if dto.Name != nil {
		updateBuilder = updateBuilder.Set("name", *dto.Name)
		hasChanges = true
	}
	if dto.PartNumber != nil {
		updateBuilder = updateBuilder.Set("part_number", *dto.PartNumber)
		hasChanges = true
	}
	if dto.CategoryID != nil {
		updateBuilder = updateBuilder.Set("category_id", *dto.CategoryID)
		hasChanges = true
	}
	if dto.SupplierID != nil {
		updateBuilder = updateBuilder.Set("supplier_id", *dto.SupplierID)
		hasChanges = true
	}
	if dto.DepartmentID != nil {
		updateBuilder = updateBuilder.Set("department_id", *dto.DepartmentID)
		hasChanges = true
	}
	if purchaseDate != nil {
		updateBuilder = updateBuilder.Set("purchase_date", *purchaseDate)
		hasChanges = true
	}
	if dto.Price != nil {
		updateBuilder = updateBuilder.Set("price", *dto.Price)
		hasChanges = true
	}
	if dto.Status != nil {
		updateBuilder = updateBuilder.Set("status", *dto.Status)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindSparePart(ctx, id)
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
	return r.FindSparePart(ctx, updatedID)
}

func (r *SparePartRepository) DeleteSparePart(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM spare_parts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *SparePartRepository) CountReferences(ctx context.Context, id uint64) (uint64, error) {
	var total uint64
	err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM internal_repairs WHERE spare_part_id = $1`, id).Scan(&total)
	return total, err
}
