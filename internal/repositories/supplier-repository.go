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

const supplierTable = "suppliers"

var (
	supplierAllowedFilterFields = map[string]string{"status": "s.status"}
	supplierAllowedSortFields   = map[string]string{"id": "s.id", "name": "s.name", "created_at": "s.created_at"}
)

type SupplierRepositoryInterface interface {
	GetSuppliers(ctx context.Context, filter types.Filter) ([]entities.Supplier, uint64, error)
	FindSupplier(ctx context.Context, id uint64) (*entities.Supplier, error)
	CreateSupplier(ctx context.Context, supplier entities.Supplier) (*entities.Supplier, error)
	UpdateSupplier(ctx context.Context, id uint64, dto dto.UpdateSupplierDTO) (*entities.Supplier, error)
	DeleteSupplier(ctx context.Context, id uint64) error
	CountReferences(ctx context.Context, id uint64) (uint64, error)
}

type SupplierRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewSupplierRepository(storage *pgxpool.Pool, logger *zap.Logger) SupplierRepositoryInterface {
	return &SupplierRepository{storage: storage, logger: logger}
}

const supplierColumns = `id, name, contact_name, email, phone, address, tax_number, status, created_at, updated_at`

func scanSupplier(row pgx.Row) (*entities.Supplier, error) {
	var s entities.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.ContactName, &s.Email, &s.Phone, &s.Address, &s.TaxNumber, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan supplier: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepository) buildFilterQuery(filter types.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCounter := 1
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(s.name ILIKE $%d OR s.contact_name ILIKE $%d)", argCounter, argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	for key, value := range filter.Filter {
		if dbColumn, ok := supplierAllowedFilterFields[key]; ok {
			conditions = append(conditions, buildInCondition(dbColumn, value, &argCounter, &args))
		}
	}
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *SupplierRepository) countSuppliers(ctx context.Context, filter types.Filter) (uint64, error) {
	whereClause, args := r.buildFilterQuery(filter)
	var total uint64
	err := r.storage.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s AS s %s", supplierTable, whereClause), args...).Scan(&total)
	return total, err
}

func (r *SupplierRepository) GetSuppliers(ctx context.Context, filter types.Filter) ([]entities.Supplier, uint64, error) {
	total, err := r.countSuppliers(ctx, filter)
	if err != nil || total == 0 {
		return []entities.Supplier{}, total, err
	}
	whereClause, args := r.buildFilterQuery(filter)
	orderByClause := buildOrderByClause(filter.Sort, supplierAllowedSortFields, "ORDER BY s.id DESC")
	limitClause := ""
	argCounter := len(args) + 1
	if filter.WithPagination {
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}
	query := fmt.Sprintf(`SELECT s.id, s.name, s.contact_name, s.email, s.phone, s.address, s.tax_number, s.status, s.created_at, s.updated_at FROM %s s %s %s %s`,
		supplierTable, whereClause, orderByClause, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	suppliers := make([]entities.Supplier, 0)
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return nil, 0, err
		}
		suppliers = append(suppliers, *supplier)
	}
	return suppliers, total, rows.Err()
}

func (r *SupplierRepository) FindSupplier(ctx context.Context, id uint64) (*entities.Supplier, error) {
	query := fmt.Sprintf(`SELECT %s FROM suppliers WHERE id = $1`, supplierColumns)
	return scanSupplier(r.storage.QueryRow(ctx, query, id))
}

func (r *SupplierRepository) CreateSupplier(ctx context.Context, supplier entities.Supplier) (*entities.Supplier, error) {
	query := fmt.Sprintf(`INSERT INTO suppliers (name, contact_name, email, phone, address, tax_number, status)
		VALUES($1, $2, $3, $4, $5, $6, $7) RETURNING %s`, supplierColumns)
	return scanSupplier(r.storage.QueryRow(ctx, query,
		supplier.Name, supplier.ContactName, supplier.Email, supplier.Phone, supplier.Address, supplier.TaxNumber, supplier.Status))
}

func (r *SupplierRepository) UpdateSupplier(ctx context.Context, id uint64, dto dto.UpdateSupplierDTO) (*entities.Supplier, error) {
	updateBuilder := sq.Update(supplierTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))
	hasChanges := false
	if dto.Name != nil {
		updateBuilder = updateBuilder.Set("name", *dto.Name)
		hasChanges = true
	}
	if dto.ContactName != nil {
		updateBuilder = updateBuilder.Set("contact_name", *dto.ContactName)
		hasChanges = true
	}
	if dto.Email != nil {
		updateBuilder = updateBuilder.Set("email", *dto.Email)
		hasChanges = true
	}
	if dto.Phone != nil {
		updateBuilder = updateBuilder.Set("phone", *dto.Phone)
		hasChanges = true
	}
	if dto.Address != nil {
		updateBuilder = updateBuilder.Set("address", *dto.Address)
		hasChanges = true
	}
	if dto.TaxNumber != nil {
		updateBuilder = updateBuilder.Set("tax_number", *dto.TaxNumber)
		hasChanges = true
	}
	if dto.Status != nil {
		updateBuilder = updateBuilder.Set("status", *dto.Status)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindSupplier(ctx, id)
	}
	query, args, err := updateBuilder.Suffix(fmt.Sprintf("RETURNING %s", supplierColumns)).ToSql()
	if err != nil {
		return nil, err
	}
	return scanSupplier(r.storage.QueryRow(ctx, query, args...))
}

func (r *SupplierRepository) DeleteSupplier(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *SupplierRepository) CountReferences(ctx context.Context, id uint64) (uint64, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM equipments WHERE supplier_id = $1) +
			(SELECT COUNT(*) FROM spare_parts WHERE supplier_id = $1) +
			(SELECT COUNT(*) FROM purchase_orders WHERE supplier_id = $1)`
	var total uint64
	err := r.storage.QueryRow(ctx, query, id).Scan(&total)
	return total, err
}
