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

const purchaseOrderTable = "purchase_orders"

var (
	purchaseOrderAllowedFilterFields = map[string]string{
		"supplier_id": "po.supplier_id",
		"status":      "po.status",
	}
	purchaseOrderAllowedSortFields = map[string]string{
		"id": "po.id", "reference": "po.reference", "order_date": "po.order_date", "created_at": "po.created_at",
	}
)

type PurchaseOrderRepositoryInterface interface {
	GetPurchaseOrders(ctx context.Context, filter types.Filter) ([]entities.PurchaseOrder, uint64, error)
	FindPurchaseOrder(ctx context.Context, id uint64) (*entities.PurchaseOrder, error)
	CreatePurchaseOrder(ctx context.Context, order entities.PurchaseOrder) (*entities.PurchaseOrder, error)
	UpdatePurchaseOrder(ctx context.Context, id uint64, dto dto.UpdatePurchaseOrderDTO, orderDate *time.Time) (*entities.PurchaseOrder, error)
	SetDocumentPath(ctx context.Context, id uint64, path string) error
	DeletePurchaseOrder(ctx context.Context, id uint64) error
	CountReferences(ctx context.Context, id uint64) (uint64, error)
}

type PurchaseOrderRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewPurchaseOrderRepository(storage *pgxpool.Pool, logger *zap.Logger) PurchaseOrderRepositoryInterface {
	return &PurchaseOrderRepository{storage: storage, logger: logger}
}

const purchaseOrderSelect = `
	SELECT po.id, po.reference, po.order_date, po.supplier_id, po.details, po.document_path, po.status,
	       po.created_at, po.updated_at, s.name
	FROM purchase_orders po
	JOIN suppliers s ON s.id = po.supplier_id`

func scanPurchaseOrder(row pgx.Row) (*entities.PurchaseOrder, error) {
	var po entities.PurchaseOrder
	var supplierName string
	err := row.Scan(&po.ID, &po.Reference, &po.OrderDate, &po.SupplierID, &po.Details, &po.DocumentPath,
		&po.Status, &po.CreatedAt, &po.UpdatedAt, &supplierName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan purchase order: %w", err)
	}
	po.Supplier = &entities.Supplier{ID: po.SupplierID, Name: supplierName}
	return &po, nil
}

func (r *PurchaseOrderRepository) buildFilterQuery(filter types.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCounter := 1
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("po.reference ILIKE $%d", argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	for key, value := range filter.Filter {
		if dbColumn, ok := purchaseOrderAllowedFilterFields[key]; ok {
			conditions = append(conditions, buildInCondition(dbColumn, value, &argCounter, &args))
		}
	}
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *PurchaseOrderRepository) countPurchaseOrders(ctx context.Context, filter types.Filter) (uint64, error) {
	whereClause, args := r.buildFilterQuery(filter)
	var total uint64
	err := r.storage.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s AS po %s", purchaseOrderTable, whereClause), args...).Scan(&total)
	return total, err
}

func (r *PurchaseOrderRepository) GetPurchaseOrders(ctx context.Context, filter types.Filter) ([]entities.PurchaseOrder, uint64, error) {
	total, err := r.countPurchaseOrders(ctx, filter)
	if err != nil || total == 0 {
		return []entities.PurchaseOrder{}, total, err
	}
	whereClause, args := r.buildFilterQuery(filter)
	orderByClause := buildOrderByClause(filter.Sort, purchaseOrderAllowedSortFields, "ORDER BY po.id DESC")
	limitClause := ""
	argCounter := len(args) + 1
	if filter.WithPagination {
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}
	query := fmt.Sprintf("%s %s %s %s", purchaseOrderSelect, whereClause, orderByClause, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	orders := make([]entities.PurchaseOrder, 0)
	for rows.Next() {
		order, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *order)
	}
	return orders, total, rows.Err()
}

func (r *PurchaseOrderRepository) FindPurchaseOrder(ctx context.Context, id uint64) (*entities.PurchaseOrder, error) {
	return scanPurchaseOrder(r.storage.QueryRow(ctx, purchaseOrderSelect+" WHERE po.id = $1", id))
}

func (r *PurchaseOrderRepository) CreatePurchaseOrder(ctx context.Context, order entities.PurchaseOrder) (*entities.PurchaseOrder, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO purchase_orders (reference, order_date, supplier_id, details, document_path, status)
		 VALUES($1, $2, $3, $4, $5, $6) RETURNING id`,
		order.Reference, order.OrderDate, order.SupplierID, order.Details, order.DocumentPath, order.Status).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.FindPurchaseOrder(ctx, id)
}

func (r *PurchaseOrderRepository) UpdatePurchaseOrder(ctx context.Context, id uint64, dto dto.UpdatePurchaseOrderDTO, orderDate *time.Time) (*entities.PurchaseOrder, error) {
	updateBuilder := sq.Update(purchaseOrderTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))
	hasChanges := false
	if dto.Reference != nil {
		updateBuilder = updateBuilder.Set("reference", *dto.Reference)
		hasChanges = true
	}
	if orderDate != nil {
		updateBuilder = updateBuilder.Set("order_date", *orderDate)
		hasChanges = true
	}
	if dto.SupplierID != nil {
		updateBuilder = updateBuilder.Set("supplier_id", *dto.SupplierID)
		hasChanges = true
	}
	if dto.Details != nil {
		updateBuilder = updateBuilder.Set("details", *dto.Details)
		hasChanges = true
	}
	if dto.Status != nil {
		updateBuilder = updateBuilder.Set("status", *dto.Status)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindPurchaseOrder(ctx, id)
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
	return r.FindPurchaseOrder(ctx, updatedID)
}

func (r *PurchaseOrderRepository) SetDocumentPath(ctx context.Context, id uint64, path string) error {
	result, err := r.storage.Exec(ctx, `UPDATE purchase_orders SET document_path = $1, updated_at = NOW() WHERE id = $2`, path, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PurchaseOrderRepository) DeletePurchaseOrder(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PurchaseOrderRepository) CountReferences(ctx context.Context, id uint64) (uint64, error) {
	var total uint64
	err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM delivery_orders WHERE purchase_order_id = $1`, id).Scan(&total)
	return total, err
}
