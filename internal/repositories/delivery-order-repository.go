package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"hospital-system/internal/entities"
	apperrors "hospital-system/pkg/errors"
	"hospital-system/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const deliveryOrderTable = "delivery_orders"

var (
	deliveryOrderAllowedFilterFields = map[string]string{
		"status":            "do.status",
		"purchase_order_id": "do.purchase_order_id",
		"payment_method":    "do.payment_method",
	}
	deliveryOrderAllowedSortFields = map[string]string{
		"id": "do.id", "reference": "do.reference", "delivery_date": "do.delivery_date",
		"total": "do.total", "created_at": "do.created_at",
	}
)

// DeliveryOrderUpdate porte les champs déjà interprétés par le service; les
// lignes sont remplacées en bloc quand Items est non nil.
type DeliveryOrderUpdate struct {
	Reference       *string
	CustomerName    *string
	CustomerPhone   *string
	CustomerAddress *string
	DeliveryDate    *time.Time
	PurchaseOrderID *uint64
	PaymentMethod   *string
	DeliveryMethod  *string
	Status          *string
	Total           *float64
	Items           []entities.DeliveryOrderItem
}

type DeliveryOrderRepositoryInterface interface {
	GetDeliveryOrders(ctx context.Context, filter types.Filter) ([]entities.DeliveryOrder, uint64, error)
	FindDeliveryOrder(ctx context.Context, id uint64) (*entities.DeliveryOrder, error)
	CreateDeliveryOrder(ctx context.Context, order entities.DeliveryOrder) (*entities.DeliveryOrder, error)
	UpdateDeliveryOrder(ctx context.Context, id uint64, update DeliveryOrderUpdate) (*entities.DeliveryOrder, error)
	DeleteDeliveryOrder(ctx context.Context, id uint64) error
}

type DeliveryOrderRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDeliveryOrderRepository(storage *pgxpool.Pool, logger *zap.Logger) DeliveryOrderRepositoryInterface {
	return &DeliveryOrderRepository{storage: storage, logger: logger}
}

const deliveryOrderColumns = `do.id, do.reference, do.customer_name, do.customer_phone, do.customer_address,
	do.delivery_date, do.purchase_order_id, do.total, do.status, do.payment_method, do.delivery_method,
	do.created_at, do.updated_at`

func scanDeliveryOrder(row pgx.Row) (*entities.DeliveryOrder, error) {
	var o entities.DeliveryOrder
	err := row.Scan(&o.ID, &o.Reference, &o.CustomerName, &o.CustomerPhone, &o.CustomerAddress,
		&o.DeliveryDate, &o.PurchaseOrderID, &o.Total, &o.Status, &o.PaymentMethod, &o.DeliveryMethod,
		&o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan delivery order: %w", err)
	}
	return &o, nil
}

func (r *DeliveryOrderRepository) loadItems(ctx context.Context, orderIDs []uint64) (map[uint64][]entities.DeliveryOrderItem, error) {
	if len(orderIDs) == 0 {
		return map[uint64][]entities.DeliveryOrderItem{}, nil
	}
	query, args, err := sq.Select("id", "delivery_order_id", "description", "quantity", "unit_price").
		From("delivery_order_items").
		Where(sq.Eq{"delivery_order_id": orderIDs}).
		OrderBy("id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	itemsByOrder := make(map[uint64][]entities.DeliveryOrderItem)
	for rows.Next() {
		var item entities.DeliveryOrderItem
		if err := rows.Scan(&item.ID, &item.DeliveryOrderID, &item.Description, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		itemsByOrder[item.DeliveryOrderID] = append(itemsByOrder[item.DeliveryOrderID], item)
	}
	return itemsByOrder, rows.Err()
}

func (r *DeliveryOrderRepository) buildFilterQuery(filter types.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCounter := 1
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(do.reference ILIKE $%d OR do.customer_name ILIKE $%d)", argCounter, argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	for key, value := range filter.Filter {
		if dbColumn, ok := deliveryOrderAllowedFilterFields[key]; ok {
			conditions = append(conditions, buildInCondition(dbColumn, value, &argCounter, &args))
		}
	}
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *DeliveryOrderRepository) countDeliveryOrders(ctx context.Context, filter types.Filter) (uint64, error) {
	whereClause, args := r.buildFilterQuery(filter)
	var total uint64
	err := r.storage.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s AS "do" %s`, deliveryOrderTable, whereClause), args...).Scan(&total)
	return total, err
}

func (r *DeliveryOrderRepository) GetDeliveryOrders(ctx context.Context, filter types.Filter) ([]entities.DeliveryOrder, uint64, error) {
	total, err := r.countDeliveryOrders(ctx, filter)
	if err != nil || total == 0 {
		return []entities.DeliveryOrder{}, total, err
	}
	whereClause, args := r.buildFilterQuery(filter)
	orderByClause := buildOrderByClause(filter.Sort, deliveryOrderAllowedSortFields, "ORDER BY do.id DESC")
	limitClause := ""
	argCounter := len(args) + 1
	if filter.WithPagination {
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}
	query := fmt.Sprintf(`SELECT %s FROM %s "do" %s %s %s`, deliveryOrderColumns, deliveryOrderTable, whereClause, orderByClause, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	orders := make([]entities.DeliveryOrder, 0)
	orderIDs := make([]uint64, 0)
	for rows.Next() {
		order, err := scanDeliveryOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *order)
		orderIDs = append(orderIDs, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	itemsByOrder, err := r.loadItems(ctx, orderIDs)
	if err != nil {
		return nil, 0, err
	}
	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
		if orders[i].Items == nil {
			orders[i].Items = []entities.DeliveryOrderItem{}
		}
	}
	return orders, total, nil
}

func (r *DeliveryOrderRepository) FindDeliveryOrder(ctx context.Context, id uint64) (*entities.DeliveryOrder, error) {
	query := fmt.Sprintf(`SELECT %s FROM delivery_orders "do" WHERE do.id = $1`, deliveryOrderColumns)
	order, err := scanDeliveryOrder(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	itemsByOrder, err := r.loadItems(ctx, []uint64{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = itemsByOrder[order.ID]
	if order.Items == nil {
		order.Items = []entities.DeliveryOrderItem{}
	}
	return order, nil
}

// CreateDeliveryOrder insère l'en-tête et ses lignes dans une même transaction.
func (r *DeliveryOrderRepository) CreateDeliveryOrder(ctx context.Context, order entities.DeliveryOrder) (*entities.DeliveryOrder, error) {
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var id uint64
	err = tx.QueryRow(ctx,
		`INSERT INTO delivery_orders (reference, customer_name, customer_phone, customer_address, delivery_date,
			purchase_order_id, total, status, payment_method, delivery_method)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`,
		order.Reference, order.CustomerName, order.CustomerPhone, order.CustomerAddress, order.DeliveryDate,
		order.PurchaseOrderID, order.Total, order.Status, order.PaymentMethod, order.DeliveryMethod).Scan(&id)
	if err != nil {
		return nil, err
	}

	for _, item := range order.Items {
		if _, err := tx.Exec(ctx,
			`INSERT INTO delivery_order_items (delivery_order_id, description, quantity, unit_price) VALUES($1, $2, $3, $4)`,
			id, item.Description, item.Quantity, item.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.FindDeliveryOrder(ctx, id)
}

func (r *DeliveryOrderRepository) UpdateDeliveryOrder(ctx context.Context, id uint64, update DeliveryOrderUpdate) (*entities.DeliveryOrder, error) {
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	updateBuilder := sq.Update(deliveryOrderTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))
	hasChanges := false
	if update.Reference != nil {
		updateBuilder = updateBuilder.Set("reference", *update.Reference)
		hasChanges = true
	}
	if update.CustomerName != nil {
		updateBuilder = updateBuilder.Set("customer_name", *update.CustomerName)
		hasChanges = true
	}
	if update.CustomerPhone != nil {
		updateBuilder = updateBuilder.Set("customer_phone", *update.CustomerPhone)
		hasChanges = true
	}
	if update.CustomerAddress != nil {
		updateBuilder = updateBuilder.Set("customer_address", *update.CustomerAddress)
		hasChanges = true
	}
	if update.DeliveryDate != nil {
		updateBuilder = updateBuilder.Set("delivery_date", *update.DeliveryDate)
		hasChanges = true
	}
	if update.PurchaseOrderID != nil {
		updateBuilder = updateBuilder.Set("purchase_order_id", *update.PurchaseOrderID)
		hasChanges = true
	}
	if update.PaymentMethod != nil {
		updateBuilder = updateBuilder.Set("payment_method", *update.PaymentMethod)
		hasChanges = true
	}
	if update.DeliveryMethod != nil {
		updateBuilder = updateBuilder.Set("delivery_method", *update.DeliveryMethod)
		hasChanges = true
	}
	if update.Status != nil {
		updateBuilder = updateBuilder.Set("status", *update.Status)
		hasChanges = true
	}
	if update.Total != nil {
		updateBuilder = updateBuilder.Set("total", *update.Total)
		hasChanges = true
	}

	if hasChanges {
		query, args, err := updateBuilder.Suffix("RETURNING id").ToSql()
		if err != nil {
			return nil, err
		}
		var updatedID uint64
		if err := tx.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.ErrNotFound
			}
			return nil, err
		}
	} else if update.Items == nil {
		return r.FindDeliveryOrder(ctx, id)
	}

	if update.Items != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM delivery_order_items WHERE delivery_order_id = $1`, id); err != nil {
			return nil, err
		}
		for _, item := range update.Items {
			if _, err := tx.Exec(ctx,
				`INSERT INTO delivery_order_items (delivery_order_id, description, quantity, unit_price) VALUES($1, $2, $3, $4)`,
				id, item.Description, item.Quantity, item.UnitPrice); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.FindDeliveryOrder(ctx, id)
}

func (r *DeliveryOrderRepository) DeleteDeliveryOrder(ctx context.Context, id uint64) error {
	// Les lignes partent via ON DELETE CASCADE.
	result, err := r.storage.Exec(ctx, `DELETE FROM delivery_orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
