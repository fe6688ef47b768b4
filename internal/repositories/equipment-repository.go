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

const equipmentTable = "equipments"

var (
	equipmentAllowedFilterFields = map[string]string{
		"category_id":     "e.category_id",
		"model_id":        "e.model_id",
		"department_id":   "e.department_id",
		"supplier_id":     "e.supplier_id",
		"status":          "e.status",
		"warranty_status": "e.warranty_status",
	}
	equipmentAllowedSortFields = map[string]string{
		"id":            "e.id",
		"name":          "e.name",
		"price":         "e.price",
		"purchase_date": "e.purchase_date",
		"created_at":    "e.created_at",
	}
)

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, dto dto.UpdateEquipmentDTO, purchaseDate *time.Time) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint64) error
	CountReferences(ctx context.Context, id uint64) (uint64, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

const equipmentSelect = `
	SELECT e.id, e.name, e.category_id, e.model_id, e.serial_number, e.status, e.warranty_status,
	       e.purchase_date, e.price, e.department_id, e.supplier_id, e.created_at, e.updated_at,
	       c.name, m.name, d.name, s.name
	FROM equipments e
	JOIN categories c ON c.id = e.category_id
	LEFT JOIN equipment_models m ON m.id = e.model_id
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN suppliers s ON s.id = e.supplier_id`

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var categoryName string
	var modelName, departmentName, supplierName *string
	err := row.Scan(&e.ID, &e.Name, &e.CategoryID, &e.ModelID, &e.SerialNumber, &e.Status, &e.WarrantyStatus,
		&e.PurchaseDate, &e.Price, &e.DepartmentID, &e.SupplierID, &e.CreatedAt, &e.UpdatedAt,
		&categoryName, &modelName, &departmentName, &supplierName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan equipment: %w", err)
	}
	e.Category = &entities.Category{ID: e.CategoryID, Name: categoryName}
	if e.ModelID != nil && modelName != nil {
		e.Model = &entities.EquipmentModel{ID: *e.ModelID, Name: *modelName}
	}
	if e.DepartmentID != nil && departmentName != nil {
		e.Department = &entities.Department{ID: *e.DepartmentID, Name: *departmentName}
	}
	if e.SupplierID != nil && supplierName != nil {
		e.Supplier = &entities.Supplier{ID: *e.SupplierID, Name: *supplierName}
	}
	return &e, nil
}

func (r *EquipmentRepository) buildFilterQuery(filter types.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCounter := 1
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(e.name ILIKE $%d OR e.serial_number ILIKE $%d)", argCounter, argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	for key, value := range filter.Filter {
		if dbColumn, ok := equipmentAllowedFilterFields[key]; ok {
			conditions = append(conditions, buildInCondition(dbColumn, value, &argCounter, &args))
		}
	}
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *EquipmentRepository) countEquipments(ctx context.Context, filter types.Filter) (uint64, error) {
	whereClause, args := r.buildFilterQuery(filter)
	var total uint64
	err := r.storage.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s AS e %s", equipmentTable, whereClause), args...).Scan(&total)
	return total, err
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	total, err := r.countEquipments(ctx, filter)
	if err != nil || total == 0 {
		return []entities.Equipment{}, total, err
	}
	whereClause, args := r.buildFilterQuery(filter)
	orderByClause := buildOrderByClause(filter.Sort, equipmentAllowedSortFields, "ORDER BY e.id DESC")
	limitClause := ""
	argCounter := len(args) + 1
	if filter.WithPagination {
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}
	query := fmt.Sprintf("%s %s %s %s", equipmentSelect, whereClause, orderByClause, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	equipments := make([]entities.Equipment, 0)
	for rows.Next() {
		equipment, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		equipments = append(equipments, *equipment)
	}
	return equipments, total, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return scanEquipment(r.storage.QueryRow(ctx, equipmentSelect+" WHERE e.id = $1", id))
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO equipments (name, category_id, model_id, serial_number, status, warranty_status, purchase_date, price, department_id, supplier_id)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`,
		equipment.Name, equipment.CategoryID, equipment.ModelID, equipment.SerialNumber, equipment.Status,
		equipment.WarrantyStatus, equipment.PurchaseDate, equipment.Price, equipment.DepartmentID, equipment.SupplierID).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.FindEquipment(ctx, id)
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, dto dto.UpdateEquipmentDTO, purchaseDate *time.Time) (*entities.Equipment, error) {
	updateBuilder := sq.Update(equipmentTable).
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
	if dto.ModelID != nil {
		updateBuilder = updateBuilder.Set("model_id", *dto.ModelID)
		hasChanges = true
	}
	if dto.SerialNumber != nil {
		updateBuilder = updateBuilder.Set("serial_number", *dto.SerialNumber)
		hasChanges = true
	}
	if dto.Status != nil {
		updateBuilder = updateBuilder.Set("status", *dto.Status)
		hasChanges = true
	}
	if dto.WarrantyStatus != nil {
		updateBuilder = updateBuilder.Set("warranty_status", *dto.WarrantyStatus)
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
	if dto.DepartmentID != nil {
		updateBuilder = updateBuilder.Set("department_id", *dto.DepartmentID)
		hasChanges = true
	}
	if dto.SupplierID != nil {
		updateBuilder = updateBuilder.Set("supplier_id", *dto.SupplierID)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindEquipment(ctx, id)
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
	return r.FindEquipment(ctx, updatedID)
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM equipments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) CountReferences(ctx context.Context, id uint64) (uint64, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM internal_repairs WHERE equipment_id = $1) +
			(SELECT COUNT(*) FROM exit_form_equipments WHERE equipment_id = $1)`
	var total uint64
	err := r.storage.QueryRow(ctx, query, id).Scan(&total)
	return total, err
}
