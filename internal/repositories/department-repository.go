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

const departmentTable = "departments"

var (
	departmentAllowedFilterFields = map[string]string{}
	departmentAllowedSortFields   = map[string]string{"id": "d.id", "name": "d.name", "created_at": "d.created_at"}
)

type DepartmentRepositoryInterface interface {
	GetDepartments(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error)
	FindDepartment(ctx context.Context, id uint64) (*entities.Department, error)
	FindDepartmentByName(ctx context.Context, name string) (*entities.Department, error)
	CreateDepartment(ctx context.Context, department entities.Department) (*entities.Department, error)
	UpdateDepartment(ctx context.Context, id uint64, dto dto.UpdateDepartmentDTO) (*entities.Department, error)
	DeleteDepartment(ctx context.Context, id uint64) error
	CountReferences(ctx context.Context, id uint64) (uint64, error)
}

type DepartmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDepartmentRepository(storage *pgxpool.Pool, logger *zap.Logger) DepartmentRepositoryInterface {
	return &DepartmentRepository{storage: storage, logger: logger}
}

func scanDepartment(row pgx.Row) (*entities.Department, error) {
	var d entities.Department
	err := row.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan department: %w", err)
	}
	return &d, nil
}

func (r *DepartmentRepository) buildFilterQuery(filter types.Filter, tableAlias string) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCounter := 1
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("%s.name ILIKE $%d", tableAlias, argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	for key, value := range filter.Filter {
		if dbColumn, ok := departmentAllowedFilterFields[key]; ok {
			conditions = append(conditions, fmt.Sprintf("%s = $%d", dbColumn, argCounter))
			args = append(args, value)
			argCounter++
		}
	}
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *DepartmentRepository) countDepartments(ctx context.Context, filter types.Filter) (uint64, error) {
	whereClause, args := r.buildFilterQuery(filter, "d")
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s AS d %s", departmentTable, whereClause)
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *DepartmentRepository) GetDepartments(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error) {
	total, err := r.countDepartments(ctx, filter)
	if err != nil || total == 0 {
		return []entities.Department{}, total, err
	}
	whereClause, args := r.buildFilterQuery(filter, "d")
	orderByClause := buildOrderByClause(filter.Sort, departmentAllowedSortFields, "ORDER BY d.id DESC")
	limitClause := ""
	argCounter := len(args) + 1
	if filter.WithPagination {
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}
	query := fmt.Sprintf(`SELECT d.id, d.name, d.created_at, d.updated_at FROM %s d %s %s %s`, departmentTable, whereClause, orderByClause, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	departments := make([]entities.Department, 0)
	for rows.Next() {
		dept, err := scanDepartment(rows)
		if err != nil {
			return nil, 0, err
		}
		departments = append(departments, *dept)
	}
	return departments, total, rows.Err()
}

func (r *DepartmentRepository) FindDepartment(ctx context.Context, id uint64) (*entities.Department, error) {
	query := `SELECT id, name, created_at, updated_at FROM departments WHERE id = $1`
	return scanDepartment(r.storage.QueryRow(ctx, query, id))
}

// FindDepartmentByName fait une recherche insensible à la casse, pour le
// contrôle d'unicité du nom.
func (r *DepartmentRepository) FindDepartmentByName(ctx context.Context, name string) (*entities.Department, error) {
	query := `SELECT id, name, created_at, updated_at FROM departments WHERE LOWER(name) = LOWER($1)`
	return scanDepartment(r.storage.QueryRow(ctx, query, name))
}

func (r *DepartmentRepository) CreateDepartment(ctx context.Context, department entities.Department) (*entities.Department, error) {
	query := `INSERT INTO departments (name) VALUES($1) RETURNING id, name, created_at, updated_at`
	return scanDepartment(r.storage.QueryRow(ctx, query, department.Name))
}

func (r *DepartmentRepository) UpdateDepartment(ctx context.Context, id uint64, dto dto.UpdateDepartmentDTO) (*entities.Department, error) {
	updateBuilder := sq.Update(departmentTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))
	hasChanges := false
	if dto.Name != nil {
		updateBuilder = updateBuilder.Set("name", *dto.Name)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindDepartment(ctx, id)
	}
	query, args, err := updateBuilder.Suffix("RETURNING id, name, created_at, updated_at").ToSql()
	if err != nil {
		return nil, err
	}
	return scanDepartment(r.storage.QueryRow(ctx, query, args...))
}

func (r *DepartmentRepository) DeleteDepartment(ctx context.Context, id uint64) error {
	query := `DELETE FROM departments WHERE id = $1`
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountReferences compte tout ce qui pointe encore vers le service; la
// suppression est bloquée tant que ce compte n'est pas nul.
func (r *DepartmentRepository) CountReferences(ctx context.Context, id uint64) (uint64, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM equipments WHERE department_id = $1) +
			(SELECT COUNT(*) FROM users WHERE department_id = $1) +
			(SELECT COUNT(*) FROM spare_parts WHERE department_id = $1) +
			(SELECT COUNT(*) FROM reclamations WHERE department_id = $1) +
			(SELECT COUNT(*) FROM besoins WHERE department_id = $1)`
	var total uint64
	if err := r.storage.QueryRow(ctx, query, id).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
