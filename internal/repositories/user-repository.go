package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"hospital-system/internal/entities"
	apperrors "hospital-system/pkg/errors"
	"hospital-system/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const userTable = "users"

var (
	userAllowedFilterFields = map[string]string{
		"role_id":         "u.role_id",
		"department_id":   "u.department_id",
		"scanning_access": "u.scanning_access",
	}
	userAllowedSortFields = map[string]string{
		"id": "u.id", "first_name": "u.first_name", "last_name": "u.last_name",
		"username": "u.username", "email": "u.email", "created_at": "u.created_at",
	}
)

// UserUpdate porte les champs déjà préparés par le service, mot de passe
// haché compris.
type UserUpdate struct {
	FirstName      *string
	LastName       *string
	Username       *string
	Email          *string
	HashedPassword *string
	RoleID         *uint64
	DepartmentID   *uint64
	ScanningAccess *bool
}

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error)
	FindUser(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, id uint64, update UserUpdate) (*entities.User, error)
	SetPhotoPath(ctx context.Context, id uint64, path string) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

const userSelect = `SELECT u.id, u.first_name, u.last_name, u.username, u.email, u.password,
	u.role_id, u.department_id, u.photo_url, u.scanning_access, u.created_at, u.updated_at,
	r.name, d.name
	FROM users "u"
	JOIN roles "r" ON r.id = u.role_id
	LEFT JOIN departments "d" ON d.id = u.department_id`

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	var role entities.Role
	var departmentName *string
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.Email, &user.Password,
		&user.RoleID, &user.DepartmentID, &user.PhotoURL, &user.ScanningAccess, &user.CreatedAt, &user.UpdatedAt,
		&role.Name, &departmentName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	role.ID = user.RoleID
	user.Role = &role
	if user.DepartmentID != nil && departmentName != nil {
		user.Department = &entities.Department{ID: *user.DepartmentID, Name: *departmentName}
	}
	return &user, nil
}

func (r *UserRepository) buildFilterQuery(filter types.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCounter := 1
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(u.first_name ILIKE $%d OR u.last_name ILIKE $%d OR u.username ILIKE $%d OR u.email ILIKE $%d)",
			argCounter, argCounter, argCounter, argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	for key, value := range filter.Filter {
		if dbColumn, ok := userAllowedFilterFields[key]; ok {
			conditions = append(conditions, buildInCondition(dbColumn, value, &argCounter, &args))
		}
	}
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *UserRepository) countUsers(ctx context.Context, filter types.Filter) (uint64, error) {
	whereClause, args := r.buildFilterQuery(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM users "u" %s`, whereClause)
	var total uint64
	err := r.storage.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}

func (r *UserRepository) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	total, err := r.countUsers(ctx, filter)
	if err != nil || total == 0 {
		return []entities.User{}, total, err
	}
	whereClause, args := r.buildFilterQuery(filter)
	orderByClause := buildOrderByClause(filter.Sort, userAllowedSortFields, "ORDER BY u.id DESC")
	limitClause := ""
	argCounter := len(args) + 1
	if filter.WithPagination {
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}
	query := fmt.Sprintf("%s %s %s %s", userSelect, whereClause, orderByClause, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	users := make([]entities.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *user)
	}
	return users, total, rows.Err()
}

func (r *UserRepository) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	query := userSelect + " WHERE u.id = $1"
	return scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := userSelect + " WHERE LOWER(u.email) = LOWER($1)"
	return scanUser(r.storage.QueryRow(ctx, query, email))
}

func (r *UserRepository) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO users (first_name, last_name, username, email, password, role_id, department_id, scanning_access)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		user.FirstName, user.LastName, user.Username, user.Email, user.Password,
		user.RoleID, user.DepartmentID, user.ScanningAccess).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.FindUser(ctx, id)
}

func (r *UserRepository) UpdateUser(ctx context.Context, id uint64, update UserUpdate) (*entities.User, error) {
	updateBuilder := sq.Update(userTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))
	hasChanges := false
	if update.FirstName != nil {
		updateBuilder = updateBuilder.Set("first_name", *update.FirstName)
		hasChanges = true
	}
	if update.LastName != nil {
		updateBuilder = updateBuilder.Set("last_name", *update.LastName)
		hasChanges = true
	}
	if update.Username != nil {
		updateBuilder = updateBuilder.Set("username", *update.Username)
		hasChanges = true
	}
	if update.Email != nil {
		updateBuilder = updateBuilder.Set("email", *update.Email)
		hasChanges = true
	}
	if update.HashedPassword != nil {
		updateBuilder = updateBuilder.Set("password", *update.HashedPassword)
		hasChanges = true
	}
	if update.RoleID != nil {
		updateBuilder = updateBuilder.Set("role_id", *update.RoleID)
		hasChanges = true
	}
	if update.DepartmentID != nil {
		updateBuilder = updateBuilder.Set("department_id", *update.DepartmentID)
		hasChanges = true
	}
	if update.ScanningAccess != nil {
		updateBuilder = updateBuilder.Set("scanning_access", *update.ScanningAccess)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindUser(ctx, id)
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
	return r.FindUser(ctx, updatedID)
}

func (r *UserRepository) SetPhotoPath(ctx context.Context, id uint64, path string) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE users SET photo_url = $1, updated_at = NOW() WHERE id = $2`, path, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
