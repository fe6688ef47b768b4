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

const reclamationTable = "reclamations"

var (
	reclamationAllowedFilterFields = map[string]string{
		"status":        "r.status",
		"priority":      "r.priority",
		"type":          "r.type",
		"department_id": "r.department_id",
		"creator_id":    "r.creator_id",
	}
	reclamationAllowedSortFields = map[string]string{
		"id": "r.id", "title": "r.title", "priority": "r.priority",
		"status": "r.status", "created_at": "r.created_at",
	}
)

type ReclamationRepositoryInterface interface {
	GetReclamations(ctx context.Context, filter types.Filter) ([]entities.Reclamation, uint64, error)
	FindReclamation(ctx context.Context, id uint64) (*entities.Reclamation, error)
	CreateReclamation(ctx context.Context, reclamation entities.Reclamation) (*entities.Reclamation, error)
	UpdateReclamation(ctx context.Context, id uint64, dto dto.UpdateReclamationDTO) (*entities.Reclamation, error)
	DeleteReclamation(ctx context.Context, id uint64) error

	CreateComment(ctx context.Context, comment entities.ReclamationComment) (*entities.ReclamationComment, error)
	GetComments(ctx context.Context, reclamationID uint64) ([]entities.ReclamationComment, error)

	CreateHistoryEntry(ctx context.Context, entry entities.ReclamationHistory) error
	GetHistory(ctx context.Context, reclamationID uint64) ([]entities.ReclamationHistory, error)

	CreateAttachment(ctx context.Context, attachment entities.Attachment) (*entities.Attachment, error)
	GetAttachments(ctx context.Context, reclamationID uint64) ([]entities.Attachment, error)
	FindAttachment(ctx context.Context, id uint64) (*entities.Attachment, error)
	DeleteAttachment(ctx context.Context, id uint64) error
}

type ReclamationRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewReclamationRepository(storage *pgxpool.Pool, logger *zap.Logger) ReclamationRepositoryInterface {
	return &ReclamationRepository{storage: storage, logger: logger}
}

const reclamationSelect = `SELECT r.id, r.title, r.description, r.equipment, r.department_id, r.type,
	r.priority, r.status, r.creator_id, r.created_at, r.updated_at,
	d.name
	FROM reclamations "r"
	JOIN departments "d" ON d.id = r.department_id`

func scanReclamation(row pgx.Row) (*entities.Reclamation, error) {
	var reclamation entities.Reclamation
	var department entities.Department
	err := row.Scan(&reclamation.ID, &reclamation.Title, &reclamation.Description, &reclamation.Equipment,
		&reclamation.DepartmentID, &reclamation.Type, &reclamation.Priority, &reclamation.Status,
		&reclamation.CreatorID, &reclamation.CreatedAt, &reclamation.UpdatedAt,
		&department.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan reclamation: %w", err)
	}
	department.ID = reclamation.DepartmentID
	reclamation.Department = &department
	return &reclamation, nil
}

func (r *ReclamationRepository) buildFilterQuery(filter types.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCounter := 1
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(r.title ILIKE $%d OR r.description ILIKE $%d)", argCounter, argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	for key, value := range filter.Filter {
		if dbColumn, ok := reclamationAllowedFilterFields[key]; ok {
			conditions = append(conditions, buildInCondition(dbColumn, value, &argCounter, &args))
		}
	}
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *ReclamationRepository) countReclamations(ctx context.Context, filter types.Filter) (uint64, error) {
	whereClause, args := r.buildFilterQuery(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM reclamations "r" %s`, whereClause)
	var total uint64
	err := r.storage.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}

func (r *ReclamationRepository) GetReclamations(ctx context.Context, filter types.Filter) ([]entities.Reclamation, uint64, error) {
	total, err := r.countReclamations(ctx, filter)
	if err != nil || total == 0 {
		return []entities.Reclamation{}, total, err
	}
	whereClause, args := r.buildFilterQuery(filter)
	orderByClause := buildOrderByClause(filter.Sort, reclamationAllowedSortFields, "ORDER BY r.id DESC")
	limitClause := ""
	argCounter := len(args) + 1
	if filter.WithPagination {
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}
	query := fmt.Sprintf("%s %s %s %s", reclamationSelect, whereClause, orderByClause, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	reclamations := make([]entities.Reclamation, 0)
	for rows.Next() {
		reclamation, err := scanReclamation(rows)
		if err != nil {
			return nil, 0, err
		}
		reclamations = append(reclamations, *reclamation)
	}
	return reclamations, total, rows.Err()
}

func (r *ReclamationRepository) FindReclamation(ctx context.Context, id uint64) (*entities.Reclamation, error) {
	query := reclamationSelect + " WHERE r.id = $1"
	return scanReclamation(r.storage.QueryRow(ctx, query, id))
}

func (r *ReclamationRepository) CreateReclamation(ctx context.Context, reclamation entities.Reclamation) (*entities.Reclamation, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO reclamations (title, description, equipment, department_id, type, priority, status, creator_id)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		reclamation.Title, reclamation.Description, reclamation.Equipment, reclamation.DepartmentID,
		reclamation.Type, reclamation.Priority, reclamation.Status, reclamation.CreatorID).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.FindReclamation(ctx, id)
}

func (r *ReclamationRepository) UpdateReclamation(ctx context.Context, id uint64, payload dto.UpdateReclamationDTO) (*entities.Reclamation, error) {
	updateBuilder := sq.Update(reclamationTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))
	hasChanges := false
	if payload.Title != nil {
		updateBuilder = updateBuilder.Set("title", *payload.Title)
		hasChanges = true
	}
	if payload.Description != nil {
		updateBuilder = updateBuilder.Set("description", *payload.Description)
		hasChanges = true
	}
	if payload.Equipment != nil {
		updateBuilder = updateBuilder.Set("equipment", *payload.Equipment)
		hasChanges = true
	}
	if payload.DepartmentID != nil {
		updateBuilder = updateBuilder.Set("department_id", *payload.DepartmentID)
		hasChanges = true
	}
	if payload.Type != nil {
		updateBuilder = updateBuilder.Set("type", *payload.Type)
		hasChanges = true
	}
	if payload.Priority != nil {
		updateBuilder = updateBuilder.Set("priority", *payload.Priority)
		hasChanges = true
	}
	if payload.Status != nil {
		updateBuilder = updateBuilder.Set("status", *payload.Status)
		hasChanges = true
	}
	if !hasChanges {
		return r.FindReclamation(ctx, id)
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
	return r.FindReclamation(ctx, updatedID)
}

func (r *ReclamationRepository) DeleteReclamation(ctx context.Context, id uint64) error {
	// Commentaires, historique et pièces jointes partent via ON DELETE CASCADE.
	result, err := r.storage.Exec(ctx, `DELETE FROM reclamations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ReclamationRepository) CreateComment(ctx context.Context, comment entities.ReclamationComment) (*entities.ReclamationComment, error) {
	query := `INSERT INTO reclamation_comments (reclamation_id, author_id, content)
		 VALUES($1, $2, $3) RETURNING id, created_at, updated_at`
	err := r.storage.QueryRow(ctx, query, comment.ReclamationID, comment.AuthorID, comment.Content).
		Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return nil, err
	}
	var author entities.User
	err = r.storage.QueryRow(ctx, `SELECT first_name, last_name FROM users WHERE id = $1`, comment.AuthorID).
		Scan(&author.FirstName, &author.LastName)
	if err == nil {
		author.ID = comment.AuthorID
		comment.Author = &author
	}
	return &comment, nil
}

func (r *ReclamationRepository) GetComments(ctx context.Context, reclamationID uint64) ([]entities.ReclamationComment, error) {
	query := `SELECT rc.id, rc.reclamation_id, rc.author_id, rc.content, rc.created_at, rc.updated_at,
		u.first_name, u.last_name
		FROM reclamation_comments "rc"
		JOIN users "u" ON u.id = rc.author_id
		WHERE rc.reclamation_id = $1
		ORDER BY rc.id ASC`
	rows, err := r.storage.Query(ctx, query, reclamationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	comments := make([]entities.ReclamationComment, 0)
	for rows.Next() {
		var comment entities.ReclamationComment
		var author entities.User
		if err := rows.Scan(&comment.ID, &comment.ReclamationID, &comment.AuthorID, &comment.Content,
			&comment.CreatedAt, &comment.UpdatedAt, &author.FirstName, &author.LastName); err != nil {
			return nil, err
		}
		author.ID = comment.AuthorID
		comment.Author = &author
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (r *ReclamationRepository) CreateHistoryEntry(ctx context.Context, entry entities.ReclamationHistory) error {
	_, err := r.storage.Exec(ctx,
		`INSERT INTO reclamation_history (reclamation_id, user_id, action, old_status, new_status)
		 VALUES($1, $2, $3, $4, $5)`,
		entry.ReclamationID, entry.UserID, entry.Action, entry.OldStatus, entry.NewStatus)
	return err
}

func (r *ReclamationRepository) GetHistory(ctx context.Context, reclamationID uint64) ([]entities.ReclamationHistory, error) {
	query := `SELECT id, reclamation_id, user_id, action, old_status, new_status, created_at, updated_at
		FROM reclamation_history WHERE reclamation_id = $1 ORDER BY id ASC`
	rows, err := r.storage.Query(ctx, query, reclamationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	history := make([]entities.ReclamationHistory, 0)
	for rows.Next() {
		var entry entities.ReclamationHistory
		if err := rows.Scan(&entry.ID, &entry.ReclamationID, &entry.UserID, &entry.Action,
			&entry.OldStatus, &entry.NewStatus, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
			return nil, err
		}
		history = append(history, entry)
	}
	return history, rows.Err()
}

func (r *ReclamationRepository) CreateAttachment(ctx context.Context, attachment entities.Attachment) (*entities.Attachment, error) {
	query := `INSERT INTO reclamation_attachments (reclamation_id, uploader_id, file_name, file_path, file_size)
		 VALUES($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	err := r.storage.QueryRow(ctx, query, attachment.ReclamationID, attachment.UploaderID,
		attachment.FileName, attachment.FilePath, attachment.FileSize).
		Scan(&attachment.ID, &attachment.CreatedAt, &attachment.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

func (r *ReclamationRepository) GetAttachments(ctx context.Context, reclamationID uint64) ([]entities.Attachment, error) {
	query := `SELECT id, reclamation_id, uploader_id, file_name, file_path, file_size, created_at, updated_at
		FROM reclamation_attachments WHERE reclamation_id = $1 ORDER BY id ASC`
	rows, err := r.storage.Query(ctx, query, reclamationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	attachments := make([]entities.Attachment, 0)
	for rows.Next() {
		var attachment entities.Attachment
		if err := rows.Scan(&attachment.ID, &attachment.ReclamationID, &attachment.UploaderID,
			&attachment.FileName, &attachment.FilePath, &attachment.FileSize,
			&attachment.CreatedAt, &attachment.UpdatedAt); err != nil {
			return nil, err
		}
		attachments = append(attachments, attachment)
	}
	return attachments, rows.Err()
}

func (r *ReclamationRepository) FindAttachment(ctx context.Context, id uint64) (*entities.Attachment, error) {
	var attachment entities.Attachment
	err := r.storage.QueryRow(ctx,
		`SELECT id, reclamation_id, uploader_id, file_name, file_path, file_size, created_at, updated_at
		 FROM reclamation_attachments WHERE id = $1`, id).
		Scan(&attachment.ID, &attachment.ReclamationID, &attachment.UploaderID,
			&attachment.FileName, &attachment.FilePath, &attachment.FileSize,
			&attachment.CreatedAt, &attachment.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

func (r *ReclamationRepository) DeleteAttachment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM reclamation_attachments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
