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

const exitFormTable = "exit_forms"

var (
	exitFormAllowedFilterFields = map[string]string{
		"status": "ef.status",
	}
	exitFormAllowedSortFields = map[string]string{
		"id": "ef.id", "reference": "ef.reference", "date": "ef.date",
		"status": "ef.status", "created_at": "ef.created_at",
	}
)

// ExitFormUpdate porte les champs interprétés par le service; EquipmentIDs
// non nil remplace la liste liée en bloc.
type ExitFormUpdate struct {
	Reference    *string
	Date         *time.Time
	Description  *string
	Status       *string
	EquipmentIDs []uint64
}

type ExitFormRepositoryInterface interface {
	GetExitForms(ctx context.Context, filter types.Filter) ([]entities.ExitForm, uint64, error)
	FindExitForm(ctx context.Context, id uint64) (*entities.ExitForm, error)
	CreateExitForm(ctx context.Context, form entities.ExitForm) (*entities.ExitForm, error)
	UpdateExitForm(ctx context.Context, id uint64, update ExitFormUpdate) (*entities.ExitForm, error)
	SetDocumentPath(ctx context.Context, id uint64, path string) error
	DeleteExitForm(ctx context.Context, id uint64) error
}

type ExitFormRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewExitFormRepository(storage *pgxpool.Pool, logger *zap.Logger) ExitFormRepositoryInterface {
	return &ExitFormRepository{storage: storage, logger: logger}
}

const exitFormColumns = `ef.id, ef.reference, ef.date, ef.description, ef.document_path, ef.status,
	ef.created_at, ef.updated_at`

func scanExitForm(row pgx.Row) (*entities.ExitForm, error) {
	var form entities.ExitForm
	err := row.Scan(&form.ID, &form.Reference, &form.Date, &form.Description, &form.DocumentPath,
		&form.Status, &form.CreatedAt, &form.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan exit form: %w", err)
	}
	return &form, nil
}

func (r *ExitFormRepository) loadEquipments(ctx context.Context, formIDs []uint64) (map[uint64][]entities.Equipment, error) {
	if len(formIDs) == 0 {
		return map[uint64][]entities.Equipment{}, nil
	}
	query, args, err := sq.Select("efe.exit_form_id", "e.id", "e.name", "e.serial_number").
		From("exit_form_equipments efe").
		Join("equipments e ON e.id = efe.equipment_id").
		Where(sq.Eq{"efe.exit_form_id": formIDs}).
		OrderBy("e.id ASC").
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
	equipmentsByForm := make(map[uint64][]entities.Equipment)
	for rows.Next() {
		var formID uint64
		var equipment entities.Equipment
		if err := rows.Scan(&formID, &equipment.ID, &equipment.Name, &equipment.SerialNumber); err != nil {
			return nil, err
		}
		equipmentsByForm[formID] = append(equipmentsByForm[formID], equipment)
	}
	return equipmentsByForm, rows.Err()
}

func attachFormEquipments(form *entities.ExitForm, equipments []entities.Equipment) {
	if equipments == nil {
		equipments = []entities.Equipment{}
	}
	form.Equipments = equipments
	form.EquipmentIDs = make([]uint64, 0, len(equipments))
	for _, equipment := range equipments {
		form.EquipmentIDs = append(form.EquipmentIDs, equipment.ID)
	}
}

func (r *ExitFormRepository) buildFilterQuery(filter types.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argCounter := 1
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(ef.reference ILIKE $%d OR ef.description ILIKE $%d)", argCounter, argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	for key, value := range filter.Filter {
		if dbColumn, ok := exitFormAllowedFilterFields[key]; ok {
			conditions = append(conditions, buildInCondition(dbColumn, value, &argCounter, &args))
		}
	}
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *ExitFormRepository) countExitForms(ctx context.Context, filter types.Filter) (uint64, error) {
	whereClause, args := r.buildFilterQuery(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM exit_forms "ef" %s`, whereClause)
	var total uint64
	err := r.storage.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}

func (r *ExitFormRepository) GetExitForms(ctx context.Context, filter types.Filter) ([]entities.ExitForm, uint64, error) {
	total, err := r.countExitForms(ctx, filter)
	if err != nil || total == 0 {
		return []entities.ExitForm{}, total, err
	}
	whereClause, args := r.buildFilterQuery(filter)
	orderByClause := buildOrderByClause(filter.Sort, exitFormAllowedSortFields, "ORDER BY ef.id DESC")
	limitClause := ""
	argCounter := len(args) + 1
	if filter.WithPagination {
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}
	query := fmt.Sprintf(`SELECT %s FROM exit_forms "ef" %s %s %s`, exitFormColumns, whereClause, orderByClause, limitClause)
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	forms := make([]entities.ExitForm, 0)
	formIDs := make([]uint64, 0)
	for rows.Next() {
		form, err := scanExitForm(rows)
		if err != nil {
			return nil, 0, err
		}
		forms = append(forms, *form)
		formIDs = append(formIDs, form.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	equipmentsByForm, err := r.loadEquipments(ctx, formIDs)
	if err != nil {
		return nil, 0, err
	}
	for i := range forms {
		attachFormEquipments(&forms[i], equipmentsByForm[forms[i].ID])
	}
	return forms, total, nil
}

func (r *ExitFormRepository) FindExitForm(ctx context.Context, id uint64) (*entities.ExitForm, error) {
	query := fmt.Sprintf(`SELECT %s FROM exit_forms "ef" WHERE ef.id = $1`, exitFormColumns)
	form, err := scanExitForm(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	equipmentsByForm, err := r.loadEquipments(ctx, []uint64{form.ID})
	if err != nil {
		return nil, err
	}
	attachFormEquipments(form, equipmentsByForm[form.ID])
	return form, nil
}

func (r *ExitFormRepository) CreateExitForm(ctx context.Context, form entities.ExitForm) (*entities.ExitForm, error) {
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var id uint64
	err = tx.QueryRow(ctx,
		`INSERT INTO exit_forms (reference, date, description, document_path, status)
		 VALUES($1, $2, $3, $4, $5) RETURNING id`,
		form.Reference, form.Date, form.Description, form.DocumentPath, form.Status).Scan(&id)
	if err != nil {
		return nil, err
	}
	for _, equipmentID := range form.EquipmentIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO exit_form_equipments (exit_form_id, equipment_id) VALUES($1, $2)`,
			id, equipmentID); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.FindExitForm(ctx, id)
}

func (r *ExitFormRepository) UpdateExitForm(ctx context.Context, id uint64, update ExitFormUpdate) (*entities.ExitForm, error) {
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	updateBuilder := sq.Update(exitFormTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))
	hasChanges := false
	if update.Reference != nil {
		updateBuilder = updateBuilder.Set("reference", *update.Reference)
		hasChanges = true
	}
	if update.Date != nil {
		updateBuilder = updateBuilder.Set("date", *update.Date)
		hasChanges = true
	}
	if update.Description != nil {
		updateBuilder = updateBuilder.Set("description", *update.Description)
		hasChanges = true
	}
	if update.Status != nil {
		updateBuilder = updateBuilder.Set("status", *update.Status)
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
	} else if update.EquipmentIDs == nil {
		return r.FindExitForm(ctx, id)
	}

	if update.EquipmentIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM exit_form_equipments WHERE exit_form_id = $1`, id); err != nil {
			return nil, err
		}
		for _, equipmentID := range update.EquipmentIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO exit_form_equipments (exit_form_id, equipment_id) VALUES($1, $2)`,
				id, equipmentID); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.FindExitForm(ctx, id)
}

func (r *ExitFormRepository) SetDocumentPath(ctx context.Context, id uint64, path string) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE exit_forms SET document_path = $1, updated_at = NOW() WHERE id = $2`, path, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ExitFormRepository) DeleteExitForm(ctx context.Context, id uint64) error {
	// Les lignes de liaison partent via ON DELETE CASCADE.
	result, err := r.storage.Exec(ctx, `DELETE FROM exit_forms WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
