package controllers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-system/internal/dto"
	"hospital-system/internal/entities"
	"hospital-system/internal/services"
	"hospital-system/pkg/contextkeys"
	apperrors "hospital-system/pkg/errors"
	"hospital-system/pkg/middleware"
	"hospital-system/pkg/types"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeBesoinRepo struct{}

func (fakeBesoinRepo) GetBesoins(_ context.Context, _ types.Filter) ([]entities.Besoin, uint64, error) {
	return []entities.Besoin{}, 0, nil
}

func (fakeBesoinRepo) FindBesoin(_ context.Context, _ uint64) (*entities.Besoin, error) {
	return nil, apperrors.ErrNotFound
}

func (fakeBesoinRepo) CreateBesoin(_ context.Context, _ entities.Besoin) (*entities.Besoin, error) {
	return nil, apperrors.ErrNotFound
}

func (fakeBesoinRepo) UpdateBesoin(_ context.Context, _ uint64, _ dto.UpdateBesoinDTO) (*entities.Besoin, error) {
	return nil, apperrors.ErrNotFound
}

func (fakeBesoinRepo) DeleteBesoin(_ context.Context, _ uint64) error {
	return apperrors.ErrNotFound
}

type fakeReclamationRepo struct{}

func (fakeReclamationRepo) GetReclamations(_ context.Context, _ types.Filter) ([]entities.Reclamation, uint64, error) {
	return []entities.Reclamation{}, 0, nil
}

func (fakeReclamationRepo) FindReclamation(_ context.Context, _ uint64) (*entities.Reclamation, error) {
	return nil, apperrors.ErrNotFound
}

func (fakeReclamationRepo) CreateReclamation(_ context.Context, _ entities.Reclamation) (*entities.Reclamation, error) {
	return nil, apperrors.ErrNotFound
}

func (fakeReclamationRepo) UpdateReclamation(_ context.Context, _ uint64, _ dto.UpdateReclamationDTO) (*entities.Reclamation, error) {
	return nil, apperrors.ErrNotFound
}

func (fakeReclamationRepo) DeleteReclamation(_ context.Context, _ uint64) error {
	return apperrors.ErrNotFound
}

func (fakeReclamationRepo) CreateComment(_ context.Context, _ entities.ReclamationComment) (*entities.ReclamationComment, error) {
	return nil, apperrors.ErrNotFound
}

func (fakeReclamationRepo) GetComments(_ context.Context, _ uint64) ([]entities.ReclamationComment, error) {
	return nil, nil
}

func (fakeReclamationRepo) CreateHistoryEntry(_ context.Context, _ entities.ReclamationHistory) error {
	return nil
}

func (fakeReclamationRepo) GetHistory(_ context.Context, _ uint64) ([]entities.ReclamationHistory, error) {
	return nil, nil
}

func (fakeReclamationRepo) CreateAttachment(_ context.Context, _ entities.Attachment) (*entities.Attachment, error) {
	return nil, apperrors.ErrNotFound
}

func (fakeReclamationRepo) GetAttachments(_ context.Context, _ uint64) ([]entities.Attachment, error) {
	return nil, nil
}

func (fakeReclamationRepo) FindAttachment(_ context.Context, _ uint64) (*entities.Attachment, error) {
	return nil, apperrors.ErrNotFound
}

func (fakeReclamationRepo) DeleteAttachment(_ context.Context, _ uint64) error {
	return apperrors.ErrNotFound
}

type noopFileStorage struct{}

func (noopFileStorage) Save(_ io.Reader, _ string, _ string) (string, error) { return "", nil }
func (noopFileStorage) Delete(_ string) error                                { return nil }

func departmentListRequest(t *testing.T, handler echo.HandlerFunc, role string, department *uint64, pathID string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	ctx := req.Context()
	ctx = context.WithValue(ctx, contextkeys.UserRoleKey, role)
	if department != nil {
		ctx = context.WithValue(ctx, contextkeys.DepartmentIDKey, *department)
	}
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	ec := e.NewContext(req, rec)
	ec.SetParamNames("id")
	ec.SetParamValues(pathID)
	_ = handler(ec)
	return rec
}

func TestGetDepartmentBesoinsScoping(t *testing.T) {
	svc := services.NewBesoinService(fakeBesoinRepo{}, zap.NewNop())
	ctrl := NewBesoinController(svc, zap.NewNop())

	ownDepartment := uint64(5)

	// L'admin n'est pas limité à son propre service, même s'il en a un.
	rec := departmentListRequest(t, ctrl.GetDepartmentBesoins, middleware.RoleAdmin, &ownDepartment, "7")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Un chef est borné à son service.
	rec = departmentListRequest(t, ctrl.GetDepartmentBesoins, middleware.RoleChefService, &ownDepartment, "7")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = departmentListRequest(t, ctrl.GetDepartmentBesoins, middleware.RoleChefService, &ownDepartment, "5")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetDepartmentReclamationsScoping(t *testing.T) {
	svc := services.NewReclamationService(fakeReclamationRepo{}, noopFileStorage{}, zap.NewNop())
	ctrl := NewReclamationController(svc, 1<<20, zap.NewNop())

	ownDepartment := uint64(5)

	rec := departmentListRequest(t, ctrl.GetDepartmentReclamations, middleware.RoleAdmin, &ownDepartment, "7")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = departmentListRequest(t, ctrl.GetDepartmentReclamations, middleware.RoleChefService, &ownDepartment, "7")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = departmentListRequest(t, ctrl.GetDepartmentReclamations, middleware.RoleChefService, &ownDepartment, "5")
	assert.Equal(t, http.StatusOK, rec.Code)
}
