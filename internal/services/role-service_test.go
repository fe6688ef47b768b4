package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"hospital-system/internal/dto"
	"hospital-system/internal/entities"
	apperrors "hospital-system/pkg/errors"
	"hospital-system/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRoleRepo struct {
	roles      map[uint64]*entities.Role
	nextID     uint64
	references map[uint64]uint64
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[uint64]*entities.Role{}, nextID: 1, references: map[uint64]uint64{}}
}

func (f *fakeRoleRepo) GetRoles(_ context.Context, _ types.Filter) ([]entities.Role, uint64, error) {
	result := make([]entities.Role, 0, len(f.roles))
	for _, r := range f.roles {
		result = append(result, *r)
	}
	return result, uint64(len(result)), nil
}

func (f *fakeRoleRepo) FindRole(_ context.Context, id uint64) (*entities.Role, error) {
	role, ok := f.roles[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *role
	return &copied, nil
}

func (f *fakeRoleRepo) FindRoleByName(_ context.Context, name string) (*entities.Role, error) {
	for _, role := range f.roles {
		if strings.EqualFold(role.Name, name) {
			copied := *role
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeRoleRepo) CreateRole(_ context.Context, role entities.Role) (*entities.Role, error) {
	role.ID = f.nextID
	f.nextID++
	f.roles[role.ID] = &role
	copied := role
	return &copied, nil
}

func (f *fakeRoleRepo) UpdateRole(_ context.Context, id uint64, payload dto.UpdateRoleDTO) (*entities.Role, error) {
	role, ok := f.roles[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if payload.Name != nil {
		role.Name = *payload.Name
	}
	copied := *role
	return &copied, nil
}

func (f *fakeRoleRepo) DeleteRole(_ context.Context, id uint64) error {
	if _, ok := f.roles[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.roles, id)
	return nil
}

func (f *fakeRoleRepo) CountReferences(_ context.Context, id uint64) (uint64, error) {
	return f.references[id], nil
}

func TestCreateRoleRejectsDuplicateName(t *testing.T) {
	repo := newFakeRoleRepo()
	svc := NewRoleService(repo, zap.NewNop())

	_, err := svc.CreateRole(context.Background(), dto.CreateRoleDTO{Name: "technicien"})
	require.NoError(t, err)

	_, err = svc.CreateRole(context.Background(), dto.CreateRoleDTO{Name: "Technicien"})
	require.Error(t, err)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
}

func TestUpdateRoleAllowsKeepingOwnName(t *testing.T) {
	repo := newFakeRoleRepo()
	svc := NewRoleService(repo, zap.NewNop())

	created, err := svc.CreateRole(context.Background(), dto.CreateRoleDTO{Name: "chef service"})
	require.NoError(t, err)

	same := "chef service"
	_, err = svc.UpdateRole(context.Background(), created.ID, dto.UpdateRoleDTO{Name: &same})
	assert.NoError(t, err)
}

func TestDeleteRoleBlockedWhenUsersStillHoldIt(t *testing.T) {
	repo := newFakeRoleRepo()
	svc := NewRoleService(repo, zap.NewNop())

	created, err := svc.CreateRole(context.Background(), dto.CreateRoleDTO{Name: "admin"})
	require.NoError(t, err)
	repo.references[created.ID] = 3

	err = svc.DeleteRole(context.Background(), created.ID)
	require.Error(t, err)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)

	repo.references[created.ID] = 0
	assert.NoError(t, svc.DeleteRole(context.Background(), created.ID))
}
