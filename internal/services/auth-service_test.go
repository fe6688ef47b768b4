package services

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"hospital-system/internal/dto"
	"hospital-system/internal/entities"
	"hospital-system/internal/repositories"
	"hospital-system/pkg/config"
	apperrors "hospital-system/pkg/errors"
	"hospital-system/pkg/service"
	"hospital-system/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[uint64]*entities.User
}

func (f *fakeUserRepo) GetUsers(_ context.Context, _ types.Filter) ([]entities.User, uint64, error) {
	result := make([]entities.User, 0, len(f.users))
	for _, u := range f.users {
		result = append(result, *u)
	}
	return result, uint64(len(result)), nil
}

func (f *fakeUserRepo) FindUser(_ context.Context, id uint64) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if strings.EqualFold(user.Email, email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user entities.User) (*entities.User, error) {
	user.ID = uint64(len(f.users) + 1)
	f.users[user.ID] = &user
	copied := user
	return &copied, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, id uint64, _ repositories.UserUpdate) (*entities.User, error) {
	return f.FindUser(context.Background(), id)
}

func (f *fakeUserRepo) SetPhotoPath(_ context.Context, id uint64, path string) error {
	user, ok := f.users[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	user.PhotoURL = &path
	return nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, id uint64) error {
	delete(f.users, id)
	return nil
}

// fakeCacheRepo imite le compteur de tentatives qui vit normalement dans Redis.
type fakeCacheRepo struct {
	values   map[string][]byte
	attempts map[string]int64
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{values: map[string][]byte{}, attempts: map[string]int64{}}
}

func (f *fakeCacheRepo) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := f.values[key]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return value, nil
}

func (f *fakeCacheRepo) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.values[key] = value
	return nil
}

func (f *fakeCacheRepo) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeCacheRepo) LoginAttempts(_ context.Context, email string) (int64, error) {
	return f.attempts[email], nil
}

func (f *fakeCacheRepo) IncrementLoginAttempts(_ context.Context, email string, _ time.Duration) (int64, error) {
	f.attempts[email]++
	return f.attempts[email], nil
}

func (f *fakeCacheRepo) ResetLoginAttempts(_ context.Context, email string) error {
	delete(f.attempts, email)
	return nil
}

func newAuthServiceForTest(t *testing.T) (*AuthService, *fakeUserRepo, *fakeCacheRepo) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("SecretValide123"), bcrypt.MinCost)
	require.NoError(t, err)

	departmentID := uint64(4)
	users := &fakeUserRepo{users: map[uint64]*entities.User{
		1: {
			ID:           1,
			FirstName:    "Amina",
			LastName:     "Haddad",
			Username:     "ahaddad",
			Email:        "amina@hopital.local",
			Password:     string(hashed),
			RoleID:       2,
			DepartmentID: &departmentID,
			Role:         &entities.Role{ID: 2, Name: "chef service"},
			Department:   &entities.Department{ID: 4, Name: "Radiologie"},
		},
	}}
	cache := newFakeCacheRepo()
	jwtSvc := service.NewJWTService("test-secret", time.Minute, time.Hour, zap.NewNop())
	authCfg := &config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: time.Minute}
	return NewAuthService(users, cache, jwtSvc, authCfg, zap.NewNop()), users, cache
}

func TestLoginSuccessReturnsTokensAndResetsCounter(t *testing.T) {
	svc, _, cache := newAuthServiceForTest(t)
	cache.attempts["amina@hopital.local"] = 2

	res, err := svc.Login(context.Background(), dto.LoginDTO{Email: "amina@hopital.local", Password: "SecretValide123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, "chef service", res.User.Role.Name)
	require.NotNil(t, res.User.Department)
	assert.Equal(t, "Radiologie", res.User.Department.Name)
	assert.Zero(t, cache.attempts["amina@hopital.local"])
}

func TestLoginWrongPasswordReturnsUnauthorized(t *testing.T) {
	svc, _, cache := newAuthServiceForTest(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "amina@hopital.local", Password: "mauvais"})
	require.Error(t, err)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	assert.EqualValues(t, 1, cache.attempts["amina@hopital.local"])
}

func TestLoginLockedAfterTooManyFailures(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t)

	var lastErr error
	for i := 0; i < 3; i++ {
		_, lastErr = svc.Login(context.Background(), dto.LoginDTO{Email: "amina@hopital.local", Password: "mauvais"})
	}
	require.Error(t, lastErr)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, lastErr, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
}

func TestLoginLockedRejectsCorrectPassword(t *testing.T) {
	svc, _, cache := newAuthServiceForTest(t)

	for i := 0; i < 3; i++ {
		_, _ = svc.Login(context.Background(), dto.LoginDTO{Email: "amina@hopital.local", Password: "mauvais"})
	}

	// Le bon mot de passe ne passe pas tant que la fenêtre court.
	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "amina@hopital.local", Password: "SecretValide123"})
	require.Error(t, err)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
	assert.EqualValues(t, 3, cache.attempts["amina@hopital.local"])

	// Compteur expiré: la connexion redevient possible.
	require.NoError(t, cache.ResetLoginAttempts(context.Background(), "amina@hopital.local"))
	res, err := svc.Login(context.Background(), dto.LoginDTO{Email: "amina@hopital.local", Password: "SecretValide123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
}

func TestLoginUnknownEmailReturnsUnauthorized(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "inconnu@hopital.local", Password: "peu importe"})
	require.Error(t, err)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t)

	res, err := svc.Login(context.Background(), dto.LoginDTO{Email: "amina@hopital.local", Password: "SecretValide123"})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), dto.RefreshTokenDTO{RefreshToken: res.AccessToken})
	require.Error(t, err)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRefreshTokenIssuesNewPair(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t)

	res, err := svc.Login(context.Background(), dto.LoginDTO{Email: "amina@hopital.local", Password: "SecretValide123"})
	require.NoError(t, err)

	renewed, err := svc.RefreshToken(context.Background(), dto.RefreshTokenDTO{RefreshToken: res.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, renewed.AccessToken)
	assert.Equal(t, res.User.ID, renewed.User.ID)
}
