package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-system/pkg/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func performRequest(t *testing.T, handler echo.HandlerFunc, token string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	_ = handler(ctx)
	return rec
}

func newTestJWT(t *testing.T) service.JWTService {
	t.Helper()
	return service.NewJWTService("secret-de-test", time.Minute, time.Hour, zap.NewNop())
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(newTestJWT(t), zap.NewNop())
	rec := performRequest(t, mw.Auth(okHandler), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	mw := NewAuthMiddleware(newTestJWT(t), zap.NewNop())
	rec := performRequest(t, mw.Auth(okHandler), "nimporte-quoi")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsRefreshTokenOnAccessRoutes(t *testing.T) {
	jwtSvc := newTestJWT(t)
	mw := NewAuthMiddleware(jwtSvc, zap.NewNop())

	_, refresh, err := jwtSvc.GenerateTokens(1, "admin", nil)
	require.NoError(t, err)

	rec := performRequest(t, mw.Auth(okHandler), refresh)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthAcceptsAccessTokenAndPopulatesContext(t *testing.T) {
	jwtSvc := newTestJWT(t)
	mw := NewAuthMiddleware(jwtSvc, zap.NewNop())

	departmentID := uint64(9)
	access, _, err := jwtSvc.GenerateTokens(12, "chef service", &departmentID)
	require.NoError(t, err)

	var seenUserID uint64
	var seenDepartment uint64
	var hasDepartment bool
	handler := mw.Auth(func(c echo.Context) error {
		id, err := UserIDFromContext(c.Request().Context())
		require.NoError(t, err)
		seenUserID = id
		seenDepartment, hasDepartment = DepartmentIDFromContext(c.Request().Context())
		return c.String(http.StatusOK, "ok")
	})

	rec := performRequest(t, handler, access)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 12, seenUserID)
	assert.True(t, hasDepartment)
	assert.EqualValues(t, 9, seenDepartment)
}

func TestAdminOnlyBlocksOtherRoles(t *testing.T) {
	jwtSvc := newTestJWT(t)
	mw := NewAuthMiddleware(jwtSvc, zap.NewNop())

	access, _, err := jwtSvc.GenerateTokens(3, "technicien", nil)
	require.NoError(t, err)

	rec := performRequest(t, mw.Auth(mw.AdminOnly(okHandler)), access)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	jwtSvc := newTestJWT(t)
	mw := NewAuthMiddleware(jwtSvc, zap.NewNop())

	access, _, err := jwtSvc.GenerateTokens(3, RoleAdmin, nil)
	require.NoError(t, err)

	rec := performRequest(t, mw.Auth(mw.AdminOnly(okHandler)), access)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDepartmentOnlyRequiresChefWithDepartment(t *testing.T) {
	jwtSvc := newTestJWT(t)
	mw := NewAuthMiddleware(jwtSvc, zap.NewNop())

	// Chef sans service affecté: refusé.
	access, _, err := jwtSvc.GenerateTokens(5, RoleChefService, nil)
	require.NoError(t, err)
	rec := performRequest(t, mw.Auth(mw.DepartmentOnly(okHandler)), access)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Chef avec service: accepté.
	departmentID := uint64(2)
	access, _, err = jwtSvc.GenerateTokens(5, RoleChefService, &departmentID)
	require.NoError(t, err)
	rec = performRequest(t, mw.Auth(mw.DepartmentOnly(okHandler)), access)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Admin passe toujours.
	access, _, err = jwtSvc.GenerateTokens(1, RoleAdmin, nil)
	require.NoError(t, err)
	rec = performRequest(t, mw.Auth(mw.DepartmentOnly(okHandler)), access)
	assert.Equal(t, http.StatusOK, rec.Code)
}
