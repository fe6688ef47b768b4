package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	svc := NewJWTService("secret-de-test", time.Minute, time.Hour, zap.NewNop())

	departmentID := uint64(7)
	access, refresh, err := svc.GenerateTokens(42, "admin", &departmentID)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "admin", claims.RoleName)
	require.NotNil(t, claims.DepartmentID)
	assert.EqualValues(t, 7, *claims.DepartmentID)
	assert.False(t, claims.IsRefreshToken)

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Minute, time.Hour, zap.NewNop())
	verifier := NewJWTService("secret-b", time.Minute, time.Hour, zap.NewNop())

	access, _, err := issuer.GenerateTokens(1, "admin", nil)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService("secret-de-test", -time.Minute, -time.Minute, zap.NewNop())

	access, _, err := svc.GenerateTokens(1, "admin", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService("secret-de-test", time.Minute, time.Hour, zap.NewNop())
	_, err := svc.ValidateToken("pas-un-jeton")
	assert.Error(t, err)
}
