package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/cv-builder/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTService(t *testing.T) *JWTService {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-key-for-jwt-tests")
	cfg, err := config.NewJWTConfig()
	require.NoError(t, err)
	return NewJWTService(cfg)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newJWTService(t)
	adminID := uuid.New()

	token, err := svc.GenerateToken(adminID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.AdminID)
	assert.Equal(t, adminID, claims.GetAdminID())
}

func TestJWTService_EmptyToken(t *testing.T) {
	svc := newJWTService(t)

	_, err := svc.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newJWTService(t)

	_, err := svc.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newJWTService(t)
	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "a-completely-different-secret")
	otherCfg, err := config.NewJWTConfig()
	require.NoError(t, err)
	other := NewJWTService(otherCfg)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidatorAdapter(t *testing.T) {
	svc := newJWTService(t)
	adminID := uuid.New()

	token, err := svc.GenerateToken(adminID)
	require.NoError(t, err)

	validator := svc.AsTokenValidator()
	claims, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.GetAdminID())

	_, err = validator.ValidateToken("forged")
	assert.Error(t, err)
}
