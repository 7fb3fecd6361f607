package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig_DefaultCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("PASSWORD_PEPPER", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost, "should use default cost of 12")
	assert.Empty(t, cfg.Pepper)
}

func TestNewPasswordConfig_CostOutOfRange(t *testing.T) {
	for _, cost := range []string{"9", "15", "abc"} {
		t.Setenv("BCRYPT_COST", cost)
		_, err := NewPasswordConfig()
		assert.Error(t, err, "cost %s should be rejected", cost)
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, cfg.VerifyPassword("s3cret-password", hash))
	assert.False(t, cfg.VerifyPassword("wrong-password", hash))
}

func TestVerifyPassword_PepperMismatch(t *testing.T) {
	withPepper := &PasswordConfig{BcryptCost: 10, Pepper: "pepper-a"}
	withoutPepper := &PasswordConfig{BcryptCost: 10}

	hash, err := withPepper.HashPassword("s3cret-password")
	require.NoError(t, err)

	assert.True(t, withPepper.VerifyPassword("s3cret-password", hash))
	assert.False(t, withoutPepper.VerifyPassword("s3cret-password", hash))
}
