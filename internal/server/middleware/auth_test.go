package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClaims implements AdminIDGetter for tests.
type fakeClaims struct {
	adminID uuid.UUID
}

func (c *fakeClaims) GetAdminID() uuid.UUID { return c.adminID }

// fakeValidator accepts exactly one token string.
type fakeValidator struct {
	validToken string
	adminID    uuid.UUID
}

func (v *fakeValidator) ValidateToken(tokenString string) (AdminIDGetter, error) {
	if tokenString != v.validToken {
		return nil, errors.New("invalid token")
	}
	return &fakeClaims{adminID: v.adminID}, nil
}

func newAuthedHandler(t *testing.T, validator TokenValidator) (http.Handler, *uuid.UUID) {
	t.Helper()
	var seen uuid.UUID
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetAdminID(r)
		require.NoError(t, err)
		seen = id
		w.WriteHeader(http.StatusOK)
	})
	return AuthMiddleware(validator)(inner), &seen
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	adminID := uuid.New()
	handler, seen := newAuthedHandler(t, &fakeValidator{validToken: "good", adminID: adminID})

	req := httptest.NewRequest("GET", "/cvs", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, adminID, *seen)
}

func TestAuthMiddleware_CaseInsensitiveBearer(t *testing.T) {
	handler, _ := newAuthedHandler(t, &fakeValidator{validToken: "good", adminID: uuid.New()})

	req := httptest.NewRequest("GET", "/cvs", nil)
	req.Header.Set("Authorization", "bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	handler, _ := newAuthedHandler(t, &fakeValidator{validToken: "good"})

	req := httptest.NewRequest("GET", "/cvs", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	handler, _ := newAuthedHandler(t, &fakeValidator{validToken: "good"})

	for _, header := range []string{"good", "Basic good", "Bearer", "Bearer a b"} {
		req := httptest.NewRequest("GET", "/cvs", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	handler, _ := newAuthedHandler(t, &fakeValidator{validToken: "good"})

	req := httptest.NewRequest("GET", "/cvs", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetAdminID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/cvs", nil)
	_, err := GetAdminID(req)
	assert.Error(t, err)
}
