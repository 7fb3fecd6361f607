package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/cv-builder/internal/assemble"
	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/validation"
)

// ErrCVNotFound indicates the requested CV does not exist
type ErrCVNotFound struct {
	ID uuid.UUID
}

func (e *ErrCVNotFound) Error() string {
	return fmt.Sprintf("cv not found: %s", e.ID)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrAIDisabled indicates the AI endpoints are not configured
type ErrAIDisabled struct{}

func (e *ErrAIDisabled) Error() string {
	return "ai assistance is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var assetErr *assemble.AssetFetchError
	if errors.As(err, &assetErr) {
		return http.StatusBadGateway
	}
	var fieldErr *validation.Error
	if errors.As(err, &fieldErr) {
		return http.StatusBadRequest
	}
	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		return http.StatusBadRequest
	}

	switch err.(type) {
	case *ErrCVNotFound:
		return http.StatusNotFound
	case *ErrInvalidCredentials, *ErrPasswordMismatch:
		return http.StatusUnauthorized
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrAIDisabled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
