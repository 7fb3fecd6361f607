package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/db"
)

// AdminService handles admin account operations: authentication and
// password management.
type AdminService struct {
	db        *db.DB
	passwords *config.PasswordConfig
}

// NewAdminService creates a new admin service.
func NewAdminService(database *db.DB, passwords *config.PasswordConfig) *AdminService {
	return &AdminService{
		db:        database,
		passwords: passwords,
	}
}

// Authenticate verifies an email/password pair and returns the admin account.
// Both an unknown email and a wrong password return ErrInvalidCredentials so
// the response does not reveal which part failed.
func (s *AdminService) Authenticate(ctx context.Context, email, password string) (*db.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.db.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwords.VerifyPassword(password, admin.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return admin, nil
}

// UpdatePassword changes an admin's password after verifying the current one.
func (s *AdminService) UpdatePassword(ctx context.Context, adminID uuid.UUID, currentPassword, newPassword string) error {
	admin, err := s.db.GetAdminByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		return &ErrInvalidCredentials{}
	}

	if !s.passwords.VerifyPassword(currentPassword, admin.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	hash, err := s.passwords.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.UpdateAdminPassword(ctx, adminID, hash); err != nil {
		return fmt.Errorf("failed to store password: %w", err)
	}
	return nil
}

// EnsureAdmin creates the admin account when it does not exist yet. Used at
// startup to bootstrap the first account from the environment.
func (s *AdminService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	existing, err := s.db.GetAdminByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := s.passwords.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.db.CreateAdmin(ctx, email, hash); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}
