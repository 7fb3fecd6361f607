package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateAdmin stores a new administrator account. The password must already
// be hashed by the caller.
func (db *DB) CreateAdmin(ctx context.Context, email, passwordHash string) (*Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("admin email cannot be empty")
	}

	var a Admin
	err := db.pool.QueryRow(ctx,
		`INSERT INTO admins (id, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, email, password_hash, created_at`,
		uuid.New(), email, passwordHash,
	).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return &a, nil
}

// GetAdminByEmail retrieves an admin account. Returns (nil, nil) when no
// account exists for the address.
func (db *DB) GetAdminByEmail(ctx context.Context, email string) (*Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var a Admin
	err := db.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM admins WHERE email = $1`,
		email,
	).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &a, nil
}

// GetAdminByID retrieves an admin account by ID. Returns (nil, nil) when no
// account exists.
func (db *DB) GetAdminByID(ctx context.Context, id uuid.UUID) (*Admin, error) {
	var a Admin
	err := db.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM admins WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &a, nil
}

// UpdateAdminPassword replaces an admin's password hash.
func (db *DB) UpdateAdminPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE admins SET password_hash = $1 WHERE id = $2`,
		passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update admin password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("admin not found: %s", id)
	}
	return nil
}
