package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/cv-builder/internal/types"
)

// CreateCV stores a new CV document and returns its record. The record ID is
// generated here and written back into the document.
func (db *DB) CreateCV(ctx context.Context, cv *types.CV) (*CVRecord, error) {
	id := uuid.New()
	cv.ID = id.String()
	if cv.Status == "" {
		cv.Status = types.StatusPending
	}

	data, err := json.Marshal(cv)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cv: %w", err)
	}

	var rec CVRecord
	rec.CV = *cv
	err = db.pool.QueryRow(ctx,
		`INSERT INTO cvs (id, full_name, data, status, viewed)
		 VALUES ($1, $2, $3, $4, FALSE)
		 RETURNING id, status, viewed, created_at, updated_at`,
		id, cv.FullName, data, cv.Status,
	).Scan(&rec.ID, &rec.Status, &rec.Viewed, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create cv: %w", err)
	}
	return &rec, nil
}

// GetCV retrieves a CV by ID. Returns (nil, nil) when no record exists.
func (db *DB) GetCV(ctx context.Context, id uuid.UUID) (*CVRecord, error) {
	var rec CVRecord
	var data []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, data, status, viewed, created_at, updated_at
		 FROM cvs WHERE id = $1`,
		id,
	).Scan(&rec.ID, &data, &rec.Status, &rec.Viewed, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cv: %w", err)
	}

	if err := json.Unmarshal(data, &rec.CV); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cv %s: %w", id, err)
	}
	// Lifted columns are authoritative
	rec.CV.Status = rec.Status
	rec.CV.Viewed = rec.Viewed
	return &rec, nil
}

// UpdateCV replaces the stored document for an existing CV.
func (db *DB) UpdateCV(ctx context.Context, id uuid.UUID, cv *types.CV) error {
	cv.ID = id.String()
	data, err := json.Marshal(cv)
	if err != nil {
		return fmt.Errorf("failed to marshal cv: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE cvs SET full_name = $1, data = $2, updated_at = NOW() WHERE id = $3`,
		cv.FullName, data, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update cv: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("cv not found: %s", id)
	}
	return nil
}

// UpdateCVStatus sets the review status of a CV.
func (db *DB) UpdateCVStatus(ctx context.Context, id uuid.UUID, status types.CVStatus) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE cvs SET status = $1, data = jsonb_set(data, '{status}', to_jsonb($1::text)), updated_at = NOW()
		 WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update cv status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("cv not found: %s", id)
	}
	return nil
}

// MarkCVViewed flags a CV as seen by an admin.
func (db *DB) MarkCVViewed(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE cvs SET viewed = TRUE, data = jsonb_set(data, '{viewed}', 'true'), updated_at = NOW()
		 WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark cv viewed: %w", err)
	}
	return nil
}

// UpdateCVTemplate stores a template selection and its settings without
// touching the rest of the document.
func (db *DB) UpdateCVTemplate(ctx context.Context, id uuid.UUID, templateID string, settings types.TemplateSettings) error {
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal template settings: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE cvs
		 SET data = jsonb_set(jsonb_set(data, '{selectedTemplate}', to_jsonb($1::text)), '{templateSettings}', $2::jsonb),
		     updated_at = NOW()
		 WHERE id = $3`,
		templateID, settingsJSON, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update cv template: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("cv not found: %s", id)
	}
	return nil
}

// DeleteCV removes a CV record.
func (db *DB) DeleteCV(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM cvs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cv: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("cv not found: %s", id)
	}
	return nil
}

// ListCVs retrieves CV summaries with optional filters, newest first.
func (db *DB) ListCVs(ctx context.Context, filters CVFilters) ([]CVSummary, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, full_name, status, viewed, created_at FROM cvs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}
	if filters.Viewed != nil {
		query += fmt.Sprintf(" AND viewed = $%d", argNum)
		args = append(args, *filters.Viewed)
		argNum++
	}
	if filters.Search != "" {
		query += fmt.Sprintf(" AND full_name ILIKE '%%' || $%d || '%%'", argNum)
		args = append(args, filters.Search)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cvs: %w", err)
	}
	defer rows.Close()

	var cvs []CVSummary
	for rows.Next() {
		var s CVSummary
		if err := rows.Scan(&s.ID, &s.FullName, &s.Status, &s.Viewed, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cv: %w", err)
		}
		cvs = append(cvs, s)
	}
	return cvs, nil
}

// CountCVsByStatus returns how many CVs are in each status.
func (db *DB) CountCVsByStatus(ctx context.Context) (map[types.CVStatus]int, error) {
	rows, err := db.pool.Query(ctx, `SELECT status, COUNT(*) FROM cvs GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count cvs: %w", err)
	}
	defer rows.Close()

	counts := make(map[types.CVStatus]int)
	for rows.Next() {
		var status types.CVStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[status] = n
	}
	return counts, nil
}
