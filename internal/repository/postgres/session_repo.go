package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/arnabbiswas100/ANY-note/internal/errs"
	"github.com/arnabbiswas100/ANY-note/internal/model"
)

// SessionRepo implements SessionRepository using PostgreSQL.
type SessionRepo struct{ db *DB }

// NewSessionRepo constructs a session repository.
func NewSessionRepo(db *DB) *SessionRepo { return &SessionRepo{db: db} }

// Create records a newly issued session.
func (r *SessionRepo) Create(ctx context.Context, s *model.Session) error {
	const q = `
INSERT INTO sessions (id, user_id, expires_at)
VALUES ($1, $2, $3)
RETURNING created_at`
	if err := r.db.Pool.QueryRow(ctx, q, s.ID, s.AccountID, s.ExpiresAt).Scan(&s.CreatedAt); err != nil {
		return unavailable(err)
	}
	return nil
}

// Get loads a session by ID.
func (r *SessionRepo) Get(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	const q = `
SELECT id, user_id, created_at, expires_at
FROM sessions WHERE id=$1`
	var s model.Session
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(&s.ID, &s.AccountID, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, unavailable(err)
	}
	return &s, nil
}

// Delete revokes a session. Deleting an absent session reports not found.
func (r *SessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM sessions WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return unavailable(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
