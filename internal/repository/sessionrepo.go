package repository

import (
	"context"

	"github.com/arnabbiswas100/ANY-note/internal/model"
	"github.com/gofrs/uuid/v5"
)

// SessionRepository tracks issued sessions so that logout can revoke a
// token before its expiry.
type SessionRepository interface {
	// Create records a new session.
	Create(ctx context.Context, s *model.Session) error
	// Get loads a session by ID.
	Get(ctx context.Context, id uuid.UUID) (*model.Session, error)
	// Delete removes a session; a token bearing its ID is rejected afterwards.
	Delete(ctx context.Context, id uuid.UUID) error
}
