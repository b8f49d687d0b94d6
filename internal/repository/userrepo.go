// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/arnabbiswas100/ANY-note/internal/model"
)

// UserRepository provides account persistence and lookup.
type UserRepository interface {
	// Create inserts the account and its starter folder in one
	// transaction and fills in the assigned IDs. Either both rows
	// commit or neither does.
	Create(ctx context.Context, u *model.Account, starter *model.Folder) error
	// GetByID loads an account by ID.
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	// GetByUsername loads an account by username.
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
}
