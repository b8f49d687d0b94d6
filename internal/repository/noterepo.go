package repository

import (
	"context"

	"github.com/arnabbiswas100/ANY-note/internal/model"
)

// NoteRepository provides owner-scoped access to notes. Every operation
// carries the owning account ID and matches rows only within that scope.
type NoteRepository interface {
	// List returns the account's notes, pinned first, most recently
	// updated first. folderID zero means all folders.
	List(ctx context.Context, ownerID, folderID int64) ([]model.Note, error)

	// Create inserts a note and returns it with ID and timestamps set.
	Create(ctx context.Context, ownerID int64, in model.CreateNote) (*model.Note, error)

	// Update rewrites title/content/color and refreshes updated_at.
	Update(ctx context.Context, ownerID, noteID int64, in model.UpdateNote) (*model.Note, error)

	// Delete removes the note permanently.
	Delete(ctx context.Context, ownerID, noteID int64) error

	// TogglePin atomically flips the pinned flag and returns the new state.
	TogglePin(ctx context.Context, ownerID, noteID int64) (bool, error)

	// Move reassigns the note's folder. folderID zero files the note as
	// unfiled; otherwise the destination must belong to the same account.
	Move(ctx context.Context, ownerID, noteID, folderID int64) error
}
