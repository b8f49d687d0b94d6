package repository

import (
	"context"

	"github.com/arnabbiswas100/ANY-note/internal/model"
)

// FolderRepository provides owner-scoped access to folders.
// Folder deletion is deliberately absent.
type FolderRepository interface {
	// List returns the account's folders in creation order.
	List(ctx context.Context, ownerID int64) ([]model.Folder, error)
	// Create inserts a folder and returns it with ID and timestamp set.
	Create(ctx context.Context, ownerID int64, name, color string) (*model.Folder, error)
	// Rename changes the folder name in place.
	Rename(ctx context.Context, ownerID, folderID int64, name string) error
	// Recolor changes the folder color in place.
	Recolor(ctx context.Context, ownerID, folderID int64, color string) error
}
