package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/arnabbiswas100/ANY-note/internal/errs"
	"github.com/arnabbiswas100/ANY-note/internal/model"
	"github.com/arnabbiswas100/ANY-note/internal/repository"
)

// FolderService defines folder operations scoped to one owning account.
// Folders are created, renamed and recolored but never deleted.
type FolderService interface {
	// List returns the account's folders in creation order.
	List(ctx context.Context, ownerID int64) ([]model.Folder, error)
	// Create inserts a folder; an absent color is drawn from the palette.
	Create(ctx context.Context, ownerID int64, name, color string) (*model.Folder, error)
	// Rename changes the folder name.
	Rename(ctx context.Context, ownerID, folderID int64, name string) error
	// Recolor changes the folder color.
	Recolor(ctx context.Context, ownerID, folderID int64, color string) error
}

type FolderServiceImpl struct {
	repo repository.FolderRepository

	// pick draws a palette index for folders created without a color.
	// Swappable in tests.
	pick func(n int) int
}

// NewFolderService constructs FolderService.
func NewFolderService(repo repository.FolderRepository) *FolderServiceImpl {
	return &FolderServiceImpl{repo: repo, pick: rand.IntN}
}

// List delegates to the repository.
func (s *FolderServiceImpl) List(ctx context.Context, ownerID int64) ([]model.Folder, error) {
	return s.repo.List(ctx, ownerID)
}

// Create requires a name. When no color is supplied, one is drawn
// uniformly from the palette.
func (s *FolderServiceImpl) Create(ctx context.Context, ownerID int64, name, color string) (*model.Folder, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty folder name", errs.ErrValidation)
	}
	if color == "" {
		color = model.Palette[s.pick(len(model.Palette))]
	} else if !model.ValidColor(color) {
		return nil, fmt.Errorf("%w: unknown color %q", errs.ErrValidation, color)
	}
	return s.repo.Create(ctx, ownerID, name, color)
}

// Rename requires a non-empty name.
func (s *FolderServiceImpl) Rename(ctx context.Context, ownerID, folderID int64, name string) error {
	if folderID <= 0 {
		return errs.ErrNotFound
	}
	if name == "" {
		return fmt.Errorf("%w: empty folder name", errs.ErrValidation)
	}
	return s.repo.Rename(ctx, ownerID, folderID, name)
}

// Recolor requires a palette color.
func (s *FolderServiceImpl) Recolor(ctx context.Context, ownerID, folderID int64, color string) error {
	if folderID <= 0 {
		return errs.ErrNotFound
	}
	if !model.ValidColor(color) {
		return fmt.Errorf("%w: unknown color %q", errs.ErrValidation, color)
	}
	return s.repo.Recolor(ctx, ownerID, folderID, color)
}
