package service

import (
	"context"
	"fmt"

	"github.com/arnabbiswas100/ANY-note/internal/errs"
	"github.com/arnabbiswas100/ANY-note/internal/model"
	"github.com/arnabbiswas100/ANY-note/internal/repository"
)

// NoteService defines note operations scoped to one owning account.
type NoteService interface {
	// List returns the account's notes, pinned first, newest update first.
	List(ctx context.Context, ownerID, folderID int64) ([]model.Note, error)
	// Create validates input and inserts a note.
	Create(ctx context.Context, ownerID int64, in model.CreateNote) (*model.Note, error)
	// Update rewrites title/content/color of an owned note.
	Update(ctx context.Context, ownerID, noteID int64, in model.UpdateNote) (*model.Note, error)
	// Delete removes an owned note permanently.
	Delete(ctx context.Context, ownerID, noteID int64) error
	// TogglePin flips the pinned flag and returns the new state.
	TogglePin(ctx context.Context, ownerID, noteID int64) (bool, error)
	// Move reassigns an owned note to an owned folder (or unfiled).
	Move(ctx context.Context, ownerID, noteID, folderID int64) error
}

type NoteServiceImpl struct {
	repo repository.NoteRepository
}

// NewNoteService constructs NoteService.
func NewNoteService(repo repository.NoteRepository) *NoteServiceImpl {
	return &NoteServiceImpl{repo: repo}
}

// List delegates to the repository; folderID zero means all folders.
func (s *NoteServiceImpl) List(ctx context.Context, ownerID, folderID int64) ([]model.Note, error) {
	if folderID < 0 {
		return nil, fmt.Errorf("%w: negative folder id", errs.ErrValidation)
	}
	return s.repo.List(ctx, ownerID, folderID)
}

// Create requires non-empty content. An absent color defaults to grey;
// a supplied color must be a palette member.
func (s *NoteServiceImpl) Create(ctx context.Context, ownerID int64, in model.CreateNote) (*model.Note, error) {
	if in.Content == "" {
		return nil, fmt.Errorf("%w: empty content", errs.ErrValidation)
	}
	if in.Color == "" {
		in.Color = model.DefaultNoteColor
	} else if !model.ValidColor(in.Color) {
		return nil, fmt.Errorf("%w: unknown color %q", errs.ErrValidation, in.Color)
	}
	if in.FolderID < 0 {
		return nil, fmt.Errorf("%w: negative folder id", errs.ErrValidation)
	}
	return s.repo.Create(ctx, ownerID, in)
}

// Update applies the same validation rules as Create.
func (s *NoteServiceImpl) Update(ctx context.Context, ownerID, noteID int64, in model.UpdateNote) (*model.Note, error) {
	if noteID <= 0 {
		return nil, errs.ErrNotFound
	}
	if in.Content == "" {
		return nil, fmt.Errorf("%w: empty content", errs.ErrValidation)
	}
	if in.Color == "" {
		in.Color = model.DefaultNoteColor
	} else if !model.ValidColor(in.Color) {
		return nil, fmt.Errorf("%w: unknown color %q", errs.ErrValidation, in.Color)
	}
	return s.repo.Update(ctx, ownerID, noteID, in)
}

// Delete removes the note; a foreign or absent id reports not found.
func (s *NoteServiceImpl) Delete(ctx context.Context, ownerID, noteID int64) error {
	if noteID <= 0 {
		return errs.ErrNotFound
	}
	return s.repo.Delete(ctx, ownerID, noteID)
}

// TogglePin flips the flag atomically in the store.
func (s *NoteServiceImpl) TogglePin(ctx context.Context, ownerID, noteID int64) (bool, error) {
	if noteID <= 0 {
		return false, errs.ErrNotFound
	}
	return s.repo.TogglePin(ctx, ownerID, noteID)
}

// Move reassigns the folder; folderID zero files the note as unfiled.
func (s *NoteServiceImpl) Move(ctx context.Context, ownerID, noteID, folderID int64) error {
	if noteID <= 0 {
		return errs.ErrNotFound
	}
	if folderID < 0 {
		return fmt.Errorf("%w: negative folder id", errs.ErrValidation)
	}
	return s.repo.Move(ctx, ownerID, noteID, folderID)
}
