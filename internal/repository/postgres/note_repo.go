package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/arnabbiswas100/ANY-note/internal/errs"
	"github.com/arnabbiswas100/ANY-note/internal/model"
)

// NoteRepo implements NoteRepository using PostgreSQL. Every statement
// predicate includes owner_id, so a foreign note is indistinguishable
// from a missing one.
type NoteRepo struct{ db *DB }

// NewNoteRepo constructs a note repository.
func NewNoteRepo(db *DB) *NoteRepo { return &NoteRepo{db: db} }

const noteColumns = `id, owner_id, folder_id, title, content, color, pinned, created_at, updated_at`

// List returns the account's notes ordered pinned-first, then by most
// recent update. The ordering is part of the listing contract.
func (r *NoteRepo) List(ctx context.Context, ownerID, folderID int64) ([]model.Note, error) {
	const all = `
SELECT ` + noteColumns + `
FROM notes WHERE owner_id=$1
ORDER BY pinned DESC, updated_at DESC`
	const filtered = `
SELECT ` + noteColumns + `
FROM notes WHERE owner_id=$1 AND folder_id=$2
ORDER BY pinned DESC, updated_at DESC`

	var (
		rows pgx.Rows
		err  error
	)
	if folderID == 0 {
		rows, err = r.db.Pool.Query(ctx, all, ownerID)
	} else {
		rows, err = r.db.Pool.Query(ctx, filtered, ownerID, folderID)
	}
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	var out []model.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, unavailable(err)
		}
		out = append(out, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return out, nil
}

// Create inserts a note. A non-zero folder must belong to the same
// account; otherwise the insert matches nothing and reports not found.
func (r *NoteRepo) Create(ctx context.Context, ownerID int64, in model.CreateNote) (*model.Note, error) {
	const unfiled = `
INSERT INTO notes (owner_id, folder_id, title, content, color)
VALUES ($1, NULL, $2, $3, $4)
RETURNING ` + noteColumns
	const filed = `
INSERT INTO notes (owner_id, folder_id, title, content, color)
SELECT $1, f.id, $3, $4, $5
FROM folders f WHERE f.id=$2 AND f.owner_id=$1
RETURNING ` + noteColumns

	var row pgx.Row
	if in.FolderID == 0 {
		row = r.db.Pool.QueryRow(ctx, unfiled, ownerID, in.Title, in.Content, in.Color)
	} else {
		row = r.db.Pool.QueryRow(ctx, filed, ownerID, in.FolderID, in.Title, in.Content, in.Color)
	}
	n, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, unavailable(err)
	}
	return n, nil
}

// Update rewrites the mutable fields and refreshes updated_at.
func (r *NoteRepo) Update(ctx context.Context, ownerID, noteID int64, in model.UpdateNote) (*model.Note, error) {
	const q = `
UPDATE notes
SET title=$3, content=$4, color=$5, updated_at=now()
WHERE id=$1 AND owner_id=$2
RETURNING ` + noteColumns
	n, err := scanNote(r.db.Pool.QueryRow(ctx, q, noteID, ownerID, in.Title, in.Content, in.Color))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, unavailable(err)
	}
	return n, nil
}

// Delete removes the note permanently.
func (r *NoteRepo) Delete(ctx context.Context, ownerID, noteID int64) error {
	const q = `DELETE FROM notes WHERE id=$1 AND owner_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, noteID, ownerID)
	if err != nil {
		return unavailable(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// TogglePin flips the pinned flag in a single conditional update, so two
// concurrent toggles cannot observe the same pre-state.
func (r *NoteRepo) TogglePin(ctx context.Context, ownerID, noteID int64) (bool, error) {
	const q = `
UPDATE notes
SET pinned = NOT pinned, updated_at=now()
WHERE id=$1 AND owner_id=$2
RETURNING pinned`
	var pinned bool
	if err := r.db.Pool.QueryRow(ctx, q, noteID, ownerID).Scan(&pinned); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, errs.ErrNotFound
		}
		return false, unavailable(err)
	}
	return pinned, nil
}

// Move reassigns the folder. folderID zero files the note as unfiled; a
// non-zero destination is matched only among the caller's own folders.
func (r *NoteRepo) Move(ctx context.Context, ownerID, noteID, folderID int64) error {
	const unfile = `
UPDATE notes SET folder_id=NULL, updated_at=now()
WHERE id=$1 AND owner_id=$2`
	const refile = `
UPDATE notes SET folder_id=$3, updated_at=now()
WHERE id=$1 AND owner_id=$2
  AND EXISTS (SELECT 1 FROM folders f WHERE f.id=$3 AND f.owner_id=$2)`

	var (
		tag pgconn.CommandTag
		err error
	)
	if folderID == 0 {
		tag, err = r.db.Pool.Exec(ctx, unfile, noteID, ownerID)
	} else {
		tag, err = r.db.Pool.Exec(ctx, refile, noteID, ownerID, folderID)
	}
	if err != nil {
		return unavailable(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func scanNote(row pgx.Row) (*model.Note, error) {
	var (
		n   model.Note
		fid *int64
	)
	err := row.Scan(&n.ID, &n.OwnerID, &fid, &n.Title, &n.Content,
		&n.Color, &n.Pinned, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if fid != nil {
		n.FolderID = *fid
	}
	return &n, nil
}
