package postgres

import (
	"context"

	"github.com/arnabbiswas100/ANY-note/internal/errs"
	"github.com/arnabbiswas100/ANY-note/internal/model"
)

// FolderRepo implements FolderRepository using PostgreSQL.
type FolderRepo struct{ db *DB }

// NewFolderRepo constructs a folder repository.
func NewFolderRepo(db *DB) *FolderRepo { return &FolderRepo{db: db} }

// List returns the account's folders in creation order.
func (r *FolderRepo) List(ctx context.Context, ownerID int64) ([]model.Folder, error) {
	const q = `
SELECT id, owner_id, name, color, created_at
FROM folders WHERE owner_id=$1
ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	var out []model.Folder
	for rows.Next() {
		var f model.Folder
		if err := rows.Scan(&f.ID, &f.OwnerID, &f.Name, &f.Color, &f.CreatedAt); err != nil {
			return nil, unavailable(err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return out, nil
}

// Create inserts a folder row and fills in the assigned ID.
func (r *FolderRepo) Create(ctx context.Context, ownerID int64, name, color string) (*model.Folder, error) {
	const q = `
INSERT INTO folders (owner_id, name, color)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	f := model.Folder{OwnerID: ownerID, Name: name, Color: color}
	if err := r.db.Pool.QueryRow(ctx, q, ownerID, name, color).Scan(&f.ID, &f.CreatedAt); err != nil {
		return nil, unavailable(err)
	}
	return &f, nil
}

// Rename changes the folder name in place.
func (r *FolderRepo) Rename(ctx context.Context, ownerID, folderID int64, name string) error {
	const q = `UPDATE folders SET name=$3 WHERE id=$1 AND owner_id=$2`
	return r.exec(ctx, q, folderID, ownerID, name)
}

// Recolor changes the folder color in place.
func (r *FolderRepo) Recolor(ctx context.Context, ownerID, folderID int64, color string) error {
	const q = `UPDATE folders SET color=$3 WHERE id=$1 AND owner_id=$2`
	return r.exec(ctx, q, folderID, ownerID, color)
}

func (r *FolderRepo) exec(ctx context.Context, q string, args ...any) error {
	tag, err := r.db.Pool.Exec(ctx, q, args...)
	if err != nil {
		return unavailable(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
