package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/arnabbiswas100/ANY-note/internal/errs"
	"github.com/arnabbiswas100/ANY-note/internal/model"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts the account row and its starter folder in one
// transaction. A failure on either insert rolls back both, so no
// account ever commits without its folder.
func (r *UserRepo) Create(ctx context.Context, u *model.Account, starter *model.Folder) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return unavailable(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = unavailable(e)
		}
	}()

	const insUser = `
INSERT INTO users (username, pwd_hash, salt_auth)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	const insFolder = `
INSERT INTO folders (owner_id, name, color)
VALUES ($1, $2, $3)
RETURNING id, created_at`

	err = tx.QueryRow(ctx, insUser, u.Username, u.PwdHash, u.SaltAuth).
		Scan(&u.ID, &u.CreatedAt)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	if err != nil {
		return unavailable(err)
	}

	starter.OwnerID = u.ID
	err = tx.QueryRow(ctx, insFolder, starter.OwnerID, starter.Name, starter.Color).
		Scan(&starter.ID, &starter.CreatedAt)
	if err != nil {
		return unavailable(err)
	}
	return nil
}

// GetByID selects an account by ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	const q = `
SELECT id, username, pwd_hash, salt_auth, created_at
FROM users WHERE id=$1`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, id))
}

// GetByUsername selects an account by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	const q = `
SELECT id, username, pwd_hash, salt_auth, created_at
FROM users WHERE username=$1`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, username))
}

func (r *UserRepo) scanOne(row pgx.Row) (*model.Account, error) {
	var u model.Account
	if err := row.Scan(&u.ID, &u.Username, &u.PwdHash, &u.SaltAuth, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, unavailable(err)
	}
	return &u, nil
}
