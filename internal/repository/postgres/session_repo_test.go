package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/arnabbiswas100/ANY-note/internal/errs"
	"github.com/arnabbiswas100/ANY-note/internal/model"
)

func TestSessionRepo_CreateGetDelete(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSessionRepo(db)
	ctx := context.Background()
	sid := uuid.Must(uuid.NewV4())
	exp := time.Now().Add(time.Hour)

	mock.ExpectQuery(`INSERT INTO sessions \(id, user_id, expires_at\) VALUES \(\$1, \$2, \$3\) RETURNING created_at`).
		WithArgs(sid, int64(1), exp).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	require.NoError(t, r.Create(ctx, &model.Session{ID: sid, AccountID: 1, ExpiresAt: exp}))

	mock.ExpectQuery(`SELECT id, user_id, created_at, expires_at FROM sessions WHERE id=\$1`).
		WithArgs(sid).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "created_at", "expires_at"}).
			AddRow(sid, int64(1), time.Now(), exp))
	s, err := r.Get(ctx, sid)
	require.NoError(t, err)
	require.Equal(t, int64(1), s.AccountID)

	mock.ExpectExec(`DELETE FROM sessions WHERE id=\$1`).
		WithArgs(sid).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.Delete(ctx, sid))

	// Revoked session no longer resolves.
	mock.ExpectQuery(`SELECT id, user_id, created_at, expires_at FROM sessions WHERE id=\$1`).
		WithArgs(sid).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.Get(ctx, sid)
	require.ErrorIs(t, err, errs.ErrNotFound)

	mock.ExpectExec(`DELETE FROM sessions WHERE id=\$1`).
		WithArgs(sid).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.ErrorIs(t, r.Delete(ctx, sid), errs.ErrNotFound)
}
