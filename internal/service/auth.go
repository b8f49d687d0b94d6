// Package service contains application services for authentication, notes and folders.
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	pkgcrypto "github.com/arnabbiswas100/ANY-note/internal/crypto"
	"github.com/arnabbiswas100/ANY-note/internal/errs"
	"github.com/arnabbiswas100/ANY-note/internal/model"
	"github.com/arnabbiswas100/ANY-note/internal/repository"
)

// Claims is the JWT payload issued at login. The session ID doubles as
// the registered JWT ID, so revoking the session invalidates the token.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"uname"`
}

// AuthService defines account registration, login and session lifecycle.
type AuthService interface {
	// Register creates a new account with secure password hashing and
	// provisions its default folder in the same transaction.
	Register(ctx context.Context, username, password string) (int64, error)
	// Login authenticates the user and issues a revocable access token.
	Login(ctx context.Context, username, password string) (model.Tokens, model.Account, error)
	// Logout revokes the session behind an issued token.
	Logout(ctx context.Context, sessionID uuid.UUID) error
	// ValidateSession reports whether the session is live, unexpired,
	// and backed by an existing account.
	ValidateSession(ctx context.Context, sessionID uuid.UUID) error
}

type AuthServiceImpl struct {
	users     repository.UserRepository
	sessions  repository.SessionRepository
	signKey   []byte
	accessTTL time.Duration
	now       func() time.Time
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository,
	sessions repository.SessionRepository, signKey []byte, accessTTL time.Duration) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:     users,
		sessions:  sessions,
		signKey:   signKey,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// Register creates the account with a fresh per-account salt. The
// account and its "My Notes" folder are created atomically, so a failed
// registration leaves nothing behind.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password string) (int64, error) {
	if username == "" || password == "" {
		return 0, fmt.Errorf("%w: empty username/password", errs.ErrValidation)
	}
	salt, err := pkgcrypto.RandBytes(pkgcrypto.SaltLen)
	if err != nil {
		return 0, err
	}
	u := &model.Account{
		Username: username,
		PwdHash:  pkgcrypto.HashPassword([]byte(password), salt),
		SaltAuth: salt,
	}
	starter := &model.Folder{Name: model.DefaultFolderName, Color: model.DefaultNoteColor}
	if err := s.users.Create(ctx, u, starter); err != nil {
		return 0, err
	}
	return u.ID, nil
}

// Login verifies credentials and issues a token. Unknown username and
// wrong password yield the same error so neither case leaks.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (model.Tokens, model.Account, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || !pkgcrypto.VerifyPassword([]byte(password), u.SaltAuth, u.PwdHash) {
		if err != nil && !errors.Is(err, errs.ErrNotFound) {
			return model.Tokens{}, model.Account{}, err
		}
		return model.Tokens{}, model.Account{}, errs.ErrUnauthorized
	}

	tok, err := s.issueAccessToken(ctx, u)
	if err != nil {
		return model.Tokens{}, model.Account{}, err
	}
	return tok, *u, nil
}

// Logout revokes the session. Revoking an already-gone session is not an
// error from the caller's point of view.
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID uuid.UUID) error {
	err := s.sessions.Delete(ctx, sessionID)
	if errors.Is(err, errs.ErrNotFound) {
		return nil
	}
	return err
}

// ValidateSession checks that the session row still exists, is
// unexpired, and that the account behind it is still present.
func (s *AuthServiceImpl) ValidateSession(ctx context.Context, sessionID uuid.UUID) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrUnauthorized
		}
		return err
	}
	if s.now().After(sess.ExpiresAt) {
		return errs.ErrUnauthorized
	}
	if _, err := s.users.GetByID(ctx, sess.AccountID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrUnauthorized
		}
		return err
	}
	return nil
}

// issueAccessToken creates a signed HS256 JWT and records the backing session.
func (s *AuthServiceImpl) issueAccessToken(ctx context.Context, u *model.Account) (model.Tokens, error) {
	sid, err := uuid.NewV4()
	if err != nil {
		return model.Tokens{}, err
	}
	now := s.now()
	exp := now.Add(s.accessTTL)

	if err := s.sessions.Create(ctx, &model.Session{
		ID:        sid,
		AccountID: u.ID,
		ExpiresAt: exp,
	}); err != nil {
		return model.Tokens{}, err
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sid.String(),
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Username: u.Username,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signKey)
	if err != nil {
		return model.Tokens{}, err
	}
	return model.Tokens{AccessToken: signed, SessionID: sid, ExpiresAt: exp}, nil
}
