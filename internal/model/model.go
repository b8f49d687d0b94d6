// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Palette is the fixed set of color tags assignable to notes and folders.
var Palette = []string{"blue", "warm", "peach", "pink", "green", "purple", "grey"}

// DefaultNoteColor is applied when a note is created without a color.
const DefaultNoteColor = "grey"

// DefaultFolderName is the folder provisioned for every new account.
const DefaultFolderName = "My Notes"

// ValidColor reports whether c is a member of the palette.
func ValidColor(c string) bool {
	for _, p := range Palette {
		if c == p {
			return true
		}
	}
	return false
}

// Account is a registered user identity. The password hash is never
// returned across the transport boundary.
type Account struct {
	ID        int64
	Username  string // unique
	PwdHash   []byte // Argon2id(password, SaltAuth)
	SaltAuth  []byte // per-account auth salt
	CreatedAt time.Time
}

// Principal is the immutable per-request identity produced once at
// session-validation time and passed explicitly to the stores.
type Principal struct {
	AccountID int64
	Username  string
}

// Tokens collects the issued access token and its expiry.
type Tokens struct {
	AccessToken string
	SessionID   uuid.UUID // jti; revoking it ends the session
	ExpiresAt   time.Time
}

// Session is a server-held record backing one issued token.
// A token is honored only while its session row exists and is unexpired.
type Session struct {
	ID        uuid.UUID
	AccountID int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Folder is a named, colored grouping of notes owned by one account.
type Folder struct {
	ID        int64
	OwnerID   int64
	Name      string
	Color     string
	CreatedAt time.Time
}

// Note is a unit of user content. FolderID zero means unfiled.
type Note struct {
	ID        int64
	OwnerID   int64
	FolderID  int64
	Title     string
	Content   string
	Color     string
	Pinned    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateNote carries the fields a caller may set at note creation.
type CreateNote struct {
	Title    string
	Content  string
	Color    string
	FolderID int64
}

// UpdateNote carries the fields a caller may change on an existing note.
type UpdateNote struct {
	Title   string
	Content string
	Color   string
}
