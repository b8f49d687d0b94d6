package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arnabbiswas100/ANY-note/internal/errs"
	"github.com/arnabbiswas100/ANY-note/internal/model"
	"github.com/arnabbiswas100/ANY-note/internal/repository"
	"github.com/arnabbiswas100/ANY-note/internal/service"
)

// In-memory repositories so the full HTTP surface can be exercised
// without a database: token issue/verify, session revocation, and the
// owner-scoped note lifecycle all run for real.

type memUsers struct {
	byName  map[string]*model.Account
	folders *memFolders
	nextID  int64
}

var _ repository.UserRepository = (*memUsers)(nil)

func (m *memUsers) Create(ctx context.Context, u *model.Account, starter *model.Folder) error {
	if _, ok := m.byName[u.Username]; ok {
		return errs.ErrAlreadyExists
	}
	m.nextID++
	u.ID = m.nextID
	u.CreatedAt = time.Now()
	cpy := *u
	m.byName[u.Username] = &cpy
	f, err := m.folders.Create(ctx, u.ID, starter.Name, starter.Color)
	if err != nil {
		return err
	}
	*starter = *f
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*model.Account, error) {
	for _, u := range m.byName {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (m *memUsers) GetByUsername(_ context.Context, name string) (*model.Account, error) {
	u, ok := m.byName[name]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

type memFolders struct {
	all    []model.Folder
	nextID int64
}

var _ repository.FolderRepository = (*memFolders)(nil)

func (m *memFolders) List(_ context.Context, ownerID int64) ([]model.Folder, error) {
	var out []model.Folder
	for _, f := range m.all {
		if f.OwnerID == ownerID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memFolders) Create(_ context.Context, ownerID int64, name, color string) (*model.Folder, error) {
	m.nextID++
	f := model.Folder{ID: m.nextID, OwnerID: ownerID, Name: name, Color: color, CreatedAt: time.Now()}
	m.all = append(m.all, f)
	return &f, nil
}

func (m *memFolders) Rename(_ context.Context, ownerID, folderID int64, name string) error {
	for i, f := range m.all {
		if f.ID == folderID && f.OwnerID == ownerID {
			m.all[i].Name = name
			return nil
		}
	}
	return errs.ErrNotFound
}

func (m *memFolders) Recolor(_ context.Context, ownerID, folderID int64, color string) error {
	for i, f := range m.all {
		if f.ID == folderID && f.OwnerID == ownerID {
			m.all[i].Color = color
			return nil
		}
	}
	return errs.ErrNotFound
}

func (m *memFolders) owns(ownerID, folderID int64) bool {
	for _, f := range m.all {
		if f.ID == folderID && f.OwnerID == ownerID {
			return true
		}
	}
	return false
}

type memSessions struct {
	byID map[uuid.UUID]*model.Session
}

var _ repository.SessionRepository = (*memSessions)(nil)

func (m *memSessions) Create(_ context.Context, s *model.Session) error {
	s.CreatedAt = time.Now()
	cpy := *s
	m.byID[s.ID] = &cpy
	return nil
}

func (m *memSessions) Get(_ context.Context, id uuid.UUID) (*model.Session, error) {
	s, ok := m.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *s
	return &c, nil
}

func (m *memSessions) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.byID[id]; !ok {
		return errs.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memNotes struct {
	byID    map[int64]*model.Note
	folders *memFolders
	nextID  int64
	clock   time.Time
}

var _ repository.NoteRepository = (*memNotes)(nil)

func (m *memNotes) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memNotes) List(_ context.Context, ownerID, folderID int64) ([]model.Note, error) {
	var out []model.Note
	for _, n := range m.byID {
		if n.OwnerID != ownerID || (folderID != 0 && n.FolderID != folderID) {
			continue
		}
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (m *memNotes) Create(_ context.Context, ownerID int64, in model.CreateNote) (*model.Note, error) {
	if in.FolderID != 0 && !m.folders.owns(ownerID, in.FolderID) {
		return nil, errs.ErrNotFound
	}
	m.nextID++
	now := m.tick()
	n := &model.Note{
		ID: m.nextID, OwnerID: ownerID, FolderID: in.FolderID,
		Title: in.Title, Content: in.Content, Color: in.Color,
		CreatedAt: now, UpdatedAt: now,
	}
	m.byID[n.ID] = n
	c := *n
	return &c, nil
}

func (m *memNotes) Update(_ context.Context, ownerID, noteID int64, in model.UpdateNote) (*model.Note, error) {
	n, ok := m.byID[noteID]
	if !ok || n.OwnerID != ownerID {
		return nil, errs.ErrNotFound
	}
	n.Title, n.Content, n.Color = in.Title, in.Content, in.Color
	n.UpdatedAt = m.tick()
	c := *n
	return &c, nil
}

func (m *memNotes) Delete(_ context.Context, ownerID, noteID int64) error {
	n, ok := m.byID[noteID]
	if !ok || n.OwnerID != ownerID {
		return errs.ErrNotFound
	}
	delete(m.byID, noteID)
	return nil
}

func (m *memNotes) TogglePin(_ context.Context, ownerID, noteID int64) (bool, error) {
	n, ok := m.byID[noteID]
	if !ok || n.OwnerID != ownerID {
		return false, errs.ErrNotFound
	}
	n.Pinned = !n.Pinned
	n.UpdatedAt = m.tick()
	return n.Pinned, nil
}

func (m *memNotes) Move(_ context.Context, ownerID, noteID, folderID int64) error {
	n, ok := m.byID[noteID]
	if !ok || n.OwnerID != ownerID {
		return errs.ErrNotFound
	}
	if folderID != 0 && !m.folders.owns(ownerID, folderID) {
		return errs.ErrNotFound
	}
	n.FolderID = folderID
	n.UpdatedAt = m.tick()
	return nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	key := []byte("test-key")
	folders := &memFolders{}
	auth := service.NewAuthService(
		&memUsers{byName: map[string]*model.Account{}, folders: folders},
		&memSessions{byID: map[uuid.UUID]*model.Session{}},
		key, time.Hour)
	notes := service.NewNoteService(&memNotes{byID: map[int64]*model.Note{}, folders: folders, clock: time.Unix(1000, 0)})
	return New(zap.NewNop(), auth, notes, service.NewFolderService(folders), key)
}

type resp struct {
	status int
	body   map[string]any
}

func do(t *testing.T, s *Server, method, path, token string, payload any) resp {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	out := resp{status: res.StatusCode, body: map[string]any{}}
	_ = json.NewDecoder(res.Body).Decode(&out.body)
	return out
}
