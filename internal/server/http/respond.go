package httpserver

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/arnabbiswas100/ANY-note/internal/errs"
	"github.com/arnabbiswas100/ANY-note/internal/model"
)

// fail maps service errors to HTTP statuses in one place. Anything that is
// not a known sentinel is treated as a failed store round-trip.
func (s *Server) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, errs.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	case errors.Is(err, errs.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, errs.ErrAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "already exists"})
	case errors.Is(err, errs.ErrUnavailable):
		s.log.Error("store round-trip failed",
			zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).
			JSON(fiber.Map{"error": "store unavailable"})
	default:
		s.log.Error("store round-trip failed",
			zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).
			JSON(fiber.Map{"error": "store unavailable"})
	}
}

// noteJSON is the wire shape of a note. The stored hash never appears in
// any response type.
type noteJSON struct {
	ID        int64  `json:"id"`
	FolderID  int64  `json:"folder_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Color     string `json:"color"`
	Pinned    bool   `json:"pinned"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ISO-8601 UTC without zone suffix, matching the stored representation.
const timeLayout = "2006-01-02T15:04:05.999999"

func toNoteJSON(n model.Note) noteJSON {
	return noteJSON{
		ID:        n.ID,
		FolderID:  n.FolderID,
		Title:     n.Title,
		Content:   n.Content,
		Color:     n.Color,
		Pinned:    n.Pinned,
		CreatedAt: n.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt: n.UpdatedAt.UTC().Format(timeLayout),
	}
}

func toNoteList(ns []model.Note) []noteJSON {
	out := make([]noteJSON, 0, len(ns))
	for _, n := range ns {
		out = append(out, toNoteJSON(n))
	}
	return out
}

type folderJSON struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func toFolderJSON(f model.Folder) folderJSON {
	return folderJSON{ID: f.ID, Name: f.Name, Color: f.Color}
}

func toFolderList(fs []model.Folder) []folderJSON {
	out := make([]folderJSON, 0, len(fs))
	for _, f := range fs {
		out = append(out, toFolderJSON(f))
	}
	return out
}
