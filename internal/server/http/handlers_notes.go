package httpserver

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/arnabbiswas100/ANY-note/internal/model"
)

type noteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Color    string `json:"color"`
	FolderID int64  `json:"folder_id"`
}

func (s *Server) listNotes(c *fiber.Ctx) error {
	folderID, err := strconv.ParseInt(c.Query("folder", "0"), 10, 64)
	if err != nil || folderID < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid folder filter"})
	}
	notes, err := s.notes.List(c.Context(), principal(c).AccountID, folderID)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"notes": toNoteList(notes)})
}

func (s *Server) createNote(c *fiber.Ctx) error {
	var req noteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	n, err := s.notes.Create(c.Context(), principal(c).AccountID, model.CreateNote{
		Title:    req.Title,
		Content:  req.Content,
		Color:    req.Color,
		FolderID: req.FolderID,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"note": toNoteJSON(*n)})
}

func (s *Server) updateNote(c *fiber.Ctx) error {
	id, ok := noteID(c)
	if !ok {
		return badID(c)
	}
	var req noteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	n, err := s.notes.Update(c.Context(), principal(c).AccountID, id, model.UpdateNote{
		Title:   req.Title,
		Content: req.Content,
		Color:   req.Color,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"note": toNoteJSON(*n)})
}

func (s *Server) deleteNote(c *fiber.Ctx) error {
	id, ok := noteID(c)
	if !ok {
		return badID(c)
	}
	if err := s.notes.Delete(c.Context(), principal(c).AccountID, id); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "note deleted"})
}

func (s *Server) togglePin(c *fiber.Ctx) error {
	id, ok := noteID(c)
	if !ok {
		return badID(c)
	}
	pinned, err := s.notes.TogglePin(c.Context(), principal(c).AccountID, id)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"pinned": pinned})
}

func (s *Server) moveNote(c *fiber.Ctx) error {
	id, ok := noteID(c)
	if !ok {
		return badID(c)
	}
	var req struct {
		FolderID int64 `json:"folder_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := s.notes.Move(c.Context(), principal(c).AccountID, id, req.FolderID); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "note moved"})
}

func noteID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
}
