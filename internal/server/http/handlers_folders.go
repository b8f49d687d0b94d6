package httpserver

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type folderRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (s *Server) listFolders(c *fiber.Ctx) error {
	folders, err := s.folders.List(c.Context(), principal(c).AccountID)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"folders": toFolderList(folders)})
}

func (s *Server) createFolder(c *fiber.Ctx) error {
	var req folderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	f, err := s.folders.Create(c.Context(), principal(c).AccountID, req.Name, req.Color)
	if err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"folder": toFolderJSON(*f)})
}

func (s *Server) renameFolder(c *fiber.Ctx) error {
	id, ok := folderID(c)
	if !ok {
		return badID(c)
	}
	var req folderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := s.folders.Rename(c.Context(), principal(c).AccountID, id, req.Name); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "folder renamed"})
}

func (s *Server) recolorFolder(c *fiber.Ctx) error {
	id, ok := folderID(c)
	if !ok {
		return badID(c)
	}
	var req folderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := s.folders.Recolor(c.Context(), principal(c).AccountID, id, req.Color); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "folder recolored"})
}

func folderID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
