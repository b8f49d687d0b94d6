package httpserver

import (
	"github.com/gofiber/fiber/v2"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) register(c *fiber.Ctx) error {
	var req credentials
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	id, err := s.auth.Register(c.Context(), req.Username, req.Password)
	if err != nil {
		return s.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (s *Server) login(c *fiber.Ctx) error {
	var req credentials
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	tok, u, err := s.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"token":      tok.AccessToken,
		"expires_at": tok.ExpiresAt,
		"username":   u.Username,
	})
}

func (s *Server) logout(c *fiber.Ctx) error {
	if err := s.auth.Logout(c.Context(), sessionID(c)); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}
