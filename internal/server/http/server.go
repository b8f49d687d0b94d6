// Package httpserver exposes the notes service as a JSON HTTP API.
package httpserver

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/arnabbiswas100/ANY-note/internal/service"
)

// Server wires services into HTTP handlers.
type Server struct {
	app     *fiber.App
	log     *zap.Logger
	auth    service.AuthService
	notes   service.NoteService
	folders service.FolderService
	signKey []byte
}

// New constructs the HTTP server with injected services and registers routes.
func New(log *zap.Logger, auth service.AuthService, notes service.NoteService,
	folders service.FolderService, signKey []byte) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			ServerHeader: "anynote",
			AppName:      "anynote",
		}),
		log:     log,
		auth:    auth,
		notes:   notes,
		folders: folders,
		signKey: signKey,
	}
	s.app.Use(s.recoverPanic())
	s.app.Use(s.logRequests())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.app.Get("/health", s.health)

	api := s.app.Group("/api")
	api.Post("/register", s.register)
	api.Post("/login", s.login)

	api.Use(s.jwtGuard(), s.resolvePrincipal())

	api.Post("/logout", s.logout)

	api.Get("/notes", s.listNotes)
	api.Post("/notes", s.createNote)
	api.Put("/notes/:id<int>", s.updateNote)
	api.Delete("/notes/:id<int>", s.deleteNote)
	api.Post("/notes/:id<int>/pin", s.togglePin)
	api.Put("/notes/:id<int>/folder", s.moveNote)

	api.Get("/folders", s.listFolders)
	api.Post("/folders", s.createFolder)
	api.Put("/folders/:id<int>", s.renameFolder)
	api.Put("/folders/:id<int>/color", s.recolorFolder)
}

// Listen serves HTTP on the given address until Shutdown is called.
func (s *Server) Listen(addr string) error { return s.app.Listen(addr) }

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown() error { return s.app.Shutdown() }

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App { return s.app }

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
