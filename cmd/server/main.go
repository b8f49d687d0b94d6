// Command anynote-server starts the notes HTTP server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/arnabbiswas100/ANY-note/internal/config"
	"github.com/arnabbiswas100/ANY-note/internal/migrate"
	"github.com/arnabbiswas100/ANY-note/internal/repository/postgres"
	httpserver "github.com/arnabbiswas100/ANY-note/internal/server/http"
	"github.com/arnabbiswas100/ANY-note/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations, and serves the HTTP API
// until interrupted.
func main() {
	cfg := config.Load()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Address),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DatabaseDSN); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("postgres pool", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	folderRepo := postgres.NewFolderRepo(db)
	noteRepo := postgres.NewNoteRepo(db)
	sessionRepo := postgres.NewSessionRepo(db)

	// Services
	authSvc := service.NewAuthService(userRepo, sessionRepo,
		[]byte(cfg.JWTKey), cfg.AccessTTL)
	noteSvc := service.NewNoteService(noteRepo)
	folderSvc := service.NewFolderService(folderRepo)

	srv := httpserver.New(logger, authSvc, noteSvc, folderSvc, []byte(cfg.JWTKey))

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Address))
		errCh <- srv.Listen(cfg.Address)
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		done := make(chan struct{})
		go func() {
			_ = srv.Shutdown()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
		}
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}
