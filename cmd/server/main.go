package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sifiratik/fidan/internal/app"
	"github.com/sifiratik/fidan/internal/config"
	"github.com/sifiratik/fidan/internal/logging"
	"github.com/sifiratik/fidan/internal/server"
)

func main() {
	cfg := config.New()
	logging.New() // Initialize the structured logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create a new server instance. Content that does not validate stops us here.
	s, err := server.New(cfg, app.Options{})
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}

	// Register all application routes and boot the modules.
	if err := s.RegisterRoutes(ctx); err != nil {
		slog.Error("Failed to boot modules", "error", err)
		os.Exit(1)
	}

	// Start the server; it returns once a signal has drained it.
	if err := s.Start(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
