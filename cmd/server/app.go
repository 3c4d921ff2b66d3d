package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/storygen/storygen-api/internal/config"
	"github.com/storygen/storygen-api/internal/generation"
	"github.com/storygen/storygen-api/internal/platform/gemini"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	generator generation.Generator
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration and logger
// that must be established before application initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.generator, err = gemini.NewGenerator(
		logger.With("component", "llm_generator"),
		cfg.LLM,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.InfoContext(ctx, "LLM generator initialized")

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources. The
// generator holds no connections of its own; this hook exists so future
// resources have a single place to be released.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
