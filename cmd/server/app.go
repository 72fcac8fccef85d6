package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ceron-eng/autores-gateway/internal/config"
	"github.com/ceron-eng/autores-gateway/internal/platform/autorapi"
	"github.com/ceron-eng/autores-gateway/internal/platform/imagegrpc"
	"github.com/ceron-eng/autores-gateway/internal/platform/metrics"
	"github.com/ceron-eng/autores-gateway/internal/service"
	"github.com/ceron-eng/autores-gateway/internal/upload"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger  *slog.Logger
	metrics *metrics.Metrics

	// Upstream clients
	restClient  *autorapi.Client
	imageClient *imagegrpc.Client

	// Request collaborators
	stager        *upload.Stager
	authorService service.AuthorService
}

// newApplication creates a new application instance with all dependencies initialized.
// The HTTP client and the gRPC connection are created once here and shared by
// every request.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		metrics: metrics.New(),
	}

	var err error
	app.restClient, err = autorapi.NewClient(
		cfg.Upstream,
		logger,
		autorapi.WithObserver(app.metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize author REST client: %w", err)
	}
	logger.Info("Author REST client initialized", "timeout", cfg.Upstream.Timeout)

	app.imageClient, err = imagegrpc.NewClient(
		cfg.ImageService,
		logger,
		imagegrpc.WithObserver(app.metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image service client: %w", err)
	}
	logger.Info("Image service client initialized", "addr", cfg.ImageService.Addr)

	app.stager, err = upload.NewStager(cfg.Upload.Dir, cfg.Upload.MaxMemoryBytes)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to initialize upload stager: %w", err)
	}

	app.authorService, err = service.NewAuthorService(
		autorapi.NewAuthors(app.restClient),
		app.imageClient,
		service.Options{
			EnrichAuthorImage: cfg.Gateway.EnrichAuthorImage,
			DefaultImageGUID:  cfg.Upload.DefaultGUID,
		},
		logger,
	)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create author service: %w", err)
	}

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

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.imageClient != nil {
		if err := app.imageClient.Close(); err != nil {
			app.logger.Error("Error closing image service connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
