// Package main implements the entry point for the autores gateway, which
// serves author records from the REST upstream enriched with images from
// the gRPC image service.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/ceron-eng/autores-gateway/internal/config"
	"github.com/ceron-eng/autores-gateway/internal/platform/logger"
)

// main is the entry point for the gateway server.
// It loads configuration, sets up logging, wires the upstream clients and
// starts the HTTP server.
func main() {
	fmt.Println("Autores Gateway Starting...")

	cfg, l, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(cfg, l)
	if err != nil {
		l.Error("Failed to create application", "error", err)
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		l.Error("Application exited with error", "error", err)
		log.Fatalf("Application error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"image_service_addr", cfg.ImageService.Addr,
		"enrich_author_image", cfg.Gateway.EnrichAuthorImage,
		"raw_image_route", cfg.Gateway.RawImageRoute)
	l.Debug("Upstream configuration",
		"base_url_present", cfg.Upstream.BaseURL != "",
		"insecure_skip_verify", cfg.Upstream.InsecureSkipVerify,
		"timeout", cfg.Upstream.Timeout)

	return cfg, l, nil
}
