package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/lake-extent-dashboard/internal/adapter/charts"
	"github.com/couchcryptid/lake-extent-dashboard/internal/adapter/files"
	httpadapter "github.com/couchcryptid/lake-extent-dashboard/internal/adapter/http"
	"github.com/couchcryptid/lake-extent-dashboard/internal/config"
	"github.com/couchcryptid/lake-extent-dashboard/internal/dashboard"
	"github.com/couchcryptid/lake-extent-dashboard/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	presentation, err := files.LoadPresentation(cfg.PresentationFile)
	if err != nil {
		logger.Error("failed to load presentation", "path", cfg.PresentationFile, "error", err)
		os.Exit(1)
	}

	loader := files.NewLoader(files.Options{DataDir: cfg.DataDir, ImagePath: cfg.ImagePath}, logger, metrics)
	renderer := charts.NewCachedRenderer(charts.NewSVGRenderer(logger, metrics), cfg.ChartCacheTTL, metrics)
	logger.Info("chart cache configured", "ttl", cfg.ChartCacheTTL, "heatmap_enabled", cfg.HeatmapEnabled)

	dash, err := dashboard.New(loader, renderer, presentation, logger, metrics)
	if err != nil {
		logger.Error("failed to create dashboard", "error", err)
		os.Exit(1)
	}

	// Load eagerly so a broken data directory shows up in the startup log.
	// The dashboard still starts and serves the error page.
	if _, err := loader.Load(); err != nil {
		logger.Warn("dashboard data unavailable, serving error page", "error", err)
	}

	srv := httpadapter.NewServer(httpadapter.Options{
		Addr:               cfg.HTTPAddr,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		HeatmapEnabled:     cfg.HeatmapEnabled,
	}, dash, loader, renderer, loader, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
