package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/couchcryptid/lake-extent-dashboard/internal/dashboard"
	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
	"github.com/couchcryptid/lake-extent-dashboard/internal/observability"
	"github.com/couchcryptid/lake-extent-dashboard/internal/view"
)

// PageRenderer renders the dashboard page for a selection.
type PageRenderer interface {
	Render(ctx context.Context, sel domain.Selection) (*dashboard.Response, error)
}

// BundleLoader provides the memoized data bundle.
type BundleLoader interface {
	Load() (*domain.Bundle, error)
}

// ChartRenderer renders a chart description to SVG.
type ChartRenderer interface {
	Render(ctx context.Context, c view.Chart) ([]byte, error)
}

// Options configures the routes a Server exposes.
type Options struct {
	Addr               string
	CORSAllowedOrigins []string
	HeatmapEnabled     bool
}

// Server exposes the dashboard page, its downloads and JSON API, and the
// health, readiness and metrics endpoints.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the dashboard and operational routes.
func NewServer(opts Options, pages PageRenderer, loader BundleLoader, charts ChartRenderer, ready sharedobs.ReadinessChecker, logger *slog.Logger, metrics *observability.Metrics) *Server {
	h := &handlers{
		pages:   pages,
		loader:  loader,
		charts:  charts,
		logger:  logger,
		metrics: metrics,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/", h.page)
	r.Get(view.ImageURL, h.image)
	r.Get(view.ExportCSVPath, h.exportCSV)
	r.Get(view.ExportXLSXPath, h.exportXLSX)
	if opts.HeatmapEnabled {
		r.Get("/charts/water-frequency.svg", h.heatmap)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: opts.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		}).Handler)
		r.Get("/{dataset}", h.dataset)
	})

	r.Get("/healthz", sharedobs.LivenessHandler())
	r.Get("/readyz", sharedobs.ReadinessHandler(ready))
	r.Handle("/metrics", promhttp.Handler())

	return &Server{
		httpServer: &http.Server{
			Addr:         opts.Addr,
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.InfoContext(r.Context(), "request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
