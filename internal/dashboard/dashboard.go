// Package dashboard is the top-level dispatcher: it loads the data bundle,
// builds the widget tree for the current selection, renders its charts and
// executes the HTML templates.
package dashboard

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
	"github.com/couchcryptid/lake-extent-dashboard/internal/observability"
	"github.com/couchcryptid/lake-extent-dashboard/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

// Error page text.
const (
	ErrorPrefix = "Error loading data: "
	ErrorHint   = "Please generate the dashboard data first using the data generation script."
)

const chartUnavailable = `<div class="chart-unavailable">Chart unavailable</div>`

// BundleLoader provides the memoized data bundle.
type BundleLoader interface {
	Load() (*domain.Bundle, error)
}

// ChartRenderer renders a chart description to inline SVG.
type ChartRenderer interface {
	Render(ctx context.Context, c view.Chart) ([]byte, error)
}

// Response is a rendered page with its HTTP status.
type Response struct {
	Status int
	Body   []byte
}

// Dashboard renders pages for a selection.
type Dashboard struct {
	loader       BundleLoader
	charts       ChartRenderer
	presentation domain.Presentation
	tmpl         *template.Template
	logger       *slog.Logger
	metrics      *observability.Metrics
}

// New parses the embedded templates and creates a Dashboard.
func New(loader BundleLoader, charts ChartRenderer, presentation domain.Presentation, logger *slog.Logger, metrics *observability.Metrics) (*Dashboard, error) {
	tmpl, err := template.New("dashboard").Funcs(template.FuncMap{
		"classColor": view.ClassColor,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Dashboard{
		loader:       loader,
		charts:       charts,
		presentation: presentation,
		tmpl:         tmpl,
		logger:       logger,
		metrics:      metrics,
	}, nil
}

type pageData struct {
	Page   *view.Page
	Charts map[string]template.HTML
}

type errorData struct {
	Title       string
	Subtitle    string
	Message     string
	Hint        string
	DataSource  string
	LastUpdated string
}

// Render produces the page for sel. A data load failure yields the error
// page with status 503; the returned error is reserved for template
// failures.
func (d *Dashboard) Render(ctx context.Context, sel domain.Selection) (*Response, error) {
	start := time.Now()
	viewLabel := sel.View.Slug()
	defer func() {
		d.metrics.PageRenderDuration.WithLabelValues(viewLabel).Observe(time.Since(start).Seconds())
	}()
	d.metrics.PageRenders.WithLabelValues(viewLabel).Inc()

	bundle, err := d.loader.Load()
	if err != nil {
		d.metrics.PageRenderErrors.WithLabelValues(viewLabel).Inc()
		return d.renderError(err)
	}

	page := view.Build(bundle, sel, d.presentation, domain.Today())
	data := pageData{Page: page, Charts: make(map[string]template.HTML)}
	for _, c := range page.Charts() {
		svg, err := d.charts.Render(ctx, c)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			d.logger.Warn("chart unavailable", "chart", c.ChartID(), "view", viewLabel, "error", err)
			data.Charts[c.ChartID()] = template.HTML(chartUnavailable)
			continue
		}
		data.Charts[c.ChartID()] = template.HTML(svg) //nolint:gosec // SVG generated by the chart renderer
	}

	var buf bytes.Buffer
	if err := d.tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("execute %s template: %w", viewLabel, err)
	}
	return &Response{Status: http.StatusOK, Body: buf.Bytes()}, nil
}

func (d *Dashboard) renderError(loadErr error) (*Response, error) {
	d.logger.Error("rendering error page", "error", loadErr)
	data := errorData{
		Title:       view.Title,
		Subtitle:    view.Subtitle,
		Message:     ErrorPrefix + loadErr.Error(),
		Hint:        ErrorHint,
		DataSource:  d.presentation.DataSource,
		LastUpdated: domain.Today(),
	}
	var buf bytes.Buffer
	if err := d.tmpl.ExecuteTemplate(&buf, "error", data); err != nil {
		return nil, fmt.Errorf("execute error template: %w", err)
	}
	return &Response{Status: http.StatusServiceUnavailable, Body: buf.Bytes()}, nil
}
