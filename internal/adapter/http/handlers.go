package http

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/couchcryptid/lake-extent-dashboard/internal/adapter/export"
	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
	"github.com/couchcryptid/lake-extent-dashboard/internal/observability"
	"github.com/couchcryptid/lake-extent-dashboard/internal/view"
)

type handlers struct {
	pages   PageRenderer
	loader  BundleLoader
	charts  ChartRenderer
	logger  *slog.Logger
	metrics *observability.Metrics
}

func (h *handlers) page(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sel, err := domain.ParseSelection(q.Get("view"), q.Get("region"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.pages.Render(r.Context(), sel)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "page render failed", "view", sel.View.Slug(), "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(resp.Status)
	w.Write(resp.Body) //nolint:errcheck // client disconnects are not actionable
}

// loadStatus maps a bundle load failure to a response status. Data load
// errors mean the data directory is unusable; anything else is a bug.
func loadStatus(err error) int {
	if domain.IsDataLoadError(err) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// bundle loads the data bundle, answering with loadStatus on failure.
func (h *handlers) bundle(w http.ResponseWriter) (*domain.Bundle, bool) {
	b, err := h.loader.Load()
	if err != nil {
		http.Error(w, err.Error(), loadStatus(err))
		return nil, false
	}
	return b, true
}

func (h *handlers) image(w http.ResponseWriter, _ *http.Request) {
	b, ok := h.bundle(w)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", b.Image.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(b.Image.Data)))
	w.Write(b.Image.Data) //nolint:errcheck // client disconnects are not actionable
}

func (h *handlers) exportCSV(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "csv", export.CSVContentType, export.WriteComparisonCSV)
}

func (h *handlers) exportXLSX(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "xlsx", export.XLSXContentType, export.WriteComparisonXLSX)
}

func (h *handlers) export(w http.ResponseWriter, r *http.Request, format, contentType string, write func(io.Writer, domain.LakeComparison) error) {
	b, ok := h.bundle(w)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := write(&buf, b.Lakes); err != nil {
		h.logger.ErrorContext(r.Context(), "comparison export failed", "format", format, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.metrics.Exports.WithLabelValues(format).Inc()
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="lake-comparison.`+format+`"`)
	w.Write(buf.Bytes()) //nolint:errcheck // client disconnects are not actionable
}

func (h *handlers) heatmap(w http.ResponseWriter, r *http.Request) {
	b, ok := h.bundle(w)
	if !ok {
		return
	}
	svg, err := h.charts.Render(r.Context(), view.WaterFrequencyHeatmap(b.Grid))
	if err != nil {
		h.logger.WarnContext(r.Context(), "heatmap render failed", "error", err)
		http.Error(w, "chart unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg) //nolint:errcheck // client disconnects are not actionable
}

type apiError struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// datasets maps the API dataset names to bundle fields.
var datasets = map[string]func(*domain.Bundle) any{
	"timeseries": func(b *domain.Bundle) any { return b.Timeseries },
	"seasonal":   func(b *domain.Bundle) any { return b.Seasonal },
	"lakes":      func(b *domain.Bundle) any { return b.Lakes },
	"metrics":    func(b *domain.Bundle) any { return b.Metrics },
	"insights":   func(b *domain.Bundle) any { return b.Insights },
}

func (h *handlers) dataset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "dataset")
	pick, ok := datasets[name]
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, apiError{Status: "error", Error: "unknown dataset: " + name})
		return
	}

	b, err := h.loader.Load()
	if err != nil {
		render.Status(r, loadStatus(err))
		render.JSON(w, r, apiError{Status: "error", Error: err.Error()})
		return
	}
	render.JSON(w, r, pick(b))
}
