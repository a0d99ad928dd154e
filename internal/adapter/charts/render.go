// Package charts renders view chart descriptions to SVG. Line, dual-axis and
// category bar charts use go-chart; grouped bars and the spatial heatmap use
// gonum/plot.
package charts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/lake-extent-dashboard/internal/observability"
	"github.com/couchcryptid/lake-extent-dashboard/internal/view"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 720
	DefaultHeight = 400
)

// ErrUnsupportedChart is returned for chart types the renderer cannot draw.
var ErrUnsupportedChart = errors.New("unsupported chart type")

// SVGRenderer draws charts as standalone <svg> elements suitable for inline
// HTML.
type SVGRenderer struct {
	width   int
	height  int
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewSVGRenderer creates a renderer with the default canvas size.
func NewSVGRenderer(logger *slog.Logger, metrics *observability.Metrics) *SVGRenderer {
	return &SVGRenderer{width: DefaultWidth, height: DefaultHeight, logger: logger, metrics: metrics}
}

// Render returns the SVG markup for c.
func (r *SVGRenderer) Render(ctx context.Context, c view.Chart) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind := chartKind(c)
	var (
		out []byte
		err error
	)
	switch c := c.(type) {
	case *view.LineChart:
		out, err = r.renderLine(c)
	case *view.DualAxisChart:
		out, err = r.renderDualAxis(c)
	case *view.CategoryBarChart:
		out, err = r.renderCategoryBars(c)
	case *view.GroupedBarChart:
		out, err = r.renderGroupedBars(c)
	case *view.HeatmapChart:
		out, err = r.renderHeatmap(c)
	default:
		err = fmt.Errorf("%w: %T", ErrUnsupportedChart, c)
	}
	if err != nil {
		r.metrics.ChartRenderErrors.WithLabelValues(kind).Inc()
		r.logger.Warn("chart render failed", "chart", c.ChartID(), "kind", kind, "error", err)
		return nil, fmt.Errorf("render %s chart %q: %w", kind, c.ChartID(), err)
	}
	r.logger.Debug("chart rendered", "chart", c.ChartID(), "kind", kind, "bytes", len(out))
	return out, nil
}

func chartKind(c view.Chart) string {
	switch c.(type) {
	case *view.LineChart:
		return "line"
	case *view.DualAxisChart:
		return "dual_axis"
	case *view.CategoryBarChart:
		return "category_bar"
	case *view.GroupedBarChart:
		return "grouped_bar"
	case *view.HeatmapChart:
		return "heatmap"
	default:
		return "unknown"
	}
}

// inlineSVG strips any XML prolog so the markup can be embedded in HTML.
func inlineSVG(b []byte) []byte {
	if i := bytes.Index(b, []byte("<svg")); i > 0 {
		return b[i:]
	}
	return b
}
