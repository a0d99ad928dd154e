package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lake_dashboard"

// Metrics holds the Prometheus counters, histograms, and gauges for the dashboard.
type Metrics struct {
	// Data loading metrics.
	DataLoads        *prometheus.CounterVec // labels: outcome={success,error}
	DataLoadDuration prometheus.Histogram
	DataLoaded       prometheus.Gauge

	// Page rendering metrics.
	PageRenders        *prometheus.CounterVec   // labels: view
	PageRenderErrors   *prometheus.CounterVec   // labels: view
	PageRenderDuration *prometheus.HistogramVec // labels: view

	// Chart metrics.
	ChartCache        *prometheus.CounterVec // labels: result={hit,miss}
	ChartRenderErrors *prometheus.CounterVec // labels: kind

	Exports *prometheus.CounterVec // labels: format={csv,xlsx}
}

// NewMetrics creates and registers all dashboard metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.DataLoads,
		m.DataLoadDuration,
		m.DataLoaded,
		m.PageRenders,
		m.PageRenderErrors,
		m.PageRenderDuration,
		m.ChartCache,
		m.ChartRenderErrors,
		m.Exports,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		DataLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "data_loads_total",
			Help:      "Data bundle load attempts by outcome.",
		}, []string{"outcome"}),
		DataLoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "data_load_duration_seconds",
			Help:      "Duration of reading and validating the data directory.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		DataLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "data_loaded",
			Help:      "1 when the data bundle loaded successfully, 0 otherwise.",
		}),
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Dashboard pages rendered by view mode.",
		}, []string{"view"}),
		PageRenderErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_render_errors_total",
			Help:      "Dashboard pages that ended in an error state by view mode.",
		}, []string{"view"}),
		PageRenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "page_render_duration_seconds",
			Help:      "Duration of a full page render including charts.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"view"}),
		ChartCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_cache_total",
			Help:      "Rendered chart cache lookups by result.",
		}, []string{"result"}),
		ChartRenderErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_render_errors_total",
			Help:      "Chart render failures by chart kind.",
		}, []string{"kind"}),
		Exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Comparison table downloads by format.",
		}, []string{"format"}),
	}
}
