// Package view turns a data bundle and a selection into a widget tree. Build
// is a pure function of its arguments; charts are returned as descriptions
// for a renderer, not as images.
package view

import "github.com/couchcryptid/lake-extent-dashboard/internal/domain"

// Fixed page text.
const (
	Title    = "💧 Digital Earth Africa - Lake Tana Monitoring Dashboard"
	Subtitle = "Ethiopia's Largest Lake - Water Resource Management Platform"
	ImageURL = "/static/compare.png"
)

// Page is the complete widget tree for one request. Exactly one of the view
// fields is set, matching Selection.View.
type Page struct {
	Title       string
	Subtitle    string
	Selection   domain.Selection
	Views       []Option
	Regions     []Option
	DataSource  string
	LastUpdated string

	Overview   *Overview
	TimeSeries *TimeSeries
	Comparison *Comparison
	Insights   *Insights
}

// Charts returns every chart on the page in display order.
func (p *Page) Charts() []Chart {
	switch {
	case p.Overview != nil:
		return []Chart{p.Overview.Trend}
	case p.TimeSeries != nil:
		charts := []Chart{p.TimeSeries.Annual}
		if p.TimeSeries.Seasonal != nil {
			charts = append(charts, p.TimeSeries.Seasonal)
		}
		return charts
	case p.Comparison != nil:
		return []Chart{p.Comparison.Areas, p.Comparison.Changes}
	}
	return nil
}

// Metrics returns every metric widget on the page.
func (p *Page) Metrics() []Metric {
	var out []Metric
	switch {
	case p.Overview != nil:
		for _, col := range p.Overview.MetricColumns {
			out = append(out, col...)
		}
	case p.TimeSeries != nil:
		out = append(out, p.TimeSeries.TrendSummary...)
		out = append(out, p.TimeSeries.SeasonHighlights...)
	}
	return out
}

// Option is one entry of a selection control.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Metric is a labeled scalar. Static metrics are literals from the
// presentation file rather than values read from the data directory.
type Metric struct {
	Label  string
	Value  string
	Note   string
	Static bool
}

// Banner is a colored message box.
type Banner struct {
	Tone   domain.Tone
	Text   string
	Static bool
}

// Overview is the landing view.
type Overview struct {
	MonitoringTitle string
	ImageURL        string
	ImageAlt        string
	TrendTitle      string
	Trend           *LineChart
	MetricsTitle    string
	MetricColumns   [][]Metric
	AlertsTitle     string
	Alerts          []Banner
}

// Tab is one tab header of the time series view.
type Tab struct {
	ID    string
	Label string
}

// TimeSeries is the detailed time series view with three tabs.
type TimeSeries struct {
	Heading string
	Tabs    []Tab

	Annual            *DualAxisChart
	TrendSummaryTitle string
	TrendSummary      []Metric

	// Seasonal is nil when no observations exist for the seasonal year.
	Seasonal         *LineChart
	SeasonalEmpty    string
	SeasonHighlights []Metric

	StatisticsNote string
}

// ComparisonRow is a display copy of a lake record.
type ComparisonRow struct {
	Name     string
	Area2020 string
	Area2024 string
	Change   string
	Trend    string
	Focused  bool
}

// Focus describes the lake selected by the region control.
type Focus struct {
	Name     string
	Found    bool
	Area2020 string
	Area2024 string
	Change   string
	Trend    string
}

// Comparison is the regional comparison view.
type Comparison struct {
	Heading    string
	Areas      *GroupedBarChart
	Changes    *CategoryBarChart
	TableTitle string
	Columns    []string
	Rows       []ComparisonRow
	Focus      *Focus
	Downloads  []Option
}

// InsightSection is one styled list of the insights view.
type InsightSection struct {
	Title  string
	Tone   domain.Tone
	Bullet string
	Items  []string
}

// Insights is the management insights view, laid out in two columns.
type Insights struct {
	Columns [][]InsightSection
}
