package view

import (
	"strconv"

	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
)

// Build composes the page for sel. today is the footer date (YYYY-MM-DD).
// Exactly one view routine runs per call.
func Build(b *domain.Bundle, sel domain.Selection, p domain.Presentation, today string) *Page {
	page := &Page{
		Title:       Title,
		Subtitle:    Subtitle,
		Selection:   sel,
		Views:       viewOptions(sel.View),
		Regions:     regionOptions(sel.Region),
		DataSource:  p.DataSource,
		LastUpdated: today,
	}

	switch sel.View {
	case domain.ViewTimeSeries:
		page.TimeSeries = buildTimeSeries(b, p)
	case domain.ViewComparison:
		page.Comparison = buildComparison(b, sel.Region)
	case domain.ViewInsights:
		page.Insights = buildInsights(b)
	default:
		page.Overview = buildOverview(b, p)
	}
	return page
}

func viewOptions(selected domain.ViewMode) []Option {
	opts := make([]Option, len(domain.ViewModes))
	for i, v := range domain.ViewModes {
		opts[i] = Option{Value: v.Slug(), Label: v.Label(), Selected: v == selected}
	}
	return opts
}

func regionOptions(selected domain.Region) []Option {
	opts := make([]Option, len(domain.Regions))
	for i, r := range domain.Regions {
		opts[i] = Option{Value: r.Slug(), Label: r.Label(), Selected: r == selected}
	}
	return opts
}

func staticMetrics(figs []domain.StaticFigure) []Metric {
	out := make([]Metric, len(figs))
	for i, f := range figs {
		out[i] = Metric{Label: f.Label, Value: f.Value, Note: f.Note, Static: true}
	}
	return out
}

func yearTicks(years []int) ([]float64, []Tick) {
	xs := make([]float64, len(years))
	ticks := make([]Tick, len(years))
	for i, y := range years {
		xs[i] = float64(y)
		ticks[i] = Tick{Value: float64(y), Label: strconv.Itoa(y)}
	}
	return xs, ticks
}
