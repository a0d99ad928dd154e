package view

import (
	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
)

func buildOverview(b *domain.Bundle, p domain.Presentation) *Overview {
	years, ticks := yearTicks(b.Timeseries.Years())
	extents := make([]float64, len(b.Timeseries))
	for i, row := range b.Timeseries {
		extents[i] = row.WaterExtentKm2
	}

	m := b.Metrics
	alerts := make([]Banner, len(p.Advisories))
	for i, a := range p.Advisories {
		alerts[i] = Banner{Tone: a.Tone, Text: a.Text, Static: true}
	}

	return &Overview{
		MonitoringTitle: "🌍 Lake Tana Water Monitoring",
		ImageURL:        ImageURL,
		ImageAlt:        b.Image.Name,
		TrendTitle:      "📊 Water Extent Trend (2020-2024)",
		Trend: &LineChart{
			ID:         "overview-water-extent",
			Title:      "Annual Water Extent",
			SeriesName: "water_extent_km2",
			XLabel:     "year",
			YLabel:     "water_extent_km2",
			X:          years,
			Y:          extents,
			XTicks:     ticks,
			LineWidth:  3,
			Markers:    true,
			MarkerSize: 8,
		},
		MetricsTitle: "📈 Key Metrics",
		MetricColumns: [][]Metric{
			{
				{Label: "Current Water Area", Value: domain.Verbatim(m.CurrentWaterExtent, " "+domain.AreaUnit)},
				{Label: "Historical Peak", Value: domain.FormatArea(domain.NumberValue(m.PeakWaterExtent))},
				{Label: "Historical Change", Value: domain.Verbatim(m.PercentDeclineSince1960, "%")},
			},
			{
				{Label: "Annual Change Rate", Value: domain.Verbatim(m.AnnualChangeRate, "%")},
				{Label: "Population Impacted", Value: domain.FormatMillions(domain.NumberValue(m.PopulationImpacted))},
				{Label: "Economic Impact", Value: "$" + domain.Verbatim(m.EconomicImpactMillionUSD, "M")},
			},
		},
		AlertsTitle: "⚠️ Recent Alerts",
		Alerts:      alerts,
	}
}
