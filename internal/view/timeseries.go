package view

import (
	"fmt"

	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
)

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func buildTimeSeries(b *domain.Bundle, p domain.Presentation) *TimeSeries {
	years, ticks := yearTicks(b.Timeseries.Years())
	extents := make([]float64, len(b.Timeseries))
	changes := make([]float64, len(b.Timeseries))
	for i, row := range b.Timeseries {
		extents[i] = row.WaterExtentKm2
		changes[i] = row.ChangePercent
	}

	ts := &TimeSeries{
		Heading: "📈 Detailed Time Series Analysis",
		Tabs: []Tab{
			{ID: "annual", Label: "Annual Trends"},
			{ID: "seasonal", Label: "Seasonal Patterns"},
			{ID: "statistics", Label: "Statistical Analysis"},
		},
		Annual: &DualAxisChart{
			ID:        "timeseries-annual",
			Title:     "Water Extent with Annual Change Percentage",
			XLabel:    "year",
			X:         years,
			XTicks:    ticks,
			LineName:  "Water Extent",
			LineY:     extents,
			LineWidth: 4,
			YLabel:    "Water Extent (km²)",
			BarName:   "Yearly Change",
			BarY:      changes,
			BarColor:  "green",
			Y2Label:   "Change (%)",
		},
		TrendSummaryTitle: "Trend Analysis",
		TrendSummary:      staticMetrics(p.TrendSummary),
		SeasonHighlights:  staticMetrics(p.SeasonHighlights),
		StatisticsNote:    "No statistical analysis is configured for this dashboard.",
	}

	season := b.Seasonal.ForYear(p.SeasonalYear)
	if len(season) == 0 {
		ts.SeasonalEmpty = fmt.Sprintf("No seasonal observations for %d.", p.SeasonalYear)
		return ts
	}

	months := make([]float64, len(season))
	freq := make([]float64, len(season))
	var monthTicks []Tick
	for i, obs := range season {
		months[i] = float64(obs.Month)
		freq[i] = obs.WaterFrequency
		monthTicks = append(monthTicks, Tick{Value: float64(obs.Month), Label: monthNames[obs.Month-1]})
	}
	ts.Seasonal = &LineChart{
		ID:         fmt.Sprintf("timeseries-seasonal-%d", p.SeasonalYear),
		Title:      fmt.Sprintf("Seasonal Water Frequency Pattern (%d)", p.SeasonalYear),
		SeriesName: "water_frequency",
		XLabel:     "month",
		YLabel:     "water_frequency",
		X:          months,
		Y:          freq,
		XTicks:     monthTicks,
		LineWidth:  2,
	}
	return ts
}
