package view_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
	"github.com/couchcryptid/lake-extent-dashboard/internal/mockdata"
	"github.com/couchcryptid/lake-extent-dashboard/internal/view"
)

const today = "2024-12-31"

func build(b *domain.Bundle, v domain.ViewMode, r domain.Region) *view.Page {
	return view.Build(b, domain.Selection{View: v, Region: r}, domain.DefaultPresentation(), today)
}

func metricValue(t *testing.T, p *view.Page, label string) string {
	t.Helper()
	for _, m := range p.Metrics() {
		if m.Label == label {
			return m.Value
		}
	}
	t.Fatalf("metric %q not found", label)
	return ""
}

func TestBuild_ExactlyOneView(t *testing.T) {
	b := mockdata.Bundle(4)
	for _, v := range domain.ViewModes {
		t.Run(v.Slug(), func(t *testing.T) {
			p := build(b, v, domain.RegionLakeTana)
			set := 0
			for _, present := range []bool{p.Overview != nil, p.TimeSeries != nil, p.Comparison != nil, p.Insights != nil} {
				if present {
					set++
				}
			}
			assert.Equal(t, 1, set)
			assert.Equal(t, view.Title, p.Title)
			assert.Equal(t, "Digital Earth Africa WOfS", p.DataSource)
			assert.Equal(t, today, p.LastUpdated)
		})
	}
}

func TestBuild_SelectionOptions(t *testing.T) {
	p := build(mockdata.Bundle(4), domain.ViewComparison, domain.RegionLakeChamo)

	require.Len(t, p.Views, 4)
	require.Len(t, p.Regions, 4)
	assert.Equal(t, "Ethiopian Lakes Comparison", p.Views[2].Label)
	assert.True(t, p.Views[2].Selected)
	assert.False(t, p.Views[0].Selected)
	assert.Equal(t, "lake-chamo", p.Regions[2].Value)
	assert.True(t, p.Regions[2].Selected)
}

func TestOverview_TrendChart(t *testing.T) {
	b := mockdata.Bundle(4)
	p := build(b, domain.ViewOverview, domain.RegionLakeTana)

	trend := p.Overview.Trend
	assert.Equal(t, "Annual Water Extent", trend.Title)
	assert.Equal(t, []float64{2020, 2021, 2022, 2023, 2024}, trend.X)
	assert.Equal(t, []float64{3000, 3050, 3010, 3070, 3068}, trend.Y)
	assert.True(t, trend.Markers)
	assert.InDelta(t, 3.0, trend.LineWidth, 1e-9)
	assert.InDelta(t, 8.0, trend.MarkerSize, 1e-9)
	require.Len(t, trend.XTicks, 5)
	assert.Equal(t, "2020", trend.XTicks[0].Label)

	for i := 1; i < len(trend.X); i++ {
		assert.Less(t, trend.X[i-1], trend.X[i])
	}
}

func TestOverview_Metrics(t *testing.T) {
	b := mockdata.Bundle(4)
	b.Metrics = domain.Metrics{
		CurrentWaterExtent:       json.Number("3068"),
		PeakWaterExtent:          json.Number("3156.4"),
		PercentDeclineSince1960:  json.Number("-2.80"),
		AnnualChangeRate:         json.Number("0.4"),
		PopulationImpacted:       json.Number("15000000"),
		EconomicImpactMillionUSD: json.Number("850"),
	}
	p := build(b, domain.ViewOverview, domain.RegionLakeTana)

	require.Len(t, p.Overview.MetricColumns, 2)
	assert.Len(t, p.Overview.MetricColumns[0], 3)
	assert.Len(t, p.Overview.MetricColumns[1], 3)

	assert.Equal(t, "3068 km²", metricValue(t, p, "Current Water Area"))
	assert.Equal(t, "3,156 km²", metricValue(t, p, "Historical Peak"))
	assert.Equal(t, "-2.80%", metricValue(t, p, "Historical Change"))
	assert.Equal(t, "0.4%", metricValue(t, p, "Annual Change Rate"))
	assert.Equal(t, "15.0M", metricValue(t, p, "Population Impacted"))
	assert.Equal(t, "$850M", metricValue(t, p, "Economic Impact"))

	for _, m := range p.Metrics() {
		assert.False(t, m.Static, m.Label)
	}
}

func TestOverview_AdvisoriesAreStatic(t *testing.T) {
	p := build(mockdata.Bundle(4), domain.ViewOverview, domain.RegionLakeTana)

	require.Len(t, p.Overview.Alerts, 2)
	assert.Equal(t, view.Banner{Tone: domain.ToneInfo, Text: "Dry season water levels within normal range", Static: true}, p.Overview.Alerts[0])
	assert.Equal(t, view.Banner{Tone: domain.ToneWarning, Text: "Rainy season onset delayed by 10 days", Static: true}, p.Overview.Alerts[1])
}

func TestTimeSeries_AnnualChart(t *testing.T) {
	b := mockdata.Bundle(4)
	p := build(b, domain.ViewTimeSeries, domain.RegionLakeTana)

	ts := p.TimeSeries
	require.Len(t, ts.Tabs, 3)
	assert.Equal(t, "Statistical Analysis", ts.Tabs[2].Label)

	annual := ts.Annual
	assert.Equal(t, "Water Extent with Annual Change Percentage", annual.Title)
	assert.Equal(t, "Water Extent (km²)", annual.YLabel)
	assert.Equal(t, "Change (%)", annual.Y2Label)
	require.Len(t, annual.BarY, len(b.Timeseries))
	for i, row := range b.Timeseries {
		assert.InDelta(t, row.ChangePercent, annual.BarY[i], 1e-9)
		assert.InDelta(t, row.WaterExtentKm2, annual.LineY[i], 1e-9)
	}

	require.Len(t, ts.TrendSummary, 3)
	assert.Equal(t, view.Metric{Label: "5-Year Change", Value: "+2.2%", Static: true}, ts.TrendSummary[0])
	assert.NotEmpty(t, ts.StatisticsNote)
}

func TestTimeSeries_SeasonalFiltersYear(t *testing.T) {
	b := mockdata.Bundle(4)
	b.Seasonal = domain.SeasonalPattern{
		{Year: 2023, Month: 1, WaterFrequency: 0.1},
		{Year: 2024, Month: 3, WaterFrequency: 0.7},
		{Year: 2024, Month: 1, WaterFrequency: 0.6},
		{Year: 2025, Month: 2, WaterFrequency: 0.9},
	}
	p := build(b, domain.ViewTimeSeries, domain.RegionLakeTana)

	seasonal := p.TimeSeries.Seasonal
	require.NotNil(t, seasonal)
	assert.Equal(t, "Seasonal Water Frequency Pattern (2024)", seasonal.Title)
	assert.Equal(t, []float64{3, 1}, seasonal.X)
	assert.Equal(t, []float64{0.7, 0.6}, seasonal.Y)
	assert.Empty(t, p.TimeSeries.SeasonalEmpty)

	require.Len(t, p.TimeSeries.SeasonHighlights, 2)
	assert.Equal(t, "September", p.TimeSeries.SeasonHighlights[0].Value)
	assert.Equal(t, "Main rainy season", p.TimeSeries.SeasonHighlights[0].Note)
}

func TestTimeSeries_SeasonalEmptyYear(t *testing.T) {
	b := mockdata.Bundle(4)
	b.Seasonal = mockdata.Seasonal(2020, 2022)
	p := build(b, domain.ViewTimeSeries, domain.RegionLakeTana)

	assert.Nil(t, p.TimeSeries.Seasonal)
	assert.Contains(t, p.TimeSeries.SeasonalEmpty, "2024")
	assert.Len(t, p.Charts(), 1)
}

func TestTimeSeries_SeasonalYearFromPresentation(t *testing.T) {
	b := mockdata.Bundle(4)
	pres := domain.DefaultPresentation()
	pres.SeasonalYear = 2021
	p := view.Build(b, domain.Selection{View: domain.ViewTimeSeries}, pres, today)

	require.NotNil(t, p.TimeSeries.Seasonal)
	assert.Equal(t, "Seasonal Water Frequency Pattern (2021)", p.TimeSeries.Seasonal.Title)
	assert.Len(t, p.TimeSeries.Seasonal.X, 12)
}

func TestComparison_TableFormatting(t *testing.T) {
	b := mockdata.Bundle(4)
	p := build(b, domain.ViewComparison, domain.RegionComparative)

	var abaya view.ComparisonRow
	for _, row := range p.Comparison.Rows {
		if row.Name == "Lake Abaya" {
			abaya = row
		}
	}
	assert.Equal(t, "1,160 km²", abaya.Area2020)
	assert.Equal(t, "1,140 km²", abaya.Area2024)
	assert.Equal(t, "-1.7%", abaya.Change)
	assert.Equal(t, "declining", abaya.Trend)

	assert.InDelta(t, 1160.0, b.Lakes[1].Area2020, 1e-9, "bundle must not be mutated")
	assert.Nil(t, p.Comparison.Focus)
	for _, row := range p.Comparison.Rows {
		assert.False(t, row.Focused)
	}
}

func TestComparison_Charts(t *testing.T) {
	p := build(mockdata.Bundle(4), domain.ViewComparison, domain.RegionLakeTana)

	areas := p.Comparison.Areas
	assert.Equal(t, []string{"Lake Tana", "Lake Abaya", "Lake Chamo", "Lake Ziway"}, areas.Categories)
	require.Len(t, areas.Groups, 2)
	assert.Equal(t, "area_2020", areas.Groups[0].Name)
	assert.Equal(t, []float64{3000, 1160, 317, 434}, areas.Groups[0].Values)

	changes := p.Comparison.Changes
	assert.Equal(t, []string{"stable", "declining", "increasing"}, changes.Classes)
	require.Len(t, changes.Bars, 4)
	assert.Equal(t, 1, changes.Bars[1].Class)
	assert.Equal(t, 1, changes.Bars[3].Class)
	assert.Equal(t, 2, changes.Bars[2].Class)
}

func TestComparison_RegionFocus(t *testing.T) {
	b := mockdata.Bundle(4)
	p := build(b, domain.ViewComparison, domain.RegionLakeAbaya)

	require.NotNil(t, p.Comparison.Focus)
	assert.True(t, p.Comparison.Focus.Found)
	assert.Equal(t, "Lake Abaya", p.Comparison.Focus.Name)
	assert.Equal(t, "-1.7%", p.Comparison.Focus.Change)

	focused := 0
	for _, row := range p.Comparison.Rows {
		if row.Focused {
			focused++
			assert.Equal(t, "Lake Abaya", row.Name)
		}
	}
	assert.Equal(t, 1, focused)
}

func TestComparison_RegionNotInTable(t *testing.T) {
	b := mockdata.Bundle(4)
	b.Lakes = b.Lakes[:2]
	p := build(b, domain.ViewComparison, domain.RegionLakeChamo)

	require.NotNil(t, p.Comparison.Focus)
	assert.False(t, p.Comparison.Focus.Found)
}

func TestRegionDoesNotChangeOtherViews(t *testing.T) {
	b := mockdata.Bundle(4)
	for _, v := range []domain.ViewMode{domain.ViewOverview, domain.ViewTimeSeries, domain.ViewInsights} {
		t.Run(v.Slug(), func(t *testing.T) {
			base := build(b, v, domain.RegionLakeTana)
			for _, r := range domain.Regions[1:] {
				other := build(b, v, r)
				assert.Equal(t, base.Overview, other.Overview)
				assert.Equal(t, base.TimeSeries, other.TimeSeries)
				assert.Equal(t, base.Insights, other.Insights)
			}
		})
	}
}

func TestInsights_Sections(t *testing.T) {
	b := mockdata.Bundle(4)
	b.Insights.PrimaryCauses = []string{}
	p := build(b, domain.ViewInsights, domain.RegionLakeTana)

	cols := p.Insights.Columns
	require.Len(t, cols, 2)

	findings := cols[0][0]
	assert.Equal(t, "🔍 Key Findings", findings.Title)
	assert.Equal(t, domain.ToneInfo, findings.Tone)
	assert.Equal(t, "• ", findings.Bullet)
	assert.Equal(t, b.Insights.KeyFindings, findings.Items)

	assert.Equal(t, domain.ToneSuccess, cols[0][1].Tone)
	assert.Equal(t, domain.ToneWarning, cols[1][0].Tone)
	assert.Empty(t, cols[1][0].Items)
	assert.Equal(t, domain.ToneHighlight, cols[1][1].Tone)
	assert.Equal(t, "🌟 ", cols[1][1].Bullet)

	assert.Empty(t, p.Charts())
	assert.Empty(t, p.Metrics())
}

func TestWaterFrequencyHeatmap(t *testing.T) {
	grid := mockdata.Grid(5)
	h := view.WaterFrequencyHeatmap(grid)

	assert.Equal(t, "Lake Tana Water Frequency Distribution", h.Title)
	assert.Equal(t, "Longitude", h.XLabel)
	assert.Equal(t, "Latitude", h.YLabel)
	c, r := h.Grid.Dims()
	assert.Equal(t, 5, c)
	assert.Equal(t, 5, r)
}

func TestClassColor(t *testing.T) {
	assert.Equal(t, view.ClassColor(0), view.ClassColor(6))
	assert.NotEqual(t, view.ClassColor(0), view.ClassColor(1))
	assert.Equal(t, view.ClassColor(0), view.ClassColor(-1))
}
