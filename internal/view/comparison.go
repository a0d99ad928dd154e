package view

import (
	"slices"

	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
)

// Export download paths for the comparison table.
const (
	ExportCSVPath  = "/export/lake-comparison.csv"
	ExportXLSXPath = "/export/lake-comparison.xlsx"
)

func buildComparison(b *domain.Bundle, region domain.Region) *Comparison {
	lakes := b.Lakes
	names := make([]string, len(lakes))
	area2020 := make([]float64, len(lakes))
	area2024 := make([]float64, len(lakes))
	for i, rec := range lakes {
		names[i] = rec.Name
		area2020[i] = rec.Area2020
		area2024[i] = rec.Area2024
	}

	classes := lakes.Trends()
	bars := make([]Bar, len(lakes))
	for i, rec := range lakes {
		bars[i] = Bar{Label: rec.Name, Value: rec.Change, Class: slices.Index(classes, rec.Trend)}
	}

	focusName, focusing := region.Lake()
	rows := make([]ComparisonRow, len(lakes))
	for i, rec := range lakes {
		rows[i] = ComparisonRow{
			Name:     rec.Name,
			Area2020: domain.FormatArea(rec.Area2020),
			Area2024: domain.FormatArea(rec.Area2024),
			Change:   domain.FormatPercent(rec.Change),
			Trend:    rec.Trend,
			Focused:  focusing && rec.Name == focusName,
		}
	}

	c := &Comparison{
		Heading: "🏔️ Ethiopian Lakes Comparison",
		Areas: &GroupedBarChart{
			ID:         "comparison-areas",
			Title:      "Water Extent Comparison (2020 vs 2024)",
			YLabel:     "value",
			Categories: names,
			Groups: []BarGroup{
				{Name: "area_2020", Values: area2020},
				{Name: "area_2024", Values: area2024},
			},
		},
		Changes: &CategoryBarChart{
			ID:      "comparison-changes",
			Title:   "Percentage Change (2020-2024)",
			YLabel:  "change",
			Bars:    bars,
			Classes: classes,
		},
		TableTitle: "Detailed Comparison Table",
		Columns:    []string{"name", "area_2020", "area_2024", "change", "trend"},
		Rows:       rows,
		Downloads: []Option{
			{Value: ExportCSVPath, Label: "Download CSV"},
			{Value: ExportXLSXPath, Label: "Download Excel"},
		},
	}

	if focusing {
		f := &Focus{Name: focusName}
		if rec, ok := lakes.Find(focusName); ok {
			f.Found = true
			f.Area2020 = domain.FormatArea(rec.Area2020)
			f.Area2024 = domain.FormatArea(rec.Area2024)
			f.Change = domain.FormatPercent(rec.Change)
			f.Trend = rec.Trend
		}
		c.Focus = f
	}
	return c
}
