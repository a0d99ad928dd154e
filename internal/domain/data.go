package domain

import (
	"encoding/json"
	"time"
)

// YearExtent is one row of water_extent_timeseries.csv.
type YearExtent struct {
	Year           int     `json:"year"`
	WaterExtentKm2 float64 `json:"water_extent_km2"`
	ChangePercent  float64 `json:"change_percent"`
}

// WaterTimeseries is the annual water extent series, ordered by year.
type WaterTimeseries []YearExtent

// Years returns the year column.
func (ts WaterTimeseries) Years() []int {
	years := make([]int, len(ts))
	for i, row := range ts {
		years[i] = row.Year
	}
	return years
}

// Latest returns the most recent row and false when the series is empty.
func (ts WaterTimeseries) Latest() (YearExtent, bool) {
	if len(ts) == 0 {
		return YearExtent{}, false
	}
	return ts[len(ts)-1], true
}

// SeasonalObservation is one row of seasonal_patterns.csv.
type SeasonalObservation struct {
	Year           int     `json:"year"`
	Month          int     `json:"month" validate:"min=1,max=12"`
	WaterFrequency float64 `json:"water_frequency"`
}

// SeasonalPattern holds monthly water frequency observations in file order.
type SeasonalPattern []SeasonalObservation

// ForYear returns the observations of a single year, preserving file order.
func (sp SeasonalPattern) ForYear(year int) SeasonalPattern {
	var out SeasonalPattern
	for _, obs := range sp {
		if obs.Year == year {
			out = append(out, obs)
		}
	}
	return out
}

// LakeRecord is one row of lake_comparison.csv.
type LakeRecord struct {
	Name     string  `json:"name" validate:"required"`
	Area2020 float64 `json:"area_2020"`
	Area2024 float64 `json:"area_2024"`
	Change   float64 `json:"change"` // percent
	Trend    string  `json:"trend"`
}

// LakeComparison lists the compared Ethiopian lakes. Names are unique.
type LakeComparison []LakeRecord

// Find returns the record with the given name.
func (lc LakeComparison) Find(name string) (LakeRecord, bool) {
	for _, rec := range lc {
		if rec.Name == name {
			return rec, true
		}
	}
	return LakeRecord{}, false
}

// Trends returns the distinct trend labels in order of first appearance.
func (lc LakeComparison) Trends() []string {
	seen := make(map[string]bool, len(lc))
	var out []string
	for _, rec := range lc {
		if seen[rec.Trend] {
			continue
		}
		seen[rec.Trend] = true
		out = append(out, rec.Trend)
	}
	return out
}

// Metrics holds the scalar indicators from metrics.json. Values keep the
// source text so they can be displayed verbatim.
type Metrics struct {
	CurrentWaterExtent       json.Number `json:"current_water_extent"`
	PeakWaterExtent          json.Number `json:"peak_water_extent"`
	PercentDeclineSince1960  json.Number `json:"percent_decline_since_1960"`
	AnnualChangeRate         json.Number `json:"annual_change_rate"`
	PopulationImpacted       json.Number `json:"population_impacted"`
	EconomicImpactMillionUSD json.Number `json:"economic_impact_million_usd"`
}

// Insights holds the free-text management lists from insights.json.
type Insights struct {
	KeyFindings               []string `json:"key_findings"`
	ManagementRecommendations []string `json:"management_recommendations"`
	PrimaryCauses             []string `json:"primary_causes"`
	DEAfricaAdvantages        []string `json:"de_africa_advantages"`
}

// Image is a static image displayed verbatim.
type Image struct {
	Name        string
	ContentType string
	Data        []byte
}

// Bundle is the complete, immutable data set for one dashboard process.
type Bundle struct {
	Timeseries WaterTimeseries
	Seasonal   SeasonalPattern
	Lakes      LakeComparison
	Metrics    Metrics
	Insights   Insights
	Grid       SpatialGrid
	Image      Image
	LoadedAt   time.Time
}
