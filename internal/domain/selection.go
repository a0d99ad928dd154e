package domain

import (
	"fmt"
	"strings"
)

// ViewMode selects which of the four view routines renders the page.
type ViewMode int

const (
	ViewOverview ViewMode = iota
	ViewTimeSeries
	ViewComparison
	ViewInsights
)

// ViewModes lists the view modes in control order.
var ViewModes = []ViewMode{ViewOverview, ViewTimeSeries, ViewComparison, ViewInsights}

var viewModeNames = map[ViewMode][2]string{
	ViewOverview:   {"overview", "Overview"},
	ViewTimeSeries: {"time-series", "Time Series Analysis"},
	ViewComparison: {"comparison", "Ethiopian Lakes Comparison"},
	ViewInsights:   {"insights", "Management Insights"},
}

// Slug is the URL form of the view mode.
func (v ViewMode) Slug() string { return viewModeNames[v][0] }

// Label is the display form of the view mode.
func (v ViewMode) Label() string { return viewModeNames[v][1] }

func (v ViewMode) String() string { return v.Slug() }

// ParseViewMode accepts a slug or label, case-insensitively. The empty
// string selects the first view mode.
func ParseViewMode(s string) (ViewMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ViewOverview, nil
	}
	for _, v := range ViewModes {
		if strings.EqualFold(s, v.Slug()) || strings.EqualFold(s, v.Label()) {
			return v, nil
		}
	}
	return ViewOverview, fmt.Errorf("%w: view %q", ErrUnknownSelection, s)
}

// Region is the focus-region selection.
type Region int

const (
	RegionLakeTana Region = iota
	RegionLakeAbaya
	RegionLakeChamo
	RegionComparative
)

// Regions lists the regions in control order.
var Regions = []Region{RegionLakeTana, RegionLakeAbaya, RegionLakeChamo, RegionComparative}

var regionNames = map[Region][2]string{
	RegionLakeTana:    {"lake-tana", "Lake Tana"},
	RegionLakeAbaya:   {"lake-abaya", "Lake Abaya"},
	RegionLakeChamo:   {"lake-chamo", "Lake Chamo"},
	RegionComparative: {"comparative", "Comparative View"},
}

// Slug is the URL form of the region.
func (r Region) Slug() string { return regionNames[r][0] }

// Label is the display form of the region, which doubles as the lake name
// in lake_comparison.csv for single-lake regions.
func (r Region) Label() string { return regionNames[r][1] }

func (r Region) String() string { return r.Slug() }

// Lake returns the lake name this region focuses on, or false for the
// comparative view.
func (r Region) Lake() (string, bool) {
	if r == RegionComparative {
		return "", false
	}
	return r.Label(), true
}

// ParseRegion accepts a slug or label, case-insensitively. The empty string
// selects the first region.
func ParseRegion(s string) (Region, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RegionLakeTana, nil
	}
	for _, r := range Regions {
		if strings.EqualFold(s, r.Slug()) || strings.EqualFold(s, r.Label()) {
			return r, nil
		}
	}
	return RegionLakeTana, fmt.Errorf("%w: region %q", ErrUnknownSelection, s)
}

// Selection is the complete interactive state of the dashboard.
type Selection struct {
	View   ViewMode
	Region Region
}

// ParseSelection parses both controls.
func ParseSelection(view, region string) (Selection, error) {
	v, err := ParseViewMode(view)
	if err != nil {
		return Selection{}, err
	}
	r, err := ParseRegion(region)
	if err != nil {
		return Selection{}, err
	}
	return Selection{View: v, Region: r}, nil
}
