package view

import "github.com/couchcryptid/lake-extent-dashboard/internal/domain"

// Chart is a renderer-independent chart description. ChartID is unique per
// chart content within a process, so rendered output can be cached by it.
type Chart interface {
	ChartID() string
	ChartTitle() string
}

// Tick is a labeled axis position.
type Tick struct {
	Value float64
	Label string
}

// LineChart plots one series in X order.
type LineChart struct {
	ID         string
	Title      string
	SeriesName string
	XLabel     string
	YLabel     string
	X          []float64
	Y          []float64
	XTicks     []Tick
	LineWidth  float64
	Markers    bool
	MarkerSize float64
}

func (c *LineChart) ChartID() string    { return c.ID }
func (c *LineChart) ChartTitle() string { return c.Title }

// DualAxisChart overlays a line on the primary axis with bars on the
// secondary axis, sharing the X positions.
type DualAxisChart struct {
	ID        string
	Title     string
	XLabel    string
	X         []float64
	XTicks    []Tick
	LineName  string
	LineY     []float64
	LineWidth float64
	YLabel    string
	BarName   string
	BarY      []float64
	BarColor  string
	Y2Label   string
}

func (c *DualAxisChart) ChartID() string    { return c.ID }
func (c *DualAxisChart) ChartTitle() string { return c.Title }

// BarGroup is one colored group of a grouped bar chart; Values align with
// the chart's categories.
type BarGroup struct {
	Name   string
	Values []float64
}

// GroupedBarChart shows several groups side by side per category.
type GroupedBarChart struct {
	ID         string
	Title      string
	YLabel     string
	Categories []string
	Groups     []BarGroup
}

func (c *GroupedBarChart) ChartID() string    { return c.ID }
func (c *GroupedBarChart) ChartTitle() string { return c.Title }

// Category colors, assigned to classes in order of first appearance.
var classPalette = []string{"636efa", "ef553b", "00cc96", "ab63fa", "ffa15a", "19d3f3"}

// ClassColor returns the hex color (without '#') for class index i.
func ClassColor(i int) string {
	if i < 0 {
		i = 0
	}
	return classPalette[i%len(classPalette)]
}

// Bar is one bar of a category bar chart. Class indexes the chart's Classes.
type Bar struct {
	Label string
	Value float64
	Class int
}

// CategoryBarChart shows one bar per label, colored by class.
type CategoryBarChart struct {
	ID      string
	Title   string
	YLabel  string
	Bars    []Bar
	Classes []string
}

func (c *CategoryBarChart) ChartID() string    { return c.ID }
func (c *CategoryBarChart) ChartTitle() string { return c.Title }

// HeatmapChart draws a spatial grid.
type HeatmapChart struct {
	ID     string
	Title  string
	XLabel string
	YLabel string
	Grid   domain.SpatialGrid
}

func (c *HeatmapChart) ChartID() string    { return c.ID }
func (c *HeatmapChart) ChartTitle() string { return c.Title }

// WaterFrequencyHeatmap describes the spatial water frequency map.
func WaterFrequencyHeatmap(grid domain.SpatialGrid) *HeatmapChart {
	return &HeatmapChart{
		ID:     "water-frequency-heatmap",
		Title:  "Lake Tana Water Frequency Distribution",
		XLabel: "Longitude",
		YLabel: "Latitude",
		Grid:   grid,
	}
}
