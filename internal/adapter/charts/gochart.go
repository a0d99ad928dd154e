package charts

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/couchcryptid/lake-extent-dashboard/internal/view"
)

var errNoData = errors.New("no data points")

func (r *SVGRenderer) background() chart.Style {
	return chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}}
}

func ticks(in []view.Tick) []chart.Tick {
	if len(in) == 0 {
		return nil
	}
	out := make([]chart.Tick, len(in))
	for i, t := range in {
		out[i] = chart.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}

// span returns the extent of values, widened to include zero when asked.
func span(includeZero bool, values []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	if includeZero {
		lo, hi = min(lo, 0), max(hi, 0)
	}
	return lo, hi
}

// padded widens a zero-width extent by pad on each side so go-chart can
// scale it. A zero pad falls back to a tenth of the value, or one at zero.
func padded(lo, hi, pad float64) *chart.ContinuousRange {
	if lo == hi {
		if pad == 0 {
			pad = math.Abs(lo) * 0.1
		}
		if pad == 0 {
			pad = 1
		}
		lo, hi = lo-pad, hi+pad
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

// flatRange returns a padded range when values collapse to a single point,
// and nil to leave autoscaling in place otherwise.
func flatRange(includeZero bool, pad float64, values []float64) chart.Range {
	lo, hi := span(includeZero, values)
	if lo != hi {
		return nil
	}
	return padded(lo, hi, pad)
}

// xAxis builds the shared X axis. go-chart derives the X range from custom
// ticks when present, so a single X position gets blank ticks one unit to
// either side.
func xAxis(name string, in []view.Tick, xs []float64) chart.XAxis {
	axis := chart.XAxis{Name: name, Ticks: ticks(in), Range: flatRange(false, 1, xs)}
	if axis.Range != nil && len(axis.Ticks) > 0 {
		lo, hi := span(false, xs)
		axis.Ticks = append([]chart.Tick{{Value: lo - 1}}, append(axis.Ticks, chart.Tick{Value: hi + 1})...)
	}
	return axis
}

func (r *SVGRenderer) renderLine(c *view.LineChart) ([]byte, error) {
	if len(c.X) == 0 {
		return nil, errNoData
	}
	col := namedColor("")
	style := chart.Style{
		StrokeWidth: c.LineWidth,
		StrokeColor: col,
	}
	switch {
	case c.Markers:
		style.DotWidth = c.MarkerSize / 2
		style.DotColor = col
	case len(c.X) == 1:
		style.DotWidth = max(c.LineWidth, 3)
		style.DotColor = col
	}

	ch := chart.Chart{
		Title:      c.Title,
		Width:      r.width,
		Height:     r.height,
		Background: r.background(),
		XAxis:      xAxis(c.XLabel, c.XTicks, c.X),
		YAxis:      chart.YAxis{Name: c.YLabel, Range: flatRange(false, 0, c.Y)},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: c.SeriesName, XValues: c.X, YValues: c.Y, Style: style},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, err
	}
	return inlineSVG(buf.Bytes()), nil
}

// renderDualAxis draws the line on the primary axis and each bar as a thick
// vertical stroke from zero on the secondary axis.
func (r *SVGRenderer) renderDualAxis(c *view.DualAxisChart) ([]byte, error) {
	if len(c.X) == 0 {
		return nil, errNoData
	}
	if len(c.LineY) != len(c.X) || len(c.BarY) != len(c.X) {
		return nil, fmt.Errorf("series length mismatch: x=%d line=%d bars=%d", len(c.X), len(c.LineY), len(c.BarY))
	}
	lineColor := namedColor("")
	barColor := namedColor(c.BarColor)

	lineStyle := chart.Style{StrokeWidth: c.LineWidth, StrokeColor: lineColor}
	if len(c.X) == 1 {
		lineStyle.DotWidth = max(c.LineWidth, 3)
		lineStyle.DotColor = lineColor
	}
	line := chart.ContinuousSeries{
		Name:    c.LineName,
		XValues: c.X,
		YValues: c.LineY,
		Style:   lineStyle,
	}
	series := []chart.Series{line}

	barWidth := float64(r.width) / float64(len(c.X)+2) * 0.4
	barStyle := chart.Style{StrokeWidth: barWidth, StrokeColor: barColor.WithAlpha(200)}
	legendBar := chart.ContinuousSeries{Name: c.BarName, Style: barStyle}
	for i, x := range c.X {
		name := ""
		if i == 0 {
			name = c.BarName
		}
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			YAxis:   chart.YAxisSecondary,
			XValues: []float64{x, x},
			YValues: []float64{0, c.BarY[i]},
			Style:   barStyle,
		})
	}

	ch := chart.Chart{
		Title:          c.Title,
		Width:          r.width,
		Height:         r.height,
		Background:     r.background(),
		XAxis:          xAxis(c.XLabel, c.XTicks, c.X),
		YAxis:          chart.YAxis{Name: c.YLabel, Range: flatRange(false, 0, c.LineY)},
		YAxisSecondary: chart.YAxis{Name: c.Y2Label, Range: flatRange(true, 0, c.BarY)},
		Series:         series,
	}
	legend := chart.Chart{Series: []chart.Series{line, legendBar}}
	ch.Elements = []chart.Renderable{chart.Legend(&legend)}

	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, err
	}
	return inlineSVG(buf.Bytes()), nil
}

func (r *SVGRenderer) renderCategoryBars(c *view.CategoryBarChart) ([]byte, error) {
	if len(c.Bars) == 0 {
		return nil, errNoData
	}
	values := make([]chart.Value, len(c.Bars))
	changes := make([]float64, len(c.Bars))
	for i, b := range c.Bars {
		changes[i] = b.Value
		col := classDrawingColor(b.Class)
		values[i] = chart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: chart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1},
		}
	}

	lo, hi := span(true, changes)
	bc := chart.BarChart{
		Title:        c.Title,
		Width:        r.width,
		Height:       r.height,
		Background:   r.background(),
		BarWidth:     max(r.width/(len(values)*2), 8),
		YAxis:        chart.YAxis{Name: c.YLabel, Range: padded(lo, hi, 0)},
		UseBaseValue: true,
		BaseValue:    0,
		Bars:         values,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.SVG, &buf); err != nil {
		return nil, err
	}
	return inlineSVG(buf.Bytes()), nil
}
