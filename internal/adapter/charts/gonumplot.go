package charts

import (
	"bytes"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/couchcryptid/lake-extent-dashboard/internal/view"
)

// pixels converts a CSS pixel size to plot units at 96 dpi.
func pixels(px int) vg.Length {
	return vg.Length(px) * vg.Inch / 96
}

func (r *SVGRenderer) writeSVG(p *plot.Plot) ([]byte, error) {
	wt, err := p.WriterTo(pixels(r.width), pixels(r.height), "svg")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, err
	}
	return inlineSVG(buf.Bytes()), nil
}

func (r *SVGRenderer) renderGroupedBars(c *view.GroupedBarChart) ([]byte, error) {
	if len(c.Categories) == 0 || len(c.Groups) == 0 {
		return nil, errNoData
	}
	p, err := groupedBarPlot(c, pixels(r.width)/vg.Length(len(c.Categories)*(len(c.Groups)+1)))
	if err != nil {
		return nil, err
	}
	return r.writeSVG(p)
}

func groupedBarPlot(c *view.GroupedBarChart, barWidth vg.Length) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.Y.Label.Text = c.YLabel
	p.Legend.Top = true

	for i, g := range c.Groups {
		if len(g.Values) != len(c.Categories) {
			return nil, fmt.Errorf("group %q has %d values for %d categories", g.Name, len(g.Values), len(c.Categories))
		}
		bars, err := plotter.NewBarChart(plotter.Values(g.Values), barWidth)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
		bars.Color = toRGBA(classDrawingColor(i))
		bars.LineStyle.Width = vg.Length(0)
		bars.Offset = barWidth * (vg.Length(i) - vg.Length(len(c.Groups)-1)/2)
		p.Add(bars)
		p.Legend.Add(g.Name, bars)
	}
	p.NominalX(c.Categories...)
	return p, nil
}

func (r *SVGRenderer) renderHeatmap(c *view.HeatmapChart) ([]byte, error) {
	p, err := heatmapPlot(c)
	if err != nil {
		return nil, err
	}
	return r.writeSVG(p)
}

func heatmapPlot(c *view.HeatmapChart) (*plot.Plot, error) {
	cols, rows := c.Grid.Dims()
	if cols < 2 || rows < 2 {
		return nil, fmt.Errorf("%w: heatmap needs at least 2x2 cells, got %dx%d", errNoData, rows, cols)
	}

	h := plotter.NewHeatMap(c.Grid, blues{n: 64})
	h.Min = min(0, mat.Min(c.Grid.WaterFrequency))
	h.Max = max(1, mat.Max(c.Grid.WaterFrequency))

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Add(h)
	return p, nil
}

// SaveHeatmapPNG writes the heatmap as a PNG image of the given pixel size.
func SaveHeatmapPNG(c *view.HeatmapChart, path string, width, height int) error {
	p, err := heatmapPlot(c)
	if err != nil {
		return err
	}
	if err := p.Save(pixels(width), pixels(height), path); err != nil {
		return fmt.Errorf("save heatmap: %w", err)
	}
	return nil
}
