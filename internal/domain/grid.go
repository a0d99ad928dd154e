package domain

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SpatialGrid holds the longitude, latitude and water frequency grids.
// Rows run along latitude, columns along longitude.
//
// SpatialGrid satisfies gonum/plot's plotter.GridXYZ so it can be drawn as a
// heatmap without copying.
type SpatialGrid struct {
	Longitude      *mat.Dense
	Latitude       *mat.Dense
	WaterFrequency *mat.Dense
}

// NewSpatialGrid assembles a grid, rejecting nil or mismatched shapes.
func NewSpatialGrid(lon, lat, freq *mat.Dense) (SpatialGrid, error) {
	if lon == nil || lat == nil || freq == nil {
		return SpatialGrid{}, fmt.Errorf("%w: grid is missing", ErrShapeMismatch)
	}
	lr, lc := lon.Dims()
	ar, ac := lat.Dims()
	fr, fc := freq.Dims()
	if lr != ar || lr != fr || lc != ac || lc != fc {
		return SpatialGrid{}, fmt.Errorf("%w: longitude %dx%d, latitude %dx%d, water frequency %dx%d",
			ErrShapeMismatch, lr, lc, ar, ac, fr, fc)
	}
	return SpatialGrid{Longitude: lon, Latitude: lat, WaterFrequency: freq}, nil
}

// Shape returns rows and columns; zero for an empty grid.
func (g SpatialGrid) Shape() (rows, cols int) {
	if g.WaterFrequency == nil {
		return 0, 0
	}
	return g.WaterFrequency.Dims()
}

// Dims returns the number of columns and rows (plotter.GridXYZ order).
func (g SpatialGrid) Dims() (c, r int) {
	r, c = g.Shape()
	return c, r
}

// Z returns the water frequency at column c, row r.
func (g SpatialGrid) Z(c, r int) float64 {
	return g.WaterFrequency.At(r, c)
}

// X returns the longitude of column c, taken from the first row.
func (g SpatialGrid) X(c int) float64 {
	return g.Longitude.At(0, c)
}

// Y returns the latitude of row r, taken from the first column.
func (g SpatialGrid) Y(r int) float64 {
	return g.Latitude.At(r, 0)
}
