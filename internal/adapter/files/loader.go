package files

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
	"github.com/couchcryptid/lake-extent-dashboard/internal/observability"
)

// Fixed file names inside the data directory.
const (
	TimeseriesFile     = "water_extent_timeseries.csv"
	SeasonalFile       = "seasonal_patterns.csv"
	LakeComparisonFile = "lake_comparison.csv"
	MetricsFile        = "metrics.json"
	InsightsFile       = "insights.json"
	LongitudeGridFile  = "longitude_grid.npy"
	LatitudeGridFile   = "latitude_grid.npy"
	FrequencyGridFile  = "water_frequency_grid.npy"
)

// Options locates the data contract on disk.
type Options struct {
	DataDir   string
	ImagePath string
}

// Loader reads the data directory into a domain.Bundle exactly once per
// process. The first outcome, success or failure, is kept for the process
// lifetime; inputs never change within a session.
type Loader struct {
	opts    Options
	logger  *slog.Logger
	metrics *observability.Metrics

	once   sync.Once
	bundle *domain.Bundle
	err    error
}

// NewLoader creates a memoizing loader.
func NewLoader(opts Options, logger *slog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{opts: opts, logger: logger, metrics: metrics}
}

// Load returns the data bundle, reading the files on first use.
// Failures are always *domain.DataLoadError.
func (l *Loader) Load() (*domain.Bundle, error) {
	l.once.Do(func() {
		start := time.Now()
		l.bundle, l.err = l.read()
		l.metrics.DataLoadDuration.Observe(time.Since(start).Seconds())

		if l.err != nil {
			l.metrics.DataLoads.WithLabelValues("error").Inc()
			l.metrics.DataLoaded.Set(0)
			l.logger.Error("dashboard data load failed", "data_dir", l.opts.DataDir, "error", l.err)
			return
		}
		l.metrics.DataLoads.WithLabelValues("success").Inc()
		l.metrics.DataLoaded.Set(1)
		rows, cols := l.bundle.Grid.Shape()
		l.logger.Info("dashboard data loaded",
			"data_dir", l.opts.DataDir,
			"years", len(l.bundle.Timeseries),
			"seasonal_rows", len(l.bundle.Seasonal),
			"lakes", len(l.bundle.Lakes),
			"grid_rows", rows,
			"grid_cols", cols,
			"duration", time.Since(start),
		)
	})
	return l.bundle, l.err
}

// CheckReadiness returns nil once the bundle is loaded, or the load error.
func (l *Loader) CheckReadiness(_ context.Context) error {
	_, err := l.Load()
	return err
}

func (l *Loader) read() (*domain.Bundle, error) {
	dir := l.opts.DataDir
	b := &domain.Bundle{}
	var err error

	if b.Timeseries, err = readTimeseries(filepath.Join(dir, TimeseriesFile)); err != nil {
		return nil, loadError(TimeseriesFile, err)
	}
	if b.Seasonal, err = readSeasonal(filepath.Join(dir, SeasonalFile)); err != nil {
		return nil, loadError(SeasonalFile, err)
	}
	if b.Lakes, err = readLakes(filepath.Join(dir, LakeComparisonFile)); err != nil {
		return nil, loadError(LakeComparisonFile, err)
	}
	if b.Metrics, err = readMetrics(filepath.Join(dir, MetricsFile)); err != nil {
		return nil, loadError(MetricsFile, err)
	}
	if b.Insights, err = readInsights(filepath.Join(dir, InsightsFile)); err != nil {
		return nil, loadError(InsightsFile, err)
	}
	if b.Grid, err = readSpatialGrid(dir); err != nil {
		return nil, err
	}
	if b.Image, err = readImage(l.opts.ImagePath); err != nil {
		return nil, loadError(l.opts.ImagePath, err)
	}

	b.LoadedAt = domain.Now()
	return b, nil
}

func readSpatialGrid(dir string) (domain.SpatialGrid, error) {
	lon, err := readGrid(filepath.Join(dir, LongitudeGridFile))
	if err != nil {
		return domain.SpatialGrid{}, loadError(LongitudeGridFile, err)
	}
	lat, err := readGrid(filepath.Join(dir, LatitudeGridFile))
	if err != nil {
		return domain.SpatialGrid{}, loadError(LatitudeGridFile, err)
	}
	freq, err := readGrid(filepath.Join(dir, FrequencyGridFile))
	if err != nil {
		return domain.SpatialGrid{}, loadError(FrequencyGridFile, err)
	}
	grid, err := domain.NewSpatialGrid(lon, lat, freq)
	if err != nil {
		return domain.SpatialGrid{}, loadError("", err)
	}
	return grid, nil
}

func readImage(path string) (domain.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Image{}, err
	}
	if len(data) == 0 {
		return domain.Image{}, domain.ErrEmptyFile
	}
	return domain.Image{
		Name:        filepath.Base(path),
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}

func loadError(file string, err error) error {
	var dle *domain.DataLoadError
	if errors.As(err, &dle) {
		return err
	}
	return &domain.DataLoadError{File: file, Err: err}
}
