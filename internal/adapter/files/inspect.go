package files

import (
	"path/filepath"

	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
)

// GridFile names the combined spatial grid check in an Inspection.
const GridFile = "spatial grid"

// Inspection is the outcome of reading every file of a data directory
// without stopping at the first failure. Bundle fields are set for the files
// that parsed; Errors is keyed by file name.
type Inspection struct {
	Bundle domain.Bundle
	Errors map[string]error
}

// OK reports whether the named file parsed.
func (in *Inspection) OK(file string) bool {
	return in.Errors[file] == nil
}

func (in *Inspection) record(file string, err error) {
	if err != nil {
		in.Errors[file] = loadError(file, err)
	}
}

// Inspect reads the data directory and image like Loader, collecting every
// failure. It is intended for offline validation tools.
func Inspect(opts Options) *Inspection {
	dir := opts.DataDir
	in := &Inspection{Errors: make(map[string]error)}
	var err error

	in.Bundle.Timeseries, err = readTimeseries(filepath.Join(dir, TimeseriesFile))
	in.record(TimeseriesFile, err)
	in.Bundle.Seasonal, err = readSeasonal(filepath.Join(dir, SeasonalFile))
	in.record(SeasonalFile, err)
	in.Bundle.Lakes, err = readLakes(filepath.Join(dir, LakeComparisonFile))
	in.record(LakeComparisonFile, err)
	in.Bundle.Metrics, err = readMetrics(filepath.Join(dir, MetricsFile))
	in.record(MetricsFile, err)
	in.Bundle.Insights, err = readInsights(filepath.Join(dir, InsightsFile))
	in.record(InsightsFile, err)

	lon, lonErr := readGrid(filepath.Join(dir, LongitudeGridFile))
	in.record(LongitudeGridFile, lonErr)
	lat, latErr := readGrid(filepath.Join(dir, LatitudeGridFile))
	in.record(LatitudeGridFile, latErr)
	freq, freqErr := readGrid(filepath.Join(dir, FrequencyGridFile))
	in.record(FrequencyGridFile, freqErr)
	if lonErr == nil && latErr == nil && freqErr == nil {
		in.Bundle.Grid, err = domain.NewSpatialGrid(lon, lat, freq)
		in.record(GridFile, err)
	}

	in.Bundle.Image, err = readImage(opts.ImagePath)
	in.record(opts.ImagePath, err)

	return in
}
