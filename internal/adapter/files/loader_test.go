package files_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sbinet/npyio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/couchcryptid/lake-extent-dashboard/internal/adapter/files"
	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
	"github.com/couchcryptid/lake-extent-dashboard/internal/mockdata"
	"github.com/couchcryptid/lake-extent-dashboard/internal/observability"
)

func writeFixture(t *testing.T) files.Options {
	t.Helper()
	dir := t.TempDir()
	opts := files.Options{
		DataDir:   filepath.Join(dir, "dashboard_data"),
		ImagePath: filepath.Join(dir, "compare.png"),
	}
	require.NoError(t, files.WriteBundle(opts.DataDir, opts.ImagePath, mockdata.Bundle(8)))
	return opts
}

func newLoader(opts files.Options) (*files.Loader, *observability.Metrics) {
	m := observability.NewMetricsForTesting()
	return files.NewLoader(opts, slog.Default(), m), m
}

func overwrite(t *testing.T, opts files.Options, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(opts.DataDir, name), []byte(content), 0o644))
}

func requireLoadError(t *testing.T, opts files.Options, file string, cause error) {
	t.Helper()
	l, _ := newLoader(opts)
	b, err := l.Load()
	require.Error(t, err)
	assert.Nil(t, b)

	var dle *domain.DataLoadError
	require.ErrorAs(t, err, &dle)
	assert.Equal(t, file, dle.File)
	if cause != nil {
		assert.ErrorIs(t, err, cause)
	}
}

func TestLoad_ValidDirectory(t *testing.T) {
	opts := writeFixture(t)
	l, m := newLoader(opts)

	b, err := l.Load()
	require.NoError(t, err)

	want := mockdata.Bundle(8)
	assert.Equal(t, want.Timeseries, b.Timeseries)
	assert.Equal(t, want.Seasonal, b.Seasonal)
	assert.Equal(t, want.Lakes, b.Lakes)
	assert.Equal(t, want.Metrics, b.Metrics)
	assert.Equal(t, want.Insights, b.Insights)
	assert.True(t, mat.Equal(want.Grid.WaterFrequency, b.Grid.WaterFrequency))

	rows, cols := b.Grid.Shape()
	assert.Equal(t, 8, rows)
	assert.Equal(t, 8, cols)

	assert.Equal(t, "compare.png", b.Image.Name)
	assert.Equal(t, "image/png", b.Image.ContentType)
	assert.Equal(t, want.Image.Data, b.Image.Data)

	assert.InDelta(t, 1.0, testutil.ToFloat64(m.DataLoads.WithLabelValues("success")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.DataLoaded), 1e-9)
}

func TestLoad_MissingFiles(t *testing.T) {
	for _, name := range []string{
		files.TimeseriesFile,
		files.SeasonalFile,
		files.LakeComparisonFile,
		files.MetricsFile,
		files.InsightsFile,
		files.LongitudeGridFile,
		files.LatitudeGridFile,
		files.FrequencyGridFile,
	} {
		t.Run(name, func(t *testing.T) {
			opts := writeFixture(t)
			require.NoError(t, os.Remove(filepath.Join(opts.DataDir, name)))
			requireLoadError(t, opts, name, os.ErrNotExist)
		})
	}
}

func TestLoad_MissingImage(t *testing.T) {
	opts := writeFixture(t)
	require.NoError(t, os.Remove(opts.ImagePath))
	requireLoadError(t, opts, opts.ImagePath, os.ErrNotExist)
}

func TestLoad_MemoizesFailure(t *testing.T) {
	opts := writeFixture(t)
	require.NoError(t, os.Remove(filepath.Join(opts.DataDir, files.MetricsFile)))
	l, m := newLoader(opts)

	_, first := l.Load()
	require.Error(t, first)

	require.NoError(t, files.WriteBundle(opts.DataDir, opts.ImagePath, mockdata.Bundle(8)))
	_, second := l.Load()
	assert.Same(t, first, second)
	assert.Error(t, l.CheckReadiness(t.Context()))
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.DataLoads.WithLabelValues("error")), 1e-9)
	assert.InDelta(t, 0.0, testutil.ToFloat64(m.DataLoaded), 1e-9)
}

func TestLoad_MemoizesSuccess(t *testing.T) {
	opts := writeFixture(t)
	l, _ := newLoader(opts)

	first, err := l.Load()
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(opts.DataDir))
	second, err := l.Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.NoError(t, l.CheckReadiness(t.Context()))
}

func TestLoad_CSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		cause   error
	}{
		{
			name:    "missing column",
			file:    files.TimeseriesFile,
			content: "year,water_extent_km2\n2020,3000\n",
			cause:   domain.ErrMissingColumn,
		},
		{
			name:    "header only",
			file:    files.LakeComparisonFile,
			content: "name,area_2020,area_2024,change,trend\n",
			cause:   domain.ErrEmptyFile,
		},
		{
			name:    "empty file",
			file:    files.SeasonalFile,
			content: "",
			cause:   domain.ErrEmptyFile,
		},
		{
			name:    "non-numeric extent",
			file:    files.TimeseriesFile,
			content: "year,water_extent_km2,change_percent\n2020,lots,0\n",
			cause:   domain.ErrInvalidValue,
		},
		{
			name:    "years not increasing",
			file:    files.TimeseriesFile,
			content: "year,water_extent_km2,change_percent\n2021,3000,0\n2020,3010,0.3\n",
			cause:   domain.ErrYearsNotIncreasing,
		},
		{
			name:    "duplicate year",
			file:    files.TimeseriesFile,
			content: "year,water_extent_km2,change_percent\n2020,3000,0\n2020,3010,0.3\n",
			cause:   domain.ErrYearsNotIncreasing,
		},
		{
			name:    "month out of range",
			file:    files.SeasonalFile,
			content: "year,month,water_frequency\n2024,13,0.8\n",
			cause:   domain.ErrInvalidValue,
		},
		{
			name:    "duplicate lake",
			file:    files.LakeComparisonFile,
			content: "name,area_2020,area_2024,change,trend\nLake Tana,3000,3068,2.3,stable\nLake Tana,1,1,0,stable\n",
			cause:   domain.ErrDuplicateLake,
		},
		{
			name:    "blank lake name",
			file:    files.LakeComparisonFile,
			content: "name,area_2020,area_2024,change,trend\n ,3000,3068,2.3,stable\n",
			cause:   domain.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := writeFixture(t)
			overwrite(t, opts, tt.file, tt.content)
			requireLoadError(t, opts, tt.file, tt.cause)
		})
	}
}

func TestLoad_CSVToleratesBOMAndExtraColumns(t *testing.T) {
	opts := writeFixture(t)
	overwrite(t, opts, files.LakeComparisonFile,
		"\ufefftrend,name,notes,area_2020,area_2024,change\ndeclining,Lake Abaya,survey,1160,1140,-1.7\n")

	l, _ := newLoader(opts)
	b, err := l.Load()
	require.NoError(t, err)
	require.Len(t, b.Lakes, 1)
	assert.Equal(t, domain.LakeRecord{
		Name: "Lake Abaya", Area2020: 1160, Area2024: 1140, Change: -1.7, Trend: "declining",
	}, b.Lakes[0])
}

func TestLoad_DocumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		cause   error
	}{
		{
			name: "missing metric key",
			file: files.MetricsFile,
			content: `{"current_water_extent": 3068, "peak_water_extent": 3156,
				"percent_decline_since_1960": -2.8, "annual_change_rate": 0.4,
				"population_impacted": 15000000}`,
			cause: domain.ErrMissingField,
		},
		{
			name: "null metric",
			file: files.MetricsFile,
			content: `{"current_water_extent": null, "peak_water_extent": 3156,
				"percent_decline_since_1960": -2.8, "annual_change_rate": 0.4,
				"population_impacted": 15000000, "economic_impact_million_usd": 850}`,
			cause: domain.ErrMissingField,
		},
		{
			name:    "missing insights list",
			file:    files.InsightsFile,
			content: `{"key_findings": [], "management_recommendations": [], "primary_causes": []}`,
			cause:   domain.ErrMissingField,
		},
		{
			name:    "empty document",
			file:    files.InsightsFile,
			content: "  \n",
			cause:   domain.ErrEmptyFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := writeFixture(t)
			overwrite(t, opts, tt.file, tt.content)
			requireLoadError(t, opts, tt.file, tt.cause)
		})
	}
}

func TestLoad_MetricsKeepSourceText(t *testing.T) {
	opts := writeFixture(t)
	overwrite(t, opts, files.MetricsFile, `{"current_water_extent": 3068.50, "peak_water_extent": 3156,
		"percent_decline_since_1960": -2.80, "annual_change_rate": 0.4,
		"population_impacted": 15000000, "economic_impact_million_usd": 850}`)

	l, _ := newLoader(opts)
	b, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "3068.50", b.Metrics.CurrentWaterExtent.String())
	assert.Equal(t, "-2.80", b.Metrics.PercentDeclineSince1960.String())
}

func TestLoad_EmptyInsightListsAllowed(t *testing.T) {
	opts := writeFixture(t)
	overwrite(t, opts, files.InsightsFile,
		`{"key_findings": [], "management_recommendations": [], "primary_causes": [], "de_africa_advantages": []}`)

	l, _ := newLoader(opts)
	b, err := l.Load()
	require.NoError(t, err)
	assert.Empty(t, b.Insights.KeyFindings)
}

func writeNpy(t *testing.T, path string, m *mat.Dense) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, npyio.Write(f, m))
	require.NoError(t, f.Close())
}

func TestLoad_GridShapeMismatch(t *testing.T) {
	opts := writeFixture(t)
	writeNpy(t, filepath.Join(opts.DataDir, files.FrequencyGridFile), mat.NewDense(4, 8, nil))

	l, _ := newLoader(opts)
	_, err := l.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrShapeMismatch)
	assert.True(t, domain.IsDataLoadError(err))
}

func TestLoad_GridNotNumpy(t *testing.T) {
	opts := writeFixture(t)
	overwrite(t, opts, files.LatitudeGridFile, "not a numpy file")
	requireLoadError(t, opts, files.LatitudeGridFile, nil)
}

func TestLoadPresentation(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		p, err := files.LoadPresentation("")
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultPresentation(), p)
	})

	t.Run("overrides merge onto defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "presentation.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
seasonal_year: 2023
advisories:
  - tone: critical
    text: Shoreline retreat detected near Bahir Dar
`), 0o644))

		p, err := files.LoadPresentation(path)
		require.NoError(t, err)
		assert.Equal(t, 2023, p.SeasonalYear)
		assert.Equal(t, []domain.Advisory{{Tone: domain.ToneCritical, Text: "Shoreline retreat detected near Bahir Dar"}}, p.Advisories)
		assert.Equal(t, domain.DefaultPresentation().TrendSummary, p.TrendSummary)
		assert.Equal(t, "Digital Earth Africa WOfS", p.DataSource)
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "presentation.yaml")
		require.NoError(t, os.WriteFile(path, []byte("colour: blue\n"), 0o644))
		_, err := files.LoadPresentation(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := files.LoadPresentation(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestInspect_ValidDirectory(t *testing.T) {
	opts := writeFixture(t)
	in := files.Inspect(opts)

	assert.Empty(t, in.Errors)
	assert.Equal(t, mockdata.Lakes(), in.Bundle.Lakes)
	rows, cols := in.Bundle.Grid.Shape()
	assert.Equal(t, 8, rows)
	assert.Equal(t, 8, cols)
}

func TestInspect_CollectsEveryFailure(t *testing.T) {
	opts := writeFixture(t)
	require.NoError(t, os.Remove(filepath.Join(opts.DataDir, files.SeasonalFile)))
	overwrite(t, opts, files.MetricsFile, "")
	require.NoError(t, os.Remove(filepath.Join(opts.DataDir, files.LatitudeGridFile)))

	in := files.Inspect(opts)

	assert.Len(t, in.Errors, 3)
	assert.ErrorIs(t, in.Errors[files.SeasonalFile], os.ErrNotExist)
	assert.ErrorIs(t, in.Errors[files.MetricsFile], domain.ErrEmptyFile)
	assert.ErrorIs(t, in.Errors[files.LatitudeGridFile], os.ErrNotExist)
	assert.False(t, in.OK(files.MetricsFile))
	assert.True(t, in.OK(files.TimeseriesFile))
	assert.True(t, in.OK(files.GridFile), "grid check is skipped when a grid file fails")
	assert.Equal(t, mockdata.Timeseries(), in.Bundle.Timeseries)
}

func TestInspect_GridShapeMismatch(t *testing.T) {
	opts := writeFixture(t)
	writeNpy(t, filepath.Join(opts.DataDir, files.FrequencyGridFile), mat.NewDense(4, 8, nil))

	in := files.Inspect(opts)
	assert.ErrorIs(t, in.Errors[files.GridFile], domain.ErrShapeMismatch)
}
