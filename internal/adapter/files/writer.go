package files

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
)

// WriteBundle writes b to dir and imagePath using the same file contract
// the Loader reads. Existing files are overwritten.
func WriteBundle(dir, imagePath string, b *domain.Bundle) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	steps := []struct {
		file  string
		write func(string) error
	}{
		{TimeseriesFile, func(p string) error { return writeTimeseries(p, b.Timeseries) }},
		{SeasonalFile, func(p string) error { return writeSeasonal(p, b.Seasonal) }},
		{LakeComparisonFile, func(p string) error { return writeLakes(p, b.Lakes) }},
		{MetricsFile, func(p string) error { return writeJSON(p, b.Metrics) }},
		{InsightsFile, func(p string) error { return writeJSON(p, b.Insights) }},
		{LongitudeGridFile, func(p string) error { return writeGrid(p, b.Grid.Longitude) }},
		{LatitudeGridFile, func(p string) error { return writeGrid(p, b.Grid.Latitude) }},
		{FrequencyGridFile, func(p string) error { return writeGrid(p, b.Grid.WaterFrequency) }},
	}
	for _, s := range steps {
		if err := s.write(filepath.Join(dir, s.file)); err != nil {
			return fmt.Errorf("write %s: %w", s.file, err)
		}
	}

	if imagePath == "" {
		return nil
	}
	if err := os.WriteFile(imagePath, b.Image.Data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeTimeseries(path string, ts domain.WaterTimeseries) error {
	rows := make([][]string, len(ts))
	for i, r := range ts {
		rows[i] = []string{strconv.Itoa(r.Year), formatFloat(r.WaterExtentKm2), formatFloat(r.ChangePercent)}
	}
	return writeCSV(path, []string{"year", "water_extent_km2", "change_percent"}, rows)
}

func writeSeasonal(path string, sp domain.SeasonalPattern) error {
	rows := make([][]string, len(sp))
	for i, o := range sp {
		rows[i] = []string{strconv.Itoa(o.Year), strconv.Itoa(o.Month), formatFloat(o.WaterFrequency)}
	}
	return writeCSV(path, []string{"year", "month", "water_frequency"}, rows)
}

func writeLakes(path string, lakes domain.LakeComparison) error {
	rows := make([][]string, len(lakes))
	for i, l := range lakes {
		rows[i] = []string{l.Name, formatFloat(l.Area2020), formatFloat(l.Area2024), formatFloat(l.Change), l.Trend}
	}
	return writeCSV(path, []string{"name", "area_2020", "area_2024", "change", "trend"}, rows)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
