package files

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// table is a header-indexed CSV body.
type table struct {
	index map[string]int
	rows  [][]string
}

// readTable reads a CSV file and checks the required columns are present.
// Extra columns are ignored. A header without data rows is ErrEmptyFile.
func readTable(path string, required ...string) (*table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	t := &table{index: make(map[string]int, len(header))}
	for i, name := range header {
		t.index[strings.TrimSpace(name)] = i
	}
	for _, col := range required {
		if _, ok := t.index[col]; !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrMissingColumn, col)
		}
	}

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(t.rows)+1, err)
		}
		t.rows = append(t.rows, rec)
	}
	if len(t.rows) == 0 {
		return nil, domain.ErrEmptyFile
	}
	return t, nil
}

func (t *table) str(row int, col string) string {
	return strings.TrimSpace(t.rows[row][t.index[col]])
}

func (t *table) int(row int, col string) (int, error) {
	v, err := strconv.Atoi(t.str(row, col))
	if err != nil {
		return 0, fmt.Errorf("%w: row %d column %q: %w", domain.ErrInvalidValue, row+1, col, err)
	}
	return v, nil
}

func (t *table) float(row int, col string) (float64, error) {
	v, err := strconv.ParseFloat(t.str(row, col), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d column %q: %w", domain.ErrInvalidValue, row+1, col, err)
	}
	return v, nil
}

func readTimeseries(path string) (domain.WaterTimeseries, error) {
	t, err := readTable(path, "year", "water_extent_km2", "change_percent")
	if err != nil {
		return nil, err
	}

	ts := make(domain.WaterTimeseries, 0, len(t.rows))
	for i := range t.rows {
		var row domain.YearExtent
		if row.Year, err = t.int(i, "year"); err != nil {
			return nil, err
		}
		if row.WaterExtentKm2, err = t.float(i, "water_extent_km2"); err != nil {
			return nil, err
		}
		if row.ChangePercent, err = t.float(i, "change_percent"); err != nil {
			return nil, err
		}
		if n := len(ts); n > 0 && row.Year <= ts[n-1].Year {
			return nil, fmt.Errorf("%w: %d follows %d", domain.ErrYearsNotIncreasing, row.Year, ts[n-1].Year)
		}
		ts = append(ts, row)
	}
	return ts, nil
}

func readSeasonal(path string) (domain.SeasonalPattern, error) {
	t, err := readTable(path, "year", "month", "water_frequency")
	if err != nil {
		return nil, err
	}

	sp := make(domain.SeasonalPattern, 0, len(t.rows))
	for i := range t.rows {
		var obs domain.SeasonalObservation
		if obs.Year, err = t.int(i, "year"); err != nil {
			return nil, err
		}
		if obs.Month, err = t.int(i, "month"); err != nil {
			return nil, err
		}
		if obs.WaterFrequency, err = t.float(i, "water_frequency"); err != nil {
			return nil, err
		}
		if err := validateStruct(obs); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		sp = append(sp, obs)
	}
	return sp, nil
}

func readLakes(path string) (domain.LakeComparison, error) {
	t, err := readTable(path, "name", "area_2020", "area_2024", "change", "trend")
	if err != nil {
		return nil, err
	}

	lakes := make(domain.LakeComparison, 0, len(t.rows))
	seen := make(map[string]bool, len(t.rows))
	for i := range t.rows {
		rec := domain.LakeRecord{
			Name:  t.str(i, "name"),
			Trend: t.str(i, "trend"),
		}
		if rec.Area2020, err = t.float(i, "area_2020"); err != nil {
			return nil, err
		}
		if rec.Area2024, err = t.float(i, "area_2024"); err != nil {
			return nil, err
		}
		if rec.Change, err = t.float(i, "change"); err != nil {
			return nil, err
		}
		if err := validateStruct(rec); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if seen[rec.Name] {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateLake, rec.Name)
		}
		seen[rec.Name] = true
		lakes = append(lakes, rec)
	}
	return lakes, nil
}
