// Command validate checks a dashboard data directory against the file
// contract before it is deployed. Every file is read, failures are grouped
// into phases, and cross-file consistency is checked for the files that
// parsed.
//
// Usage:
//
//	go run ./cmd/validate -data-dir dashboard_data -image compare.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/lake-extent-dashboard/internal/adapter/files"
	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

// check records the inspection error of each named file.
func (p *phase) check(in *files.Inspection, names ...string) {
	for _, name := range names {
		if err := in.Errors[name]; err != nil {
			p.errorf("%v", err)
		}
	}
}

var dataFiles = []string{
	files.TimeseriesFile,
	files.SeasonalFile,
	files.LakeComparisonFile,
	files.MetricsFile,
	files.InsightsFile,
	files.LongitudeGridFile,
	files.LatitudeGridFile,
	files.FrequencyGridFile,
}

func main() {
	dataDir := flag.String("data-dir", "", "dashboard data directory")
	imagePath := flag.String("image", "compare.png", "path to the comparison image")
	presentationPath := flag.String("presentation", "", "optional presentation YAML file")
	tolerance := flag.Float64("tolerance", 0.05, "allowed relative difference between the latest extent and current_water_extent")
	flag.Parse()

	if *dataDir == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*dataDir, *imagePath, *presentationPath, *tolerance); code != 0 {
		os.Exit(code)
	}
}

func run(dataDir, imagePath, presentationPath string, tolerance float64) int {
	fmt.Println("=== Lake Tana Dashboard Data Validation ===")
	fmt.Println()

	presentation, err := files.LoadPresentation(presentationPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load presentation: %v\n", err)
		return 1
	}

	in := files.Inspect(files.Options{DataDir: dataDir, ImagePath: imagePath})

	phases := []*phase{
		validatePresence(dataDir, imagePath),
		validateTabular(in),
		validateDocuments(in),
		validateGrids(in, imagePath),
		validateConsistency(in, presentation, tolerance),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	rows, cols := in.Bundle.Grid.Shape()
	fmt.Println()
	fmt.Printf("Rows: %d timeseries, %d seasonal, %d lakes; grid %dx%d\n",
		len(in.Bundle.Timeseries), len(in.Bundle.Seasonal), len(in.Bundle.Lakes), rows, cols)

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Phase 1: Files Present ──

func validatePresence(dataDir, imagePath string) *phase {
	p := &phase{name: "Phase 1: Files Present"}

	info, err := os.Stat(dataDir)
	if err != nil {
		p.errorf("data directory: %v", err)
		return p
	}
	if !info.IsDir() {
		p.errorf("data directory %s is not a directory", dataDir)
		return p
	}

	for _, name := range dataFiles {
		statFile(p, filepath.Join(dataDir, name), name)
	}
	statFile(p, imagePath, imagePath)
	return p
}

func statFile(p *phase, path, name string) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		p.errorf("%s: missing", name)
	case err != nil:
		p.errorf("%s: %v", name, err)
	case info.IsDir():
		p.errorf("%s: is a directory", name)
	case info.Size() == 0:
		p.errorf("%s: empty", name)
	}
}

// ── Phase 2: Tabular Files ──

func validateTabular(in *files.Inspection) *phase {
	p := &phase{name: "Phase 2: Tabular Files (CSV)"}
	p.check(in, files.TimeseriesFile, files.SeasonalFile, files.LakeComparisonFile)
	return p
}

// ── Phase 3: Documents ──

func validateDocuments(in *files.Inspection) *phase {
	p := &phase{name: "Phase 3: Documents (JSON)"}
	p.check(in, files.MetricsFile, files.InsightsFile)
	return p
}

// ── Phase 4: Grids and Image ──

func validateGrids(in *files.Inspection, imagePath string) *phase {
	p := &phase{name: "Phase 4: Spatial Grids and Image"}
	p.check(in, files.LongitudeGridFile, files.LatitudeGridFile, files.FrequencyGridFile, files.GridFile, imagePath)

	if in.OK(imagePath) && in.Bundle.Image.ContentType != "" &&
		!strings.HasPrefix(in.Bundle.Image.ContentType, "image/") {
		p.errorf("%s: content type %s is not an image", imagePath, in.Bundle.Image.ContentType)
	}
	return p
}

// ── Phase 5: Consistency ──

func validateConsistency(in *files.Inspection, presentation domain.Presentation, tolerance float64) *phase {
	p := &phase{name: "Phase 5: Cross-File Consistency"}

	if in.OK(files.SeasonalFile) {
		year := presentation.SeasonalYear
		if len(in.Bundle.Seasonal.ForYear(year)) == 0 {
			p.errorf("%s: no observations for seasonal year %d", files.SeasonalFile, year)
		}
	}

	if in.OK(files.LakeComparisonFile) {
		lake, _ := domain.RegionLakeTana.Lake()
		if _, found := in.Bundle.Lakes.Find(lake); !found {
			p.errorf("%s: no row for %q", files.LakeComparisonFile, lake)
		}
	}

	if in.OK(files.TimeseriesFile) && in.OK(files.MetricsFile) {
		latest, _ := in.Bundle.Timeseries.Latest()
		current := domain.NumberValue(in.Bundle.Metrics.CurrentWaterExtent)
		if latest.WaterExtentKm2 != 0 {
			diff := math.Abs(current-latest.WaterExtentKm2) / latest.WaterExtentKm2
			if diff > tolerance {
				p.errorf("current_water_extent %s differs from %d extent %s by %.1f%%",
					in.Bundle.Metrics.CurrentWaterExtent, latest.Year,
					domain.FormatThousands(latest.WaterExtentKm2), diff*100)
			}
		}
	}
	return p
}
