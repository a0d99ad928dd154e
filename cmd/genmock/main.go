// Command genmock writes a complete sample data directory for the dashboard,
// plus a rendered water frequency heatmap used as the comparison image. The
// output is deterministic so it can back demos and manual testing.
//
// Usage:
//
//	go run ./cmd/genmock -out dashboard_data -image compare.png
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/couchcryptid/lake-extent-dashboard/internal/adapter/charts"
	"github.com/couchcryptid/lake-extent-dashboard/internal/adapter/files"
	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
	"github.com/couchcryptid/lake-extent-dashboard/internal/mockdata"
	"github.com/couchcryptid/lake-extent-dashboard/internal/view"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "dashboard_data", "output data directory")
	imagePath := flag.String("image", "compare.png", "output path for the comparison image")
	gridSize := flag.Int("grid", 50, "rows and columns of the spatial grids")
	width := flag.Int("width", 800, "comparison image width in pixels")
	height := flag.Int("height", 600, "comparison image height in pixels")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if *gridSize < 2 {
		return fmt.Errorf("-grid must be at least 2, got %d", *gridSize)
	}

	b := mockdata.Bundle(*gridSize)

	if err := files.WriteBundle(*out, "", b); err != nil {
		return fmt.Errorf("writing data directory: %w", err)
	}
	log.Printf("wrote data directory: %s", *out)

	if *imagePath != "" {
		if dir := filepath.Dir(*imagePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating image directory: %w", err)
			}
		}
		if err := charts.SaveHeatmapPNG(view.WaterFrequencyHeatmap(b.Grid), *imagePath, *width, *height); err != nil {
			return fmt.Errorf("writing comparison image: %w", err)
		}
		log.Printf("wrote comparison image: %s", *imagePath)
	}

	printStats(b)
	return nil
}

func printStats(b *domain.Bundle) {
	rows, cols := b.Grid.Shape()
	fmt.Println("\n=== Sample data summary ===")
	fmt.Printf("Years: %v\n", b.Timeseries.Years())
	if latest, ok := b.Timeseries.Latest(); ok {
		fmt.Printf("Latest extent: %d %s km²\n", latest.Year, domain.FormatThousands(latest.WaterExtentKm2))
	}
	fmt.Printf("Seasonal observations: %d\n", len(b.Seasonal))
	fmt.Printf("Lakes: %d (trends: %v)\n", len(b.Lakes), b.Lakes.Trends())
	fmt.Printf("Current water extent: %s\n", b.Metrics.CurrentWaterExtent)
	fmt.Printf("Insights: %d findings, %d recommendations, %d causes, %d advantages\n",
		len(b.Insights.KeyFindings), len(b.Insights.ManagementRecommendations),
		len(b.Insights.PrimaryCauses), len(b.Insights.DEAfricaAdvantages))
	fmt.Printf("Grid: %dx%d\n", rows, cols)
}
