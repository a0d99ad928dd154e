// Package domain models the Lake Tana water-extent data set rendered by the
// dashboard.
//
// # Data Source
//
// All inputs are precomputed by an external Digital Earth Africa Water
// Observations from Space (WOfS) pipeline and dropped into a single data
// directory. The dashboard never computes water extent or frequency itself;
// it reads the files once and presents them.
//
// # File Contract
//
//	water_extent_timeseries.csv  year, water_extent_km2, change_percent
//	seasonal_patterns.csv        year, month, water_frequency
//	lake_comparison.csv          name, area_2020, area_2024, change, trend
//	metrics.json                 six required scalar indicators
//	insights.json                four required lists of strings
//	longitude_grid.npy           2-D float grid
//	latitude_grid.npy            2-D float grid, same shape
//	water_frequency_grid.npy     2-D float grid, same shape
//	compare.png                  static comparison image (working directory)
//
// Column order in the CSV files is not significant; extra columns are
// ignored. Metric values keep their source text ([encoding/json.Number]) so
// the dashboard shows them with the precision the pipeline wrote.
//
// # Invariants
//
//	WaterTimeseries: years strictly increasing, one row per year.
//	SeasonalPattern: month in 1..12.
//	LakeComparison:  lake names unique and non-empty.
//	SpatialGrid:     all three grids share one shape.
//
// A violation of any invariant, a missing file, or a parse failure is a
// [DataLoadError]; there is no partial bundle.
//
// # Selections
//
// The page is a function of the loaded [Bundle] and a [Selection] of two
// enums: the view mode (overview, time series, lake comparison, management
// insights) and the region focus. Region focus only affects the lake
// comparison view, which is the only view carrying per-lake data.
package domain
