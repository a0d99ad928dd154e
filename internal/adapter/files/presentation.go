package files

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
)

// LoadPresentation reads operator overrides for the static dashboard
// content and merges them onto the defaults. An empty path returns the
// defaults unchanged.
func LoadPresentation(path string) (domain.Presentation, error) {
	defaults := domain.DefaultPresentation()
	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Presentation{}, fmt.Errorf("read presentation file: %w", err)
	}
	var override domain.Presentation
	if err := yaml.UnmarshalStrict(data, &override); err != nil {
		return domain.Presentation{}, fmt.Errorf("parse presentation file %s: %w", path, err)
	}
	if override.SeasonalYear < 0 {
		return domain.Presentation{}, fmt.Errorf("parse presentation file %s: %w: seasonal_year %d",
			path, domain.ErrInvalidValue, override.SeasonalYear)
	}
	return defaults.Merge(override), nil
}
