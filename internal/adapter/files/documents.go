package files

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct maps validator failures onto the domain sentinels.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := verrs[0]
	if fe.Tag() == "required" {
		return fmt.Errorf("%w: %q", domain.ErrMissingField, fe.Field())
	}
	return fmt.Errorf("%w: %q fails %q with %v", domain.ErrInvalidValue, fe.Field(), fe.Tag(), fe.Value())
}

// metricsDocument distinguishes absent keys from zero values.
type metricsDocument struct {
	CurrentWaterExtent       *json.Number `json:"current_water_extent" validate:"required"`
	PeakWaterExtent          *json.Number `json:"peak_water_extent" validate:"required"`
	PercentDeclineSince1960  *json.Number `json:"percent_decline_since_1960" validate:"required"`
	AnnualChangeRate         *json.Number `json:"annual_change_rate" validate:"required"`
	PopulationImpacted       *json.Number `json:"population_impacted" validate:"required"`
	EconomicImpactMillionUSD *json.Number `json:"economic_impact_million_usd" validate:"required"`
}

type insightsDocument struct {
	KeyFindings               []string `json:"key_findings" validate:"required"`
	ManagementRecommendations []string `json:"management_recommendations" validate:"required"`
	PrimaryCauses             []string `json:"primary_causes" validate:"required"`
	DEAfricaAdvantages        []string `json:"de_africa_advantages" validate:"required"`
}

func decodeDocument(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.ErrEmptyFile
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return validateStruct(v)
}

func readMetrics(path string) (domain.Metrics, error) {
	var doc metricsDocument
	if err := decodeDocument(path, &doc); err != nil {
		return domain.Metrics{}, err
	}
	m := domain.Metrics{
		CurrentWaterExtent:       *doc.CurrentWaterExtent,
		PeakWaterExtent:          *doc.PeakWaterExtent,
		PercentDeclineSince1960:  *doc.PercentDeclineSince1960,
		AnnualChangeRate:         *doc.AnnualChangeRate,
		PopulationImpacted:       *doc.PopulationImpacted,
		EconomicImpactMillionUSD: *doc.EconomicImpactMillionUSD,
	}
	for key, n := range map[string]json.Number{
		"current_water_extent":        m.CurrentWaterExtent,
		"peak_water_extent":           m.PeakWaterExtent,
		"percent_decline_since_1960":  m.PercentDeclineSince1960,
		"annual_change_rate":          m.AnnualChangeRate,
		"population_impacted":         m.PopulationImpacted,
		"economic_impact_million_usd": m.EconomicImpactMillionUSD,
	} {
		if _, err := n.Float64(); err != nil {
			return domain.Metrics{}, fmt.Errorf("%w: %q is not numeric", domain.ErrInvalidValue, key)
		}
	}
	return m, nil
}

func readInsights(path string) (domain.Insights, error) {
	var doc insightsDocument
	if err := decodeDocument(path, &doc); err != nil {
		return domain.Insights{}, err
	}
	return domain.Insights{
		KeyFindings:               doc.KeyFindings,
		ManagementRecommendations: doc.ManagementRecommendations,
		PrimaryCauses:             doc.PrimaryCauses,
		DEAfricaAdvantages:        doc.DEAfricaAdvantages,
	}, nil
}
