package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json"`
	ShutdownTimeout time.Duration `ignored:"true"`

	// Data contract locations.
	DataDir          string `envconfig:"DATA_DIR" default:"./dashboard_data"`
	ImagePath        string `envconfig:"IMAGE_PATH" default:"compare.png"`
	PresentationFile string `envconfig:"PRESENTATION_FILE"`

	// Rendering.
	HeatmapEnabled bool          `envconfig:"HEATMAP_ENABLED" default:"false"`
	ChartCacheTTL  time.Duration `envconfig:"CHART_CACHE_TTL" default:"0s"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}
	cfg.ShutdownTimeout = shutdownTimeout

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}
	if cfg.DataDir == "" {
		return nil, errors.New("DATA_DIR is required")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want json or text", cfg.LogFormat)
	}
	if cfg.ChartCacheTTL < 0 {
		return nil, errors.New("invalid CHART_CACHE_TTL: must not be negative")
	}

	return &cfg, nil
}
