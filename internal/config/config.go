// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended to every variable, e.g. DAYDREAM_SCENE.
const envPrefix = "DAYDREAM"

// Config holds runtime settings.
type Config struct {
	// Scene is the id of the scene to start in.
	Scene string `envconfig:"SCENE" default:"door"`
	// SkipOpening starts in Moving mode even if the scene has an opening fade.
	SkipOpening bool `envconfig:"SKIP_OPENING" default:"false"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	// LogFile receives the log; the terminal belongs to the game screen.
	LogFile string `envconfig:"LOG_FILE" default:"daydream.log"`

	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	HoneycombAPIKey  string `envconfig:"HONEYCOMB_API_KEY"`
	HoneycombDataset string `envconfig:"HONEYCOMB_DATASET" default:"daydream"`

	// MetricsAddr enables the Prometheus endpoint when set (e.g. ":9464").
	MetricsAddr string `envconfig:"METRICS_ADDR"`
}

// Load reads the configuration from DAYDREAM_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
