package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is the ambient (environment-only) configuration. The
// user-facing settings file is a separate concern owned by
// internal/settings.
type Config struct {
	AppName        string `envconfig:"APP_NAME" default:"weather-cli"`
	AppVersion     string `envconfig:"APP_VERSION" default:"1.0.0"`
	AppEnv         string `envconfig:"APP_ENV" default:"development"`
	Port           string `envconfig:"PORT" default:"8080"`
	WeatherBaseURL string `envconfig:"WEATHER_BASE_URL" default:"https://api.openweathermap.org/data/2.5/weather"`
	SettingsPath   string `envconfig:"SETTINGS_PATH" default:"config.yaml"`
	GeocodeCache   string `envconfig:"GEOCODE_CACHE" default:"geocode.db"`
	SentryDSN      string `envconfig:"SENTRY_DSN" default:""`
	ZipkinURL      string `envconfig:"ZIPKIN_URL" default:""`
}

func NewConfig() (*Config, error) {
	var cnf Config

	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return &cnf, nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
