// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file and VELOPLOT_* env vars.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// DefaultDatasetURL is the published cyclist dataset.
const DefaultDatasetURL = "https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/cyclist-data.json"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// DatasetURL is fetched when DatasetPath is empty.
	DatasetURL string `koanf:"dataset_url"`

	// DatasetPath selects a local JSON file instead of DatasetURL.
	DatasetPath string `koanf:"dataset_path"`

	// FetchTimeoutMS bounds a single dataset fetch.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// RefreshIntervalS reloads the dataset periodically; 0 disables.
	RefreshIntervalS int `koanf:"refresh_interval_s"`

	// WatchFile reloads on changes to DatasetPath.
	WatchFile bool `koanf:"watch_file"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		DatasetURL:       DefaultDatasetURL,
		FetchTimeoutMS:   30_000,
		RefreshIntervalS: 0,
		WatchFile:        true,
	}
}

// FetchTimeout returns FetchTimeoutMS as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutMS) * time.Millisecond
}

// RefreshInterval returns RefreshIntervalS as a duration.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalS) * time.Second
}

// UsesFile reports whether the dataset comes from a local file.
func (c *Config) UsesFile() bool { return c.DatasetPath != "" }

// Validate checks field values.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.Required, validation.In("debug", "info", "warn", "warning", "error")),
		validation.Field(&c.Addr, validation.Required.Error("addr must not be empty")),
		validation.Field(&c.DatasetURL, validation.When(c.DatasetPath == "", validation.Required, is.URL)),
		validation.Field(&c.FetchTimeoutMS, validation.Required, validation.Min(1)),
		validation.Field(&c.RefreshIntervalS, validation.Min(0)),
	)
}
