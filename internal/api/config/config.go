package config

import (
	"time"

	"golang-news-aggregator/pkg/config"
)

// Cache holds API-side response cache settings.
type Cache struct {
	Enabled        bool          `mapstructure:"enabled"`
	EventDetailTTL time.Duration `mapstructure:"event_detail_ttl"`
}

// Config holds the full configuration for the API service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	Redis    config.Redis    `mapstructure:"redis"`
	API      config.API      `mapstructure:"api"`
	Cache    Cache           `mapstructure:"cache"`
}

// Load loads the API configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
