package config

import (
	"time"

	"golang-news-aggregator/pkg/config"
)

// Scraper holds crawl pipeline configuration.
type Scraper struct {
	SiteName             string        `mapstructure:"site_name"`
	SiteURL              string        `mapstructure:"site_url"`
	SitemapIndexURL      string        `mapstructure:"sitemap_index_url"`
	RequestTimeout       time.Duration `mapstructure:"request_timeout"`
	MaxRequestsPerMinute int           `mapstructure:"max_requests_per_minute"`
	ManifestFile         string        `mapstructure:"manifest_file"`
	CheckpointFile       string        `mapstructure:"checkpoint_file"`
	Feeds                []string      `mapstructure:"feeds"`
}

// AI selects the fact-extraction provider. An empty provider disables
// AI-assisted extraction and the projector falls back to paragraph
// splitting.
type AI struct {
	Provider string `mapstructure:"provider"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	BaseURL             string `mapstructure:"base_url"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int    `mapstructure:"max_token_per_minute"`
}

// OpenAI holds the configuration for the OpenAI API.
type OpenAI struct {
	APIKey              string `mapstructure:"api_key"`
	BaseURL             string `mapstructure:"base_url"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// Telegram holds configuration for the run-summary notifier.
type Telegram struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the scraper service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	Scraper  Scraper         `mapstructure:"scraper"`
	AI       AI              `mapstructure:"ai"`
	Gemini   Gemini          `mapstructure:"gemini"`
	OpenAI   OpenAI          `mapstructure:"openai"`
	Telegram Telegram        `mapstructure:"telegram"`
}

// Load loads the scraper configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
