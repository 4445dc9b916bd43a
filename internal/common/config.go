package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment"` // "development" or "production"
	Server      ServerConfig    `toml:"server"`
	Logging     LoggingConfig   `toml:"logging"`
	Sentiment   SentimentConfig `toml:"sentiment"`
	Feeds       FeedsConfig     `toml:"feeds"`
	Analysis    AnalysisConfig  `toml:"analysis"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

// SentimentConfig selects and configures the sentiment classification strategy.
// When the model-backed provider cannot be constructed (missing API key) the
// classifier factory substitutes the keyword fallback before any batch runs.
type SentimentConfig struct {
	Provider  string `toml:"provider"`   // "openai" or "keyword"
	APIKey    string `toml:"api_key"`    // API key for the model-backed provider
	Model     string `toml:"model"`      // Chat model for classification (default: "gpt-4o-mini")
	Timeout   string `toml:"timeout"`    // Per-batch request timeout as duration string (default: "30s")
	BatchSize int    `toml:"batch_size"` // Texts per model request (default: 8)
}

// FeedsConfig configures RSS headline ingestion and the optional poller.
type FeedsConfig struct {
	URLs       []string `toml:"urls"`         // RSS feed URLs
	MaxPerFeed int      `toml:"max_per_feed"` // Max headlines taken from each feed
	Timeout    string   `toml:"timeout"`      // Per-feed fetch timeout as duration string
	Enabled    bool     `toml:"enabled"`      // Enable scheduled polling (default: false)
	Schedule   string   `toml:"schedule"`     // Cron schedule for polling runs
}

// AnalysisConfig contains report and response shaping settings.
type AnalysisConfig struct {
	TopRisks     int `toml:"top_risks"`      // Signals listed in the report summary
	MaxBatchSize int `toml:"max_batch_size"` // Max headlines accepted per API request
}

// NewDefaultConfig creates a configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8085,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
		Sentiment: SentimentConfig{
			Provider:  "openai",
			Model:     "gpt-4o-mini",
			Timeout:   "30s",
			BatchSize: 8,
		},
		Feeds: FeedsConfig{
			URLs: []string{
				"https://feeds.reuters.com/reuters/businessNews",
				"https://www.ft.com/?format=rss",
			},
			MaxPerFeed: 10,
			Timeout:    "30s",
			Enabled:    false,
			Schedule:   "0 */30 * * * *", // Every 30 minutes (cron format with seconds)
		},
		Analysis: AnalysisConfig{
			TopRisks:     5,
			MaxBatchSize: 50,
		},
	}
}

// LoadFromFile loads configuration from a single TOML file
func LoadFromFile(path string) (*Config, error) {
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple TOML files with later
// files overriding earlier ones. Environment variables override all files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

func applyEnvOverrides(config *Config) {
	// Environment configuration (highest priority: SENTIO_ENV, fallback: GO_ENV)
	if env := os.Getenv("SENTIO_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("SENTIO_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("SENTIO_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	// Logging configuration
	if level := os.Getenv("SENTIO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("SENTIO_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	// Sentiment configuration
	if provider := os.Getenv("SENTIO_SENTIMENT_PROVIDER"); provider != "" {
		config.Sentiment.Provider = provider
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		config.Sentiment.APIKey = key
	}
	if key := os.Getenv("SENTIO_SENTIMENT_API_KEY"); key != "" {
		config.Sentiment.APIKey = key
	}
	if model := os.Getenv("SENTIO_SENTIMENT_MODEL"); model != "" {
		config.Sentiment.Model = model
	}

	// Feeds configuration
	if urls := os.Getenv("SENTIO_FEED_URLS"); urls != "" {
		feeds := []string{}
		for _, u := range strings.Split(urls, ",") {
			if trimmed := strings.TrimSpace(u); trimmed != "" {
				feeds = append(feeds, trimmed)
			}
		}
		if len(feeds) > 0 {
			config.Feeds.URLs = feeds
		}
	}
	if schedule := os.Getenv("SENTIO_FEED_SCHEDULE"); schedule != "" {
		config.Feeds.Schedule = schedule
	}
}

// ApplyFlagOverrides applies command-line flag values over the loaded config.
// Command-line flags have highest priority.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// IsProduction returns true when running in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
