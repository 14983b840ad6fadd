package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string        `toml:"environment"` // "development" or "production"
	Engine      EngineConfig  `toml:"engine"`
	Markets     MarketsConfig `toml:"markets"`
	News        NewsConfig    `toml:"news"`
	Logging     LoggingConfig `toml:"logging"`
}

// EngineConfig controls analysis defaults shared by the CLI and the engine.
type EngineConfig struct {
	DefaultMarket    string `toml:"default_market" validate:"required"`    // market class used when the caller passes none (default: "crypto")
	DefaultTimeframe string `toml:"default_timeframe" validate:"required"` // candle timeframe used when the caller passes none (default: "1h")
	CandleLimit      int    `toml:"candle_limit" validate:"min=1"`         // bounded history window requested per analysis (default: 500)
	NewsRetrieve     int    `toml:"news_retrieve" validate:"min=1"`        // headlines retrieved per analysis (default: 10)
	NewsDisplay      int    `toml:"news_display" validate:"min=1"`         // headlines rendered in reports (default: 5)
	Timezone         string `toml:"timezone" validate:"required"`          // IANA "Area/City" name stamped on snapshots
}

// MarketsConfig groups the market-data provider settings.
type MarketsConfig struct {
	ChartMaster ChartMasterConfig `toml:"chartmaster"`
	Binance     BinanceConfig     `toml:"binance"`
	CoinGecko   CoinGeckoConfig   `toml:"coingecko"`
}

// ChartMasterConfig configures the primary candle provider.
type ChartMasterConfig struct {
	BaseURL   string `toml:"base_url" validate:"required,url"`
	Timeout   string `toml:"timeout"`    // duration string, e.g. "10s"
	RateLimit int    `toml:"rate_limit"` // requests per second
}

// BinanceConfig configures the secondary candle provider (crypto only).
// Keys are optional: klines are a public endpoint.
type BinanceConfig struct {
	Enabled   bool   `toml:"enabled"`
	APIKey    string `toml:"api_key"`
	SecretKey string `toml:"secret_key"`
}

// CoinGeckoConfig configures the quote provider (crypto only).
type CoinGeckoConfig struct {
	BaseURL   string `toml:"base_url" validate:"required,url"`
	Timeout   string `toml:"timeout"`    // duration string, e.g. "5s"
	RateLimit int    `toml:"rate_limit"` // requests per second
}

// NewsConfig groups the headline provider settings.
type NewsConfig struct {
	CryptoPanic CryptoPanicConfig `toml:"cryptopanic"`
	Scraper     ScraperConfig     `toml:"scraper"`
}

// CryptoPanicConfig configures the primary headline provider.
type CryptoPanicConfig struct {
	BaseURL   string `toml:"base_url" validate:"required,url"`
	Timeout   string `toml:"timeout"`    // duration string, e.g. "5s"
	AuthToken string `toml:"auth_token"` // optional API token
}

// ScraperConfig configures the HTML headline scraper fallback.
type ScraperConfig struct {
	Enabled   bool   `toml:"enabled"`
	UserAgent string `toml:"user_agent"`
	Timeout   string `toml:"timeout"` // duration string, e.g. "5s"
}

type LoggingConfig struct {
	Level      string   `toml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format     string   `toml:"format"` // "json" or "text"
	Output     []string `toml:"output"` // "stdout", "file"
	TimeFormat string   `toml:"time_format"`
}

// NewDefaultConfig creates a configuration with default values.
// Technical parameters live here; auspex.toml only needs user-facing overrides.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Engine: EngineConfig{
			DefaultMarket:    "crypto",
			DefaultTimeframe: "1h",
			CandleLimit:      500,
			NewsRetrieve:     10,
			NewsDisplay:      5,
			Timezone:         "America/Los_Angeles",
		},
		Markets: MarketsConfig{
			ChartMaster: ChartMasterConfig{
				BaseURL:   "https://api.chartmaster.org/tradingview",
				Timeout:   "10s",
				RateLimit: 5,
			},
			Binance: BinanceConfig{
				Enabled: true,
			},
			CoinGecko: CoinGeckoConfig{
				BaseURL:   "https://api.coingecko.com/api/v3",
				Timeout:   "5s",
				RateLimit: 5,
			},
		},
		News: NewsConfig{
			CryptoPanic: CryptoPanicConfig{
				BaseURL: "https://cryptopanic.com/api",
				Timeout: "5s",
			},
			Scraper: ScraperConfig{
				Enabled:   false,
				UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
				Timeout:   "5s",
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
	}
}

// LoadFromFile loads configuration with priority: default -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// default -> file1 -> file2 -> ... -> env. Later files override earlier ones.
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

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	// Environment (highest priority: AUSPEX_ENV, fallback: GO_ENV)
	if env := os.Getenv("AUSPEX_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Engine configuration
	if market := os.Getenv("AUSPEX_DEFAULT_MARKET"); market != "" {
		config.Engine.DefaultMarket = market
	}
	if tf := os.Getenv("AUSPEX_DEFAULT_TIMEFRAME"); tf != "" {
		config.Engine.DefaultTimeframe = tf
	}
	if limit := os.Getenv("AUSPEX_CANDLE_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			config.Engine.CandleLimit = n
		}
	}
	if tz := os.Getenv("AUSPEX_TIMEZONE"); tz != "" {
		config.Engine.Timezone = tz
	}

	// Market data providers
	if baseURL := os.Getenv("AUSPEX_CHARTMASTER_BASE_URL"); baseURL != "" {
		config.Markets.ChartMaster.BaseURL = baseURL
	}
	if timeout := os.Getenv("AUSPEX_CHARTMASTER_TIMEOUT"); timeout != "" {
		if _, err := time.ParseDuration(timeout); err == nil {
			config.Markets.ChartMaster.Timeout = timeout
		}
	}
	if enabled := os.Getenv("AUSPEX_BINANCE_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			config.Markets.Binance.Enabled = b
		}
	}
	if apiKey := os.Getenv("AUSPEX_BINANCE_API_KEY"); apiKey != "" {
		config.Markets.Binance.APIKey = apiKey
	}
	if secretKey := os.Getenv("AUSPEX_BINANCE_SECRET_KEY"); secretKey != "" {
		config.Markets.Binance.SecretKey = secretKey
	}
	if baseURL := os.Getenv("AUSPEX_COINGECKO_BASE_URL"); baseURL != "" {
		config.Markets.CoinGecko.BaseURL = baseURL
	}

	// News providers
	if baseURL := os.Getenv("AUSPEX_CRYPTOPANIC_BASE_URL"); baseURL != "" {
		config.News.CryptoPanic.BaseURL = baseURL
	}
	if token := os.Getenv("AUSPEX_CRYPTOPANIC_AUTH_TOKEN"); token != "" {
		config.News.CryptoPanic.AuthToken = token
	}
	if enabled := os.Getenv("AUSPEX_NEWS_SCRAPER_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			config.News.Scraper.Enabled = b
		}
	}

	// Logging configuration
	if level := os.Getenv("AUSPEX_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("AUSPEX_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
	if output := os.Getenv("AUSPEX_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range splitString(output, ",") {
			trimmed := trimSpace(o)
			if trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config
func ApplyFlagOverrides(config *Config, market, timeframe string) {
	// Command-line flags have highest priority
	if market != "" {
		config.Engine.DefaultMarket = market
	}
	if timeframe != "" {
		config.Engine.DefaultTimeframe = timeframe
	}
}

// Validate checks the configuration using go-playground/validator tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// DurationOr parses a duration string, returning fallback on empty or invalid input.
// Timeout fields are kept as strings in TOML and parsed at use sites.
func DurationOr(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	env := trimSpace(c.Environment)
	return env == "production" || env == "prod"
}

// Helper functions for string manipulation
func splitString(s, sep string) []string {
	result := []string{}
	start := 0
	for i := 0; i < len(s); i++ {
		if i+len(sep) <= len(s) && s[i:i+len(sep)] == sep {
			result = append(result, s[start:i])
			start = i + len(sep)
			i = start - 1
		}
	}
	result = append(result, s[start:])
	return result
}

func trimSpace(s string) string {
	start := 0
	end := len(s)
	for start < end && (s[start] == ' ' || s[start] == '\t' || s[start] == '\n' || s[start] == '\r') {
		start++
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t' || s[end-1] == '\n' || s[end-1] == '\r') {
		end--
	}
	return s[start:end]
}
