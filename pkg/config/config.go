// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, upstream and extraction settings

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Upstream contains note platform endpoint configuration
	Upstream UpstreamConfig

	// Extraction contains DOM extraction tuning
	Extraction ExtractionConfig

	// Export contains archive packaging configuration
	Export ExportConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the durable cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// UpstreamConfig holds note platform endpoint configuration.
// An empty FeedAPIURL disables the direct feed fetch source; an empty
// CommentAPIURL disables the comment API source.
type UpstreamConfig struct {
	// FeedAPIURL is the feed detail endpoint
	FeedAPIURL string

	// CommentAPIURL is the comment page endpoint
	CommentAPIURL string

	// CDNHostMarker identifies media URLs belonging to the platform CDN
	CDNHostMarker string

	// PageReferer, PageUserAgent and PageCookie are sent with page and
	// API requests. Upstream rejects requests without them.
	PageReferer   string
	PageUserAgent string
	PageCookie    string
}

// PageHeaders assembles the request headers for upstream calls
func (u UpstreamConfig) PageHeaders() map[string]string {
	headers := map[string]string{}
	if u.PageReferer != "" {
		headers["Referer"] = u.PageReferer
	}
	if u.PageUserAgent != "" {
		headers["User-Agent"] = u.PageUserAgent
	}
	if u.PageCookie != "" {
		headers["Cookie"] = u.PageCookie
	}
	return headers
}

// ExtractionConfig holds DOM extraction timing configuration
type ExtractionConfig struct {
	// DOMWaitTimeout bounds how long to wait for media selectors
	DOMWaitTimeout time.Duration

	// DOMPollInterval is the delay between page re-fetches
	DOMPollInterval time.Duration

	// DOMSettleDelay is the pause before the final page fetch
	DOMSettleDelay time.Duration
}

// ExportConfig holds archive packaging configuration
type ExportConfig struct {
	// DownloadsPerSecond paces media downloads; zero disables pacing
	DownloadsPerSecond float64
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum level to emit (debug/info/warn/error)
	Level string

	// Format selects the logger implementation (json/text)
	Format string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "notegrab.db"),
			},
		},
		Upstream: UpstreamConfig{
			FeedAPIURL:    getEnvOrDefault("FEED_API_URL", ""),
			CommentAPIURL: getEnvOrDefault("COMMENT_API_URL", ""),
			CDNHostMarker: getEnvOrDefault("CDN_HOST_MARKER", "sns-webpic"),
			PageReferer:   getEnvOrDefault("PAGE_REFERER", ""),
			PageUserAgent: getEnvOrDefault("PAGE_USER_AGENT", ""),
			PageCookie:    getEnvOrDefault("PAGE_COOKIE", ""),
		},
		Extraction: ExtractionConfig{
			DOMWaitTimeout:  getEnvAsMillisOrDefault("DOM_WAIT_TIMEOUT_MS", 3000),
			DOMPollInterval: getEnvAsMillisOrDefault("DOM_POLL_INTERVAL_MS", 200),
			DOMSettleDelay:  getEnvAsMillisOrDefault("DOM_SETTLE_DELAY_MS", 500),
		},
		Export: ExportConfig{
			DownloadsPerSecond: getEnvAsFloatOrDefault("DOWNLOADS_PER_SECOND", 0),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsMillisOrDefault reads an integer millisecond value as a duration
func getEnvAsMillisOrDefault(key string, defaultMillis int) time.Duration {
	return time.Duration(getEnvAsIntOrDefault(key, defaultMillis)) * time.Millisecond
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Extraction.DOMWaitTimeout < 0 || c.Extraction.DOMPollInterval < 0 || c.Extraction.DOMSettleDelay < 0 {
		return errors.New("extraction timings cannot be negative")
	}

	if c.Export.DownloadsPerSecond < 0 {
		return errors.New("downloads per second cannot be negative")
	}

	return nil
}
