// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, page fetching, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache built on go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: SQLite-backed cache that survives restarts
// - http/standard: Standard library HTTP client with retry logic
// - page/colly: Note page fetcher built on colly, returning parsed documents
// - logger/standard: Plain-text key=value logger for local development
// - logger/logrus: JSON structured logger built on logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cfg := config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	}
//	cache, err := redis.NewRedisCache(cfg)
//
// SQLite Cache Example:
//
//	cache, err := sqlite.NewSQLiteCache("notegrab.db")
//	defer cache.Close()
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures
// and per-request header support for upstream API calls:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.GetWithHeaders(ctx, url, headers)
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Page Fetcher
//
// The colly-based fetcher retrieves a note page and hands back a parsed
// goquery document for the DOM scraping fallbacks:
//
//	fetcher := colly.NewFetcher(headers, logger)
//	doc, err := fetcher.FetchDocument(ctx, noteURL)
//
// # Logger
//
// Loggers support structured logging with fields:
//
//	logger := logrus.New("info")
//	logger.Info("Processing request", map[string]interface{}{
//	    "note_id": "65a1b2c3d4e5f60708091a0b",
//	    "action":  "extract_media",
//	})
//
package infrastructure
