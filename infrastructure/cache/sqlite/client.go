// ABOUTME: SQLite-based cache implementation for persistent caching
// ABOUTME: A file-based durable tier that survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// All queries are fixed and parameterized; keys and values only ever
// travel as bind arguments. An expiry of 0 marks an entry that never
// expires.
const (
	getQuery     = "SELECT value FROM cache WHERE key = ? AND (expiry = 0 OR expiry > ?)"
	setQuery     = "INSERT OR REPLACE INTO cache (key, value, expiry) VALUES (?, ?, ?)"
	deleteQuery  = "DELETE FROM cache WHERE key = ?"
	cleanupQuery = "DELETE FROM cache WHERE expiry > 0 AND expiry <= ?"
)

const cleanupInterval = 5 * time.Minute

// Client implements the Cache interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	done     chan struct{}
}

// NewSQLiteCache creates a new SQLite cache client
func NewSQLiteCache(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "cache.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
		done:     make(chan struct{}),
	}

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go client.cleanupRoutine()

	return client, nil
}

// initSchema creates the cache table if it doesn't exist
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_expiry ON cache(expiry);
	`

	_, err := c.db.Exec(query)
	return err
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var value []byte
	err := c.db.QueryRowContext(ctx, getQuery, key, time.Now().Unix()).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, errors.New("key not found or expired")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value in the cache.
// A ttl of 0 stores the value indefinitely.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := validateValue(value); err != nil {
		return err
	}

	var expiry int64
	if ttl > 0 {
		expiry = time.Now().Add(ttl).Unix()
	}

	if _, err := c.db.ExecContext(ctx, setQuery, key, value, expiry); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if _, err := c.db.ExecContext(ctx, deleteQuery, key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// cleanupRoutine periodically removes expired entries
func (c *Client) cleanupRoutine() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_, _ = c.db.Exec(cleanupQuery, time.Now().Unix())
		case <-c.done:
			return
		}
	}
}

// Close stops the cleanup routine and closes the database connection
func (c *Client) Close() error {
	close(c.done)
	return c.db.Close()
}

// Stats returns cache statistics
func (c *Client) Stats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var count int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM cache").Scan(&count); err != nil {
		return nil, err
	}
	stats["total_entries"] = count

	var expired int
	err := c.db.QueryRow("SELECT COUNT(*) FROM cache WHERE expiry > 0 AND expiry <= ?", time.Now().Unix()).Scan(&expired)
	if err != nil {
		return nil, err
	}
	stats["expired_entries"] = expired
	stats["file_path"] = c.filePath

	return stats, nil
}
