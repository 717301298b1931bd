// Package categorycache is a SQLite-backed cache.Cache adapter for the
// category hierarchy: category→pages and subcategories, with a
// per-entry TTL. Schema managed via embedded goose migrations.
package categorycache

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultTTL is applied when Put is called without an explicit
// expiration via PutWithTTL.
const DefaultTTL = 24 * time.Hour

// Cache wraps a SQLite handle behind the cache.Cache contract.
type Cache struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open creates or opens a SQLite database at dbPath and applies
// migrations.
func Open(dbPath string, logger *slog.Logger) (*Cache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("categorycache: open %s: %w", dbPath, err)
	}
	if err := runMigrations(db, logger); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info("category cache opened", "path", dbPath)
	return &Cache{db: db, logger: logger}, nil
}

// Get returns the cached value for key if present and not expired.
func (c *Cache) Get(key string) (value []byte, ok bool, err error) {
	row := c.db.QueryRow(
		`SELECT value, expires_at FROM category_cache WHERE key = ?`, key)

	var expiresAt int64
	err = row.Scan(&value, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("categorycache: get: %w", err)
	}
	if time.Now().Unix() > expiresAt {
		c.delete(key)
		return nil, false, nil
	}
	return value, true, nil
}

// Put stores value under key with DefaultTTL.
func (c *Cache) Put(key string, value []byte) error {
	return c.PutWithTTL(key, value, DefaultTTL)
}

// PutWithTTL stores value under key, expiring after ttl.
func (c *Cache) PutWithTTL(key string, value []byte, ttl time.Duration) error {
	expiresAt := time.Now().Add(ttl).Unix()
	_, err := c.db.Exec(
		`INSERT INTO category_cache (key, value, expires_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, value, expiresAt)
	if err != nil {
		return fmt.Errorf("categorycache: put: %w", err)
	}
	return nil
}

func (c *Cache) delete(key string) {
	c.db.Exec(`DELETE FROM category_cache WHERE key = ?`, key)
}

// Close closes the underlying SQLite handle.
func (c *Cache) Close() error {
	c.logger.Info("category cache closing")
	return c.db.Close()
}
