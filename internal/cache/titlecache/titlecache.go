// Package titlecache is a BadgerDB-backed cache.Cache adapter, used for
// the parsed multistream index. The key space is the composite
// (source-path, source-size, source-mtime, schema-version) string built
// by cache.IndexCacheKey, and values are opaque serialised index blobs.
package titlecache

import (
	"fmt"
	"log/slog"

	badger "github.com/dgraph-io/badger/v4"
)

// Cache wraps a BadgerDB handle behind the cache.Cache contract.
type Cache struct {
	db     *badger.DB
	logger *slog.Logger
}

// Open creates or opens a BadgerDB database at dbPath.
func Open(dbPath string, logger *slog.Logger) (*Cache, error) {
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("titlecache: open %s: %w", dbPath, err)
	}
	logger.Info("index cache opened", "path", dbPath)
	return &Cache{db: db, logger: logger}, nil
}

// badgerKey turns the composite cache key — source path, size, mtime,
// schema version — into the raw BadgerDB key.
func badgerKey(key string) []byte {
	return []byte(key)
}

// Get returns the cached value for key, or ok=false if absent.
func (c *Cache) Get(key string) (value []byte, ok bool, err error) {
	err = c.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get(badgerKey(key))
		if getErr == badger.ErrKeyNotFound {
			return nil
		}
		if getErr != nil {
			return getErr
		}
		ok = true
		return item.Value(func(val []byte) error {
			value = append([]byte(nil), val...)
			return nil
		})
	})
	if err != nil {
		return nil, false, fmt.Errorf("titlecache: get: %w", err)
	}
	return value, ok, nil
}

// Put stores value under key, overwriting any existing entry.
func (c *Cache) Put(key string, value []byte) error {
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(key), value)
	})
	if err != nil {
		return fmt.Errorf("titlecache: put: %w", err)
	}
	return nil
}

// Close closes the underlying BadgerDB handle.
func (c *Cache) Close() error {
	c.logger.Info("index cache closing")
	return c.db.Close()
}
