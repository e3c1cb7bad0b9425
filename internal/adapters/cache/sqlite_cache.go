package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/mikey/eml-analyzer/internal/core"
)

// SQLiteCache persists geolocation entries in a local SQLite file so that
// repeated runs over the same mail do not query the provider again
type SQLiteCache struct {
	db          *sql.DB
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
	stopOnce    sync.Once
}

// NewSQLiteCache creates a new SQLite cache
func NewSQLiteCache(dbPath string, logger *zap.Logger, cleanupFreq time.Duration) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS geo_cache (
			ip TEXT PRIMARY KEY,
			city TEXT NOT NULL,
			region TEXT NOT NULL,
			country TEXT NOT NULL,
			cached_at INTEGER NOT NULL,
			expires_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_geo_expires_at ON geo_cache(expires_at)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	cache := &SQLiteCache{
		db:          db,
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}

	if cleanupFreq > 0 {
		go cache.startCleanupTask()
	}

	return cache, nil
}

// Get returns the entry for ip
func (c *SQLiteCache) Get(ctx context.Context, ip string) (*core.GeoCacheEntry, error) {
	return scanEntry(c.db.QueryRowContext(ctx, `
		SELECT ip, city, region, country, cached_at, expires_at
		FROM geo_cache
		WHERE ip = ?
	`, ip))
}

// Set stores an entry, replacing any previous one for the same IP
func (c *SQLiteCache) Set(ctx context.Context, entry *core.GeoCacheEntry) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO geo_cache (ip, city, region, country, cached_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.IP, entry.Location.City, entry.Location.Region, entry.Location.Country,
		entry.CachedAt.Unix(), entry.ExpiresAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert cache entry: %w", err)
	}
	return nil
}

// Delete removes a cache entry
func (c *SQLiteCache) Delete(ctx context.Context, ip string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM geo_cache WHERE ip = ?`, ip); err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// Cleanup removes expired entries
func (c *SQLiteCache) Cleanup(ctx context.Context) error {
	result, err := c.db.ExecContext(ctx, `DELETE FROM geo_cache WHERE expires_at <= ?`, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to clean up expired entries: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.logger.Warn("Failed to get rows affected during cleanup", zap.Error(err))
	} else {
		c.logger.Debug("Cleaned up expired cache entries", zap.Int64("expired_count", rowsAffected))
	}
	return nil
}

func (c *SQLiteCache) startCleanupTask() {
	ticker := time.NewTicker(c.cleanupFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Cleanup(context.Background()); err != nil {
				c.logger.Error("Failed to clean up cache", zap.Error(err))
			}
		case <-c.stopCh:
			return
		}
	}
}

// Stop stops the background cleanup task and closes the database connection
func (c *SQLiteCache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
		if err := c.db.Close(); err != nil {
			c.logger.Error("Failed to close SQLite database", zap.Error(err))
		}
	})
}

// scanEntry reads one geo_cache row. Both SQL backends share the column layout.
func scanEntry(row *sql.Row) (*core.GeoCacheEntry, error) {
	var entry core.GeoCacheEntry
	var cachedAt, expiresAt int64

	err := row.Scan(&entry.IP, &entry.Location.City, &entry.Location.Region, &entry.Location.Country, &cachedAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}

	entry.Location.IP = entry.IP
	entry.CachedAt = time.Unix(cachedAt, 0)
	entry.ExpiresAt = time.Unix(expiresAt, 0)
	if time.Now().After(entry.ExpiresAt) {
		return nil, ErrExpired
	}
	return &entry, nil
}
