package cache

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/mikey/eml-analyzer/internal/core"
)

// MySQLCache shares geolocation entries between analysts through a MySQL table
type MySQLCache struct {
	db          *sql.DB
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
	stopOnce    sync.Once
}

// NewMySQLCache creates a new MySQL cache
func NewMySQLCache(dsn string, logger *zap.Logger, cleanupFreq time.Duration) (*MySQLCache, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS geo_cache (
			ip VARCHAR(45) PRIMARY KEY,
			city VARCHAR(255) NOT NULL,
			region VARCHAR(255) NOT NULL,
			country VARCHAR(255) NOT NULL,
			cached_at BIGINT NOT NULL,
			expires_at BIGINT NOT NULL,
			INDEX idx_geo_expires_at (expires_at)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	cache := &MySQLCache{
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
func (c *MySQLCache) Get(ctx context.Context, ip string) (*core.GeoCacheEntry, error) {
	return scanEntry(c.db.QueryRowContext(ctx, `
		SELECT ip, city, region, country, cached_at, expires_at
		FROM geo_cache
		WHERE ip = ?
	`, ip))
}

// Set stores an entry, replacing any previous one for the same IP
func (c *MySQLCache) Set(ctx context.Context, entry *core.GeoCacheEntry) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO geo_cache (ip, city, region, country, cached_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			city = VALUES(city),
			region = VALUES(region),
			country = VALUES(country),
			cached_at = VALUES(cached_at),
			expires_at = VALUES(expires_at)
	`, entry.IP, entry.Location.City, entry.Location.Region, entry.Location.Country,
		entry.CachedAt.Unix(), entry.ExpiresAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert cache entry: %w", err)
	}
	return nil
}

// Delete removes a cache entry
func (c *MySQLCache) Delete(ctx context.Context, ip string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM geo_cache WHERE ip = ?`, ip); err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// Cleanup removes expired entries
func (c *MySQLCache) Cleanup(ctx context.Context) error {
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

func (c *MySQLCache) startCleanupTask() {
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
func (c *MySQLCache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
		if err := c.db.Close(); err != nil {
			c.logger.Error("Failed to close MySQL database", zap.Error(err))
		}
	})
}
