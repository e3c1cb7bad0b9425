package geo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mikey/eml-analyzer/internal/core"
)

// CachedLocator remembers successful lookups of another locator.
// Failed lookups are not cached so they are retried on the next message.
type CachedLocator struct {
	next   core.GeoLocator
	cache  core.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedLocator wraps next with cache
func NewCachedLocator(next core.GeoLocator, cache core.CacheRepository, ttl time.Duration, logger *zap.Logger) *CachedLocator {
	return &CachedLocator{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Lookup implements core.GeoLocator
func (c *CachedLocator) Lookup(ctx context.Context, ip string) (core.GeoLocation, error) {
	if entry, err := c.cache.Get(ctx, ip); err == nil {
		c.logger.Debug("Cache hit for IP", zap.String("ip", ip))
		return entry.Location, nil
	}

	loc, err := c.next.Lookup(ctx, ip)
	if err != nil {
		return loc, err
	}

	now := time.Now()
	entry := &core.GeoCacheEntry{
		IP:        ip,
		Location:  loc,
		CachedAt:  now,
		ExpiresAt: now.Add(c.ttl),
	}
	if err := c.cache.Set(ctx, entry); err != nil {
		c.logger.Error("Failed to update cache", zap.String("ip", ip), zap.Error(err))
	}
	return loc, nil
}

// Close closes the wrapped locator if it holds resources
func (c *CachedLocator) Close() error {
	if closer, ok := c.next.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
