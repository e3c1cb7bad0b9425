package core

import (
	"context"
	"time"
)

// GeoLocator resolves a single IP address to a location
type GeoLocator interface {
	// Lookup returns the location of ip, or an error when it cannot be resolved
	Lookup(ctx context.Context, ip string) (GeoLocation, error)
}

// GeoCacheEntry is a cached successful geolocation lookup
type GeoCacheEntry struct {
	IP        string
	Location  GeoLocation
	CachedAt  time.Time
	ExpiresAt time.Time
}

// CacheRepository defines the interface for caching geolocation lookups
type CacheRepository interface {
	// Get retrieves a cached entry for an IP
	Get(ctx context.Context, ip string) (*GeoCacheEntry, error)

	// Set stores a cache entry
	Set(ctx context.Context, entry *GeoCacheEntry) error

	// Delete removes a cache entry
	Delete(ctx context.Context, ip string) error

	// Cleanup removes expired entries
	Cleanup(ctx context.Context) error
}

// MessageSource lists the message files of a batch
type MessageSource interface {
	List() ([]string, error)
}

// MessageExtractor turns a message file into the analysis model
type MessageExtractor interface {
	Extract(path string) (*Message, error)
}

// ReportWriter persists the report of one analysis and returns its location
type ReportWriter interface {
	Write(analysis *Analysis) (string, error)
}
