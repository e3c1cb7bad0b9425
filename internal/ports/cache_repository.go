package ports

import (
	"github.com/mikey/eml-analyzer/internal/core"
)

// ManagedCache is a geolocation cache that owns background resources
type ManagedCache interface {
	core.CacheRepository

	// Stop stops the cleanup task and releases the backing store
	Stop()
}
