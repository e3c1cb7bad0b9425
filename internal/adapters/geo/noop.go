package geo

import (
	"context"
	"errors"

	"github.com/mikey/eml-analyzer/internal/core"
)

// ErrLookupDisabled is returned by NoopLocator for every address
var ErrLookupDisabled = errors.New("geolocation disabled")

// NoopLocator never resolves anything, so every public hop gets the placeholder location
type NoopLocator struct{}

// NewNoopLocator creates a new no-op locator
func NewNoopLocator() *NoopLocator {
	return &NoopLocator{}
}

// Lookup implements core.GeoLocator
func (NoopLocator) Lookup(_ context.Context, _ string) (core.GeoLocation, error) {
	return core.GeoLocation{}, ErrLookupDisabled
}
