package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mikey/eml-analyzer/internal/adapters/geo"
	"github.com/mikey/eml-analyzer/internal/config"
	"github.com/mikey/eml-analyzer/internal/core"
	"github.com/mikey/eml-analyzer/internal/ports"
)

// GeoFactory creates the geolocation provider based on configuration
type GeoFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewGeoFactory creates a new geolocation factory
func NewGeoFactory(cfg *config.Config, logger *zap.Logger) *GeoFactory {
	return &GeoFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateLocator creates the configured provider, wrapped with cache when one is given
func (f *GeoFactory) CreateLocator(cache ports.ManagedCache) (core.GeoLocator, error) {
	geoCfg, err := f.cfg.GetGeo()
	if err != nil {
		return nil, fmt.Errorf("invalid geolocation configuration: %w", err)
	}

	var locator core.GeoLocator
	switch geoCfg.Provider {
	case "ipapi":
		locator = geo.NewIPAPIClient(geoCfg.IPAPIBaseURL, geoCfg.Timeout, f.logger)
	case "maxmind":
		locator, err = geo.NewMaxMindLocator(geoCfg.MaxMindDBPath)
		if err != nil {
			return nil, err
		}
	case "none":
		// Every public hop gets the placeholder, so there is nothing to cache
		return geo.NewNoopLocator(), nil
	default:
		return nil, fmt.Errorf("unsupported geolocation provider: %s", geoCfg.Provider)
	}

	f.logger.Info("Using geolocation provider", zap.String("provider", geoCfg.Provider))

	if cache == nil {
		return locator, nil
	}
	cacheCfg, err := f.cfg.GetCache()
	if err != nil {
		return nil, fmt.Errorf("invalid cache configuration: %w", err)
	}
	return geo.NewCachedLocator(locator, cache, cacheCfg.TTL, f.logger), nil
}
