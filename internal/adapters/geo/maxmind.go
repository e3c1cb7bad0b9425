package geo

import (
	"context"
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"

	"github.com/mikey/eml-analyzer/internal/core"
)

// MaxMindLocator resolves addresses offline from a GeoIP2 or GeoLite2 City database
type MaxMindLocator struct {
	reader *geoip2.Reader
}

// NewMaxMindLocator opens the database at dbPath
func NewMaxMindLocator(dbPath string) (*MaxMindLocator, error) {
	reader, err := geoip2.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open MaxMind database %s: %w", dbPath, err)
	}
	return &MaxMindLocator{reader: reader}, nil
}

// Lookup implements core.GeoLocator
func (l *MaxMindLocator) Lookup(ctx context.Context, ip string) (core.GeoLocation, error) {
	if err := ctx.Err(); err != nil {
		return core.GeoLocation{}, err
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return core.GeoLocation{}, fmt.Errorf("%w: invalid address %q", ErrLookupFailed, ip)
	}

	record, err := l.reader.City(parsed)
	if err != nil {
		return core.GeoLocation{}, fmt.Errorf("failed to read MaxMind record: %w", err)
	}
	if record.Country.IsoCode == "" {
		return core.GeoLocation{}, fmt.Errorf("%w: %s not in database", ErrLookupFailed, ip)
	}

	region := ""
	if len(record.Subdivisions) > 0 {
		region = record.Subdivisions[0].Names["en"]
	}

	return core.GeoLocation{
		IP:      ip,
		City:    orNotAvailable(record.City.Names["en"]),
		Region:  orNotAvailable(region),
		Country: orNotAvailable(record.Country.Names["en"]),
	}, nil
}

// Close releases the database
func (l *MaxMindLocator) Close() error {
	return l.reader.Close()
}
