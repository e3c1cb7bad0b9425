package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mikey/eml-analyzer/internal/core"
)

// DefaultIPAPIBaseURL is the public ip-api.com endpoint (HTTP only on the free tier)
const DefaultIPAPIBaseURL = "http://ip-api.com"

// ErrLookupFailed is returned when a provider has no location for an address
var ErrLookupFailed = errors.New("geolocation lookup failed")

// ipAPIResponse matches the fields we use from ip-api.com/json/{ip}
type ipAPIResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	Country    string `json:"country"`
	RegionName string `json:"regionName"`
	City       string `json:"city"`
}

// IPAPIClient looks addresses up with the ip-api.com JSON API
type IPAPIClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewIPAPIClient creates a new ip-api client. timeout caps each request in
// addition to any deadline on the caller's context.
func NewIPAPIClient(baseURL string, timeout time.Duration, logger *zap.Logger) *IPAPIClient {
	if baseURL == "" {
		baseURL = DefaultIPAPIBaseURL
	}
	return &IPAPIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Lookup implements core.GeoLocator
func (c *IPAPIClient) Lookup(ctx context.Context, ip string) (core.GeoLocation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/json/"+ip, nil)
	if err != nil {
		return core.GeoLocation{}, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return core.GeoLocation{}, fmt.Errorf("failed to query ip-api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return core.GeoLocation{}, fmt.Errorf("%w: ip-api returned HTTP %d", ErrLookupFailed, resp.StatusCode)
	}

	var parsed ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return core.GeoLocation{}, fmt.Errorf("failed to decode ip-api response: %w", err)
	}
	if parsed.Status != "success" {
		return core.GeoLocation{}, fmt.Errorf("%w: %s %s", ErrLookupFailed, parsed.Status, parsed.Message)
	}

	c.logger.Debug("Resolved IP with ip-api", zap.String("ip", ip), zap.String("country", parsed.Country))

	return core.GeoLocation{
		IP:      ip,
		City:    orNotAvailable(parsed.City),
		Region:  orNotAvailable(parsed.RegionName),
		Country: orNotAvailable(parsed.Country),
	}, nil
}

func orNotAvailable(s string) string {
	if s == "" {
		return core.NotAvailable
	}
	return s
}
