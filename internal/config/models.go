package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/mikey/eml-analyzer/internal/core"
)

// AnalysisConfig holds the reference values used by the detectors
type AnalysisConfig struct {
	HomeCountry    string
	URLLengthLimit int
}

// ScoringConfig holds the risk model parameters
type ScoringConfig struct {
	Weights    core.Weights
	Thresholds core.Thresholds
}

// GeoConfig selects and configures the geolocation provider
type GeoConfig struct {
	Provider      string
	Timeout       time.Duration
	IPAPIBaseURL  string
	MaxMindDBPath string
}

// CacheConfig configures the geolocation cache
type CacheConfig struct {
	Enabled          bool
	Type             string
	TTL              time.Duration
	CleanupFrequency time.Duration
	SQLitePath       string
	MySQLDSN         string
}

// GetAnalysis returns the analysis configuration
func (c *Config) GetAnalysis() AnalysisConfig {
	return AnalysisConfig{
		HomeCountry:    c.GetString("analysis.home_country"),
		URLLengthLimit: c.GetInt("analysis.url_length_limit"),
	}
}

// ErrInvalidScoring is returned when configured weights or thresholds cannot produce a valid grade
var ErrInvalidScoring = errors.New("invalid scoring configuration")

// GetScoring returns the scoring configuration. Every weight must be at
// least 1 and the moderate threshold must be positive and below the high one.
func (c *Config) GetScoring() (ScoringConfig, error) {
	scoring := ScoringConfig{
		Weights: core.Weights{
			SuspiciousTLD:      c.GetInt("scoring.weights.suspicious_tld"),
			RawIPDomain:        c.GetInt("scoring.weights.raw_ip_domain"),
			LongURL:            c.GetInt("scoring.weights.long_url"),
			UrgentLanguage:     c.GetInt("scoring.weights.urgent_language"),
			CredentialLanguage: c.GetInt("scoring.weights.credential_language"),
			FinancialLanguage:  c.GetInt("scoring.weights.financial_language"),
			DangerousExtension: c.GetInt("scoring.weights.dangerous_extension"),
			MIMEMismatch:       c.GetInt("scoring.weights.mime_mismatch"),
			ForeignHop:         c.GetInt("scoring.weights.foreign_hop"),
			FromReplyMismatch:  c.GetInt("scoring.weights.from_reply_mismatch"),
		},
		Thresholds: core.Thresholds{
			Moderate: c.GetInt("scoring.thresholds.moderate"),
			High:     c.GetInt("scoring.thresholds.high"),
		},
	}
	if err := scoring.validate(); err != nil {
		return ScoringConfig{}, err
	}
	return scoring, nil
}

func (s ScoringConfig) validate() error {
	w := s.Weights
	weights := []struct {
		key   string
		value int
	}{
		{"suspicious_tld", w.SuspiciousTLD},
		{"raw_ip_domain", w.RawIPDomain},
		{"long_url", w.LongURL},
		{"urgent_language", w.UrgentLanguage},
		{"credential_language", w.CredentialLanguage},
		{"financial_language", w.FinancialLanguage},
		{"dangerous_extension", w.DangerousExtension},
		{"mime_mismatch", w.MIMEMismatch},
		{"foreign_hop", w.ForeignHop},
		{"from_reply_mismatch", w.FromReplyMismatch},
	}
	for _, weight := range weights {
		if weight.value < 1 {
			return fmt.Errorf("%w: scoring.weights.%s must be at least 1, got %d", ErrInvalidScoring, weight.key, weight.value)
		}
	}

	t := s.Thresholds
	if t.Moderate < 1 || t.Moderate >= t.High {
		return fmt.Errorf("%w: thresholds must satisfy 0 < moderate < high, got moderate=%d high=%d", ErrInvalidScoring, t.Moderate, t.High)
	}
	return nil
}

// GetGeo returns the geolocation configuration
func (c *Config) GetGeo() (GeoConfig, error) {
	timeout, err := c.GetDuration("geo.timeout")
	if err != nil {
		return GeoConfig{}, err
	}
	return GeoConfig{
		Provider:      c.GetString("geo.provider"),
		Timeout:       timeout,
		IPAPIBaseURL:  c.GetString("geo.ipapi.base_url"),
		MaxMindDBPath: c.GetString("geo.maxmind.db_path"),
	}, nil
}

// GetCache returns the cache configuration
func (c *Config) GetCache() (CacheConfig, error) {
	ttl, err := c.GetDuration("cache.ttl")
	if err != nil {
		return CacheConfig{}, err
	}
	cleanup, err := c.GetDuration("cache.cleanup_frequency")
	if err != nil {
		return CacheConfig{}, err
	}
	return CacheConfig{
		Enabled:          c.GetBool("cache.enabled"),
		Type:             c.GetString("cache.type"),
		TTL:              ttl,
		CleanupFrequency: cleanup,
		SQLitePath:       c.GetString("cache.sqlite_path"),
		MySQLDSN:         c.GetString("cache.mysql_dsn"),
	}, nil
}
