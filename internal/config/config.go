package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mikey/eml-analyzer/internal/core"
)

// EnvPrefix is prepended to every environment override, e.g. EML_ANALYZER_GEO_PROVIDER
const EnvPrefix = "EML_ANALYZER"

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance. An explicit configFile must
// exist; otherwise config.yaml is searched for in the usual places and is optional.
func New(configFile string) (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/eml-analyzer/")
		v.AddConfigPath("$HOME/.eml-analyzer")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input.dir", "emails")
	v.SetDefault("output.dir", "reports")

	v.SetDefault("analysis.home_country", "United States")
	v.SetDefault("analysis.url_length_limit", 150)

	v.SetDefault("scoring.thresholds.moderate", core.DefaultThresholds.Moderate)
	v.SetDefault("scoring.thresholds.high", core.DefaultThresholds.High)
	w := core.DefaultWeights
	v.SetDefault("scoring.weights.suspicious_tld", w.SuspiciousTLD)
	v.SetDefault("scoring.weights.raw_ip_domain", w.RawIPDomain)
	v.SetDefault("scoring.weights.long_url", w.LongURL)
	v.SetDefault("scoring.weights.urgent_language", w.UrgentLanguage)
	v.SetDefault("scoring.weights.credential_language", w.CredentialLanguage)
	v.SetDefault("scoring.weights.financial_language", w.FinancialLanguage)
	v.SetDefault("scoring.weights.dangerous_extension", w.DangerousExtension)
	v.SetDefault("scoring.weights.mime_mismatch", w.MIMEMismatch)
	v.SetDefault("scoring.weights.foreign_hop", w.ForeignHop)
	v.SetDefault("scoring.weights.from_reply_mismatch", w.FromReplyMismatch)

	v.SetDefault("geo.provider", "ipapi")
	v.SetDefault("geo.timeout", "5s")
	v.SetDefault("geo.ipapi.base_url", "http://ip-api.com")
	v.SetDefault("geo.maxmind.db_path", "GeoLite2-City.mmdb")

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "168h")
	v.SetDefault("cache.cleanup_frequency", "1h")
	v.SetDefault("cache.sqlite_path", "geo_cache.db")
	v.SetDefault("cache.mysql_dsn", "user:password@tcp(localhost:3306)/eml_analyzer")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetDuration gets a duration value from the configuration
func (c *Config) GetDuration(key string) (time.Duration, error) {
	d, err := time.ParseDuration(c.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return d, nil
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
