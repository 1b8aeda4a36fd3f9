package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpPort      uint16        `envconfig:"VITALS_HTTP_SERVER_PORT" default:"8080" required:"true"`
	TimeZone      string        `envconfig:"VITALS_TIME_ZONE" default:"Local"`
	AlertsEnabled bool          `envconfig:"VITALS_ALERTS_ENABLED" default:"true"`
	UserCacheSize int           `envconfig:"VITALS_USER_CACHE_SIZE" default:"1000"`
	UserCacheTTL  time.Duration `envconfig:"VITALS_USER_CACHE_TTL" default:"5m"`
}

func New() *Config {
	return &Config{}
}

func NewConfig() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) LoadFromEnv() error {
	return envconfig.Process("", c)
}

// Location returns the calendar used to bucket measurements into days.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%d", c.HttpPort)
}
