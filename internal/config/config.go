package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds CLI configuration, sourced from INSIGHTS_* environment
// variables and overridden by command-line flags
type Config struct {
	SnapshotPath string `mapstructure:"SNAPSHOT_PATH"`
	Format       string `mapstructure:"FORMAT"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	AsOf         string `mapstructure:"AS_OF"`
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INSIGHTS")
	v.AutomaticEnv()

	v.SetDefault("FORMAT", "text")
	v.SetDefault("LOG_LEVEL", "info")

	v.BindEnv("SNAPSHOT_PATH")
	v.BindEnv("FORMAT")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("AS_OF")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// ReferenceTime resolves AS_OF into the reference time the engine uses
// Accepts RFC3339 or a bare date; empty means the wall clock
func (c *Config) ReferenceTime() (time.Time, error) {
	if c.AsOf == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(time.RFC3339, c.AsOf); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", c.AsOf, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid as-of time %q: want RFC3339 or YYYY-MM-DD", c.AsOf)
}
