package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aemsenhuber/follow/internal/logging"
)

// DefaultInterval matches the original watch cadence of one refresh per second.
const DefaultInterval = time.Second

// Config is the optional user config file. Flags override everything here.
type Config struct {
	// Interval is the default refresh interval in seconds; fractional values
	// are allowed.
	Interval *float64 `yaml:"interval,omitempty"`
	// Shell runs commands through the system shell by default.
	Shell *bool `yaml:"shell,omitempty"`
	// NoTitle suppresses the header line by default.
	NoTitle *bool `yaml:"no_title,omitempty"`

	Logging logging.Config `yaml:"logging,omitempty"`
}

// Load reads the config file at path. A missing file yields a zero Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Interval != nil && *c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", *c.Interval)
	}
	return nil
}

// IntervalDuration returns the configured default interval.
func (c *Config) IntervalDuration() time.Duration {
	if c == nil || c.Interval == nil {
		return DefaultInterval
	}
	return time.Duration(float64(time.Second) * (*c.Interval))
}
