// Package config loads pulse configuration from YAML or JSON files, with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pulseio/pulse/pkg/eventpool"
)

// Config is the on-disk configuration for an event pool and its ambient
// services.
type Config struct {
	Pool    PoolConfig    `yaml:"pool" json:"pool"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Metrics MetricsConfig `yaml:"metrics" json:"metrics"`
}

// PoolConfig carries the pool's policy flags. The flags become an
// eventpool.Mode, fixed for the pool's lifetime.
type PoolConfig struct {
	AllowMultiHandler     bool `yaml:"allow_multi_handler" json:"allow_multi_handler"`
	AllowDuplicateHandler bool `yaml:"allow_duplicate_handler" json:"allow_duplicate_handler"`
	AllowNoHandler        bool `yaml:"allow_no_handler" json:"allow_no_handler"`
}

// Mode converts the flags to an eventpool mode bitset.
func (pc PoolConfig) Mode() eventpool.Mode {
	var m eventpool.Mode
	if pc.AllowMultiHandler {
		m |= eventpool.AllowMultiHandler
	}
	if pc.AllowDuplicateHandler {
		m |= eventpool.AllowDuplicateHandler
	}
	if pc.AllowNoHandler {
		m |= eventpool.AllowNoHandler
	}
	return m
}

// LoggingConfig selects the log level.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
}

// MetricsConfig toggles Prometheus metrics and sets the listen address for
// the metrics endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Address string `yaml:"address" json:"address"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Pool: PoolConfig{
			AllowMultiHandler: true,
		},
		Logging: LoggingConfig{Level: "info"},
		Metrics: MetricsConfig{Address: ":9190"},
	}
}

// Load reads a configuration file, detecting the format by extension.
// Unknown extensions default to YAML.
func Load(path string) (Config, error) {
	cfg := Default()
	var err error
	if strings.HasSuffix(path, ".json") {
		err = loadJSON(path, &cfg)
	} else {
		err = loadYAML(path, &cfg)
	}
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadWithEnv loads a configuration file and then applies environment
// variable overrides of the form PREFIX_SECTION_FIELD, e.g.
// PULSE_POOL_ALLOW_NO_HANDLER=true or PULSE_METRICS_ADDRESS=:9100.
func LoadWithEnv(path, prefix string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(prefix); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot be wired.
func (c Config) Validate() error {
	switch c.Logging.Level {
	case "", "error", "warn", "warning", "info", "debug":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Logging.Level)
	}
	if c.Metrics.Enabled && c.Metrics.Address == "" {
		return fmt.Errorf("config: metrics enabled but no address set")
	}
	return nil
}

// applyEnv overrides fields from the environment. Only the documented keys
// are consulted; unset variables leave the file values alone.
func (c *Config) applyEnv(prefix string) error {
	if prefix == "" {
		prefix = "PULSE"
	}
	for _, o := range []struct {
		key string
		set func(string) error
	}{
		{"POOL_ALLOW_MULTI_HANDLER", boolField(&c.Pool.AllowMultiHandler)},
		{"POOL_ALLOW_DUPLICATE_HANDLER", boolField(&c.Pool.AllowDuplicateHandler)},
		{"POOL_ALLOW_NO_HANDLER", boolField(&c.Pool.AllowNoHandler)},
		{"LOGGING_LEVEL", stringField(&c.Logging.Level)},
		{"METRICS_ENABLED", boolField(&c.Metrics.Enabled)},
		{"METRICS_ADDRESS", stringField(&c.Metrics.Address)},
	} {
		v := os.Getenv(prefix + "_" + o.key)
		if v == "" {
			continue
		}
		if err := o.set(v); err != nil {
			return fmt.Errorf("config: %s_%s: %w", prefix, o.key, err)
		}
	}
	return nil
}

func boolField(dst *bool) func(string) error {
	return func(v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}

func stringField(dst *string) func(string) error {
	return func(v string) error {
		*dst = v
		return nil
	}
}
