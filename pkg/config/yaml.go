package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// loadYAML loads configuration from a YAML file.
func loadYAML(path string, target *Config) error {
	// #nosec G304 -- path comes from the caller; validate untrusted input upstream.
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal YAML: %w", err)
	}
	return nil
}
