package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// loadJSON loads configuration from a JSON file.
func loadJSON(path string, target *Config) error {
	// #nosec G304 -- path comes from the caller; validate untrusted input upstream.
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return nil
}
