package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pulseio/pulse/pkg/eventpool"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "pulse.yaml", `
pool:
  allow_multi_handler: true
  allow_no_handler: true
logging:
  level: debug
metrics:
  enabled: true
  address: ":9100"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Pool.AllowMultiHandler || !cfg.Pool.AllowNoHandler || cfg.Pool.AllowDuplicateHandler {
		t.Errorf("pool flags = %+v", cfg.Pool)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Address != ":9100" {
		t.Errorf("metrics = %+v", cfg.Metrics)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "pulse.json",
		`{"pool": {"allow_duplicate_handler": true}, "logging": {"level": "warn"}}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Pool.AllowDuplicateHandler {
		t.Error("AllowDuplicateHandler = false, want true")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() on a missing file should fail")
	}
}

func TestLoad_InvalidLevel(t *testing.T) {
	path := writeFile(t, "pulse.yaml", "logging:\n  level: loud\n")
	if _, err := Load(path); err == nil {
		t.Error("Load() with unknown log level should fail")
	}
}

func TestLoadWithEnv(t *testing.T) {
	path := writeFile(t, "pulse.yaml", "pool:\n  allow_multi_handler: false\n")

	t.Setenv("PULSETEST_POOL_ALLOW_MULTI_HANDLER", "true")
	t.Setenv("PULSETEST_POOL_ALLOW_NO_HANDLER", "1")
	t.Setenv("PULSETEST_METRICS_ADDRESS", ":9999")

	cfg, err := LoadWithEnv(path, "PULSETEST")
	if err != nil {
		t.Fatalf("LoadWithEnv() error = %v", err)
	}
	if !cfg.Pool.AllowMultiHandler || !cfg.Pool.AllowNoHandler {
		t.Errorf("pool flags = %+v after env overrides", cfg.Pool)
	}
	if cfg.Metrics.Address != ":9999" {
		t.Errorf("Address = %q, want :9999", cfg.Metrics.Address)
	}
}

func TestLoadWithEnv_BadValue(t *testing.T) {
	path := writeFile(t, "pulse.yaml", "pool: {}\n")
	t.Setenv("PULSETEST_POOL_ALLOW_NO_HANDLER", "definitely")
	if _, err := LoadWithEnv(path, "PULSETEST"); err == nil {
		t.Error("LoadWithEnv() with a non-bool override should fail")
	}
}

func TestPoolConfig_Mode(t *testing.T) {
	tests := []struct {
		name string
		pc   PoolConfig
		want eventpool.Mode
	}{
		{"default", PoolConfig{}, eventpool.ModeDefault},
		{"multi", PoolConfig{AllowMultiHandler: true}, eventpool.AllowMultiHandler},
		{
			"all",
			PoolConfig{AllowMultiHandler: true, AllowDuplicateHandler: true, AllowNoHandler: true},
			eventpool.AllowMultiHandler | eventpool.AllowDuplicateHandler | eventpool.AllowNoHandler,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pc.Mode(); got != tt.want {
				t.Errorf("Mode() = %v, want %v", got, tt.want)
			}
		})
	}
}
