package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/savid/streambuffer/pkg/buffer"
	"github.com/savid/streambuffer/pkg/network"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.MetricsPort != 9090 {
		t.Errorf("MetricsPort = %d, want 9090", cfg.MetricsPort)
	}
	if cfg.Memory.WarningAvailableMB != 100 {
		t.Errorf("WarningAvailableMB = %g, want 100", cfg.Memory.WarningAvailableMB)
	}
	if cfg.Memory.CriticalAvailableMB != 50 {
		t.Errorf("CriticalAvailableMB = %g, want 50", cfg.Memory.CriticalAvailableMB)
	}
	if cfg.Memory.PollingInterval != 2*time.Second {
		t.Errorf("PollingInterval = %v, want 2s", cfg.Memory.PollingInterval)
	}
	if len(cfg.Network.Ceilings) != 4 {
		t.Errorf("Network.Ceilings has %d entries, want 4", len(cfg.Network.Ceilings))
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `log_level: debug
metrics_port: 9191
memory:
  warning_available_mb: 200
  critical_available_mb: 80
  polling_interval: 5s
network:
  ceilings:
    poor: minimal
    moderate: minimal
    good: conservative
    excellent: balanced
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.Memory.WarningAvailableMB != 200 {
		t.Errorf("WarningAvailableMB = %g, want 200", cfg.Memory.WarningAvailableMB)
	}
	if cfg.Memory.PollingInterval != 5*time.Second {
		t.Errorf("PollingInterval = %v, want 5s", cfg.Memory.PollingInterval)
	}

	policy := cfg.CeilingPolicy()
	if got := policy.NetworkCeiling(network.QualityExcellent); got != buffer.StrategyBalanced {
		t.Errorf("excellent ceiling = %v, want %v", got, buffer.StrategyBalanced)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LogLevel:    "info",
			MetricsPort: 9090,
			Memory: MemoryConfig{
				WarningAvailableMB:  100,
				CriticalAvailableMB: 50,
				PollingInterval:     2 * time.Second,
			},
			Network: NetworkConfig{
				Ceilings: map[string]string{"poor": "minimal"},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(*Config) {}, nil},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, ErrInvalidLogLevel},
		{"bad port", func(c *Config) { c.MetricsPort = 0 }, ErrInvalidPort},
		{"zero interval", func(c *Config) { c.Memory.PollingInterval = 0 }, ErrPollingIntervalPositive},
		{"zero threshold", func(c *Config) { c.Memory.CriticalAvailableMB = 0 }, ErrThresholdPositive},
		{"inverted thresholds", func(c *Config) { c.Memory.CriticalAvailableMB = 150 }, ErrThresholdOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRejectsUnknownCeilingNames(t *testing.T) {
	cfg := &Config{
		LogLevel:    "info",
		MetricsPort: 9090,
		Memory: MemoryConfig{
			WarningAvailableMB:  100,
			CriticalAvailableMB: 50,
			PollingInterval:     time.Second,
		},
		Network: NetworkConfig{
			Ceilings: map[string]string{"poor": "turbo"},
		},
	}

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted unknown strategy name")
	}

	cfg.Network.Ceilings = map[string]string{"terrible": "minimal"}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted unknown quality name")
	}
}

func TestThresholdsConversion(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	thresholds := cfg.Thresholds()
	if thresholds.WarningAvailableMB != cfg.Memory.WarningAvailableMB {
		t.Errorf("WarningAvailableMB = %g, want %g", thresholds.WarningAvailableMB, cfg.Memory.WarningAvailableMB)
	}
	if thresholds.PollingInterval != cfg.Memory.PollingInterval {
		t.Errorf("PollingInterval = %v, want %v", thresholds.PollingInterval, cfg.Memory.PollingInterval)
	}
}
