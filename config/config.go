// Package config provides configuration management for the streambuffer daemon.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/savid/streambuffer/pkg/buffer"
	"github.com/savid/streambuffer/pkg/memory"
	"github.com/savid/streambuffer/pkg/network"
	"github.com/spf13/viper"
)

var (
	// ErrInvalidPort is returned when the metrics port number is invalid.
	ErrInvalidPort = errors.New("invalid port number")
	// ErrInvalidLogLevel is returned when the log level is invalid.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrPollingIntervalPositive is returned when the polling interval is not positive.
	ErrPollingIntervalPositive = errors.New("polling interval must be positive")
	// ErrThresholdOrder is returned when the critical threshold is not below the warning threshold.
	ErrThresholdOrder = errors.New("critical threshold must be below warning threshold")
	// ErrThresholdPositive is returned when a memory threshold is not positive.
	ErrThresholdPositive = errors.New("memory thresholds must be positive")
)

// MemoryConfig holds the memory pressure thresholds and sampling cadence.
type MemoryConfig struct {
	WarningAvailableMB  float64       `mapstructure:"warning_available_mb"`
	CriticalAvailableMB float64       `mapstructure:"critical_available_mb"`
	PollingInterval     time.Duration `mapstructure:"polling_interval"`
}

// NetworkConfig holds the tunable network-quality-to-strategy ceiling mapping,
// keyed by quality name with strategy names as values.
type NetworkConfig struct {
	Ceilings map[string]string `mapstructure:"ceilings"`
}

// Config holds the daemon configuration.
type Config struct {
	LogLevel    string        `mapstructure:"log_level"`
	MetricsPort int           `mapstructure:"metrics_port"`
	Memory      MemoryConfig  `mapstructure:"memory"`
	Network     NetworkConfig `mapstructure:"network"`
}

// Load reads configuration from an optional YAML file and STREAMBUFFER_
// prefixed environment variables, applying defaults for anything unset.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("STREAMBUFFER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := memory.DefaultThresholds()

	v.SetDefault("log_level", "info")
	v.SetDefault("metrics_port", 9090)
	v.SetDefault("memory.warning_available_mb", defaults.WarningAvailableMB)
	v.SetDefault("memory.critical_available_mb", defaults.CriticalAvailableMB)
	v.SetDefault("memory.polling_interval", defaults.PollingInterval)
	v.SetDefault("network.ceilings", map[string]string{
		"poor":      "minimal",
		"moderate":  "conservative",
		"good":      "balanced",
		"excellent": "aggressive",
	})
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("%w: %s (must be debug, info, warn, or error)", ErrInvalidLogLevel, c.LogLevel)
	}

	if c.MetricsPort < 1 || c.MetricsPort > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.MetricsPort)
	}

	if c.Memory.PollingInterval <= 0 {
		return ErrPollingIntervalPositive
	}

	if c.Memory.WarningAvailableMB <= 0 || c.Memory.CriticalAvailableMB <= 0 {
		return ErrThresholdPositive
	}

	if c.Memory.CriticalAvailableMB >= c.Memory.WarningAvailableMB {
		return fmt.Errorf("%w: critical=%g warning=%g",
			ErrThresholdOrder, c.Memory.CriticalAvailableMB, c.Memory.WarningAvailableMB)
	}

	for qualityName, strategyName := range c.Network.Ceilings {
		if _, err := network.ParseQuality(qualityName); err != nil {
			return fmt.Errorf("invalid network ceiling: %w", err)
		}
		if _, err := buffer.ParseStrategy(strategyName); err != nil {
			return fmt.Errorf("invalid network ceiling for %q: %w", qualityName, err)
		}
	}

	return nil
}

// Thresholds converts the memory section to the monitor's threshold type.
func (c *Config) Thresholds() memory.Thresholds {
	return memory.Thresholds{
		WarningAvailableMB:  c.Memory.WarningAvailableMB,
		CriticalAvailableMB: c.Memory.CriticalAvailableMB,
		PollingInterval:     c.Memory.PollingInterval,
	}
}

// CeilingPolicy converts the network section to the controller's ceiling
// policy. Entries that fail to parse are skipped; Validate rejects them first.
func (c *Config) CeilingPolicy() buffer.CeilingPolicy {
	ceilings := make(map[network.Quality]buffer.Strategy, len(c.Network.Ceilings))
	for qualityName, strategyName := range c.Network.Ceilings {
		quality, err := network.ParseQuality(qualityName)
		if err != nil {
			continue
		}
		strategy, err := buffer.ParseStrategy(strategyName)
		if err != nil {
			continue
		}
		ceilings[quality] = strategy
	}
	return buffer.NewCeilingPolicy(ceilings)
}
