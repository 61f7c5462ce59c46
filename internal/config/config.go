// Package config loads optional specrun.yaml settings for the runner
// and the console reporter.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "specrun.yaml"

type Config struct {
	Watchdog WatchdogConfig `yaml:"watchdog"`
	Logging  LoggingConfig  `yaml:"logging"`
	Report   ReportConfig   `yaml:"report"`
}

type WatchdogConfig struct {
	ProbeMs      int `yaml:"probe_ms"`
	ActivationMs int `yaml:"activation_ms"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ReportConfig struct {
	Color string `yaml:"color"` // auto | always | never
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Watchdog: WatchdogConfig{ProbeMs: 500, ActivationMs: 1000},
		Logging:  LoggingConfig{Level: "info"},
		Report:   ReportConfig{Color: "auto"},
	}
}

// Load reads path, falling back to the defaults when the file is absent.
// Zero or negative values in the file are replaced by defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Watchdog.ProbeMs <= 0 {
		c.Watchdog.ProbeMs = 500
	}
	if c.Watchdog.ActivationMs <= 0 {
		c.Watchdog.ActivationMs = 1000
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Report.Color == "" {
		c.Report.Color = "auto"
	}
}

// ProbeInterval returns the watchdog probe bound as a duration.
func (c Config) ProbeInterval() time.Duration {
	return time.Duration(c.Watchdog.ProbeMs) * time.Millisecond
}

// ActivationTimeout returns the watchdog activation bound as a duration.
func (c Config) ActivationTimeout() time.Duration {
	return time.Duration(c.Watchdog.ActivationMs) * time.Millisecond
}
