package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	ServerURL string `koanf:"server_url"` // e.g. "http://music.local:8090"

	// Desktop notifications for track changes and command failures
	Notifications *bool `koanf:"notifications"` // default: true

	// Swipe gesture tuning
	Gesture GestureConfig `koanf:"gesture"`

	// First-run hint behavior
	Hints HintsConfig `koanf:"hints"`
}

// GestureConfig tunes the target-switch swipe gesture.
type GestureConfig struct {
	EdgeMargin        int     `koanf:"edge_margin"`        // dead-zone columns at each screen edge (default: 2)
	CommitThreshold   float64 `koanf:"commit_threshold"`   // |offset| beyond which release commits (0-1, default: 0.3)
	VelocityThreshold float64 `koanf:"velocity_threshold"` // cells/s beyond which release commits (default: 500)
}

// HintsConfig controls the swipe-discovery hint overlay.
type HintsConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Normalize server URL (remove trailing slash)
	cfg.ServerURL = strings.TrimSuffix(cfg.ServerURL, "/")
	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://localhost:8090"
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/resound/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "resound", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// NotificationsEnabled returns the notifications flag with its default.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications == nil || *c.Notifications
}

// HintsEnabled returns the hints flag with its default.
func (c *Config) HintsEnabled() bool {
	return c.Hints.Enabled == nil || *c.Hints.Enabled
}

// GetGestureConfig returns the gesture configuration with defaults applied.
func (c *Config) GetGestureConfig() GestureConfig {
	cfg := c.Gesture

	if cfg.EdgeMargin <= 0 {
		cfg.EdgeMargin = 2
	}
	if cfg.CommitThreshold <= 0 || cfg.CommitThreshold >= 1 {
		cfg.CommitThreshold = 0.3
	}
	if cfg.VelocityThreshold <= 0 {
		cfg.VelocityThreshold = 500
	}

	return cfg
}
