// Package config loads the gallery configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file when none is given.
const DefaultPath = "gallery.yaml"

// Config holds all gallery settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Particles ParticlesConfig `yaml:"particles"`
	Logging   LoggingConfig   `yaml:"logging"`

	// Start is the slug opened at launch; empty shows the index.
	Start string `yaml:"start"`

	// Snapshot is the file the particle field is saved to and loaded from.
	Snapshot string `yaml:"snapshot"`
}

// WindowConfig configures the ebiten window.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TPS       int    `yaml:"tps"`
	Resizable bool   `yaml:"resizable"`
}

// ParticlesConfig tunes the particle field artwork.
type ParticlesConfig struct {
	Count             int     `yaml:"count"`
	BaseSpeed         float64 `yaml:"base_speed"`         // px/s
	InfluenceRadius   float64 `yaml:"influence_radius"`   // px
	RepulsionStrength float64 `yaml:"repulsion_strength"` // px/s²
	ConnectDistance   float64 `yaml:"connect_distance"`   // px
	Seed              int64   `yaml:"seed"`               // 0 = time based
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "Generative Gallery",
			TPS:       60,
			Resizable: true,
		},
		Particles: ParticlesConfig{
			Count:             150,
			BaseSpeed:         15,
			InfluenceRadius:   120,
			RepulsionStrength: 50,
			ConnectDistance:   100,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Snapshot: "particle-field.json",
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate rejects settings no artwork can run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS))
	}
	p := c.Particles
	if p.Count < 0 {
		errs = append(errs, fmt.Errorf("particles.count must not be negative, got %d", p.Count))
	}
	for name, v := range map[string]float64{
		"base_speed":         p.BaseSpeed,
		"influence_radius":   p.InfluenceRadius,
		"repulsion_strength": p.RepulsionStrength,
		"connect_distance":   p.ConnectDistance,
	} {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("particles.%s must be positive, got %g", name, v))
		}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error", "":
	default:
		errs = append(errs, fmt.Errorf("unknown logging.level %q", c.Logging.Level))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
