// Package config loads runtime settings for the dimension CLI from the
// environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds window, content and tooling settings. Flags given on the
// command line override the values read from the environment.
type Config struct {
	Width         int    `env:"DIMENSION_WIDTH" envDefault:"1280"`
	Height        int    `env:"DIMENSION_HEIGHT" envDefault:"720"`
	Title         string `env:"DIMENSION_TITLE" envDefault:"Dimension Clone"`
	ContentPath   string `env:"DIMENSION_CONTENT"`
	AssetsDir     string `env:"DIMENSION_ASSETS" envDefault:"assets"`
	ScreenshotDir string `env:"DIMENSION_SCREENSHOTS" envDefault:"screenshots"`
	ScriptPath    string `env:"DIMENSION_SCRIPT"`
	Debug         bool   `env:"DIMENSION_DEBUG"`
	ShowStats     bool   `env:"DIMENSION_SHOW_STATS"`
	TPS           int    `env:"DIMENSION_TPS" envDefault:"60"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns a validated Config read from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the window cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 {
		errs = append(errs, fmt.Errorf("width must be positive, got %d", c.Width))
	}
	if c.Height <= 0 {
		errs = append(errs, fmt.Errorf("height must be positive, got %d", c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
