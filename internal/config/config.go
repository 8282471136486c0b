// Package config loads and validates the engine configuration from YAML.
package config

import (
	"fmt"
)

// ScreenConfig is the logical screen size workspaces lay out on.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config is the effective configuration after defaults are applied.
type Config struct {
	// Workspaces is the number of independent workspaces.
	Workspaces int `yaml:"workspaces"`
	// GapSize is the inset in pixels between tiled windows.
	GapSize int `yaml:"gap_size"`
	// DefaultLayout names the tiling strategy: master-stack or spiral.
	DefaultLayout string `yaml:"default_layout"`
	// Screen is the initial screen size; resize_screen changes it at runtime.
	Screen ScreenConfig `yaml:"screen"`
	// LogLevel controls operational logging: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Workspaces:    4,
		GapSize:       0,
		DefaultLayout: "master-stack",
		Screen:        ScreenConfig{Width: 1920, Height: 1080},
		LogLevel:      "info",
	}
}

// ValidationError reports a single invalid field by its YAML path.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func validLayout(name string) bool {
	return name == "master-stack" || name == "spiral"
}

// Validate checks the effective configuration and returns the first problem
// found as a *ValidationError.
func (c *Config) Validate() error {
	if c.Workspaces < 1 {
		return &ValidationError{Path: "workspaces", Err: fmt.Errorf("must be at least 1, got %d", c.Workspaces)}
	}
	if c.GapSize < 0 {
		return &ValidationError{Path: "gap_size", Err: fmt.Errorf("must not be negative, got %d", c.GapSize)}
	}
	if !validLayout(c.DefaultLayout) {
		return &ValidationError{Path: "default_layout", Err: fmt.Errorf("unknown layout %q (want master-stack or spiral)", c.DefaultLayout)}
	}
	if c.Screen.Width < 1 || c.Screen.Height < 1 {
		return &ValidationError{Path: "screen", Err: fmt.Errorf("size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)}
	}
	if 2*c.GapSize >= c.Screen.Width || 2*c.GapSize >= c.Screen.Height {
		return &ValidationError{Path: "gap_size", Err: fmt.Errorf("gap %d leaves no room on a %dx%d screen", c.GapSize, c.Screen.Width, c.Screen.Height)}
	}
	if !validLogLevels[c.LogLevel] {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("unknown level %q", c.LogLevel)}
	}
	return nil
}
