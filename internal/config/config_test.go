package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"zero workspaces", func(c *Config) { c.Workspaces = 0 }, "workspaces"},
		{"negative gap", func(c *Config) { c.GapSize = -1 }, "gap_size"},
		{"unknown layout", func(c *Config) { c.DefaultLayout = "mosaic" }, "default_layout"},
		{"zero screen", func(c *Config) { c.Screen.Width = 0 }, "screen"},
		{"gap swallows screen", func(c *Config) { c.GapSize = 600; c.Screen = ScreenConfig{Width: 800, Height: 600} }, "gap_size"},
		{"unknown log level", func(c *Config) { c.LogLevel = "trace" }, "log_level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %v, want a ValidationError", err)
			}
			if verr.Path != tc.path {
				t.Fatalf("path: got %q, want %q", verr.Path, tc.path)
			}
		})
	}
}

func TestLoadFromPathMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Workspaces != 4 || cfg.DefaultLayout != "master-stack" {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadFromPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "workspaces: 2\ndefault_layout: spiral\ngap_size: 8\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Workspaces != 2 || cfg.DefaultLayout != "spiral" || cfg.GapSize != 8 {
		t.Fatalf("got %+v", cfg)
	}
	// untouched fields keep defaults
	if cfg.Screen.Width != 1920 || cfg.LogLevel != "info" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadFromPathRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("workspaces: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Workspaces = 6
	cfg.GapSize = 12
	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Workspaces != 6 || loaded.GapSize != 12 {
		t.Fatalf("round trip lost values: %+v", loaded)
	}
}
