package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", cfg.Version)
	}
	if cfg.Input.Path != "data4.txt" {
		t.Errorf("Expected input path data4.txt, got %s", cfg.Input.Path)
	}
	if cfg.Playback.FrameDelay != 100*time.Millisecond {
		t.Errorf("Expected frame delay 100ms, got %v", cfg.Playback.FrameDelay)
	}
	if cfg.Playback.Mode != "tui" {
		t.Errorf("Expected playback mode tui, got %s", cfg.Playback.Mode)
	}
	if cfg.Playback.Columns != 140 || cfg.Playback.Rows != 45 {
		t.Errorf("Expected 140x45 grid, got %dx%d", cfg.Playback.Columns, cfg.Playback.Rows)
	}
	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected output format text, got %s", cfg.Output.DefaultFormat)
	}
	if cfg.Export.Directory != "frames" || cfg.Export.Prefix != "frame" {
		t.Errorf("Unexpected export defaults: %+v", cfg.Export)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "invalid playback mode",
			mutate:  func(c *Config) { c.Playback.Mode = "fancy" },
			wantErr: true,
			errMsg:  "invalid playback mode: fancy (must be one of: tui, plain)",
		},
		{
			name:    "negative frame delay",
			mutate:  func(c *Config) { c.Playback.FrameDelay = -time.Second },
			wantErr: true,
			errMsg:  "frame_delay must be non-negative",
		},
		{
			name:    "zero frame delay",
			mutate:  func(c *Config) { c.Playback.FrameDelay = 0 },
			wantErr: false,
		},
		{
			name:    "zero columns",
			mutate:  func(c *Config) { c.Playback.Columns = 0 },
			wantErr: true,
			errMsg:  "columns and rows must be greater than 0",
		},
		{
			name:    "zero max line length",
			mutate:  func(c *Config) { c.Input.MaxLineLength = 0 },
			wantErr: true,
			errMsg:  "max_line_length must be greater than 0",
		},
		{
			name:    "invalid output format",
			mutate:  func(c *Config) { c.Output.DefaultFormat = "invalid" },
			wantErr: true,
			errMsg:  "invalid output format: invalid (must be one of: json, text, markdown, csv)",
		},
		{
			name:    "invalid color mode",
			mutate:  func(c *Config) { c.Output.ColorMode = "sometimes" },
			wantErr: true,
			errMsg:  "invalid color mode: sometimes (must be one of: auto, always, never)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if tt.errMsg != "" && err.Error() != tt.errMsg {
					t.Errorf("Expected error message '%s', got '%s'", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "relative path",
			input:    "./config.yaml",
			expected: "./config.yaml",
		},
		{
			name:     "absolute path",
			input:    "/etc/casechart/config.yaml",
			expected: "/etc/casechart/config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := expandPath(tt.input); result != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result)
			}
		})
	}

	t.Run("home directory path", func(t *testing.T) {
		t.Setenv("HOME", "/home/tester")
		if got := expandPath("~/.config/casechart/config.yaml"); got != "/home/tester/.config/casechart/config.yaml" {
			t.Errorf("Expected expanded home path, got %s", got)
		}
	})
}

func TestGetConfigPaths(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	paths := GetConfigPaths()
	expected := []string{
		"./.casechart.yaml",
		"/home/tester/.config/casechart/config.yaml",
		"/etc/casechart/config.yaml",
	}
	if len(paths) != len(expected) {
		t.Fatalf("Expected %d config paths, got %d", len(expected), len(paths))
	}
	for i := range expected {
		if paths[i] != expected[i] {
			t.Errorf("Expected path %s, got %s", expected[i], paths[i])
		}
	}
}
