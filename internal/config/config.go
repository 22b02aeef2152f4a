package config

import (
	"fmt"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version  string         `yaml:"version" json:"version"`
	Input    InputConfig    `yaml:"input" json:"input"`
	Playback PlaybackConfig `yaml:"playback" json:"playback"`
	Output   OutputConfig   `yaml:"output" json:"output"`
	Export   ExportConfig   `yaml:"export" json:"export"`
}

// InputConfig configures where case data is read from
type InputConfig struct {
	Path          string `yaml:"path" json:"path"`                       // data file when none is given
	MaxLineLength int    `yaml:"max_line_length" json:"max_line_length"` // longest accepted line in bytes
}

// PlaybackConfig configures the animation
type PlaybackConfig struct {
	Mode          string        `yaml:"mode" json:"mode"`                       // tui|plain
	FrameDelay    time.Duration `yaml:"frame_delay" json:"frame_delay"`         // pause after each frame
	Columns       int           `yaml:"columns" json:"columns"`                 // terminal grid width
	Rows          int           `yaml:"rows" json:"rows"`                       // terminal grid height
	HoldLastFrame bool          `yaml:"hold_last_frame" json:"hold_last_frame"` // keep the tui open at the end
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // json|text|markdown|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`               // default verbosity
}

// ExportConfig configures image export
type ExportConfig struct {
	Directory string `yaml:"directory" json:"directory"` // where frame images go
	Prefix    string `yaml:"prefix" json:"prefix"`       // image file name prefix
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Input: InputConfig{
			Path:          "data4.txt",
			MaxLineLength: 1024 * 1024, // 1MB
		},
		Playback: PlaybackConfig{
			Mode:          "tui",
			FrameDelay:    100 * time.Millisecond,
			Columns:       140,
			Rows:          45,
			HoldLastFrame: true,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
		},
		Export: ExportConfig{
			Directory: "frames",
			Prefix:    "frame",
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateInputConfig(); err != nil {
		return err
	}
	if err := c.validatePlaybackConfig(); err != nil {
		return err
	}
	return c.validateOutputConfig()
}

// validateInputConfig validates input-related configuration
func (c *Config) validateInputConfig() error {
	if c.Input.MaxLineLength < 1 {
		return fmt.Errorf("max_line_length must be greater than 0")
	}
	return nil
}

// validatePlaybackConfig validates playback-related configuration
func (c *Config) validatePlaybackConfig() error {
	if c.Playback.Mode != "" {
		validModes := map[string]bool{
			"tui":   true,
			"plain": true,
		}
		if !validModes[c.Playback.Mode] {
			return fmt.Errorf("invalid playback mode: %s (must be one of: tui, plain)", c.Playback.Mode)
		}
	}
	if c.Playback.FrameDelay < 0 {
		return fmt.Errorf("frame_delay must be non-negative")
	}
	if c.Playback.Columns < 1 || c.Playback.Rows < 1 {
		return fmt.Errorf("columns and rows must be greater than 0")
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}
