package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.casechart.yaml",               // Project-specific config (highest priority)
	"~/.config/casechart/config.yaml", // User config
	"/etc/casechart/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	warn        func(format string, args ...interface{})
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		warn: func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
		},
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. ./.casechart.yaml
// 4. ~/.config/casechart/config.yaml
// 5. /etc/casechart/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// lowest priority first so later files win
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if fileExists(expandedPath) {
				if err := l.loadFromFile(config, expandedPath); err != nil {
					l.warn("failed to load config from %s: %v", expandedPath, err)
				}
			}
		}
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile decodes a YAML file over config. Keys absent from the file
// keep their current values.
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() or comes from ConfigPaths
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	merged := *config
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	*config = merged

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// Input Config
		"CASECHART_INPUT_PATH":            func(v string) error { config.Input.Path = v; return nil },
		"CASECHART_INPUT_MAX_LINE_LENGTH": func(v string) error { return parseInt(v, &config.Input.MaxLineLength) },

		// Playback Config
		"CASECHART_PLAYBACK_MODE":            func(v string) error { config.Playback.Mode = v; return nil },
		"CASECHART_PLAYBACK_FRAME_DELAY":     func(v string) error { return parseDuration(v, &config.Playback.FrameDelay) },
		"CASECHART_PLAYBACK_COLUMNS":         func(v string) error { return parseInt(v, &config.Playback.Columns) },
		"CASECHART_PLAYBACK_ROWS":            func(v string) error { return parseInt(v, &config.Playback.Rows) },
		"CASECHART_PLAYBACK_HOLD_LAST_FRAME": func(v string) error { return parseBool(v, &config.Playback.HoldLastFrame) },

		// Output Config
		"CASECHART_OUTPUT_DEFAULT_FORMAT": func(v string) error { config.Output.DefaultFormat = v; return nil },
		"CASECHART_OUTPUT_COLOR_MODE":     func(v string) error { config.Output.ColorMode = v; return nil },
		"CASECHART_OUTPUT_VERBOSE":        func(v string) error { return parseBool(v, &config.Output.Verbose) },

		// Export Config
		"CASECHART_EXPORT_DIRECTORY": func(v string) error { config.Export.Directory = v; return nil },
		"CASECHART_EXPORT_PREFIX":    func(v string) error { config.Export.Prefix = v; return nil },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// Helper functions

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	if strings.HasPrefix(absPath, "/proc/") || strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Type conversion helpers

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
