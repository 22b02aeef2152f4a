package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yildizm/casechart/internal/config"
	"github.com/yildizm/casechart/internal/emoji"
)

// newConfigCommand creates the config command with subcommands
func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage casechart configuration",
		Long: `Manage casechart configuration files and settings.

The config command provides subcommands for initializing, viewing,
validating, and locating configuration files.`,
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigPathCommand())

	return configCmd
}

// newConfigInitCommand creates the config init subcommand
func newConfigInitCommand() *cobra.Command {
	var (
		outputPath string
		minimal    bool
		force      bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file",
		Long: `Initialize a new casechart configuration file with default values.

By default, creates a full configuration file with all options and comments.
Use --minimal for a compact configuration with only the common settings.`,
		Example: `  # Create full config in current directory
  casechart config init

  # Create minimal config
  casechart config init --minimal

  # Create config at specific path
  casechart config init --path ~/.config/casechart/config.yaml

  # Overwrite existing config
  casechart config init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				outputPath = ".casechart.yaml"
			}

			if !force && fileExists(outputPath) {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", outputPath)
			}

			dir := filepath.Dir(outputPath)
			if dir != "." && dir != "/" {
				if err := os.MkdirAll(dir, 0o750); err != nil {
					return fmt.Errorf("failed to create directory %s: %w", dir, err)
				}
			}

			content := config.SampleConfig()
			if minimal {
				content = config.MinimalSampleConfig()
			}

			if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Configuration file created at: %s\n", emoji.GetEmoji("success"), outputPath)
			if minimal {
				fmt.Fprintln(out, emoji.GetEmoji("document")+" Created minimal configuration with the common settings")
			} else {
				fmt.Fprintln(out, emoji.GetEmoji("document")+" Created full configuration with all options and documentation")
			}

			return nil
		},
	}

	initCmd.Flags().StringVarP(&outputPath, "path", "p", "", "output path for config file (default: .casechart.yaml)")
	initCmd.Flags().BoolVarP(&minimal, "minimal", "m", false, "create minimal configuration")
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing config file")

	return initCmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	var format string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long: `Display the current effective configuration after loading from all sources.

Shows the merged configuration from all sources including defaults,
config files, and environment variable overrides.`,
		Example: `  # Show config in YAML format
  casechart config show

  # Show config in JSON format
  casechart config show --format json

  # Show config from specific file
  casechart config show --config /path/to/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal config to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case "yaml":
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("failed to marshal config to YAML: %w", err)
				}
				fmt.Fprint(out, string(data))
			default:
				return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
			}

			return nil
		},
	}

	showCmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml, json)")

	return showCmd
}

// newConfigValidateCommand creates the config validate subcommand
func newConfigValidateCommand() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validate a casechart configuration file for syntax and semantic errors.

Checks the configuration file for:
- Valid YAML syntax
- Valid values for enums
- Positive grid sizes and non-negative delays`,
		Example: `  # Validate current config
  casechart config validate

  # Validate specific config file
  casechart config validate --config /path/to/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := loadConfig()
			if err != nil {
				fmt.Fprintf(out, "%s Configuration validation failed:\n", emoji.GetEmoji("error"))
				fmt.Fprintf(out, "   %v\n", err)
				return err
			}

			fmt.Fprintln(out, emoji.GetEmoji("success")+" Configuration is valid")

			fmt.Fprintf(out, "%s Configuration summary:\n", emoji.GetEmoji("chart"))
			fmt.Fprintf(out, "   Version: %s\n", cfg.Version)
			fmt.Fprintf(out, "   Input: %s\n", cfg.Input.Path)
			fmt.Fprintf(out, "   Playback: %s, %v per frame, %dx%d cells\n",
				cfg.Playback.Mode, cfg.Playback.FrameDelay, cfg.Playback.Columns, cfg.Playback.Rows)
			fmt.Fprintf(out, "   Output Format: %s\n", cfg.Output.DefaultFormat)

			return nil
		},
	}

	return validateCmd
}

// newConfigPathCommand creates the config path subcommand
func newConfigPathCommand() *cobra.Command {
	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show configuration file search paths",
		Long: `Display the list of paths casechart searches for configuration files.

Shows the search order and indicates which files exist.`,
		Example: `  # Show config search paths
  casechart config path`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, emoji.GetEmoji("folder")+" Configuration file search paths (in priority order):")
			fmt.Fprintln(out)

			priority := []string{"Highest", "Medium", "Lowest"}
			for i, path := range config.GetConfigPaths() {
				exists := " " + emoji.GetEmoji("error") + " (not found)"
				if fileExists(path) {
					exists = " " + emoji.GetEmoji("success") + " (exists)"
				}

				fmt.Fprintf(out, "  %d. %s%s\n", i+1, path, exists)
				if i < len(priority) {
					fmt.Fprintf(out, "     Priority: %s\n", priority[i])
				}
				fmt.Fprintln(out)
			}

			if currentConfig, found := config.FindConfigFile(); found {
				fmt.Fprintf(out, "%s Current config file: %s\n", emoji.GetEmoji("target"), currentConfig)
			} else {
				fmt.Fprintln(out, emoji.GetEmoji("note")+" No config file found, using defaults")
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, emoji.GetEmoji("hint")+" Environment variables with CASECHART_ prefix will override file settings")
		},
	}

	return pathCmd
}

// Helper function to check if file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}
