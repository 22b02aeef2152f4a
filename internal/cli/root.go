package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/yildizm/casechart/internal/config"
	"github.com/yildizm/casechart/internal/emoji"
	"github.com/yildizm/casechart/internal/logger"
	"github.com/yildizm/casechart/internal/ui"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	noEmoji   bool
	outputFmt string

	activeConfig *config.Config
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	activeConfig = nil

	rootCmd := &cobra.Command{
		Use:   "casechart",
		Short: "Animated bar chart of COVID-19 cases by state",
		Long: `casechart reads per-day, per-state cumulative case counts from a CSV file
and animates them as a bar chart for California, Texas, Florida, New York and
Illinois, with a dynamic scale and the US total for each day.

Input lines look like "date,state,fips,cases,...". The first line is a header.
Rows for the same date must be contiguous.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}
			emoji.SetEmojiDisabled(noEmoji)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "summary format (text, json, csv, markdown)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newTrendCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "casechart %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// loadConfig loads the layered configuration and applies global flags on top
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}

	if verbose {
		cfg.Output.Verbose = true
	}
	if outputFmt != "" {
		cfg.Output.DefaultFormat = outputFmt
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if noColor {
		cfg.Output.ColorMode = "never"
	}

	activeConfig = cfg
	return cfg, nil
}

// Global helpers
func isVerbose() bool {
	return verbose || (activeConfig != nil && activeConfig.Output.Verbose)
}

func newLogger(component string) *logger.Logger {
	return logger.NewWithCallback(component, isVerbose)
}

// inputPath picks the positional file argument, falling back to input.path
func inputPath(args []string, cfg *config.Config) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return cfg.Input.Path
}

// useColor resolves output.color_mode for w
func useColor(cfg *config.Config, w io.Writer) bool {
	if noColor || ui.IsColorDisabled() {
		return false
	}
	switch cfg.Output.ColorMode {
	case "always":
		return true
	case "never":
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// closeQuietly closes c, logging rather than returning a failure
func closeQuietly(c io.Closer, log *logger.Logger) {
	if err := c.Close(); err != nil {
		log.Warn("failed to close: %v", err)
	}
}
