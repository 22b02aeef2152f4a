package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color theme for the playback chrome around the chart
type Theme struct {
	Name string

	Primary lipgloss.AdaptiveColor
	Accent  lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor

	Border lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// buildTheme creates a theme with the given light/dark colour pairs
func buildTheme(name string, primary, accent, success, warning, errorColor, border, muted [2]string) Theme {
	return Theme{
		Name:    name,
		Primary: lipgloss.AdaptiveColor{Light: primary[0], Dark: primary[1]},
		Accent:  lipgloss.AdaptiveColor{Light: accent[0], Dark: accent[1]},
		Success: lipgloss.AdaptiveColor{Light: success[0], Dark: success[1]},
		Warning: lipgloss.AdaptiveColor{Light: warning[0], Dark: warning[1]},
		Error:   lipgloss.AdaptiveColor{Light: errorColor[0], Dark: errorColor[1]},
		Border:  lipgloss.AdaptiveColor{Light: border[0], Dark: border[1]},
		Muted:   lipgloss.AdaptiveColor{Light: muted[0], Dark: muted[1]},
	}
}

// Available themes
var (
	DefaultTheme = buildTheme("default",
		[2]string{"#1E40AF", "#6E9BE6"}, [2]string{"#0E7490", "#AAFAFA"},
		[2]string{"#059669", "#10B981"}, [2]string{"#D97706", "#F59E0B"}, [2]string{"#DC2626", "#EF4444"},
		[2]string{"#D1D5DB", "#374151"}, [2]string{"#6B7280", "#9CA3AF"})

	HighContrastTheme = buildTheme("high-contrast",
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#000080", "#8080FF"},
		[2]string{"#006600", "#00FF00"}, [2]string{"#CC6600", "#FFAA00"}, [2]string{"#CC0000", "#FF4444"},
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#666666", "#BBBBBB"})

	MinimalTheme = buildTheme("minimal",
		[2]string{"#2D3748", "#E2E8F0"}, [2]string{"#4A5568", "#CBD5E0"},
		[2]string{"#2F855A", "#68D391"}, [2]string{"#C05621", "#F6AD55"}, [2]string{"#C53030", "#FC8181"},
		[2]string{"#E2E8F0", "#2D3748"}, [2]string{"#A0AEC0", "#718096"})
)

// Current active theme
var currentTheme = DefaultTheme

// GetTheme returns the current active theme
func GetTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme
func SetTheme(theme *Theme) {
	currentTheme = *theme
}

// SetThemeByName sets the theme by name
func SetThemeByName(name string) bool {
	switch name {
	case "default":
		SetTheme(&DefaultTheme)
		return true
	case "high-contrast":
		SetTheme(&HighContrastTheme)
		return true
	case "minimal":
		SetTheme(&MinimalTheme)
		return true
	default:
		return false
	}
}

// IsColorDisabled checks if colors should be disabled
func IsColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// GetAvailableThemes returns list of available theme names
func GetAvailableThemes() []string {
	return []string{"default", "high-contrast", "minimal"}
}

// Styles holds the lipgloss styles derived from a theme
type Styles struct {
	Theme Theme

	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Status  lipgloss.Style
	Help    lipgloss.Style
}

// GetStyles returns styles based on the current theme
func GetStyles() *Styles {
	theme := GetTheme()

	return &Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Padding(0, 1),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),

		Status: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),
	}
}
