package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar represents a progress bar component
type ProgressBar struct {
	Width     int
	Current   int64
	Total     int64
	StartTime time.Time
	ShowETA   bool
	Label     string
}

// NewProgressBar creates a new progress bar
func NewProgressBar(width int) *ProgressBar {
	return &ProgressBar{
		Width:     width,
		StartTime: time.Now(),
		ShowETA:   true,
	}
}

// SetProgress updates the progress
func (p *ProgressBar) SetProgress(current, total int64) {
	p.Current = current
	p.Total = total
}

// SetLabel sets the progress label
func (p *ProgressBar) SetLabel(label string) {
	p.Label = label
}

// Percent returns completion in [0,1], or 0 when the total is unknown
func (p *ProgressBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	percentage := float64(p.Current) / float64(p.Total)
	if percentage > 1.0 {
		percentage = 1.0
	}
	return percentage
}

// Render renders the progress bar
func (p *ProgressBar) Render() string {
	// Define styles locally to avoid import cycle
	progressStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))

	if p.Total <= 0 {
		return p.renderIndeterminate()
	}

	percentage := p.Percent()

	filledWidth := int(float64(p.Width) * percentage)
	emptyWidth := p.Width - filledWidth

	filled := strings.Repeat("█", filledWidth)
	empty := strings.Repeat("░", emptyWidth)

	bar := progressStyle.Render(filled) + mutedStyle.Render(empty)

	percentText := fmt.Sprintf("%.1f%%", percentage*100)

	etaText := ""
	if p.ShowETA && p.Current > 0 && percentage > 0 && percentage < 1 {
		elapsed := time.Since(p.StartTime)
		estimated := time.Duration(float64(elapsed) / percentage)
		remaining := estimated - elapsed
		if remaining > 0 {
			etaText = fmt.Sprintf(" ETA: %s", formatDuration(remaining))
		}
	}

	result := fmt.Sprintf("[%s] %s/%s %s%s", bar, formatBytes(p.Current), formatBytes(p.Total), percentText, etaText)

	if p.Label != "" {
		result = p.Label + " " + result
	}

	return result
}

// renderIndeterminate renders a bar for input of unknown size
func (p *ProgressBar) renderIndeterminate() string {
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))

	result := fmt.Sprintf("[%s] %s read", mutedStyle.Render(strings.Repeat("░", p.Width)), formatBytes(p.Current))
	if p.Label != "" {
		result = p.Label + " " + result
	}
	return result
}

// formatDuration formats a duration for display
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	} else if d < time.Hour {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	return fmt.Sprintf("%.1fh", d.Hours())
}

// formatBytes renders a byte count with a binary unit
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// Spinner represents a spinning activity indicator
type Spinner struct {
	Frame     int
	StartTime time.Time
	Label     string
}

var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

// NewSpinner creates a new spinner
func NewSpinner() *Spinner {
	return &Spinner{
		StartTime: time.Now(),
	}
}

// SetLabel sets the spinner label
func (s *Spinner) SetLabel(label string) {
	s.Label = label
}

// Tick advances the spinner animation
func (s *Spinner) Tick() {
	s.Frame = (s.Frame + 1) % len(spinnerFrames)
}

// Render renders the spinner
func (s *Spinner) Render() string {
	progressStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)

	spinner := progressStyle.Render(string(spinnerFrames[s.Frame]))

	if s.Label != "" {
		return fmt.Sprintf("%s %s", spinner, s.Label)
	}

	return spinner
}
