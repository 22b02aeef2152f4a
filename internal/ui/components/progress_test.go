package components

import (
	"strings"
	"testing"
	"time"
)

func TestProgressBarPercent(t *testing.T) {
	tests := []struct {
		name           string
		current, total int64
		want           float64
	}{
		{"unknown total", 10, 0, 0},
		{"half", 50, 100, 0.5},
		{"overshoot clamps", 150, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProgressBar(10)
			p.SetProgress(tt.current, tt.total)
			if got := p.Percent(); got != tt.want {
				t.Errorf("Percent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgressBarRender(t *testing.T) {
	p := NewProgressBar(10)
	p.ShowETA = false
	p.SetProgress(512, 1024)
	p.SetLabel("input")

	out := p.Render()
	if !strings.HasPrefix(out, "input ") {
		t.Errorf("Expected label prefix, got %q", out)
	}
	if !strings.Contains(out, "512B/1.0KiB 50.0%") {
		t.Errorf("Expected byte counts and percentage, got %q", out)
	}
	if strings.Count(out, "█") != 5 {
		t.Errorf("Expected 5 filled cells, got %q", out)
	}
}

func TestProgressBarIndeterminate(t *testing.T) {
	p := NewProgressBar(4)
	p.SetProgress(2048, 0)
	if out := p.Render(); !strings.Contains(out, "2.0KiB read") {
		t.Errorf("Expected bytes read, got %q", out)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0B"},
		{1023, "1023B"},
		{1024, "1.0KiB"},
		{1536, "1.5KiB"},
		{5 * 1024 * 1024, "5.0MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(30 * time.Second); got != "30s" {
		t.Errorf("Expected 30s, got %s", got)
	}
	if got := formatDuration(5 * time.Minute); got != "5m" {
		t.Errorf("Expected 5m, got %s", got)
	}
	if got := formatDuration(90 * time.Minute); got != "1.5h" {
		t.Errorf("Expected 1.5h, got %s", got)
	}
}

func TestSpinnerCycles(t *testing.T) {
	s := NewSpinner()
	for i := 0; i < len(spinnerFrames); i++ {
		s.Tick()
	}
	if s.Frame != 0 {
		t.Errorf("Expected spinner to wrap to frame 0, got %d", s.Frame)
	}
	s.SetLabel("Playing")
	if !strings.HasSuffix(s.Render(), " Playing") {
		t.Errorf("Expected label in render, got %q", s.Render())
	}
}
